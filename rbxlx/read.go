package rbxlx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BryanDedeur/rbxlx-to-md/ir"
)

// Read parses a document into an IR tree. The returned node is a
// synthetic document root; the file's top-level items are its
// children. An unparsable document is fatal: unlike property-level
// problems, a broken tree has nothing to degrade to.
func Read(r io.Reader) (*ir.Node, error) {
	doc := &xmlDoc{}
	dec := xml.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructure, err)
	}
	root := &ir.Node{Class: "DataModel"}
	for i := range doc.Items {
		root.AddChild(readItem(&doc.Items[i]))
	}
	return root, nil
}

func readItem(it *xmlItem) *ir.Node {
	n := &ir.Node{Class: it.Class}
	for _, e := range it.Props.Elems {
		tag := e.XMLName.Local
		switch {
		case e.NameAttr == "Name" && tag == "string":
			n.Name = strings.TrimSpace(e.Text)
			continue
		case e.NameAttr == "UniqueId" && tag == "UniqueId":
			n.ID = strings.TrimSpace(e.Text)
			continue
		case e.NameAttr == "":
			continue
		}
		n.Properties = append(n.Properties, ir.Property{
			Name:  e.NameAttr,
			Value: readValue(tag, &e),
		})
	}
	for i := range it.Items {
		n.AddChild(readItem(&it.Items[i]))
	}
	return n
}

// readValue converts one typed property element. Absent sub-fields
// default to "0"/"false"; they never fail the read.
func readValue(tag string, e *xmlElem) ir.Value {
	kind, ok := ir.KindFromTag(tag)
	if !ok {
		return readUnsupported(tag, e)
	}
	v := ir.Value{Kind: kind, Tag: tag}
	switch kind {
	case ir.KindString, ir.KindBool, ir.KindInt32, ir.KindInt64, ir.KindFloat,
		ir.KindToken, ir.KindContent, ir.KindUniqueID, ir.KindSecurityCapabilities,
		ir.KindEnum, ir.KindBrickColor, ir.KindRef, ir.KindBinary, ir.KindSharedString:
		v.Str = strings.TrimSpace(e.Text)
	case ir.KindVector3:
		v.Comps = kidTexts(e, "X", "Y", "Z")
	case ir.KindVector2:
		v.Comps = kidTexts(e, "X", "Y")
	case ir.KindColor3, ir.KindColor3uint8:
		v.Comps = kidTexts(e, "R", "G", "B")
	case ir.KindCFrame:
		v.Comps = frameComps(e)
	case ir.KindOptionalCFrame:
		if len(e.Kids) == 0 {
			v.Some = false
			break
		}
		v.Some = true
		v.Comps = frameComps(e)
	case ir.KindUDim:
		v.Comps = kidTexts(e, "S", "O")
	case ir.KindUDim2:
		v.Comps = kidTexts(e, "XS", "XO", "YS", "YO")
	case ir.KindNumberRange:
		v.Comps = kidTexts(e, "Min", "Max")
	case ir.KindRect2D:
		v.Comps = kidTexts(e, "min_x", "min_y", "max_x", "max_y")
	case ir.KindRay:
		origin := kid(e, "Origin")
		dir := kid(e, "Direction")
		v.Comps = append(kidTexts(origin, "X", "Y", "Z"), kidTexts(dir, "X", "Y", "Z")...)
	case ir.KindFont:
		v.Comps = kidTexts(e, "Family", "Weight", "Style")
	case ir.KindPhysicalProperties:
		v.Comps = kidTexts(e, "Density", "Friction", "Elasticity")
	case ir.KindFaces:
		for _, face := range ir.FaceNames {
			if strings.EqualFold(kidText(e, face, "false"), "true") {
				v.Faces = append(v.Faces, face)
			}
		}
	case ir.KindNumberSequence:
		for _, kp := range keypoints(e) {
			v.Keys = append(v.Keys, ir.Keypoint{
				Time:     kidText(&kp, "Time", "0"),
				Value:    kidText(&kp, "Value", "0"),
				Envelope: kidText(&kp, "Envelope", "0"),
			})
		}
	case ir.KindColorSequence:
		for _, kp := range keypoints(e) {
			key := ir.Keypoint{
				Time:     kidText(&kp, "Time", "0"),
				Envelope: kidText(&kp, "Envelope", "0"),
				R:        "0", G: "0", B: "0",
			}
			if val := kid(&kp, "Value"); val != nil {
				key.R = kidText(val, "R", "0")
				key.G = kidText(val, "G", "0")
				key.B = kidText(val, "B", "0")
			}
			v.Keys = append(v.Keys, key)
		}
	}
	return v
}

func readUnsupported(tag string, e *xmlElem) ir.Value {
	if len(e.Kids) == 0 {
		return ir.Unsupported(tag, strings.TrimSpace(e.Text), nil)
	}
	elems := make([]ir.Component, 0, len(e.Kids))
	for _, k := range e.Kids {
		elems = append(elems, ir.Component{
			Tag:  k.XMLName.Local,
			Text: strings.TrimSpace(k.Text),
		})
	}
	return ir.Unsupported(tag, "", elems)
}

func kid(e *xmlElem, tag string) *xmlElem {
	if e == nil {
		return nil
	}
	for i := range e.Kids {
		if e.Kids[i].XMLName.Local == tag {
			return &e.Kids[i]
		}
	}
	return nil
}

func kidText(e *xmlElem, tag, def string) string {
	k := kid(e, tag)
	if k == nil {
		return def
	}
	t := strings.TrimSpace(k.Text)
	if t == "" {
		return def
	}
	return t
}

func kidTexts(e *xmlElem, tags ...string) []string {
	res := make([]string, len(tags))
	for i, tag := range tags {
		res[i] = kidText(e, tag, "0")
	}
	return res
}

// frameComps collects the 12 frame components from children tagged
// V<i> or R<i>, defaulting missing indices to "0".
func frameComps(e *xmlElem) []string {
	comps := make([]string, 12)
	for i := range comps {
		comps[i] = "0"
	}
	for _, k := range e.Kids {
		tag := k.XMLName.Local
		if len(tag) < 2 || (tag[0] != 'V' && tag[0] != 'R') {
			continue
		}
		idx, err := strconv.Atoi(tag[1:])
		if err != nil || idx < 0 || idx >= 12 {
			continue
		}
		if t := strings.TrimSpace(k.Text); t != "" {
			comps[idx] = t
		}
	}
	return comps
}

// keypoints returns Keypoint descendants at any depth, in document
// order.
func keypoints(e *xmlElem) []xmlElem {
	var res []xmlElem
	for _, k := range e.Kids {
		if k.XMLName.Local == "Keypoint" {
			res = append(res, k)
		}
		res = append(res, keypoints(&k)...)
	}
	return res
}
