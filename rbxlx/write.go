package rbxlx

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/BryanDedeur/rbxlx-to-md/ir"
)

// Write emits roots as one document. Every item gets synthesized Name
// and UniqueId properties alongside its generic ones, and its id as
// the referent attribute.
func Write(w io.Writer, roots []*ir.Node) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	open := fmt.Sprintf(
		"<roblox xmlns:xmime=%q xmlns:xsi=%q xsi:noNamespaceSchemaLocation=%q version=%q>\n",
		docXMime, docXSI, docSchemaLoc, docVersion)
	if _, err := io.WriteString(w, open); err != nil {
		return err
	}
	for _, n := range roots {
		item := writeItem(n)
		d, err := xml.MarshalIndent(item, "  ", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</roblox>\n")
	return err
}

func writeItem(n *ir.Node) *xmlItem {
	it := &xmlItem{
		Class:    n.Class,
		Referent: n.ID,
	}
	it.Props.Elems = append(it.Props.Elems,
		scalarElem("string", "Name", n.Name),
		scalarElem("UniqueId", "UniqueId", n.ID),
	)
	for _, p := range n.Properties {
		it.Props.Elems = append(it.Props.Elems, writeValue(p.Name, p.Value))
	}
	for _, c := range n.Children {
		it.Items = append(it.Items, *writeItem(c))
	}
	return it
}

func scalarElem(tag, name, text string) xmlElem {
	return xmlElem{
		XMLName:  xml.Name{Local: tag},
		NameAttr: name,
		Text:     text,
	}
}

func elemOf(tag, name string) xmlElem {
	return xmlElem{XMLName: xml.Name{Local: tag}, NameAttr: name}
}

func kidElem(tag, text string) xmlElem {
	return xmlElem{XMLName: xml.Name{Local: tag}, Text: text}
}

// writeValue renders one property back to its typed element. The tag
// the value was read with wins over the kind's canonical tag so a
// round trip keeps the original spelling ("double", "Axes", ...).
func writeValue(name string, v ir.Value) xmlElem {
	tag := v.Tag
	if tag == "" {
		tag = v.Kind.Tag()
	}
	switch v.Kind {
	case ir.KindString, ir.KindBool, ir.KindInt32, ir.KindInt64, ir.KindFloat,
		ir.KindToken, ir.KindContent, ir.KindUniqueID, ir.KindSecurityCapabilities,
		ir.KindEnum, ir.KindBrickColor, ir.KindRef, ir.KindBinary, ir.KindSharedString:
		return scalarElem(tag, name, v.Str)
	case ir.KindVector3:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "X", "Y", "Z")
		return e
	case ir.KindVector2:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "X", "Y")
		return e
	case ir.KindColor3, ir.KindColor3uint8:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "R", "G", "B")
		return e
	case ir.KindCFrame:
		return frameElem(tag, name, v)
	case ir.KindOptionalCFrame:
		if !v.Some {
			return elemOf(tag, name)
		}
		return frameElem(tag, name, v)
	case ir.KindUDim:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "S", "O")
		return e
	case ir.KindUDim2:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "XS", "XO", "YS", "YO")
		return e
	case ir.KindNumberRange:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "Min", "Max")
		return e
	case ir.KindRect2D:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "min_x", "min_y", "max_x", "max_y")
		return e
	case ir.KindRay:
		e := elemOf(tag, name)
		origin := kidElem("Origin", "")
		origin.Kids = []xmlElem{
			kidElem("X", v.Comp(0)), kidElem("Y", v.Comp(1)), kidElem("Z", v.Comp(2)),
		}
		dir := kidElem("Direction", "")
		dir.Kids = []xmlElem{
			kidElem("X", v.Comp(3)), kidElem("Y", v.Comp(4)), kidElem("Z", v.Comp(5)),
		}
		e.Kids = []xmlElem{origin, dir}
		return e
	case ir.KindFont:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "Family", "Weight", "Style")
		return e
	case ir.KindPhysicalProperties:
		e := elemOf(tag, name)
		e.Kids = compKids(v, "Density", "Friction", "Elasticity")
		return e
	case ir.KindFaces:
		e := elemOf(tag, name)
		for _, face := range ir.FaceNames {
			val := "false"
			for _, f := range v.Faces {
				if f == face {
					val = "true"
					break
				}
			}
			e.Kids = append(e.Kids, kidElem(face, val))
		}
		return e
	case ir.KindNumberSequence:
		e := elemOf(tag, name)
		for _, kp := range v.Keys {
			e.Kids = append(e.Kids, xmlElem{
				XMLName: xml.Name{Local: "Keypoint"},
				Kids: []xmlElem{
					kidElem("Time", kp.Time),
					kidElem("Value", kp.Value),
					kidElem("Envelope", kp.Envelope),
				},
			})
		}
		return e
	case ir.KindColorSequence:
		e := elemOf(tag, name)
		for _, kp := range v.Keys {
			val := kidElem("Value", "")
			val.Kids = []xmlElem{
				kidElem("R", kp.R), kidElem("G", kp.G), kidElem("B", kp.B),
			}
			e.Kids = append(e.Kids, xmlElem{
				XMLName: xml.Name{Local: "Keypoint"},
				Kids: []xmlElem{
					kidElem("Time", kp.Time),
					val,
					kidElem("Envelope", kp.Envelope),
				},
			})
		}
		return e
	default: // KindUnsupported
		e := elemOf(tag, name)
		e.Text = v.Str
		for _, el := range v.Elems {
			e.Kids = append(e.Kids, kidElem(el.Tag, el.Text))
		}
		return e
	}
}

func compKids(v ir.Value, tags ...string) []xmlElem {
	kids := make([]xmlElem, len(tags))
	for i, tag := range tags {
		kids[i] = kidElem(tag, v.Comp(i))
	}
	return kids
}

func frameElem(tag, name string, v ir.Value) xmlElem {
	e := elemOf(tag, name)
	for i := 0; i < 12; i++ {
		e.Kids = append(e.Kids, kidElem(fmt.Sprintf("R%d", i), v.Comp(i)))
	}
	return e
}
