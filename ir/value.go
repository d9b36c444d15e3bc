package ir

import "strconv"

// Value is a property value. It is a closed union: Kind selects the
// shape and the payload fields used by it. Components are kept as the
// document's numeric text rather than parsed floats so that encoding a
// value reproduces the source digits exactly.
type Value struct {
	Kind Kind

	// Tag is the document type tag the value was read with. It may
	// alias Kind's canonical tag ("double" for KindFloat, "Axes" for
	// KindFaces). For KindUnsupported it names the unknown type.
	Tag string

	// Str carries the payload of scalar kinds and the raw text of an
	// unsupported leaf value.
	Str string

	// Comps carries ordered numeric-text components:
	// Vector2 (2), Vector3 (3), Color3 and Color3uint8 (3),
	// CFrame and OptionalCFrame (12), UDim (2), UDim2 (4),
	// NumberRange (2), Rect2D (4), Ray (6: origin then direction),
	// Font (family, weight, style), PhysicalProperties (3).
	Comps []string

	// Some is set when an OptionalCFrame holds a frame.
	Some bool

	// Faces holds the enabled face names, in canonical order.
	Faces []string

	// Keys holds number/color sequence keypoints.
	Keys []Keypoint

	// Elems holds the component dump of a container-shaped
	// unsupported value.
	Elems []Component
}

// Keypoint is one entry of a NumberSequence or ColorSequence. Number
// sequences use Value, color sequences use R, G, B.
type Keypoint struct {
	Time     string
	Value    string
	R, G, B  string
	Envelope string
}

// Component is a (tag, text) child of an unsupported container value.
type Component struct {
	Tag  string
	Text string
}

// FaceNames is the canonical face order of Faces/Axes values.
var FaceNames = []string{"Top", "Bottom", "Left", "Right", "Front", "Back"}

func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func Bool(v bool) Value {
	return Value{Kind: KindBool, Str: strconv.FormatBool(v)}
}

func Int32(v int32) Value {
	return Value{Kind: KindInt32, Str: strconv.FormatInt(int64(v), 10)}
}

func Int64(v int64) Value {
	return Value{Kind: KindInt64, Str: strconv.FormatInt(v, 10)}
}

func Float(text string) Value {
	return Value{Kind: KindFloat, Str: text}
}

func Vector2(x, y string) Value {
	return Value{Kind: KindVector2, Comps: []string{x, y}}
}

func Vector3(x, y, z string) Value {
	return Value{Kind: KindVector3, Comps: []string{x, y, z}}
}

func Color3uint8(r, g, b string) Value {
	return Value{Kind: KindColor3uint8, Comps: []string{r, g, b}}
}

func Color3(r, g, b string) Value {
	return Value{Kind: KindColor3, Comps: []string{r, g, b}}
}

func CFrame(comps ...string) Value {
	return Value{Kind: KindCFrame, Comps: padComps(comps, 12)}
}

func UDim(scale, offset string) Value {
	return Value{Kind: KindUDim, Comps: []string{scale, offset}}
}

func UDim2(xs, xo, ys, yo string) Value {
	return Value{Kind: KindUDim2, Comps: []string{xs, xo, ys, yo}}
}

func Unsupported(tag, raw string, elems []Component) Value {
	return Value{Kind: KindUnsupported, Tag: tag, Str: raw, Elems: elems}
}

// padComps right-pads comps with "0" to n entries, truncating extras.
// Structured values with absent sub-fields default rather than fail.
func padComps(comps []string, n int) []string {
	res := make([]string, n)
	for i := range res {
		if i < len(comps) && comps[i] != "" {
			res[i] = comps[i]
		} else {
			res[i] = "0"
		}
	}
	return res
}

// Comp returns the i'th component, or "0" when absent or empty.
func (v Value) Comp(i int) string {
	if i < 0 || i >= len(v.Comps) || v.Comps[i] == "" {
		return "0"
	}
	return v.Comps[i]
}
