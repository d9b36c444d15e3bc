package encode

import (
	"fmt"
	"strings"

	"github.com/BryanDedeur/rbxlx-to-md/ir"
)

// Property encodes one named value into record text lines. Simple
// values take one line; container-shaped unsupported values add one
// indented line per component. Encoding is total: every kind has a
// template and unknown tags degrade to the unsupported marker.
func Property(name string, v ir.Value, opts ...Option) []string {
	return propertyLines(name, v, 0, newEncState(opts))
}

func propertyLines(name string, v ir.Value, depth int, es *encState) []string {
	indent := strings.Repeat("  ", depth)
	line := func(val string) []string {
		return []string{fmt.Sprintf("%s- %s: %s", indent, name, val)}
	}

	switch v.Kind {
	case ir.KindString, ir.KindToken, ir.KindContent, ir.KindUniqueID:
		return line(v.Str)
	case ir.KindBool:
		return line(orDefault(v.Str, "false"))
	case ir.KindInt32, ir.KindInt64, ir.KindSecurityCapabilities:
		return line(orDefault(v.Str, "0"))
	case ir.KindFloat:
		return line(orDefault(v.Str, "0.0"))
	case ir.KindColor3uint8:
		return line(fmt.Sprintf("RGB(%s, %s, %s)", v.Comp(0), v.Comp(1), v.Comp(2)))
	case ir.KindColor3:
		return line(fmt.Sprintf("Color3(%s, %s, %s)", v.Comp(0), v.Comp(1), v.Comp(2)))
	case ir.KindVector3:
		return line(fmt.Sprintf("(%s, %s, %s)", v.Comp(0), v.Comp(1), v.Comp(2)))
	case ir.KindVector2:
		return line(fmt.Sprintf("(%s, %s)", v.Comp(0), v.Comp(1)))
	case ir.KindCFrame:
		return line("CFrame(" + joinComps(v, 12) + ")")
	case ir.KindOptionalCFrame:
		if !v.Some {
			return line("nil")
		}
		return line("CFrame(" + joinComps(v, 12) + ")")
	case ir.KindUDim:
		return line(fmt.Sprintf("Scale: %s, Offset: %s", v.Comp(0), v.Comp(1)))
	case ir.KindUDim2:
		return line(fmt.Sprintf("X(Scale: %s, Offset: %s), Y(Scale: %s, Offset: %s)",
			v.Comp(0), v.Comp(1), v.Comp(2), v.Comp(3)))
	case ir.KindBinary:
		return line("[Binary Data]")
	case ir.KindSharedString:
		return line("SharedString(" + v.Str + ")")
	case ir.KindRef:
		return line("Ref(" + v.Str + ")")
	case ir.KindEnum:
		return line("Enum(" + v.Str + ")")
	case ir.KindBrickColor:
		return line("BrickColor(" + v.Str + ")")
	case ir.KindNumberRange:
		return line(fmt.Sprintf("Range(%s to %s)", v.Comp(0), v.Comp(1)))
	case ir.KindRect2D:
		return line(fmt.Sprintf("Rect(%s, %s, %s, %s)",
			v.Comp(0), v.Comp(1), v.Comp(2), v.Comp(3)))
	case ir.KindRay:
		return line(fmt.Sprintf("Ray(Origin: (%s, %s, %s), Direction: (%s, %s, %s))",
			v.Comp(0), v.Comp(1), v.Comp(2), v.Comp(3), v.Comp(4), v.Comp(5)))
	case ir.KindFont:
		return line(fmt.Sprintf("Font(%s, %s, %s)", v.Comp(0), v.Comp(1), v.Comp(2)))
	case ir.KindPhysicalProperties:
		return line(fmt.Sprintf("PhysicalProperties(Density: %s, Friction: %s, Elasticity: %s)",
			v.Comp(0), v.Comp(1), v.Comp(2)))
	case ir.KindFaces:
		return line("[" + strings.Join(v.Faces, ", ") + "]")
	case ir.KindNumberSequence:
		kps := make([]string, len(v.Keys))
		for i, kp := range v.Keys {
			kps[i] = fmt.Sprintf("t:%s,v:%s,e:%s",
				orDefault(kp.Time, "0"), orDefault(kp.Value, "0"), orDefault(kp.Envelope, "0"))
		}
		return line("NumberSequence(" + strings.Join(kps, "; ") + ")")
	case ir.KindColorSequence:
		kps := make([]string, len(v.Keys))
		for i, kp := range v.Keys {
			kps[i] = fmt.Sprintf("t:%s,rgb(%s,%s,%s),e:%s",
				orDefault(kp.Time, "0"),
				orDefault(kp.R, "0"), orDefault(kp.G, "0"), orDefault(kp.B, "0"),
				orDefault(kp.Envelope, "0"))
		}
		return line("ColorSequence(" + strings.Join(kps, "; ") + ")")
	case ir.KindUnsupported:
		es.warnf(fmt.Sprintf("unsupported property type %q for property %q", v.Tag, name))
		if len(v.Elems) == 0 && v.Str != "" {
			return []string{fmt.Sprintf("%s- %s: %s [UNSUPPORTED TYPE: %s]", indent, name, v.Str, v.Tag)}
		}
		lines := []string{fmt.Sprintf("%s- %s [UNSUPPORTED TYPE: %s]", indent, name, v.Tag)}
		for _, el := range v.Elems {
			lines = append(lines, fmt.Sprintf("%s  - %s: %s", indent, el.Tag, el.Text))
		}
		return lines
	default:
		es.warnf(fmt.Sprintf("unsupported property kind %v for property %q", v.Kind, name))
		return []string{fmt.Sprintf("%s- %s [UNSUPPORTED TYPE: %s]", indent, name, v.Kind)}
	}
}

func joinComps(v ir.Value, n int) string {
	comps := make([]string, n)
	for i := range comps {
		comps[i] = v.Comp(i)
	}
	return strings.Join(comps, ", ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
