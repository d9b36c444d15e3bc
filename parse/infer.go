package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/BryanDedeur/rbxlx-to-md/debug"
	"github.com/BryanDedeur/rbxlx-to-md/ir"
)

// The record text stores no type tag, so decoding rederives the type
// syntactically. The rules below run top to bottom; the first match
// wins, and the final rule accepts anything as a plain string, so
// inference is total.
//
// The order is part of the format's contract: a digit-only value is an
// integer even if the source property was a token, and a numeric
// BrickColor name is indistinguishable from a string. That lossiness
// is accepted, not worked around.
var inferRules = []inferRule{
	{"bool", inferBool},
	{"int", inferInt},
	{"float", inferFloat},
	{"rgb", inferRGB},
	{"vector3", inferVector3},
	{"vector2", inferVector2},
	{"cframe", inferCFrame},
	{"udim2", inferUDim2},
	{"udim", inferUDim},
	{"range", inferRange},
	{"rect", inferRect},
	{"binary", inferBinary},
	{"sharedstring", wrapped("SharedString(", ir.KindSharedString)},
	{"ref", wrapped("Ref(", ir.KindRef)},
	{"enum", wrapped("Enum(", ir.KindEnum)},
	{"brickcolor", wrapped("BrickColor(", ir.KindBrickColor)},
	{"color3", inferColor3},
}

type inferRule struct {
	name string
	fn   func(s string) (ir.Value, bool)
}

// Infer decodes one property value text into its best-guess typed
// value. It never fails: unmatched text is a string.
func Infer(s string) ir.Value {
	for _, r := range inferRules {
		if v, ok := r.fn(s); ok {
			if debug.Infer() {
				debug.Logf("infer: %q -> %s (%s)\n", s, v.Kind, r.name)
			}
			return v
		}
	}
	return ir.String(s)
}

func inferBool(s string) (ir.Value, bool) {
	switch strings.ToLower(s) {
	case "true", "false":
		return ir.Value{Kind: ir.KindBool, Str: strings.ToLower(s)}, true
	}
	return ir.Value{}, false
}

var intRx = regexp.MustCompile(`^-?\d+$`)

func inferInt(s string) (ir.Value, bool) {
	if !intRx.MatchString(s) {
		return ir.Value{}, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v > math.MaxInt32 || v < math.MinInt32 {
		// out of 32-bit range (or out of 64-bit range entirely; the
		// digits are kept either way)
		return ir.Value{Kind: ir.KindInt64, Str: s}, true
	}
	return ir.Value{Kind: ir.KindInt32, Str: s}, true
}

var floatRx = regexp.MustCompile(`^-?\d+\.\d+$`)

func inferFloat(s string) (ir.Value, bool) {
	if !floatRx.MatchString(s) {
		return ir.Value{}, false
	}
	return ir.Value{Kind: ir.KindFloat, Str: s}, true
}

var rgbRx = regexp.MustCompile(`^RGB\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)

func inferRGB(s string) (ir.Value, bool) {
	m := rgbRx.FindStringSubmatch(s)
	if m == nil {
		return ir.Value{}, false
	}
	return ir.Color3uint8(m[1], m[2], m[3]), true
}

const num = `(-?\d+(?:\.\d+)?)`

var (
	vec3Rx = regexp.MustCompile(`^\(\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*\)$`)
	vec2Rx = regexp.MustCompile(`^\(\s*` + num + `\s*,\s*` + num + `\s*\)$`)
)

func inferVector3(s string) (ir.Value, bool) {
	m := vec3Rx.FindStringSubmatch(s)
	if m == nil {
		return ir.Value{}, false
	}
	return ir.Vector3(m[1], m[2], m[3]), true
}

func inferVector2(s string) (ir.Value, bool) {
	m := vec2Rx.FindStringSubmatch(s)
	if m == nil {
		return ir.Value{}, false
	}
	return ir.Vector2(m[1], m[2]), true
}

var cframeRx = regexp.MustCompile(`^CFrame\((.*)\)$`)

func inferCFrame(s string) (ir.Value, bool) {
	m := cframeRx.FindStringSubmatch(s)
	if m == nil {
		return ir.Value{}, false
	}
	comps := splitComps(m[1])
	if len(comps) != 12 {
		return ir.Value{}, false
	}
	return ir.CFrame(comps...), true
}

var udim2Rx = regexp.MustCompile(
	`^X\(Scale:\s*` + num + `,\s*Offset:\s*` + num + `\),\s*Y\(Scale:\s*` + num + `,\s*Offset:\s*` + num + `\)$`)

func inferUDim2(s string) (ir.Value, bool) {
	m := udim2Rx.FindStringSubmatch(s)
	if m == nil {
		return ir.Value{}, false
	}
	return ir.UDim2(m[1], m[2], m[3], m[4]), true
}

var (
	scaleRx  = regexp.MustCompile(`Scale:\s*` + num)
	offsetRx = regexp.MustCompile(`Offset:\s*` + num)
)

func inferUDim(s string) (ir.Value, bool) {
	if !strings.Contains(s, "Scale:") || !strings.Contains(s, "Offset:") {
		return ir.Value{}, false
	}
	sm := scaleRx.FindStringSubmatch(s)
	om := offsetRx.FindStringSubmatch(s)
	if sm == nil || om == nil {
		return ir.Value{}, false
	}
	return ir.UDim(sm[1], om[1]), true
}

var rangeRx = regexp.MustCompile(`^Range\(` + num + ` to ` + num + `\)$`)

func inferRange(s string) (ir.Value, bool) {
	m := rangeRx.FindStringSubmatch(s)
	if m == nil {
		return ir.Value{}, false
	}
	return ir.Value{Kind: ir.KindNumberRange, Comps: []string{m[1], m[2]}}, true
}

var rectRx = regexp.MustCompile(
	`^Rect\(\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*\)$`)

func inferRect(s string) (ir.Value, bool) {
	m := rectRx.FindStringSubmatch(s)
	if m == nil {
		return ir.Value{}, false
	}
	return ir.Value{Kind: ir.KindRect2D, Comps: m[1:5]}, true
}

func inferBinary(s string) (ir.Value, bool) {
	if !strings.Contains(s, "[Binary Data]") {
		return ir.Value{}, false
	}
	return ir.Value{Kind: ir.KindBinary}, true
}

func wrapped(prefix string, kind ir.Kind) func(string) (ir.Value, bool) {
	return func(s string) (ir.Value, bool) {
		if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
			return ir.Value{}, false
		}
		return ir.Value{Kind: kind, Str: s[len(prefix) : len(s)-1]}, true
	}
}

func inferColor3(s string) (ir.Value, bool) {
	if !strings.HasPrefix(s, "Color3(") || !strings.HasSuffix(s, ")") {
		return ir.Value{}, false
	}
	comps := splitComps(s[len("Color3(") : len(s)-1])
	if len(comps) != 3 {
		return ir.Value{}, false
	}
	return ir.Color3(comps[0], comps[1], comps[2]), true
}

func splitComps(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
