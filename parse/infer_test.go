package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BryanDedeur/rbxlx-to-md/ir"
)

var inferTests = []struct {
	in   string
	want ir.Value
}{
	{"true", ir.Value{Kind: ir.KindBool, Str: "true"}},
	{"False", ir.Value{Kind: ir.KindBool, Str: "false"}},
	{"42", ir.Value{Kind: ir.KindInt32, Str: "42"}},
	{"-7", ir.Value{Kind: ir.KindInt32, Str: "-7"}},
	{"2147483647", ir.Value{Kind: ir.KindInt32, Str: "2147483647"}},
	{"2147483648", ir.Value{Kind: ir.KindInt64, Str: "2147483648"}},
	{"-2147483649", ir.Value{Kind: ir.KindInt64, Str: "-2147483649"}},
	{"0.5", ir.Value{Kind: ir.KindFloat, Str: "0.5"}},
	{"-1.25", ir.Value{Kind: ir.KindFloat, Str: "-1.25"}},
	{"RGB(255, 0, 0)", ir.Color3uint8("255", "0", "0")},
	{"RGB(163,162,165)", ir.Color3uint8("163", "162", "165")},
	{"(1.0, 2.0, 3.0)", ir.Vector3("1.0", "2.0", "3.0")},
	{"(4, -1.2, 2)", ir.Vector3("4", "-1.2", "2")},
	{"(8, 8)", ir.Vector2("8", "8")},
	{
		"CFrame(10, 0.5, -20, 1, 0, 0, 0, 1, 0, 0, 0, 1)",
		ir.CFrame("10", "0.5", "-20", "1", "0", "0", "0", "1", "0", "0", "0", "1"),
	},
	{
		"X(Scale: 0, Offset: 10), Y(Scale: 1, Offset: -5)",
		ir.UDim2("0", "10", "1", "-5"),
	},
	{"Scale: 0.5, Offset: 10", ir.UDim("0.5", "10")},
	{"Range(1 to 5)", ir.Value{Kind: ir.KindNumberRange, Comps: []string{"1", "5"}}},
	{"Rect(0, 0, 10, 10)", ir.Value{Kind: ir.KindRect2D, Comps: []string{"0", "0", "10", "10"}}},
	{"[Binary Data]", ir.Value{Kind: ir.KindBinary}},
	{"SharedString(abc123)", ir.Value{Kind: ir.KindSharedString, Str: "abc123"}},
	{"Ref(RBX1)", ir.Value{Kind: ir.KindRef, Str: "RBX1"}},
	{"Enum(1)", ir.Value{Kind: ir.KindEnum, Str: "1"}},
	{"BrickColor(194)", ir.Value{Kind: ir.KindBrickColor, Str: "194"}},
	{"Color3(0.5, 0.25, 1)", ir.Color3("0.5", "0.25", "1")},
	{"hello world", ir.String("hello world")},
	{"", ir.String("")},
	// Shapes that look almost structured stay strings.
	{"(1, 2, 3, 4, 5)", ir.String("(1, 2, 3, 4, 5)")},
	{"CFrame(1, 2, 3)", ir.String("CFrame(1, 2, 3)")},
	{"Range(1 until 5)", ir.String("Range(1 until 5)")},
}

func TestInfer(t *testing.T) {
	for _, tst := range inferTests {
		got := Infer(tst.in)
		if d := cmp.Diff(tst.want, got); d != "" {
			t.Errorf("Infer(%q): %s", tst.in, d)
		}
	}
}

// A UDim2 text must win over the looser UDim rule: both contain
// Scale:/Offset: pairs, but the four-component form is its own type.
func TestInferUDim2BeforeUDim(t *testing.T) {
	got := Infer("X(Scale: 1, Offset: 0), Y(Scale: 1, Offset: 0)")
	if got.Kind != ir.KindUDim2 {
		t.Errorf("kind = %v, want %v", got.Kind, ir.KindUDim2)
	}
}

// Digit-only token and enum-ish values decode as integers. The text
// format stores no type tag, so this lossiness is inherent: the
// numeric reading always wins.
func TestInferNumericTextIsInteger(t *testing.T) {
	got := Infer("256")
	if got.Kind != ir.KindInt32 {
		t.Errorf("kind = %v, want %v", got.Kind, ir.KindInt32)
	}
}
