package parse

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BryanDedeur/rbxlx-to-md/ir"
)

func testBuilder() *Builder {
	b := NewBuilder()
	n := 0
	b.NewID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return b
}

func TestBuilderInsert(t *testing.T) {
	b := testBuilder()
	err := b.Insert(ir.Record{
		Path:  "Workspace.Baseplate",
		ID:    "bp",
		Class: "Part",
		Properties: []string{
			"- Anchored: true",
			"- Transparency: 0.5",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	roots := b.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots", len(roots))
	}
	ws := roots[0]
	if ws.Name != "Workspace" || ws.Class != "Folder" || ws.ID != "gen-1" {
		t.Errorf("placeholder root = %+v", ws)
	}
	if len(ws.Children) != 1 {
		t.Fatalf("got %d children", len(ws.Children))
	}
	bp := ws.Children[0]
	if bp.Name != "Baseplate" || bp.Class != "Part" || bp.ID != "bp" {
		t.Errorf("node = %+v", bp)
	}
	anchored, ok := bp.Prop("Anchored")
	if !ok || anchored.Kind != ir.KindBool || anchored.Str != "true" {
		t.Errorf("Anchored = %+v, %v", anchored, ok)
	}
}

// A record for a path that was earlier created as a placeholder must
// complete that node in place, not add a sibling.
func TestBuilderCompletesPlaceholder(t *testing.T) {
	b := testBuilder()
	if err := b.Insert(ir.Record{Path: "Workspace.Model.Part1", ID: "p1", Class: "Part"}); err != nil {
		t.Fatal(err)
	}
	if err := b.Insert(ir.Record{Path: "Workspace.Model", ID: "m", Class: "Model"}); err != nil {
		t.Fatal(err)
	}

	roots := b.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots", len(roots))
	}
	model := roots[0].Children[0]
	if model.Class != "Model" || model.ID != "m" {
		t.Errorf("model = %+v", model)
	}
	if len(model.Children) != 1 || model.Children[0].ID != "p1" {
		t.Errorf("model children = %v", model.Children)
	}
}

func TestBuilderBracketedSegments(t *testing.T) {
	b := testBuilder()
	if err := b.Insert(ir.Record{Path: `Workspace.["My Part"]`, ID: "p", Class: "Part"}); err != nil {
		t.Fatal(err)
	}
	p := b.Roots()[0].Children[0]
	if p.Name != "My Part" {
		t.Errorf("name = %q", p.Name)
	}
}

func TestBuilderEmptyPath(t *testing.T) {
	b := testBuilder()
	if err := b.Insert(ir.Record{Path: ""}); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestBuilderSkipsUnparsableProperties(t *testing.T) {
	b := testBuilder()
	err := b.Insert(ir.Record{
		Path:  "A",
		ID:    "a",
		Class: "Part",
		Properties: []string{
			"- Weird [UNSUPPORTED TYPE: Thing]",
			"- Anchored: true",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	a := b.Roots()[0]
	if len(a.Properties) != 1 {
		t.Fatalf("properties = %+v", a.Properties)
	}
	if a.Properties[0].Name != "Anchored" {
		t.Errorf("property = %+v", a.Properties[0])
	}
}

// Exporting then rebuilding keeps the tree shape and the decodable
// property values.
func TestBuilderRoundTrip(t *testing.T) {
	b := testBuilder()
	recs := Records([]byte(`Workspace (ws) [Workspace]

Workspace.Baseplate (bp) [Part]
- Anchored: true
- Color3uint8: RGB(163, 162, 165)
- size: (512, 20, 512)
`))
	for _, r := range recs {
		if err := b.Insert(r); err != nil {
			t.Fatal(err)
		}
	}
	roots := b.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots", len(roots))
	}
	bp := roots[0].Children[0]
	size, ok := bp.Prop("size")
	if !ok {
		t.Fatal("size property missing")
	}
	if d := cmp.Diff(ir.Vector3("512", "20", "512"), size); d != "" {
		t.Error(d)
	}
}
