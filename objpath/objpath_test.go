package objpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type joinTest struct {
	parent string
	name   string
	path   string
}

var joinTests = []joinTest{
	{"", "Workspace", "Workspace"},
	{"Workspace", "Baseplate", "Workspace.Baseplate"},
	{"Workspace", "Spawn Point", `Workspace["Spawn Point"]`},
	{"", "Spawn Point", `["Spawn Point"]`},
	{`Workspace["Spawn Point"]`, "Decal", `Workspace["Spawn Point"].Decal`},
	{"Workspace.Baseplate", "Touch Pad", `Workspace.Baseplate["Touch Pad"]`},
}

func TestJoin(t *testing.T) {
	for _, tc := range joinTests {
		if got := Join(tc.parent, tc.name); got != tc.path {
			t.Errorf("Join(%q, %q) = %q, want %q", tc.parent, tc.name, got, tc.path)
		}
	}
}

type splitTest struct {
	path string
	segs []string
}

var splitTests = []splitTest{
	{"Workspace", []string{"Workspace"}},
	{"Workspace.Baseplate", []string{"Workspace", "Baseplate"}},
	{`Workspace["Spawn Point"]`, []string{"Workspace", "Spawn Point"}},
	{`Workspace["Spawn Point"].Decal`, []string{"Workspace", "Spawn Point", "Decal"}},
	{`["Spawn Point"].Decal`, []string{"Spawn Point", "Decal"}},
	{`a.b["c d"]["e f"].g`, []string{"a", "b", "c d", "e f", "g"}},
	// unterminated quote degrades to plain characters
	{`a.["b`, []string{"a", `["b`}},
	{"", nil},
}

func TestSplit(t *testing.T) {
	for _, tc := range splitTests {
		got := Split(tc.path)
		if d := cmp.Diff(tc.segs, got); d != "" {
			t.Errorf("Split(%q): (-want +got)\n%s", tc.path, d)
		}
	}
}

func TestSplitInvertsJoin(t *testing.T) {
	nameSeqs := [][]string{
		{"Workspace"},
		{"Workspace", "Baseplate", "Decal"},
		{"Workspace", "Spawn Point"},
		{"Spawn Point", "child", "grand child", "leaf"},
		{"a b", "c d", "e f"},
	}
	for _, names := range nameSeqs {
		path := ""
		for _, n := range names {
			path = Join(path, n)
		}
		got := Split(path)
		if d := cmp.Diff(names, got); d != "" {
			t.Errorf("Split(Join(%v)) via %q: (-want +got)\n%s", names, path, d)
		}
	}
}

func TestLeaf(t *testing.T) {
	for _, tc := range []struct{ path, leaf string }{
		{"Workspace.Baseplate", "Baseplate"},
		{`Workspace["Spawn Point"]`, "Spawn Point"},
		{"Solo", "Solo"},
	} {
		if got := Leaf(tc.path); got != tc.leaf {
			t.Errorf("Leaf(%q) = %q, want %q", tc.path, got, tc.leaf)
		}
	}
}
