package ir

import "testing"

func TestRecordHeader(t *testing.T) {
	r := Record{Path: "Workspace.Baseplate", ID: "bp", Class: "Part"}
	if got := r.Header(true); got != "Workspace.Baseplate (bp) [Part]" {
		t.Errorf("got %q", got)
	}
	if got := r.Header(false); got != "Workspace.Baseplate (bp)" {
		t.Errorf("got %q", got)
	}
}

func TestValueComp(t *testing.T) {
	v := Vector3("1", "", "3")
	for i, want := range []string{"1", "0", "3", "0"} {
		if got := v.Comp(i); got != want {
			t.Errorf("Comp(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestCFramePads(t *testing.T) {
	v := CFrame("1", "2", "3")
	if len(v.Comps) != 12 {
		t.Fatalf("got %d comps", len(v.Comps))
	}
	if v.Comps[0] != "1" || v.Comps[11] != "0" {
		t.Errorf("comps = %v", v.Comps)
	}
}

func TestKindFromTag(t *testing.T) {
	for tag, want := range map[string]Kind{
		"string":                  KindString,
		"double":                  KindFloat,
		"CoordinateFrame":         KindCFrame,
		"Axes":                    KindFaces,
		"ProtectedString":         KindBinary,
		"OptionalCoordinateFrame": KindOptionalCFrame,
	} {
		got, ok := KindFromTag(tag)
		if !ok || got != want {
			t.Errorf("KindFromTag(%q) = %v, %v", tag, got, ok)
		}
	}
	if _, ok := KindFromTag("QDir"); ok {
		t.Error("QDir should be unsupported")
	}
}

func TestNodeSetProp(t *testing.T) {
	n := &Node{}
	n.SetProp("Anchored", Bool(false))
	n.SetProp("Anchored", Bool(true))
	if len(n.Properties) != 1 {
		t.Fatalf("properties = %+v", n.Properties)
	}
	v, ok := n.Prop("Anchored")
	if !ok || v.Str != "true" {
		t.Errorf("got %+v, %v", v, ok)
	}
}

func TestNodeCount(t *testing.T) {
	root := &Node{}
	a := root.AddChild(&Node{})
	a.AddChild(&Node{})
	root.AddChild(&Node{})
	if got := root.Count(); got != 4 {
		t.Errorf("Count() = %d", got)
	}
}
