package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BryanDedeur/rbxlx-to-md/match"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{
  "class_blacklist": ["Camera", "Terrain"],
  "use_class_blacklist": true,
  "path_whitelist": ["game.Workspace"],
  "use_path_whitelist": true,
  "exclude_no_id_items": true
}`)
	got, err := Parse(data, ".json")
	if err != nil {
		t.Fatal(err)
	}
	want := &match.Config{
		ClassBlacklist:    []string{"Camera", "Terrain"},
		UseClassBlacklist: true,
		PathWhitelist:     []string{"game.Workspace"},
		UsePathWhitelist:  true,
		ExcludeNoID:       true,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
class_blacklist:
  - Camera
use_class_blacklist: true
`)
	got, err := Parse(data, ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !got.UseClassBlacklist || len(got.ClassBlacklist) != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
path_blacklist = ["game.ServerStorage"]
use_path_blacklist = true
`)
	got, err := Parse(data, ".toml")
	if err != nil {
		t.Fatal(err)
	}
	want := &match.Config{
		PathBlacklist:    []string{"game.ServerStorage"},
		UsePathBlacklist: true,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

// The Ignore shorthand maps onto the blacklists and forces their use
// flags on.
func TestParseIgnoreShorthand(t *testing.T) {
	data := []byte(`{
  "Ignore": {
    "ClassName": ["Camera"],
    "Path": ["game.Workspace.Camera"]
  }
}`)
	got, err := Parse(data, ".json")
	if err != nil {
		t.Fatal(err)
	}
	want := &match.Config{
		ClassBlacklist:    []string{"Camera"},
		UseClassBlacklist: true,
		PathBlacklist:     []string{"game.Workspace.Camera"},
		UsePathBlacklist:  true,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse([]byte("{}"), ".json")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), got); d != "" {
		t.Error(d)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("{not json"), ".json"); err == nil {
		t.Error("expected error")
	}
	if _, err := Parse([]byte("= broken"), ".toml"); err == nil {
		t.Error("expected error")
	}
}
