package parse

import (
	"strings"

	"github.com/google/uuid"

	"github.com/BryanDedeur/rbxlx-to-md/debug"
	"github.com/BryanDedeur/rbxlx-to-md/ir"
	"github.com/BryanDedeur/rbxlx-to-md/objpath"
)

// Builder reconstructs a document tree from an unordered bag of
// records. A path segment with no record of its own becomes a
// placeholder Folder node with a fresh id; if the authoritative record
// for that exact path arrives later, the placeholder is completed in
// place, so insertion order never duplicates nodes.
type Builder struct {
	roots []*ir.Node
	index map[string]*ir.Node

	// NewID mints identifiers for placeholder nodes. Tests override
	// it for stable output.
	NewID func() string
}

func NewBuilder() *Builder {
	return &Builder{
		index: map[string]*ir.Node{},
		NewID: uuid.NewString,
	}
}

// Insert adds one record to the tree being built.
func (b *Builder) Insert(rec ir.Record) error {
	segs := objpath.Split(rec.Path)
	if len(segs) == 0 {
		return ErrEmptyPath
	}
	prefix := ""
	var parent *ir.Node
	for _, seg := range segs {
		prefix = objpath.Join(prefix, seg)
		n, ok := b.index[prefix]
		if !ok {
			n = &ir.Node{Class: "Folder", ID: b.NewID(), Name: seg}
			b.index[prefix] = n
			if parent == nil {
				b.roots = append(b.roots, n)
			} else {
				parent.AddChild(n)
			}
			if debug.Build() {
				debug.Logf("build: created %q\n", prefix)
			}
		}
		parent = n
	}

	// parent now addresses the record's own node; fill in the
	// authoritative data.
	parent.Class = rec.Class
	parent.ID = rec.ID
	parent.Name = segs[len(segs)-1]
	for _, line := range rec.Properties {
		name, v, ok := parseProperty(line)
		if !ok {
			continue
		}
		parent.SetProp(name, v)
	}
	return nil
}

// Roots returns the built forest, in first-insertion order.
func (b *Builder) Roots() []*ir.Node {
	return b.roots
}

// parseProperty splits an encoded property line into its name and
// inferred value. Complex headers and component sub-lines carry no
// reconstructible value and report ok=false.
func parseProperty(line string) (string, ir.Value, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "-") {
		return "", ir.Value{}, false
	}
	if strings.Contains(s, "[UNSUPPORTED TYPE:") {
		return "", ir.Value{}, false
	}
	s = strings.TrimSpace(s[1:])
	name, raw, found := strings.Cut(s, ":")
	if !found {
		return "", ir.Value{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ir.Value{}, false
	}
	return name, Infer(strings.TrimSpace(raw)), true
}
