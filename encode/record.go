package encode

import (
	"io"
	"sort"
	"strings"

	"github.com/BryanDedeur/rbxlx-to-md/ir"
	"github.com/BryanDedeur/rbxlx-to-md/objpath"
)

// nodeProperties encodes a node's generic properties, sorted by name.
// Name and UniqueId never appear: they are first-class node fields.
// Empty attribute blobs carry no information and are dropped.
func nodeProperties(n *ir.Node, es *encState) []string {
	props := make([]ir.Property, len(n.Properties))
	copy(props, n.Properties)
	sort.SliceStable(props, func(i, j int) bool { return props[i].Name < props[j].Name })

	var lines []string
	for _, p := range props {
		switch p.Name {
		case "Name", "UniqueId":
			continue
		case "AttributesSerialize", "Tags":
			if strings.TrimSpace(p.Value.Str) == "" {
				continue
			}
		}
		lines = append(lines, propertyLines(p.Name, p.Value, 0, es)...)
	}
	return lines
}

// Group is a set of records sharing a top-level path segment.
type Group struct {
	Name    string
	Records []ir.Record
}

// GroupRecords splits records by their first path segment, preserving
// first-seen group order. Records with an empty path land in "Root".
func GroupRecords(recs []ir.Record) []Group {
	byName := map[string]int{}
	var groups []Group
	for _, r := range recs {
		name := "Root"
		if segs := objpath.Split(r.Path); len(segs) > 0 {
			name = segs[0]
		}
		i, ok := byName[name]
		if !ok {
			i = len(groups)
			byName[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// WriteRecords writes records as text blocks, sorted by path, one
// blank line between blocks.
func WriteRecords(w io.Writer, recs []ir.Record, opts ...Option) error {
	es := newEncState(opts)
	sorted := make([]ir.Record, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, r := range sorted {
		if _, err := io.WriteString(w, r.Header(es.showClass)); err != nil {
			return err
		}
		if es.showProperties {
			for _, ln := range r.Properties {
				if _, err := io.WriteString(w, "\n"+ln); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
}
