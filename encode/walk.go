package encode

import (
	"github.com/BryanDedeur/rbxlx-to-md/debug"
	"github.com/BryanDedeur/rbxlx-to-md/ir"
	"github.com/BryanDedeur/rbxlx-to-md/match"
	"github.com/BryanDedeur/rbxlx-to-md/objpath"
)

// Sentinel values for nodes missing identity or name. Missing fields
// are not errors; they default and the walk continues.
const (
	NoID    = "NoId"
	Unnamed = "Unnamed"
)

// Walker flattens a document tree into records, pre-order, siblings in
// document order. A Walker owns one traversal pass: the processed-id
// set dedups nodes reachable through more than one position and must
// not be shared across concurrent walks.
type Walker struct {
	cfg       *match.Config
	es        *encState
	processed map[string]bool

	// Visit, when set, is called once per visited node, before
	// filtering. Callers use it for progress reporting.
	Visit func(n *ir.Node)
}

func NewWalker(cfg *match.Config, opts ...Option) *Walker {
	if cfg == nil {
		cfg = &match.Config{}
	}
	return &Walker{
		cfg:       cfg,
		es:        newEncState(opts),
		processed: map[string]bool{},
	}
}

// Walk traverses the tree rooted at n and returns the records of all
// accepted nodes. parentPath is the already-accepted path above n,
// empty at the document root.
func (w *Walker) Walk(n *ir.Node, parentPath string) []ir.Record {
	if n == nil {
		return nil
	}
	if w.Visit != nil {
		w.Visit(n)
	}

	class := n.Class
	if class == "" {
		class = "Unknown"
	}

	// A class-excluded node contributes no record and no path segment:
	// its children are judged against the same parent path.
	if !match.IncludeClass(class, w.cfg) {
		if debug.Walk() {
			debug.Logf("walk: class %s excluded at %q\n", class, parentPath)
		}
		var recs []ir.Record
		for _, c := range n.Children {
			recs = append(recs, w.Walk(c, parentPath)...)
		}
		return recs
	}

	name := n.Name
	if name == "" {
		name = Unnamed
	}
	id := n.ID
	if id == "" {
		id = NoID
	}

	if w.processed[id] {
		return nil
	}
	if w.cfg.ExcludeNoID && id == NoID {
		return nil
	}

	currentPath := objpath.Join(parentPath, name)
	w.processed[id] = true

	var recs []ir.Record
	if match.IncludePath(currentPath, w.cfg) {
		recs = append(recs, ir.Record{
			Path:       currentPath,
			ID:         id,
			Class:      class,
			Properties: nodeProperties(n, w.es),
		})
	} else if debug.Walk() {
		debug.Logf("walk: path %q excluded\n", currentPath)
	}

	// Children always walk: a descendant may satisfy the whitelist
	// even when this path does not.
	for _, c := range n.Children {
		recs = append(recs, w.Walk(c, currentPath)...)
	}
	return recs
}
