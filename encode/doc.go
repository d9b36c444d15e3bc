// Package encode flattens an IR document tree into path-addressed
// text records.
//
// # Usage
//
//	// Walk a tree into records
//	w := encode.NewWalker(&cfg)
//	recs := w.Walk(root, "")
//
//	// Write records grouped by top-level segment
//	groups := encode.GroupRecords(recs)
//	for _, g := range groups {
//	    encode.WriteRecords(f, g.Records, encode.ShowClass(true))
//	}
//
// # Related Packages
//
//   - github.com/BryanDedeur/rbxlx-to-md/ir - document tree model
//   - github.com/BryanDedeur/rbxlx-to-md/parse - records back to a tree
//   - github.com/BryanDedeur/rbxlx-to-md/match - node filtering
package encode
