// Package parse reads flattened record text back into an IR document
// tree.
//
// # Usage
//
//	// Scan record blocks from an exported file
//	recs := parse.Records(data)
//
//	// Rebuild the tree
//	b := parse.NewBuilder()
//	for _, r := range recs {
//	    b.Insert(r)
//	}
//	roots := b.Roots()
//
// Property values carry no type tag in the text form; Infer rederives
// the type by ordered syntactic matching and is therefore a
// best-effort inverse of encoding (a digit-only token comes back as an
// integer).
//
// # Related Packages
//
//   - github.com/BryanDedeur/rbxlx-to-md/ir - document tree model
//   - github.com/BryanDedeur/rbxlx-to-md/encode - tree to records
package parse
