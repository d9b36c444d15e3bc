package ir

import "fmt"

// Record is the flat, path-addressed encoding of one Node: produced
// by the encoder walk, consumed by the tree builder. Records are
// transient; they live only as long as one conversion run.
type Record struct {
	Path       string
	ID         string
	Class      string
	Properties []string
}

// Header renders the record's header line.
func (r Record) Header(showClass bool) string {
	if showClass {
		return fmt.Sprintf("%s (%s) [%s]", r.Path, r.ID, r.Class)
	}
	return fmt.Sprintf("%s (%s)", r.Path, r.ID)
}
