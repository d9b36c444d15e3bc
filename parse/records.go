package parse

import (
	"regexp"
	"strings"

	"github.com/BryanDedeur/rbxlx-to-md/ir"
)

// headerRx matches a record header: path (id), optionally followed by
// [class]. The class bracket is only present when the export enabled
// class display.
var headerRx = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)(?:\s*\[([^]]+)\])?\s*$`)

// Records scans exported text into records. Blocks are separated by
// blank lines; "- " lines attach to the preceding header as encoded
// property text. Property lines are recognized before headers so that
// a value containing parentheses, like RGB(255, 0, 0), is never
// mistaken for a header. Unrecognized lines are dropped: scanning is
// total and a damaged line never aborts the file.
func Records(d []byte) []ir.Record {
	var (
		recs []ir.Record
		cur  *ir.Record
	)
	flush := func() {
		if cur != nil {
			recs = append(recs, *cur)
			cur = nil
		}
	}
	for _, line := range strings.Split(string(d), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "- ") {
			if cur != nil {
				cur.Properties = append(cur.Properties, line)
			}
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(line, " "), "- ") {
			// indented component line of a complex property; the
			// rebuild has no typed template for it, so it is dropped
			// with its header
			continue
		}
		m := headerRx.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		flush()
		class := m[3]
		if class == "" {
			// class display was off for this export
			class = "Part"
		}
		cur = &ir.Record{
			Path:  strings.TrimSpace(m[1]),
			ID:    strings.TrimSpace(m[2]),
			Class: strings.TrimSpace(class),
		}
	}
	flush()
	return recs
}
