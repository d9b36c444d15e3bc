// Package objpath implements the dotted-path grammar addressing nodes
// in a flattened document: plain segments join with ".", segments
// containing a space are written ["like this"] and self-delimit.
package objpath

import "strings"

// Quote wraps name in the bracket form when it contains a space.
func Quote(name string) string {
	if strings.Contains(name, " ") {
		return `["` + name + `"]`
	}
	return name
}

// Join appends name to parent. The bracket form carries its own
// delimiters, so no dot is inserted before it.
func Join(parent, name string) string {
	seg := Quote(name)
	if parent == "" {
		return seg
	}
	if strings.Contains(name, " ") {
		return parent + seg
	}
	return parent + "." + seg
}

// Split tokenizes a path into its segments, inverting Join. A token
// opening with [" runs through the closing "] and swallows a trailing
// dot; anything else runs to the next dot. An unterminated [" is not
// an error: the bracket is treated as an ordinary character.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	var segs []string
	var cur strings.Builder
	i := 0
	for i < len(path) {
		if strings.HasPrefix(path[i:], `["`) {
			end := strings.Index(path[i+2:], `"]`)
			if end >= 0 {
				if cur.Len() > 0 {
					segs = append(segs, cur.String())
					cur.Reset()
				}
				segs = append(segs, unescape(path[i+2:i+2+end]))
				i += end + 4
				if i < len(path) && path[i] == '.' {
					i++
				}
				continue
			}
			// fall through: unterminated quote, keep the bracket
		}
		if path[i] == '.' {
			segs = append(segs, cur.String())
			cur.Reset()
			i++
			continue
		}
		cur.WriteByte(path[i])
		i++
	}
	if cur.Len() > 0 {
		segs = append(segs, cur.String())
	}
	return segs
}

// Leaf returns the final segment of path, quote-stripped.
func Leaf(path string) string {
	segs := Split(path)
	if len(segs) == 0 {
		return path
	}
	return segs[len(segs)-1]
}

func unescape(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}
