// Package match decides which nodes of a walk are emitted, by class
// tag and by path, using whitelist/blacklist pattern sets.
package match

import (
	"regexp"
	"strings"
)

// Config is the filter configuration for one run. It is not mutated
// by the matching functions.
type Config struct {
	PathWhitelist  []string `yaml:"path_whitelist" json:"path_whitelist" toml:"path_whitelist"`
	PathBlacklist  []string `yaml:"path_blacklist" json:"path_blacklist" toml:"path_blacklist"`
	ClassWhitelist []string `yaml:"class_whitelist" json:"class_whitelist" toml:"class_whitelist"`
	ClassBlacklist []string `yaml:"class_blacklist" json:"class_blacklist" toml:"class_blacklist"`

	UsePathWhitelist  bool `yaml:"use_path_whitelist" json:"use_path_whitelist" toml:"use_path_whitelist"`
	UsePathBlacklist  bool `yaml:"use_path_blacklist" json:"use_path_blacklist" toml:"use_path_blacklist"`
	UseClassWhitelist bool `yaml:"use_class_whitelist" json:"use_class_whitelist" toml:"use_class_whitelist"`
	UseClassBlacklist bool `yaml:"use_class_blacklist" json:"use_class_blacklist" toml:"use_class_blacklist"`

	ExcludeNoID bool `yaml:"exclude_no_id_items" json:"exclude_no_id_items" toml:"exclude_no_id_items"`
}

// RootPrefix is stripped from configured path patterns before
// comparison: users write paths the way the editor displays them,
// rooted at "game", but walked paths start below that root.
const RootPrefix = "game."

// IncludeClass reports whether a node of the given class survives the
// class whitelist/blacklist.
func IncludeClass(class string, cfg *Config) bool {
	if cfg.UseClassWhitelist && len(cfg.ClassWhitelist) > 0 {
		found := false
		for _, c := range cfg.ClassWhitelist {
			if c == class {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if cfg.UseClassBlacklist {
		for _, c := range cfg.ClassBlacklist {
			if c == class {
				return false
			}
		}
	}
	return true
}

// IncludePath reports whether a walked path survives the path
// whitelist/blacklist. With an active whitelist the path must be under
// at least one entry; with an active blacklist it must be under none.
func IncludePath(path string, cfg *Config) bool {
	if cfg.UsePathWhitelist && len(cfg.PathWhitelist) > 0 {
		found := false
		for _, pat := range cfg.PathWhitelist {
			if isUnder(path, strings.TrimPrefix(pat, RootPrefix)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if cfg.UsePathBlacklist {
		for _, pat := range cfg.PathBlacklist {
			if isUnder(path, strings.TrimPrefix(pat, RootPrefix)) {
				return false
			}
		}
	}
	return true
}

// isUnder reports whether path equals pattern, is a dot-descendant of
// it, or matches it when the pattern carries a * wildcard.
func isUnder(path, pattern string) bool {
	if strings.Contains(pattern, "*") {
		re, err := compileWildcard(pattern)
		if err != nil {
			return false
		}
		return re.MatchString(path)
	}
	return path == pattern || strings.HasPrefix(path, pattern+".")
}

func compileWildcard(pattern string) (*regexp.Regexp, error) {
	quoted := strings.ReplaceAll(pattern, ".", `\.`)
	quoted = strings.ReplaceAll(quoted, "*", ".*")
	return regexp.Compile("^" + quoted + "$")
}
