// Package config loads the filter settings record supplied to a run.
// Settings files are JSON or YAML (JSON being a YAML subset, one
// decoder covers both) or TOML, chosen by extension.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/BryanDedeur/rbxlx-to-md/match"
)

// DefaultFile is consulted when no settings file is named.
const DefaultFile = "settings.json"

// Default returns the settings used when no file is present: no
// filtering at all.
func Default() *match.Config {
	return &match.Config{}
}

// ignore is the shorthand settings form: entries map onto the class
// and path blacklists with their use flags forced on.
type ignore struct {
	ClassName []string `yaml:"ClassName" json:"ClassName" toml:"ClassName"`
	Path      []string `yaml:"Path" json:"Path" toml:"Path"`
}

type shorthand struct {
	Ignore *ignore `yaml:"Ignore" json:"Ignore" toml:"Ignore"`
}

// Load reads a settings file. Unknown keys are ignored; keys absent
// from the file keep their defaults.
func Load(path string) (*match.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes settings bytes. ext selects the decoder (".toml" or
// anything YAML/JSON-shaped).
func Parse(data []byte, ext string) (*match.Config, error) {
	cfg := Default()
	sh := &shorthand{}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error decoding settings: %w", err)
		}
		if err := toml.Unmarshal(data, sh); err != nil {
			return nil, fmt.Errorf("error decoding settings: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error decoding settings: %w", err)
		}
		if err := yaml.Unmarshal(data, sh); err != nil {
			return nil, fmt.Errorf("error decoding settings: %w", err)
		}
	}
	if sh.Ignore != nil {
		if len(sh.Ignore.ClassName) > 0 {
			cfg.ClassBlacklist = sh.Ignore.ClassName
			cfg.UseClassBlacklist = true
		}
		if len(sh.Ignore.Path) > 0 {
			cfg.PathBlacklist = sh.Ignore.Path
			cfg.UsePathBlacklist = true
		}
	}
	return cfg, nil
}
