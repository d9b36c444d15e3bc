package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/BryanDedeur/rbxlx-to-md/config"
	"github.com/BryanDedeur/rbxlx-to-md/match"
)

type MainConfig struct {
	Settings string `cli:"name=s aliases=settings desc='settings file (default settings.json)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// loadSettings reads the configured settings file, falling back to an
// empty filter when it does not exist.
func (cfg *MainConfig) loadSettings() (*match.Config, error) {
	path := cfg.Settings
	if path == "" {
		path = config.DefaultFile
	}
	mCfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("settings file not found, using defaults", "path", path)
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	slog.Info("settings loaded", "path", path)
	return mCfg, nil
}

type ExportConfig struct {
	*MainConfig

	ShowClass  bool   `cli:"name=c aliases=class desc='include class names in record headers'"`
	SingleFile bool   `cli:"name=f aliases=single desc='write one file instead of one per top-level group'"`
	NoProps    bool   `cli:"name=P aliases=no-properties desc='omit property lines'"`
	Dir        string `cli:"name=d aliases=dir desc='output directory (default input basename)'"`

	Export *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Build *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='force colored output'"`

	Diff *cli.Command
}
