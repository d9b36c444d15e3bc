package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/BryanDedeur/rbxlx-to-md/parse"
	"github.com/BryanDedeur/rbxlx-to-md/rbxlx"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	dirPath := "."
	if len(args) != 0 {
		dirPath = args[0]
	}

	var files []string
	err = filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error scanning %s: %w", dirPath, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no record files found in %s", dirPath)
	}

	b := parse.NewBuilder()
	total := 0
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", f, err)
		}
		recs := parse.Records(data)
		for _, r := range recs {
			if err := b.Insert(r); err != nil {
				return fmt.Errorf("error inserting record %q from %s: %w", r.Path, f, err)
			}
		}
		total += len(recs)
		slog.Info("scanned record file", "file", f, "records", len(recs))
	}

	if err := rbxlx.Write(cc.Out, b.Roots()); err != nil {
		return fmt.Errorf("error writing document: %w", err)
	}
	slog.Info("document rebuilt", "records", total, "roots", len(b.Roots()))
	return nil
}
