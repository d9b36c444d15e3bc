package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/BryanDedeur/rbxlx-to-md/encode"
	"github.com/BryanDedeur/rbxlx-to-md/ir"
	"github.com/BryanDedeur/rbxlx-to-md/rbxlx"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: export requires one input file", cli.ErrUsage)
	}
	in := args[0]

	mCfg, err := cfg.loadSettings()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", in, err)
	}
	inputLines := bytes.Count(data, []byte("\n"))
	slog.Info("parsing document", "file", in, "lines", inputLines)

	root, err := rbxlx.Read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", in, err)
	}

	warn := func(msg string) { slog.Warn(msg) }
	if isatty.IsTerminal(os.Stderr.Fd()) {
		warn = func(msg string) {
			fmt.Fprintln(os.Stderr, color.YellowString("warning: %s", msg))
		}
	}
	walker := encode.NewWalker(mCfg,
		encode.ShowClass(cfg.ShowClass),
		encode.ShowProperties(!cfg.NoProps),
		encode.Warn(warn),
	)
	walker.Visit = progressFunc(root.Count() - 1)

	var recs []ir.Record
	for _, c := range root.Children {
		recs = append(recs, walker.Walk(c, "")...)
	}
	groups := encode.GroupRecords(recs)
	slog.Info("walk complete", "records", len(recs), "groups", len(groups))

	encOpts := []encode.Option{
		encode.ShowClass(cfg.ShowClass),
		encode.ShowProperties(!cfg.NoProps),
	}

	outputLines := 0
	var rows [][]string
	if cfg.SingleFile {
		buf := bytes.NewBuffer(nil)
		if err := encode.WriteRecords(buf, recs, encOpts...); err != nil {
			return err
		}
		outputLines = bytes.Count(buf.Bytes(), []byte("\n"))
		if _, err := cc.Out.Write(buf.Bytes()); err != nil {
			return err
		}
		rows = append(rows, []string{"-", fmt.Sprint(len(recs)), fmt.Sprint(outputLines)})
	} else {
		dir := cfg.Dir
		if dir == "" {
			dir = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		for _, g := range groups {
			buf := bytes.NewBuffer(nil)
			if err := encode.WriteRecords(buf, g.Records, encOpts...); err != nil {
				return err
			}
			name := filepath.Join(dir, g.Name+".md")
			if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", name, err)
			}
			lines := bytes.Count(buf.Bytes(), []byte("\n"))
			outputLines += lines
			rows = append(rows, []string{g.Name + ".md", fmt.Sprint(len(g.Records)), fmt.Sprint(lines)})
		}
		slog.Info("wrote record files", "dir", dir, "files", len(groups))
	}

	fmt.Fprintln(os.Stderr, renderTable(
		[]string{"File", "Records", "Lines"},
		rows))

	if inputLines > 0 {
		reduced := inputLines - outputLines
		slog.Info("conversion complete",
			"input_lines", inputLines,
			"output_lines", outputLines,
			"reduction_pct", fmt.Sprintf("%.2f", float64(reduced)/float64(inputLines)*100))
	}
	return nil
}

// progressFunc reports walk progress at widening milestones: every 1%
// to 10%, every 10% to 50%, then every 25%.
func progressFunc(total int) func(*ir.Node) {
	if total <= 0 {
		return nil
	}
	visited := 0
	next, step := 1.0, 1.0
	return func(*ir.Node) {
		visited++
		pct := float64(visited) / float64(total) * 100
		if pct < next && visited != total {
			return
		}
		slog.Info("processing items", "done", visited, "total", total,
			"pct", fmt.Sprintf("%.1f", pct))
		switch {
		case next >= 50:
			step = 25
		case next >= 10:
			step = 10
		}
		for next <= pct {
			next += step
		}
	}
}
