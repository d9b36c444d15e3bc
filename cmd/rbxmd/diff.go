package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two record files", cli.ErrUsage)
	}
	a, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	b, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}

	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(a), string(b), true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return writeDiffs(cc.Out, diffs, useColor(cfg, cc.Out))
}

func useColor(cfg *DiffConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func writeDiffs(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	var (
		ins = color.GreenString
		del = color.RedString
	)
	for _, d := range diffs {
		text := d.Text
		switch d.Type {
		case diffpatch.DiffInsert:
			if colored {
				text = ins("%s", text)
			} else {
				text = markLines(text, "+")
			}
		case diffpatch.DiffDelete:
			if colored {
				text = del("%s", text)
			} else {
				text = markLines(text, "-")
			}
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func markLines(text, mark string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ln != "" {
			lines[i] = mark + ln
		}
	}
	return strings.Join(lines, "\n")
}
