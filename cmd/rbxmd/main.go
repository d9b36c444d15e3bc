package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	cli.MainContext(context.Background(), MainCommand())
}
