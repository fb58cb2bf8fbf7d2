package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/contracts_tracker/internal/cli"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if err := cli.NewRootCommand(os.Stdout, logger).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
