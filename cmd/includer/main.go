package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fwessels/includer"
	"github.com/fwessels/includer/internal/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		if opts != nil && opts.Version {
			fmt.Fprintf(stdout, "includer version %s\n", includer.Version)
		}
		return nil
	}

	cfg := opts.Config
	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	out, err := includer.ExpandWith(opts.Input, nil, includer.Options{
		Dirs:     cfg.SearchDirs(),
		MaxDepth: cfg.MaxDepth,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = fmt.Fprintln(stdout, out)
		return err
	}
	if err := os.WriteFile(opts.Output, []byte(out+"\n"), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	logger.Info("wrote output", "file", opts.Output)
	return nil
}
