package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/jumpmaze/internal/app"
	"github.com/katalvlaran/jumpmaze/internal/cli"
	"github.com/katalvlaran/jumpmaze/solver"
)

// exitUnreachable is the exit code for a board with no route to the goal.
const exitUnreachable = 3

// main is the entrypoint for the jumpmaze application.
func main() {
	// Use a minimal logger until the full one is configured.
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

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, logW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	jumpmaze, err := app.NewApp(outW, logW, config)
	if err != nil {
		return err
	}
	err = jumpmaze.Run(context.Background())
	if errors.Is(err, solver.ErrUnreachable) {
		return &cli.ExitError{Code: exitUnreachable, Message: err.Error()}
	}
	return err
}
