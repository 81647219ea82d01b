package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/jumpmaze/internal/app"
)

// DefaultInput is read when no puzzle path is given.
const DefaultInput = "input.txt"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("jumpmaze", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
jumpmaze - finds the fewest-jump route across a jump-length board.

Usage:
  jumpmaze [options] [PUZZLE_PATH]

Arguments:
  PUZZLE_PATH
    Text puzzle ("R C" then R*C jump lengths) or an .hcl puzzle.
    Defaults to input.txt.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the puzzle file.")
	iFlag := flagSet.String("i", "", "Path to the puzzle file (shorthand).")
	outputFlag := flagSet.String("output", app.OutputCoords, "Output format. Options: 'coords' or 'board'.")
	maxJumpsFlag := flagSet.Int("max-jumps", 0, "Give up on paths longer than this many jumps. 0 is unbounded.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	metricsFileFlag := flagSet.String("metrics-file", "", "Write Prometheus metrics to this file on exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := DefaultInput
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one puzzle path, got %d", flagSet.NArg())}
	}
	slog.Debug("Puzzle path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		InputPath:   path,
		Output:      strings.ToLower(*outputFlag),
		MaxJumps:    *maxJumpsFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		MetricsFile: *metricsFileFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
