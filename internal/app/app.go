// Package app wires the jumpmaze CLI together: logging, loading, solving,
// printing and the optional Prometheus textfile.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/jumpmaze/ctxlog"
	"github.com/katalvlaran/jumpmaze/decode"
	"github.com/katalvlaran/jumpmaze/loader"
	"github.com/katalvlaran/jumpmaze/render"
	"github.com/katalvlaran/jumpmaze/solver"
)

// App is one configured CLI run.
type App struct {
	outW     io.Writer
	config   *Config
	logger   *slog.Logger
	registry *prometheus.Registry
	solver   *solver.Solver
}

// NewApp builds an App that prints results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)

	registry := prometheus.NewRegistry()
	metrics, err := solver.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &App{
		outW:     outW,
		config:   cfg,
		logger:   logger,
		registry: registry,
		solver:   solver.New(solver.WithMetrics(metrics), solver.WithMaxJumps(cfg.MaxJumps)),
	}, nil
}

// Run loads the puzzle, solves it and prints the result. An unreachable goal
// prints a "no path" line and returns an error matching solver.ErrUnreachable.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	defer func() {
		if ferr := a.flushMetrics(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	a.logger.Debug("Loading puzzle.", "path", a.config.InputPath)
	puzzle, err := loader.Load(a.config.InputPath)
	if err != nil {
		return err
	}
	g := puzzle.Grid
	a.logger.Info("Puzzle loaded.", "name", puzzle.Name, "rows", g.Rows(), "cols", g.Cols())

	sol, err := a.solver.Solve(ctx, g)
	if errors.Is(err, solver.ErrUnreachable) {
		fmt.Fprintf(a.outW, "no path from %s to %s\n", decode.At(g.Start(), g.Cols()), decode.At(g.Goal(), g.Cols()))
		return err
	}
	if err != nil {
		return err
	}

	if a.config.Output == OutputBoard {
		fmt.Fprintln(a.outW, render.Board(g, sol.Coords))
	}
	fmt.Fprintln(a.outW, decode.Format(sol.Coords))
	return nil
}

// flushMetrics writes the registry to the configured textfile, if any.
func (a *App) flushMetrics() error {
	if a.config.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.config.MetricsFile, a.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", a.config.MetricsFile, err)
	}
	a.logger.Debug("Metrics written.", "path", a.config.MetricsFile)
	return nil
}
