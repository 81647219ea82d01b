package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumpmaze/solver"
)

func writePuzzle(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	c, err := NewConfig(cfg)
	require.NoError(t, err)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	a, err := NewApp(out, logs, c)
	require.NoError(t, err)
	return a, out, logs
}

func TestRun_Coords(t *testing.T) {
	path := writePuzzle(t, "input.txt", "2 2\n1 1\n1 -1\n")
	a, out, logs := newTestApp(t, Config{InputPath: path, LogLevel: "info"})

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, "(1,1) (2,1) (2,2)\n", out.String())
	require.Contains(t, logs.String(), "run_id=")
	require.Contains(t, logs.String(), "Board solved.")
}

func TestRun_Board(t *testing.T) {
	path := writePuzzle(t, "corner.hcl", "grid = [[1, 1], [1, -1]]\n")
	a, out, _ := newTestApp(t, Config{InputPath: path, Output: OutputBoard})

	require.NoError(t, a.Run(context.Background()))
	require.Contains(t, out.String(), "[-1]")
	require.Contains(t, out.String(), "(1,1) (2,1) (2,2)")
}

func TestRun_Unreachable(t *testing.T) {
	path := writePuzzle(t, "stuck.txt", "2 3\n9 1 1\n1 1 1\n")
	metrics := filepath.Join(t.TempDir(), "jumpmaze.prom")
	a, out, _ := newTestApp(t, Config{InputPath: path, MetricsFile: metrics})

	err := a.Run(context.Background())
	require.ErrorIs(t, err, solver.ErrUnreachable)
	require.Equal(t, "no path from (1,1) to (2,3)\n", out.String())

	prom, rerr := os.ReadFile(metrics)
	require.NoError(t, rerr)
	require.Contains(t, string(prom), `jumpmaze_solves_total{outcome="unreachable"} 1`)
}

func TestRun_LoadError(t *testing.T) {
	a, _, _ := newTestApp(t, Config{InputPath: filepath.Join(t.TempDir(), "missing.txt")})
	err := a.Run(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	cfg, err := NewConfig(Config{InputPath: "x"})
	require.NoError(t, err)
	require.Equal(t, OutputCoords, cfg.Output)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	newLogger("error", "json", &buf).Warn("hidden")
	require.Empty(t, buf.String())

	newLogger("debug", "json", &buf).Debug("shown")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	newLogger("bogus", "text", &buf).Info("fallback")
	require.Contains(t, buf.String(), "msg=fallback")
}
