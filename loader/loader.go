// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/jumpmaze/grid"
)

var (
	// ErrMalformed indicates a token that is not an integer.
	ErrMalformed = errors.New("loader: malformed input")
	// ErrDimensions indicates non-positive or inconsistent board dimensions.
	ErrDimensions = errors.New("loader: invalid dimensions")
	// ErrTruncated indicates the input ended before R·C values were read.
	ErrTruncated = errors.New("loader: input truncated")
	// ErrTrailingData indicates extra tokens after the board.
	ErrTrailingData = errors.New("loader: trailing data after board")
	// ErrHCL wraps HCL parse and decode diagnostics.
	ErrHCL = errors.New("loader: invalid HCL puzzle")
)

// Puzzle is a loaded board plus its optional display name.
type Puzzle struct {
	Name string
	Grid *grid.Grid
}

// Load reads the puzzle at path, choosing the format by extension.
// A text file's name (without extension) becomes the puzzle name.
func Load(path string) (*Puzzle, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return ParseHCL(src, path)
	}
	g, err := ParseText(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Base(path)
	return &Puzzle{Name: strings.TrimSuffix(base, filepath.Ext(base)), Grid: g}, nil
}
