// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/jumpmaze/grid"
)

// hclPuzzleFile is the top-level structure of an HCL puzzle file.
type hclPuzzleFile struct {
	Name string    `hcl:"name,optional"`
	Rows *int      `hcl:"rows,optional"`
	Cols *int      `hcl:"cols,optional"`
	Grid cty.Value `hcl:"grid"`
}

// boardType is the shape the grid attribute is converted to before decoding.
var boardType = cty.List(cty.List(cty.Number))

// ParseHCL decodes an HCL puzzle. filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (*Puzzle, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrHCL, filename, diags)
	}

	var parsed hclPuzzleFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrHCL, filename, diags)
	}

	values, err := boardValues(parsed.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: grid: %w", ErrHCL, filename, err)
	}
	g, err := grid.New(values)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", filename, err)
	}
	if parsed.Rows != nil && *parsed.Rows != g.Rows() {
		return nil, fmt.Errorf("%w: %s declares rows = %d, grid has %d", ErrDimensions, filename, *parsed.Rows, g.Rows())
	}
	if parsed.Cols != nil && *parsed.Cols != g.Cols() {
		return nil, fmt.Errorf("%w: %s declares cols = %d, grid has %d", ErrDimensions, filename, *parsed.Cols, g.Cols())
	}

	return &Puzzle{Name: parsed.Name, Grid: g}, nil
}

// boardValues converts a tuple-of-tuples (or list-of-lists) value into
// [][]int. Fractional numbers are rejected by gocty.
func boardValues(val cty.Value) ([][]int, error) {
	if val.IsNull() {
		return nil, errors.New("must not be null")
	}
	if !val.IsWhollyKnown() {
		return nil, errors.New("must be known at load time")
	}
	list, err := convert.Convert(val, boardType)
	if err != nil {
		return nil, fmt.Errorf("must be a list of rows of numbers: %w", err)
	}
	var values [][]int
	if err := gocty.FromCtyValue(list, &values); err != nil {
		return nil, err
	}
	return values, nil
}
