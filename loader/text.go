// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/jumpmaze/grid"
)

// ParseText reads the whitespace-separated text format from r.
func ParseText(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tokens := 0

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("loader: read %s: %w", what, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrTruncated, what)
		}
		tokens++
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: token %d (%s) %q is not an integer", ErrMalformed, tokens, what, sc.Text())
		}
		return v, nil
	}

	rows, err := next("row count")
	if err != nil {
		return nil, err
	}
	cols, err := next("column count")
	if err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}

	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			v, err := next(fmt.Sprintf("cell (%d,%d)", r+1, c+1))
			if err != nil {
				return nil, err
			}
			values[r][c] = v
		}
	}
	if sc.Scan() {
		return nil, fmt.Errorf("%w: %q after %dx%d board", ErrTrailingData, sc.Text(), rows, cols)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return grid.New(values)
}
