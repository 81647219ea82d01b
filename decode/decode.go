// SPDX-License-Identifier: MIT

// Package decode turns a vertex path from bfs back into board coordinates.
//
// Each vertex contributes the 1-indexed coordinate of its cell,
// (index/C + 1, index%C + 1). Vertices are mode-tagged, so the goal-link
// step visits the goal cell twice in a row; a vertex whose cell equals the
// previous one is skipped, and the decoded path names physical cells only.
package decode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/jumpmaze/modegraph"
)

var (
	// ErrEmptyPath is returned for a nil or empty path. An unreachable goal
	// must be reported by the caller instead of decoded.
	ErrEmptyPath = errors.New("decode: path is empty")

	// ErrBadColumns is returned when the column count is not positive.
	ErrBadColumns = errors.New("decode: column count must be positive")
)

// Coord is a 1-indexed board position.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// At converts a row-major cell index on a board with cols columns.
func At(index, cols int) Coord {
	return Coord{Row: index/cols + 1, Col: index%cols + 1}
}

// Path decodes path on a board with cols columns. The result starts at the
// first vertex's cell, ends at the last vertex's cell and never repeats a
// coordinate twice in a row.
func Path(path []modegraph.Vertex, cols int) ([]Coord, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if cols < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadColumns, cols)
	}

	out := make([]Coord, 0, len(path))
	prev := -1
	for _, v := range path {
		if v.Index == prev {
			continue
		}
		out = append(out, At(v.Index, cols))
		prev = v.Index
	}
	return out, nil
}

// Format joins coords with single spaces: "(1,1) (2,1) (2,2)".
func Format(coords []Coord) string {
	var sb strings.Builder
	for i, c := range coords {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
