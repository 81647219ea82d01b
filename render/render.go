// SPDX-License-Identifier: MIT

// Package render draws a board for the terminal with the solution path marked.
//
// Every cell is right-aligned to the width of the widest value. Cells on the
// path are wrapped in brackets so the route stays readable without colour;
// on a colour terminal lipgloss additionally highlights path, start and goal.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/jumpmaze/decode"
	"github.com/katalvlaran/jumpmaze/grid"
)

var (
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	startStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	goalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// Board renders g one row per line, marking every cell in coords.
// coords may be nil to draw a bare board.
func Board(g *grid.Grid, coords []decode.Coord) string {
	onPath := make(map[int]bool, len(coords))
	for _, c := range coords {
		onPath[g.Index(c.Row-1, c.Col-1)] = true
	}

	width := 0
	for idx := 0; idx < g.Size(); idx++ {
		if n := len(strconv.Itoa(g.ValueAt(idx))); n > width {
			width = n
		}
	}
	// brackets plus the padded value
	width += 2

	lines := make([]string, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		cells := make([]string, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			idx := g.Index(r, c)
			text := strconv.Itoa(g.ValueAt(idx))
			style := cellStyle
			if onPath[idx] {
				text = "[" + text + "]"
				style = pathStyle
				switch idx {
				case g.Start():
					style = startStyle
				case g.Goal():
					style = goalStyle
				}
			} else {
				text += " "
			}
			cells[c] = style.Width(width).Align(lipgloss.Right).Render(text)
		}
		lines[r] = strings.Join(cells, " ")
	}
	return strings.Join(lines, "\n")
}
