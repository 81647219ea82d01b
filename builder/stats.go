// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/jumpmaze/modegraph"

// Summary describes the shape of a built graph.
type Summary struct {
	Vertices   int // always 2·cells
	Edges      int
	InPlane    int // edges that keep the mode
	CrossPlane int // edges that switch the mode, goal link included
	SelfLoops  int // zero-length jumps
}

// Stats walks every edge of mg once. A nil graph yields the zero Summary.
func Stats(mg *modegraph.Graph) Summary {
	if mg == nil {
		return Summary{}
	}
	s := Summary{Vertices: mg.VertexCount(), Edges: mg.EdgeCount()}
	for _, e := range mg.Edges() {
		switch {
		case e.From == e.To:
			s.SelfLoops++
			s.InPlane++
		case e.From.Mode == e.To.Mode:
			s.InPlane++
		default:
			s.CrossPlane++
		}
	}
	return s
}
