// Package jumpmaze finds the fewest-jump route across a jump-length board.
//
// What is a jump board?
//
//	Each cell holds an integer jump length. The walker starts in the top-left
//	cell moving orthogonally and must reach the bottom-right cell. From a cell
//	with value j it jumps |j| cells in a straight line. A negative value also
//	switches the movement style: orthogonal (up, down, left, right) becomes
//	diagonal and back again.
//
// How is it solved?
//
//	grid/      - immutable board of jump lengths, index and offset math
//	modegraph/ - directed graph over (cell, mode) vertices
//	builder/   - expands a board into the two-plane jump graph
//	bfs/       - breadth-first traversal and shortest-path extraction
//	decode/    - turns a vertex path into 1-based (row,col) coordinates
//	solver/    - runs the pipeline with logging and Prometheus metrics
//	loader/    - reads "R C" text puzzles and .hcl puzzle files
//	render/    - draws a board with the route highlighted
//
// Quick example:
//
//	1  1
//	1 -1
//
// is solved by (1,1) (2,1) (2,2): one vertical jump, then one horizontal
// jump onto the goal.
//
// The command line front end lives in cmd/jumpmaze:
//
//	go install github.com/katalvlaran/jumpmaze/cmd/jumpmaze@latest
//	jumpmaze -output board input.txt
package jumpmaze
