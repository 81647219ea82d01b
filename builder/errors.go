// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrNilGrid indicates Build was called without a grid.
var ErrNilGrid = errors.New("builder: grid is nil")

// ErrConstructFailed indicates the graph rejected an edge during construction.
// Bounds are checked before every insert, so seeing it means a programming error.
var ErrConstructFailed = errors.New("builder: graph construction failed")
