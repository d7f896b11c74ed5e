// Package dots defines the Checkpoint type and sentinel errors for
// checkpoint selection.
package dots

import (
	"errors"

	"github.com/katalvlaran/zipgrid/grid"
)

// Sentinel errors for checkpoint selection.
var (
	// ErrDotCount indicates a requested checkpoint count outside
	// [2, len(path)]: a puzzle needs at least a start and an end dot, and
	// cannot carry more dots than path cells.
	ErrDotCount = errors.New("dots: checkpoint count must be between 2 and the path length")
)

// Checkpoint is one numbered dot of a puzzle: the cell it occupies and its
// 1-based order number. A puzzle's checkpoints are numbered contiguously
// 1..K and appear on the solution path in strictly increasing order.
type Checkpoint struct {
	Pos    grid.Position
	Number int
}
