// Package grid defines the core value types and sentinel errors shared by
// the zipgrid packages.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrGridSize indicates a requested board side length below 1.
	ErrGridSize = errors.New("grid: size must be at least 1")
)

// Position is a single cell coordinate. The origin (0,0) is the top-left
// corner; X grows rightward, Y grows downward.
type Position struct {
	X, Y int
}

// AdjacentTo reports whether p and q share an edge, i.e. their Manhattan
// distance is exactly 1. A position is never adjacent to itself.
// Complexity: O(1).
func (p Position) AdjacentTo(q Position) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}

// String formats the position as "x,y", the cell ID scheme used across zipgrid.
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Path is an ordered sequence of positions. Callers that need the zipgrid
// path invariants (uniqueness, orthogonal continuity) validate them at the
// package boundary that requires them; Path itself imposes none.
type Path []Position

// Contains reports whether pos appears anywhere in the path.
// Complexity: O(len(pp)).
func (pp Path) Contains(pos Position) bool {
	return pp.IndexOf(pos) >= 0
}

// IndexOf returns the index of the first occurrence of pos, or -1.
// Complexity: O(len(pp)).
func (pp Path) IndexOf(pos Position) int {
	for i, p := range pp {
		if p == pos {
			return i
		}
	}

	return -1
}

// Clone returns an independent copy of the path. A nil path clones to nil.
// Complexity: O(len(pp)).
func (pp Path) Clone() Path {
	if pp == nil {
		return nil
	}
	out := make(Path, len(pp))
	copy(out, pp)

	return out
}
