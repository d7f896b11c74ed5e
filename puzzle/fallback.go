// Package puzzle - deterministic fallback construction.
package puzzle

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/zipgrid/dots"
	"github.com/katalvlaran/zipgrid/grid"
)

// Fallback builds the deterministic serpentine puzzle for an n×n board:
// a boustrophedon sweep as the solution with jitter-free dot spacing.
// Structurally valid by construction, it is the board of last resort for
// hosts that must present something after Generate returns ErrExhausted.
//
// A dotCount of 0 selects dots.DefaultCount(n). Apart from the fresh ID,
// the result is a pure function of (n, dotCount).
//
// Errors:
//   - ErrGridSize for n < 2.
//   - dots.ErrDotCount for a dot count outside [2, N²].
//
// Complexity: O(N²) time and space.
func Fallback(n, dotCount int) (*Puzzle, error) {
	if n < 2 {
		return nil, ErrGridSize
	}
	g, err := grid.New(n)
	if err != nil {
		return nil, ErrGridSize
	}
	if dotCount == 0 {
		dotCount = dots.DefaultCount(n)
	}

	path := serpentinePath(g)
	cps, err := dots.Select(path, dotCount, nil)
	if err != nil {
		return nil, err
	}

	return &Puzzle{
		ID:          uuid.NewString(),
		Size:        n,
		Checkpoints: cps,
		Solution:    path,
	}, nil
}

// serpentinePath sweeps the board row by row, alternating direction each
// row, which covers every cell with orthogonal continuity by construction.
func serpentinePath(g grid.Grid) grid.Path {
	n := g.Size()
	path := make(grid.Path, 0, g.Cells())
	var x, y int
	for y = 0; y < n; y++ {
		if y%2 == 0 {
			for x = 0; x < n; x++ {
				path = append(path, grid.Position{X: x, Y: y})
			}
		} else {
			for x = n - 1; x >= 0; x-- {
				path = append(path, grid.Position{X: x, Y: y})
			}
		}
	}

	return path
}
