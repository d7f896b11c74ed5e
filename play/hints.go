// Package play - pure hint helpers for host UIs.
//
// Both helpers are stateless functions over (path, puzzle) pairs: safe to
// call from any goroutine, including on paths obtained from Session.Path.
package play

import (
	"github.com/katalvlaran/zipgrid/dots"
	"github.com/katalvlaran/zipgrid/grid"
	"github.com/katalvlaran/zipgrid/puzzle"
)

// NextCheckpoint returns the first dot the drawn path has not yet satisfied
// in numeric order. ok is false when every dot is satisfied or the puzzle
// is unusable. Crossing a higher-numbered dot early does not satisfy it.
//
// Complexity: O(len(path) + K).
func NextCheckpoint(path grid.Path, p *puzzle.Puzzle) (dots.Checkpoint, bool) {
	if p == nil || len(p.Checkpoints) == 0 {
		return dots.Checkpoint{}, false
	}

	total := len(p.Checkpoints)
	posByNumber := make(map[int]grid.Position, total)
	for _, cp := range p.Checkpoints {
		posByNumber[cp.Number] = cp.Pos
	}

	expected := 1
	for _, cell := range path {
		if expected <= total && cell == posByNumber[expected] {
			expected++
		}
	}
	if expected > total {
		return dots.Checkpoint{}, false
	}

	return p.Checkpoint(expected)
}

// Progress returns how much of the board the drawn path covers as a whole
// percentage, 0..100 with floor rounding.
func Progress(path grid.Path, p *puzzle.Puzzle) int {
	if p == nil || p.Size < 1 {
		return 0
	}

	pct := len(path) * 100 / (p.Size * p.Size)
	if pct > 100 {
		pct = 100
	}

	return pct
}
