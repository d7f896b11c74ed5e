// Package dots — even-spread checkpoint selection with bounded jitter.
//
// Rationale (succinct):
//  1. Endpoints are pinned: checkpoint 1 to the first path cell, checkpoint
//     count to the last. The solver always knows where to start and finish.
//  2. Intermediate checkpoints land on an arithmetic lattice over the path
//     indices, then each may be nudged forward by a small uniform offset.
//     The nudge never reaches the following checkpoint, so the strictly
//     increasing index invariant survives by construction.
//  3. Narrow gaps self-limit: the offset bound min(3, w/3) is zero whenever
//     fewer than three free slots separate the neighbors.
package dots

import (
	"math/rand"

	"github.com/katalvlaran/zipgrid/grid"
)

const (
	// minDotCount is the smallest meaningful puzzle surface: start and end.
	minDotCount = 2

	// maxJitterSteps caps the forward nudge of an intermediate checkpoint.
	maxJitterSteps = 3

	// jitterGapDivisor scales the nudge bound by the free-slot width between
	// neighboring checkpoints.
	jitterGapDivisor = 3

	// defaultCountFactorNum/Den encode the 1.5·N dot-count rule used for
	// board sizes outside the tuned table (rounded up).
	defaultCountFactorNum = 3
	defaultCountFactorDen = 2
)

// defaultCountBySize is the tuned dot count for the interactive board sizes.
var defaultCountBySize = map[int]int{
	3: 4,
	4: 6,
	5: 8,
	6: 10,
	7: 12,
	8: 15,
}

// DefaultCount returns the shipped checkpoint count for an n×n board: a
// tuned table for the interactive sizes 3..8, and ceil(1.5·n) beyond it,
// never below the two mandatory endpoint dots.
// Complexity: O(1).
func DefaultCount(n int) int {
	if k, ok := defaultCountBySize[n]; ok {
		return k
	}
	k := (defaultCountFactorNum*n + defaultCountFactorDen - 1) / defaultCountFactorDen
	if k < minDotCount {
		k = minDotCount
	}

	return k
}

// Select picks count checkpoints along path, numbered 1..count in path
// order. Checkpoint 1 is path's first cell and checkpoint count its last;
// intermediate checkpoints spread evenly and jitter forward by at most
// min(3, w/3) slots, where w is the free width to the neighboring
// checkpoints. The jitter never reaches the next checkpoint's index.
//
// A nil rng disables jitter, making the layout a pure function of
// (len(path), count).
//
// Returns ErrDotCount if count < 2 or count > len(path).
// Complexity: O(count) time, O(count) space.
func Select(path grid.Path, count int, rng *rand.Rand) ([]Checkpoint, error) {
	n := len(path)
	if count < minDotCount || count > n {
		return nil, ErrDotCount
	}

	// 1. Arithmetic lattice over path indices. step is the floor spacing;
	//    the cap at n-2 keeps intermediates clear of the pinned tail.
	step := (n - 1) / (count - 1)
	idx := make([]int, count)
	idx[0] = 0
	idx[count-1] = n - 1
	var j int
	for j = 1; j < count-1; j++ {
		base := j * step
		if base > n-2 {
			base = n - 2
		}
		idx[j] = base
	}

	// 2. Forward jitter, left to right. The left neighbor is already final;
	//    the right neighbor is still at its lattice base (or the pinned
	//    tail), which is exactly the bound the nudge must not reach.
	if rng != nil {
		for j = 1; j < count-1; j++ {
			next := n - 1
			if j+1 < count-1 {
				next = idx[j+1]
			}
			width := next - idx[j-1] - 1
			if width <= 0 {
				continue
			}
			bound := width / jitterGapDivisor
			if bound > maxJitterSteps {
				bound = maxJitterSteps
			}
			if bound == 0 {
				continue
			}
			moved := idx[j] + rng.Intn(bound+1)
			if moved >= next {
				moved = next - 1
			}
			idx[j] = moved
		}
	}

	// 3. Materialize checkpoints in path order.
	cps := make([]Checkpoint, count)
	for j = 0; j < count; j++ {
		cps[j] = Checkpoint{Pos: path[idx[j]], Number: j + 1}
	}

	return cps, nil
}
