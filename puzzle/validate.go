// Package puzzle - validation of generated candidates and drawn solutions.
//
// This file contains two validators with distinct jobs:
//  1. ValidateStructure is the generation-side gate: a staged, first-error
//     check that a (path, checkpoints) candidate satisfies every structural
//     invariant. Generate rejects and silently retries on failure.
//  2. CheckSolution is the play-side judge: it gathers *all* rule
//     violations of a drawn path into a report instead of stopping at the
//     first, because hosts surface them to players.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(N²) worst-case over board cells; no hidden allocations beyond the
//     visited set and the report.
package puzzle

import (
	"fmt"

	"github.com/katalvlaran/zipgrid/dots"
	"github.com/katalvlaran/zipgrid/grid"
)

// SolutionReport is the outcome of judging a drawn path against a puzzle.
//
// Valid    – no rule violations in what is drawn so far.
// Complete – the path covers every board cell (length N²).
// Issues   – every violation found, each wrapping a package sentinel.
//
// A winning path reports {Valid: true, Complete: true, Issues: nil}; a
// legal prefix reports {true, false, nil}.
type SolutionReport struct {
	Valid    bool
	Complete bool
	Issues   []error
}

// ValidateStructure verifies every structural invariant of a puzzle
// candidate: path coverage and continuity, cell uniqueness, checkpoint
// numbering, strictly increasing checkpoint path indices, and pinned
// endpoint dots. nil means the candidate is a well-formed puzzle.
//
// Stages run cheapest-first and stop at the first violation.
//
// Complexity: O(N² + K·N²) time with K checkpoints, O(N²) space.
func ValidateStructure(n int, path grid.Path, cps []dots.Checkpoint) error {
	// Stage 1: board shape.
	if n < 2 {
		return ErrGridSize
	}
	g, err := grid.New(n)
	if err != nil {
		return ErrGridSize
	}

	// Stage 2: coverage.
	if len(path) != g.Cells() {
		return ErrPathLength
	}

	// Stage 3: bounds, uniqueness, continuity in one sweep.
	visited := make([]bool, g.Cells())
	var i int
	for i = 0; i < len(path); i++ {
		if !g.InBounds(path[i]) {
			return ErrOutOfBounds
		}
		idx := g.Index(path[i])
		if visited[idx] {
			return ErrCellRepeated
		}
		visited[idx] = true
		if i > 0 && !path[i-1].AdjacentTo(path[i]) {
			return ErrPathBroken
		}
	}

	// Stage 4: checkpoint numbering and monotone placement.
	if len(cps) < 2 {
		return ErrCheckpointCount
	}
	prevIdx := -1
	for i = 0; i < len(cps); i++ {
		if cps[i].Number != i+1 {
			return ErrCheckpointOrder
		}
		at := path.IndexOf(cps[i].Pos)
		if at < 0 || at <= prevIdx {
			return ErrCheckpointOrder
		}
		prevIdx = at
	}

	// Stage 5: pinned endpoints.
	if cps[0].Pos != path[0] || cps[len(cps)-1].Pos != path[len(path)-1] {
		return ErrEndpointPin
	}

	return nil
}

// CheckSolution judges a drawn path against puzzle p and reports every rule
// violation. Unlike ValidateStructure it never stops early: hosts show the
// full list to the player.
//
// Rules:
//   - every cell in bounds, no repeats, orthogonal continuity;
//   - a non-empty path begins on dot 1;
//   - dots must be satisfied in numeric order by an expected-dot walk:
//     touching a higher-numbered dot's cell early is an ordinary move, it
//     neither errs nor satisfies;
//   - a complete path (N² cells) must have satisfied every dot and must
//     terminate on the final dot; crossing that cell earlier does not count.
//
// An empty path is trivially valid and incomplete.
//
// Complexity: O(N²) time, O(N²) space for the visited set.
func CheckSolution(candidate grid.Path, p *Puzzle) SolutionReport {
	if p == nil || p.Size < 2 || len(p.Checkpoints) == 0 {
		return SolutionReport{Valid: false, Complete: false, Issues: []error{ErrNilPuzzle}}
	}
	g := p.Grid()

	var issues []error
	complete := len(candidate) == g.Cells()

	// Positions keyed by dot number for the expected-dot walk.
	total := len(p.Checkpoints)
	posByNumber := make(map[int]grid.Position, total)
	for _, cp := range p.Checkpoints {
		posByNumber[cp.Number] = cp.Pos
	}

	// Single sweep: structure plus the walk.
	visited := make([]bool, g.Cells())
	expected := 1
	for i, cell := range candidate {
		if !g.InBounds(cell) {
			issues = append(issues, fmt.Errorf("%w: %v at step %d", ErrOutOfBounds, cell, i))
			continue
		}
		idx := g.Index(cell)
		if visited[idx] {
			issues = append(issues, fmt.Errorf("%w: %v at step %d", ErrCellRepeated, cell, i))
		}
		visited[idx] = true
		if i > 0 && !candidate[i-1].AdjacentTo(cell) {
			issues = append(issues, fmt.Errorf("%w: %v → %v at step %d", ErrPathBroken, candidate[i-1], cell, i))
		}
		if expected <= total && cell == posByNumber[expected] {
			expected++
		}
	}

	if len(candidate) > 0 && candidate[0] != posByNumber[1] {
		issues = append(issues, fmt.Errorf("%w: starts at %v", ErrWrongStart, candidate[0]))
	}

	// Completion rules apply only to full-length paths.
	if complete {
		if expected <= total {
			issues = append(issues, fmt.Errorf("%w: dot %d still pending", ErrCheckpointMissed, expected))
		}
		if candidate[len(candidate)-1] != posByNumber[total] {
			issues = append(issues, fmt.Errorf("%w: ends at %v", ErrWrongEnd, candidate[len(candidate)-1]))
		}
	}

	return SolutionReport{
		Valid:    len(issues) == 0,
		Complete: complete,
		Issues:   issues,
	}
}
