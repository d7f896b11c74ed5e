// Package play - the drawing session engine.
//
// A Session validates every move synchronously against the board geometry,
// the visited set, and the backtracking scope rule. All mutating methods
// either apply the move fully or reject it with a sentinel and leave the
// session untouched.
package play

import (
	"github.com/katalvlaran/zipgrid/grid"
	"github.com/katalvlaran/zipgrid/puzzle"
)

// Session tracks one player's path over a single puzzle.
//
// Sessions work on the puzzle's visible surface only (Size and
// Checkpoints), so hosts may hand them puzzles with the Solution stripped.
// A Session is single-writer; see the package documentation.
type Session struct {
	p     *puzzle.Puzzle
	g     grid.Grid
	path  grid.Path
	state State

	// Checkpoint lookups in both directions, built once at construction.
	posByNumber map[int]grid.Position
	numberByPos map[grid.Position]int
	total       int
}

// NewSession builds a session for p. It rejects a nil puzzle, an unplayable
// board, or checkpoints that are not numbered contiguously from 1, all as
// puzzle.ErrNilPuzzle.
func NewSession(p *puzzle.Puzzle) (*Session, error) {
	// 1. Usable board.
	if p == nil || p.Size < 2 || len(p.Checkpoints) < 2 {
		return nil, puzzle.ErrNilPuzzle
	}
	g, err := grid.New(p.Size)
	if err != nil {
		return nil, puzzle.ErrNilPuzzle
	}

	// 2. Checkpoint tables; contiguous numbering 1..K with distinct cells.
	total := len(p.Checkpoints)
	posByNumber := make(map[int]grid.Position, total)
	numberByPos := make(map[grid.Position]int, total)
	for _, cp := range p.Checkpoints {
		posByNumber[cp.Number] = cp.Pos
		numberByPos[cp.Pos] = cp.Number
	}
	if len(posByNumber) != total || len(numberByPos) != total {
		return nil, puzzle.ErrNilPuzzle
	}
	var k int
	for k = 1; k <= total; k++ {
		pos, ok := posByNumber[k]
		if !ok || !g.InBounds(pos) {
			return nil, puzzle.ErrNilPuzzle
		}
	}

	return &Session{
		p:           p,
		g:           g,
		path:        make(grid.Path, 0, g.Cells()),
		state:       StateEmpty,
		posByNumber: posByNumber,
		numberByPos: numberByPos,
		total:       total,
	}, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Path returns a copy of the drawn path; mutating it does not affect the
// session.
func (s *Session) Path() grid.Path {
	return s.path.Clone()
}

// Head returns the last drawn cell, or false for an empty path.
func (s *Session) Head() (grid.Position, bool) {
	if len(s.path) == 0 {
		return grid.Position{}, false
	}

	return s.path[len(s.path)-1], true
}

// Start begins the drawing at pos. Legal only in StateEmpty and only on
// dot 1's cell; afterwards the session is in StateDrawing.
func (s *Session) Start(pos grid.Position) error {
	if s.state != StateEmpty {
		return ErrWrongState
	}
	if pos != s.posByNumber[1] {
		return ErrNotStartDot
	}

	s.path = append(s.path, pos)
	s.state = StateDrawing

	return nil
}

// Extend grows the path by one cell. The target must be an in-bounds cell
// orthogonally adjacent to the head and not already on the path.
//
// Complexity: O(len(path)) for the visited check.
func (s *Session) Extend(pos grid.Position) error {
	if s.state != StateDrawing {
		return ErrWrongState
	}
	if !s.g.InBounds(pos) || !s.head().AdjacentTo(pos) {
		return ErrNotAdjacent
	}
	if s.path.Contains(pos) {
		return ErrCellVisited
	}

	s.path = append(s.path, pos)

	return nil
}

// Backtrack truncates the path so target becomes the head. The target must
// be on the path at or after the scope floor (see the package
// documentation); an out-of-scope target rejects with ErrScopeViolation and
// changes nothing.
//
// Complexity: O(len(path) · K) worst case for the anchor scan.
func (s *Session) Backtrack(target grid.Position) error {
	if s.state != StateDrawing {
		return ErrWrongState
	}
	idx := s.path.IndexOf(target)
	if idx < 0 {
		return ErrNotOnPath
	}
	if idx < s.scopeFloor() {
		return ErrScopeViolation
	}

	s.path = s.path[:idx+1]

	return nil
}

// CanBacktrack previews Backtrack's rule for target without mutating the
// session. Hosts use it to grey out out-of-scope cells.
func (s *Session) CanBacktrack(target grid.Position) bool {
	if s.state != StateDrawing {
		return false
	}
	idx := s.path.IndexOf(target)

	return idx >= 0 && idx >= s.scopeFloor()
}

// Complete judges the drawn path and returns the full report. A valid and
// complete path moves a drawing session to StateWon; any other outcome
// leaves the state alone, so the player keeps drawing.
func (s *Session) Complete() puzzle.SolutionReport {
	rep := puzzle.CheckSolution(s.path, s.p)
	if s.state == StateDrawing && rep.Valid && rep.Complete {
		s.state = StateWon
	}

	return rep
}

// Reset clears the path and returns the session to StateEmpty from any
// state.
func (s *Session) Reset() {
	s.path = s.path[:0]
	s.state = StateEmpty
}

// head returns the last drawn cell. Callers guarantee a non-empty path.
func (s *Session) head() grid.Position {
	return s.path[len(s.path)-1]
}

// scopeFloor returns the lowest path index a backtrack may target.
//
// When the head itself is dot C the anchor is dot C-1 (anywhere for C = 1);
// if C-1 was skipped and never drawn, the in-order anchor below applies
// instead. Otherwise the anchor is the highest dot k whose predecessors
// 1..k all appear on the path (anywhere when none do).
func (s *Session) scopeFloor() int {
	if c, ok := s.numberByPos[s.head()]; ok {
		if c == 1 {
			return 0
		}
		if i := s.path.IndexOf(s.posByNumber[c-1]); i >= 0 {
			return i
		}
	}

	m := s.inOrderAnchor()
	if m == 0 {
		return 0
	}

	return s.path.IndexOf(s.posByNumber[m])
}

// inOrderAnchor returns the largest k such that dots 1..k all lie on the
// path, scanning ascending and stopping at the first absent dot. A
// higher-numbered dot crossed early does not count without its
// predecessors.
func (s *Session) inOrderAnchor() int {
	var k int
	for k = 1; k <= s.total; k++ {
		if !s.path.Contains(s.posByNumber[k]) {
			return k - 1
		}
	}

	return s.total
}
