// Package hampath — backtracking Hamiltonian path search on square boards.
//
// Find enumerates paths via depth-first backtracking with strategy-ordered
// branching and a hard wall-clock budget.
//
// Rationale (succinct):
//  1. The recursion is unrolled onto an explicit frame stack: each frame
//     holds the strategy-ordered candidate list for one path head plus a
//     cursor. Native stack depth stays constant for any board size, and the
//     frame arena is reused across descents at the same depth.
//  2. Candidates carry their onward degree (unvisited orthogonal neighbors),
//     the single signal every shipped heuristic keys on.
//  3. The deadline is tested at every loop step, descend and retreat alike.
//     A search that starts past its deadline reaches only the start cell.
//  4. Failure is a single sentinel: callers multi-start with fresh seeds
//     instead of branching on exhausted-versus-expired.
//
// Complexity:
//   - Worst case exponential in N² (exhaustive search). Practical speed
//     comes entirely from the ordering heuristics.
//   - Per step: O(1) neighbor scans and ordering; memory O(N²) for visited,
//     path, and the frame arena.
package hampath

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/zipgrid/grid"
)

// frame is one level of the unrolled recursion: the ordered candidate list
// for the path head at that depth, plus the next-candidate cursor.
type frame struct {
	cands []Candidate
	next  int
}

// searchEngine holds all search data and policies.
// A dedicated engine struct (instead of closures) keeps dependencies
// explicit, testing simpler, and hot-path state predictable.
type searchEngine struct {
	// Configuration / policy
	g        grid.Grid
	cells    int
	start    grid.Position
	strategy Strategy
	rng      *rand.Rand
	ctx      context.Context
	onVisit  func(pos grid.Position) error

	// Time budget
	useDeadline bool
	deadline    time.Time

	// Current search state
	visited []bool    // row-major visited set
	path    grid.Path // path[0:depth+1], path[0] == start
	frames  []frame   // frames[d] branches from path[d]

	// Scratch buffers for neighbor scans (no per-step allocation)
	nbuf []grid.Position
	dbuf []grid.Position
}

// visit marks pos, appends it to the path, and fires the hook.
func (e *searchEngine) visit(pos grid.Position) error {
	e.visited[e.g.Index(pos)] = true
	e.path = append(e.path, pos)
	if e.onVisit != nil {
		if err := e.onVisit(pos); err != nil {
			return fmt.Errorf("hampath: OnVisit hook at %v: %w", pos, err)
		}
	}

	return nil
}

// retreat unmarks the current head and drops its frame.
func (e *searchEngine) retreat() {
	last := len(e.path) - 1
	e.visited[e.g.Index(e.path[last])] = false
	e.path = e.path[:last]
	e.frames = e.frames[:len(e.frames)-1]
}

// unvisitedDegree counts pos's unvisited orthogonal neighbors.
func (e *searchEngine) unvisitedDegree(pos grid.Position) int {
	var d int
	e.dbuf = e.g.AppendNeighbors4(e.dbuf[:0], pos)
	for _, q := range e.dbuf {
		if !e.visited[e.g.Index(q)] {
			d++
		}
	}

	return d
}

// pushFrame builds and orders the candidate list branching from head.
// The arena is pre-sized to the cell count, so re-slicing never reallocates
// and the candidate buffer of a previously popped frame at this depth is
// reused.
func (e *searchEngine) pushFrame(head grid.Position) {
	depth := len(e.frames)
	e.frames = e.frames[:depth+1]
	cands := e.frames[depth].cands[:0]

	e.nbuf = e.g.AppendNeighbors4(e.nbuf[:0], head)
	for _, q := range e.nbuf {
		if !e.visited[e.g.Index(q)] {
			cands = append(cands, Candidate{Pos: q, Degree: e.unvisitedDegree(q)})
		}
	}

	fill := float64(len(e.path)) / float64(e.cells)
	orderCandidates(e.strategy, cands, fill, e.rng)

	e.frames[depth] = frame{cands: cands, next: 0}
}

// interrupted reports whether the budget or the context ended the search.
// Checked at every loop step; both checks are O(1).
func (e *searchEngine) interrupted() error {
	select {
	case <-e.ctx.Done():
		return e.ctx.Err()
	default:
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrPathNotFound
	}

	return nil
}

// run executes the search loop. The invariant len(path) == len(frames)
// holds between steps: frames[d] branches from path[d].
func (e *searchEngine) run() (grid.Path, error) {
	if err := e.visit(e.start); err != nil {
		return nil, err
	}
	if len(e.path) == e.cells {
		return e.path, nil // single-cell board
	}
	e.pushFrame(e.start)

	for len(e.frames) > 0 {
		if err := e.interrupted(); err != nil {
			return nil, err
		}

		f := &e.frames[len(e.frames)-1]
		if f.next >= len(f.cands) {
			e.retreat()
			continue
		}

		c := f.cands[f.next]
		f.next++
		if e.visited[e.g.Index(c.Pos)] {
			continue
		}

		if err := e.visit(c.Pos); err != nil {
			return nil, err
		}
		if len(e.path) == e.cells {
			return e.path, nil
		}
		e.pushFrame(c.Pos)
	}

	return nil, ErrPathNotFound
}

// Find searches for a Hamiltonian path on g starting at start and returns it
// as an ordered cell sequence of length g.Cells().
//
// Errors:
//   - ErrGridTooSmall / ErrStartOutOfBounds for malformed inputs.
//   - ErrPathNotFound when the search space is exhausted or the deadline
//     passes first (undistinguished; retry with a fresh seed).
//   - ctx.Err() when the context ends the search.
//   - any error returned by the OnVisit hook, wrapped with the cell.
func Find(g grid.Grid, start grid.Position, opts ...Option) (grid.Path, error) {
	// 1. Validate input shape.
	if g.Cells() == 0 {
		return nil, ErrGridTooSmall
	}
	if !g.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Engine initialization (no anonymous closures).
	var e searchEngine
	e.g = g
	e.cells = g.Cells()
	e.start = start
	e.strategy = o.Strategy
	e.ctx = o.Ctx
	if e.ctx == nil {
		e.ctx = context.Background()
	}
	e.onVisit = o.OnVisit
	if !o.Deadline.IsZero() {
		e.useDeadline = true
		e.deadline = o.Deadline
	}
	e.rng = o.Rand
	if e.rng == nil {
		e.rng = rngFromSeed(o.Seed)
	}

	// 4. Search state arena, sized once.
	e.visited = make([]bool, e.cells)
	e.path = make(grid.Path, 0, e.cells)
	e.frames = make([]frame, 0, e.cells)
	e.nbuf = make([]grid.Position, 0, maxDegree)
	e.dbuf = make([]grid.Position, 0, maxDegree)

	// 5. Run the loop.
	return e.run()
}
