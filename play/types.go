// Package play - session states and move-rejection sentinels.
package play

import (
	"errors"
	"fmt"
	"strconv"
)

// State is the lifecycle phase of a drawing session.
type State int

// Session lifecycle states.
const (
	// StateEmpty is the initial phase: no cell drawn yet.
	StateEmpty State = iota

	// StateDrawing is the active phase: the path has at least dot 1.
	StateDrawing

	// StateWon is the terminal phase after a winning Complete call; only
	// Reset leaves it.
	StateWon
)

// stateNames indexes State values to their display names.
var stateNames = [...]string{
	StateEmpty:   "Empty",
	StateDrawing: "Drawing",
	StateWon:     "Won",
}

// String returns the human-readable state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}

	return stateNames[s]
}

// ErrIllegalMove is the umbrella sentinel for every rejected move. The
// specific sentinels below wrap it statically, so a host can branch on
// either level with errors.Is.
var ErrIllegalMove = errors.New("play: illegal move")

// Specific move rejections. Each wraps ErrIllegalMove.
var (
	// ErrWrongState rejects an operation outside its legal session state,
	// such as Extend before Start or any move after StateWon.
	ErrWrongState = fmt.Errorf("%w: operation not legal in current state", ErrIllegalMove)

	// ErrNotStartDot rejects a Start anywhere but dot 1's cell.
	ErrNotStartDot = fmt.Errorf("%w: path must start on dot 1", ErrIllegalMove)

	// ErrNotAdjacent rejects an Extend target that is not an adjacent board
	// cell of the current head (off-board targets included).
	ErrNotAdjacent = fmt.Errorf("%w: cell is not an adjacent board cell", ErrIllegalMove)

	// ErrCellVisited rejects an Extend into a cell already on the path.
	ErrCellVisited = fmt.Errorf("%w: cell already visited", ErrIllegalMove)

	// ErrNotOnPath rejects a Backtrack target that is not on the path.
	ErrNotOnPath = fmt.Errorf("%w: cell is not on the path", ErrIllegalMove)

	// ErrScopeViolation rejects a Backtrack target before the anchoring
	// checkpoint.
	ErrScopeViolation = fmt.Errorf("%w: target is behind the last anchored dot", ErrIllegalMove)
)
