// Package play - interactive drawing sessions over a generated puzzle.
//
// What?
//
// A Session is the rule engine behind a host UI: the player draws one
// orthogonal path from dot 1 across the board, and the session accepts or
// rejects every move synchronously. It owns the canonical path state; the
// host owns rendering and input.
//
// State machine:
//
//	Empty ──Start──▶ Drawing ──Complete (winning path)──▶ Won
//	  ▲                                                    │
//	  └───────────────────── Reset ◀───────────────────────┘
//
// Start is legal only in Empty and only on dot 1. Extend grows the path one
// adjacent unvisited cell at a time. Won is terminal until Reset.
//
// Backtracking scope:
//
// Erasing is not free-form. A backtrack target must lie at or after the
// last dot that anchors the current drawing: when the head itself is dot C,
// the anchor is dot C-1; otherwise it is the highest dot k whose
// predecessors 1..k all already appear in the path. Anchored truncation
// keeps confirmed progress while still letting the player rework the
// segment under construction. Backtrack(target) cuts the path so target
// becomes the head; CanBacktrack previews the same rule without mutating,
// so hosts can grey out out-of-scope cells.
//
// Errors:
//
// Every rejected move returns a sentinel wrapping ErrIllegalMove, so hosts
// can branch coarsely (errors.Is(err, play.ErrIllegalMove)) or precisely
// (errors.Is(err, play.ErrScopeViolation)). Rejection is atomic: the
// session state never partially applies a bad move.
//
// Concurrency:
//
// A Session is single-writer. Hosts that route input from multiple
// goroutines must serialize calls themselves; the hint helpers are pure
// functions and safe anywhere.
package play
