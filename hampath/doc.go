// Package hampath searches for Hamiltonian paths on square boards using
// backtracking with pluggable neighbor-ordering strategies.
//
// What:
//
//   - Find(g, start, opts...) returns a path visiting every cell of an N×N
//     board exactly once, moving only between orthogonally adjacent cells.
//   - The search is an explicit-stack depth-first backtracker: a visited
//     bitset plus a frame stack of strategy-ordered candidate lists, so the
//     worst-case native stack depth stays O(1) regardless of board size.
//   - A wall-clock deadline is honored at every search step, making the
//     engine safe to run inside interactive latency budgets.
//
// Why:
//
//   - Hamiltonian path search is NP-complete in general; on grids the
//     practical difficulty swings wildly with the visit order. The five
//     shipped strategies trade speed against path variety:
//     Random for maximal variety, Warnsdorff for near-certain fast success,
//     ProbWarnsdorff and Annealed for randomized middle grounds, and
//     SmartFallback for cheap adaptivity.
//
// Complexity:
//
//   - Worst case exponential in N² (exhaustive backtracking).
//   - Per step: O(1) candidate scans (≤4 neighbors) and O(1) ordering work
//     modulo the strategy's constant; memory O(N²) for the visited set,
//     path, and frame arena.
//
// Options:
//
//   - WithStrategy(s): neighbor-ordering strategy (default Annealed).
//   - WithDeadline(t) / WithTimeout(d): wall-clock budget for the search.
//   - WithSeed(seed) / WithRand(rng): deterministic or caller-owned RNG.
//   - WithContext(ctx): cooperative cancellation.
//   - WithOnVisit(fn): pre-order hook on each newly reached cell; a non-nil
//     error aborts the search with that error.
//
// Errors:
//
//   - ErrGridTooSmall: the board has no cells (zero-value Grid).
//   - ErrStartOutOfBounds: the start cell lies outside the board.
//   - ErrPathNotFound: the search space was exhausted or the deadline
//     expired before a full path was found; the two causes are deliberately
//     not distinguished.
//   - context.Canceled / context.DeadlineExceeded: the context ended first.
//   - any error returned by the OnVisit hook.
package hampath
