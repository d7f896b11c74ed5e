// Package dots places numbered checkpoints along a board-covering path.
//
// What:
//
//   - Select(path, count, rng) picks count cells of the path as checkpoints
//     numbered 1..count: checkpoint 1 is always the first path cell,
//     checkpoint count always the last, and the intermediate ones spread
//     evenly with a bounded forward jitter so repeated puzzles on the same
//     path still differ.
//   - DefaultCount(n) returns the shipped dot count per board size.
//
// Why:
//
//   - The checkpoint set is the puzzle's entire visible surface; the solver
//     sees only the dots, never the path. Even spacing keeps segments
//     comparable in difficulty, jitter keeps them from feeling stamped out.
//
// Complexity:
//
//   - Select: O(count) time, O(count) result memory.
//
// Determinism:
//
//   - A nil *rand.Rand disables jitter entirely: spacing degenerates to the
//     pure arithmetic layout, useful for fixture-stable tests and fallback
//     puzzles.
//
// Errors:
//
//   - ErrDotCount: count below 2 or above the path length.
package dots
