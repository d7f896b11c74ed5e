// Package puzzle assembles playable boards: a hidden covering path carved
// by the hampath search, dressed with numbered dots, gated by structural
// validation, and judged at play time.
//
// 🚀 What is a zipgrid puzzle?
//
//	An N×N board showing only K numbered dots. The player draws one
//	continuous line that starts on dot 1, touches every cell exactly
//	once, passes the dots in order, and ends on dot K. Every puzzle this
//	package emits is solvable by construction: the dots are sampled from
//	a real covering path, which ships inside the Puzzle as its Solution.
//
// ✨ Key features:
//   - Generate: multi-attempt orchestration with corner starts, independent
//     per-attempt RNG streams, per-attempt wall-clock budgets, and optional
//     parallel racing (WithParallelism)
//   - Fallback: deterministic serpentine board for after exhaustion
//   - ValidateStructure: the generation gate (first-error, staged)
//   - CheckSolution: the play-time judge (collects every violation)
//   - structured telemetry via WithLogger (zap), silent by default
//
// ⚙️ Usage:
//
//	p, err := puzzle.Generate(6,
//	    puzzle.WithDotCount(10),
//	    puzzle.WithAttemptTimeout(puzzle.FastAttemptTimeout),
//	)
//	if errors.Is(err, puzzle.ErrExhausted) {
//	    p, err = puzzle.Fallback(6, 10)
//	}
//
// Performance:
//
//   - Generate: worst case MaxAttempts × AttemptTimeout; typical boards
//     resolve on the first attempt in well under a second.
//   - Validators: O(N²).
//
// See example_test.go for runnable walkthroughs.
package puzzle
