// Package puzzle defines the Puzzle type, generation options, and sentinel
// errors for puzzle assembly and validation.
package puzzle

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/zipgrid/dots"
	"github.com/katalvlaran/zipgrid/grid"
	"github.com/katalvlaran/zipgrid/hampath"
)

// Sentinel errors returned by generation entrypoints.
var (
	// ErrGridSize indicates a board size below the playable minimum of 2.
	ErrGridSize = errors.New("puzzle: board size must be at least 2")

	// ErrExhausted indicates that every generation attempt failed within its
	// budget. Individual attempt timeouts are retried silently; only the
	// final give-up surfaces. Callers that must always present a board
	// follow up with Fallback.
	ErrExhausted = errors.New("puzzle: generation attempts exhausted")

	// ErrNilPuzzle indicates a nil or unusable *Puzzle passed to validation.
	ErrNilPuzzle = errors.New("puzzle: puzzle is nil or malformed")
)

// Sentinel errors reported by ValidateStructure and CheckSolution. Issues in
// a SolutionReport wrap these, so errors.Is works on each entry.
var (
	// ErrPathLength indicates the path does not cover the board exactly.
	ErrPathLength = errors.New("puzzle: path must cover every board cell")

	// ErrOutOfBounds indicates a path cell outside the board.
	ErrOutOfBounds = errors.New("puzzle: path cell out of bounds")

	// ErrCellRepeated indicates a board cell visited more than once.
	ErrCellRepeated = errors.New("puzzle: cell visited twice")

	// ErrPathBroken indicates consecutive path cells that are not
	// orthogonally adjacent.
	ErrPathBroken = errors.New("puzzle: consecutive cells not adjacent")

	// ErrCheckpointCount indicates fewer than two checkpoints.
	ErrCheckpointCount = errors.New("puzzle: at least two checkpoints required")

	// ErrCheckpointOrder indicates checkpoint numbering that is not
	// contiguous from 1, a checkpoint off the path, or checkpoint path
	// indices that fail to strictly increase with the numbers.
	ErrCheckpointOrder = errors.New("puzzle: checkpoints out of path order")

	// ErrEndpointPin indicates that checkpoint 1 is not the first path cell
	// or the highest checkpoint is not the last.
	ErrEndpointPin = errors.New("puzzle: endpoint checkpoints not pinned to path ends")

	// ErrWrongStart indicates a drawn path that does not begin on dot 1.
	ErrWrongStart = errors.New("puzzle: path must start on dot 1")

	// ErrWrongEnd indicates a complete path whose final cell is not the
	// highest-numbered dot. Passing through that cell mid-path does not
	// count.
	ErrWrongEnd = errors.New("puzzle: path must end on the final dot")

	// ErrCheckpointMissed indicates a complete path that left some dot
	// unsatisfied in numeric order.
	ErrCheckpointMissed = errors.New("puzzle: dots not connected in order")
)

// Generation defaults. MaxAttempts and the attempt budget bound the total
// worst-case latency of Generate at MaxAttempts×AttemptTimeout.
const (
	// DefaultMaxAttempts is the shipped number of independent search
	// attempts before Generate gives up.
	DefaultMaxAttempts = 10

	// DefaultAttemptTimeout is the shipped wall-clock budget per attempt.
	DefaultAttemptTimeout = 5 * time.Second

	// FastAttemptTimeout is a tighter per-attempt budget for
	// latency-sensitive hosts; pass it to WithAttemptTimeout.
	FastAttemptTimeout = 3 * time.Second
)

// Puzzle is one generated board: the visible numbered dots plus the hidden
// covering path they were carved from. Treat a Puzzle as immutable; it is
// shared freely between play sessions and validators.
type Puzzle struct {
	// ID uniquely identifies the puzzle instance.
	ID string

	// Size is the board side length N.
	Size int

	// Checkpoints are the visible dots, ordered by number 1..K.
	Checkpoints []dots.Checkpoint

	// Solution is the covering path the dots were placed on. Hosts that
	// ship puzzles to untrusted clients strip it first.
	Solution grid.Path
}

// Grid returns the board geometry for this puzzle. A malformed Size yields
// the zero Grid, which every validator rejects.
func (p *Puzzle) Grid() grid.Grid {
	g, err := grid.New(p.Size)
	if err != nil {
		return grid.Grid{}
	}

	return g
}

// Checkpoint returns the dot with the given number, or false when absent.
// Linear scan; checkpoint sets are small.
func (p *Puzzle) Checkpoint(number int) (dots.Checkpoint, bool) {
	for _, cp := range p.Checkpoints {
		if cp.Number == number {
			return cp, true
		}
	}

	return dots.Checkpoint{}, false
}

// Option configures Generate. Use with Generate(n, opts...).
type Option func(*Options)

// Options holds configurable parameters for puzzle generation.
//
// DotCount        – checkpoint count; 0 means dots.DefaultCount(n).
// MaxAttempts     – independent search attempts before ErrExhausted.
// AttemptTimeout  – wall-clock budget per attempt.
// Strategy        – neighbor-ordering strategy for the path search.
// Seed / Rand     – base randomness; see WithSeed for the zero-seed policy.
// Logger          – structured attempt telemetry; defaults to a no-op.
// Parallelism     – concurrent attempts; 1 keeps attempts strictly
// sequential.
type Options struct {
	Ctx            context.Context
	DotCount       int
	MaxAttempts    int
	AttemptTimeout time.Duration
	Strategy       hampath.Strategy
	Seed           int64
	Rand           *rand.Rand
	Logger         *zap.Logger
	Parallelism    int
}

// DefaultOptions returns the Options Generate starts from:
//   - Background context
//   - DotCount 0 (resolved to dots.DefaultCount(n))
//   - MaxAttempts DefaultMaxAttempts, AttemptTimeout DefaultAttemptTimeout
//   - Annealed search strategy
//   - Seed 0 (time-seeded base RNG: fresh boards every run)
//   - no-op logger, sequential attempts
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		DotCount:       0,
		MaxAttempts:    DefaultMaxAttempts,
		AttemptTimeout: DefaultAttemptTimeout,
		Strategy:       hampath.Annealed,
		Seed:           0,
		Rand:           nil,
		Logger:         zap.NewNop(),
		Parallelism:    1,
	}
}

// WithContext returns an Option that sets the cancellation context for the
// whole generation run. A nil context keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDotCount returns an Option that fixes the checkpoint count. Generate
// validates the count against the board (must lie in [2, N²]) and returns
// dots.ErrDotCount otherwise; 0 restores the size-based default.
func WithDotCount(count int) Option {
	return func(o *Options) {
		o.DotCount = count
	}
}

// WithMaxAttempts returns an Option that bounds the number of independent
// search attempts. Panics on values below 1.
func WithMaxAttempts(attempts int) Option {
	return func(o *Options) {
		if attempts < 1 {
			panic("puzzle: WithMaxAttempts requires at least one attempt")
		}
		o.MaxAttempts = attempts
	}
}

// WithAttemptTimeout returns an Option that sets the per-attempt wall-clock
// budget. Panics on non-positive durations.
func WithAttemptTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic("puzzle: WithAttemptTimeout requires a positive duration")
		}
		o.AttemptTimeout = d
	}
}

// WithStrategy returns an Option that selects the path-search ordering
// strategy for all attempts.
func WithStrategy(s hampath.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithSeed returns an Option that seeds the base RNG for reproducible
// generation. Seed 0 (the default) keeps the time-seeded base: board
// variety across runs is the product behavior, reproducibility the test
// affordance.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand returns an Option that installs a caller-owned base RNG,
// overriding Seed. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			panic("puzzle: WithRand requires a non-nil *rand.Rand")
		}
		o.Rand = rng
	}
}

// WithLogger returns an Option that installs a structured logger for
// attempt telemetry. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelism returns an Option that runs up to k attempts concurrently;
// the first success wins and cancels the rest. Concurrency trades the
// reproducibility of seeded runs for latency. Panics on k < 1.
func WithParallelism(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic("puzzle: WithParallelism requires at least one worker")
		}
		o.Parallelism = k
	}
}
