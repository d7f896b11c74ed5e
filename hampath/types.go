// Package hampath defines the strategy enum, options, and sentinel errors
// for the Hamiltonian path search engine.
package hampath

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/katalvlaran/zipgrid/grid"
)

// Sentinel errors returned by Find.
var (
	// ErrGridTooSmall indicates a board with no cells (a zero-value Grid).
	ErrGridTooSmall = errors.New("hampath: grid must contain at least one cell")

	// ErrStartOutOfBounds indicates the requested start cell lies outside
	// the board.
	ErrStartOutOfBounds = errors.New("hampath: start position out of bounds")

	// ErrPathNotFound indicates the search ended without covering the board,
	// either because the space was exhausted or because the deadline passed.
	// Callers retry with a fresh seed rather than branching on the cause.
	ErrPathNotFound = errors.New("hampath: no hamiltonian path found")

	// ErrUnknownStrategy indicates a Strategy value outside the declared enum.
	ErrUnknownStrategy = errors.New("hampath: unknown ordering strategy")
)

// Strategy selects how a frame's candidate cells are ordered before the
// search descends into them. Ordering is the only randomized part of the
// engine; everything else is deterministic given the visit order.
type Strategy int

const (
	// Random shuffles candidates uniformly (Fisher–Yates). Maximal path
	// variety, slowest convergence on large boards.
	Random Strategy = iota

	// Warnsdorff orders candidates by ascending onward degree (the count of
	// unvisited orthogonal neighbors), random tie-break. The classic
	// most-constrained-first heuristic; fastest, least varied.
	Warnsdorff

	// ProbWarnsdorff draws candidates without replacement with probability
	// proportional to 0.4^degree + 0.2, each weight jittered ±20%. Biased
	// toward constrained cells while keeping every ordering reachable.
	ProbWarnsdorff

	// Annealed behaves like Random early in the search and slides toward
	// ProbWarnsdorff as the board fills: P(random) decays linearly from 0.9
	// at an empty board to 0.2 at a full one.
	Annealed

	// SmartFallback orders uniformly while at least three candidates remain
	// and switches to ProbWarnsdorff in tighter spots.
	SmartFallback
)

// strategyNames backs Strategy.String; indexed by the enum values above.
var strategyNames = [...]string{
	Random:         "Random",
	Warnsdorff:     "Warnsdorff",
	ProbWarnsdorff: "ProbWarnsdorff",
	Annealed:       "Annealed",
	SmartFallback:  "SmartFallback",
}

// String returns the strategy name, or "Strategy(n)" for out-of-range values.
func (s Strategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// valid reports whether s is one of the declared strategies.
func (s Strategy) valid() bool {
	return s >= Random && s <= SmartFallback
}

// Option configures optional behavior of the path search.
// Use with Find(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for Find.
// Zero deadline means no time budget; Rand (when non-nil) wins over Seed.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search with ctx.Err().
	Ctx context.Context

	// Strategy picks the candidate-ordering heuristic. Default Annealed.
	Strategy Strategy

	// Deadline is the wall-clock instant after which the search gives up
	// with ErrPathNotFound. Zero means unbounded.
	Deadline time.Time

	// Seed feeds the deterministic default RNG. Seed 0 maps to a fixed
	// internal seed so the zero value stays reproducible.
	Seed int64

	// Rand, if non-nil, is used verbatim and Seed is ignored. The engine
	// does not synchronize access; do not share one *rand.Rand across
	// concurrent searches.
	Rand *rand.Rand

	// OnVisit, if non-nil, is invoked each time a cell is appended to the
	// path (pre-order, start cell included). Returning an error aborts the
	// search with that error.
	OnVisit func(pos grid.Position) error
}

// DefaultOptions returns the Options Find starts from:
//   - Background context
//   - Annealed ordering
//   - no deadline, seed 0 (fixed internal seed), no hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Annealed,
		Deadline: time.Time{},
		Seed:     0,
		Rand:     nil,
		OnVisit:  nil,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy returns an Option that selects the ordering strategy.
// Panics on values outside the declared enum; invalid strategies are a
// programmer error, not a runtime condition.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.valid() {
			panic(ErrUnknownStrategy.Error())
		}
		o.Strategy = s
	}
}

// WithDeadline returns an Option that sets an absolute wall-clock budget.
// A zero time clears the budget.
func WithDeadline(t time.Time) Option {
	return func(o *Options) {
		o.Deadline = t
	}
}

// WithTimeout returns an Option that sets the budget relative to now.
// Non-positive durations yield an already-expired deadline, making Find
// fail fast after visiting only the start cell.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Deadline = time.Now().Add(d)
	}
}

// WithSeed returns an Option that seeds the internal deterministic RNG.
// Seed 0 keeps the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand returns an Option that installs a caller-owned RNG, overriding
// Seed. Panics on nil: pass no option instead of a nil generator.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			panic("hampath: WithRand requires a non-nil *rand.Rand")
		}
		o.Rand = rng
	}
}

// WithOnVisit returns an Option that installs fn as the per-cell visit hook.
func WithOnVisit(fn func(pos grid.Position) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
