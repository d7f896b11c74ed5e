// Package puzzle - multi-attempt puzzle generation.
//
// Generate orchestrates the pipeline grid → path search → dot selection →
// structural gate, retrying with independent randomness until a candidate
// passes or the attempt budget runs out.
//
// Rationale (succinct):
//  1. Attempts are fully independent: each gets its own derived RNG stream,
//     corner start, and search state. A failed attempt leaves nothing
//     behind, so retries cannot correlate.
//  2. Per-attempt failures (search timeout, rejected candidate) are routine
//     and retried silently at Debug; only total exhaustion surfaces, as
//     ErrExhausted, after a Warn. Callers that must always present a board
//     follow up with Fallback.
//  3. Start cells are drawn uniformly from the four corners: corner starts
//     leave the largest connected free region behind them and empirically
//     dominate success rates on small boards.
//  4. Optional parallelism races the same attempt schedule across workers;
//     the first success cancels the rest. Latency shrinks, reproducibility
//     of seeded runs does not survive the race.
//
// Complexity: worst case MaxAttempts × AttemptTimeout wall-clock; memory
// O(N²) per in-flight attempt.
package puzzle

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/zipgrid/dots"
	"github.com/katalvlaran/zipgrid/grid"
	"github.com/katalvlaran/zipgrid/hampath"
)

// Generate produces a puzzle for an n×n board.
//
// Errors:
//   - ErrGridSize for n < 2.
//   - dots.ErrDotCount for a configured dot count outside [2, N²].
//   - ErrExhausted when every attempt failed within its budget.
//   - ctx.Err() when the configured context ends the run.
func Generate(n int, opts ...Option) (*Puzzle, error) {
	// 1. Validate board shape.
	if n < 2 {
		return nil, ErrGridSize
	}
	g, err := grid.New(n)
	if err != nil {
		return nil, ErrGridSize
	}

	// 2. Apply options and resolve derived defaults.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	count := o.DotCount
	if count == 0 {
		count = dots.DefaultCount(n)
	}
	if count < minPuzzleDots || count > g.Cells() {
		return nil, dots.ErrDotCount
	}

	// 3. Base randomness: caller-owned beats seeded beats time-seeded.
	//    Seed 0 keeps the time-seeded base so every run deals new boards.
	base := o.Rand
	if base == nil {
		seed := o.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		base = rand.New(rand.NewSource(seed))
	}

	// 4. Independent per-attempt streams, assigned by attempt index up
	//    front so sequential and parallel runs use the same schedule.
	streams := make([]*rand.Rand, o.MaxAttempts)
	var i int
	for i = 0; i < o.MaxAttempts; i++ {
		streams[i] = hampath.DeriveRNG(base, uint64(i+1))
	}

	// 5. Run the attempt schedule.
	if o.Parallelism > 1 {
		return generateParallel(g, count, o, streams)
	}

	return generateSequential(g, count, o, streams)
}

// minPuzzleDots mirrors the dots package floor; kept local for the
// pre-flight check before any attempt spends time searching.
const minPuzzleDots = 2

// generateSequential walks the attempt schedule one at a time.
func generateSequential(g grid.Grid, count int, o Options, streams []*rand.Rand) (*Puzzle, error) {
	var attempt int
	for attempt = 1; attempt <= o.MaxAttempts; attempt++ {
		if cerr := o.Ctx.Err(); cerr != nil {
			return nil, cerr
		}
		p, err := runAttempt(o.Ctx, g, count, o, streams[attempt-1], attempt)
		if err != nil {
			return nil, err
		}
		if p != nil {
			o.Logger.Info("puzzle generated",
				zap.String("id", p.ID),
				zap.Int("size", g.Size()),
				zap.Int("dots", count),
				zap.Int("attempt", attempt),
			)

			return p, nil
		}
	}

	o.Logger.Warn("generation exhausted",
		zap.Int("size", g.Size()),
		zap.Int("attempts", o.MaxAttempts),
		zap.Stringer("strategy", o.Strategy),
	)

	return nil, ErrExhausted
}

// generateParallel races the attempt schedule across up to Parallelism
// workers; the first success cancels the rest. Goroutines always drain
// through grp.Wait before return.
func generateParallel(g grid.Grid, count int, o Options, streams []*rand.Rand) (*Puzzle, error) {
	runCtx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	workers := o.Parallelism
	if workers > o.MaxAttempts {
		workers = o.MaxAttempts
	}

	var (
		next  atomic.Int64
		mu    sync.Mutex
		found *Puzzle
	)
	grp, gctx := errgroup.WithContext(runCtx)
	var w int
	for w = 0; w < workers; w++ {
		grp.Go(func() error {
			for {
				attempt := int(next.Add(1))
				if attempt > o.MaxAttempts {
					return nil
				}
				if gctx.Err() != nil {
					return nil
				}
				p, err := runAttempt(gctx, g, count, o, streams[attempt-1], attempt)
				if err != nil {
					if gctx.Err() != nil && o.Ctx.Err() == nil {
						// A sibling won and canceled the run.
						return nil
					}

					return err
				}
				if p == nil {
					continue // routine failure, take the next attempt
				}
				mu.Lock()
				if found == nil {
					found = p
				}
				mu.Unlock()
				cancel()

				return nil
			}
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	mu.Lock()
	p := found
	mu.Unlock()
	if p != nil {
		o.Logger.Info("puzzle generated",
			zap.String("id", p.ID),
			zap.Int("size", g.Size()),
			zap.Int("dots", count),
			zap.Int("workers", workers),
		)

		return p, nil
	}
	if cerr := o.Ctx.Err(); cerr != nil {
		return nil, cerr
	}

	o.Logger.Warn("generation exhausted",
		zap.Int("size", g.Size()),
		zap.Int("attempts", o.MaxAttempts),
		zap.Stringer("strategy", o.Strategy),
	)

	return nil, ErrExhausted
}

// runAttempt executes one independent attempt end to end: corner pick, path
// search, dot selection, structural gate. A nil puzzle with a nil error
// means "failed, retry"; a non-nil error aborts the whole run.
func runAttempt(ctx context.Context, g grid.Grid, count int, o Options, rng *rand.Rand, attempt int) (*Puzzle, error) {
	corners := g.Corners()
	start := corners[rng.Intn(len(corners))]
	began := time.Now()

	path, err := hampath.Find(g, start,
		hampath.WithStrategy(o.Strategy),
		hampath.WithRand(rng),
		hampath.WithTimeout(o.AttemptTimeout),
		hampath.WithContext(ctx),
	)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		o.Logger.Debug("path search failed",
			zap.Int("attempt", attempt),
			zap.Stringer("strategy", o.Strategy),
			zap.Stringer("start", start),
			zap.Duration("took", time.Since(began)),
			zap.Error(err),
		)

		return nil, nil
	}

	cps, err := dots.Select(path, count, rng)
	if err != nil {
		// Count is validated before any attempt runs; reaching this is a
		// contract bug worth surfacing, not retrying.
		return nil, err
	}

	if verr := ValidateStructure(g.Size(), path, cps); verr != nil {
		o.Logger.Debug("candidate rejected",
			zap.Int("attempt", attempt),
			zap.Error(verr),
		)

		return nil, nil
	}

	p := &Puzzle{
		ID:          uuid.NewString(),
		Size:        g.Size(),
		Checkpoints: cps,
		Solution:    path,
	}
	o.Logger.Debug("attempt succeeded",
		zap.Int("attempt", attempt),
		zap.Stringer("start", start),
		zap.Duration("took", time.Since(began)),
	)

	return p, nil
}
