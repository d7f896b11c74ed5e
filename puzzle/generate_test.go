package puzzle_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/zipgrid/dots"
	"github.com/katalvlaran/zipgrid/hampath"
	"github.com/katalvlaran/zipgrid/puzzle"
)

// TestMain guards the whole package against leaked goroutines; the parallel
// generation path must always drain its workers.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// requirePlayable asserts every invariant a generated puzzle must satisfy.
func requirePlayable(t *testing.T, p *puzzle.Puzzle, wantSize, wantDots int) {
	t.Helper()
	require.NotNil(t, p)
	require.NotEmpty(t, p.ID)
	require.Equal(t, wantSize, p.Size)
	require.Len(t, p.Checkpoints, wantDots)
	require.NoError(t, puzzle.ValidateStructure(p.Size, p.Solution, p.Checkpoints))

	rep := puzzle.CheckSolution(p.Solution, p)
	require.True(t, rep.Valid, "own solution must judge valid: %v", rep.Issues)
	require.True(t, rep.Complete)
}

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

func TestGenerate_InvalidInputs(t *testing.T) {
	_, err := puzzle.Generate(1)
	require.ErrorIs(t, err, puzzle.ErrGridSize)

	_, err = puzzle.Generate(0)
	require.ErrorIs(t, err, puzzle.ErrGridSize)

	_, err = puzzle.Generate(3, puzzle.WithDotCount(1))
	require.ErrorIs(t, err, dots.ErrDotCount)

	_, err = puzzle.Generate(3, puzzle.WithDotCount(10))
	require.ErrorIs(t, err, dots.ErrDotCount)
}

func TestGenerate_OptionPanics(t *testing.T) {
	require.Panics(t, func() { _, _ = puzzle.Generate(3, puzzle.WithMaxAttempts(0)) })
	require.Panics(t, func() { _, _ = puzzle.Generate(3, puzzle.WithAttemptTimeout(0)) })
	require.Panics(t, func() { _, _ = puzzle.Generate(3, puzzle.WithParallelism(0)) })
	require.Panics(t, func() { _, _ = puzzle.Generate(3, puzzle.WithRand(nil)) })
}

//----------------------------------------------------------------------------//
// Happy paths
//----------------------------------------------------------------------------//

func TestGenerate_Invariants(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		p, err := puzzle.Generate(n, puzzle.WithSeed(42))
		require.NoError(t, err, "size %d", n)
		requirePlayable(t, p, n, dots.DefaultCount(n))
	}
}

func TestGenerate_DotCountHonored(t *testing.T) {
	p, err := puzzle.Generate(4, puzzle.WithSeed(7), puzzle.WithDotCount(6))
	require.NoError(t, err)
	requirePlayable(t, p, 4, 6)
}

func TestGenerate_AllStrategies(t *testing.T) {
	strategies := []hampath.Strategy{
		hampath.Random,
		hampath.Warnsdorff,
		hampath.ProbWarnsdorff,
		hampath.Annealed,
		hampath.SmartFallback,
	}
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			p, err := puzzle.Generate(4, puzzle.WithSeed(11), puzzle.WithStrategy(s))
			require.NoError(t, err)
			requirePlayable(t, p, 4, dots.DefaultCount(4))
		})
	}
}

//----------------------------------------------------------------------------//
// Randomness policy
//----------------------------------------------------------------------------//

func TestGenerate_SeedDeterminism(t *testing.T) {
	a, err := puzzle.Generate(4, puzzle.WithSeed(1234))
	require.NoError(t, err)
	b, err := puzzle.Generate(4, puzzle.WithSeed(1234))
	require.NoError(t, err)

	assert.Equal(t, a.Solution, b.Solution, "same seed must carve the same path")
	assert.Equal(t, a.Checkpoints, b.Checkpoints, "same seed must place the same dots")
	assert.NotEqual(t, a.ID, b.ID, "instances stay distinct")
}

func TestGenerate_WithRandOverridesSeed(t *testing.T) {
	a, err := puzzle.Generate(3, puzzle.WithSeed(999), puzzle.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	b, err := puzzle.Generate(3, puzzle.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)

	assert.Equal(t, a.Solution, b.Solution)
	assert.Equal(t, a.Checkpoints, b.Checkpoints)
}

//----------------------------------------------------------------------------//
// Failure modes
//----------------------------------------------------------------------------//

// TestGenerate_Exhausted starves every attempt with a one-nanosecond search
// budget: each search expires before its first expansion, so the whole run
// must surface ErrExhausted.
func TestGenerate_Exhausted(t *testing.T) {
	_, err := puzzle.Generate(4,
		puzzle.WithSeed(3),
		puzzle.WithMaxAttempts(3),
		puzzle.WithAttemptTimeout(time.Nanosecond),
		puzzle.WithLogger(zaptest.NewLogger(t)),
	)
	require.ErrorIs(t, err, puzzle.ErrExhausted)
}

func TestGenerate_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := puzzle.Generate(4, puzzle.WithContext(ctx), puzzle.WithSeed(1))
	require.ErrorIs(t, err, context.Canceled)
}

//----------------------------------------------------------------------------//
// Parallel attempts
//----------------------------------------------------------------------------//

func TestGenerate_Parallel(t *testing.T) {
	p, err := puzzle.Generate(5, puzzle.WithSeed(99), puzzle.WithParallelism(4))
	require.NoError(t, err)
	requirePlayable(t, p, 5, dots.DefaultCount(5))
}

func TestGenerate_ParallelContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := puzzle.Generate(5, puzzle.WithContext(ctx), puzzle.WithSeed(2), puzzle.WithParallelism(3))
	require.ErrorIs(t, err, context.Canceled)
}

// TestGenerate_ParallelExhausted keeps the starvation scenario under racing
// workers: all attempts still fail, workers drain, ErrExhausted surfaces.
func TestGenerate_ParallelExhausted(t *testing.T) {
	_, err := puzzle.Generate(4,
		puzzle.WithSeed(8),
		puzzle.WithMaxAttempts(4),
		puzzle.WithParallelism(2),
		puzzle.WithAttemptTimeout(time.Nanosecond),
	)
	require.ErrorIs(t, err, puzzle.ErrExhausted)
}
