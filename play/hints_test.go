package play_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zipgrid/grid"
	"github.com/katalvlaran/zipgrid/play"
	"github.com/katalvlaran/zipgrid/puzzle"
)

func TestNextCheckpoint(t *testing.T) {
	p := board2(t) // dot 1 (0,0), dot 2 (1,0), dot 3 (0,1)

	cp, ok := play.NextCheckpoint(nil, p)
	require.True(t, ok)
	assert.Equal(t, 1, cp.Number, "empty path aims at dot 1")

	cp, ok = play.NextCheckpoint(grid.Path{{X: 0, Y: 0}}, p)
	require.True(t, ok)
	assert.Equal(t, 2, cp.Number)

	// Crossing dot 3 early must not satisfy it: the hint still says dot 2.
	cp, ok = play.NextCheckpoint(grid.Path{{X: 0, Y: 0}, {X: 0, Y: 1}}, p)
	require.True(t, ok)
	assert.Equal(t, 2, cp.Number)

	_, ok = play.NextCheckpoint(p.Solution, p)
	assert.False(t, ok, "a winning path has no next dot")

	_, ok = play.NextCheckpoint(nil, nil)
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	p := board2(t)

	assert.Equal(t, 0, play.Progress(nil, p))
	assert.Equal(t, 25, play.Progress(p.Solution[:1], p))
	assert.Equal(t, 50, play.Progress(p.Solution[:2], p))
	assert.Equal(t, 100, play.Progress(p.Solution, p))
	assert.Equal(t, 0, play.Progress(p.Solution, nil))

	// Oversized input clamps instead of overflowing the percentage.
	long := append(p.Solution.Clone(), grid.Position{X: 9, Y: 9})
	assert.Equal(t, 100, play.Progress(long, p))
}

func TestProgress_Floor(t *testing.T) {
	p, err := puzzle.Fallback(3, 3)
	require.NoError(t, err)

	// 4 of 9 cells is 44.4…%: floor, not round.
	assert.Equal(t, 44, play.Progress(p.Solution[:4], p))
}
