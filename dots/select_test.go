package dots_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zipgrid/dots"
	"github.com/katalvlaran/zipgrid/grid"
)

// serpentine builds the boustrophedon path over an n×n board: row 0 left to
// right, row 1 right to left, and so on. A convenient structurally valid
// fixture for selection tests.
func serpentine(n int) grid.Path {
	path := make(grid.Path, 0, n*n)
	for y := 0; y < n; y++ {
		if y%2 == 0 {
			for x := 0; x < n; x++ {
				path = append(path, grid.Position{X: x, Y: y})
			}
		} else {
			for x := n - 1; x >= 0; x-- {
				path = append(path, grid.Position{X: x, Y: y})
			}
		}
	}

	return path
}

// requireCheckpointInvariants asserts the full checkpoint contract against
// its source path: contiguous numbering from 1, strictly increasing path
// indices, unique positions, pinned endpoints.
func requireCheckpointInvariants(t *testing.T, path grid.Path, cps []dots.Checkpoint) {
	t.Helper()
	require.NotEmpty(t, cps)
	require.Equal(t, path[0], cps[0].Pos, "checkpoint 1 must sit on the path head")
	require.Equal(t, path[len(path)-1], cps[len(cps)-1].Pos, "last checkpoint must sit on the path tail")

	prevIdx := -1
	seen := make(map[grid.Position]bool, len(cps))
	for i, cp := range cps {
		require.Equal(t, i+1, cp.Number, "numbers must be contiguous from 1")
		idx := path.IndexOf(cp.Pos)
		require.GreaterOrEqual(t, idx, 0, "checkpoint %d not on the path", cp.Number)
		require.Greater(t, idx, prevIdx, "checkpoint %d does not advance along the path", cp.Number)
		prevIdx = idx
		require.False(t, seen[cp.Pos], "checkpoint %d reuses a position", cp.Number)
		seen[cp.Pos] = true
	}
}

func TestSelect_CountValidation(t *testing.T) {
	path := serpentine(3)
	cases := []struct {
		name  string
		count int
	}{
		{"Zero", 0},
		{"One", 1},
		{"Negative", -2},
		{"AbovePathLength", len(path) + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dots.Select(path, tc.count, nil)
			require.ErrorIs(t, err, dots.ErrDotCount)
		})
	}
}

// TestSelect_NilRNGLattice pins the exact deterministic layout: without
// jitter the intermediate dots sit on the arithmetic lattice.
func TestSelect_NilRNGLattice(t *testing.T) {
	path := serpentine(3) // 9 cells, step (9-1)/(4-1) = 2
	cps, err := dots.Select(path, 4, nil)
	require.NoError(t, err)

	wantIdx := []int{0, 2, 4, 8}
	require.Len(t, cps, 4)
	for i, cp := range cps {
		require.Equal(t, path[wantIdx[i]], cp.Pos, "checkpoint %d", i+1)
		require.Equal(t, i+1, cp.Number)
	}

	again, err := dots.Select(path, 4, nil)
	require.NoError(t, err)
	require.Equal(t, cps, again, "nil-rng selection must be reproducible")
}

// TestSelect_Invariants sweeps board sizes, counts, and seeds; the jitter
// must never break ordering, uniqueness, or the pinned endpoints.
func TestSelect_Invariants(t *testing.T) {
	for _, n := range []int{3, 5, 8} {
		path := serpentine(n)
		for _, count := range []int{2, 4, dots.DefaultCount(n), len(path)} {
			for seed := int64(1); seed <= 20; seed++ {
				cps, err := dots.Select(path, count, rand.New(rand.NewSource(seed)))
				require.NoError(t, err, "n=%d count=%d seed=%d", n, count, seed)
				require.Len(t, cps, count)
				requireCheckpointInvariants(t, path, cps)
			}
		}
	}
}

// TestSelect_FullCoverage uses count == len(path): every cell becomes a
// checkpoint and jitter has no room to act.
func TestSelect_FullCoverage(t *testing.T) {
	path := serpentine(3)
	cps, err := dots.Select(path, len(path), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for i, cp := range cps {
		require.Equal(t, path[i], cp.Pos)
		require.Equal(t, i+1, cp.Number)
	}
}

// TestSelect_Reselect applies Select twice with different seeds on one path;
// both draws must independently satisfy the invariants.
func TestSelect_Reselect(t *testing.T) {
	path := serpentine(5)
	first, err := dots.Select(path, 8, rand.New(rand.NewSource(101)))
	require.NoError(t, err)
	second, err := dots.Select(path, 8, rand.New(rand.NewSource(202)))
	require.NoError(t, err)

	requireCheckpointInvariants(t, path, first)
	requireCheckpointInvariants(t, path, second)
}

func TestDefaultCount(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{3, 4}, {4, 6}, {5, 8}, {6, 10}, {7, 12}, {8, 15}, // tuned table
		{9, 14},  // ceil(1.5·9)
		{10, 15}, // ceil(1.5·10)
		{2, 3},   // formula below the table
		{1, 2},   // floor at the two mandatory dots
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, dots.DefaultCount(tc.n), "n=%d", tc.n)
	}
}
