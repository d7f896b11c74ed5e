package grid

// neighborOffsets enumerates the four orthogonal directions in N, E, S, W
// order. Precomputed once; used by all adjacency traversals.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid models a square N×N board. It is a small immutable value; copy it
// freely.
type Grid struct {
	n int
}

// New constructs a Grid with side length n.
// Returns ErrGridSize if n < 1.
// Complexity: O(1).
func New(n int) (Grid, error) {
	if n < 1 {
		return Grid{}, ErrGridSize
	}

	return Grid{n: n}, nil
}

// Size returns the side length N.
// Complexity: O(1).
func (g Grid) Size() int { return g.n }

// Cells returns the total cell count N².
// Complexity: O(1).
func (g Grid) Cells() int { return g.n * g.n }

// InBounds reports whether pos lies within the board boundaries.
// Complexity: O(1).
func (g Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.n && pos.Y >= 0 && pos.Y < g.n
}

// Index maps pos to its row-major index: y*N + x.
// The caller must ensure pos is in bounds.
// Complexity: O(1).
func (g Grid) Index(pos Position) int {
	return pos.Y*g.n + pos.X
}

// At converts a row-major index back to a Position.
// Complexity: O(1).
func (g Grid) At(idx int) Position {
	return Position{X: idx % g.n, Y: idx / g.n}
}

// Corners returns the four corner positions in clockwise order from the
// top-left. On a 1×1 board all four entries coincide.
// Complexity: O(1).
func (g Grid) Corners() [4]Position {
	last := g.n - 1

	return [4]Position{
		{X: 0, Y: 0},
		{X: last, Y: 0},
		{X: last, Y: last},
		{X: 0, Y: last},
	}
}

// Neighbors4 returns the in-bounds orthogonal neighbors of pos (up to four),
// in N, E, S, W order. Allocates the result slice; hot paths should prefer
// AppendNeighbors4.
// Complexity: O(1).
func (g Grid) Neighbors4(pos Position) []Position {
	return g.AppendNeighbors4(make([]Position, 0, 4), pos)
}

// AppendNeighbors4 appends the in-bounds orthogonal neighbors of pos to dst
// and returns the extended slice. Reusing dst across calls keeps adjacency
// scans allocation-free.
// Complexity: O(1).
func (g Grid) AppendNeighbors4(dst []Position, pos Position) []Position {
	for _, d := range neighborOffsets {
		q := Position{X: pos.X + d[0], Y: pos.Y + d[1]}
		if g.InBounds(q) {
			dst = append(dst, q)
		}
	}

	return dst
}
