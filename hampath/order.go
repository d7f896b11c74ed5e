// Package hampath - candidate ordering strategies.
//
// Each strategy is a pure in-place reordering of a candidate slice, exported
// so hosts can compose or test them directly. The engine calls them through
// orderCandidates with the frame's fill fraction and its RNG.
package hampath

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/zipgrid/grid"
)

// Tuning constants for the randomized strategies. Degrees on a square board
// never exceed 4, so all weight tables stay tiny and flat.
const (
	// probBase and probFloor define the ProbWarnsdorff weight
	// 0.4^degree + 0.2: steep preference for constrained cells with a floor
	// that keeps every candidate reachable.
	probBase  = 0.4
	probFloor = 0.2

	// probJitter scales the ±20% multiplicative noise applied to each weight.
	probJitter = 0.2

	// annealStartP and annealEndP bound the linearly decaying probability of
	// choosing a uniform ordering in the Annealed strategy: 0.9 on an empty
	// board down to 0.2 on a full one.
	annealStartP = 0.9
	annealEndP   = 0.2

	// smartFreeDegree is the candidate count at or above which SmartFallback
	// keeps ordering uniformly.
	smartFreeDegree = 3

	// maxDegree caps a cell's orthogonal neighbor count; used to size
	// stack-local weight buffers.
	maxDegree = 4
)

// Candidate is one prospective next cell for the search head, annotated with
// its onward degree: the number of its own unvisited orthogonal neighbors at
// ordering time. Lower degree means a more constrained, more urgent cell.
type Candidate struct {
	Pos    grid.Position
	Degree int
}

// OrderRandom shuffles cs uniformly (Fisher–Yates). A nil rng falls back to
// the deterministic default stream.
//
// Complexity: O(n) time, O(1) extra space.
func OrderRandom(cs []Candidate, rng *rand.Rand) {
	shuffleCandidatesInPlace(cs, rng)
}

// OrderWarnsdorff sorts cs by ascending onward degree with randomized tie
// order: a uniform shuffle followed by a stable sort leaves ties in shuffled
// relative order.
//
// Complexity: O(n log n) time on n ≤ 4 candidates, effectively O(1).
func OrderWarnsdorff(cs []Candidate, rng *rand.Rand) {
	shuffleCandidatesInPlace(cs, rng)
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Degree < cs[j].Degree })
}

// OrderProbabilistic reorders cs by repeated weighted draws without
// replacement. Each candidate's weight is probBase^Degree + probFloor,
// multiplied by an independent uniform factor in [1−probJitter, 1+probJitter].
//
// Complexity: O(n²) time on n ≤ 4 candidates, effectively O(1); no heap
// allocation for grid-sized candidate lists.
func OrderProbabilistic(cs []Candidate, rng *rand.Rand) {
	var n int
	n = len(cs)
	if n <= 1 {
		return
	}
	r := ensureRNG(rng)

	// 1. Jittered weights. The buffer lives on the stack for n ≤ maxDegree.
	var buf [maxDegree]float64
	w := buf[:0]
	if n > maxDegree {
		w = make([]float64, 0, n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		base := math.Pow(probBase, float64(cs[i].Degree)) + probFloor
		jitter := 1 + probJitter*(2*r.Float64()-1)
		w = append(w, base*jitter)
	}

	// 2. Draw without replacement: the chosen candidate swaps into slot i,
	//    its weight retiring with it.
	var total, x float64
	var pick int
	for i = 0; i < n-1; i++ {
		total = 0
		for j = i; j < n; j++ {
			total += w[j]
		}
		x = r.Float64() * total
		pick = n - 1 // rounding may leave x marginally positive after the scan
		for j = i; j < n; j++ {
			x -= w[j]
			if x <= 0 {
				pick = j
				break
			}
		}
		cs[i], cs[pick] = cs[pick], cs[i]
		w[i], w[pick] = w[pick], w[i]
	}
}

// OrderAnnealed orders uniformly with probability decaying linearly from
// annealStartP at fill=0 to annealEndP at fill=1, and probabilistically
// otherwise. fill is the fraction of board cells already on the path and is
// clamped to [0,1].
//
// Complexity: O(n) or O(n²) depending on the branch taken; n ≤ 4.
func OrderAnnealed(cs []Candidate, fill float64, rng *rand.Rand) {
	if fill < 0 {
		fill = 0
	} else if fill > 1 {
		fill = 1
	}
	r := ensureRNG(rng)

	p := annealStartP + (annealEndP-annealStartP)*fill
	if r.Float64() < p {
		OrderRandom(cs, r)
		return
	}
	OrderProbabilistic(cs, r)
}

// OrderSmartFallback orders uniformly while at least smartFreeDegree
// candidates remain and probabilistically below that, spending the heavier
// heuristic only where the search is already cornered.
//
// Complexity: O(n) or O(n²) depending on the branch taken; n ≤ 4.
func OrderSmartFallback(cs []Candidate, rng *rand.Rand) {
	if len(cs) >= smartFreeDegree {
		OrderRandom(cs, rng)
		return
	}
	OrderProbabilistic(cs, rng)
}

// orderCandidates dispatches to the strategy's ordering function.
// Unknown values fall back to Annealed; WithStrategy rejects them before the
// engine runs, so the default arm is unreachable through Find.
func orderCandidates(s Strategy, cs []Candidate, fill float64, rng *rand.Rand) {
	switch s {
	case Random:
		OrderRandom(cs, rng)
	case Warnsdorff:
		OrderWarnsdorff(cs, rng)
	case ProbWarnsdorff:
		OrderProbabilistic(cs, rng)
	case SmartFallback:
		OrderSmartFallback(cs, rng)
	case Annealed:
		fallthrough
	default:
		OrderAnnealed(cs, fill, rng)
	}
}
