package circstat

import (
	"math"

	"github.com/katalvlaran/circular/circval"
)

// Median returns the set of all circular values x minimizing the total
// absolute shortest-distance Σ |Sdist(x,aᵢ)| over the sample.
//
// Unlike the linear median the minimizer need not be one of the inputs, so
// candidate generation is the crux:
//   - odd n:  the distinct input values are the only candidates;
//   - even n: sort the sample; for every circularly-adjacent pair (wrapping
//     the last back to the first) the candidate is the element advanced by
//     half the signed distance to its successor, and when the pair is
//     exactly antipodal (Sdist = -R/2) the successor-side half-point is an
//     equally valid second candidate.
//
// Each candidate is then scored against the full sample; the set of
// candidates attaining the global minimum is returned, deduplicated and
// sorted ascending by position.  Tie detection uses exact float equality,
// as in Mean.  This is an exact finite search, not a heuristic.
//
// Returns ErrEmptySample when the sample is empty.
//
// Complexity: O(n²) time (O(n) candidates × n inputs), O(n) extra space.
func Median[R circval.Range](sample []circval.Val[R]) ([]circval.Val[R], error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}

	half := circval.Span[R]() / 2

	var cands []circval.Val[R]
	if len(sample)%2 == 0 {
		s := make([]circval.Val[R], len(sample))
		copy(s, sample)
		sortVals(s)

		for m := range s {
			next := m + 1
			if next == len(s) {
				next = 0
			}
			d := s[m].Sdist(s[next])
			cands = append(cands, circval.New[R](s[m].Float()+d/2))
			if d == -half {
				// antipodal pair: both half-points are equally valid
				cands = append(cands, circval.New[R](s[next].Float()+d/2))
			}
		}
	} else {
		cands = append(cands, sample...)
	}
	cands = sortUnique(cands)

	var best []circval.Val[R]
	bestCost := math.Inf(1)
	for _, b := range cands {
		var cost float64
		for _, a := range sample {
			cost += math.Abs(b.Sdist(a))
		}

		switch {
		case cost < bestCost:
			best = append(best[:0], b)
			bestCost = cost
		case cost == bestCost:
			best = append(best, b)
		}
	}

	// cands is position-sorted and unique, so best already is as well.
	return best, nil
}
