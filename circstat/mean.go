// Package circstat - circular mean solvers (unweighted and weighted).
//
// Both solvers minimize Σ wᵢ·Sdist(x,aᵢ)² exactly, by sector search:
//
//	Map every sample to its canonical position u = pos-L ∈ [0,R).  For a
//	fixed candidate mean x, each sample is either within R/2 of x directly
//	or reached by wrapping past a range boundary; with that split fixed, the
//	objective is an ordinary quadratic in x whose unconstrained minimizer is
//	a (shifted) weighted arithmetic mean.  The split only changes when x
//	crosses u+R/2 for some sample, so [0,R) decomposes into at most 2(n+1)
//	sectors.  Walking the sectors in order, maintaining the partial sums of
//	the wrapped subset incrementally, each sector's closed-form minimizer is
//	tested only if it actually falls inside its sector; the boundary optima
//	are covered when the adjacent sectors are processed.
//
// Ties for the global minimum are detected by exact float equality of the
// objective, so numerically identical sector minimizers collapse into one
// result set.  Sorting dominates: O(n log n) time, O(n) space.
package circstat

import (
	"sort"

	"github.com/katalvlaran/circular/circval"
)

// Mean returns the set of all circular values x minimizing the total
// squared shortest-distance Σ Sdist(x,aᵢ)² over the sample.
//
// The set is non-empty, deduplicated and sorted ascending by position.
// Generic non-uniqueness is real: Mean({0°,180°}) = {90°,270°}.
//
// Returns ErrEmptySample when the sample is empty: "no samples" has no
// circular mean.
//
// Complexity: O(n log n) time, O(n) extra space.
func Mean[R circval.Range](sample []circval.Val[R]) ([]circval.Val[R], error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}

	l, _, _ := circval.RangeOf[R]()
	span := circval.Span[R]()
	half := span / 2

	// Canonical positions and their running sums.
	n := float64(len(sample))
	var (
		sum, sumSqr  float64
		lower, upper []float64 // u<R/2 ascending / u>R/2 descending
	)
	for _, a := range sample {
		u := a.Float() - l
		sum += u
		sumSqr += u * u
		switch {
		case u < half:
			lower = append(lower, u)
		case u > half:
			upper = append(upper, u)
		}
	}
	sort.Float64s(lower)
	sort.Sort(sort.Reverse(sort.Float64Slice(upper)))

	// Seed with the boundary candidate x=R/2: every sample is within R/2 of
	// it, so no sample wraps and the objective is Σ(R/2-u)².
	best := []float64{half}
	bestCost := half*half*n - span*sum + sumSqr

	test := func(x, cost float64) {
		switch {
		case cost < bestCost:
			best = append(best[:0], x)
			bestCost = cost
		case cost == bestCost:
			best = append(best, x)
		}
	}

	// Objective for a candidate above R/2, with the d smallest positions
	// (sum sumD) wrapped downward past L.
	costAbove := func(x, d, sumD float64) float64 {
		return sumSqr + x*(n*x-2*sum) + 2*span*sumD + d*(span*span-2*span*x)
	}
	// Objective for a candidate below R/2, with the c largest positions
	// (sum sumC) wrapped upward past H.
	costBelow := func(x, c, sumC float64) float64 {
		return sumSqr + x*(n*x-2*sum) - 2*span*sumC + c*(span*span+2*span*x)
	}

	// Candidates in (R/2, R): sector d is (lower[d-1]+R/2, lower[d]+R/2],
	// wrapping exactly the d smallest positions.
	lowerBound, sumD := 0.0, 0.0
	for d, v := range lower {
		x := (sum + span*float64(d)) / n
		if x > lowerBound+half && x <= v+half {
			test(x, costAbove(x, float64(d), sumD))
		}
		lowerBound = v
		sumD += v
	}
	x := (sum + span*float64(len(lower))) / n
	if x < span && x > lowerBound {
		test(x, costAbove(x, float64(len(lower)), sumD))
	}

	// Candidates in [0, R/2): sector c is [upper[c]-R/2, upper[c-1]-R/2),
	// wrapping exactly the c largest positions.
	upperBound, sumC := span, 0.0
	for c, v := range upper {
		x = (sum - span*float64(c)) / n
		if x >= v-half && x < upperBound-half {
			test(x, costBelow(x, float64(c), sumC))
		}
		upperBound = v
		sumC += v
	}
	x = (sum - span*float64(len(upper))) / n
	if x >= 0 && x < upperBound {
		test(x, costBelow(x, float64(len(upper)), sumC))
	}

	return canonResults[R](best, l), nil
}

// WeightedMean returns the set of all circular values x minimizing
// Σ wᵢ·Sdist(x,aᵢ)² over the weighted sample.  Same sector search as Mean
// with the weights folded into every sum; all-equal weights reproduce
// Mean's result set exactly.
//
// Returns ErrEmptySample for an empty sample and ErrBadWeight when any
// weight is negative or the weight total is not positive.
//
// Complexity: O(n log n) time, O(n) extra space.
func WeightedMean[R circval.Range](sample []Weighted[R]) ([]circval.Val[R], error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}

	l, _, _ := circval.RangeOf[R]()
	span := circval.Span[R]()
	half := span / 2

	type wpos struct{ u, w float64 }

	var (
		sumW, sumWA, sumWA2 float64
		lower, upper        []wpos // u<R/2 ascending / u>R/2 descending
	)
	for _, a := range sample {
		if a.Weight < 0 {
			return nil, ErrBadWeight
		}
		u := a.Val.Float() - l
		w := a.Weight
		sumW += w
		sumWA += w * u
		sumWA2 += w * u * u
		switch {
		case u < half:
			lower = append(lower, wpos{u, w})
		case u > half:
			upper = append(upper, wpos{u, w})
		}
	}
	if !(sumW > 0) {
		return nil, ErrBadWeight
	}
	sort.Slice(lower, func(i, j int) bool { return lower[i].u < lower[j].u })
	sort.Slice(upper, func(i, j int) bool { return upper[i].u > upper[j].u })

	best := []float64{half}
	bestCost := half*half*sumW - span*sumWA + sumWA2

	test := func(x, cost float64) {
		switch {
		case cost < bestCost:
			best = append(best[:0], x)
			bestCost = cost
		case cost == bestCost:
			best = append(best, x)
		}
	}

	costAbove := func(x, wD, wAD float64) float64 {
		return sumWA2 + x*(sumW*x-2*sumWA) + 2*span*wAD + wD*(span*span-2*span*x)
	}
	costBelow := func(x, wC, wAC float64) float64 {
		return sumWA2 + x*(sumW*x-2*sumWA) - 2*span*wAC + wC*(span*span+2*span*x)
	}

	// Candidates in (R/2, R).
	lowerBound, wD, wAD := 0.0, 0.0, 0.0
	for _, p := range lower {
		x := (sumWA + span*wD) / sumW
		if x > lowerBound+half && x <= p.u+half {
			test(x, costAbove(x, wD, wAD))
		}
		lowerBound = p.u
		wD += p.w
		wAD += p.w * p.u
	}
	x := (sumWA + span*wD) / sumW
	if x < span && x > lowerBound {
		test(x, costAbove(x, wD, wAD))
	}

	// Candidates in [0, R/2).
	upperBound, wC, wAC := span, 0.0, 0.0
	for _, p := range upper {
		x = (sumWA - span*wC) / sumW
		if x >= p.u-half && x < upperBound-half {
			test(x, costBelow(x, wC, wAC))
		}
		upperBound = p.u
		wC += p.w
		wAC += p.w * p.u
	}
	x = (sumWA - span*wC) / sumW
	if x >= 0 && x < upperBound {
		test(x, costBelow(x, wC, wAC))
	}

	return canonResults[R](best, l), nil
}

// canonResults lifts canonical [0,R) minimizer positions back into the
// caller's range and normalizes them into a set.
func canonResults[R circval.Range](positions []float64, l float64) []circval.Val[R] {
	out := make([]circval.Val[R], 0, len(positions))
	for _, x := range positions {
		out = append(out, circval.New[R](x+l))
	}

	return sortUnique(out)
}
