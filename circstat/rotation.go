package circstat

import (
	"sort"

	"github.com/katalvlaran/circular/circval"
)

// meanByRotation is an independent formulation of the unweighted circular
// mean, kept as a cross-check for Mean's sector search: the two must agree
// on every input (property-tested).
//
// Observation: some rotation of the sorted sample — advancing a prefix of
// the sorted positions by one full span — makes the circular mean equal the
// plain arithmetic mean of the rotated data.  Trying every rotation index
// therefore covers all candidates, and the objective of shift i follows
// from shift i-1 in O(1):
//
//	Σ(uⱼ+Rδⱼ)² - (Σ(uⱼ+Rδⱼ))²/n, with δⱼ=1 for the i smallest positions.
//
// All minimizing shifts are collected, exact equality for ties, same as the
// sector search.
//
// Complexity: O(n log n) time, O(n) space.
func meanByRotation[R circval.Range](sample []circval.Val[R]) ([]circval.Val[R], error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}

	l, _, _ := circval.RangeOf[R]()
	span := circval.Span[R]()

	n := float64(len(sample))
	u := make([]float64, len(sample))
	var sum, sumSqr float64
	for i, a := range sample {
		u[i] = a.Float() - l
		sum += u[i]
		sumSqr += u[i] * u[i]
	}
	sort.Float64s(u)

	// Shift 0: the unrotated arithmetic mean.
	minCost := sumSqr - sum*sum/n
	shifts := []int{0}

	for i := 1; i < len(u); i++ {
		// Advancing u[i-1] by one span adds 2R·u[i-1]+R² to Σu² and R to Σu.
		sumSqr += 2 * span * u[i-1]
		fi := float64(i)
		cost := sumSqr + span*span*fi - (sum+span*fi)*(sum+span*fi)/n

		switch {
		case cost < minCost:
			shifts = append(shifts[:0], i)
			minCost = cost
		case cost == minCost:
			shifts = append(shifts, i)
		}
	}

	positions := make([]float64, 0, len(shifts))
	for _, i := range shifts {
		positions = append(positions, (sum+span*float64(i))/n)
	}

	return canonResults[R](positions, l), nil
}
