package circstat

import (
	"errors"
	"sort"

	"github.com/katalvlaran/circular/circval"
)

var (
	// ErrEmptySample indicates a statistic was requested for an empty sample.
	ErrEmptySample = errors.New("circstat: sample must contain at least one value")

	// ErrBadWeight indicates a negative weight or a zero weight total.
	ErrBadWeight = errors.New("circstat: weights must be non-negative with a positive total")
)

// Weighted pairs a circular value with its non-negative weight.
type Weighted[R circval.Range] struct {
	Val    circval.Val[R]
	Weight float64
}

// sortUnique sorts vals ascending by stored position and drops exact
// duplicates in place.  Solver results are sets: order by range position,
// duplicates removed.
func sortUnique[R circval.Range](vals []circval.Val[R]) []circval.Val[R] {
	if len(vals) < 2 {
		return vals
	}
	sortVals(vals)
	out := vals[:1]
	for _, v := range vals[1:] {
		if !v.Equal(out[len(out)-1]) {
			out = append(out, v)
		}
	}

	return out
}

func sortVals[R circval.Range](vals []circval.Val[R]) {
	sort.Slice(vals, func(i, j int) bool { return vals[i].Less(vals[j]) })
}
