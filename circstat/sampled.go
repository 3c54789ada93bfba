package circstat

import (
	"fmt"

	"github.com/katalvlaran/circular/circval"
)

// SignalAverage estimates the time-average of a continuous circular signal
// that is only known through ordered (value, timestamp) samples.
//
// Each consecutive pair of samples contributes one interval: its
// representative value is the circular midpoint along the shortest path
// between the two samples (Sdist-based linear interpolation), weighted by
// the elapsed time.  The estimate is then the weighted circular mean of all
// intervals.
//
// The zero SignalAverage is ready to use.  It is a single-writer object:
// AddMeasurement mutates private state and calls must be strictly ordered
// by the caller — sharing one instance across goroutines requires external
// synchronization.
type SignalAverage[R circval.Range] struct {
	samples   int
	prev      circval.Val[R]
	prevTime  float64
	intervals []Weighted[R]
}

// AddMeasurement ingests one sample of the signal at timestamp t.
//
// Precondition: timestamps strictly increase across calls.  A violation is
// caller misuse of the streaming contract, not a recoverable condition, and
// panics.
//
// Complexity: amortized O(1).
func (s *SignalAverage[R]) AddMeasurement(c circval.Val[R], t float64) {
	if s.samples > 0 {
		if t <= s.prevTime {
			panic(fmt.Sprintf("circstat: SignalAverage timestamps must strictly increase (got %g after %g)", t, s.prevTime))
		}
		mid := circval.New[R](s.prev.Float() + s.prev.Sdist(c)/2)
		s.intervals = append(s.intervals, Weighted[R]{Val: mid, Weight: t - s.prevTime})
	}

	s.prev = c
	s.prevTime = t
	s.samples++
}

// Samples returns the number of measurements ingested so far.
func (s *SignalAverage[R]) Samples() int { return s.samples }

// Average returns the current estimate.  With no samples it returns
// (Zero, false); with one sample, that sample; with two or more, the lowest
// positioned value of the weighted-mean set over all intervals.
//
// Complexity: O(n log n) in the number of samples.
func (s *SignalAverage[R]) Average() (circval.Val[R], bool) {
	switch s.samples {
	case 0:
		return circval.Zero[R](), false
	case 1:
		return s.prev, true
	default:
		set, err := WeightedMean(s.intervals)
		if err != nil {
			// intervals are non-empty with positive durations; unreachable
			panic("circstat: internal: " + err.Error())
		}

		return set[0], true
	}
}
