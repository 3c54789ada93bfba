// Package circstat computes exact circular statistics: the circular mean,
// the weighted circular mean, and the circular median, plus an incremental
// estimator for the time-average of a sampled continuous circular signal.
//
// 🚀 Why circular statistics?
//
//	The arithmetic mean of the headings 10° and 350° is 180° — the exact
//	opposite of the right answer, 0°.  On a circle every statistic must be
//	restated as a global optimization over wrap-aware distances:
//	  • Mean / WeightedMean — all x minimizing Σ wᵢ·Sdist(x,aᵢ)²
//	  • Median              — all x minimizing Σ |Sdist(x,aᵢ)|
//	  • SignalAverage       — interval-weighted mean of a sampled signal
//
// ✨ Key properties:
//   - Set-valued results: circular optima are generically non-unique (the
//     mean of {0°,180°} is both 90° and 270°), so every solver returns the
//     complete set of global minimizers, deduplicated and sorted by
//     position — never an arbitrary pick.
//   - Exact, not heuristic: the mean is found by closed-form minimization
//     over O(n) candidate sectors, the median by exhaustive evaluation of
//     O(n) exact candidates.  No resultant-vector approximation.
//   - Pure functions: solvers share no state and are safe to call
//     concurrently on independent inputs.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/circular/circstat"
//	  "github.com/katalvlaran/circular/circval"
//	)
//
//	type deg = circval.UnsignedDeg
//	set, err := circstat.Mean([]circval.Val[deg]{
//	  circval.New[deg](10), circval.New[deg](350),
//	})
//	// set = [0°], err = nil
//
// Errors:
//   - ErrEmptySample — Mean/WeightedMean/Median on an empty sample (there is
//     no valid circular mean of nothing).
//   - ErrBadWeight   — a negative weight, or a weight total of zero.
//
// SignalAverage is the one stateful component: single writer, strictly
// increasing timestamps (violations panic — they are caller bugs, not
// recoverable conditions).
//
// Performance: Mean/WeightedMean are O(n log n); Median is O(n²).
package circstat
