// Package circular is your in-memory toolkit for quantities that live on a
// cycle rather than a line — angles, compass headings, phases, time-of-day —
// where ordinary arithmetic, comparison and statistics silently break at the
// wrap boundary.
//
// 🚀 What is circular?
//
//	A small, exact, zero-surprise library that brings together:
//		• Circular values: wrap-aware construction, arithmetic, distances,
//		  comparisons and cross-range conversion (degrees ⇄ radians ⇄ custom)
//		• Circular statistics: the full set of global minimizers for the
//		  circular mean, weighted mean and median — not a single heuristic
//		  answer, the whole tie set
//		• Sampled signals: an incremental estimator for the time-average of a
//		  continuous circular signal observed at discrete instants
//		• Circular arcs: directed arcs with containment and intersection tests
//		• Wrap-aware DTW: sequence alignment where 359° and 1° are 2° apart
//
// ✨ Why choose circular?
//
//   - Exact solvers – the mean and median are global optimizations with
//     generically non-unique answers; every entry point returns the full set
//   - Range-parameterized – declare any [L,H) domain with a zero-reference Z
//     once, as a type, and the compiler keeps ranges from mixing silently
//   - Pure Go – deterministic, allocation-light, no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	circval/  — ranges, values, wrap/Sdist/Pdist, arithmetic, trig, conversion
//	circstat/ — Mean, WeightedMean, Median, SignalAverage
//	circarc/  — directed circular arcs + containment/intersection
//	circdtw/  — Dynamic Time Warping under the circular metric
//
// Quick ASCII example:
//
//	        0°
//	   350°  |  10°       Mean({10°, 350°}) = {0°}
//	      \  |  /         Mean({0°, 180°})  = {90°, 270°}
//	       \ | /
//	        (·)
//
//	the second sample is antipodal, so two means are equally right — and
//	circular tells you so instead of picking one.
//
//	go get github.com/katalvlaran/circular
package circular
