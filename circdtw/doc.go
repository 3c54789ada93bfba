// Package circdtw computes Dynamic Time Warping (DTW) distances between
// sequences of circular values, with optional alignment path and memory
// optimizations.
//
// 🚀 Why a circular DTW?
//
//	DTW finds the best match between two sequences by warping the time axis
//	to minimize cumulative distance.  For heading, wind-direction or phase
//	series the local cost must respect the wrap: 359° and 1° are 2° apart,
//	not 358°.  circdtw is the classic DTW recurrence with the local cost
//	|Sdist(aᵢ,bⱼ)| — the absolute shortest circular distance.
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, optional alignment path
//   - two-rows mode: O(min(N,M)) memory when only the distance is needed
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/circular/circdtw"
//	  "github.com/katalvlaran/circular/circval"
//	)
//
//	opts := circdtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := circdtw.DTW(headingsA, headingsB, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
package circdtw
