// Package circarc implements directed circular arcs: the walk of a given
// length from a start value in the increasing direction of its range.
//
// 🚀 What is a circular arc?
//
//	An interval on a circle.  Unlike a linear interval it may cross the
//	wrap boundary (the arc from 350° of length 20° ends at 10°), and the
//	full circle is a valid arc whose start point is irrelevant.
//	  • Arc[R] — start, end and length ∈ [0,R] over a circval.Range
//	  • New / Between / Convert — by start+length, by two endpoints, or
//	    rescaled from another range
//	  • Contains / ContainsArc / Intersects — endpoint-inclusive predicates
//
// ✨ Key properties:
//   - Lengths are clamped to [0,R]; length R means the whole circle, and
//     two full circles compare equal regardless of start.
//   - Containment and intersection are tolerant to 1e-12 at the endpoints,
//     so arcs built from arithmetic still contain their own boundaries.
//   - Pure value types, O(1) operations, safe for concurrent use.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/circular/circarc"
//	  "github.com/katalvlaran/circular/circval"
//	)
//
//	type deg = circval.UnsignedDeg
//	a := circarc.New(circval.New[deg](350), 20) // 350° → 10°
//	a.Contains(circval.New[deg](0))             // true
package circarc
