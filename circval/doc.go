// Package circval implements circular values: floating-point quantities
// confined to a circular range [L,H) with a distinguished zero-reference Z,
// where H is identified with L and every operation respects the wraparound.
//
// 🚀 What is a circular value?
//
//	Angles, compass headings, phases and times-of-day live on a circle, not
//	a line.  Plain float arithmetic is wrong for them: 350°+20° is 10°, the
//	distance between 359° and 1° is 2°, and "the opposite of 90°" is 270°.
//	circval encodes the range as a Go type and keeps every result wrapped:
//	  • Val[R] — one float64, always in [L,H) of its Range R
//	  • Wrap / Sdist / Pdist — normalization and the two circular metrics
//	  • Add/Sub/Scale/Div/Neg/Opposite — zero-relative wrap-aware arithmetic
//	  • Convert — proportional rescaling between ranges (deg ⇄ rad ⇄ custom)
//	  • Sin/Cos/Tan + Asin/Acos/Atan/Atan2 — one trig convention for all ranges
//
// ✨ Key properties:
//   - The range is a type parameter: mixing degrees and radians is a compile
//     error, never a silent bug.
//   - Z is the additive identity wherever L and H are placed: arithmetic is
//     computed relative to Z, then wrapped.
//   - Four standard ranges ship ready to use (SignedDeg, UnsignedDeg,
//     SignedRad, UnsignedRad); any struct with a CircRange method declares a
//     new one.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/circular/circval"
//
//	a := circval.New[circval.UnsignedDeg](350)
//	b := circval.New[circval.UnsignedDeg](20)
//	sum := a.Add(b)                          // 10°
//	d := a.Sdist(b)                          // +30 (shortest signed walk)
//	r := circval.Convert[circval.SignedRad](a) // same point, in radians
//
// ⚠️ Comparison caveat: two circular values can be meaningfully ordered in
// more than one way (by stored position, by shortest distance from a
// reference, ...).  Less/Greater compare the stored wrapped position only —
// choose deliberately.
//
// Invalid range definitions (H ≤ L, or Z outside [L,H)) are rejected the
// first time the range is used: constructors panic, and Validate[R]() lets
// you check a declaration without panicking.
//
// All operations are O(1), allocation-free and safe for concurrent use
// (values are immutable; all state lives in the caller's copy).
package circval
