package circval

import "math"

// Note that two circular values can be compared in several different ways:
// by stored position (these methods), by shortest signed distance from a
// reference, by arc ordering, ...  Check carefully that position order is
// really what you need before reaching for Less/Greater.

// DefaultEps is a reasonable tolerance for AlmostEqual on the built-in
// degree and radian ranges.
const DefaultEps = 1e-9

// Equal reports exact equality of the stored positions.  Exact float
// equality is rarely the right tool after arithmetic; prefer AlmostEqual
// with an explicit tolerance unless bitwise identity is what you mean.
func (c Val[R]) Equal(o Val[R]) bool { return c.val == o.val }

// Less reports whether c's stored position is below o's.  Position order,
// not distance order: see the package comparison caveat.
func (c Val[R]) Less(o Val[R]) bool { return c.val < o.val }

// LessEq reports c ≤ o by stored position.
func (c Val[R]) LessEq(o Val[R]) bool { return c.val <= o.val }

// Greater reports c > o by stored position.
func (c Val[R]) Greater(o Val[R]) bool { return c.val > o.val }

// GreaterEq reports c ≥ o by stored position.
func (c Val[R]) GreaterEq(o Val[R]) bool { return c.val >= o.val }

// AlmostEqual reports whether c and o denote the same point on the circle
// within tolerance eps.  Unlike a plain |a-b| ≤ eps test it also accepts
// positions that differ by one full span, so values just below H and just
// above L compare equal.
func (c Val[R]) AlmostEqual(o Val[R], eps float64) bool {
	if math.Abs(c.val-o.val) <= eps {
		return true
	}
	span := specOf[R]().span
	if c.val < o.val {
		return math.Abs(c.val-(o.val-span)) <= eps
	}

	return math.Abs(c.val-(o.val+span)) <= eps
}
