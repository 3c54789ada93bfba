package circval

import "math"

// Val is a circular value: a single float64 position confined to [L,H) of
// its Range R.  The zero Val holds position 0, which is only meaningful for
// ranges containing 0; prefer Zero[R]() for "the value at the zero-reference".
//
// Val is an immutable value type: every operation returns a fresh, wrapped
// result.  NaN positions (e.g. after Div by zero) propagate through all
// operations rather than panicking.
type Val[R Range] struct {
	val float64
}

// New wraps the real number r into [L,H) and returns it as a circular value.
// Note: r is taken as an absolute position; to interpret r relative to the
// zero-reference (0 ↦ Z), use ToC.
func New[R Range](r float64) Val[R] { return Val[R]{specOf[R]().wrap(r)} }

// Zero returns the value at the zero-reference Z of R.
func Zero[R Range]() Val[R] { return Val[R]{specOf[R]().z} }

// Wrap maps any real r to the unique representative in [L,H) congruent to r
// modulo the span R.  Correct for r arbitrarily far outside the range.
//
// Complexity: O(1).
func Wrap[R Range](r float64) float64 { return specOf[R]().wrap(r) }

// InRange reports whether r already lies in [L,H).
func InRange[R Range](r float64) bool {
	s := specOf[R]()

	return r >= s.l && r < s.h
}

// wrap normalizes r into [l,h).  The first branches short-circuit the common
// cases (already in range, or exactly one span away) for speed and accuracy;
// the floored-modulo fallback handles arbitrary distances.
func (s rangeSpec) wrap(r float64) float64 {
	if r >= s.l {
		if r < s.h {
			return r
		}
		if r < s.h+s.span {
			return r - s.span
		}
	} else if r >= s.l-s.span {
		return r + s.span
	}

	return floorMod(r-s.l, s.span) + s.l
}

// floorMod is the floored modulo: the result carries the sign of y and lies
// in [0,y) for y > 0.  NaN inputs propagate.
func floorMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
		if m == y { // rounding collapse at the period boundary
			m = 0
		}
	}

	return m
}

// Float returns the stored wrapped position in [L,H).
// This is the raw representation, not the zero-relative linear value; for
// the latter call ToR.
func (c Val[R]) Float() float64 { return c.val }

// ToR converts c to a real number in [L-Z,H-Z): the position measured from
// the zero-reference, with Z mapping to 0.
func (c Val[R]) ToR() float64 { return c.val - specOf[R]().z }

// ToC converts a real number measured from the zero-reference back into a
// circular value: 0 maps to Z.  Inverse of Val.ToR.
func ToC[R Range](r float64) Val[R] {
	s := specOf[R]()

	return Val[R]{s.wrap(r + s.z)}
}

// Sdist returns the length of the shortest directed walk from c to o.
// The result is signed and lies in [-R/2,R/2): negative when the shortest
// walk runs in the decreasing direction.  This, not o-c, is the circular
// "difference".
func (c Val[R]) Sdist(o Val[R]) float64 { return sdist(specOf[R](), c.val, o.val) }

// Pdist returns the length of the walk from c to o going strictly in the
// increasing direction.  The result lies in [0,R).
func (c Val[R]) Pdist(o Val[R]) float64 { return pdist(specOf[R](), c.val, o.val) }

func sdist(s rangeSpec, a, b float64) float64 {
	d := b - a
	switch {
	case d < -s.half:
		return d + s.span
	case d >= s.half:
		return d - s.span
	default:
		return d
	}
}

func pdist(s rangeSpec, a, b float64) float64 {
	if b >= a {
		return b - a
	}

	return s.span - a + b
}

// Add returns c+o.  All arithmetic is computed relative to the
// zero-reference (subtract Z, operate, add Z, wrap), so Z is the additive
// identity regardless of where L and H are placed.
func (c Val[R]) Add(o Val[R]) Val[R] {
	s := specOf[R]()

	return Val[R]{s.wrap(c.val + o.val - s.z)}
}

// Sub returns c-o, zero-relative and wrapped.
func (c Val[R]) Sub(o Val[R]) Val[R] {
	s := specOf[R]()

	return Val[R]{s.wrap(c.val - o.val + s.z)}
}

// Scale returns c scaled by the real factor r, zero-relative and wrapped.
func (c Val[R]) Scale(r float64) Val[R] {
	s := specOf[R]()

	return Val[R]{s.wrap((c.val-s.z)*r + s.z)}
}

// Div returns c divided by the real divisor r, zero-relative and wrapped.
// Division by zero propagates NaN into the result rather than panicking.
func (c Val[R]) Div(r float64) Val[R] {
	s := specOf[R]()

	return Val[R]{s.wrap((c.val-s.z)/r + s.z)}
}

// Neg returns the additive inverse of c: the value v with c.Add(v) = Z.
func (c Val[R]) Neg() Val[R] {
	s := specOf[R]()

	return Val[R]{s.wrap(s.z - sdist(s, s.z, c.val))}
}

// Opposite returns the antipodal point: the value at distance exactly R/2
// from c.
func (c Val[R]) Opposite() Val[R] {
	s := specOf[R]()

	return Val[R]{s.wrap(c.val + s.half)}
}
