package circval

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadRange indicates a range definition violating H > L or L ≤ Z < H.
var ErrBadRange = errors.New("circval: range must satisfy H > L and L <= Z < H")

// Range fixes a circular domain [L,H) with zero-reference Z as a Go type.
//
// Implementations are usually empty structs whose CircRange method returns
// three constants; the type itself is the identity of the domain, so values
// of different ranges cannot be mixed without an explicit Convert.
//
// Contract: H > L and L ≤ Z < H.  A definition violating the contract is a
// programming error: the first operation that instantiates the range panics
// with ErrBadRange.  Use Validate[R]() to check a declaration explicitly.
type Range interface {
	// CircRange returns the lower bound L, upper bound H and zero-reference Z.
	CircRange() (l, h, z float64)
}

// SignedDeg is the range [-180,180) degrees with zero at 0°.
type SignedDeg struct{}

// CircRange returns -180, 180, 0.
func (SignedDeg) CircRange() (float64, float64, float64) { return -180, 180, 0 }

// UnsignedDeg is the range [0,360) degrees with zero at 0°.
type UnsignedDeg struct{}

// CircRange returns 0, 360, 0.
func (UnsignedDeg) CircRange() (float64, float64, float64) { return 0, 360, 0 }

// SignedRad is the range [-π,π) radians with zero at 0.
type SignedRad struct{}

// CircRange returns -π, π, 0.
func (SignedRad) CircRange() (float64, float64, float64) { return -math.Pi, math.Pi, 0 }

// UnsignedRad is the range [0,2π) radians with zero at 0.
type UnsignedRad struct{}

// CircRange returns 0, 2π, 0.
func (UnsignedRad) CircRange() (float64, float64, float64) { return 0, 2 * math.Pi, 0 }

// rangeSpec holds the three declared constants of a Range together with the
// derived span R = H-L and half-span R/2.
type rangeSpec struct {
	l, h, z float64
	span    float64 // H-L
	half    float64 // (H-L)/2
}

// specOf materializes and validates the constants of R.
// Panics with ErrBadRange on an invalid definition: a broken range must be
// rejected before any value of that range can exist.
//
// Complexity: O(1).
func specOf[R Range]() rangeSpec {
	var r R
	l, h, z := r.CircRange()
	if !(h > l) || !(z >= l && z < h) {
		panic(fmt.Errorf("%w: [%g,%g) zero=%g", ErrBadRange, l, h, z))
	}

	return rangeSpec{l: l, h: h, z: z, span: h - l, half: (h - l) / 2}
}

// Validate reports whether the range definition R is well-formed without
// panicking.  Returns nil, or an error wrapping ErrBadRange.
func Validate[R Range]() error {
	var r R
	l, h, z := r.CircRange()
	if !(h > l) || !(z >= l && z < h) {
		return fmt.Errorf("%w: [%g,%g) zero=%g", ErrBadRange, l, h, z)
	}

	return nil
}

// RangeOf returns the declared constants L, H, Z of R.
func RangeOf[R Range]() (l, h, z float64) {
	s := specOf[R]()

	return s.l, s.h, s.z
}

// Span returns the range length R = H-L of R.
func Span[R Range]() float64 { return specOf[R]().span }
