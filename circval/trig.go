package circval

import "math"

// Trigonometry for circular values of any range.
//
// Forward functions convert the value to the canonical SignedRad range
// before calling math, and the inverse functions build a SignedRad value
// from the real result and convert it to the requested range.  This pins a
// single trigonometric convention regardless of which range a value is
// declared in: Sin of 90° equals Sin of π/2 equals 1.

// Sin returns the sine of c.
func (c Val[R]) Sin() float64 { return math.Sin(Convert[SignedRad](c).ToR()) }

// Cos returns the cosine of c.
func (c Val[R]) Cos() float64 { return math.Cos(Convert[SignedRad](c).ToR()) }

// Tan returns the tangent of c.
func (c Val[R]) Tan() float64 { return math.Tan(Convert[SignedRad](c).ToR()) }

// Asin returns the arcsine of r as a circular value of range R.
func Asin[R Range](r float64) Val[R] { return Convert[R](New[SignedRad](math.Asin(r))) }

// Acos returns the arccosine of r as a circular value of range R.
func Acos[R Range](r float64) Val[R] { return Convert[R](New[SignedRad](math.Acos(r))) }

// Atan returns the arctangent of r as a circular value of range R.
func Atan[R Range](r float64) Val[R] { return Convert[R](New[SignedRad](math.Atan(r))) }

// Atan2 returns the two-argument arctangent of y/x as a circular value of
// range R, using the signs of both arguments to pick the quadrant.
func Atan2[R Range](y, x float64) Val[R] { return Convert[R](New[SignedRad](math.Atan2(y, x))) }
