package circval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circular/circval"
)

// TestConvert_DegRad verifies the canonical degree/radian correspondences.
func TestConvert_DegRad(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		rad  float64
	}{
		{"zero", 0, 0},
		{"quarter", 90, math.Pi / 2},
		{"half", 180, math.Pi},
		{"three quarters", 270, 3 * math.Pi / 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := circval.New[circval.UnsignedDeg](tc.deg)
			r := circval.Convert[circval.UnsignedRad](d)
			assert.InDelta(t, tc.rad, r.Float(), 1e-12)
		})
	}
}

// TestConvert_SignedUnsigned verifies conversion between signed and
// unsigned conventions of the same unit: positions correspond through the
// shared zero-reference.
func TestConvert_SignedUnsigned(t *testing.T) {
	s := circval.New[circval.SignedDeg](-90)
	u := circval.Convert[circval.UnsignedDeg](s)
	assert.InDelta(t, 270.0, u.Float(), 1e-12)

	back := circval.Convert[circval.SignedDeg](u)
	assert.InDelta(t, -90.0, back.Float(), 1e-12)
}

// TestConvert_ZeroMapsToZero: the zero-reference of one range converts to
// the zero-reference of any other, whatever the bounds.
func TestConvert_ZeroMapsToZero(t *testing.T) {
	requireCircEq[rangeA](t, circval.Zero[rangeA](), circval.Convert[rangeA](circval.Zero[circval.SignedRad]()))
	requireCircEq[rangeD](t, circval.Zero[rangeD](), circval.Convert[rangeD](circval.Zero[rangeC]()))
	requireCircEq[circval.UnsignedRad](t, circval.Zero[circval.UnsignedRad](), circval.Convert[circval.UnsignedRad](circval.Zero[rangeB]()))
}

// checkConvertRoundTrip: converting there and back preserves the point.
func checkConvertRoundTrip[A circval.Range, B circval.Range](t *testing.T) {
	t.Helper()
	rng := newRNG()
	for i := 0; i < propIters; i++ {
		a := randVal[A](rng)
		back := circval.Convert[A](circval.Convert[B](a))
		require.True(t, a.AlmostEqual(back, circEps[A]()),
			"round trip drifted: %v → %v", a.Float(), back.Float())
	}
}

func TestConvertRoundTrip_DegRad(t *testing.T) {
	checkConvertRoundTrip[circval.UnsignedDeg, circval.SignedRad](t)
}

func TestConvertRoundTrip_SignedDegUnsignedRad(t *testing.T) {
	checkConvertRoundTrip[circval.SignedDeg, circval.UnsignedRad](t)
}

func TestConvertRoundTrip_CustomRanges(t *testing.T) {
	checkConvertRoundTrip[rangeA, rangeD](t)
	checkConvertRoundTrip[rangeC, circval.UnsignedRad](t)
}

// TestConvert_PreservesDistances: Sdist scales by the span ratio under
// conversion (up to rounding), so relative geometry survives.
func TestConvert_PreservesDistances(t *testing.T) {
	rng := newRNG()
	ratio := circval.Span[circval.UnsignedRad]() / circval.Span[circval.UnsignedDeg]()
	for i := 0; i < propIters; i++ {
		a := randVal[circval.UnsignedDeg](rng)
		b := randVal[circval.UnsignedDeg](rng)

		d := a.Sdist(b)
		if math.Abs(d) > 180-1e-6 {
			continue // near-antipodal: rounding may flip the sign convention
		}
		ca := circval.Convert[circval.UnsignedRad](a)
		cb := circval.Convert[circval.UnsignedRad](b)
		require.InDelta(t, d*ratio, ca.Sdist(cb), 1e-9)
	}
}
