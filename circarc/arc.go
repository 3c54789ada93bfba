package circarc

import "github.com/katalvlaran/circular/circval"

// containsTol is the endpoint tolerance for containment and intersection
// tests.  It is structural (arcs contain their endpoints despite rounding),
// not a user-facing epsilon.
const containsTol = 1e-12

// Arc is the directed arc of the given length starting at start and walking
// in the increasing direction of R.  Length R is the full circle, in which
// case end == start and the start point does not matter for equality.
type Arc[R circval.Range] struct {
	start  circval.Val[R]
	end    circval.Val[R]
	length float64 // [0, R]
}

// New builds the arc of the given length starting at start.
// The length is clamped into [0,R].
func New[R circval.Range](start circval.Val[R], length float64) Arc[R] {
	length = clampLen[R](length)

	return Arc[R]{
		start:  start,
		end:    circval.New[R](start.Float() + length),
		length: length,
	}
}

// Between builds the arc from c1 to c2 walking in the increasing direction,
// so its length is Pdist(c1,c2).  Note Between(c,c) has length 0, not R.
func Between[R circval.Range](c1, c2 circval.Val[R]) Arc[R] {
	return Arc[R]{start: c1, end: c2, length: c1.Pdist(c2)}
}

// Convert reinterprets an arc of range From as an arc of range To: both
// endpoints convert by the circular-value conversion law and the length is
// rescaled by the span ratio.  A full circle converts exactly to a full
// circle, avoiding rounding at the top of the scale.
func Convert[To circval.Range, From circval.Range](a Arc[From]) Arc[To] {
	spanFrom := circval.Span[From]()
	spanTo := circval.Span[To]()

	length := a.length * spanTo / spanFrom
	if a.length == spanFrom {
		length = spanTo
	}

	return Arc[To]{
		start:  circval.Convert[To](a.start),
		end:    circval.Convert[To](a.end),
		length: length,
	}
}

// Start returns the arc start point.
func (a Arc[R]) Start() circval.Val[R] { return a.start }

// End returns the arc end point.  end == start both for length 0 and for
// the full circle.
func (a Arc[R]) End() circval.Val[R] { return a.end }

// Length returns the arc length in [0,R].
func (a Arc[R]) Length() float64 { return a.length }

// IsFull reports whether the arc covers the whole circle.
func (a Arc[R]) IsFull() bool { return a.length == circval.Span[R]() }

// Equal reports arc equality: same start and length, except that two full
// circles are equal wherever they start.
func (a Arc[R]) Equal(b Arc[R]) bool {
	if a.IsFull() && b.IsFull() {
		return true
	}

	return a.start.Equal(b.start) && a.length == b.length
}

// Contains reports whether the arc contains the circular value c.
// Arcs contain their endpoints.
func (a Arc[R]) Contains(c circval.Val[R]) bool {
	return a.length-a.start.Pdist(c) > -containsTol
}

// ContainsArc reports whether the arc contains the whole arc b.
// Arcs contain their endpoints.
func (a Arc[R]) ContainsArc(b Arc[R]) bool {
	if a.IsFull() {
		return true
	}
	if b.IsFull() {
		return false
	}

	// require the order start → b.start → b.end → end along the walk
	l1 := a.start.Pdist(b.start)
	l2 := a.start.Pdist(b.end)

	return l2-l1 > -containsTol && a.length-l2 > -containsTol
}

// Intersects reports whether the two arcs share at least one point
// (endpoints included): one of them must contain the start of the other.
func (a Arc[R]) Intersects(b Arc[R]) bool {
	return a.Contains(b.start) || b.Contains(a.start)
}

func clampLen[R circval.Range](r float64) float64 {
	span := circval.Span[R]()
	switch {
	case r < 0:
		return 0
	case r > span:
		return span
	default:
		return r
	}
}
