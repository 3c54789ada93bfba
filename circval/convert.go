package circval

// Convert reinterprets a circular value of range From as a value of range
// To.  The position is measured as the increasing walk from the source
// zero-reference (Pdist), rescaled by the ratio of the two spans, added to
// the destination zero-reference and wrapped:
//
//	to = Wrap(Pdist(Z_from, c) · R_to/R_from + Z_to)
//
// This is the canonical conversion law between, e.g., signed degrees and
// unsigned radians: the zero-references correspond, and fractional positions
// around the circle are preserved.
//
// Conversion is deliberately explicit — there are no ambient conversions —
// so range-mixing stays visible at the call site.
//
// Complexity: O(1).
func Convert[To Range, From Range](c Val[From]) Val[To] {
	sf := specOf[From]()
	st := specOf[To]()
	p := pdist(sf, sf.z, c.val) // fractional position from the source zero

	return Val[To]{st.wrap(p*st.span/sf.span + st.z)}
}
