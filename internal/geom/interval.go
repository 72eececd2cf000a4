package geom

// Interval is a 1D span [A, B] along a wall's tangent axis, A <= B.
type Interval struct {
	A, B float64
}

// Len returns the interval length.
func (iv Interval) Len() float64 { return iv.B - iv.A }

// Overlap returns the length of the overlap between iv and other
// (zero or negative when they do not overlap).
func (iv Interval) Overlap(other Interval) float64 {
	lo := iv.A
	if other.A > lo {
		lo = other.A
	}
	hi := iv.B
	if other.B < hi {
		hi = other.B
	}
	return hi - lo
}

// subOne subtracts cut from a single interval, producing 0, 1 or 2 pieces.
// Ends within Eps of the cut boundary are treated as fully consumed so that
// touching spans never leave zero-length slivers behind.
func subOne(iv, cut Interval) []Interval {
	if cut.B <= iv.A+Eps || cut.A >= iv.B-Eps {
		return []Interval{iv} // no overlap
	}
	var out []Interval
	if cut.A > iv.A+Eps {
		out = append(out, Interval{A: iv.A, B: cut.A})
	}
	if cut.B < iv.B-Eps {
		out = append(out, Interval{A: cut.B, B: iv.B})
	}
	return out
}

// Subtract removes every cut from span and returns the surviving pieces,
// dropping any piece shorter than minLen. The result is independent of cut
// order for disjoint cuts.
func Subtract(span Interval, cuts []Interval, minLen float64) []Interval {
	remaining := []Interval{span}
	for _, cut := range cuts {
		var next []Interval
		for _, iv := range remaining {
			next = append(next, subOne(iv, cut)...)
		}
		remaining = next
		if len(remaining) == 0 {
			break
		}
	}
	out := remaining[:0]
	for _, iv := range remaining {
		if iv.Len() >= minLen {
			out = append(out, iv)
		}
	}
	return out
}
