package geom

import "math"

// Orientation classifies an axis-aligned segment.
type Orientation uint8

const (
	// Horizontal runs along x at a fixed z.
	Horizontal Orientation = iota
	// Vertical runs along z at a fixed x.
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Segment is an axis-aligned wall segment: Fixed is the perpendicular
// coordinate (z for horizontal, x for vertical) and [Lo, Hi] the tangent span.
type Segment struct {
	Orient Orientation
	Fixed  float64
	Lo, Hi float64
}

// SegFromPoints classifies the segment a→b as horizontal or vertical within
// Eps and returns it in canonical (Lo <= Hi) form. ok is false for diagonal
// or zero-length input; such edges are degenerate and get dropped upstream.
func SegFromPoints(a, b Point) (Segment, bool) {
	switch {
	case math.Abs(a.Z-b.Z) <= Eps && math.Abs(a.X-b.X) > Eps:
		return Segment{Orient: Horizontal, Fixed: a.Z, Lo: math.Min(a.X, b.X), Hi: math.Max(a.X, b.X)}, true
	case math.Abs(a.X-b.X) <= Eps && math.Abs(a.Z-b.Z) > Eps:
		return Segment{Orient: Vertical, Fixed: a.X, Lo: math.Min(a.Z, b.Z), Hi: math.Max(a.Z, b.Z)}, true
	default:
		return Segment{}, false
	}
}

// Len returns the segment length along its tangent axis.
func (s Segment) Len() float64 { return s.Hi - s.Lo }

// Span returns the tangent span as an Interval.
func (s Segment) Span() Interval { return Interval{A: s.Lo, B: s.Hi} }

// WithSpan returns a copy of s with the tangent span replaced.
func (s Segment) WithSpan(iv Interval) Segment {
	s.Lo, s.Hi = iv.A, iv.B
	return s
}

// Endpoints returns the segment's two endpoints, Lo end first.
func (s Segment) Endpoints() (Point, Point) {
	if s.Orient == Horizontal {
		return Point{X: s.Lo, Z: s.Fixed}, Point{X: s.Hi, Z: s.Fixed}
	}
	return Point{X: s.Fixed, Z: s.Lo}, Point{X: s.Fixed, Z: s.Hi}
}

// Mid returns the segment midpoint.
func (s Segment) Mid() Point {
	a, b := s.Endpoints()
	return a.Mid(b)
}

// Dist returns the distance from p to the nearest point on the segment.
func (s Segment) Dist(p Point) float64 {
	along, perp := p.X, p.Z-s.Fixed
	if s.Orient == Vertical {
		along, perp = p.Z, p.X-s.Fixed
	}
	over := 0.0
	switch {
	case along < s.Lo:
		over = s.Lo - along
	case along > s.Hi:
		over = along - s.Hi
	}
	return math.Hypot(over, perp)
}

// Key is a direction-independent identity for an atomic segment. Two regions
// tracing the same physical edge in opposite winding order produce the same Key.
type Key struct {
	Orient Orientation
	Fixed  int64
	Lo, Hi int64
}

// quantize rounds a coordinate to the Eps grid for identity comparison.
func quantize(v float64) int64 {
	return int64(math.Round(v / Eps))
}

// Key returns the canonical identity of s.
func (s Segment) Key() Key {
	return Key{
		Orient: s.Orient,
		Fixed:  quantize(s.Fixed),
		Lo:     quantize(s.Lo),
		Hi:     quantize(s.Hi),
	}
}
