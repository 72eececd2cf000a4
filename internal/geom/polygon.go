package geom

import "math"

// Polygon is a simple polygon given as an ordered vertex list. The carving
// and offsetting pipeline assumes every edge is axis-aligned (orthogonal
// polygon); Contains and SignedArea work for any simple polygon.
type Polygon []Point

// SignedArea returns the polygon's signed area via the shoelace formula.
// Positive means counter-clockwise in the (x, z) plane.
func (p Polygon) SignedArea() float64 {
	var sum float64
	n := len(p)
	for i := range p {
		j := (i + 1) % n
		sum += p[i].X*p[j].Z - p[j].X*p[i].Z
	}
	return sum / 2
}

// CCW reports whether the polygon winds counter-clockwise.
func (p Polygon) CCW() bool { return p.SignedArea() > 0 }

// Bounds returns the polygon's axis-aligned bounding rectangle.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{MinX: p[0].X, MinZ: p[0].Z, MaxX: p[0].X, MaxZ: p[0].Z}
	for _, v := range p[1:] {
		r.MinX = math.Min(r.MinX, v.X)
		r.MinZ = math.Min(r.MinZ, v.Z)
		r.MaxX = math.Max(r.MaxX, v.X)
		r.MaxZ = math.Max(r.MaxZ, v.Z)
	}
	return r
}

// Centroid returns the arithmetic mean of the vertices. For the convex-ish
// orthogonal rooms this pipeline sees that is close enough to the area
// centroid, and it is what the navigation waypoints key off.
func (p Polygon) Centroid() Point {
	var c Point
	if len(p) == 0 {
		return c
	}
	for _, v := range p {
		c.X += v.X
		c.Z += v.Z
	}
	return Point{X: c.X / float64(len(p)), Z: c.Z / float64(len(p))}
}

// Contains reports whether pt lies inside the polygon (even-odd ray cast).
// Points exactly on an edge may land on either side; callers that care use
// a probe offset instead of boundary points.
func (p Polygon) Contains(pt Point) bool {
	inside := false
	n := len(p)
	for i := range p {
		j := (i + n - 1) % n
		a, b := p[i], p[j]
		if (a.Z > pt.Z) != (b.Z > pt.Z) {
			xCross := (b.X-a.X)*(pt.Z-a.Z)/(b.Z-a.Z) + a.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Edges returns the boundary edges as (from, to) vertex pairs in winding order.
func (p Polygon) Edges() [][2]Point {
	n := len(p)
	out := make([][2]Point, 0, n)
	for i := range p {
		out = append(out, [2]Point{p[i], p[(i+1)%n]})
	}
	return out
}

// OffsetOrthogonal pushes every edge of an orthogonal polygon outward by d
// and returns the offset polygon. Each offset vertex is the exact
// intersection of its two adjacent offset axis lines (one horizontal, one
// vertical) — no miter averaging. When two adjacent edges are collinear or
// one is degenerate there is no intersection to take, so the original vertex
// is kept as-is.
func OffsetOrthogonal(p Polygon, d float64) Polygon {
	n := len(p)
	if n < 3 {
		return append(Polygon(nil), p...)
	}
	ccw := p.CCW()

	// offsetLine returns the edge's fixed coordinate after the outward push,
	// or ok=false for a diagonal/degenerate edge.
	offsetLine := func(a, b Point) (seg Segment, ok bool) {
		seg, ok = SegFromPoints(a, b)
		if !ok {
			return seg, false
		}
		// Outward normal from winding: for a CCW polygon the interior is to
		// the left of each directed edge, so push right; for CW push left.
		// Interior sits to the left of each directed edge for CCW winding,
		// to the right for CW, which fixes the outward side per edge.
		var outward float64
		if seg.Orient == Horizontal {
			dir := b.X - a.X
			if ccw {
				outward = -sign(dir)
			} else {
				outward = sign(dir)
			}
		} else {
			dir := b.Z - a.Z
			if ccw {
				outward = sign(dir)
			} else {
				outward = -sign(dir)
			}
		}
		seg.Fixed += outward * d
		return seg, true
	}

	out := make(Polygon, n)
	for i := range p {
		prev := p[(i+n-1)%n]
		cur := p[i]
		next := p[(i+1)%n]

		sa, okA := offsetLine(prev, cur)
		sb, okB := offsetLine(cur, next)
		if !okA || !okB || sa.Orient == sb.Orient {
			out[i] = cur // degenerate or collinear corner: keep the vertex
			continue
		}
		if sa.Orient == Horizontal {
			out[i] = Point{X: sb.Fixed, Z: sa.Fixed}
		} else {
			out[i] = Point{X: sa.Fixed, Z: sb.Fixed}
		}
	}
	return out
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Triangulate ear-clips a simple polygon into triangles, returned as index
// triples into the input vertex list. Works for both windings; degenerate
// input (fewer than 3 usable vertices) yields nil.
func Triangulate(p Polygon) [][3]int {
	n := len(p)
	if n < 3 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// Normalize to CCW so ear tests share one convexity sign.
	if !p.CCW() {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Z-o.Z) - (a.Z-o.Z)*(b.X-o.X)
	}
	inTri := func(a, b, c, pt Point) bool {
		d1 := cross(a, b, pt)
		d2 := cross(b, c, pt)
		d3 := cross(c, a, pt)
		hasNeg := d1 < -Eps || d2 < -Eps || d3 < -Eps
		hasPos := d1 > Eps || d2 > Eps || d3 > Eps
		return !(hasNeg && hasPos)
	}

	var tris [][3]int
	guard := 0
	for len(idx) > 3 && guard < n*n {
		guard++
		clipped := false
		for i := 0; i < len(idx); i++ {
			ia := idx[(i+len(idx)-1)%len(idx)]
			ib := idx[i]
			ic := idx[(i+1)%len(idx)]
			a, b, c := p[ia], p[ib], p[ic]
			if cross(a, b, c) <= Eps {
				continue // reflex or collinear corner
			}
			ear := true
			for _, k := range idx {
				if k == ia || k == ib || k == ic {
					continue
				}
				if inTri(a, b, c, p[k]) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			tris = append(tris, [3]int{ia, ib, ic})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break // self-intersecting or fully collinear remainder
		}
	}
	if len(idx) == 3 {
		tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	}
	return tris
}
