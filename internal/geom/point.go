package geom

import "math"

// Eps is the coordinate tolerance used throughout the geometry pipeline.
// Two coordinates closer than Eps are the same coordinate.
const Eps = 1e-6

// Point is a 2D point in the horizontal (x, z) plane.
// The vertical axis (y) never appears here; builders attach it separately.
type Point struct {
	X, Z float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Z: p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Z: p.Z - q.Z}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Z: p.Z * s}
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dz := p.Z - q.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// DistSq returns the squared distance to q.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dz := p.Z - q.Z
	return dx*dx + dz*dz
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Z: (p.Z + q.Z) / 2}
}

// Near reports whether p and q coincide within Eps.
func (p Point) Near(q Point) bool {
	return math.Abs(p.X-q.X) <= Eps && math.Abs(p.Z-q.Z) <= Eps
}

// Rect is an axis-aligned rectangle in the (x, z) plane.
type Rect struct {
	MinX, MinZ, MaxX, MaxZ float64
}

// NewRect builds a Rect from two opposite corners in any order.
func NewRect(a, b Point) Rect {
	return Rect{
		MinX: math.Min(a.X, b.X),
		MinZ: math.Min(a.Z, b.Z),
		MaxX: math.Max(a.X, b.X),
		MaxZ: math.Max(a.Z, b.Z),
	}
}

// Width returns the x extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Depth returns the z extent.
func (r Rect) Depth() float64 { return r.MaxZ - r.MinZ }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Z: (r.MinZ + r.MaxZ) / 2}
}

// Contains reports whether p lies inside r (boundary inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Z >= r.MinZ && p.Z <= r.MaxZ
}

// ContainsEps reports whether p lies inside r grown by tol on every side.
func (r Rect) ContainsEps(p Point, tol float64) bool {
	return p.X >= r.MinX-tol && p.X <= r.MaxX+tol && p.Z >= r.MinZ-tol && p.Z <= r.MaxZ+tol
}

// Intersects reports whether r and o overlap (touching counts).
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinZ <= o.MaxZ && o.MinZ <= r.MaxZ
}

// Inflate returns r grown by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinZ: r.MinZ - d, MaxX: r.MaxX + d, MaxZ: r.MaxZ + d}
}

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinZ: math.Min(r.MinZ, o.MinZ),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxZ: math.Max(r.MaxZ, o.MaxZ),
	}
}

// Corners returns the four corners in clockwise order starting at (MinX, MinZ).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.MinX, Z: r.MinZ},
		{X: r.MaxX, Z: r.MinZ},
		{X: r.MaxX, Z: r.MaxZ},
		{X: r.MinX, Z: r.MaxZ},
	}
}
