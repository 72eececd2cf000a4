// Package layout holds the typed street data model: regions, doors, houses
// and their lot-local coordinate frame. It is the ingestion boundary — the
// JSON construction lists are validated here once, and everything downstream
// works with typed values only.
package layout

import (
	"fmt"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
)

// Surface tags a region's floor/ceiling material. SurfaceVoid is the
// sentinel "no floor rendered — a hole" (stairwell openings).
type Surface uint8

const (
	SurfaceVoid Surface = iota
	SurfaceGrass
	SurfacePavement
	SurfaceConcrete
	SurfaceWood
	SurfaceTile
	SurfaceCarpet
)

var surfaceNames = map[Surface]string{
	SurfaceVoid:     "void",
	SurfaceGrass:    "grass",
	SurfacePavement: "pavement",
	SurfaceConcrete: "concrete",
	SurfaceWood:     "wood",
	SurfaceTile:     "tile",
	SurfaceCarpet:   "carpet",
}

// String returns the surface's content name.
func (s Surface) String() string {
	if n, ok := surfaceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("surface(%d)", uint8(s))
}

// ParseSurface maps a content string to a Surface. Unknown strings are a
// validation error, not a fallback — the enum is closed.
func ParseSurface(name string) (Surface, error) {
	for s, n := range surfaceNames {
		if n == name {
			return s, nil
		}
	}
	return SurfaceVoid, fmt.Errorf("unknown surface %q", name)
}

// RegionKind discriminates the Region variant.
type RegionKind uint8

const (
	// RegionRect is given by two opposite corners.
	RegionRect RegionKind = iota
	// RegionPoly is given by an ordered orthogonal vertex list.
	RegionPoly
)

// MetaLead is the Meta key carrying a stairwell opening's lead direction.
const MetaLead = "lead"

// Region is a room or plot polygon in lot-local coordinates. It is an
// immutable input; consumers dispatch on Kind once via the accessors below.
type Region struct {
	Kind    RegionKind
	Name    string
	Surface Surface

	// Rect variant.
	Min, Max geom.Point

	// Polygon variant (simple, orthogonal).
	Verts geom.Polygon

	// Meta carries auxiliary content tags, e.g. the stair lead direction.
	Meta map[string]string
}

// Polygon returns the region outline as a vertex list. Rectangles expand to
// their four corners in a fixed cyclic order.
func (r Region) Polygon() geom.Polygon {
	if r.Kind == RegionPoly {
		return r.Verts
	}
	c := geom.NewRect(r.Min, r.Max).Corners()
	return geom.Polygon{c[0], c[1], c[2], c[3]}
}

// BoundaryEdges returns the outline edges in cyclic order.
func (r Region) BoundaryEdges() [][2]geom.Point {
	return r.Polygon().Edges()
}

// Bounds returns the region's axis-aligned bounding rectangle.
func (r Region) Bounds() geom.Rect {
	if r.Kind == RegionRect {
		return geom.NewRect(r.Min, r.Max)
	}
	return r.Verts.Bounds()
}

// Contains reports whether the lot-local point lies inside the region.
func (r Region) Contains(p geom.Point) bool {
	if r.Kind == RegionRect {
		return geom.NewRect(r.Min, r.Max).Contains(p)
	}
	return r.Verts.Contains(p)
}

// Centroid returns the region's representative center point.
func (r Region) Centroid() geom.Point {
	if r.Kind == RegionRect {
		return geom.NewRect(r.Min, r.Max).Center()
	}
	return r.Verts.Centroid()
}

// IsVoid reports whether the region renders no floor or ceiling.
func (r Region) IsVoid() bool { return r.Surface == SurfaceVoid }

// Lead returns the stairwell lead direction tag, if present.
func (r Region) Lead() (string, bool) {
	v, ok := r.Meta[MetaLead]
	return v, ok
}
