package mesh

import (
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
)

// FloorSurface is one walkable horizontal surface registered for picking:
// region floors and stair treads. The spawn planner and auto-stepping query
// these with a vertical ray.
type FloorSurface struct {
	Rect   geom.Rect
	Y      float64
	Kind   Kind
	House  int
	Region string
}

// FloorIndex answers "what is the walkable height at (x, z)".
type FloorIndex struct {
	surfaces []FloorSurface
}

// Add registers a walkable surface.
func (fi *FloorIndex) Add(s FloorSurface) {
	fi.surfaces = append(fi.surfaces, s)
}

// Len returns the number of registered surfaces.
func (fi *FloorIndex) Len() int { return len(fi.surfaces) }

// Surfaces returns every registered surface, in registration order.
func (fi *FloorIndex) Surfaces() []FloorSurface { return fi.surfaces }

// Pick casts a downward ray at (x, z) from just above maxY and returns the
// highest surface hit. ok is false when nothing walkable lies under the point.
func (fi *FloorIndex) Pick(x, z, maxY float64) (FloorSurface, bool) {
	var best FloorSurface
	found := false
	p := geom.Point{X: x, Z: z}
	for _, s := range fi.surfaces {
		if s.Y > maxY+geom.Eps || !s.Rect.Contains(p) {
			continue
		}
		if !found || s.Y > best.Y {
			best = s
			found = true
		}
	}
	return best, found
}
