// Package build consumes carved wall segments and vertical bands and emits
// renderable 3D geometry: interior walls, the exterior brick shell, roofs,
// stairs, and region floors/ceilings. One Session owns one world-generation
// pass; nothing in here touches global state, so tests build isolated
// sessions freely.
package build

import (
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
)

// Session scopes one world-generation pass: config, output buffers, the
// floor-pick index, and the material cache keyed by texture name.
type Session struct {
	Cfg    config.World
	Floors mesh.FloorIndex

	buffers   []*mesh.Buffer
	materials map[string]int
}

// NewSession returns an empty build session.
func NewSession(cfg config.World) *Session {
	return &Session{
		Cfg:       cfg,
		materials: make(map[string]int),
	}
}

// MaterialID interns a texture key, handing out stable small ids. The cache
// lives on the session instead of a package global so concurrent tests and
// repeated generation passes stay independent.
func (s *Session) MaterialID(key string) int {
	if id, ok := s.materials[key]; ok {
		return id
	}
	id := len(s.materials)
	s.materials[key] = id
	return id
}

// emit keeps a finished buffer, dropping empty ones.
func (s *Session) emit(b *mesh.Buffer) {
	if b == nil || b.Empty() {
		return
	}
	s.MaterialID(b.Material)
	s.buffers = append(s.buffers, b)
}

// Buffers returns everything emitted so far.
func (s *Session) Buffers() []*mesh.Buffer { return s.buffers }

// worldRegion maps one region from lot-local into world coordinates.
func worldRegion(h layout.House, r layout.Region) layout.Region {
	w := r
	switch r.Kind {
	case layout.RegionRect:
		rect := r.Bounds()
		wr := geom.NewRect(h.ToWorld(rect.Corners()[0]), h.ToWorld(rect.Corners()[2]))
		w.Min = geom.Point{X: wr.MinX, Z: wr.MinZ}
		w.Max = geom.Point{X: wr.MaxX, Z: wr.MaxZ}
	case layout.RegionPoly:
		verts := make(geom.Polygon, len(r.Verts))
		for i, v := range r.Verts {
			verts[i] = h.ToWorld(v)
		}
		w.Verts = verts
	}
	return w
}

// worldFloor maps a floor's regions and doors from lot-local into world
// coordinates. Mirrored houses flip the z axis, which flips polygon winding;
// every consumer downstream is winding-agnostic.
func worldFloor(h layout.House, f layout.Floor) layout.Floor {
	out := layout.Floor{
		Regions: make([]layout.Region, len(f.Regions)),
		Doors:   make([]layout.Door, len(f.Doors)),
	}
	for i, r := range f.Regions {
		out.Regions[i] = worldRegion(h, r)
	}
	for i, d := range f.Doors {
		out.Doors[i] = layout.Door{
			Hinge: h.ToWorld(d.Hinge),
			End:   h.ToWorld(d.End),
			A:     d.A,
			B:     d.B,
		}
	}
	return out
}
