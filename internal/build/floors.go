package build

import (
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
)

// buildRegionFloor emits one up-facing floor quad set for a region and
// registers it with the floor-pick index. Void regions are holes: nothing
// is emitted at all.
func (s *Session) buildRegionFloor(house int, r layout.Region, y float64) {
	if r.IsVoid() {
		return
	}
	buf := mesh.NewBuffer(mesh.KindFloor, house, r.Name, r.Surface.String())
	buf.AddHorizontalPoly(r.Polygon(), y, true)
	s.emit(buf)

	s.Floors.Add(mesh.FloorSurface{
		Rect:   r.Bounds(),
		Y:      y,
		Kind:   mesh.KindFloor,
		House:  house,
		Region: r.Name,
	})
}

// buildRegionCeiling emits a down-facing quad set at y — the underside view
// of the floor above. Emitting ceilings from the upper floor's regions (not
// the lower floor's) is what leaves the stairwell opening genuinely open:
// the void region above produces no ceiling below it.
func (s *Session) buildRegionCeiling(house int, r layout.Region, y float64) {
	if r.IsVoid() {
		return
	}
	buf := mesh.NewBuffer(mesh.KindCeiling, house, r.Name, "plaster")
	buf.AddHorizontalPoly(r.Polygon(), y, false)
	s.emit(buf)
}

// buildHouseFloors emits plot surfaces at ground level, first-floor room
// floors, and the second storey's floor/ceiling pairs. All regions are in
// world coordinates already.
func (s *Session) buildHouseFloors(house int, plot, first, second layout.Floor) {
	g := s.Cfg.Geometry

	for _, r := range plot.Regions {
		if r.Name == layout.FootprintName {
			continue // the house itself is not a ground surface
		}
		s.buildRegionFloor(house, r, 0)
	}

	for _, r := range first.Regions {
		s.buildRegionFloor(house, r, 0)
	}

	for _, r := range second.Regions {
		s.buildRegionCeiling(house, r, g.StoreyHeight)
		s.buildRegionFloor(house, r, g.StoreyHeight)
		s.buildRegionCeiling(house, r, 2*g.StoreyHeight)
	}
}
