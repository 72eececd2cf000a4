package build

import (
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
)

// buildRoof places a single thin prism atop the offset footprint: side
// walls plus a triangulated flat cap. The same offset routine the brick
// shell uses positions the perimeter, so shell and roof edges line up.
func (s *Session) buildRoof(house int, footprint geom.Polygon) {
	g := s.Cfg.Geometry
	if len(footprint) < 3 {
		return
	}
	offset := geom.OffsetOrthogonal(footprint, g.BrickOffset)

	y0 := 2 * g.StoreyHeight
	buf := mesh.NewBuffer(mesh.KindRoof, house, layout.FootprintName, "roof")
	buf.AddPrism(offset, y0, y0+g.RoofThickness)
	s.emit(buf)
}
