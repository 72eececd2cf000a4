package build

import (
	"fmt"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/walls"
)

// segmentRect thickens an axis-aligned segment into a horizontal rect
// centered on the wall line.
func segmentRect(seg geom.Segment, thickness float64) geom.Rect {
	h := thickness / 2
	if seg.Orient == geom.Horizontal {
		return geom.Rect{MinX: seg.Lo, MinZ: seg.Fixed - h, MaxX: seg.Hi, MaxZ: seg.Fixed + h}
	}
	return geom.Rect{MinX: seg.Fixed - h, MinZ: seg.Lo, MaxX: seg.Fixed + h, MaxZ: seg.Hi}
}

// addSegmentBand appends one wall band (open-sided thin box) for every
// segment. Bands with non-positive height are skipped, segments shorter than
// the minimum viable length are dropped.
func (s *Session) addSegmentBand(buf *mesh.Buffer, segs []geom.Segment, band walls.Band) {
	if !band.Valid() {
		return
	}
	for _, seg := range segs {
		if seg.Len() < s.Cfg.Geometry.MinWallLen {
			continue
		}
		buf.AddWallBox(segmentRect(seg, s.Cfg.Geometry.WallThickness), band.Y0, band.Y1)
	}
}

// buildFloorWalls renders every interior and exterior wall of one floor
// layer (already in world coordinates): solid band below the sill, carved
// band through the door zone with lintel caps, solid band above the
// openings. A wall with no matching door renders fully solid through all
// three bands.
//
// floorY must be the bottom of the band; an inverted band is a call-site
// bug, not content data, and is rejected.
func (s *Session) buildFloorWalls(house int, floor layout.Floor, floorY float64, cuts walls.CutSet) error {
	g := s.Cfg.Geometry
	base, carved, top := walls.DoorBands(floorY, g)
	if !carved.Valid() {
		return fmt.Errorf("buildFloorWalls: door band [%v,%v] is empty — bad storey/door heights", carved.Y0, carved.Y1)
	}

	wallBuf := mesh.NewBuffer(mesh.KindWall, house, "", "plaster")
	lintelBuf := mesh.NewBuffer(mesh.KindLintel, house, "", "plaster")

	for _, o := range walls.Sorted(walls.Extract(floor.Regions, cuts)) {
		if !o.Interior() && !o.Exterior() {
			continue // void-adjacent: an opening, not a wall
		}

		pieces, openings := walls.Carve(o.Seg, floor.Doors, g)

		s.addSegmentBand(wallBuf, []geom.Segment{o.Seg}, base)
		s.addSegmentBand(wallBuf, pieces, carved)
		s.addSegmentBand(wallBuf, []geom.Segment{o.Seg}, top)

		for _, op := range openings {
			if !walls.LintelFits(op, g) {
				continue
			}
			lintelBuf.AddSolidBox(
				segmentRect(op.Gap, g.WallThickness),
				carved.Y1-g.LintelHeight, carved.Y1)
		}
	}

	s.emit(wallBuf)
	s.emit(lintelBuf)
	return nil
}
