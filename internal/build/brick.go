package build

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/walls"
)

// brickRect spans a segment's tangent interval across the band between the
// true wall line and the offset shell line.
func brickRect(orient geom.Orientation, span geom.Interval, wallFixed, offFixed float64) geom.Rect {
	lo := math.Min(wallFixed, offFixed)
	hi := math.Max(wallFixed, offFixed)
	if orient == geom.Horizontal {
		return geom.Rect{MinX: span.A, MinZ: lo, MaxX: span.B, MaxZ: hi}
	}
	return geom.Rect{MinX: lo, MinZ: span.A, MaxX: hi, MaxZ: span.B}
}

// buildBrickShell renders the exterior brick band around the house
// footprint: per original edge, solid bands above and below the door zone
// and carved pieces plus reveal infill within it, placed out at the offset
// perimeter. First and second floor carry independent door cut sets.
func (s *Session) buildBrickShell(house int, footprint geom.Polygon, firstDoors, secondDoors []layout.Door, brick string) {
	g := s.Cfg.Geometry
	offset := geom.OffsetOrthogonal(footprint, g.BrickOffset)

	buf := mesh.NewBuffer(mesh.KindBrick, house, layout.FootprintName, brick)
	revealBuf := mesh.NewBuffer(mesh.KindReveal, house, layout.FootprintName, brick)

	storeys := []struct {
		floorY float64
		doors  []layout.Door
	}{
		{0, firstDoors},
		{g.StoreyHeight, secondDoors},
	}

	n := len(footprint)
	for i := range footprint {
		orig, okA := geom.SegFromPoints(footprint[i], footprint[(i+1)%n])
		off, okB := geom.SegFromPoints(offset[i], offset[(i+1)%n])
		if !okA || !okB || orig.Orient != off.Orient {
			continue // collinear-corner fallback left this edge degenerate
		}

		// The offset edge's span is wider at convex corners; using it for
		// the tangent interval fills the corner blocks. Reflex-corner gaps
		// sit inside the footprint where the shell is never seen.
		span := geom.Interval{A: off.Lo, B: off.Hi}
		carveSeg := geom.Segment{Orient: orig.Orient, Fixed: orig.Fixed, Lo: span.A, Hi: span.B}

		for _, st := range storeys {
			base, carved, top := walls.DoorBands(st.floorY, g)

			if base.Valid() {
				buf.AddSolidBox(brickRect(orig.Orient, span, orig.Fixed, off.Fixed), base.Y0, base.Y1)
			}
			if top.Valid() {
				buf.AddSolidBox(brickRect(orig.Orient, span, orig.Fixed, off.Fixed), top.Y0, top.Y1)
			}
			if !carved.Valid() {
				continue
			}

			pieces, openings := walls.Carve(carveSeg, st.doors, g)
			for _, p := range pieces {
				buf.AddSolidBox(brickRect(orig.Orient, p.Span(), orig.Fixed, off.Fixed), carved.Y0, carved.Y1)
			}
			for _, op := range openings {
				s.addReveals(revealBuf, op.Gap, orig.Fixed, off.Fixed, carved)
			}
		}
	}

	s.emit(buf)
	s.emit(revealBuf)
}

// addReveals closes the opening cut through the shell band: two side faces,
// a top face and a bottom face bridging the true wall line and the offset
// line, so the carved opening shows no void from outside.
func (s *Session) addReveals(buf *mesh.Buffer, gap geom.Segment, wallFixed, offFixed float64, band walls.Band) {
	pLo := math.Min(wallFixed, offFixed)
	pHi := math.Max(wallFixed, offFixed)
	y0, y1 := band.Y0, band.Y1

	if gap.Orient == geom.Horizontal {
		// Tangent along x, bridge along z.
		buf.AddQuad( // side at gap.Lo, facing into the opening (+x)
			mgl64.Vec3{gap.Lo, y0, pLo}, mgl64.Vec3{gap.Lo, y0, pHi},
			mgl64.Vec3{gap.Lo, y1, pHi}, mgl64.Vec3{gap.Lo, y1, pLo},
			mgl64.Vec3{1, 0, 0})
		buf.AddQuad( // side at gap.Hi, facing into the opening (-x)
			mgl64.Vec3{gap.Hi, y0, pHi}, mgl64.Vec3{gap.Hi, y0, pLo},
			mgl64.Vec3{gap.Hi, y1, pLo}, mgl64.Vec3{gap.Hi, y1, pHi},
			mgl64.Vec3{-1, 0, 0})
		buf.AddQuad( // top, seen from below
			mgl64.Vec3{gap.Lo, y1, pLo}, mgl64.Vec3{gap.Hi, y1, pLo},
			mgl64.Vec3{gap.Hi, y1, pHi}, mgl64.Vec3{gap.Lo, y1, pHi},
			mgl64.Vec3{0, -1, 0})
		buf.AddQuad( // bottom sill, seen from above
			mgl64.Vec3{gap.Lo, y0, pHi}, mgl64.Vec3{gap.Hi, y0, pHi},
			mgl64.Vec3{gap.Hi, y0, pLo}, mgl64.Vec3{gap.Lo, y0, pLo},
			mgl64.Vec3{0, 1, 0})
		return
	}

	// Vertical: tangent along z, bridge along x.
	buf.AddQuad(
		mgl64.Vec3{pLo, y0, gap.Lo}, mgl64.Vec3{pHi, y0, gap.Lo},
		mgl64.Vec3{pHi, y1, gap.Lo}, mgl64.Vec3{pLo, y1, gap.Lo},
		mgl64.Vec3{0, 0, 1})
	buf.AddQuad(
		mgl64.Vec3{pHi, y0, gap.Hi}, mgl64.Vec3{pLo, y0, gap.Hi},
		mgl64.Vec3{pLo, y1, gap.Hi}, mgl64.Vec3{pHi, y1, gap.Hi},
		mgl64.Vec3{0, 0, -1})
	buf.AddQuad(
		mgl64.Vec3{pLo, y1, gap.Lo}, mgl64.Vec3{pLo, y1, gap.Hi},
		mgl64.Vec3{pHi, y1, gap.Hi}, mgl64.Vec3{pHi, y1, gap.Lo},
		mgl64.Vec3{0, -1, 0})
	buf.AddQuad(
		mgl64.Vec3{pHi, y0, gap.Lo}, mgl64.Vec3{pHi, y0, gap.Hi},
		mgl64.Vec3{pLo, y0, gap.Hi}, mgl64.Vec3{pLo, y0, gap.Lo},
		mgl64.Vec3{0, 1, 0})
}
