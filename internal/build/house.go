package build

import (
	"fmt"
	"log/slog"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/walls"
)

// houseCuts seeds a floor's cut-set with the lot bounds and the road line so
// boundary edges split consistently with the world frame. f must already be
// world-transformed: cuts and segments share one frame.
func houseCuts(h layout.House, f layout.Floor) walls.CutSet {
	o := h.Bounds.Origin
	extraX := []float64{o.X, o.X + h.Bounds.Width}
	extraZ := []float64{o.Z, o.Z + h.Bounds.Depth, layout.RoadLineZ}
	return walls.NewCutSet(f.Regions, extraX, extraZ)
}

// BuildHouse derives one house's full 3D geometry: ground and room floors,
// interior walls on both storeys, the exterior brick shell, the roof prism
// and the stair treads. Regions and doors are transformed into world
// coordinates first; everything downstream is frame-agnostic.
func BuildHouse(s *Session, idx int, h layout.House) error {
	plotW := worldFloor(h, h.Plot)
	firstW := worldFloor(h, h.FirstFloor)
	secondW := worldFloor(h, h.SecondFloor)

	s.buildHouseFloors(idx, plotW, firstW, secondW)

	if err := s.buildFloorWalls(idx, firstW, 0, houseCuts(h, firstW)); err != nil {
		return fmt.Errorf("house %d first floor: %w", h.Number, err)
	}
	if len(secondW.Regions) > 0 {
		if err := s.buildFloorWalls(idx, secondW, s.Cfg.Geometry.StoreyHeight, houseCuts(h, secondW)); err != nil {
			return fmt.Errorf("house %d second floor: %w", h.Number, err)
		}
	}

	fp, ok := h.Footprint()
	if !ok {
		// Upstream data invariant broken; the walls still stand, only the
		// shell and roof are skipped.
		slog.Warn("house has no footprint region, skipping shell and roof", "house", h.Number)
	} else {
		fpPoly := worldRegion(h, fp).Polygon()
		s.buildBrickShell(idx, fpPoly, firstW.Doors, secondW.Doors, h.Brick)
		s.buildRoof(idx, fpPoly)
	}

	s.buildStairs(idx, firstW, secondW, h.Mirrored())
	return nil
}

// EnqueueStreet fills the work queue with one build job per house plus the
// road surface, ready for per-frame draining.
func EnqueueStreet(s *Session, q *Queue, st layout.Street) {
	q.Enqueue(Job{Key: "road", Run: func() {
		buf := mesh.NewBuffer(mesh.KindFloor, -1, "road", layout.SurfacePavement.String())
		buf.AddHorizontalPoly(geom.Polygon{
			{X: st.Road.MinX, Z: st.Road.MinZ},
			{X: st.Road.MaxX, Z: st.Road.MinZ},
			{X: st.Road.MaxX, Z: st.Road.MaxZ},
			{X: st.Road.MinX, Z: st.Road.MaxZ},
		}, 0, true)
		s.emit(buf)
		s.Floors.Add(mesh.FloorSurface{Rect: st.Road, Y: 0, Kind: mesh.KindFloor, House: -1, Region: "road"})
	}})

	for i, h := range st.Houses {
		q.Enqueue(Job{
			Key: fmt.Sprintf("house-%d", h.Number),
			Run: func() {
				if err := BuildHouse(s, i, h); err != nil {
					// A broken house must not block the rest of the street.
					slog.Error("house build failed", "house", h.Number, "err", err)
				}
			},
		})
	}
}
