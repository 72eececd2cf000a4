package build

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
)

func rectRegion(name string, surface layout.Surface, minX, minZ, maxX, maxZ float64) layout.Region {
	return layout.Region{
		Kind:    layout.RegionRect,
		Name:    name,
		Surface: surface,
		Min:     geom.Point{X: minX, Z: minZ},
		Max:     geom.Point{X: maxX, Z: maxZ},
	}
}

func door(x0, z0, x1, z1 float64, a, b int) layout.Door {
	return layout.Door{Hinge: geom.Point{X: x0, Z: z0}, End: geom.Point{X: x1, Z: z1}, A: a, B: b}
}

// testHouse is a two-storey house: living/kitchen/hall/stairs downstairs,
// landing/bedroom and the stairwell opening upstairs.
func testHouse() layout.House {
	return layout.House{
		Number: 2,
		Bounds: layout.Bounds{Origin: geom.Point{X: 0, Z: 0}, Width: 22, Depth: 70},
		Brick:  "red01",
		Plot: layout.Floor{Regions: []layout.Region{
			rectRegion(layout.FootprintName, layout.SurfaceConcrete, 4, 20, 18, 32),
			rectRegion("front_yard", layout.SurfaceGrass, 0, 0, 22, 20),
			rectRegion("back_yard", layout.SurfaceGrass, 0, 32, 22, 70),
		}},
		FirstFloor: layout.Floor{
			Regions: []layout.Region{
				rectRegion("living", layout.SurfaceWood, 4, 20, 12, 28),
				rectRegion("kitchen", layout.SurfaceTile, 12, 20, 18, 32),
				rectRegion(layout.StairsName, layout.SurfaceWood, 4, 28, 7, 32),
				rectRegion("hall", layout.SurfaceWood, 7, 28, 12, 32),
			},
			Doors: []layout.Door{
				door(12, 23.6, 12, 24.4, 0, 1),                   // living ↔ kitchen
				door(9, 28, 9.8, 28, 0, 3),                       // living ↔ hall
				door(7, 29.6, 7, 30.4, 3, 2),                     // hall ↔ stairs
				door(7.6, 20, 8.4, 20, 0, layout.ExteriorRegion), // front door
			},
		},
		SecondFloor: layout.Floor{
			Regions: []layout.Region{
				func() layout.Region {
					r := rectRegion(layout.StairsOpeningName, layout.SurfaceVoid, 4, 28, 7, 32)
					r.Meta = map[string]string{layout.MetaLead: LeadEast}
					return r
				}(),
				rectRegion("bedroom", layout.SurfaceCarpet, 7, 20, 18, 32),
				rectRegion("landing", layout.SurfaceWood, 4, 20, 7, 28),
			},
			Doors: []layout.Door{
				door(7, 23.6, 7, 24.4, 1, 2), // bedroom ↔ landing
			},
		},
	}
}

func kinds(bufs []*mesh.Buffer) map[mesh.Kind]int {
	out := map[mesh.Kind]int{}
	for _, b := range bufs {
		out[b.Kind] += b.TriangleCount()
	}
	return out
}

func TestBuildHouseEmitsAllKinds(t *testing.T) {
	s := NewSession(config.Default())
	require.NoError(t, BuildHouse(s, 0, testHouse()))

	got := kinds(s.Buffers())
	for _, k := range []mesh.Kind{
		mesh.KindFloor, mesh.KindCeiling, mesh.KindWall, mesh.KindBrick,
		mesh.KindRoof, mesh.KindStairTread, mesh.KindLintel, mesh.KindReveal,
	} {
		assert.Positive(t, got[k], "kind %v missing from output", k)
	}
}

func TestBuildHouseVoidRendersNoFloor(t *testing.T) {
	s := NewSession(config.Default())
	require.NoError(t, BuildHouse(s, 0, testHouse()))

	for _, b := range s.Buffers() {
		if b.Region == layout.StairsOpeningName {
			assert.NotEqual(t, mesh.KindFloor, b.Kind, "void region must not emit a floor")
			assert.NotEqual(t, mesh.KindCeiling, b.Kind, "void region must not emit a ceiling")
		}
	}
}

func TestBuildHouseStairTreadsClimbToStorey(t *testing.T) {
	cfg := config.Default()
	s := NewSession(cfg)
	require.NoError(t, BuildHouse(s, 0, testHouse()))

	var treadTops []float64
	base := geom.Rect{MinX: 4, MinZ: 28, MaxX: 7, MaxZ: 32}
	for _, b := range s.Buffers() {
		if b.Kind == mesh.KindStairTread {
			require.NotEmpty(t, b.Positions)
			top := b.Positions[0].Y()
			for _, p := range b.Positions {
				if p.Y() > top {
					top = p.Y()
				}
				assert.True(t, base.ContainsEps(geom.Point{X: p.X(), Z: p.Z()}, geom.Eps),
					"tread vertex outside stairs room")
			}
			treadTops = append(treadTops, top)
		}
	}
	require.NotEmpty(t, treadTops)
	assert.InDelta(t, cfg.Geometry.StoreyHeight, treadTops[0], 1e-9,
		"the last tread tops out at the second floor")
}

func TestBuildHouseStairTreadsDisjointInPlan(t *testing.T) {
	s := NewSession(config.Default())
	require.NoError(t, BuildHouse(s, 0, testHouse()))

	var treads []geom.Rect
	for _, surf := range s.Floors.Surfaces() {
		if surf.Kind == mesh.KindStairTread {
			treads = append(treads, surf.Rect)
		}
	}
	require.Greater(t, len(treads), 3, "expected a full flight of treads")

	// Edge-touching is fine; shared interior area is not. A strip running
	// into a corner square was the easy way to violate this.
	for i := 0; i < len(treads); i++ {
		for j := i + 1; j < len(treads); j++ {
			w := math.Min(treads[i].MaxX, treads[j].MaxX) - math.Max(treads[i].MinX, treads[j].MinX)
			d := math.Min(treads[i].MaxZ, treads[j].MaxZ) - math.Max(treads[i].MinZ, treads[j].MinZ)
			if w > geom.Eps && d > geom.Eps {
				t.Errorf("treads %d and %d overlap by %.3f x %.3f: %+v vs %+v",
					i, j, w, d, treads[i], treads[j])
			}
		}
	}
}

func TestBuildHouseMissingStairsIsSkippedNotFatal(t *testing.T) {
	h := testHouse()
	h.FirstFloor.Regions[2].Name = "closet" // no stairs region anymore
	h.FirstFloor.Doors = h.FirstFloor.Doors[:2]

	s := NewSession(config.Default())
	require.NoError(t, BuildHouse(s, 0, h))
	assert.Zero(t, kinds(s.Buffers())[mesh.KindStairTread])
}

func TestBuildHouseMirroredStillBuilds(t *testing.T) {
	h := testHouse()
	h.Number = 3 // odd: z axis mirrors

	s := NewSession(config.Default())
	require.NoError(t, BuildHouse(s, 0, h))

	got := kinds(s.Buffers())
	assert.Positive(t, got[mesh.KindWall])
	assert.Positive(t, got[mesh.KindBrick])
}

func TestFloorIndexCoversYardAndTreads(t *testing.T) {
	s := NewSession(config.Default())
	require.NoError(t, BuildHouse(s, 0, testHouse()))

	// Front yard at ground level.
	surf, ok := s.Floors.Pick(2, 10, 5)
	require.True(t, ok)
	assert.InDelta(t, 0.0, surf.Y, geom.Eps)

	// Above the stairs room the topmost tread is the walkable surface at
	// its own center.
	var tread mesh.FloorSurface
	for _, fs := range s.Floors.Surfaces() {
		if fs.Kind == mesh.KindStairTread && fs.Y > tread.Y {
			tread = fs
		}
	}
	require.Equal(t, mesh.KindStairTread, tread.Kind)
	c := tread.Rect.Center()
	surf, ok = s.Floors.Pick(c.X, c.Z, 5)
	require.True(t, ok)
	assert.Equal(t, mesh.KindStairTread, surf.Kind)
	assert.InDelta(t, tread.Y, surf.Y, geom.Eps)
}

func TestSessionMaterialCacheInterns(t *testing.T) {
	s := NewSession(config.Default())
	a := s.MaterialID("red01")
	b := s.MaterialID("grass")
	assert.Equal(t, a, s.MaterialID("red01"))
	assert.NotEqual(t, a, b)
}

func TestEnqueueStreetIsIdempotentPerHouse(t *testing.T) {
	st := layout.Street{Houses: []layout.House{testHouse()}, Road: layout.DefaultRoad()}
	s := NewSession(config.Default())
	q := NewQueue()

	EnqueueStreet(s, q, st)
	EnqueueStreet(s, q, st) // stream-in fired twice

	q.Drain(time.Hour)
	built := len(s.Buffers())
	require.Positive(t, built)

	EnqueueStreet(s, q, st)
	q.Drain(time.Hour)
	assert.Equal(t, built, len(s.Buffers()), "a done house is never rebuilt")
}
