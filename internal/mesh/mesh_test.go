package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
)

func TestAddWallBoxOmitsCaps(t *testing.T) {
	b := NewBuffer(KindWall, 0, "living", "plaster")
	b.AddWallBox(geom.Rect{MinX: 0, MinZ: 0, MaxX: 4, MaxZ: 0.09}, 0, 2.7)

	assert.Equal(t, 8, b.TriangleCount(), "4 faces, 2 triangles each")
	for _, n := range b.Normals {
		assert.InDelta(t, 0.0, n.Y(), 1e-12, "wall boxes have no horizontal faces")
	}
}

func TestAddSolidBoxHasCaps(t *testing.T) {
	b := NewBuffer(KindStairTread, 0, "stairs", "wood")
	b.AddSolidBox(geom.Rect{MinX: 0, MinZ: 0, MaxX: 1, MaxZ: 0.3}, 0, 0.1)

	assert.Equal(t, 12, b.TriangleCount())
}

func TestAddPrismOutwardNormals(t *testing.T) {
	poly := geom.Polygon{{X: 0, Z: 0}, {X: 4, Z: 0}, {X: 4, Z: 3}, {X: 0, Z: 3}} // CCW
	b := NewBuffer(KindRoof, 0, "", "roof")
	b.AddPrism(poly, 5.4, 5.65)

	// 4 side quads (8 tris) + 2 cap tris.
	require.Equal(t, 10, b.TriangleCount())

	// Every side normal must point away from the polygon centroid.
	c := poly.Centroid()
	for i := 0; i < len(b.Normals); i++ {
		n := b.Normals[i]
		if n.Y() != 0 {
			continue // cap
		}
		p := b.Positions[i]
		toVert := mgl64.Vec3{p.X() - c.X, 0, p.Z() - c.Z}
		assert.GreaterOrEqual(t, n.Dot(toVert), 0.0, "vertex %d normal points inward", i)
	}
}

func TestAddHorizontalPolyWindingFollowsFacing(t *testing.T) {
	poly := geom.Polygon{{X: 0, Z: 0}, {X: 2, Z: 0}, {X: 2, Z: 2}, {X: 0, Z: 2}}

	up := NewBuffer(KindFloor, 0, "r", "wood")
	up.AddHorizontalPoly(poly, 0, true)
	down := NewBuffer(KindCeiling, 0, "r", "plaster")
	down.AddHorizontalPoly(poly, 2.7, false)

	assert.Equal(t, 2, up.TriangleCount())
	assert.Equal(t, 2, down.TriangleCount())
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, up.Normals[0])
	assert.Equal(t, mgl64.Vec3{0, -1, 0}, down.Normals[0])
}

func TestFloorIndexPicksHighestBelowRay(t *testing.T) {
	var fi FloorIndex
	fi.Add(FloorSurface{Rect: geom.Rect{MinX: 0, MinZ: 0, MaxX: 10, MaxZ: 10}, Y: 0, Kind: KindFloor})
	fi.Add(FloorSurface{Rect: geom.Rect{MinX: 2, MinZ: 2, MaxX: 3, MaxZ: 3}, Y: 0.4, Kind: KindStairTread})

	s, ok := fi.Pick(2.5, 2.5, 10)
	require.True(t, ok)
	assert.Equal(t, KindStairTread, s.Kind, "tread sits above the floor")

	// Ray starting below the tread only sees the floor.
	s, ok = fi.Pick(2.5, 2.5, 0.2)
	require.True(t, ok)
	assert.Equal(t, KindFloor, s.Kind)

	_, ok = fi.Pick(50, 50, 10)
	assert.False(t, ok)
}
