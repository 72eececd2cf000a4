package walls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
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

// Two regions sharing a physical wall must land on identical canonical keys
// regardless of winding order or starting vertex.
func TestSharedWallIdenticalKeys(t *testing.T) {
	left := rectRegion("left", layout.SurfaceWood, 0, 0, 10, 6)
	// Same shared edge x=10 z∈[0,6], traced by a polygon wound the other way
	// and starting elsewhere.
	right := layout.Region{
		Kind: layout.RegionPoly, Name: "right", Surface: layout.SurfaceTile,
		Verts: geom.Polygon{
			{X: 16, Z: 6}, {X: 10, Z: 6}, {X: 10, Z: 0}, {X: 16, Z: 0},
		},
	}

	regions := []layout.Region{left, right}
	owners := Extract(regions, NewCutSet(regions, nil, nil))

	shared, ok := geom.SegFromPoints(geom.Point{X: 10, Z: 0}, geom.Point{X: 10, Z: 6})
	require.True(t, ok)

	o := owners[shared.Key()]
	require.NotNil(t, o, "shared edge must collapse to one key")
	assert.True(t, o.Interior())
	assert.Equal(t, 2, o.NonVoid)
}

// Adjacent rooms overlapping only on z∈[2,6] of the x=10 line: atomic
// splitting against the combined cut-set must classify exactly the overlap
// as interior and the remainders as exterior.
func TestPartialOverlapAtomicSplit(t *testing.T) {
	a := rectRegion("a", layout.SurfaceWood, 0, 0, 10, 6)
	b := rectRegion("b", layout.SurfaceWood, 10, 2, 20, 8)

	regions := []layout.Region{a, b}
	owners := Extract(regions, NewCutSet(regions, nil, nil))

	seg := func(z0, z1 float64) geom.Key {
		s, ok := geom.SegFromPoints(geom.Point{X: 10, Z: z0}, geom.Point{X: 10, Z: z1})
		require.True(t, ok)
		return s.Key()
	}

	overlap := owners[seg(2, 6)]
	require.NotNil(t, overlap)
	assert.True(t, overlap.Interior(), "shared span [2,6] is an interior wall")

	aOnly := owners[seg(0, 2)]
	require.NotNil(t, aOnly)
	assert.True(t, aOnly.Exterior(), "a's non-overlapping remainder is exterior")

	bOnly := owners[seg(6, 8)]
	require.NotNil(t, bOnly)
	assert.True(t, bOnly.Exterior(), "b's non-overlapping remainder is exterior")
}

// A segment bordering a void region is neither interior nor exterior — it
// is an opening and gets no wall.
func TestVoidAdjacencySuppressesWall(t *testing.T) {
	room := rectRegion("room", layout.SurfaceWood, 0, 0, 10, 6)
	hole := rectRegion("stairs_opening", layout.SurfaceVoid, 10, 0, 13, 6)

	regions := []layout.Region{room, hole}
	owners := Extract(regions, NewCutSet(regions, nil, nil))

	s, _ := geom.SegFromPoints(geom.Point{X: 10, Z: 0}, geom.Point{X: 10, Z: 6})
	o := owners[s.Key()]
	require.NotNil(t, o)
	assert.False(t, o.Interior())
	assert.False(t, o.Exterior())
	assert.Equal(t, 1, o.Void)
}

func TestExtraCutsSplitLongEdges(t *testing.T) {
	room := rectRegion("room", layout.SurfaceWood, 0, 0, 10, 6)
	owners := Extract([]layout.Region{room}, NewCutSet([]layout.Region{room}, []float64{4}, nil))

	// The two horizontal edges split at x=4; verticals stay whole.
	assert.Len(t, owners, 6)
}

func TestSortedIsDeterministic(t *testing.T) {
	a := rectRegion("a", layout.SurfaceWood, 0, 0, 10, 6)
	b := rectRegion("b", layout.SurfaceWood, 10, 2, 20, 8)
	regions := []layout.Region{a, b}

	owners := Extract(regions, NewCutSet(regions, nil, nil))
	first := Sorted(owners)
	second := Sorted(Extract(regions, NewCutSet(regions, nil, nil)))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Seg, second[i].Seg)
	}
}
