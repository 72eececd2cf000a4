package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
)

const minimalStreet = `{
  "houses": [
    {
      "number": 2,
      "origin": [10, 0],
      "width": 22,
      "depth": 70,
      "brick": "red01",
      "plot": {
        "regions": [
          {"name": "house", "surface": "concrete", "rect": [[4, 20], [18, 32]]},
          {"name": "front_yard", "surface": "grass", "rect": [[0, 0], [22, 20]]},
          {"name": "back_yard", "surface": "grass", "rect": [[0, 32], [22, 70]]}
        ]
      },
      "firstFloor": {
        "regions": [
          {"name": "living", "surface": "wood", "rect": [[4, 20], [12, 32]]},
          {"name": "kitchen", "surface": "tile", "rect": [[12, 20], [18, 32]]}
        ],
        "doors": [
          {"hinge": [12, 25.6], "end": [12, 26.4], "a": 0, "b": 1},
          {"hinge": [7.6, 20], "end": [8.4, 20], "a": 0, "b": -1}
        ]
      },
      "secondFloor": {"regions": [], "doors": []}
    }
  ]
}`

func TestParseStreet(t *testing.T) {
	st, err := ParseStreet([]byte(minimalStreet))
	require.NoError(t, err)
	require.Len(t, st.Houses, 1)

	h := st.Houses[0]
	assert.Equal(t, 2, h.Number)
	assert.False(t, h.Mirrored())
	assert.Equal(t, "red01", h.Brick)
	assert.Len(t, h.Plot.Regions, 3)
	assert.Len(t, h.FirstFloor.Doors, 2)

	fp, ok := h.Footprint()
	require.True(t, ok)
	assert.Equal(t, FootprintName, fp.Name)

	// Default road band when the file names none.
	assert.Equal(t, DefaultRoad(), st.Road)

	// Exterior door sentinel survives parsing.
	assert.True(t, h.FirstFloor.Doors[1].Exterior())
}

func TestParseRejectsUnknownSurface(t *testing.T) {
	_, err := parseRegion(rawRegion{Name: "x", Surface: "lava", Rect: [][2]float64{{0, 0}, {1, 1}}})
	assert.ErrorContains(t, err, "unknown surface")
}

func TestParseRejectsDiagonalPolygon(t *testing.T) {
	_, err := parseRegion(rawRegion{
		Name:    "tri",
		Surface: "wood",
		Polygon: [][2]float64{{0, 0}, {4, 0}, {4, 4}, {1, 3}},
	})
	assert.ErrorContains(t, err, "not axis-aligned")
}

func TestParseDoorValidation(t *testing.T) {
	good := rawDoor{Hinge: [2]float64{0, 0}, End: [2]float64{0.8, 0}, A: 0, B: 1}

	_, err := parseDoor(good, 2)
	require.NoError(t, err)

	t.Run("diagonal footprint", func(t *testing.T) {
		d := good
		d.End = [2]float64{0.6, 0.5}
		_, err := parseDoor(d, 2)
		assert.ErrorContains(t, err, "not axis-aligned")
	})

	t.Run("wrong width", func(t *testing.T) {
		d := good
		d.End = [2]float64{1.2, 0}
		_, err := parseDoor(d, 2)
		assert.ErrorContains(t, err, "width")
	})

	t.Run("region index out of range", func(t *testing.T) {
		d := good
		d.B = 7
		_, err := parseDoor(d, 2)
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("self loop", func(t *testing.T) {
		d := good
		d.B = 0
		_, err := parseDoor(d, 2)
		assert.ErrorContains(t, err, "itself")
	})
}

func TestRegionAccessors(t *testing.T) {
	rect := Region{Kind: RegionRect, Name: "r", Surface: SurfaceWood,
		Min: geom.Point{X: 0, Z: 0}, Max: geom.Point{X: 10, Z: 6}}

	edges := rect.BoundaryEdges()
	require.Len(t, edges, 4)
	wantLens := []float64{10, 6, 10, 6}
	for i, e := range edges {
		assert.InDelta(t, wantLens[i], e[0].Dist(e[1]), geom.Eps, "edge %d", i)
	}

	assert.Equal(t, geom.Point{X: 5, Z: 3}, rect.Centroid())
	assert.True(t, rect.Contains(geom.Point{X: 1, Z: 1}))
	assert.False(t, rect.Contains(geom.Point{X: 11, Z: 1}))

	poly := Region{Kind: RegionPoly, Name: "l", Surface: SurfaceVoid, Verts: geom.Polygon{
		{X: 0, Z: 0}, {X: 4, Z: 0}, {X: 4, Z: 2}, {X: 0, Z: 2},
	}}
	assert.True(t, poly.IsVoid())
	assert.Len(t, poly.BoundaryEdges(), 4)
}

func TestToWorldMirrorsOddHouses(t *testing.T) {
	even := House{Number: 4, Bounds: Bounds{Origin: geom.Point{X: 100, Z: 0}, Depth: 70}}
	odd := House{Number: 5, Bounds: Bounds{Origin: geom.Point{X: 100, Z: 0}, Depth: 70}}

	p := geom.Point{X: 3, Z: 10}
	assert.Equal(t, geom.Point{X: 103, Z: 10}, even.ToWorld(p))
	assert.Equal(t, geom.Point{X: 103, Z: 60}, odd.ToWorld(p))
}
