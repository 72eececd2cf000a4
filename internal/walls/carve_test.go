package walls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
)

func hseg(z, x0, x1 float64) geom.Segment {
	s, _ := geom.SegFromPoints(geom.Point{X: x0, Z: z}, geom.Point{X: x1, Z: z})
	return s
}

func hdoor(z, x0 float64, a, b int) layout.Door {
	return layout.Door{
		Hinge: geom.Point{X: x0, Z: z},
		End:   geom.Point{X: x0 + layout.DoorWidth, Z: z},
		A:     a, B: b,
	}
}

func TestCarveSingleDoor(t *testing.T) {
	g := config.Default().Geometry
	wall := hseg(0, 0, 10)
	door := hdoor(0, 4.6, 0, 1)

	pieces, openings := Carve(wall, []layout.Door{door}, g)

	require.Len(t, pieces, 2)
	assert.InDelta(t, 0.0, pieces[0].Lo, geom.Eps)
	assert.InDelta(t, 4.6, pieces[0].Hi, geom.Eps)
	assert.InDelta(t, 5.4, pieces[1].Lo, geom.Eps)
	assert.InDelta(t, 10.0, pieces[1].Hi, geom.Eps)

	require.Len(t, openings, 1)
	assert.InDelta(t, 4.6, openings[0].Gap.Lo, geom.Eps)
	assert.InDelta(t, 5.4, openings[0].Gap.Hi, geom.Eps)
	assert.True(t, LintelFits(openings[0], g))
}

func TestCarveNoMatchStaysSolid(t *testing.T) {
	g := config.Default().Geometry
	wall := hseg(0, 0, 10)

	// Wrong orientation.
	vdoor := layout.Door{Hinge: geom.Point{X: 3, Z: 0}, End: geom.Point{X: 3, Z: 0.8}}
	// Right orientation, different wall line.
	farDoor := hdoor(2.5, 4, 0, 1)

	pieces, openings := Carve(wall, []layout.Door{vdoor, farDoor}, g)
	require.Len(t, pieces, 1)
	assert.Equal(t, wall, pieces[0])
	assert.Empty(t, openings)
}

func TestCarvePerpendicularTolerance(t *testing.T) {
	g := config.Default().Geometry
	wall := hseg(0, 0, 10)

	// A door sitting 1 mm off the wall line still matches (tolerance 2 mm).
	near := hdoor(0.001, 4.6, 0, 1)
	pieces, _ := Carve(wall, []layout.Door{near}, g)
	assert.Len(t, pieces, 2)

	// 5 mm off does not.
	far := hdoor(0.005, 4.6, 0, 1)
	pieces, _ = Carve(wall, []layout.Door{far}, g)
	assert.Len(t, pieces, 1)
}

func TestCarveDoorStraddlingAtomicBoundary(t *testing.T) {
	g := config.Default().Geometry
	// Atomic segment covers [0,5]; the door [4.6,5.4] pokes past its end.
	wall := hseg(0, 0, 5)
	door := hdoor(0, 4.6, 0, 1)

	pieces, openings := Carve(wall, []layout.Door{door}, g)

	require.Len(t, pieces, 1)
	assert.InDelta(t, 4.6, pieces[0].Hi, geom.Eps)

	// The opening is clipped to the segment.
	require.Len(t, openings, 1)
	assert.InDelta(t, 5.0, openings[0].Gap.Hi, geom.Eps)
	assert.False(t, LintelFits(openings[0], g), "clipped opening is narrower than a door")
}

func TestCarveDoorConsumingWholeSegment(t *testing.T) {
	g := config.Default().Geometry
	wall := hseg(0, 4.6, 5.4)
	door := hdoor(0, 4.6, 0, 1)

	pieces, openings := Carve(wall, []layout.Door{door}, g)
	assert.Empty(t, pieces)
	require.Len(t, openings, 1)
}

func TestDoorBands(t *testing.T) {
	g := config.Default().Geometry
	base, carved, top := DoorBands(0, g)

	assert.False(t, base.Valid(), "zero sill height leaves no base band")
	assert.True(t, carved.Valid())
	assert.True(t, top.Valid())
	assert.InDelta(t, g.DoorHeight, carved.Height(), geom.Eps)
	assert.InDelta(t, g.StoreyHeight, top.Y1, geom.Eps)

	// Second storey bands stack on the first-floor ceiling.
	_, carved2, _ := DoorBands(g.StoreyHeight, g)
	assert.InDelta(t, g.StoreyHeight+g.SillHeight, carved2.Y0, geom.Eps)
}
