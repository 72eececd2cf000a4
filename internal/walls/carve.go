package walls

import (
	"math"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
)

// Opening is one door gap actually carved out of a wall segment: the span
// removed, clipped to the segment. Builders use it for lintels and reveals.
type Opening struct {
	Gap  geom.Segment
	Door layout.Door
}

// MatchDoors filters doors to those lying on the wall line: same orientation
// and perpendicular coordinate within perpTol of the wall's fixed coordinate.
func MatchDoors(seg geom.Segment, doors []layout.Door, perpTol float64) []layout.Door {
	var out []layout.Door
	for _, d := range doors {
		ds, ok := d.Segment()
		if !ok || ds.Orient != seg.Orient {
			continue
		}
		if math.Abs(ds.Fixed-seg.Fixed) <= perpTol {
			out = append(out, d)
		}
	}
	return out
}

// Carve subtracts every matching door's span from seg and returns the
// surviving wall pieces plus the openings actually cut. A segment with no
// matching doors comes back whole — never an error; the wall is simply
// solid.
func Carve(seg geom.Segment, doors []layout.Door, g config.Geometry) ([]geom.Segment, []Opening) {
	matched := MatchDoors(seg, doors, g.DoorPerpTol)
	if len(matched) == 0 {
		return []geom.Segment{seg}, nil
	}

	var cuts []geom.Interval
	var openings []Opening
	for _, d := range matched {
		ds, _ := d.Segment()
		// Clip the door span to this atomic segment; doors straddling an
		// atomic boundary contribute only their overlapping part here.
		lo := math.Max(ds.Lo, seg.Lo)
		hi := math.Min(ds.Hi, seg.Hi)
		if hi-lo < g.MinWallLen {
			continue
		}
		cuts = append(cuts, geom.Interval{A: ds.Lo, B: ds.Hi})
		openings = append(openings, Opening{
			Gap:  seg.WithSpan(geom.Interval{A: lo, B: hi}),
			Door: d,
		})
	}

	pieces := geom.Subtract(seg.Span(), cuts, g.MinWallLen)
	out := make([]geom.Segment, 0, len(pieces))
	for _, iv := range pieces {
		out = append(out, seg.WithSpan(iv))
	}
	return out, openings
}

// Band is a vertical [Y0, Y1] span a carved segment extrudes through.
type Band struct {
	Y0, Y1 float64
}

// Height returns the band height.
func (b Band) Height() float64 { return b.Y1 - b.Y0 }

// Valid reports a renderable band. Non-positive bands are skipped by every
// builder rather than treated as errors.
func (b Band) Valid() bool { return b.Height() > geom.Eps }

// DoorBands splits one storey's wall at floorY into the three vertical bands
// of the door zone: solid base below the sill, the carved band the door
// opening lives in, and the solid band from opening top to ceiling.
func DoorBands(floorY float64, g config.Geometry) (base, carved, top Band) {
	sill := floorY + g.SillHeight
	head := sill + g.DoorHeight
	ceil := floorY + g.StoreyHeight
	return Band{Y0: floorY, Y1: sill}, Band{Y0: sill, Y1: head}, Band{Y0: head, Y1: ceil}
}

// LintelFits reports whether an opening qualifies for a lintel cap: its gap
// width matches the fixed door width within the configured fraction.
func LintelFits(op Opening, g config.Geometry) bool {
	return math.Abs(op.Gap.Len()-g.DoorWidth) <= g.DoorWidth*g.LintelWidthTol
}
