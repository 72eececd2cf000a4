package layout

import (
	"math"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
)

// DoorWidth is the fixed door opening width. Content invariant, not tuning.
const DoorWidth = 0.8

// ExteriorRegion is the Door.B sentinel for "no second region" — the door
// opens to the outside of the house.
const ExteriorRegion = -1

// Door is a directed opening between two regions of the same floor. Hinge
// and End form the axis-aligned footprint line lying exactly on a shared or
// exterior wall.
type Door struct {
	Hinge, End geom.Point
	A          int // index of one adjoining region
	B          int // index of the other, or ExteriorRegion
}

// Segment returns the door footprint as an axis-aligned segment.
// Validation at parse time guarantees ok for ingested doors.
func (d Door) Segment() (geom.Segment, bool) {
	return geom.SegFromPoints(d.Hinge, d.End)
}

// Mid returns the door footprint midpoint.
func (d Door) Mid() geom.Point { return d.Hinge.Mid(d.End) }

// Width returns the footprint length.
func (d Door) Width() float64 {
	return math.Hypot(d.End.X-d.Hinge.X, d.End.Z-d.Hinge.Z)
}

// Exterior reports whether the door opens to the outside.
func (d Door) Exterior() bool { return d.B == ExteriorRegion }
