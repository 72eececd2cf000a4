package layout

import "github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"

// Lot-frame constants. The lot-local frame has x running along the street,
// z running from the road (front, z = 0) toward the back of the lot.
const (
	// StreetLength is the full street extent along x, in meters.
	StreetLength = 230.0
	// LotDepth is the lot extent along z; seeds the boundary cut-sets.
	LotDepth = 70.0
	// RoadDepth is the road band depth in front of the lots.
	RoadDepth = 8.0
	// RoadLineZ is the front lot edge every plot touches.
	RoadLineZ = 0.0
)

// FootprintName is the plot region representing the house itself. It is
// excluded from outdoor navigation and drives the brick/roof outline.
const FootprintName = "house"

// Names of the two regions the stairs builder requires.
const (
	StairsName        = "stairs"
	StairsOpeningName = "stairs_opening"
)

// Bounds places a house's lot-local frame in the world: Origin is the lot
// corner the local frame hangs off, and houses with odd numbers mirror the
// z axis (lots on the far side of the road face back).
type Bounds struct {
	Origin geom.Point
	Width  float64
	Depth  float64
}

// House is one house's placement plus its generated model.
type House struct {
	Number int
	Bounds Bounds
	Brick  string // brick texture key

	Plot        Floor
	FirstFloor  Floor
	SecondFloor Floor
}

// Floor is one layer's regions and door construction list.
type Floor struct {
	Regions []Region
	Doors   []Door
}

// Mirrored reports whether the house's lot frame flips z (odd house numbers
// sit across the road and face it from the other side).
func (h House) Mirrored() bool { return h.Number%2 == 1 }

// ToWorld maps a lot-local point into world coordinates.
func (h House) ToWorld(p geom.Point) geom.Point {
	z := p.Z
	if h.Mirrored() {
		z = h.Bounds.Depth - p.Z
	}
	return geom.Point{X: h.Bounds.Origin.X + p.X, Z: h.Bounds.Origin.Z + z}
}

// Footprint returns the plot region outlining the house itself.
func (h House) Footprint() (Region, bool) {
	for _, r := range h.Plot.Regions {
		if r.Name == FootprintName {
			return r, true
		}
	}
	return Region{}, false
}

// FindRegion returns the first region with the given name on floor f.
func (f Floor) FindRegion(name string) (int, bool) {
	for i, r := range f.Regions {
		if r.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Street is the whole ingested level: every house plus the road band.
type Street struct {
	Houses []House
	Road   geom.Rect
}

// DefaultRoad returns the fixed road rectangle in front of the lots.
func DefaultRoad() geom.Rect {
	return geom.Rect{MinX: 0, MinZ: -RoadDepth, MaxX: StreetLength, MaxZ: RoadLineZ}
}
