package build

import (
	"log/slog"
	"math"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
)

// Lead direction tags on the stairwell opening. North faces the road
// (-z in the lot frame); mirrored houses flip north/south in world space.
const (
	LeadNorth = "north"
	LeadSouth = "south"
	LeadEast  = "east"
	LeadWest  = "west"
)

// stairPerimeter parameterizes a clockwise walk around a rect's boundary:
// side 0 is the MinZ edge walked toward +x, then MaxX toward +z, MaxZ
// toward -x, MinX toward -z.
type stairPerimeter struct {
	rect  geom.Rect
	width float64 // tread extent into the rect interior
}

func (sp stairPerimeter) sideLen(side int) float64 {
	if side%2 == 0 {
		return sp.rect.Width()
	}
	return sp.rect.Depth()
}

func (sp stairPerimeter) total() float64 {
	return 2 * (sp.rect.Width() + sp.rect.Depth())
}

// locate resolves a perimeter parameter into (side, offset along side).
func (sp stairPerimeter) locate(s float64) (int, float64) {
	s = math.Mod(s, sp.total())
	if s < 0 {
		s += sp.total()
	}
	for side := 0; side < 4; side++ {
		l := sp.sideLen(side)
		if s < l {
			return side, s
		}
		s -= l
	}
	return 3, sp.sideLen(3) // numeric spill lands at the walk's end
}

// hugRect is the wall-hugging tread: a strip [a, b] along the given side,
// extending width into the interior.
func (sp stairPerimeter) hugRect(side int, a, b float64) geom.Rect {
	r := sp.rect
	w := sp.width
	switch side {
	case 0:
		return geom.Rect{MinX: r.MinX + a, MinZ: r.MinZ, MaxX: r.MinX + b, MaxZ: r.MinZ + w}
	case 1:
		return geom.Rect{MinX: r.MaxX - w, MinZ: r.MinZ + a, MaxX: r.MaxX, MaxZ: r.MinZ + b}
	case 2:
		return geom.Rect{MinX: r.MaxX - b, MinZ: r.MaxZ - w, MaxX: r.MaxX - a, MaxZ: r.MaxZ}
	default:
		return geom.Rect{MinX: r.MinX, MinZ: r.MaxZ - b, MaxX: r.MinX + w, MaxZ: r.MaxZ - a}
	}
}

// cornerRect is the square tread tucked into the corner ending the given
// side. Squares replace strips whenever a step reaches into the last width
// of its side, so strips and corner squares never share ground.
func (sp stairPerimeter) cornerRect(side int) geom.Rect {
	r := sp.rect
	w := sp.width
	switch side {
	case 0:
		return geom.Rect{MinX: r.MaxX - w, MinZ: r.MinZ, MaxX: r.MaxX, MaxZ: r.MinZ + w}
	case 1:
		return geom.Rect{MinX: r.MaxX - w, MinZ: r.MaxZ - w, MaxX: r.MaxX, MaxZ: r.MaxZ}
	case 2:
		return geom.Rect{MinX: r.MinX, MinZ: r.MaxZ - w, MaxX: r.MinX + w, MaxZ: r.MaxZ}
	default:
		return geom.Rect{MinX: r.MinX, MinZ: r.MinZ, MaxX: r.MinX + w, MaxZ: r.MinZ + w}
	}
}

// param returns the perimeter parameter of the boundary point nearest p.
func (sp stairPerimeter) param(p geom.Point) float64 {
	r := sp.rect
	type cand struct {
		dist, s float64
	}
	best := cand{dist: math.Inf(1)}
	consider := func(d, s float64) {
		if d < best.dist {
			best = cand{dist: d, s: s}
		}
	}
	clamp := func(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

	x := clamp(p.X, r.MinX, r.MaxX)
	z := clamp(p.Z, r.MinZ, r.MaxZ)
	consider(math.Abs(p.Z-r.MinZ), x-r.MinX)
	consider(math.Abs(p.X-r.MaxX), r.Width()+(z-r.MinZ))
	consider(math.Abs(p.Z-r.MaxZ), r.Width()+r.Depth()+(r.MaxX-x))
	consider(math.Abs(p.X-r.MinX), 2*r.Width()+r.Depth()+(r.MaxZ-z))
	return best.s
}

// sideMid returns the parameter of a side's midpoint.
func (sp stairPerimeter) sideMid(side int) float64 {
	var s float64
	for i := 0; i < side; i++ {
		s += sp.sideLen(i)
	}
	return s + sp.sideLen(side)/2
}

func leadSide(lead string, mirrored bool) (int, bool) {
	if mirrored {
		switch lead {
		case LeadNorth:
			lead = LeadSouth
		case LeadSouth:
			lead = LeadNorth
		}
	}
	switch lead {
	case LeadNorth:
		return 0, true
	case LeadEast:
		return 1, true
	case LeadSouth:
		return 2, true
	case LeadWest:
		return 3, true
	default:
		return 0, false
	}
}

// buildStairs places the discrete tread boxes climbing from first-floor to
// second-floor height. The walk starts at the entry doorway, proceeds
// clockwise, and ends at the stairwell opening's open (lead) edge, so entry
// and exit points are deterministic for a given layout. Both required
// regions missing is reported-and-skipped, never fatal: one bad house must
// not block the street.
func (s *Session) buildStairs(house int, first, second layout.Floor, mirrored bool) {
	g := s.Cfg.Geometry

	stairsIdx, ok := first.FindRegion(layout.StairsName)
	if !ok {
		slog.Warn("stairs skipped: no stairs region", "house", house)
		return
	}
	openIdx, ok := second.FindRegion(layout.StairsOpeningName)
	if !ok {
		slog.Warn("stairs skipped: no stairs opening", "house", house)
		return
	}
	stairs := first.Regions[stairsIdx]
	opening := second.Regions[openIdx]

	lead, ok := opening.Lead()
	if !ok {
		slog.Warn("stairs skipped: opening has no lead direction", "house", house)
		return
	}

	var entry *layout.Door
	for i, d := range first.Doors {
		if d.A == stairsIdx || d.B == stairsIdx {
			entry = &first.Doors[i]
			break
		}
	}
	if entry == nil {
		slog.Warn("stairs skipped: no doorway into stairs room", "house", house)
		return
	}

	// Base rectangle heuristic: prefer the stairs/stairwell intersection,
	// fall back to the full stairs room when the intersection is thinner
	// than the minimum viable stair dimension. Threshold is content-tuned.
	base := intersectRects(stairs.Bounds(), opening.Bounds())
	if base.Width() < g.StairMinDim || base.Depth() < g.StairMinDim {
		base = stairs.Bounds()
	}

	width := math.Min(g.StairMinDim, math.Min(base.Width(), base.Depth())/2)
	sp := stairPerimeter{rect: base, width: width}

	exitSide, ok := leadSide(lead, mirrored)
	if !ok {
		slog.Warn("stairs skipped: unknown lead direction", "house", house, "lead", lead)
		return
	}

	sEntry := sp.param(entry.Mid())
	sExit := sp.sideMid(exitSide)
	total := math.Mod(sExit-sEntry, sp.total())
	if total <= geom.Eps {
		total += sp.total()
	}

	n := int(math.Ceil(g.StoreyHeight / g.TreadRise))
	if n < 1 {
		n = 1
	}
	run := total / float64(n)

	// Walk the perimeter collecting tread footprints. Hug strips stop short
	// of each corner zone; when a step would reach one, the corner square is
	// placed instead and the cursor jumps width into the next side, past the
	// square. That jump is what keeps a strip from ever sharing ground with
	// an adjacent corner tread. The walk also halts a corner zone short of a
	// full loop so late treads cannot wrap back onto the entry strip.
	var treads []geom.Rect
	cursor := sEntry
	walked := 0.0
	limit := math.Min(total, sp.total()-width)
	for len(treads) < n && walked+run <= limit {
		side, off := sp.locate(cursor)
		l := sp.sideLen(side)
		if off+run > l-width {
			adv := (l - off) + width
			if walked+adv > sp.total() {
				break // this corner square would wrap onto the entry strip
			}
			treads = append(treads, sp.cornerRect(side))
			cursor += adv
			walked += adv
		} else {
			treads = append(treads, sp.hugRect(side, off, off+run))
			cursor += run
			walked += run
		}
	}
	if len(treads) == 0 {
		slog.Warn("stairs skipped: perimeter too short for any tread",
			"house", house, "perimeter", sp.total(), "width", width)
		return
	}

	// Corner jumps consume more arc than run, so the walk may place fewer
	// treads than the nominal count; spread the climb over what fits.
	rise := g.StoreyHeight / float64(len(treads))

	buf := mesh.NewBuffer(mesh.KindStairTread, house, layout.StairsName, "wood")
	for k, tread := range treads {
		topY := float64(k+1) * rise
		buf.AddSolidBox(tread, topY-g.TreadThick, topY)

		// Treads are walkable: downstream floor-pick rays must treat them
		// as floor surfaces for auto-stepping.
		s.Floors.Add(mesh.FloorSurface{
			Rect:   tread,
			Y:      topY,
			Kind:   mesh.KindStairTread,
			House:  house,
			Region: layout.StairsName,
		})
	}
	s.emit(buf)
}

func intersectRects(a, b geom.Rect) geom.Rect {
	return geom.Rect{
		MinX: math.Max(a.MinX, b.MinX),
		MinZ: math.Max(a.MinZ, b.MinZ),
		MaxX: math.Min(a.MaxX, b.MaxX),
		MaxZ: math.Min(a.MaxZ, b.MaxZ),
	}
}
