// Package walls turns region outlines into atomic wall segments and carves
// door openings out of them. Everything here is pure 2D interval geometry;
// the 3D prisms are emitted by the build package.
package walls

import (
	"sort"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
)

// Ownership counts how many regions trace one atomic segment. Two regions
// sharing a physical wall decompose into bit-identical atomic segments, so
// the wall class falls out of plain counting.
type Ownership struct {
	NonVoid int
	Void    int
	Seg     geom.Segment
}

// Interior reports an interior wall: shared by exactly two non-void regions.
func (o *Ownership) Interior() bool { return o.NonVoid == 2 }

// Exterior reports an exterior wall: owned by exactly one non-void region
// and not adjacent to a void.
func (o *Ownership) Exterior() bool { return o.NonVoid == 1 && o.Void == 0 }

// CutSet is the global set of x and z values boundary edges are split at.
type CutSet struct {
	X, Z []float64 // sorted, de-duplicated
}

// NewCutSet collects every vertex coordinate of every region, plus any
// extra seed values (lot bounds, the road line), so that long edges split
// into pieces aligned with every neighbor.
func NewCutSet(regions []layout.Region, extraX, extraZ []float64) CutSet {
	var xs, zs []float64
	for _, r := range regions {
		for _, v := range r.Polygon() {
			xs = append(xs, v.X)
			zs = append(zs, v.Z)
		}
	}
	xs = append(xs, extraX...)
	zs = append(zs, extraZ...)
	return CutSet{X: dedupSorted(xs), Z: dedupSorted(zs)}
}

func dedupSorted(vs []float64) []float64 {
	sort.Float64s(vs)
	out := vs[:0]
	for _, v := range vs {
		if len(out) == 0 || v-out[len(out)-1] > geom.Eps {
			out = append(out, v)
		}
	}
	return out
}

// split breaks seg at every cut value strictly interior to its span.
func split(seg geom.Segment, cuts []float64) []geom.Segment {
	out := make([]geom.Segment, 0, 2)
	lo := seg.Lo
	for _, c := range cuts {
		if c <= lo+geom.Eps {
			continue
		}
		if c >= seg.Hi-geom.Eps {
			break
		}
		out = append(out, seg.WithSpan(geom.Interval{A: lo, B: c}))
		lo = c
	}
	out = append(out, seg.WithSpan(geom.Interval{A: lo, B: seg.Hi}))
	return out
}

// Extract decomposes every region boundary of one floor layer into atomic
// segments and counts ownership per canonical segment key. Degenerate
// (diagonal or zero-length) edges are dropped silently — they are expected
// at polygon corners and carry no wall.
func Extract(regions []layout.Region, cuts CutSet) map[geom.Key]*Ownership {
	owners := make(map[geom.Key]*Ownership)
	for _, region := range regions {
		void := region.IsVoid()
		for _, e := range region.BoundaryEdges() {
			seg, ok := geom.SegFromPoints(e[0], e[1])
			if !ok {
				continue
			}
			tangent := cuts.X
			if seg.Orient == geom.Vertical {
				tangent = cuts.Z
			}
			for _, atom := range split(seg, tangent) {
				key := atom.Key()
				o := owners[key]
				if o == nil {
					o = &Ownership{Seg: atom}
					owners[key] = o
				}
				if void {
					o.Void++
				} else {
					o.NonVoid++
				}
			}
		}
	}
	return owners
}

// Sorted returns the ownership records in a stable order (orientation, then
// fixed coordinate, then span) so builders emit deterministic geometry.
func Sorted(owners map[geom.Key]*Ownership) []*Ownership {
	keys := make([]geom.Key, 0, len(owners))
	for k := range owners {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Orient != b.Orient {
			return a.Orient < b.Orient
		}
		if a.Fixed != b.Fixed {
			return a.Fixed < b.Fixed
		}
		if a.Lo != b.Lo {
			return a.Lo < b.Lo
		}
		return a.Hi < b.Hi
	})
	out := make([]*Ownership, len(keys))
	for i, k := range keys {
		out[i] = owners[k]
	}
	return out
}
