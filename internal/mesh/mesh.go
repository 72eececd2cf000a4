// Package mesh is the outbound geometry boundary: flat vertex buffers plus
// the kind/house/region tags the renderer and the floor-pick query consume.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tags what a buffer renders as.
type Kind uint8

const (
	KindWall Kind = iota
	KindBrick
	KindFloor
	KindCeiling
	KindRoof
	KindStairTread
	KindLintel
	KindReveal
)

var kindNames = [...]string{
	"wall", "brick", "floor", "ceiling", "roof", "stair_tread", "lintel", "reveal",
}

// String returns the kind's tag name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Buffer is one emitted mesh: indexed triangles with per-vertex normals and
// planar UVs, tagged with its kind and owning house/region.
type Buffer struct {
	Kind   Kind
	House  int
	Region string
	// Material keys the renderer resolves (brick texture, surface name).
	Material string

	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	UVs       []mgl64.Vec2
	Indices   []uint32
}

// NewBuffer returns an empty tagged buffer.
func NewBuffer(kind Kind, house int, region, material string) *Buffer {
	return &Buffer{Kind: kind, House: house, Region: region, Material: material}
}

// Empty reports whether the buffer holds no triangles.
func (b *Buffer) Empty() bool { return len(b.Indices) == 0 }

// TriangleCount returns the number of triangles in the buffer.
func (b *Buffer) TriangleCount() int { return len(b.Indices) / 3 }

// AddQuad appends one quad a-b-c-d (counter-clockwise seen from the normal
// side) as two triangles with a shared flat normal.
func (b *Buffer) AddQuad(a, bb, c, d, normal mgl64.Vec3) {
	base := uint32(len(b.Positions))
	b.Positions = append(b.Positions, a, bb, c, d)
	b.Normals = append(b.Normals, normal, normal, normal, normal)
	for _, p := range []mgl64.Vec3{a, bb, c, d} {
		b.UVs = append(b.UVs, planarUV(p, normal))
	}
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
}

// AddTriangle appends one triangle with a flat normal.
func (b *Buffer) AddTriangle(a, bb, c, normal mgl64.Vec3) {
	base := uint32(len(b.Positions))
	b.Positions = append(b.Positions, a, bb, c)
	b.Normals = append(b.Normals, normal, normal, normal)
	for _, p := range []mgl64.Vec3{a, bb, c} {
		b.UVs = append(b.UVs, planarUV(p, normal))
	}
	b.Indices = append(b.Indices, base, base+1, base+2)
}

// planarUV projects a position onto the plane most aligned with the normal,
// giving world-scaled texture coordinates.
func planarUV(p, n mgl64.Vec3) mgl64.Vec2 {
	ax, ay, az := abs(n.X()), abs(n.Y()), abs(n.Z())
	switch {
	case ay >= ax && ay >= az:
		return mgl64.Vec2{p.X(), p.Z()}
	case ax >= az:
		return mgl64.Vec2{p.Z(), p.Y()}
	default:
		return mgl64.Vec2{p.X(), p.Y()}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
