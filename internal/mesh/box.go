package mesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
)

// AddWallBox appends the four vertical faces of an axis-aligned box spanning
// rect horizontally and [y0, y1] vertically. Top and bottom caps are
// deliberately omitted: wall tops meet ceiling meshes exactly and caps would
// z-fight.
func (b *Buffer) AddWallBox(rect geom.Rect, y0, y1 float64) {
	b.addBoxFaces(rect, y0, y1, false)
}

// AddSolidBox appends all six faces of an axis-aligned box (stair treads,
// lintels).
func (b *Buffer) AddSolidBox(rect geom.Rect, y0, y1 float64) {
	b.addBoxFaces(rect, y0, y1, true)
}

func (b *Buffer) addBoxFaces(rect geom.Rect, y0, y1 float64, caps bool) {
	x0, z0, x1, z1 := rect.MinX, rect.MinZ, rect.MaxX, rect.MaxZ

	// -z face
	b.AddQuad(
		mgl64.Vec3{x0, y0, z0}, mgl64.Vec3{x1, y0, z0},
		mgl64.Vec3{x1, y1, z0}, mgl64.Vec3{x0, y1, z0},
		mgl64.Vec3{0, 0, -1})
	// +z face
	b.AddQuad(
		mgl64.Vec3{x1, y0, z1}, mgl64.Vec3{x0, y0, z1},
		mgl64.Vec3{x0, y1, z1}, mgl64.Vec3{x1, y1, z1},
		mgl64.Vec3{0, 0, 1})
	// -x face
	b.AddQuad(
		mgl64.Vec3{x0, y0, z1}, mgl64.Vec3{x0, y0, z0},
		mgl64.Vec3{x0, y1, z0}, mgl64.Vec3{x0, y1, z1},
		mgl64.Vec3{-1, 0, 0})
	// +x face
	b.AddQuad(
		mgl64.Vec3{x1, y0, z0}, mgl64.Vec3{x1, y0, z1},
		mgl64.Vec3{x1, y1, z1}, mgl64.Vec3{x1, y1, z0},
		mgl64.Vec3{1, 0, 0})

	if !caps {
		return
	}
	// top
	b.AddQuad(
		mgl64.Vec3{x0, y1, z0}, mgl64.Vec3{x1, y1, z0},
		mgl64.Vec3{x1, y1, z1}, mgl64.Vec3{x0, y1, z1},
		mgl64.Vec3{0, 1, 0})
	// bottom
	b.AddQuad(
		mgl64.Vec3{x0, y0, z1}, mgl64.Vec3{x1, y0, z1},
		mgl64.Vec3{x1, y0, z0}, mgl64.Vec3{x0, y0, z0},
		mgl64.Vec3{0, -1, 0})
}

// AddHorizontalPoly appends a triangulated horizontal polygon at height y,
// facing up or down.
func (b *Buffer) AddHorizontalPoly(poly geom.Polygon, y float64, up bool) {
	normal := mgl64.Vec3{0, 1, 0}
	if !up {
		normal = mgl64.Vec3{0, -1, 0}
	}
	for _, tr := range geom.Triangulate(poly) {
		p0, p1, p2 := poly[tr[0]], poly[tr[1]], poly[tr[2]]
		if !up {
			p1, p2 = p2, p1 // flip winding for downward faces
		}
		b.AddTriangle(
			mgl64.Vec3{p0.X, y, p0.Z},
			mgl64.Vec3{p1.X, y, p1.Z},
			mgl64.Vec3{p2.X, y, p2.Z},
			normal)
	}
}

// AddPrism appends a closed vertical prism: side quads along the polygon's
// edges between y0 and y1 plus a triangulated flat top cap (the roof shape).
func (b *Buffer) AddPrism(poly geom.Polygon, y0, y1 float64) {
	ccw := poly.CCW()
	n := len(poly)
	for i := range poly {
		p, q := poly[i], poly[(i+1)%n]
		seg, ok := geom.SegFromPoints(p, q)
		if !ok {
			continue
		}
		var normal mgl64.Vec3
		if seg.Orient == geom.Horizontal {
			out := 1.0
			if (q.X > p.X) == ccw {
				out = -1.0
			}
			normal = mgl64.Vec3{0, 0, out}
		} else {
			out := 1.0
			if (q.Z > p.Z) != ccw {
				out = -1.0
			}
			normal = mgl64.Vec3{out, 0, 0}
		}
		b.AddQuad(
			mgl64.Vec3{p.X, y0, p.Z}, mgl64.Vec3{q.X, y0, q.Z},
			mgl64.Vec3{q.X, y1, q.Z}, mgl64.Vec3{p.X, y1, p.Z},
			normal)
	}
	b.AddHorizontalPoly(poly, y1, true)
}
