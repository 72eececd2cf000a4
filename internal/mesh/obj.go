package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ serializes buffers as Wavefront OBJ, one object per buffer,
// grouped under usemtl lines so materials survive the export. Indices are
// rebased to OBJ's global 1-based vertex numbering.
func WriteOBJ(w io.Writer, buffers []*Buffer) error {
	bw := bufio.NewWriter(w)

	var base uint32 // vertices emitted so far
	for _, b := range buffers {
		if b.Empty() {
			continue
		}
		fmt.Fprintf(bw, "o %s_h%d_%s\n", b.Kind, b.House, b.Region)
		fmt.Fprintf(bw, "usemtl %s\n", b.Material)

		for _, p := range b.Positions {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X(), p.Y(), p.Z())
		}
		for _, n := range b.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
		}
		for _, uv := range b.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X(), uv.Y())
		}

		for i := 0; i+2 < len(b.Indices); i += 3 {
			a, c, d := base+b.Indices[i]+1, base+b.Indices[i+1]+1, base+b.Indices[i+2]+1
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, c, c, c, d, d, d)
		}
		base += uint32(len(b.Positions))
	}
	return bw.Flush()
}
