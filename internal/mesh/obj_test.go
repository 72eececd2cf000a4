package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOBJRebasesIndices(t *testing.T) {
	a := NewBuffer(KindWall, 0, "living", "plaster")
	a.AddQuad(
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{1, 1, 0}, mgl64.Vec3{0, 1, 0},
		mgl64.Vec3{0, 0, -1},
	)
	b := NewBuffer(KindFloor, 0, "living", "wood")
	b.AddQuad(
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1},
		mgl64.Vec3{1, 0, 1}, mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)

	var out bytes.Buffer
	require.NoError(t, WriteOBJ(&out, []*Buffer{a, b}))
	text := out.String()

	assert.Contains(t, text, "o wall_h0_living")
	assert.Contains(t, text, "usemtl plaster")
	assert.Contains(t, text, "o floor_h0_living")
	assert.Contains(t, text, "usemtl wood")

	// Second buffer's faces reference vertices 5..8 (OBJ is 1-based and
	// numbering is global across objects).
	assert.Contains(t, text, "f 5/5/5")

	assert.Equal(t, 8, strings.Count(text, "\nv "), "4 vertices per quad")
	assert.Equal(t, 4, strings.Count(text, "\nf "), "2 triangles per quad")
}

func TestWriteOBJSkipsEmptyBuffers(t *testing.T) {
	var out bytes.Buffer
	empty := NewBuffer(KindRoof, 1, "roof", "tile")
	require.NoError(t, WriteOBJ(&out, []*Buffer{empty}))
	assert.Empty(t, out.String())
}
