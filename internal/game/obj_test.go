package game

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalAt(m *Mesh, i int) mgl64.Vec3 {
	o := i*meshStride + 3
	return mgl64.Vec3{float64(m.Vertices[o]), float64(m.Vertices[o+1]), float64(m.Vertices[o+2])}
}

func TestParseOBJQuadFlatNormals(t *testing.T) {
	src := `
# a quad in the XY plane
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
usemtl none
f 1 2 3 4
`
	m, err := ParseOBJ("test.obj", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 6, m.VertexCount())
	assert.Len(t, m.Indices, 6)
	for i := 0; i < m.VertexCount(); i++ {
		assertVecNear(t, mgl64.Vec3{0, 0, 1}, normalAt(m, i), 1e-6)
	}

	b := m.Bounds()
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, b.Min)
	assert.Equal(t, mgl64.Vec3{1, 1, 0}, b.Max)
}

func TestParseOBJNormalsAndNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 0 0 1
v 1 0 0
vn 0 1 0
f -3//1 -2//1 -1//1
f 1//1 2//1 3//1
`
	m, err := ParseOBJ("test.obj", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 6, m.VertexCount())
	for i := 0; i < m.VertexCount(); i++ {
		assertVecNear(t, mgl64.Vec3{0, 1, 0}, normalAt(m, i), 1e-6)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad float", "v 1 x 3\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"normal out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 1 0\nf 1//1 2//1 3//4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ("bad.obj", strings.NewReader(tt.src))
			assert.ErrorIs(t, err, ErrBadModel)
		})
	}
}

func TestParseOBJNoFaces(t *testing.T) {
	_, err := ParseOBJ("empty.obj", strings.NewReader("v 0 0 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no faces")
}

func TestParseOBJReadError(t *testing.T) {
	src := io.MultiReader(strings.NewReader("v 0 0 0\n"), iotest.ErrReader(errors.New("disk on fire")))
	_, err := ParseOBJ("broken.obj", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read obj")
	assert.Contains(t, err.Error(), "disk on fire")
	assert.NotErrorIs(t, err, ErrBadModel)
}
