package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is CPU-side geometry: interleaved position(3) + normal(3) per vertex.
// Lines meshes are drawn as GL_LINES, everything else as triangles.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Lines    bool
}

const meshStride = 6

func (m *Mesh) VertexCount() int { return len(m.Vertices) / meshStride }

func (m *Mesh) addVertex(p, n mgl32.Vec3) {
	m.Indices = append(m.Indices, uint32(m.VertexCount()))
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
}

func (m *Mesh) position(i int) mgl32.Vec3 {
	o := i * meshStride
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Bounds returns the box around every vertex.
func (m *Mesh) Bounds() Box {
	if m.VertexCount() == 0 {
		return Box{}
	}
	p := m.position(0)
	b := Box{Min: vec64(p), Max: vec64(p)}
	for i := 1; i < m.VertexCount(); i++ {
		q := vec64(m.position(i))
		b = b.Union(Box{Min: q, Max: q})
	}
	return b
}

// Append copies other into m with a transform applied.
func (m *Mesh) Append(other *Mesh, xf mgl32.Mat4) {
	nxf := xf.Inv().Transpose()
	base := uint32(m.VertexCount())
	for i := 0; i < other.VertexCount(); i++ {
		o := i * meshStride
		p := xf.Mul4x1(mgl32.Vec4{other.Vertices[o], other.Vertices[o+1], other.Vertices[o+2], 1})
		n := nxf.Mul4x1(mgl32.Vec4{other.Vertices[o+3], other.Vertices[o+4], other.Vertices[o+5], 0}).Vec3()
		if n.Len() > 0 {
			n = n.Normalize()
		}
		m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// CubeMesh is a unit cube centred on the origin with per-face normals.
func CubeMesh() *Mesh {
	m := &Mesh{}
	faces := []struct {
		n    mgl32.Vec3
		u, v mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	for _, f := range faces {
		c := f.n.Mul(0.5)
		u := f.u.Mul(0.5)
		v := f.v.Mul(0.5)
		base := uint32(m.VertexCount())
		for _, p := range [4]mgl32.Vec3{
			c.Sub(u).Sub(v), c.Add(u).Sub(v), c.Add(u).Add(v), c.Sub(u).Add(v),
		} {
			m.Vertices = append(m.Vertices, p[0], p[1], p[2], f.n[0], f.n[1], f.n[2])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// SphereMesh is a UV sphere of radius 1.
func SphereMesh(stacks, slices int) *Mesh {
	m := &Mesh{}
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			m.Vertices = append(m.Vertices, n[0], n[1], n[2], n[0], n[1], n[2])
		}
	}
	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			m.Indices = append(m.Indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return m
}

// WireBoxMesh is the 12 edges of a unit cube, for bounds debugging.
func WireBoxMesh() *Mesh {
	m := &Mesh{Lines: true}
	for i := 0; i < 8; i++ {
		x := float32(i&1) - 0.5
		y := float32(i>>1&1) - 0.5
		z := float32(i>>2&1) - 0.5
		m.Vertices = append(m.Vertices, x, y, z, 0, 0, 0)
	}
	for i := uint32(0); i < 8; i++ {
		for _, bit := range []uint32{1, 2, 4} {
			if i&bit == 0 {
				m.Indices = append(m.Indices, i, i|bit)
			}
		}
	}
	return m
}

// SpiderMesh builds the pursuer from spheres and leg segments, facing +Z,
// standing on y=0.
func SpiderMesh() *Mesh {
	sphere := SphereMesh(10, 14)
	cube := CubeMesh()
	m := &Mesh{}

	// Abdomen and head.
	m.Append(sphere, mgl32.Translate3D(0, 1.0, -0.5).Mul4(mgl32.Scale3D(0.75, 0.6, 0.9)))
	m.Append(sphere, mgl32.Translate3D(0, 0.9, 0.55).Mul4(mgl32.Scale3D(0.4, 0.35, 0.4)))

	// Four legs per side; each is an upper segment rising outward and a
	// lower segment reaching the floor.
	for side := -1; side <= 1; side += 2 {
		for k := 0; k < 4; k++ {
			z := 0.45 - float32(k)*0.3
			splay := (float32(k) - 1.5) * 0.35
			s := float32(side)
			upper := mgl32.Translate3D(s*0.55, 1.15, z).
				Mul4(mgl32.HomogRotate3DY(-s * splay)).
				Mul4(mgl32.HomogRotate3DZ(s * 0.5)).
				Mul4(mgl32.Scale3D(0.75, 0.08, 0.08))
			lower := mgl32.Translate3D(s*1.0, 0.6, z+splay*0.25).
				Mul4(mgl32.HomogRotate3DY(-s * splay)).
				Mul4(mgl32.HomogRotate3DZ(-s * 1.1)).
				Mul4(mgl32.Scale3D(1.0, 0.07, 0.07))
			m.Append(cube, upper)
			m.Append(cube, lower)
		}
	}
	return m
}
