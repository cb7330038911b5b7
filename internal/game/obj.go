package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

// ErrBadModel marks an OBJ file gwob could only read in part.
var ErrBadModel = errors.New("malformed obj")

// LoadOBJ reads a Wavefront OBJ file into a triangle mesh.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()
	m, err := ParseOBJ(path, f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ reads v, vn and f records through gwob, which splits quads into
// two triangles and resolves negative indices. Corners without a normal
// get the flat face normal. Materials and texture coordinates are dropped.
func ParseOBJ(name string, r io.Reader) (mesh *Mesh, err error) {
	// gwob skips bad lines and only reports them to the logger.
	var problems []string
	opts := &gwob.ObjParserOptions{
		Logger: func(msg string) {
			msg = strings.TrimSpace(msg)
			if strings.HasPrefix(msg, "readLines:") || strings.HasPrefix(msg, "scanLines:") {
				problems = append(problems, msg)
			}
		},
	}

	// A normal index past the vn records panics inside gwob.
	defer func() {
		if p := recover(); p != nil {
			mesh, err = nil, fmt.Errorf("%w: %v", ErrBadModel, p)
		}
	}()

	o, err := gwob.NewObjFromReader(name, r, opts)
	if err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBadModel, problems[0])
	}
	if len(o.Indices) == 0 {
		return nil, errors.New("no faces")
	}
	return meshFromObj(o)
}

// meshFromObj unrolls gwob's indexed vertices into one vertex per triangle
// corner so flat normals stay per face.
func meshFromObj(o *gwob.Obj) (*Mesh, error) {
	if len(o.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices do not form triangles", ErrBadModel, len(o.Indices))
	}
	n := o.NumberOfElements()
	floats := o.StrideSize / 4
	normalAt := func(i int) mgl32.Vec3 {
		off := i*floats + o.StrideOffsetNormal/4
		return mgl32.Vec3{o.Coord[off], o.Coord[off+1], o.Coord[off+2]}
	}

	mesh := &Mesh{}
	for t := 0; t < len(o.Indices); t += 3 {
		var pos [3]mgl32.Vec3
		for k := 0; k < 3; k++ {
			i := o.Indices[t+k]
			if i < 0 || i >= n {
				return nil, fmt.Errorf("%w: vertex %d out of range (have %d)", ErrBadModel, i, n)
			}
			x, y, z := o.VertexCoordinates(i)
			pos[k] = mgl32.Vec3{x, y, z}
		}
		flat := faceNormal(pos[0], pos[1], pos[2])
		for k := 0; k < 3; k++ {
			nrm := flat
			if o.NormCoordFound {
				nrm = normalAt(o.Indices[t+k])
			}
			mesh.addVertex(pos[k], nrm)
		}
	}
	return mesh, nil
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
