package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// gpuMesh is a Mesh uploaded to a VAO with an index buffer.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
}

func uploadMesh(m *Mesh) gpuMesh {
	g := gpuMesh{count: int32(len(m.Indices)), mode: gl.TRIANGLES}
	if m.Lines {
		g.mode = gl.LINES
	}
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.GenBuffers(1, &g.ebo)
	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)
	stride := int32(meshStride * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aNormal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

func (g *gpuMesh) destroy() {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
}

type Renderer struct {
	// Lit mesh program.
	meshProg    uint32
	uViewProj   int32
	uModel      int32
	uColor      int32
	uEmission   int32
	uAmbient    int32
	uSunDir     int32
	uSunColor   int32
	uLightPos   int32
	uLightColor int32
	uLightAtten int32
	uFogColor   int32
	uFogCoef    int32
	uEye        int32
	uUnlit      int32

	// Built-in shapes.
	cube   gpuMesh
	sphere gpuMesh
	wire   gpuMesh
	spider gpuMesh

	// Procedural spider bounds, used to fit it to the level's capture box.
	spiderBounds Box

	// Level models, keyed by the CPU mesh they came from.
	models map[*Mesh]gpuMesh

	// Overlay (screens, HUD, text).
	overlayProg uint32
	overlayVAO  uint32
	overlayVBO  uint32
	overlayURes int32
	overlayUTex int32
	atlasTex    uint32
	overlayBuf  []float32
	overlayW    int
	overlayH    int
}

// NewRenderer compiles programs and uploads every mesh the level needs.
func NewRenderer(level *Level) (*Renderer, error) {
	meshProg, err := linkProgram("mesh", meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	r := &Renderer{
		meshProg: meshProg,
		models:   make(map[*Mesh]gpuMesh),
	}

	gl.UseProgram(meshProg)
	uniform := func(name string) int32 {
		return gl.GetUniformLocation(meshProg, gl.Str(name+"\x00"))
	}
	r.uViewProj = uniform("uViewProj")
	r.uModel = uniform("uModel")
	r.uColor = uniform("uColor")
	r.uEmission = uniform("uEmission")
	r.uAmbient = uniform("uAmbient")
	r.uSunDir = uniform("uSunDir")
	r.uSunColor = uniform("uSunColor")
	r.uLightPos = uniform("uLightPos")
	r.uLightColor = uniform("uLightColor")
	r.uLightAtten = uniform("uLightAtten")
	r.uFogColor = uniform("uFogColor")
	r.uFogCoef = uniform("uFogCoef")
	r.uEye = uniform("uEye")
	r.uUnlit = uniform("uUnlit")

	spider := SpiderMesh()
	r.spiderBounds = spider.Bounds()
	r.cube = uploadMesh(CubeMesh())
	r.sphere = uploadMesh(SphereMesh(16, 24))
	r.wire = uploadMesh(WireBoxMesh())
	r.spider = uploadMesh(spider)

	specs := append([]BoxSpec{level.Spider}, level.Walls...)
	specs = append(specs, level.Eggs...)
	if level.Floor != nil {
		specs = append(specs, *level.Floor)
	}
	for _, s := range specs {
		if s.Mesh != nil && len(s.Mesh.Indices) > 0 {
			if _, ok := r.models[s.Mesh]; !ok {
				r.models[s.Mesh] = uploadMesh(s.Mesh)
			}
		}
	}

	if err := r.initOverlay(); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("overlay: %w", err)
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, g := range []*gpuMesh{&r.cube, &r.sphere, &r.wire, &r.spider} {
		g.destroy()
	}
	for k, g := range r.models {
		g.destroy()
		delete(r.models, k)
	}
	if r.overlayVBO != 0 {
		gl.DeleteBuffers(1, &r.overlayVBO)
	}
	if r.overlayVAO != 0 {
		gl.DeleteVertexArrays(1, &r.overlayVAO)
	}
	for _, id := range []uint32{r.meshProg, r.overlayProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
}

// BeginScene clears the frame and loads camera and lighting uniforms.
func (r *Renderer) BeginScene(cam Camera3D, light SceneLighting, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := light.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	gl.UseProgram(r.meshProg)
	vp := cam.ViewProjection()
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &vp[0])
	eye := vec32(cam.Eye)
	gl.Uniform3f(r.uEye, eye[0], eye[1], eye[2])
	gl.Uniform3f(r.uAmbient, light.Ambient[0], light.Ambient[1], light.Ambient[2])
	gl.Uniform3f(r.uSunDir, light.SunDir[0], light.SunDir[1], light.SunDir[2])
	gl.Uniform3f(r.uSunColor, light.SunColor[0], light.SunColor[1], light.SunColor[2])
	gl.Uniform3f(r.uFogColor, bg[0], bg[1], bg[2])
	gl.Uniform1f(r.uFogCoef, light.FogCoef)
	r.SetPointLight(light.Lighter)
}

// SetPointLight updates the single point light.
func (r *Renderer) SetPointLight(l PointLight) {
	gl.UseProgram(r.meshProg)
	gl.Uniform3f(r.uLightPos, l.Position[0], l.Position[1], l.Position[2])
	gl.Uniform3f(r.uLightColor, l.Color[0], l.Color[1], l.Color[2])
	gl.Uniform3f(r.uLightAtten, l.Attenuation[0], l.Attenuation[1], l.Attenuation[2])
}

func (r *Renderer) drawMesh(g gpuMesh, model mgl32.Mat4, color mgl32.Vec4, emission mgl32.Vec3, unlit bool) {
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.Uniform4f(r.uColor, color[0], color[1], color[2], color[3])
	gl.Uniform3f(r.uEmission, emission[0], emission[1], emission[2])
	if unlit {
		gl.Uniform1i(r.uUnlit, 1)
	} else {
		gl.Uniform1i(r.uUnlit, 0)
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(g.mode, g.count, gl.UNSIGNED_INT, glOffset(0))
}

// boxTransform maps the unit cube onto b.
func boxTransform(b Box) mgl32.Mat4 {
	c := vec32(b.Center())
	s := vec32(b.Size())
	return mgl32.Translate3D(c[0], c[1], c[2]).Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// fitTransform scales and moves geometry spanning src so it spans dst.
func fitTransform(src, dst Box) mgl32.Mat4 {
	ss := vec32(src.Size())
	ds := vec32(dst.Size())
	var k mgl32.Vec3
	for i := 0; i < 3; i++ {
		k[i] = 1
		if ss[i] > 0 {
			k[i] = ds[i] / ss[i]
		}
	}
	sc := vec32(src.Center())
	dc := vec32(dst.Center())
	return mgl32.Translate3D(dc[0], dc[1], dc[2]).
		Mul4(mgl32.Scale3D(k[0], k[1], k[2])).
		Mul4(mgl32.Translate3D(-sc[0], -sc[1], -sc[2]))
}

// DrawBox draws a solid box.
func (r *Renderer) DrawBox(b Box, color mgl32.Vec4) {
	r.drawMesh(r.cube, boxTransform(b), color, mgl32.Vec3{}, false)
}

// DrawSpec draws a level volume: its model when it has one, else its box.
func (r *Renderer) DrawSpec(s BoxSpec, color mgl32.Vec4) {
	if g, ok := r.models[s.Mesh]; ok {
		r.drawMesh(g, s.Transform, color, mgl32.Vec3{}, false)
		return
	}
	r.DrawBox(s.Box, color)
}

// DrawEllipsoid fills b with a sphere.
func (r *Renderer) DrawEllipsoid(b Box, color mgl32.Vec4, emission mgl32.Vec3) {
	c := vec32(b.Center())
	s := vec32(b.Size()).Mul(0.5)
	xf := mgl32.Translate3D(c[0], c[1], c[2]).Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
	r.drawMesh(r.sphere, xf, color, emission, false)
}

// DrawBoxFrame outlines b with unlit lines.
func (r *Renderer) DrawBoxFrame(b Box, color mgl32.Vec3) {
	r.drawMesh(r.wire, boxTransform(b), mgl32.Vec4{0, 0, 0, 1}, color, true)
}

// DrawSpider draws the pursuer at its position and heading. A level model is
// used as-is; the procedural spider is stretched to fill the capture box.
func (r *Renderer) DrawSpider(s *Spider, spec BoxSpec, color mgl32.Vec4) {
	p := vec32(s.Pos)
	place := mgl32.Translate3D(p[0], p[1], p[2]).Mul4(mgl32.HomogRotate3DY(float32(s.Yaw)))
	if g, ok := r.models[spec.Mesh]; ok {
		r.drawMesh(g, place.Mul4(spec.Transform), color, mgl32.Vec3{}, false)
		return
	}
	r.drawMesh(r.spider, place.Mul4(fitTransform(r.spiderBounds, s.Local)), color, mgl32.Vec3{}, false)
}
