package game

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// buildFontAtlas rasterizes printable ASCII into a FontCols x FontRows grid.
// Cell 0 is solid white and backs every untextured overlay shape.
func buildFontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	draw.Draw(img, image.Rect(0, 0, FontCellW, FontCellH), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.White), Face: face}
	for c := 32; c < 127; c++ {
		x := (c % FontCols) * FontCellW
		y := (c / FontCols) * FontCellH
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	return img
}

// initOverlay uploads the font atlas and sets up the 2D pipeline.
func (r *Renderer) initOverlay() error {
	atlas := buildFontAtlas()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(FontAtlasW), int32(FontAtlasH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.atlasTex = tex

	prog, err := linkProgram("overlay", overlayVertSrc, overlayFragSrc)
	if err != nil {
		return fmt.Errorf("overlay program: %w", err)
	}
	r.overlayProg = prog
	gl.UseProgram(prog)
	r.overlayURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.overlayUTex = gl.GetUniformLocation(prog, gl.Str("uAtlas\x00"))
	gl.Uniform1i(r.overlayUTex, 0)

	// Overlay VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxOverlayVerts*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.overlayVAO = vao
	r.overlayVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// BeginOverlay switches to 2D drawing in framebuffer pixels.
func (r *Renderer) BeginOverlay(fbW, fbH int) {
	r.overlayW, r.overlayH = fbW, fbH
	r.overlayBuf = r.overlayBuf[:0]
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// ClearOverlay clears the frame for screens that draw no 3D scene.
func (r *Renderer) ClearOverlay(col mgl32.Vec3) {
	gl.ClearColor(col[0], col[1], col[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// FlushOverlay draws every queued overlay vertex.
func (r *Renderer) FlushOverlay() {
	if len(r.overlayBuf) == 0 {
		return
	}
	gl.UseProgram(r.overlayProg)
	gl.Uniform2f(r.overlayURes, float32(r.overlayW), float32(r.overlayH))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.BindVertexArray(r.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)

	const floatsPerVert = 8
	buf := r.overlayBuf
	for len(buf) > 0 {
		n := len(buf) / floatsPerVert
		if n > MaxOverlayVerts {
			n = MaxOverlayVerts - MaxOverlayVerts%3
		}
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*floatsPerVert*4, gl.Ptr(buf))
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
		buf = buf[n*floatsPerVert:]
	}
	r.overlayBuf = r.overlayBuf[:0]
	gl.BindVertexArray(0)
}

// quad queues a textured quad from four corners (TL, TR, BR, BL).
func (r *Renderer) quad(p [4]mgl32.Vec2, uv [4]mgl32.Vec2, col mgl32.Vec4) {
	for _, i := range [6]int{0, 1, 3, 1, 2, 3} {
		r.overlayBuf = append(r.overlayBuf,
			p[i][0], p[i][1], uv[i][0], uv[i][1], col[0], col[1], col[2], col[3])
	}
}

func whiteUV() [4]mgl32.Vec2 {
	u := float32(FontCellW) * 0.5 / float32(FontAtlasW)
	v := float32(FontCellH) * 0.5 / float32(FontAtlasH)
	uv := mgl32.Vec2{u, v}
	return [4]mgl32.Vec2{uv, uv, uv, uv}
}

// DrawRect fills an axis-aligned rectangle in screen pixels.
func (r *Renderer) DrawRect(x, y, w, h float32, col mgl32.Vec4) {
	r.quad([4]mgl32.Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, whiteUV(), col)
}

// DrawRectFrame outlines a rectangle with the given line thickness.
func (r *Renderer) DrawRectFrame(x, y, w, h, t float32, col mgl32.Vec4) {
	r.DrawRect(x, y, w, t, col)
	r.DrawRect(x, y+h-t, w, t, col)
	r.DrawRect(x, y+t, t, h-2*t, col)
	r.DrawRect(x+w-t, y+t, t, h-2*t, col)
}

// DrawLine draws a thick segment.
func (r *Renderer) DrawLine(a, b mgl32.Vec2, thickness float32, col mgl32.Vec4) {
	d := b.Sub(a)
	if d.Len() == 0 {
		return
	}
	n := mgl32.Vec2{-d[1], d[0]}.Normalize().Mul(thickness * 0.5)
	r.quad([4]mgl32.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, whiteUV(), col)
}

// DrawDisc draws a filled circle as a triangle fan of quads.
func (r *Renderer) DrawDisc(c mgl32.Vec2, radius float32, col mgl32.Vec4) {
	const segs = 24
	uv := whiteUV()
	for i := 0; i < segs; i++ {
		a0 := 2 * math.Pi * float64(i) / segs
		a1 := 2 * math.Pi * float64(i+1) / segs
		p0 := c.Add(mgl32.Vec2{float32(math.Cos(a0)), float32(math.Sin(a0))}.Mul(radius))
		p1 := c.Add(mgl32.Vec2{float32(math.Cos(a1)), float32(math.Sin(a1))}.Mul(radius))
		r.quad([4]mgl32.Vec2{c, p0, p1, c}, uv, col)
	}
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col mgl32.Vec4) {
	if ch < 32 || ch > 126 {
		return
	}
	c := int(ch)
	column := c % FontCols
	row := c / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale
	r.quad(
		[4]mgl32.Vec2{{sx, sy}, {sx + w, sy}, {sx + w, sy + h}, {sx, sy + h}},
		[4]mgl32.Vec2{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}},
		col,
	)
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col mgl32.Vec4) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// DrawStringCentered centres a single line on cx.
func (r *Renderer) DrawStringCentered(text string, cx, sy int, scale float32, col mgl32.Vec4) {
	r.DrawString(text, cx-TextWidth(text, scale)/2, sy, scale, col)
}

// TextWidth returns the pixel width of the longest line.
func TextWidth(text string, scale float32) int {
	longest, cur := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			cur = 0
			continue
		}
		cur++
		if cur > longest {
			longest = cur
		}
	}
	return int(float32(longest*FontCellW) * scale)
}
