package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	colWhite  = mgl32.Vec4{1, 1, 1, 1}
	colDim    = mgl32.Vec4{0.7, 0.7, 0.7, 1}
	colRed    = mgl32.Vec4{0.9, 0.2, 0.15, 1}
	colEmber  = mgl32.Vec4{1.0, 0.55, 0.1, 1}
	colEgg    = mgl32.Vec4{0.92, 0.88, 0.74, 1}
	colShadow = mgl32.Vec4{0, 0, 0, 0.55}
	colScreen = mgl32.Vec3{0.04, 0.035, 0.05}
)

// Button is a clickable screen rectangle.
type Button struct {
	X, Y, W, H float64
	Label      string
}

// MenuButton is the single button shown on the title, game-over and clear
// screens, anchored below the window centre.
func MenuButton(label string, fbW, fbH int) Button {
	return Button{
		X:     float64(fbW/2 + ButtonOffsetX),
		Y:     float64(fbH/2 + ButtonOffsetY),
		W:     ButtonWidth,
		H:     ButtonHeight,
		Label: label,
	}
}

// Contains reports whether (x, y) lies inside the button.
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Clicked is true when the click lands on the button.
func (b Button) Clicked(x, y float64, justClicked bool) bool {
	return justClicked && b.Contains(x, y)
}

// ScreenButtonLabel returns the button label for a menu state, or "".
func ScreenButtonLabel(s GameState) string {
	switch s {
	case StateTitle:
		return "StartGame"
	case StateGameOver:
		return "RestartGame"
	case StateGameClear:
		return "BacktoTitle"
	}
	return ""
}

func (r *Renderer) drawButton(b Button, hover bool) {
	fill := mgl32.Vec4{0.16, 0.15, 0.18, 0.95}
	if hover {
		fill = mgl32.Vec4{0.28, 0.22, 0.2, 0.95}
	}
	r.DrawRect(float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill)
	r.DrawRectFrame(float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colDim)
	scale := float32(1.5)
	tx := int(b.X+b.W/2) - TextWidth(b.Label, scale)/2
	ty := int(b.Y+b.H/2) - int(float32(FontCellH)*scale/2)
	r.DrawString(b.Label, tx, ty, scale, colWhite)
}

// drawWeb draws a spider web centred at c, rotated by rot.
func (r *Renderer) drawWeb(c mgl32.Vec2, radius float32, rot float64, alpha float32) {
	const spokes = 12
	const rings = 7
	col := mgl32.Vec4{1, 1, 1, alpha}
	point := func(i int, rr float32) mgl32.Vec2 {
		a := rot + 2*math.Pi*float64(i)/spokes
		return c.Add(mgl32.Vec2{float32(math.Cos(a)), float32(math.Sin(a))}.Mul(rr))
	}
	for i := 0; i < spokes; i++ {
		r.DrawLine(c, point(i, radius), 2, col)
	}
	for k := 1; k <= rings; k++ {
		rr := radius * float32(k) / rings
		for i := 0; i < spokes; i++ {
			r.DrawLine(point(i, rr), point(i+1, rr), 1.5, col)
		}
	}
}

// drawEggRow draws one icon per egg, lit when burned.
func (r *Renderer) drawEggRow(eggs *EggSet, cx, y int, size float32) {
	n := len(eggs.Eggs)
	gap := size * 2.6
	x0 := float32(cx) - gap*float32(n-1)/2
	for i, e := range eggs.Eggs {
		c := mgl32.Vec2{x0 + gap*float32(i), float32(y)}
		r.DrawDisc(c.Add(mgl32.Vec2{2, 3}), size, colShadow)
		col := colEgg
		if e.Burned {
			col = colEmber
		}
		r.DrawDisc(c, size, col)
	}
}

// RenderScreen draws the title, game-over or clear screen.
func RenderScreen(r *Renderer, s *GameSession, cursorX, cursorY float64, fbW, fbH int) {
	r.ClearOverlay(colScreen)
	r.BeginOverlay(fbW, fbH)
	cx, cy := fbW/2, fbH/2

	// Background vignette bands.
	for i := 0; i < 8; i++ {
		a := 0.05 * float32(8-i) / 8
		inset := float32(i) * float32(fbH) / 20
		r.DrawRect(inset, inset, float32(fbW)-2*inset, float32(fbH)-2*inset, mgl32.Vec4{0.3, 0.05, 0.05, a})
	}

	switch s.State {
	case StateTitle:
		r.drawWeb(mgl32.Vec2{float32(cx), float32(cy)}, float32(fbH)*0.6, s.Title.Rotation, float32(s.Title.Alpha))
		r.drawEggRow(s.Eggs, cx, cy+120, 14)
		r.DrawStringCentered("ESCAPE FROM SPIDER", cx+3, cy-157, 5, colShadow)
		r.DrawStringCentered("ESCAPE FROM SPIDER", cx, cy-160, 5, colWhite)
		r.DrawStringCentered("Burn every egg in the nest. Do not get caught.", cx, cy-60, 1.6, colDim)
		r.DrawStringCentered("WASD move   Mouse look   Left click burn", cx, cy+20, 1.4, colDim)

	case StateGameOver:
		r.DrawStringCentered("YOU WERE EATEN", cx, cy-140, 5, colRed)
		r.DrawStringCentered(fmt.Sprintf("Caught %d time(s)", s.Catches), cx, cy-40, 1.8, colDim)

	case StateGameClear:
		r.drawEggRow(s.Eggs, cx, cy+40, 14)
		r.DrawStringCentered("YOU ESCAPED", cx, cy-140, 5, colEmber)
		r.DrawStringCentered("Every egg is ash.", cx, cy-40, 1.8, colDim)
	}

	if label := ScreenButtonLabel(s.State); label != "" {
		b := MenuButton(label, fbW, fbH)
		r.drawButton(b, b.Contains(cursorX, cursorY))
	}
	r.FlushOverlay()
}

// RenderHUD draws the in-game overlay on top of the 3D scene.
func RenderHUD(r *Renderer, s *GameSession, fbW, fbH int) {
	r.BeginOverlay(fbW, fbH)
	cx, cy := fbW/2, fbH/2

	// Crosshair.
	r.DrawRect(float32(cx-1), float32(cy-6), 2, 12, mgl32.Vec4{1, 1, 1, 0.5})
	r.DrawRect(float32(cx-6), float32(cy-1), 12, 2, mgl32.Vec4{1, 1, 1, 0.5})

	eggs := fmt.Sprintf("Eggs %d/%d", s.Eggs.BurnedCount(), len(s.Eggs.Eggs))
	r.DrawString(eggs, 16, 16, 2, colWhite)
	r.drawEggRow(s.Eggs, 16+TextWidth(eggs, 2)+60, 29, 8)

	timeStr := fmt.Sprintf("%.1fs", s.Elapsed)
	r.DrawString(timeStr, fbW-TextWidth(timeStr, 2)-16, 16, 2, colDim)

	if s.EggInReach() >= 0 {
		r.DrawStringCentered("Click to burn the egg", cx, cy+60, 2, colEmber)
	}
	if d := s.Spider.DistanceTo(s.Player.Eye); d < SpiderWarnDistance*1.5 {
		a := float32(clampF(1-d/(SpiderWarnDistance*1.5), 0, 1))
		r.DrawRect(0, 0, float32(fbW), float32(fbH), mgl32.Vec4{0.5, 0, 0, 0.35 * a})
		r.DrawStringCentered("IT IS RIGHT BEHIND YOU", cx, fbH-80, 2, mgl32.Vec4{1, 0.3, 0.3, a})
	}
	if s.Debug {
		p := s.Player.Eye
		dbg := fmt.Sprintf("eye %.1f %.1f %.1f  yaw %.0f  pitch %.0f  spider %.1f",
			p.X(), p.Y(), p.Z(),
			s.Player.Angle*180/math.Pi, s.Player.Pitch*180/math.Pi,
			s.Spider.DistanceTo(p))
		r.DrawString(dbg, 16, fbH-30, 1.2, colDim)
	}
	r.FlushOverlay()
}
