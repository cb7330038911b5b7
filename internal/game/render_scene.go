package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Scene colours (linear).
var (
	colFloor      = mgl32.Vec4{0.32, 0.3, 0.28, 1}
	colWallDouble = mgl32.Vec4{0.5, 0.47, 0.44, 1}
	colWallBlock  = mgl32.Vec4{0.38, 0.36, 0.4, 1}
	colEggShell   = mgl32.Vec4{0.85, 0.8, 0.64, 1}
	colEggCharred = mgl32.Vec4{0.08, 0.06, 0.05, 1}
	colSpider     = mgl32.Vec4{0.12, 0.1, 0.1, 1}
	colLighter    = mgl32.Vec4{0.6, 0.6, 0.65, 1}

	emberGlow = mgl32.Vec3{0.6, 0.14, 0.02}
	flameGlow = mgl32.Vec3{1.0, 0.45, 0.08}
)

// Debug frame colours.
var (
	frameWall   = mgl32.Vec3{0.2, 0.9, 0.3}
	frameEgg    = mgl32.Vec3{1.0, 0.9, 0.2}
	frameSpider = mgl32.Vec3{1.0, 0.2, 0.2}
	framePlayer = mgl32.Vec3{0.3, 0.6, 1.0}
)

// SceneCamera aims the camera from the player's eye along the look direction.
func SceneCamera(cam *Camera3D, p *PlayerController, fbW, fbH int) {
	cam.Resize(fbW, fbH)
	cam.SetView(p.Eye, p.FocusPosition())
}

// SceneLight returns this frame's lighting with the lighter in the player's hand.
func SceneLight(base SceneLighting, cam Camera3D) SceneLighting {
	l := base
	l.Lighter = NewPointLight(LighterPosition(cam.Eye, cam.Focus), LighterColor, LighterRadius)
	return l
}

// RenderWorld draws the level, eggs, spider and the held lighter.
func RenderWorld(r *Renderer, s *GameSession, cam Camera3D, light SceneLighting, now float64, fbW, fbH int) {
	// Flame flicker.
	flicker := float32(0.9 + 0.06*math.Sin(now*23) + 0.04*math.Sin(now*37+1.3))
	light.Lighter.Color = light.Lighter.Color.Mul(flicker)
	r.BeginScene(cam, light, fbW, fbH)

	lv := s.Level
	if lv.Floor != nil {
		r.DrawSpec(*lv.Floor, colFloor)
	}
	for _, w := range lv.Walls {
		col := colWallDouble
		if w.Kind == WallBlock {
			col = colWallBlock
		}
		r.DrawSpec(w, col)
	}
	for i, e := range s.Eggs.Eggs {
		if e.Burned {
			glow := emberGlow.Mul(0.6 + 0.4*float32(math.Sin(now*3+float64(i))))
			r.DrawEllipsoid(e.Box, colEggCharred, glow)
			continue
		}
		spec := lv.Eggs[i]
		if _, ok := r.models[spec.Mesh]; ok {
			r.DrawSpec(spec, colEggShell)
			continue
		}
		r.DrawEllipsoid(e.Box, colEggShell, mgl32.Vec3{})
	}
	r.DrawSpider(s.Spider, lv.Spider, colSpider)

	drawLighter(r, light.Lighter.Position, flicker)

	if s.Debug {
		for _, w := range lv.Walls {
			r.DrawBoxFrame(w.Box, frameWall)
		}
		for _, e := range s.Eggs.Eggs {
			r.DrawBoxFrame(e.Box, frameEgg)
		}
		r.DrawBoxFrame(s.Spider.Bounds(), frameSpider)
		body := s.Player.Sphere()
		half := mgl64.Vec3{body.Radius, body.Radius, body.Radius}
		r.DrawBoxFrame(Box{Min: body.Center.Sub(half), Max: body.Center.Add(half)}, framePlayer)
	}
}

// drawLighter draws the lighter body just under the flame and the flame itself.
func drawLighter(r *Renderer, flame mgl32.Vec3, flicker float32) {
	f := vec64(flame)
	body := BoxAt(f.Sub(mgl64.Vec3{0, 0.045, 0}), mgl64.Vec3{0.025, 0.07, 0.025})
	r.DrawBox(body, colLighter)
	tip := BoxAt(f.Add(mgl64.Vec3{0, 0.012, 0}), mgl64.Vec3{0.014, 0.03 * float64(flicker), 0.014})
	r.DrawEllipsoid(tip, mgl32.Vec4{0, 0, 0, 1}, flameGlow.Mul(flicker))
}
