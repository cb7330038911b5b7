package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// PointLight mirrors the shader's light block.
type PointLight struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	Attenuation mgl32.Vec3 // constant, linear, quadratic
}

// NewPointLight builds a light whose falloff is tuned for radius r.
func NewPointLight(pos mgl64.Vec3, color mgl32.Vec3, r float64) PointLight {
	return PointLight{
		Position:    vec32(pos),
		Color:       color,
		Attenuation: mgl32.Vec3{1, float32(2 / r), float32(1 / (r * r))},
	}
}

// LighterColor is the flame tint.
var LighterColor = mgl32.Vec3{1.0, 0.2, 0.0}

// LighterPosition places the lighter just in front of the eye, a little to
// the right and below the line of sight.
func LighterPosition(eye, focus mgl64.Vec3) mgl64.Vec3 {
	forward, ok := safeNormalize(focus.Sub(eye))
	if !ok {
		return eye
	}
	offset := mgl64.Vec3{}
	if right, ok := safeNormalize(forward.Cross(mgl64.Vec3{0, 1, 0})); ok {
		offset = right.Mul(LighterSide)
	}
	offset[1] -= LighterDrop
	return eye.Add(forward.Mul(LighterForward)).Add(offset)
}

// SceneLighting is the per-frame global light state.
type SceneLighting struct {
	Background mgl32.Vec3
	Ambient    mgl32.Vec3
	SunDir     mgl32.Vec3
	SunColor   mgl32.Vec3
	FogCoef    float32
	Lighter    PointLight
}

// DefaultSceneLighting is the dim, foggy cave look.
func DefaultSceneLighting() SceneLighting {
	bg := float32(srgbToLinear(BackgroundGray))
	return SceneLighting{
		Background: mgl32.Vec3{bg, bg, bg},
		Ambient:    mgl32.Vec3{AmbientLevel, AmbientLevel, AmbientLevel},
		SunDir:     mgl32.Vec3{1, -1, -1}.Normalize(),
		SunColor:   mgl32.Vec3{SunLevel, SunLevel, SunLevel},
		FogCoef:    float32(eerp(FogCoefMin, FogCoefMax, FogParam)),
	}
}
