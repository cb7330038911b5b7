package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

// MoveIntent is the WASD state for one frame.
type MoveIntent struct {
	Forward, Back, Left, Right bool
}

// PlayerController owns the first-person eye and its orientation.
type PlayerController struct {
	Eye   mgl64.Vec3
	Angle float64 // yaw, radians
	Pitch float64 // radians, clamped to ±PitchLimitDegrees

	Radius      float64
	Speed       float64
	Sensitivity float64 // radians per mouse pixel
	InvertY     bool
}

func NewPlayerController(spawn mgl64.Vec3, sensitivityDeg float64, invertY bool) *PlayerController {
	return &PlayerController{
		Eye:         spawn,
		Radius:      PlayerRadius,
		Speed:       PlayerSpeed,
		Sensitivity: mgl64.DegToRad(sensitivityDeg),
		InvertY:     invertY,
	}
}

// Place puts the eye at p and resets the view to look down +X.
func (p *PlayerController) Place(pos mgl64.Vec3) {
	p.Eye = pos
	p.Angle = 0
	p.Pitch = 0
}

// HandleMouse turns the view by a cursor delta in pixels.
func (p *PlayerController) HandleMouse(dx, dy float64) {
	p.Angle += dx * p.Sensitivity
	if p.InvertY {
		p.Pitch += dy * p.Sensitivity
	} else {
		p.Pitch -= dy * p.Sensitivity
	}
	limit := mgl64.DegToRad(PitchLimitDegrees)
	p.Pitch = clampF(p.Pitch, -limit, limit)
}

func (p *PlayerController) Direction() mgl64.Vec3 {
	return direction(p.Angle, p.Pitch)
}

// FocusPosition is the point the camera looks at.
func (p *PlayerController) FocusPosition() mgl64.Vec3 {
	return p.Eye.Add(p.Direction())
}

func (p *PlayerController) Sphere() Sphere {
	return Sphere{Center: p.Eye, Radius: p.Radius}
}

// moveDirection sums the WASD directions. The result is not normalized,
// so diagonal movement is faster, as it always was.
func (p *PlayerController) moveDirection(in MoveIntent) mgl64.Vec3 {
	strafe := mgl64.DegToRad(StrafeAngleDegrees)
	var dir mgl64.Vec3
	if in.Forward {
		dir = dir.Add(horizontalDirection(p.Angle))
	}
	if in.Left {
		dir = dir.Add(horizontalDirection(p.Angle - strafe))
	}
	if in.Back {
		dir = dir.Sub(horizontalDirection(p.Angle))
	}
	if in.Right {
		dir = dir.Add(horizontalDirection(p.Angle + strafe))
	}
	return dir
}

// UpdatePosition moves the eye for one frame. A step is taken only where the
// body sphere stays clear of every collider; when the full step is blocked the
// X and Z components are tried on their own so the player slides along walls.
// Returns true if the eye moved.
func (p *PlayerController) UpdatePosition(in MoveIntent, dt float64, colliders []Box) bool {
	step := p.moveDirection(in).Mul(p.Speed * dt)
	if step.Len() == 0 {
		return false
	}
	candidates := [...]mgl64.Vec3{
		step,
		{step.X(), 0, 0},
		{0, 0, step.Z()},
	}
	for _, c := range candidates {
		if c.Len() == 0 {
			continue
		}
		next := p.Eye.Add(c)
		if (Sphere{Center: next, Radius: p.Radius}).IntersectsAny(colliders) < 0 {
			p.Eye = next
			return true
		}
	}
	return false
}
