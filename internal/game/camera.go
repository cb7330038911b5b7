package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera3D is a perspective camera looking from Eye toward Focus.
type Camera3D struct {
	Eye    mgl64.Vec3
	Focus  mgl64.Vec3
	FOV    float64 // vertical, radians
	Aspect float64
}

func NewCamera3D() Camera3D {
	return Camera3D{
		Eye:    mgl64.Vec3{0, 16, -32},
		FOV:    mgl64.DegToRad(CameraFOVDegrees),
		Aspect: float64(WindowWidth) / float64(WindowHeight),
	}
}

// SetView points the camera. A focus equal to the eye is ignored.
func (c *Camera3D) SetView(eye, focus mgl64.Vec3) {
	if eye.Sub(focus).Len() == 0 {
		return
	}
	c.Eye = eye
	c.Focus = focus
}

// Resize updates the aspect ratio; zero-sized framebuffers are ignored.
func (c *Camera3D) Resize(fbW, fbH int) {
	if fbW <= 0 || fbH <= 0 {
		return
	}
	c.Aspect = float64(fbW) / float64(fbH)
}

func (c *Camera3D) View() mgl32.Mat4 {
	return mgl32.LookAtV(vec32(c.Eye), vec32(c.Focus), mgl32.Vec3{0, 1, 0})
}

func (c *Camera3D) Projection() mgl32.Mat4 {
	return mgl32.Perspective(float32(c.FOV), float32(c.Aspect), CameraNear, CameraFar)
}

func (c *Camera3D) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
