package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerHandleMouse(t *testing.T) {
	p := NewPlayerController(mgl64.Vec3{}, 0.3, false)

	p.HandleMouse(100, 0)
	assert.InDelta(t, mgl64.DegToRad(30), p.Angle, 1e-9)

	p.HandleMouse(0, -50)
	assert.InDelta(t, mgl64.DegToRad(15), p.Pitch, 1e-9, "moving the mouse up looks up")

	p.HandleMouse(0, -10000)
	assert.InDelta(t, mgl64.DegToRad(PitchLimitDegrees), p.Pitch, 1e-9)

	p.HandleMouse(0, 10000)
	assert.InDelta(t, -mgl64.DegToRad(PitchLimitDegrees), p.Pitch, 1e-9)
}

func TestPlayerHandleMouseInvertY(t *testing.T) {
	p := NewPlayerController(mgl64.Vec3{}, 0.3, true)
	p.HandleMouse(0, -50)
	assert.InDelta(t, -mgl64.DegToRad(15), p.Pitch, 1e-9)
}

func TestPlayerDirection(t *testing.T) {
	p := NewPlayerController(mgl64.Vec3{1, 2, 3}, 0.3, false)
	assertVecNear(t, mgl64.Vec3{1, 0, 0}, p.Direction(), 1e-12)
	assertVecNear(t, mgl64.Vec3{2, 2, 3}, p.FocusPosition(), 1e-12)

	p.Angle = math.Pi / 2
	assertVecNear(t, mgl64.Vec3{0, 0, 1}, p.Direction(), 1e-9)

	p.Angle = 0
	p.Pitch = math.Pi / 6
	assert.InDelta(t, 0.5, p.Direction().Y(), 1e-9)
}

func TestPlayerPlaceResetsView(t *testing.T) {
	p := NewPlayerController(mgl64.Vec3{}, 0.3, false)
	p.HandleMouse(40, 40)
	p.Place(mgl64.Vec3{5, 2, 5})
	assert.Equal(t, mgl64.Vec3{5, 2, 5}, p.Eye)
	assert.Zero(t, p.Angle)
	assert.Zero(t, p.Pitch)
}

func TestPlayerUpdatePositionFree(t *testing.T) {
	tests := []struct {
		name string
		in   MoveIntent
		want mgl64.Vec3
	}{
		{"forward", MoveIntent{Forward: true}, mgl64.Vec3{4, 2, 0}},
		{"back", MoveIntent{Back: true}, mgl64.Vec3{-4, 2, 0}},
		{"strafe right", MoveIntent{Right: true}, mgl64.Vec3{0, 2, 4}},
		{"strafe left", MoveIntent{Left: true}, mgl64.Vec3{0, 2, -4}},
		{"diagonal is not normalized", MoveIntent{Forward: true, Right: true}, mgl64.Vec3{4, 2, 4}},
		{"opposites cancel", MoveIntent{Forward: true, Back: true}, mgl64.Vec3{0, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayerController(mgl64.Vec3{0, 2, 0}, 0.3, false)
			p.UpdatePosition(tt.in, 0.5, nil)
			assertVecNear(t, tt.want, p.Eye, 1e-9)
		})
	}
}

func TestPlayerUpdatePositionBlocked(t *testing.T) {
	wall := Box{Min: mgl64.Vec3{0.55, 0, -10}, Max: mgl64.Vec3{1, 4, 10}}
	p := NewPlayerController(mgl64.Vec3{0, 2, 0}, 0.3, false)

	moved := p.UpdatePosition(MoveIntent{Forward: true}, 0.01, []Box{wall})
	assert.False(t, moved)
	assert.Equal(t, mgl64.Vec3{0, 2, 0}, p.Eye)
}

func TestPlayerUpdatePositionSlides(t *testing.T) {
	wall := Box{Min: mgl64.Vec3{0.55, 0, -10}, Max: mgl64.Vec3{1, 4, 10}}
	p := NewPlayerController(mgl64.Vec3{0, 2, 0}, 0.3, false)

	moved := p.UpdatePosition(MoveIntent{Forward: true, Right: true}, 0.01, []Box{wall})
	require.True(t, moved)
	assert.InDelta(t, 0, p.Eye.X(), 1e-12)
	assert.InDelta(t, 0.08, p.Eye.Z(), 1e-9)
}

func TestPlayerUpdatePositionIdle(t *testing.T) {
	p := NewPlayerController(mgl64.Vec3{0, 2, 0}, 0.3, false)
	assert.False(t, p.UpdatePosition(MoveIntent{}, 0.016, nil))
}
