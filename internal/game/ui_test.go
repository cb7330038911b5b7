package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuButtonPlacement(t *testing.T) {
	b := MenuButton("StartGame", WindowWidth, WindowHeight)
	assert.Equal(t, 580.0, b.X)
	assert.Equal(t, 610.0, b.Y)
	assert.Equal(t, 150.0, b.W)
	assert.Equal(t, 50.0, b.H)
}

func TestButtonContains(t *testing.T) {
	b := Button{X: 10, Y: 20, W: 100, H: 40}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top-left corner", 10, 20, true},
		{"inside", 60, 40, true},
		{"right edge is outside", 110, 40, false},
		{"above", 60, 19.9, false},
		{"below", 60, 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.x, tt.y))
		})
	}
	assert.False(t, b.Clicked(60, 40, false), "hover without a click")
	assert.True(t, b.Clicked(60, 40, true))
}

func TestScreenButtonLabel(t *testing.T) {
	assert.Equal(t, "StartGame", ScreenButtonLabel(StateTitle))
	assert.Equal(t, "RestartGame", ScreenButtonLabel(StateGameOver))
	assert.Equal(t, "BacktoTitle", ScreenButtonLabel(StateGameClear))
	assert.Empty(t, ScreenButtonLabel(StateGameplay))
}
