package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func testSpider(pos mgl64.Vec3) *Spider {
	return NewSpider(pos, Box{Min: mgl64.Vec3{-1, 0, -1}, Max: mgl64.Vec3{1, 2, 1}})
}

func TestSpiderUpdateChases(t *testing.T) {
	s := testSpider(mgl64.Vec3{})
	s.Update(mgl64.Vec3{10, 0, 0}, 1)
	assertVecNear(t, mgl64.Vec3{4, 0, 0}, s.Pos, 1e-9)
	assert.InDelta(t, math.Pi/2, s.Yaw, 1e-9)
}

func TestSpiderUpdateIgnoresHeight(t *testing.T) {
	s := testSpider(mgl64.Vec3{0, -0.62, 0})
	s.Update(mgl64.Vec3{0, 50, 10}, 0.5)
	assertVecNear(t, mgl64.Vec3{0, -0.62, 2}, s.Pos, 1e-9)
	assert.InDelta(t, 0, s.Yaw, 1e-9)
}

func TestSpiderUpdateTargetOverhead(t *testing.T) {
	s := testSpider(mgl64.Vec3{3, 0, 3})
	s.Yaw = 1
	s.Update(mgl64.Vec3{3, 10, 3}, 1)
	assert.Equal(t, mgl64.Vec3{3, 0, 3}, s.Pos)
	assert.Equal(t, 1.0, s.Yaw)
}

func TestSpiderBounds(t *testing.T) {
	s := testSpider(mgl64.Vec3{5, 0, 5})
	b := s.Bounds()
	assertVecNear(t, mgl64.Vec3{3.7, -0.3, 3.7}, b.Min, 1e-9)
	assertVecNear(t, mgl64.Vec3{6.3, 2.3, 6.3}, b.Max, 1e-9)
}

func TestSpiderDistanceIsHorizontal(t *testing.T) {
	s := testSpider(mgl64.Vec3{0, 0, 0})
	assert.InDelta(t, 5, s.DistanceTo(mgl64.Vec3{3, 100, 4}), 1e-9)
}

func TestSpiderWarnCooldown(t *testing.T) {
	s := testSpider(mgl64.Vec3{})
	far := mgl64.Vec3{SpiderWarnDistance + 1, 2, 0}
	near := mgl64.Vec3{1, 2, 0}

	assert.False(t, s.Warn(far, 0.016))
	assert.True(t, s.Warn(near, 0.016))
	assert.False(t, s.Warn(near, 1), "cooling down")
	assert.True(t, s.Warn(near, SpiderWarnCooldown))

	s.Warn(near, 0.016)
	s.Place(mgl64.Vec3{})
	assert.True(t, s.Warn(near, 0.016), "Place clears the cooldown")
}
