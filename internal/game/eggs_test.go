package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func testEggs() *EggSet {
	return NewEggSet([]BoxSpec{
		{Name: "a", Box: Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}},
		{Name: "b", Box: Box{Min: mgl64.Vec3{10, 0, 0}, Max: mgl64.Vec3{11, 1, 1}}},
	})
}

func TestEggTryBurn(t *testing.T) {
	es := testEggs()
	atA := Sphere{Center: mgl64.Vec3{0.5, 1.2, 0.5}, Radius: 0.5}

	assert.Nil(t, es.TryBurn(atA, false), "no click, no burn")
	assert.Zero(t, es.BurnedCount())

	assert.Equal(t, []int{0}, es.TryBurn(atA, true))
	assert.Nil(t, es.TryBurn(atA, true), "burning is idempotent")
	assert.Equal(t, 1, es.BurnedCount())
	assert.False(t, es.AllBurned())

	atB := Sphere{Center: mgl64.Vec3{10.5, 1.2, 0.5}, Radius: 0.5}
	assert.Equal(t, []int{1}, es.TryBurn(atB, true))
	assert.True(t, es.AllBurned())

	es.Reset()
	assert.Zero(t, es.BurnedCount())
	assert.False(t, es.AllBurned())
}

func TestEggTryBurnOutOfReach(t *testing.T) {
	es := testEggs()
	away := Sphere{Center: mgl64.Vec3{5, 2, 5}, Radius: 0.5}
	assert.Nil(t, es.TryBurn(away, true))
	assert.Equal(t, -1, es.InReach(away))
}

func TestEggInReachSkipsBurned(t *testing.T) {
	es := testEggs()
	atA := Sphere{Center: mgl64.Vec3{0.5, 1.2, 0.5}, Radius: 0.5}
	assert.Equal(t, 0, es.InReach(atA))
	es.TryBurn(atA, true)
	assert.Equal(t, -1, es.InReach(atA))
}

func TestEmptyEggSetNeverWins(t *testing.T) {
	es := NewEggSet(nil)
	assert.False(t, es.AllBurned())
}
