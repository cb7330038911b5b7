package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// assertVecNear compares vectors component-wise within delta.
func assertVecNear(t *testing.T, want, got mgl64.Vec3, delta float64, msgAndArgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if !assert.InDelta(t, want[i], got[i], delta, msgAndArgs...) {
			t.Logf("want %v, got %v", want, got)
			return
		}
	}
}
