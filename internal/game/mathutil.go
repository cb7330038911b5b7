package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}

// eerp interpolates exponentially between a and b (both > 0).
func eerp(a, b, t float64) float64 {
	return a * math.Pow(b/a, t)
}

// srgbToLinear removes the sRGB transfer curve from a single channel.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// direction returns the look vector for a yaw/pitch pair (right-handed,
// Y up). Yaw 0 looks down +X; positive yaw turns right, toward +Z.
func direction(angle, pitch float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(angle), math.Sin(pitch), math.Sin(angle)}
}

// horizontalDirection is direction with the pitch ignored.
func horizontalDirection(angle float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}
}

// flatten zeroes the Y component.
func flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// safeNormalize returns v/|v| and false when v is (near) zero.
func safeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}
