package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box in world units.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxAt builds a box from its centre and full size.
func BoxAt(center, size mgl64.Vec3) Box {
	h := size.Mul(0.5)
	return Box{Min: center.Sub(h), Max: center.Add(h)}
}

func (b Box) Center() mgl64.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }
func (b Box) Size() mgl64.Vec3   { return b.Max.Sub(b.Min) }

// Valid reports whether Min <= Max on every axis and nothing is NaN.
func (b Box) Valid() bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(b.Min[i]) || math.IsNaN(b.Max[i]) || b.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Stretched grows the box by s on every side.
func (b Box) Stretched(s float64) Box {
	d := mgl64.Vec3{s, s, s}
	return Box{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Scaled scales the box size by s about its centre.
func (b Box) Scaled(s float64) Box {
	return BoxAt(b.Center(), b.Size().Mul(s))
}

func (b Box) MovedBy(v mgl64.Vec3) Box {
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Union returns the smallest box containing both.
func (b Box) Union(o Box) Box {
	return Box{
		Min: mgl64.Vec3{math.Min(b.Min[0], o.Min[0]), math.Min(b.Min[1], o.Min[1]), math.Min(b.Min[2], o.Min[2])},
		Max: mgl64.Vec3{math.Max(b.Max[0], o.Max[0]), math.Max(b.Max[1], o.Max[1]), math.Max(b.Max[2], o.Max[2])},
	}
}

// Overlaps checks if two boxes overlap on all three axes.
func (b Box) Overlaps(o Box) bool {
	return b.Max.X() >= o.Min.X() && b.Min.X() <= o.Max.X() &&
		b.Max.Y() >= o.Min.Y() && b.Min.Y() <= o.Max.Y() &&
		b.Max.Z() >= o.Min.Z() && b.Min.Z() <= o.Max.Z()
}

// ClosestPoint clamps p into the box.
func (b Box) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		clampF(p[0], b.Min[0], b.Max[0]),
		clampF(p[1], b.Min[1], b.Max[1]),
		clampF(p[2], b.Min[2], b.Max[2]),
	}
}

// Sphere is used for the player body.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Intersects reports whether the sphere touches or penetrates the box.
func (s Sphere) Intersects(b Box) bool {
	d := s.Center.Sub(b.ClosestPoint(s.Center))
	return d.Dot(d) <= s.Radius*s.Radius
}

// IntersectsAny returns the index of the first box hit, or -1.
func (s Sphere) IntersectsAny(boxes []Box) int {
	for i, b := range boxes {
		if s.Intersects(b) {
			return i
		}
	}
	return -1
}
