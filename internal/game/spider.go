package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Spider chases the player in a straight line on the XZ plane. It ignores
// walls; only the player is blocked by level geometry.
type Spider struct {
	Pos   mgl64.Vec3
	Yaw   float64 // rotation about +Y, 0 faces +Z
	Speed float64

	// Local bounds of the model, relative to Pos.
	Local Box

	warnCooldown float64
}

func NewSpider(spawn mgl64.Vec3, local Box) *Spider {
	return &Spider{Pos: spawn, Speed: SpiderSpeed, Local: local}
}

// Place teleports the spider and clears its warning cooldown.
func (s *Spider) Place(pos mgl64.Vec3) {
	s.Pos = pos
	s.Yaw = 0
	s.warnCooldown = 0
}

// Update turns toward target and steps at Speed. A target straight above or
// below leaves the spider where it is.
func (s *Spider) Update(target mgl64.Vec3, dt float64) {
	dir, ok := safeNormalize(flatten(target.Sub(s.Pos)))
	if !ok {
		return
	}
	s.Yaw = math.Atan2(dir.X(), dir.Z())
	s.Pos = s.Pos.Add(dir.Mul(s.Speed * dt))
}

// Bounds is the capture volume: the model box grown a little and moved to Pos.
func (s *Spider) Bounds() Box {
	return s.Local.Stretched(SpiderBoundsStretch).MovedBy(s.Pos)
}

// DistanceTo is the horizontal distance to p.
func (s *Spider) DistanceTo(p mgl64.Vec3) float64 {
	return flatten(p.Sub(s.Pos)).Len()
}

// Warn reports whether a "too close" cue should fire this frame.
func (s *Spider) Warn(player mgl64.Vec3, dt float64) bool {
	if s.warnCooldown > 0 {
		s.warnCooldown = math.Max(0, s.warnCooldown-dt)
	}
	if s.warnCooldown > 0 || s.DistanceTo(player) > SpiderWarnDistance {
		return false
	}
	s.warnCooldown = SpiderWarnCooldown
	return true
}
