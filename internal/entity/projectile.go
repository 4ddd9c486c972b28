// internal/entity/projectile.go
package entity

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/types"
	"image/color"
)

// Projectile — самонаводящийся снаряд
type Projectile struct {
	ID types.EntityID
	component.Position
	Target component.TargetRef
	Source types.EntityID // башня или враг, выпустивший снаряд
	Damage float64
	Speed  float64
	Size   float64
	Slow   *component.SlowPayload
	Color  color.RGBA
	Trail  []component.Position
	Active bool
}

// IsEnemyShot — снаряд стреляющего врага, летит в башню
func (p *Projectile) IsEnemyShot() bool {
	return p.Target.Kind == component.TargetTower
}

func (p *Projectile) pushTrail(maxLen int) {
	p.Trail = append(p.Trail, p.Position)
	if len(p.Trail) > maxLen {
		p.Trail = p.Trail[len(p.Trail)-maxLen:]
	}
}

// MoveTowards shifts the projectile step pixels toward (x, y) and records the
// previous position in the trail.
func (p *Projectile) MoveTowards(x, y, dist, step float64, trailLen int) {
	if dist <= 0 {
		return
	}
	p.pushTrail(trailLen)
	p.X += (x - p.X) / dist * step
	p.Y += (y - p.Y) / dist * step
}
