// internal/system/projectile.go
package system

import (
	"math"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
)

// ProjectileSystem двигает снаряды, проверяет истечение и попадания.
type ProjectileSystem struct {
	world   *entity.World
	balance *defs.Balance
	damage  *DamageResolver
	effects *VisualEffectSystem
}

func NewProjectileSystem(world *entity.World, balance *defs.Balance, damage *DamageResolver, effects *VisualEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{world: world, balance: balance, damage: damage, effects: effects}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	dt := deltaTime / 1000
	// С конца: снаряд удаляется на своей итерации
	for i := len(s.world.Projectiles) - 1; i >= 0; i-- {
		p := s.world.Projectiles[i]
		stepX, stepY := p.Velocity.X*dt, p.Velocity.Y*dt
		p.Position.X += stepX
		p.Position.Y += stepY
		p.Life -= deltaTime

		if p.IsExplosive() {
			p.Ranged.Traveled += math.Hypot(stepX, stepY)
			if p.Ranged.Traveled >= p.Ranged.Range || p.Life <= 0 {
				s.damage.Explode(p.Position.X, p.Position.Y, p.Ranged.ExplosionRadius, p.Damage)
				s.world.RemoveProjectileAt(i)
				continue
			}
		} else if p.Life <= 0 || s.outOfBounds(p.Position) {
			s.world.RemoveProjectileAt(i)
			continue
		}

		if s.checkHit(p) {
			s.world.RemoveProjectileAt(i)
		}
	}
}

// checkHit применяет попадание в первого подходящего врага
func (s *ProjectileSystem) checkHit(p *component.Projectile) bool {
	pad := s.balance.Effects.ProjectileHitRadius
	for j, e := range s.world.Enemies {
		if p.Position.DistanceTo(e.Position) >= e.HitboxRadius+pad {
			continue
		}
		if !s.damage.ApplyDamage(j, p.Damage) {
			s.effects.SpawnSparks(p.Position.X, p.Position.Y, s.balance.Effects.HitSparks)
		}
		if p.IsExplosive() {
			s.damage.Explode(p.Position.X, p.Position.Y, p.Ranged.ExplosionRadius, p.Damage)
		}
		return true
	}
	return false
}

func (s *ProjectileSystem) outOfBounds(pos component.Position) bool {
	f := s.balance.Field
	return pos.X < 0 || pos.X > f.Width || pos.Y < 0 || pos.Y > f.Height
}
