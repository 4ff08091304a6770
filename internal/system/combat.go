// internal/system/combat.go
package system

import (
	"math"
	"sort"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/event"
)

// CombatSystem ведёт перезарядку всех открытых слотов и стреляет.
type CombatSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	damage          *DamageResolver
	effects         *VisualEffectSystem
}

func NewCombatSystem(world *entity.World, balance *defs.Balance, dispatcher *event.Dispatcher,
	damage *DamageResolver, effects *VisualEffectSystem) *CombatSystem {
	return &CombatSystem{
		world:           world,
		balance:         balance,
		eventDispatcher: dispatcher,
		damage:          damage,
		effects:         effects,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, kind := range defs.WeaponKinds {
		slot := s.world.Weapon(kind)
		if slot == nil || !slot.Active {
			continue
		}
		slot.Cooldown -= deltaTime
		if slot.Cooldown > 0 {
			continue
		}
		slot.Cooldown = slot.Rate
		if s.fire(slot) {
			s.eventDispatcher.Emit(event.WeaponFired, event.WeaponData{Kind: kind, Level: slot.Level})
		}
		if minRate := s.balance.Weapon(kind).MinRateMs; slot.Rate < minRate {
			slot.Rate = minRate
		}
	}
}

// fire возвращает false, если стрелять было не в кого.
func (s *CombatSystem) fire(slot *component.WeaponSlot) bool {
	p := s.world.Player
	switch slot.Kind {
	case defs.WeaponLaser:
		target := s.findNearestEnemy()
		if target == nil {
			return false
		}
		s.emitProjectile(slot, s.bearingTo(target.Position), nil)
	case defs.WeaponSeeker:
		target := s.findSecondNearestEnemy()
		if target == nil {
			return false
		}
		s.emitProjectile(slot, s.bearingTo(target.Position), nil)
	case defs.WeaponSpread:
		target := s.findNearestEnemy()
		if target == nil {
			return false
		}
		center := s.bearingTo(target.Position)
		n := slot.SpreadCount
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			offset := (float64(i) - float64(n-1)/2) * slot.SpreadAngle
			s.emitProjectile(slot, center+offset, nil)
		}
	case defs.WeaponMissile:
		angle := p.FacingAngle
		s.emitProjectile(slot, angle, &component.RangedPayload{
			Target: component.Position{
				X: p.Position.X + math.Cos(angle)*slot.Range,
				Y: p.Position.Y + math.Sin(angle)*slot.Range,
			},
			Range:           slot.Range,
			ExplosionRadius: slot.ExplosionRadius,
		})
	case defs.WeaponPulse:
		s.effects.SpawnExplosion(p.Position.X, p.Position.Y, slot.Radius, true)
		s.damage.ApplyAreaDamage(p.Position.X, p.Position.Y, slot.Radius, slot.Damage)
	default:
		return false
	}
	return true
}

func (s *CombatSystem) emitProjectile(slot *component.WeaponSlot, angle float64, ranged *component.RangedPayload) {
	p := s.world.Player
	s.world.Projectiles = append(s.world.Projectiles, &component.Projectile{
		Kind:     slot.Kind,
		Position: p.Position,
		Velocity: component.Velocity{
			X: math.Cos(angle) * slot.ProjectileSpeed,
			Y: math.Sin(angle) * slot.ProjectileSpeed,
		},
		Damage: slot.Damage,
		Life:   slot.LifeMs,
		Ranged: ranged,
	})
}

// bearingTo: угол от игрока на точку; если точка совпадает с игроком, направление взгляда
func (s *CombatSystem) bearingTo(target component.Position) float64 {
	p := s.world.Player
	dx, dy := target.X-p.Position.X, target.Y-p.Position.Y
	if dx == 0 && dy == 0 {
		return p.FacingAngle
	}
	return math.Atan2(dy, dx)
}

// findNearestEnemy: ближайший к игроку враг, при равенстве, более ранний
func (s *CombatSystem) findNearestEnemy() *component.Enemy {
	var nearest *component.Enemy
	best := math.MaxFloat64
	from := s.world.Player.Position
	for _, e := range s.world.Enemies {
		if d := from.DistanceSqTo(e.Position); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}

// findSecondNearestEnemy: второй по дальности; при одном враге, он сам
func (s *CombatSystem) findSecondNearestEnemy() *component.Enemy {
	switch len(s.world.Enemies) {
	case 0:
		return nil
	case 1:
		return s.world.Enemies[0]
	}
	from := s.world.Player.Position
	sorted := make([]*component.Enemy, len(s.world.Enemies))
	copy(sorted, s.world.Enemies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return from.DistanceSqTo(sorted[i].Position) < from.DistanceSqTo(sorted[j].Position)
	})
	return sorted[1]
}
