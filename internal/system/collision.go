package system

import (
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/event"
)

// CollisionSystem: контактный урон от врагов игроку.
type CollisionSystem struct {
	world           *entity.World
	damage          int
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, balance *defs.Balance, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, damage: balance.Player.ContactDamage, eventDispatcher: dispatcher}
}

// Update возвращает true, если в этом тике HP игрока дошло до нуля.
// Каждый перекрывающийся враг бьёт раз в тик, без задержки.
func (s *CollisionSystem) Update() bool {
	p := s.world.Player
	if p.HP <= 0 {
		return false
	}
	for _, e := range s.world.Enemies {
		if p.Position.DistanceTo(e.Position) >= p.Radius+e.HitboxRadius {
			continue
		}
		p.HP -= s.damage
		if p.HP < 0 {
			p.HP = 0
		}
		s.eventDispatcher.Emit(event.PlayerDamaged, event.PlayerDamagedData{Amount: s.damage, HP: p.HP})
		if p.HP == 0 {
			return true
		}
	}
	return false
}
