// internal/system/movement.go
package system

import (
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/utils"
)

// MovementSystem ведёт врагов прямо к игроку.
type MovementSystem struct {
	world *entity.World
	field defs.FieldDefinition
}

func NewMovementSystem(world *entity.World, balance *defs.Balance) *MovementSystem {
	return &MovementSystem{world: world, field: balance.Field}
}

func (s *MovementSystem) Update(deltaTime float64) {
	target := s.world.Player.Position
	for _, e := range s.world.Enemies {
		if dx, dy, ok := utils.Direction(e.Position.X, e.Position.Y, target.X, target.Y); ok {
			step := e.Speed * deltaTime / 1000
			// Не проскакиваем игрока
			if d := e.Position.DistanceTo(target); step > d {
				step = d
			}
			e.Position.X += dx * step
			e.Position.Y += dy * step
		}
		e.Position.X = utils.Clamp(e.Position.X, e.Size, s.field.Width-e.Size)
		e.Position.Y = utils.Clamp(e.Position.Y, e.Size, s.field.Height-e.Size)
	}
}
