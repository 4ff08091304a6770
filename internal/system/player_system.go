// internal/system/player_system.go
package system

import (
	"math"

	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/interfaces"
	"platanus-survivor/internal/utils"
)

// PlayerSystem двигает игрока по вводу и держит его в границах поля.
type PlayerSystem struct {
	world *entity.World
	field defs.FieldDefinition
	input interfaces.InputSource
}

func NewPlayerSystem(world *entity.World, balance *defs.Balance, input interfaces.InputSource) *PlayerSystem {
	return &PlayerSystem{world: world, field: balance.Field, input: input}
}

// ReadIntent переводит зажатые клавиши в направление.
// Компоненты в {-1, 0, 1}, диагональ уже нормирована.
func ReadIntent(input interfaces.InputSource) (vx, vy float64) {
	if input == nil {
		return 0, 0
	}
	if input.IsDown(interfaces.KeyLeft) || input.IsDown(interfaces.KeyA) {
		vx = -1
	}
	if input.IsDown(interfaces.KeyRight) || input.IsDown(interfaces.KeyD) {
		vx = 1
	}
	if input.IsDown(interfaces.KeyUp) || input.IsDown(interfaces.KeyW) {
		vy = -1
	}
	if input.IsDown(interfaces.KeyDown) || input.IsDown(interfaces.KeyS) {
		vy = 1
	}
	if vx != 0 && vy != 0 {
		vx *= utils.DiagonalFactor
		vy *= utils.DiagonalFactor
	}
	return vx, vy
}

func (s *PlayerSystem) Update(deltaTime float64) {
	vx, vy := ReadIntent(s.input)
	s.Move(vx, vy, deltaTime)
}

// Move сдвигает игрока на направление (vx, vy) за deltaTime мс.
func (s *PlayerSystem) Move(vx, vy, deltaTime float64) {
	p := s.world.Player
	p.Velocity.X = vx * p.Speed
	p.Velocity.Y = vy * p.Speed
	p.Position.X += p.Velocity.X * deltaTime / 1000
	p.Position.Y += p.Velocity.Y * deltaTime / 1000

	p.Position.X = utils.Clamp(p.Position.X, p.Radius, s.field.Width-p.Radius)
	p.Position.Y = utils.Clamp(p.Position.Y, p.Radius, s.field.Height-p.Radius)

	// Без движения направление взгляда сохраняется
	if vx != 0 || vy != 0 {
		p.FacingAngle = math.Atan2(vy, vx)
	}
}
