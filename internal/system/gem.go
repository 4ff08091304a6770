package system

import (
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/utils"
)

// GemSystem притягивает кристаллы к игроку, подбирает их и ведёт «лихорадку».
type GemSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	progression     *ProgressionSystem
}

func NewGemSystem(world *entity.World, balance *defs.Balance, dispatcher *event.Dispatcher, progression *ProgressionSystem) *GemSystem {
	return &GemSystem{world: world, balance: balance, eventDispatcher: dispatcher, progression: progression}
}

func (s *GemSystem) Update(deltaTime float64) {
	s.updateFever(deltaTime)

	p := s.world.Player
	prog := s.balance.Progression
	radius := s.MagnetRadius()
	step := s.magnetStep()
	pickup := p.Radius + prog.GemPickupPadding

	for i := len(s.world.Gems) - 1; i >= 0; i-- {
		g := s.world.Gems[i]
		// Решение о притяжении и подборе, по расстоянию до шага
		dist := g.Position.DistanceTo(p.Position)
		if dist < radius {
			if dx, dy, ok := utils.Direction(g.Position.X, g.Position.Y, p.Position.X, p.Position.Y); ok {
				g.Position.X += dx * step
				g.Position.Y += dy * step
			}
		}
		if dist < pickup {
			s.world.RemoveGemAt(i)
			s.collect(g.Value)
		}
	}
}

func (s *GemSystem) collect(value int) {
	s.eventDispatcher.Emit(event.GemCollected, nil)
	s.registerPickup()
	s.progression.AddXP(value)
}

// MagnetRadius: текущий радиус притяжения с учётом способности и лихорадки
func (s *GemSystem) MagnetRadius() float64 {
	prog := s.balance.Progression
	r := prog.MagnetRadius
	if s.world.Player.MagnetUnlocked && prog.BoostedMagnetRadius > r {
		r = prog.BoostedMagnetRadius
	}
	if s.world.Fever.Active && s.balance.Fever.RadiusMultiplier > 0 {
		r *= s.balance.Fever.RadiusMultiplier
	}
	return r
}

// magnetStep: фиксированный шаг за тик, не зависит от deltaTime
func (s *GemSystem) magnetStep() float64 {
	prog := s.balance.Progression
	step := prog.MagnetSpeed * prog.MagnetStepMs / 1000
	if s.world.Fever.Active && s.balance.Fever.SpeedMultiplier > 0 {
		step *= s.balance.Fever.SpeedMultiplier
	}
	return step
}

func (s *GemSystem) registerPickup() {
	fd := s.balance.Fever
	if fd.Threshold <= 0 {
		return
	}
	f := &s.world.Fever
	now := s.world.Difficulty.ElapsedMs
	kept := f.Pickups[:0]
	for _, t := range f.Pickups {
		if now-t < fd.WindowMs {
			kept = append(kept, t)
		}
	}
	f.Pickups = append(kept, now)

	if !f.Active && len(f.Pickups) > fd.Threshold {
		f.Active = true
		f.Remaining = fd.DurationMs
		f.Pickups = f.Pickups[:0]
		s.eventDispatcher.Emit(event.FeverStarted, nil)
	}
}

func (s *GemSystem) updateFever(deltaTime float64) {
	f := &s.world.Fever
	if !f.Active {
		return
	}
	f.Remaining -= deltaTime
	if f.Remaining <= 0 {
		f.Active = false
		f.Remaining = 0
		s.eventDispatcher.Emit(event.FeverEnded, nil)
	}
}
