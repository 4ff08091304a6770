// internal/system/visual_effect.go
package system

import (
	"math"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/utils"
)

// VisualEffectSystem управляет искрами и кольцами взрывов.
// На игровую логику эффекты не влияют.
type VisualEffectSystem struct {
	world   *entity.World
	effects defs.EffectsDefinition
	rng     *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, balance *defs.Balance, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, effects: balance.Effects, rng: rng}
}

// Update двигает искры, гасит их скорость и растит кольца взрывов.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	dt := deltaTime / 1000
	particles := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
		p.Velocity.X *= s.effects.ParticleDamping
		p.Velocity.Y *= s.effects.ParticleDamping
		p.Life -= deltaTime
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	clear(s.world.Particles[len(particles):])
	s.world.Particles = particles

	explosions := s.world.Explosions[:0]
	for _, e := range s.world.Explosions {
		e.Life -= deltaTime
		if e.Life <= 0 {
			continue
		}
		e.Radius = utils.Lerp(0, e.MaxRadius, 1-e.Life/e.MaxLife)
		explosions = append(explosions, e)
	}
	clear(s.world.Explosions[len(explosions):])
	s.world.Explosions = explosions
}

// SpawnSparks разбрасывает count искр из точки
func (s *VisualEffectSystem) SpawnSparks(x, y float64, count int) {
	for i := 0; i < count; i++ {
		angle := s.rng.Angle()
		speed := s.rng.Range(s.effects.ParticleMinSpeed, s.effects.ParticleMaxSpeed)
		life := s.rng.Range(s.effects.ParticleMinLifeMs, s.effects.ParticleMaxLifeMs)
		s.world.Particles = append(s.world.Particles, &component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:     life,
			MaxLife:  life,
			Size:     s.rng.Range(2, 4),
		})
	}
}

// SpawnExplosion добавляет кольцо, растущее до maxRadius
func (s *VisualEffectSystem) SpawnExplosion(x, y, maxRadius float64, pulse bool) {
	s.world.Explosions = append(s.world.Explosions, &component.Explosion{
		Position:  component.Position{X: x, Y: y},
		MaxRadius: maxRadius,
		Life:      s.effects.ExplosionLifeMs,
		MaxLife:   s.effects.ExplosionLifeMs,
		Pulse:     pulse,
	})
}
