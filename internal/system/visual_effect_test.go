package system

import "testing"

func TestExplosionGrowsAndFades(t *testing.T) {
	r := newRig()
	r.effects.SpawnExplosion(100, 100, 50, false)
	e := r.world.Explosions[0]

	r.effects.Update(r.balance.Effects.ExplosionLifeMs / 2)
	if !near(e.Radius, 25) {
		t.Errorf("radius at half life = %v, want 25", e.Radius)
	}

	r.effects.Update(r.balance.Effects.ExplosionLifeMs / 2)
	if len(r.world.Explosions) != 0 {
		t.Errorf("explosion outlived its life")
	}
}

func TestSparksDampAndDie(t *testing.T) {
	r := newRig()
	r.effects.SpawnSparks(0, 0, 10)
	if len(r.world.Particles) != 10 {
		t.Fatalf("particles = %d, want 10", len(r.world.Particles))
	}
	p := r.world.Particles[0]
	vx := p.Velocity.X

	r.effects.Update(16)
	if !near(p.Velocity.X, vx*r.balance.Effects.ParticleDamping) {
		t.Errorf("velocity not damped: %v", p.Velocity.X)
	}

	r.effects.Update(r.balance.Effects.ParticleMaxLifeMs)
	if len(r.world.Particles) != 0 {
		t.Errorf("particles = %d after max life", len(r.world.Particles))
	}
}
