package system

import (
	"testing"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/event"
)

func newGems(r *rig) *GemSystem {
	return NewGemSystem(r.world, r.balance, r.dispatcher, newProgression(r))
}

func (r *rig) addGem(x, y float64, value int) *component.Gem {
	g := &component.Gem{Position: component.Position{X: x, Y: y}, Value: value}
	r.world.Gems = append(r.world.Gems, g)
	return g
}

func TestGemMagnetPullsWithinRadius(t *testing.T) {
	r := newRig()
	p := r.world.Player.Position
	pulled := r.addGem(p.X+90, p.Y, 1)
	idle := r.addGem(p.X+150, p.Y, 1)

	newGems(r).Update(16)

	step := r.balance.Progression.MagnetSpeed * r.balance.Progression.MagnetStepMs / 1000
	if !near(pulled.Position.X, p.X+90-step) {
		t.Errorf("pulled gem at %v, want %v", pulled.Position.X, p.X+90-step)
	}
	if idle.Position.X != p.X+150 {
		t.Errorf("gem outside radius moved to %v", idle.Position.X)
	}
}

func TestGemStepIgnoresDeltaTime(t *testing.T) {
	r := newRig()
	p := r.world.Player.Position
	g := r.addGem(p.X+90, p.Y, 1)

	newGems(r).Update(500)

	step := r.balance.Progression.MagnetSpeed * r.balance.Progression.MagnetStepMs / 1000
	if !near(g.Position.X, p.X+90-step) {
		t.Errorf("gem at %v, want one fixed step", g.Position.X)
	}
}

func TestGemCollectedNearPlayer(t *testing.T) {
	r := newRig()
	p := r.world.Player.Position
	r.addGem(p.X+r.world.Player.Radius+4, p.Y, 3)

	newGems(r).Update(16)

	if len(r.world.Gems) != 0 {
		t.Fatalf("gem not collected")
	}
	if r.world.Player.XP != 3 {
		t.Errorf("xp = %d, want 3", r.world.Player.XP)
	}
	if r.events.count(event.GemCollected) != 1 {
		t.Errorf("GemCollected not dispatched")
	}
}

func TestSeveralLevelsInOneTick(t *testing.T) {
	r := newRig()
	p := r.world.Player.Position
	for i := 0; i < 3; i++ {
		r.addGem(p.X, p.Y, 10)
	}

	newGems(r).Update(16)

	if r.world.Player.Level != 4 {
		t.Errorf("level = %d, want 4 (one per gem)", r.world.Player.Level)
	}
	if r.events.count(event.LevelUp) != 3 {
		t.Errorf("LevelUp = %d, want 3", r.events.count(event.LevelUp))
	}
}

func TestMagnetAbilityWidensRadius(t *testing.T) {
	r := newRig()
	gs := newGems(r)
	base := gs.MagnetRadius()

	r.world.Player.MagnetUnlocked = true

	if got := gs.MagnetRadius(); got != r.balance.Progression.BoostedMagnetRadius || got <= base {
		t.Errorf("radius = %v, want %v", got, r.balance.Progression.BoostedMagnetRadius)
	}
}

func TestFeverStartsAndExpires(t *testing.T) {
	r := newRig()
	gs := newGems(r)
	fd := r.balance.Fever
	p := r.world.Player.Position
	base := gs.MagnetRadius()

	for i := 0; i <= fd.Threshold; i++ {
		r.addGem(p.X, p.Y, 0)
	}
	gs.Update(16)

	if !r.world.Fever.Active {
		t.Fatalf("fever not active after %d quick pickups", fd.Threshold+1)
	}
	if got := gs.MagnetRadius(); got != base*fd.RadiusMultiplier {
		t.Errorf("fever radius = %v, want %v", got, base*fd.RadiusMultiplier)
	}

	for elapsed := 0.0; elapsed <= fd.DurationMs; elapsed += 16 {
		gs.Update(16)
	}
	if r.world.Fever.Active {
		t.Errorf("fever did not expire")
	}
	if r.events.count(event.FeverStarted) != 1 || r.events.count(event.FeverEnded) != 1 {
		t.Errorf("fever events %v", r.events.events)
	}
}

func TestSlowPickupsNoFever(t *testing.T) {
	r := newRig()
	gs := newGems(r)
	fd := r.balance.Fever
	p := r.world.Player.Position

	for i := 0; i < 3*fd.Threshold; i++ {
		r.world.Difficulty.ElapsedMs += fd.WindowMs
		r.addGem(p.X, p.Y, 0)
		gs.Update(16)
	}

	if r.world.Fever.Active {
		t.Errorf("fever triggered by spread-out pickups")
	}
}
