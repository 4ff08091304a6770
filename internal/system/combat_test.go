package system

import (
	"math"
	"testing"

	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/event"
)

func newCombat(r *rig) *CombatSystem {
	return NewCombatSystem(r.world, r.balance, r.dispatcher, r.damage, r.effects)
}

func TestLaserWithoutEnemiesIsNoop(t *testing.T) {
	r := newRig()
	cs := newCombat(r)

	cs.Update(16)

	if len(r.world.Projectiles) != 0 {
		t.Fatalf("projectiles = %d, want 0", len(r.world.Projectiles))
	}
	if got := r.events.count(event.WeaponFired); got != 0 {
		t.Errorf("WeaponFired = %d, want 0", got)
	}
	laser := r.world.Weapon(defs.WeaponLaser)
	if laser.Cooldown != laser.Rate {
		t.Errorf("cooldown = %v, want reset to rate %v", laser.Cooldown, laser.Rate)
	}
}

func TestLaserTargetsNearestEnemy(t *testing.T) {
	r := newRig()
	p := r.world.Player.Position
	r.addEnemy(p.X+100, p.Y, 50)
	r.addEnemy(p.X, p.Y-50, 50)

	newCombat(r).Update(16)

	if len(r.world.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(r.world.Projectiles))
	}
	v := r.world.Projectiles[0].Velocity
	if math.Abs(v.X) > 1e-9 || v.Y >= 0 {
		t.Errorf("laser velocity %+v, want straight up", v)
	}
	if r.world.Projectiles[0].IsExplosive() {
		t.Errorf("laser must not carry a ranged payload")
	}
}

func TestSeekerTargetsSecondNearest(t *testing.T) {
	r := newRig()
	r.world.Weapon(defs.WeaponLaser).Active = false
	seeker := r.world.Weapon(defs.WeaponSeeker)
	seeker.Active, seeker.Level = true, 1
	p := r.world.Player.Position
	r.addEnemy(p.X+30, p.Y, 50)
	r.addEnemy(p.X, p.Y+200, 50)
	r.addEnemy(p.X-300, p.Y, 50)

	newCombat(r).Update(16)

	if len(r.world.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(r.world.Projectiles))
	}
	v := r.world.Projectiles[0].Velocity
	if math.Abs(v.X) > 1e-9 || v.Y <= 0 {
		t.Errorf("seeker velocity %+v, want straight down", v)
	}
}

func TestSeekerWithSingleEnemyTakesIt(t *testing.T) {
	r := newRig()
	r.world.Weapon(defs.WeaponLaser).Active = false
	r.world.Weapon(defs.WeaponSeeker).Active = true
	p := r.world.Player.Position
	r.addEnemy(p.X+50, p.Y, 50)

	newCombat(r).Update(16)

	if len(r.world.Projectiles) != 1 || r.world.Projectiles[0].Velocity.X <= 0 {
		t.Fatalf("seeker did not fire at the only enemy: %+v", r.world.Projectiles)
	}
}

func TestMissileFollowsFacing(t *testing.T) {
	r := newRig()
	r.world.Weapon(defs.WeaponLaser).Active = false
	r.world.Weapon(defs.WeaponMissile).Active = true
	r.world.Player.FacingAngle = math.Pi / 2

	newCombat(r).Update(16)

	if len(r.world.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1 even without enemies", len(r.world.Projectiles))
	}
	m := r.world.Projectiles[0]
	if !m.IsExplosive() {
		t.Fatalf("missile without ranged payload")
	}
	if math.Abs(m.Velocity.X) > 1e-9 || !near(m.Velocity.Y, r.balance.Weapon(defs.WeaponMissile).ProjectileSpeed) {
		t.Errorf("missile velocity %+v", m.Velocity)
	}
	if m.Ranged.Range != 150 || m.Ranged.ExplosionRadius != 50 {
		t.Errorf("payload %+v", *m.Ranged)
	}
}

func TestSpreadFansAroundBearing(t *testing.T) {
	r := newRig()
	r.world.Weapon(defs.WeaponLaser).Active = false
	r.world.Weapon(defs.WeaponSpread).Active = true
	p := r.world.Player.Position
	r.addEnemy(p.X+100, p.Y, 50)

	newCombat(r).Update(16)

	def := r.balance.Weapon(defs.WeaponSpread)
	if len(r.world.Projectiles) != def.SpreadCount {
		t.Fatalf("projectiles = %d, want %d", len(r.world.Projectiles), def.SpreadCount)
	}
	for i, pr := range r.world.Projectiles {
		want := (float64(i) - 1) * def.SpreadAngle
		got := math.Atan2(pr.Velocity.Y, pr.Velocity.X)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("shot %d angle = %v, want %v", i, got, want)
		}
	}
}

func TestPulseHitsAroundPlayer(t *testing.T) {
	r := newRig()
	r.world.Weapon(defs.WeaponLaser).Active = false
	r.world.Weapon(defs.WeaponPulse).Active = true
	p := r.world.Player.Position
	inside := r.addEnemy(p.X+40, p.Y, 50)
	outside := r.addEnemy(p.X+120, p.Y, 50)

	newCombat(r).Update(16)

	if len(r.world.Projectiles) != 0 {
		t.Errorf("pulse must not emit projectiles")
	}
	if inside.HP != 50-r.balance.Weapon(defs.WeaponPulse).Damage {
		t.Errorf("inside HP = %d", inside.HP)
	}
	if outside.HP != 50 {
		t.Errorf("outside HP = %d, want untouched", outside.HP)
	}
	if len(r.world.Explosions) != 1 || !r.world.Explosions[0].Pulse {
		t.Errorf("expected one pulse ring, got %+v", r.world.Explosions)
	}
}

func TestRateNeverBelowFloor(t *testing.T) {
	r := newRig()
	laser := r.world.Weapon(defs.WeaponLaser)
	laser.Rate = 50
	laser.Cooldown = 0

	newCombat(r).Update(16)

	if laser.Cooldown != 50 {
		t.Errorf("cooldown = %v, want 50 (set before clamp)", laser.Cooldown)
	}
	if floor := r.balance.Weapon(defs.WeaponLaser).MinRateMs; laser.Rate != floor {
		t.Errorf("rate = %v, want floor %v", laser.Rate, floor)
	}
}

func TestCooldownCountsDown(t *testing.T) {
	r := newRig()
	p := r.world.Player.Position
	r.addEnemy(p.X+100, p.Y, 500)
	cs := newCombat(r)

	cs.Update(16) // первый выстрел сразу
	for i := 0; i < 10; i++ {
		cs.Update(16)
	}
	if got := r.events.count(event.WeaponFired); got != 1 {
		t.Errorf("fired %d times within rate window, want 1", got)
	}
}
