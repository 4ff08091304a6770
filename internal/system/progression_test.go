package system

import (
	"testing"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/event"
)

func newProgression(r *rig) *ProgressionSystem {
	return NewProgressionSystem(r.world, r.balance, r.dispatcher, r.rng)
}

func TestLevelThreshold(t *testing.T) {
	r := newRig()
	ps := newProgression(r)

	if ps.AddXP(9) {
		t.Fatalf("leveled up at 9 xp")
	}
	if !ps.AddXP(1) {
		t.Fatalf("no level up at 10 xp")
	}
	if r.world.Player.Level != 2 || r.world.Player.XP != 10 {
		t.Errorf("level %d xp %d, want 2 and 10", r.world.Player.Level, r.world.Player.XP)
	}
	// Опыт накопительный: следующий порог, 20
	if ps.AddXP(9) {
		t.Errorf("leveled up below 20 xp")
	}
}

func TestOneLevelPerPickup(t *testing.T) {
	r := newRig()
	ps := newProgression(r)

	ps.AddXP(100)

	if r.world.Player.Level != 2 {
		t.Errorf("level = %d after one big pickup, want 2", r.world.Player.Level)
	}
}

func TestMissileUnlocksAtLevelFive(t *testing.T) {
	r := newRig()
	ps := newProgression(r)
	r.world.Player.Level = 4
	r.world.Player.XP = 39
	laser := *r.world.Weapon(defs.WeaponLaser)

	ps.AddXP(1)

	missile := r.world.Weapon(defs.WeaponMissile)
	if !missile.Active || missile.Level != 1 {
		t.Errorf("missile %+v, want active level 1", missile)
	}
	if *r.world.Weapon(defs.WeaponLaser) != laser {
		t.Errorf("milestone level also upgraded the laser")
	}
	if r.events.count(event.WeaponUnlocked) != 1 {
		t.Errorf("WeaponUnlocked not dispatched")
	}
}

func TestMagnetMilestone(t *testing.T) {
	r := newRig()
	ps := newProgression(r)
	lvl := r.balance.Progression.MagnetLevel
	r.world.Player.Level = lvl - 1
	r.world.Player.XP = (lvl-1)*r.balance.Progression.XPPerLevel - 1

	ps.AddXP(1)

	if !r.world.Player.MagnetUnlocked {
		t.Errorf("magnet not unlocked at level %d", lvl)
	}
}

func TestRestoreMilestone(t *testing.T) {
	r := newRig()
	ps := newProgression(r)
	prog := r.balance.Progression
	p := r.world.Player
	p.Level = prog.RestoreEvery - 1
	p.XP = p.Level*prog.XPPerLevel - 1
	p.HP = 3

	ps.AddXP(1)

	wantMax := r.balance.Player.MaxHP + prog.MaxHPGrowth
	if p.MaxHP != wantMax || p.HP != wantMax {
		t.Errorf("hp %d/%d, want full %d", p.HP, p.MaxHP, wantMax)
	}
}

func TestRestoreRespectsCap(t *testing.T) {
	r := newRig()
	ps := newProgression(r)
	prog := r.balance.Progression
	p := r.world.Player
	p.MaxHP = prog.MaxHPCap
	p.Level = 2*prog.RestoreEvery - 1
	p.XP = p.Level * prog.XPPerLevel

	ps.AddXP(0)

	if p.MaxHP != prog.MaxHPCap {
		t.Errorf("max hp = %d, want cap %d", p.MaxHP, prog.MaxHPCap)
	}
}

func TestRandomUpgradeOnlyUnlocked(t *testing.T) {
	r := newRig()
	ps := newProgression(r)
	before := r.world.Weapon(defs.WeaponLaser).Damage

	ps.AddXP(10) // уровень 2, вех нет

	laser := r.world.Weapon(defs.WeaponLaser)
	if laser.Level != 2 || laser.Damage != before+r.balance.Weapon(defs.WeaponLaser).Upgrade.Damage {
		t.Errorf("laser %+v was not upgraded", laser)
	}
	for _, kind := range defs.WeaponKinds[1:] {
		if slot := r.world.Weapon(kind); slot.Level != 0 {
			t.Errorf("locked %s upgraded to %d", kind, slot.Level)
		}
	}
	if r.events.count(event.LevelUp) != 1 || r.events.count(event.WeaponUpgraded) != 1 {
		t.Errorf("events %v", r.events.events)
	}
}

func TestNoUpgradeWhenAllMaxed(t *testing.T) {
	r := newRig()
	ps := newProgression(r)
	laser := r.world.Weapon(defs.WeaponLaser)
	laser.Level = r.balance.Weapon(defs.WeaponLaser).MaxLevel
	snapshot := *laser

	ps.AddXP(10)

	if *laser != snapshot {
		t.Errorf("maxed laser changed: %+v", laser)
	}
	if r.events.count(event.WeaponUpgraded) != 0 {
		t.Errorf("upgrade dispatched with nothing eligible")
	}
}

func TestUpgradeFloorsRateAndCapsLevel(t *testing.T) {
	def := defs.DefaultBalance().Weapon(defs.WeaponLaser)
	slot := component.NewWeaponSlot(defs.WeaponLaser, def)

	for i := 0; i < 50; i++ {
		prevDamage := slot.Damage
		UpgradeWeapon(slot, def)
		if slot.Damage < prevDamage {
			t.Fatalf("upgrade reduced damage")
		}
	}
	if slot.Level != def.MaxLevel {
		t.Errorf("level = %d, want max %d", slot.Level, def.MaxLevel)
	}
	if slot.Rate != def.MinRateMs {
		t.Errorf("rate = %v, want floor %v", slot.Rate, def.MinRateMs)
	}
	if UpgradeWeapon(slot, def) {
		t.Errorf("upgrade past max level reported success")
	}
}
