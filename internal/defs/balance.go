// internal/defs/balance.go
package defs

import (
	"fmt"
	"math"

	"platanus-survivor/internal/config"
)

// FieldDefinition is the playfield size in pixels.
type FieldDefinition struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Balance is the complete set of gameplay tables.
type Balance struct {
	Field       FieldDefinition                 `json:"field"`
	Player      PlayerDefinition                `json:"player"`
	Weapons     map[WeaponKind]WeaponDefinition `json:"weapons"`
	Tiers       map[Tier]TierDefinition         `json:"tiers"`
	Difficulty  DifficultyDefinition            `json:"difficulty"`
	Progression ProgressionDefinition           `json:"progression"`
	Fever       FeverDefinition                 `json:"fever"`
	Effects     EffectsDefinition               `json:"effects"`
}

// DefaultBalance returns the built-in tables.
func DefaultBalance() *Balance {
	return &Balance{
		Field: FieldDefinition{Width: config.ScreenWidth, Height: config.ScreenHeight},
		Player: PlayerDefinition{
			StartX:        config.ScreenWidth / 2,
			StartY:        config.ScreenHeight / 2,
			Radius:        16,
			Speed:         120,
			MaxHP:         100,
			ContactDamage: 5,
		},
		Weapons: map[WeaponKind]WeaponDefinition{
			WeaponLaser: {
				Damage: 15, RateMs: 1000, MinRateMs: 300, MaxLevel: 10,
				ProjectileSpeed: 400, LifeMs: 1000, StartsActive: true,
				Upgrade: UpgradeDefinition{Damage: 5, RateStepMs: 100},
			},
			WeaponMissile: {
				Damage: 30, RateMs: 3000, MinRateMs: 1500, MaxLevel: 10,
				ProjectileSpeed: 250, LifeMs: 2000, Range: 150, ExplosionRadius: 50,
				Upgrade: UpgradeDefinition{Damage: 10, RateStepMs: 200, ExplosionRadius: 10},
			},
			WeaponSpread: {
				Damage: 8, RateMs: 1400, MinRateMs: 500, MaxLevel: 8,
				ProjectileSpeed: 350, LifeMs: 900, SpreadCount: 3, SpreadAngle: math.Pi / 12,
				Upgrade: UpgradeDefinition{Damage: 3, RateStepMs: 100},
			},
			WeaponSeeker: {
				Damage: 20, RateMs: 1600, MinRateMs: 600, MaxLevel: 8,
				ProjectileSpeed: 450, LifeMs: 1200,
				Upgrade: UpgradeDefinition{Damage: 6, RateStepMs: 120},
			},
			WeaponPulse: {
				Damage: 8, RateMs: 2000, MinRateMs: 900, MaxLevel: 6, Radius: 80,
				Upgrade: UpgradeDefinition{Damage: 4, RateStepMs: 150, Radius: 10},
			},
		},
		Tiers: map[Tier]TierDefinition{
			TierNormal: {
				Size: 16, HitboxRadius: 6,
				BaseSpeed: 30, SpeedPerWave: 4.5, MaxSpeedBonus: 60,
				SpeedVarianceMin: 1, SpeedVarianceMax: 1.667,
				BaseHP: 12, HPGrowthPerWave: 0.17, MaxHPMultiplier: 6,
				ScoreValue: 10, GemCount: 1, GemValue: 1,
				MinLevel: 1, BaseWeight: 100, MaxWeight: 100,
			},
			TierRed: {
				Size: 16, HitboxRadius: 7,
				BaseSpeed: 55, SpeedPerWave: 5, MaxSpeedBonus: 70,
				SpeedVarianceMin: 1, SpeedVarianceMax: 1.3,
				BaseHP: 10, HPGrowthPerWave: 0.15, MaxHPMultiplier: 5,
				ScoreValue: 20, GemCount: 2, GemValue: 1,
				MinLevel: 3, BaseWeight: 10, WeightPerLevel: 5, MaxWeight: 40,
			},
			TierBlue: {
				Size: 22, HitboxRadius: 10,
				BaseSpeed: 22, SpeedPerWave: 3, MaxSpeedBonus: 40,
				SpeedVarianceMin: 1, SpeedVarianceMax: 1.2,
				BaseHP: 40, HPGrowthPerWave: 0.2, MaxHPMultiplier: 6,
				ScoreValue: 30, GemCount: 3, GemValue: 1,
				MinLevel: 6, BaseWeight: 8, WeightPerLevel: 4, MaxWeight: 30,
			},
			TierBoss: {
				Size: 40, HitboxRadius: 24,
				BaseSpeed: 18, SpeedPerWave: 1.5, MaxSpeedBonus: 25,
				SpeedVarianceMin: 1, SpeedVarianceMax: 1,
				BaseHP: 400, HPGrowthPerWave: 0.25, MaxHPMultiplier: 8,
				ScoreValue: 200, GemCount: 10, GemValue: 2,
				MinLevel: 10,
			},
		},
		Difficulty: DifficultyDefinition{
			WaveDurationMs:  15000,
			BaseSpawnMs:     500,
			SpawnStepMs:     30,
			MinSpawnMs:      200,
			EarlyPhaseMs:    45000,
			EarlyMultiplier: 2,
			BossLevel:       10,
			BossEvery:       5,
			BossCooldownMs:  2000,
		},
		Progression: ProgressionDefinition{
			XPPerLevel: 10,
			WeaponUnlocks: []WeaponUnlock{
				{Level: 5, Kind: WeaponMissile},
				{Level: 8, Kind: WeaponSpread},
				{Level: 11, Kind: WeaponSeeker},
				{Level: 14, Kind: WeaponPulse},
			},
			MagnetLevel:         7,
			RestoreEvery:        10,
			MaxHPGrowth:         20,
			MaxHPCap:            200,
			MagnetRadius:        100,
			BoostedMagnetRadius: 180,
			MagnetSpeed:         200,
			MagnetStepMs:        16,
			GemPickupPadding:    5,
			GemScatter:          8,
		},
		Fever: FeverDefinition{
			WindowMs:         2000,
			Threshold:        8,
			DurationMs:       5000,
			RadiusMultiplier: 2,
			SpeedMultiplier:  2,
		},
		Effects: EffectsDefinition{
			ProjectileHitRadius: 5,
			HitSparks:           5,
			DeathSparks:         8,
			ExplosionSparks:     20,
			ExplosionLifeMs:     300,
			ParticleDamping:     0.95,
			ParticleMinSpeed:    100,
			ParticleMaxSpeed:    200,
			ParticleMinLifeMs:   300,
			ParticleMaxLifeMs:   500,
		},
	}
}

// Weapon returns the definition for kind; zero value if missing.
func (b *Balance) Weapon(kind WeaponKind) WeaponDefinition {
	return b.Weapons[kind]
}

// Validate rejects tables the simulation cannot run with.
func (b *Balance) Validate() error {
	if b.Field.Width <= 0 || b.Field.Height <= 0 {
		return fmt.Errorf("field must be positive, got %vx%v", b.Field.Width, b.Field.Height)
	}
	if b.Player.Radius <= 0 || b.Player.MaxHP <= 0 {
		return fmt.Errorf("player radius and max hp must be positive")
	}
	if 2*b.Player.Radius > b.Field.Width || 2*b.Player.Radius > b.Field.Height {
		return fmt.Errorf("player radius %v does not fit the field", b.Player.Radius)
	}
	if b.Progression.XPPerLevel <= 0 {
		return fmt.Errorf("xp_per_level must be positive, got %d", b.Progression.XPPerLevel)
	}
	for _, kind := range WeaponKinds {
		def, ok := b.Weapons[kind]
		if !ok {
			return fmt.Errorf("weapon %s: missing definition", kind)
		}
		if def.RateMs <= 0 || def.MinRateMs <= 0 {
			return fmt.Errorf("weapon %s: rate and min rate must be positive", kind)
		}
		if def.MinRateMs > def.RateMs {
			return fmt.Errorf("weapon %s: min rate %v above base rate %v", kind, def.MinRateMs, def.RateMs)
		}
		if def.MaxLevel < 1 {
			return fmt.Errorf("weapon %s: max level must be at least 1", kind)
		}
		u := def.Upgrade
		if u.Damage < 0 || u.RateStepMs < 0 || u.ExplosionRadius < 0 || u.Radius < 0 {
			return fmt.Errorf("weapon %s: upgrade steps must not be negative", kind)
		}
	}
	for t := Tier(0); t < TierCount; t++ {
		def, ok := b.Tiers[t]
		if !ok {
			return fmt.Errorf("tier %s: missing definition", t)
		}
		if def.Size <= 0 || def.HitboxRadius <= 0 || def.BaseHP <= 0 {
			return fmt.Errorf("tier %s: size, hitbox and hp must be positive", t)
		}
		if 2*def.Size > b.Field.Width || 2*def.Size > b.Field.Height {
			return fmt.Errorf("tier %s: size %v does not fit the field", t, def.Size)
		}
		if def.SpeedVarianceMax < def.SpeedVarianceMin {
			return fmt.Errorf("tier %s: speed variance range is inverted", t)
		}
		if def.MaxSpeedBonus < 0 {
			return fmt.Errorf("tier %s: max speed bonus must not be negative", t)
		}
		if def.MaxHPMultiplier < 1 {
			return fmt.Errorf("tier %s: max hp multiplier must be at least 1, got %v", t, def.MaxHPMultiplier)
		}
	}
	d := b.Difficulty
	if d.WaveDurationMs <= 0 || d.MinSpawnMs <= 0 {
		return fmt.Errorf("wave duration and min spawn interval must be positive")
	}
	if d.BossEvery <= 0 {
		return fmt.Errorf("boss_every must be positive, got %d", d.BossEvery)
	}
	return nil
}
