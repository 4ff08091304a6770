package defs

// PlayerDefinition describes the avatar at the start of a session.
type PlayerDefinition struct {
	StartX        float64 `json:"start_x"`
	StartY        float64 `json:"start_y"`
	Radius        float64 `json:"radius"`
	Speed         float64 `json:"speed"` // px/s
	MaxHP         int     `json:"max_hp"`
	ContactDamage int     `json:"contact_damage"` // per overlapping enemy per tick
}

// WeaponUnlock opens a weapon slot when the player reaches Level.
type WeaponUnlock struct {
	Level int        `json:"level"`
	Kind  WeaponKind `json:"kind"`
}

// ProgressionDefinition covers XP, level milestones and gem magnetism.
type ProgressionDefinition struct {
	XPPerLevel int `json:"xp_per_level"`

	WeaponUnlocks []WeaponUnlock `json:"weapon_unlocks"`
	MagnetLevel   int            `json:"magnet_level"`
	RestoreEvery  int            `json:"restore_every"`
	MaxHPGrowth   int            `json:"max_hp_growth"`
	MaxHPCap      int            `json:"max_hp_cap"`

	MagnetRadius        float64 `json:"magnet_radius"`
	BoostedMagnetRadius float64 `json:"boosted_magnet_radius"`
	MagnetSpeed         float64 `json:"magnet_speed"`   // px/s
	MagnetStepMs        float64 `json:"magnet_step_ms"` // fixed step per tick
	GemPickupPadding    float64 `json:"gem_pickup_padding"`
	GemScatter          float64 `json:"gem_scatter"`
}

// FeverDefinition is the temporary magnet boost after a burst of pickups.
type FeverDefinition struct {
	WindowMs         float64 `json:"window_ms"`
	Threshold        int     `json:"threshold"`
	DurationMs       float64 `json:"duration_ms"`
	RadiusMultiplier float64 `json:"radius_multiplier"`
	SpeedMultiplier  float64 `json:"speed_multiplier"`
}

// EffectsDefinition holds hit detection padding and cosmetic tuning.
type EffectsDefinition struct {
	ProjectileHitRadius float64 `json:"projectile_hit_radius"`
	HitSparks           int     `json:"hit_sparks"`
	DeathSparks         int     `json:"death_sparks"`
	ExplosionSparks     int     `json:"explosion_sparks"`
	ExplosionLifeMs     float64 `json:"explosion_life_ms"`
	ParticleDamping     float64 `json:"particle_damping"`
	ParticleMinSpeed    float64 `json:"particle_min_speed"`
	ParticleMaxSpeed    float64 `json:"particle_max_speed"`
	ParticleMinLifeMs   float64 `json:"particle_min_life_ms"`
	ParticleMaxLifeMs   float64 `json:"particle_max_life_ms"`
}
