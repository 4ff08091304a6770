// internal/defs/weapons.go
package defs

// UpgradeDefinition is what one weapon level adds.
type UpgradeDefinition struct {
	Damage          int     `json:"damage"`
	RateStepMs      float64 `json:"rate_step_ms"`
	ExplosionRadius float64 `json:"explosion_radius"`
	Radius          float64 `json:"radius"`
}

// WeaponDefinition holds the static data for one weapon kind.
type WeaponDefinition struct {
	Damage          int     `json:"damage"`
	RateMs          float64 `json:"rate_ms"`
	MinRateMs       float64 `json:"min_rate_ms"`
	MaxLevel        int     `json:"max_level"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	LifeMs          float64 `json:"life_ms"`
	// Range is the travel distance after which a missile detonates.
	Range           float64 `json:"range"`
	ExplosionRadius float64 `json:"explosion_radius"`
	// Radius is the pulse area around the player.
	Radius       float64           `json:"radius"`
	SpreadCount  int               `json:"spread_count"`
	SpreadAngle  float64           `json:"spread_angle"` // radians between neighbouring shots
	StartsActive bool              `json:"starts_active"`
	Upgrade      UpgradeDefinition `json:"upgrade"`
}
