// internal/defs/enemies.go
package defs

// TierDefinition holds all the static data for one enemy tier.
type TierDefinition struct {
	Size         float64 `json:"size"`
	HitboxRadius float64 `json:"hitbox_radius"`

	BaseSpeed        float64 `json:"base_speed"`
	SpeedPerWave     float64 `json:"speed_per_wave"`
	MaxSpeedBonus    float64 `json:"max_speed_bonus"`
	SpeedVarianceMin float64 `json:"speed_variance_min"`
	SpeedVarianceMax float64 `json:"speed_variance_max"`

	BaseHP          int     `json:"base_hp"`
	HPGrowthPerWave float64 `json:"hp_growth_per_wave"`
	MaxHPMultiplier float64 `json:"max_hp_multiplier"`

	ScoreValue int `json:"score_value"`
	GemCount   int `json:"gem_count"`
	GemValue   int `json:"gem_value"`

	// Spawn weighting by player level.
	MinLevel       int `json:"min_level"`
	BaseWeight     int `json:"base_weight"`
	WeightPerLevel int `json:"weight_per_level"`
	MaxWeight      int `json:"max_weight"`
}
