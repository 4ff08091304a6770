package component

import (
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/types"
)

// Enemy: самонаводящийся банан.
type Enemy struct {
	ID           types.EntityID
	Tier         defs.Tier
	Position     Position
	Size         float64
	HitboxRadius float64
	Speed        float64
	HP           int
	MaxHP        int
	ScoreValue   int
	GemCount     int
	GemValue     int
}

// IsBoss сообщает, относится ли враг к боссам
func (e *Enemy) IsBoss() bool {
	return e.Tier == defs.TierBoss
}
