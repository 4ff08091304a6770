package component

import "platanus-survivor/internal/defs"

// Projectile: снаряд. Поля дальнобойных взрывных снарядов вынесены в Ranged.
type Projectile struct {
	Kind     defs.WeaponKind
	Position Position
	Velocity Velocity
	Damage   int
	Life     float64 // мс

	Ranged *RangedPayload
}

// RangedPayload описывает ракету, которая взрывается при попадании или пройдя Range.
type RangedPayload struct {
	Target          Position
	Traveled        float64
	Range           float64
	ExplosionRadius float64
}

// IsExplosive: снаряд детонирует при попадании и при истечении
func (p *Projectile) IsExplosive() bool {
	return p.Ranged != nil
}
