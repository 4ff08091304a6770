package component

import "platanus-survivor/internal/defs"

// WeaponSlot: состояние одного вида оружия. Слот на каждый вид ровно один.
type WeaponSlot struct {
	Kind     defs.WeaponKind
	Active   bool
	Level    int // 0: закрыто
	Damage   int
	Cooldown float64 // мс до следующего выстрела
	Rate     float64 // мс между выстрелами

	ProjectileSpeed float64
	LifeMs          float64
	Range           float64
	ExplosionRadius float64
	Radius          float64
	SpreadCount     int
	SpreadAngle     float64
}

// NewWeaponSlot создаёт слот по определению. Открытые с начала слоты получают уровень 1
// и стреляют в первом же тике.
func NewWeaponSlot(kind defs.WeaponKind, def defs.WeaponDefinition) *WeaponSlot {
	slot := &WeaponSlot{
		Kind:            kind,
		Damage:          def.Damage,
		Rate:            def.RateMs,
		ProjectileSpeed: def.ProjectileSpeed,
		LifeMs:          def.LifeMs,
		Range:           def.Range,
		ExplosionRadius: def.ExplosionRadius,
		Radius:          def.Radius,
		SpreadCount:     def.SpreadCount,
		SpreadAngle:     def.SpreadAngle,
	}
	if def.StartsActive {
		slot.Active = true
		slot.Level = 1
	}
	return slot
}
