package app

import (
	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
)

// HUD: числа для индикаторов
type HUD struct {
	Score      int
	Level      int
	HP         int
	MaxHP      int
	XP         int
	XPInLevel  int // опыт, набранный на текущем уровне
	XPPerLevel int // сколько нужно набрать на текущем уровне
	ElapsedMs  float64
	WaveLevel  int
	Fever      bool
	Phase      component.Phase
	Stats      SessionStats
}

// WeaponView: состояние слота для отрисовки
type WeaponView struct {
	Kind   defs.WeaponKind
	Active bool
	Level  int
}

// Snapshot: копия мира для отрисовки. Изменения копии на мир не влияют.
type Snapshot struct {
	Player      component.Player
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	Gems        []component.Gem
	Particles   []component.Particle
	Explosions  []component.Explosion
	Weapons     []WeaponView
	MagnetRange float64
	HUD         HUD
}

// Snapshot копирует текущее состояние
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		Player:      *w.Player,
		Enemies:     make([]component.Enemy, len(w.Enemies)),
		Projectiles: make([]component.Projectile, len(w.Projectiles)),
		Gems:        make([]component.Gem, len(w.Gems)),
		Particles:   make([]component.Particle, len(w.Particles)),
		Explosions:  make([]component.Explosion, len(w.Explosions)),
		Weapons:     make([]WeaponView, 0, len(defs.WeaponKinds)),
		MagnetRange: g.GemSystem.MagnetRadius(),
	}
	for i, e := range w.Enemies {
		s.Enemies[i] = *e
	}
	for i, p := range w.Projectiles {
		s.Projectiles[i] = *p
		if p.Ranged != nil {
			ranged := *p.Ranged
			s.Projectiles[i].Ranged = &ranged
		}
	}
	for i, gem := range w.Gems {
		s.Gems[i] = *gem
	}
	for i, p := range w.Particles {
		s.Particles[i] = *p
	}
	for i, e := range w.Explosions {
		s.Explosions[i] = *e
	}
	for _, kind := range defs.WeaponKinds {
		slot := w.Weapon(kind)
		s.Weapons = append(s.Weapons, WeaponView{Kind: kind, Active: slot.Active, Level: slot.Level})
	}

	p := w.Player
	per := g.Balance.Progression.XPPerLevel
	prev := (p.Level - 1) * per
	s.HUD = HUD{
		Score:      p.Score,
		Level:      p.Level,
		HP:         p.HP,
		MaxHP:      p.MaxHP,
		XP:         p.XP,
		XPInLevel:  p.XP - prev,
		XPPerLevel: p.Level*per - prev,
		ElapsedMs:  w.Difficulty.ElapsedMs,
		WaveLevel:  w.Difficulty.WaveLevel,
		Fever:      w.Fever.Active,
		Phase:      w.Phase,
		Stats:      g.stats.SessionStats,
	}
	if s.HUD.XPInLevel < 0 {
		s.HUD.XPInLevel = 0
	}
	return s
}
