package tty

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/component"
	"platanus-survivor/internal/config"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/interfaces"
	"platanus-survivor/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const explosionRingPoints = 16

// ToCell переводит координаты поля в клетку сетки cols x rows
func ToCell(x, y float64, cols, rows int) (int, int, bool) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	cx := int(x / config.ScreenWidth * float64(cols))
	cy := int(y / config.ScreenHeight * float64(rows))
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return 0, 0, false
	}
	return cx, cy, true
}

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// EnemyGlyph: символ банана по тиру
func EnemyGlyph(t defs.Tier) rune {
	if t == defs.TierBoss {
		return 'B'
	}
	return ')'
}

// ProjectileGlyph: символ снаряда по виду оружия
func ProjectileGlyph(k defs.WeaponKind) rune {
	switch k {
	case defs.WeaponLaser:
		return '-'
	case defs.WeaponMissile:
		return '!'
	case defs.WeaponSpread:
		return '\''
	case defs.WeaponSeeker:
		return 'o'
	}
	return '.'
}

func projectileColor(k defs.WeaponKind) color.RGBA {
	switch k {
	case defs.WeaponLaser:
		return config.LaserColor
	case defs.WeaponMissile:
		return config.MissileColor
	case defs.WeaponSpread:
		return config.SpreadColor
	case defs.WeaponSeeker:
		return config.SeekerColor
	}
	return config.PulseColor
}

// HUDLine: строка состояния внизу экрана
func HUDLine(s *app.Snapshot, muted bool) string {
	h := s.HUD
	var b strings.Builder
	fmt.Fprintf(&b, "SCORE %d  %s  LVL %d  HP %d/%d  XP %d/%d  WAVE %s",
		h.Score, utils.FormatClock(h.ElapsedMs), h.Level, max(h.HP, 0), h.MaxHP,
		h.XPInLevel, h.XPPerLevel, utils.ToRoman(h.WaveLevel))
	b.WriteString("  [")
	for _, w := range s.Weapons {
		if w.Active {
			fmt.Fprintf(&b, "%s%d", strings.ToUpper(w.Kind.String()[:1]), w.Level)
		} else {
			b.WriteByte('.')
		}
	}
	b.WriteByte(']')
	if h.Fever {
		b.WriteString("  FEVER!")
	}
	if muted {
		b.WriteString("  MUTE")
	}
	return b.String()
}

// Compose рисует снимок в кадр: поле сверху, HUD в нижних строках
func Compose(f *Frame, s *app.Snapshot, muted bool) {
	f.Clear()
	rows := f.Rows - config.TerminalHUDRows
	if rows <= 0 {
		return
	}
	put := func(p component.Position, r rune, st tcell.Style) {
		if cx, cy, ok := ToCell(p.X, p.Y, f.Cols, rows); ok {
			f.Set(cx, cy, r, st)
		}
	}

	for i := range s.Particles {
		put(s.Particles[i].Position, '.', style(config.SparkColor))
	}
	for i := range s.Explosions {
		e := &s.Explosions[i]
		clr := config.ExplosionColor
		if e.Pulse {
			clr = config.PulseColor
		}
		for k := 0; k < explosionRingPoints; k++ {
			a := 2 * math.Pi * float64(k) / explosionRingPoints
			put(component.Position{X: e.Position.X + math.Cos(a)*e.Radius, Y: e.Position.Y + math.Sin(a)*e.Radius}, '*', style(clr))
		}
	}
	for i := range s.Gems {
		put(s.Gems[i].Position, '+', style(config.GemColor))
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		put(e.Position, EnemyGlyph(e.Tier), style(config.TierColors[e.Tier]).Bold(e.IsBoss()))
	}
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		put(p.Position, ProjectileGlyph(p.Kind), style(projectileColor(p.Kind)))
	}
	put(s.Player.Position, '@', style(config.PlayerColor).Bold(true))

	f.Text(0, rows, HUDLine(s, muted), style(config.TextLightColor).Reverse(true))
}

// ComposeMenu: стартовый экран
func ComposeMenu(f *Frame) {
	f.Clear()
	mid := f.Rows / 2
	f.CenterText(mid-1, "PLATANUS SURVIVOR", style(config.TierColors[0]).Bold(true))
	f.CenterText(mid+1, "PRESS START", style(config.TextLightColor))
	f.CenterText(mid+3, "arrows/wasd move, m mute, p pause, esc quit", style(config.TextLightColor))
}

// ComposeGameOver рисует итог поверх кадра
func ComposeGameOver(f *Frame, s *app.Snapshot, scores []interfaces.ScoreEntry) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("SCORE %d  TIME %s  LVL %d", s.HUD.Score, utils.FormatClock(s.HUD.ElapsedMs), s.HUD.Level),
	}
	for i, e := range scores {
		lines = append(lines, fmt.Sprintf("%2d. %7d  %s", i+1, e.Score, utils.FormatClock(e.TimeMs)))
	}
	lines = append(lines, "press any non-movement key to restart")

	top := utils.ClampInt((f.Rows-len(lines))/2, 0, f.Rows)
	for i, l := range lines {
		st := style(config.TextLightColor)
		if i == 0 {
			st = style(config.GameOverTextColor).Bold(true)
		}
		f.CenterText(top+i, l, st)
	}
}

// ComposePaused: отметка паузы поверх поля
func ComposePaused(f *Frame) {
	f.CenterText(f.Rows/2, " PAUSED ", style(config.TextLightColor).Reverse(true))
}
