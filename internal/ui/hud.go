// internal/ui/hud.go
package ui

import (
	"fmt"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/config"
	"platanus-survivor/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD собирает индикаторы поверх игрового поля
type HUD struct {
	face   font.Face
	large  font.Face
	health *PlayerHealthIndicator
	level  *PlayerLevelIndicator
	wave   *WaveIndicator
	slots  *WeaponIndicator
}

func NewHUD(face, large font.Face) *HUD {
	bottom := float32(config.ScreenHeight - config.HUDMarginY)
	return &HUD{
		face:   face,
		large:  large,
		health: NewPlayerHealthIndicator(config.HUDMarginX, bottom-hpBarHeight-config.HUDBarHeight-6),
		level:  NewPlayerLevelIndicator(config.HUDMarginX, bottom-config.HUDBarHeight),
		wave:   NewWaveIndicator(config.ScreenWidth-config.HUDMarginX, config.HUDMarginY+config.TextLineHeight),
		slots:  NewWeaponIndicator(config.HUDMarginX, config.HUDMarginY+config.TextLineHeight*2+4),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s *app.Snapshot, muted bool) {
	hud := s.HUD
	x, y := config.HUDMarginX, config.HUDMarginY+config.TextLineHeight

	text.Draw(screen, fmt.Sprintf("SCORE %d", hud.Score), h.large, x, y, config.TextLightColor)
	text.Draw(screen, utils.FormatClock(hud.ElapsedMs), h.face, x, y+config.TextLineHeight+2, config.TextLightColor)
	h.wave.Draw(screen, h.large, hud.WaveLevel)
	h.slots.Draw(screen, h.face, s.Weapons)

	if hud.Fever {
		label := "FEVER!"
		fx := (config.ScreenWidth - text.BoundString(h.large, label).Dx()) / 2
		text.Draw(screen, label, h.large, fx, y, config.FeverColor)
	}
	if muted {
		text.Draw(screen, "MUTE", h.face, config.ScreenWidth-config.HUDMarginX-40, y+config.TextLineHeight+2, config.TextLightColor)
	}

	h.health.Draw(screen, h.face, hud.HP, hud.MaxHP)
	h.level.Draw(screen, h.face, hud.Level, hud.XPInLevel, hud.XPPerLevel)
}
