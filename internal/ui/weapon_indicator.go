package ui

import (
	"image/color"
	"strconv"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/config"
	"platanus-survivor/internal/defs"
	"platanus-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	slotSize = 22
	slotGap  = 6
)

// WeaponIndicator рисует ряд слотов оружия; открытые закрашены
type WeaponIndicator struct {
	X, Y float32
}

func NewWeaponIndicator(x, y float32) *WeaponIndicator {
	return &WeaponIndicator{X: x, Y: y}
}

func (w *WeaponIndicator) Draw(screen *ebiten.Image, face font.Face, weapons []app.WeaponView) {
	for i, wv := range weapons {
		x := w.X + float32(i)*(slotSize+slotGap)
		clr := WeaponColor(wv.Kind)
		if wv.Active {
			vector.DrawFilledRect(screen, x, w.Y, slotSize, slotSize, render.DarkenColor(clr), false)
			text.Draw(screen, strconv.Itoa(wv.Level), face, int(x)+5, int(w.Y)+slotSize-6, clr)
		}
		vector.StrokeRect(screen, x, w.Y, slotSize, slotSize, borderWidth, clr, false)
	}
}

// WeaponColor: цвет оружия в HUD
func WeaponColor(kind defs.WeaponKind) color.RGBA {
	switch kind {
	case defs.WeaponLaser:
		return config.LaserColor
	case defs.WeaponMissile:
		return config.MissileColor
	case defs.WeaponSpread:
		return config.SpreadColor
	case defs.WeaponSeeker:
		return config.SeekerColor
	case defs.WeaponPulse:
		return config.PulseColor
	}
	return config.TextLightColor
}
