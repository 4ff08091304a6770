package ui

import (
	"image/color"

	"platanus-survivor/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Line: строка оверлея
type Line struct {
	Text  string
	Face  font.Face
	Color color.Color
}

// DrawOverlay затемняет экран и рисует строки по центру
func DrawOverlay(screen *ebiten.Image, lines []Line) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	total := 0
	for _, l := range lines {
		total += l.Face.Metrics().Height.Ceil() + 6
	}
	y := (config.ScreenHeight - total) / 2
	for _, l := range lines {
		h := l.Face.Metrics().Height.Ceil()
		y += h
		x := (config.ScreenWidth - text.BoundString(l.Face, l.Text).Dx()) / 2
		text.Draw(screen, l.Text, l.Face, x, y, l.Color)
		y += 6
	}
}
