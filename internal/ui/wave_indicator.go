package ui

import (
	"platanus-survivor/internal/config"
	"platanus-survivor/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами,
// выровненный по правому краю.
type WaveIndicator struct {
	Right, Y int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(right, y int) *WaveIndicator {
	return &WaveIndicator{Right: right, Y: y}
}

// Draw рисует "WAVE <n>" с тенью.
func (w *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave int) {
	label := "WAVE " + utils.ToRoman(wave)
	x := w.Right - text.BoundString(face, label).Dx()
	text.Draw(screen, label, face, x+1, w.Y+1, config.EnemyStrokeColor)
	text.Draw(screen, label, face, x, w.Y, config.TextLightColor)
}
