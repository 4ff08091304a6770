// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"platanus-survivor/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const hpBarHeight = 16

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует полосу и подпись HP.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, hp, maxHP int) {
	vector.DrawFilledRect(screen, i.X, i.Y, config.HUDBarWidth, hpBarHeight, config.BarBackColor, false)
	if fill := barFill(hp, maxHP, config.HUDBarWidth); fill > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, fill, hpBarHeight, config.HPBarColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, config.HUDBarWidth, hpBarHeight, borderWidth, borderColor, false)

	label := fmt.Sprintf("HP %d/%d", max(hp, 0), maxHP)
	text.Draw(screen, label, face, int(i.X)+config.HUDBarWidth+8, int(i.Y)+hpBarHeight-3, config.TextLightColor)
}

// barFill: ширина заполненной части, не больше width
func barFill(value, total int, width float32) float32 {
	if total <= 0 || value <= 0 {
		return 0
	}
	if value >= total {
		return width
	}
	return width * float32(value) / float32(total)
}
