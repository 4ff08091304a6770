// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"platanus-survivor/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const borderWidth = 1

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает полосу опыта текущего уровня и номер уровня.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, face font.Face, level, xpInLevel, xpPerLevel int) {
	vector.DrawFilledRect(screen, i.X, i.Y, config.HUDBarWidth, config.HUDBarHeight, config.BarBackColor, false)
	if fill := barFill(xpInLevel, xpPerLevel, config.HUDBarWidth); fill > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, fill, config.HUDBarHeight, config.XPBarColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, config.HUDBarWidth, config.HUDBarHeight, borderWidth, borderColor, false)

	text.Draw(screen, "LVL "+strconv.Itoa(level), face, int(i.X)+config.HUDBarWidth+8, int(i.Y)+config.HUDBarHeight, config.TextLightColor)
}
