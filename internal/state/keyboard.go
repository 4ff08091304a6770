package state

import (
	"platanus-survivor/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

var keyMap = map[interfaces.Key]ebiten.Key{
	interfaces.KeyLeft:  ebiten.KeyArrowLeft,
	interfaces.KeyRight: ebiten.KeyArrowRight,
	interfaces.KeyUp:    ebiten.KeyArrowUp,
	interfaces.KeyDown:  ebiten.KeyArrowDown,
	interfaces.KeyA:     ebiten.KeyA,
	interfaces.KeyD:     ebiten.KeyD,
	interfaces.KeyW:     ebiten.KeyW,
	interfaces.KeyS:     ebiten.KeyS,
}

// Keyboard: источник ввода поверх клавиатуры ebiten
type Keyboard struct{}

func (Keyboard) IsDown(key interfaces.Key) bool {
	k, ok := keyMap[key]
	return ok && ebiten.IsKeyPressed(k)
}

// isMovementKey сообщает, двигает ли клавиша игрока
func isMovementKey(k ebiten.Key) bool {
	for _, mk := range keyMap {
		if mk == k {
			return true
		}
	}
	return false
}
