package interfaces

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . InputSource

// Key: логическая клавиша движения
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
)

// MovementKeys: все клавиши, которые двигают игрока
var MovementKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyA, KeyD, KeyW, KeyS}

// InputSource отвечает, зажата ли клавиша в текущем кадре
type InputSource interface {
	IsDown(key Key) bool
}
