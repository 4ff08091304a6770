package component

// Player: аватар игрока. В мире ровно один.
type Player struct {
	Position    Position
	Velocity    Velocity
	Radius      float64
	Speed       float64
	FacingAngle float64 // радианы, меняется только при движении
	HP          int
	MaxHP       int
	XP          int // накопительный, не сбрасывается при уровне
	Level       int
	Score       int

	MagnetUnlocked bool
}
