package component

// Gem: кристалл опыта
type Gem struct {
	Position Position
	Value    int
}
