package component

// Phase: фаза сессии
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Difficulty: состояние директора сложности
type Difficulty struct {
	ElapsedMs       float64
	WaveLevel       int
	SpawnIntervalMs float64
	SpawnTimer      float64
	BossCooldown    float64
}

// Fever: временное усиление магнита после серии подборов
type Fever struct {
	Pickups   []float64 // время подборов в окне, мс
	Active    bool
	Remaining float64
}
