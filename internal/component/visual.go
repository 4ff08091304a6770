// component/visual.go
package component

// Particle: искра от попадания или взрыва
type Particle struct {
	Position Position
	Velocity Velocity
	Life     float64
	MaxLife  float64
	Size     float64
}

// Explosion: расширяющееся кольцо взрыва.
// Радиус растёт как MaxRadius*(1-Life/MaxLife).
type Explosion struct {
	Position  Position
	Radius    float64
	MaxRadius float64
	Life      float64
	MaxLife   float64
	Pulse     bool // кольцо импульса вокруг игрока
}

// Alpha: прозрачность эффекта, от 1 до 0
func (e *Explosion) Alpha() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return e.Life / e.MaxLife
}

// Alpha: прозрачность искры, от 1 до 0
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}
