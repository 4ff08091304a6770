// component/movement.go
package component

import "math"

// Position: компонент позиции
type Position struct {
	X, Y float64
}

// Velocity: компонент скорости, px/s
type Velocity struct {
	X, Y float64
}

// DistanceTo: евклидово расстояние до другой точки
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// DistanceSqTo: квадрат расстояния, для сравнений без корня
func (p Position) DistanceSqTo(o Position) float64 {
	dx, dy := o.X-p.X, o.Y-p.Y
	return dx*dx + dy*dy
}
