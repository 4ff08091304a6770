// internal/utils/math.go
package utils

import "math"

// DiagonalFactor: множитель скорости при движении по диагонали (1/√2)
const DiagonalFactor = math.Sqrt2 / 2

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Direction возвращает единичный вектор от (x0,y0) к (x1,y1).
// Для совпадающих точек ok == false.
func Direction(x0, y0, x1, y1 float64) (dx, dy float64, ok bool) {
	dx, dy = x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0, false
	}
	return dx / l, dy / l, true
}
