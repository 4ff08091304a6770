// pkg/render/shapes.go
package render

// Point is a vertex relative to a shape's center.
type Point struct {
	X, Y float64
}

// bananaOutline is the enemy silhouette drawn for size 16.
var bananaOutline = []Point{
	{-16, 7}, {-11, 4}, {-1, -4}, {1, -10}, {3, -15}, {8, -15}, {10, -10}, {10, -1},
	{8, 5}, {4, 11}, {-2, 14}, {-11, 15}, {-17, 13}, {-21, 10}, {-19, 7}, {-16, 7},
}

const bananaBaseSize = 16.0

// BananaOutline returns the closed outline scaled for an enemy of the given size,
// translated to (cx, cy).
func BananaOutline(cx, cy, size float64) []Point {
	scale := size / bananaBaseSize
	out := make([]Point, len(bananaOutline))
	for i, p := range bananaOutline {
		out[i] = Point{X: cx + p.X*scale, Y: cy + p.Y*scale}
	}
	return out
}
