package gridmap

import "math"

// Point — точка в пикселях
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// GridPos — координаты клетки
type GridPos struct {
	Row, Col int
}
