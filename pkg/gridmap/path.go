// pkg/gridmap/path.go
package gridmap

import (
	"fmt"
	"math"
)

// Path is the fixed polyline enemies walk along. Consecutive waypoints share
// a row or a column, so every segment is axis-aligned.
type Path struct {
	grid      *Grid
	waypoints []GridPos
}

// NewPath строит путь по списку клеток и размечает его на поле.
func NewPath(grid *Grid, waypoints []GridPos) (*Path, error) {
	for i := 1; i < len(waypoints); i++ {
		a, b := waypoints[i-1], waypoints[i]
		if a.Row != b.Row && a.Col != b.Col {
			return nil, fmt.Errorf("segment %d (%d,%d)->(%d,%d) is not axis-aligned", i-1, a.Row, a.Col, b.Row, b.Col)
		}
	}
	p := &Path{grid: grid, waypoints: append([]GridPos(nil), waypoints...)}
	p.markOnGrid()
	return p, nil
}

// DefaultWaypoints возвращает стандартную змейку для поля rows × cols
// (рассчитана на 40 × 18, на других размерах точки прижимаются к границам).
func DefaultWaypoints(rows, cols int) []GridPos {
	middleRow := rows / 2
	upperRow := 4
	lowerRow := 13

	points := []GridPos{
		{Row: middleRow, Col: 0},
		{Row: middleRow, Col: 8},
		{Row: upperRow, Col: 8},
		{Row: upperRow, Col: 16},
		{Row: middleRow, Col: 16},
		{Row: middleRow, Col: 24},
		{Row: lowerRow, Col: 24},
		{Row: lowerRow, Col: 32},
		{Row: middleRow, Col: 32},
		{Row: middleRow, Col: 39},
	}
	for i := range points {
		points[i].Row = clampInt(points[i].Row, 0, rows-1)
		points[i].Col = clampInt(points[i].Col, 0, cols-1)
	}
	return points
}

// NewDefaultPath builds the default route for the grid size.
func NewDefaultPath(grid *Grid) *Path {
	p := &Path{grid: grid}
	p.Rebuild(grid)
	return p
}

// Rebuild пересчитывает стандартный путь после изменения размеров поля.
func (p *Path) Rebuild(grid *Grid) {
	p.grid = grid
	p.waypoints = DefaultWaypoints(grid.Rows, grid.Cols)
	p.markOnGrid()
}

func (p *Path) markOnGrid() {
	p.grid.ClearPath()
	for _, wp := range p.waypoints {
		p.grid.SetPath(wp.Row, wp.Col, true)
	}
	for i := 0; i < len(p.waypoints)-1; i++ {
		start, end := p.waypoints[i], p.waypoints[i+1]
		if start.Row == end.Row {
			for col := min(start.Col, end.Col); col <= max(start.Col, end.Col); col++ {
				p.grid.SetPath(start.Row, col, true)
			}
		} else {
			for row := min(start.Row, end.Row); row <= max(start.Row, end.Row); row++ {
				p.grid.SetPath(row, start.Col, true)
			}
		}
	}
}

// Len — число точек маршрута
func (p *Path) Len() int {
	return len(p.waypoints)
}

// Waypoints returns a copy of the grid waypoints.
func (p *Path) Waypoints() []GridPos {
	return append([]GridPos(nil), p.waypoints...)
}

// WaypointPixel returns the pixel center of waypoint i, false past the end.
func (p *Path) WaypointPixel(i int) (Point, bool) {
	if i < 0 || i >= len(p.waypoints) {
		return Point{}, false
	}
	wp := p.waypoints[i]
	return p.grid.CellCenter(wp.Row, wp.Col), true
}

// PixelWaypoints — все точки маршрута в пикселях
func (p *Path) PixelWaypoints() []Point {
	pts := make([]Point, len(p.waypoints))
	for i, wp := range p.waypoints {
		pts[i] = p.grid.CellCenter(wp.Row, wp.Col)
	}
	return pts
}

// Start и End — концы маршрута
func (p *Path) Start() (Point, bool) { return p.WaypointPixel(0) }
func (p *Path) End() (Point, bool)   { return p.WaypointPixel(len(p.waypoints) - 1) }

// IsPathCell reports whether (row, col) lies on the route.
func (p *Path) IsPathCell(row, col int) bool {
	for i := 0; i < len(p.waypoints); i++ {
		wp := p.waypoints[i]
		if wp.Row == row && wp.Col == col {
			return true
		}
		if i == len(p.waypoints)-1 {
			break
		}
		next := p.waypoints[i+1]
		if wp.Row == next.Row && row == wp.Row && col >= min(wp.Col, next.Col) && col <= max(wp.Col, next.Col) {
			return true
		}
		if wp.Col == next.Col && col == wp.Col && row >= min(wp.Row, next.Row) && row <= max(wp.Row, next.Row) {
			return true
		}
	}
	return false
}

// TotalLength — длина маршрута в пикселях
func (p *Path) TotalLength() float64 {
	total := 0.0
	pts := p.PixelWaypoints()
	for i := 0; i < len(pts)-1; i++ {
		total += pts[i].Distance(pts[i+1])
	}
	return total
}

// Progress projects (x, y) onto the closest segment and returns the fraction
// of the total length travelled at that point, in [0, 1]. On equal distance
// the earlier segment wins. A zero-length path always yields 0.
func (p *Path) Progress(x, y float64) float64 {
	pts := p.PixelWaypoints()
	total := p.TotalLength()
	if total == 0 {
		return 0
	}

	minDistance := math.Inf(1)
	accumulated := 0.0
	progress := 0.0
	for i := 0; i < len(pts)-1; i++ {
		start, end := pts[i], pts[i+1]
		dx := end.X - start.X
		dy := end.Y - start.Y
		lengthSq := dx*dx + dy*dy
		if lengthSq == 0 {
			continue
		}
		segLen := math.Sqrt(lengthSq)

		t := ((x-start.X)*dx + (y-start.Y)*dy) / lengthSq
		t = math.Max(0, math.Min(1, t))

		closestX := start.X + t*dx
		closestY := start.Y + t*dy
		distance := math.Hypot(x-closestX, y-closestY)
		if distance < minDistance {
			minDistance = distance
			progress = (accumulated + t*segLen) / total
		}
		accumulated += segLen
	}
	return progress
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
