// pkg/gridmap/grid.go
package gridmap

import "math"

// Cell — состояние одной клетки поля
type Cell struct {
	Occupied bool // На клетке стоит башня
	IsPath   bool // Клетка принадлежит дороге врагов
}

// Grid is the fixed-size placement matrix of the playfield.
type Grid struct {
	Rows     int
	Cols     int
	CellSize float64
	cells    [][]Cell
}

// NewGrid создаёт пустое поле rows × cols
func NewGrid(cols, rows int, cellSize float64) *Grid {
	g := &Grid{CellSize: cellSize}
	g.Resize(cols, rows)
	return g
}

// Resize пересоздаёт матрицу целиком. Вся занятость и разметка дороги
// сбрасываются: вызывающий код обязан заново разметить путь и башни.
func (g *Grid) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g.Cols = cols
	g.Rows = rows
	g.cells = make([][]Cell, rows)
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
	}
}

// IsValidCell — проверка границ
func (g *Grid) IsValidCell(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// IsOccupied reports true for out-of-bounds cells, tower cells and path cells.
func (g *Grid) IsOccupied(row, col int) bool {
	if !g.IsValidCell(row, col) {
		return true
	}
	c := g.cells[row][col]
	return c.Occupied || c.IsPath
}

// IsPath reports whether the cell is part of the enemy route.
func (g *Grid) IsPath(row, col int) bool {
	return g.IsValidCell(row, col) && g.cells[row][col].IsPath
}

// HasTower reports whether a tower is recorded on the cell.
func (g *Grid) HasTower(row, col int) bool {
	return g.IsValidCell(row, col) && g.cells[row][col].Occupied
}

func (g *Grid) SetOccupied(row, col int, occupied bool) {
	if g.IsValidCell(row, col) {
		g.cells[row][col].Occupied = occupied
	}
}

func (g *Grid) SetPath(row, col int, isPath bool) {
	if g.IsValidCell(row, col) {
		g.cells[row][col].IsPath = isPath
	}
}

// ClearPath снимает разметку дороги со всех клеток
func (g *Grid) ClearPath() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].IsPath = false
		}
	}
}

// ToPixel returns the top-left pixel corner of a cell.
func (g *Grid) ToPixel(row, col int) Point {
	return Point{X: float64(col) * g.CellSize, Y: float64(row) * g.CellSize}
}

// CellCenter returns the pixel center of a cell.
func (g *Grid) CellCenter(row, col int) Point {
	return Point{
		X: float64(col)*g.CellSize + g.CellSize/2,
		Y: float64(row)*g.CellSize + g.CellSize/2,
	}
}

// ToGrid converts a pixel position into the cell that contains it.
func (g *Grid) ToGrid(x, y float64) (row, col int) {
	return int(math.Floor(y / g.CellSize)), int(math.Floor(x / g.CellSize))
}

// Width и Height — размеры поля в пикселях
func (g *Grid) Width() float64  { return float64(g.Cols) * g.CellSize }
func (g *Grid) Height() float64 { return float64(g.Rows) * g.CellSize }
