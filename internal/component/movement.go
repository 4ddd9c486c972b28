// internal/component/movement.go
package component

// Position — компонент позиции (пиксели)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (пиксели в секунду)
type Velocity struct {
	Speed float64
}

// PathFollower — индекс последней пройденной точки маршрута
type PathFollower struct {
	CurrentIndex int
}
