// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resizable — экран, который перестраивается под размер окна
type Resizable interface {
	Resize(width, height int)
}

// StateMachine — структура для управления экранами
type StateMachine struct {
	current       State
	width, height int
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из текущего экрана и входит в новый.
// Новому экрану сразу сообщается последний известный размер окна.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	sm.current.Enter()
	if r, ok := sm.current.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// Current возвращает активный экран.
func (sm *StateMachine) Current() State { return sm.current }

// Resize пробрасывает размер окна, если он изменился.
func (sm *StateMachine) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.current.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
