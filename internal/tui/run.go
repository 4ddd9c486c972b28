// internal/tui/run.go
package tui

import (
	"context"
	"time"

	"coin-tower-defense/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Step продвигает игру на dt и перерисовывает экран.
func (v *View) Step(dt float64) {
	v.game.Update(dt)
	snap := v.game.Snapshot()
	if v.OnFrame != nil {
		v.OnFrame(snap)
	}
	v.Draw(snap)
}

// Run крутит цикл ввода и симуляции до выхода игрока или отмены ctx.
func (v *View) Run(ctx context.Context, frame time.Duration) {
	v.screen.EnableMouse()
	v.FitGrid()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !v.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			v.Step(min(dt, config.MaxDeltaTime))
		}
	}
}
