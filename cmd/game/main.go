// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"coin-tower-defense/internal/app"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/inspect"
	"coin-tower-defense/internal/sound"
	"coin-tower-defense/internal/state"
	"coin-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Resize(a.width, a.height)
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	towersPath := flag.String("towers", "", "path to tower definitions JSON (embedded defaults if empty)")
	enemiesPath := flag.String("enemies", "", "path to enemy definitions JSON (embedded defaults if empty)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for wave composition")
	inspectAddr := flag.String("inspect", "localhost:6060", "address of the read-only inspector (empty to disable)")
	fontPath := flag.String("font", "", "TTF font for the HUD (basicfont if empty)")
	withSound := flag.Bool("sound", true, "play sound effects")
	fromMenu := flag.Bool("menu", true, "start from the title screen")
	resizable := flag.Bool("resizable", false, "allow resizing the window; the field follows the window size")
	flag.Parse()

	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatal(err)
		}
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatal(err)
		}
	}

	game := app.NewDefaultGame(*seed)
	log.Printf("Seed: %d", game.Rng.Seed())
	session := &state.Session{
		Game:      game,
		Face:      render.LoadFontFace(*fontPath, 12),
		TitleFace: render.LoadFontFace(*fontPath, 18),
	}

	if *withSound {
		audio := sound.NewSoundManager()
		if err := audio.Initialize(); err != nil {
			// Без звука играть можно
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer audio.Cleanup()
			audio.Attach(game.EventDispatcher)
			session.OnReject = func() { audio.Play(sound.CueError) }
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *inspectAddr != "" {
		broadcaster := inspect.NewBroadcaster(config.InspectBroadcastInterval * time.Millisecond)
		session.OnFrame = broadcaster.Publish
		go func() {
			if err := inspect.Serve(ctx, *inspectAddr, broadcaster); err != nil {
				log.Println(err)
			}
		}()
	}

	sm := state.NewStateMachine()
	if *fromMenu {
		sm.SetState(state.NewMenuState(sm, session))
	} else {
		sm.SetState(state.NewGameState(sm, session))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Coin Tower Defense")
	if *resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
