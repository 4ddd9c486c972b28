// cmd/termgame/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"coin-tower-defense/internal/app"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/inspect"
	"coin-tower-defense/internal/sound"
	"coin-tower-defense/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for wave composition")
	inspectAddr := flag.String("inspect", "", "address of the read-only inspector (empty to disable)")
	withSound := flag.Bool("sound", false, "play sound effects")
	logPath := flag.String("log", "termgame.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	game := app.NewDefaultGame(*seed)
	log.Printf("Seed: %d", game.Rng.Seed())
	view := tui.NewView(screen, game)

	if *withSound {
		audio := sound.NewSoundManager()
		if err := audio.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer audio.Cleanup()
			audio.Attach(game.EventDispatcher)
			view.OnReject = func() { audio.Play(sound.CueError) }
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *inspectAddr != "" {
		broadcaster := inspect.NewBroadcaster(config.InspectBroadcastInterval * time.Millisecond)
		view.OnFrame = broadcaster.Publish
		go func() {
			if err := inspect.Serve(ctx, *inspectAddr, broadcaster); err != nil {
				log.Println(err)
			}
		}()
	}

	view.Run(ctx, 33*time.Millisecond)
}
