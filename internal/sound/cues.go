// internal/sound/cues.go
package sound

import (
	"time"

	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/event"

	"github.com/gopxl/beep"
)

// Cue — именованный звуковой сигнал
type Cue string

const (
	CuePlace          Cue = "place"
	CueUpgrade        Cue = "upgrade"
	CueSell           Cue = "sell"
	CueMiner          Cue = "miner"
	CueLightning      Cue = "lightning"
	CueFire           Cue = "fire"
	CueDie            Cue = "die"
	CueSpawn          Cue = "spawn"
	CueEnemyShoot     Cue = "enemyShoot"
	CueTowerDestroyed Cue = "towerDestroyed"
	CueWaveStart      Cue = "waveStart"
	CueWaveComplete   Cue = "waveComplete"
	CueVictory        Cue = "victory"
	CueGameOver       Cue = "gameOver"
	CueError          Cue = "error"
)

type cueSpec struct {
	wave     Waveform
	duration time.Duration
	volume   float64
	points   []FreqPoint
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

var cueTable = map[Cue]cueSpec{
	CuePlace:          {Triangle, ms(200), 0.3, []FreqPoint{{Hz: 400}, {At: ms(100), Hz: 600}}},
	CueUpgrade:        {Sine, ms(300), 0.4, []FreqPoint{{Hz: 300}, {At: ms(150), Hz: 800}}},
	CueSell:           {Saw, ms(150), 0.3, []FreqPoint{{Hz: 600}, {At: ms(100), Hz: 200}}},
	CueMiner:          {Square, ms(100), 0.2, []FreqPoint{{Hz: 800}}},
	CueLightning:      {Saw, ms(150), 0.3, []FreqPoint{{Hz: 1000}, {At: ms(50), Hz: 200}}},
	CueFire:           {Triangle, ms(200), 0.25, []FreqPoint{{Hz: 200}, {At: ms(80), Hz: 400}}},
	CueDie:            {Saw, ms(300), 0.4, []FreqPoint{{Hz: 400}, {At: ms(200), Hz: 100}}},
	CueSpawn:          {Sine, ms(100), 0.2, []FreqPoint{{Hz: 200}, {At: ms(50), Hz: 300}}},
	CueEnemyShoot:     {Triangle, ms(250), 0.3, []FreqPoint{{Hz: 300}, {At: ms(100), Hz: 150}}},
	CueTowerDestroyed: {Saw, ms(400), 0.5, []FreqPoint{{Hz: 200}, {At: ms(300), Hz: 50}}},
	CueWaveStart:      {Sine, ms(500), 0.4, []FreqPoint{{Hz: 200}, {At: ms(200), Hz: 400}, {At: ms(400), Hz: 600}}},
	CueWaveComplete:   {Triangle, ms(800), 0.5, []FreqPoint{{Hz: 400}, {At: ms(300), Hz: 600}, {At: ms(600), Hz: 800}}},
	CueVictory: {Sine, ms(1200), 0.6, []FreqPoint{
		{Hz: 523}, {At: ms(200), Hz: 659, Step: true}, {At: ms(400), Hz: 784, Step: true}, {At: ms(600), Hz: 1047, Step: true},
	}},
	CueGameOver: {Saw, ms(1000), 0.5, []FreqPoint{{Hz: 400}, {At: ms(400), Hz: 200}, {At: ms(800), Hz: 100}}},
	CueError:    {Saw, ms(200), 0.3, []FreqPoint{{Hz: 300}, {At: ms(100), Hz: 150}}},
}

// Synth строит генератор для сигнала; false — такого сигнала нет.
func Synth(sr beep.SampleRate, cue Cue) (*Tone, bool) {
	shape, ok := cueTable[cue]
	if !ok {
		return nil, false
	}
	return NewTone(sr, shape.wave, shape.duration, shape.volume, shape.points...), true
}

// towerCues — звук выстрела по типу башни
var towerCues = map[defs.TowerType]Cue{
	defs.TowerMiner:     CueMiner,
	defs.TowerLightning: CueLightning,
	defs.TowerFire:      CueFire,
}

// cueFor сопоставляет событию ядра звуковой сигнал.
func cueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.TowerFired:
		data, ok := e.Data.(event.ShotData)
		if !ok {
			return "", false
		}
		cue, ok := towerCues[data.TowerType]
		return cue, ok
	case event.TowerPlaced:
		return CuePlace, true
	case event.TowerUpgraded:
		return CueUpgrade, true
	case event.TowerSold:
		return CueSell, true
	case event.TowerDestroyed:
		return CueTowerDestroyed, true
	case event.EnemySpawned:
		return CueSpawn, true
	case event.EnemyShot:
		return CueEnemyShoot, true
	case event.EnemyKilled:
		return CueDie, true
	case event.WaveStarted:
		return CueWaveStart, true
	case event.WaveCompleted:
		return CueWaveComplete, true
	case event.Victory:
		return CueVictory, true
	case event.GameOver:
		return CueGameOver, true
	}
	return "", false
}
