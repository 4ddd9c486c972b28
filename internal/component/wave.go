// internal/component/wave.go
package component

import "coin-tower-defense/internal/defs"

// WavePhase — состояние планировщика волн
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
)

func (p WavePhase) String() string {
	if p == WaveSpawning {
		return "spawning"
	}
	return "idle"
}

// Wave — состояние текущей волны
type Wave struct {
	Number         int // номер волны, которая будет запущена следующей (или идет сейчас)
	Phase          WavePhase
	Definition     *defs.WaveDefinition
	Cursor         int     // сколько записей ростера уже выпущено
	SpawnTimer     float64 // время с начала волны
	WavesCompleted int
}

// InProgress — волна запущена и еще не завершена
func (w *Wave) InProgress() bool {
	return w.Phase == WaveSpawning
}

// Unreleased — сколько врагов волны еще не вышло на поле
func (w *Wave) Unreleased() int {
	if w.Definition == nil {
		return 0
	}
	return len(w.Definition.Entries) - w.Cursor
}
