// internal/system/wave.go
package system

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/config"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/event"
	"log"
)

// WaveScheduler выпускает врагов волны по расписанию и следит за ее концом.
type WaveScheduler struct {
	enemies    *EnemyRegistry
	rng        defs.Chooser
	dispatcher *event.Dispatcher
	award      func(gold int) // начисление бонуса за волну

	state component.Wave
}

func NewWaveScheduler(enemies *EnemyRegistry, rng defs.Chooser, dispatcher *event.Dispatcher, award func(gold int)) *WaveScheduler {
	return &WaveScheduler{
		enemies:    enemies,
		rng:        rng,
		dispatcher: dispatcher,
		award:      award,
		state:      component.Wave{Number: 1, Phase: component.WaveIdle},
	}
}

// StartWave is rejected while a wave is already in progress.
func (s *WaveScheduler) StartWave() bool {
	if s.state.InProgress() {
		return false
	}
	def := defs.NewWaveDefinition(s.state.Number, s.rng)
	s.state.Definition = &def
	s.state.Phase = component.WaveSpawning
	s.state.Cursor = 0
	s.state.SpawnTimer = 0
	log.Printf("Волна %d: %d врагов", def.Number, len(def.Entries))
	s.dispatcher.Emit(event.WaveStarted, event.WaveData{Number: def.Number, Size: len(def.Entries)})
	return true
}

// Update releases every roster entry whose delay has elapsed, strictly in
// roster order, then checks for completion. deltaTime is time-scaled.
// Returns true on the tick the wave completed.
func (s *WaveScheduler) Update(deltaTime float64) bool {
	if !s.state.InProgress() {
		return false
	}
	s.state.SpawnTimer += deltaTime
	entries := s.state.Definition.Entries
	for s.state.Cursor < len(entries) && entries[s.state.Cursor].SpawnDelay <= s.state.SpawnTimer {
		s.enemies.Spawn(entries[s.state.Cursor])
		s.state.Cursor++
	}

	if s.state.Unreleased() > 0 || s.enemies.Count() > 0 {
		return false
	}
	s.complete()
	return true
}

// CompletionBonus — бонус за следующую завершенную волну: счетчик волн
// учитывает и ее саму (первая волна дает 60).
func (s *WaveScheduler) CompletionBonus() int {
	return config.WaveBonusBase + config.WaveBonusPerWave*(s.state.WavesCompleted+1)
}

func (s *WaveScheduler) complete() {
	bonus := s.CompletionBonus()
	number := s.state.Number
	s.state.WavesCompleted++
	s.state.Number++
	s.state.Phase = component.WaveIdle
	s.state.Definition = nil
	s.state.Cursor = 0
	s.state.SpawnTimer = 0
	if s.award != nil {
		s.award(bonus)
	}
	s.dispatcher.Emit(event.WaveCompleted, event.WaveData{Number: number, Bonus: bonus})
}

// State returns a copy of the scheduler state.
func (s *WaveScheduler) State() component.Wave { return s.state }

func (s *WaveScheduler) InProgress() bool { return s.state.InProgress() }

func (s *WaveScheduler) WavesCompleted() int { return s.state.WavesCompleted }

// CurrentWave — номер текущей (или следующей) волны
func (s *WaveScheduler) CurrentWave() int { return s.state.Number }

// Remaining — враги волны, еще не вышедшие на поле, плюс живые на поле.
func (s *WaveScheduler) Remaining() int {
	return s.state.Unreleased() + s.enemies.Count()
}

// Reset возвращает планировщик к первой волне.
func (s *WaveScheduler) Reset() {
	s.state = component.Wave{Number: 1, Phase: component.WaveIdle}
}
