package system

import (
	"coin-tower-defense/internal/component"
	"coin-tower-defense/internal/defs"
	"coin-tower-defense/internal/event"
	"testing"
)

func TestStartWaveRejectedWhileRunning(t *testing.T) {
	w := newWorld(t)
	if !w.waves.StartWave() {
		t.Fatalf("first StartWave must succeed")
	}
	if w.waves.StartWave() {
		t.Fatalf("StartWave during a wave must be rejected")
	}
}

func TestWaveReleasesRosterAsQueue(t *testing.T) {
	w := newWorld(t)
	w.waves.StartWave()
	size := defs.RosterSize(1) // 7

	w.waves.Update(0) // запись с задержкой 0
	if w.enemies.Count() != 1 {
		t.Fatalf("first entry is due immediately, got %d enemies", w.enemies.Count())
	}
	w.waves.Update(2.5) // задержки 1 и 2
	if w.enemies.Count() != 3 {
		t.Fatalf("large frame must release only due entries, got %d", w.enemies.Count())
	}

	// все враги убиты, но ростер не выпущен: волна продолжается
	for _, e := range w.enemies.All() {
		e.TakeDamage(e.Value)
	}
	w.enemies.RemoveDead()
	if w.waves.Update(0.01) {
		t.Fatalf("wave with unreleased entries cannot complete")
	}
	if st := w.waves.State(); st.Phase != component.WaveSpawning {
		t.Fatalf("phase = %v, want spawning", st.Phase)
	}

	w.waves.Update(100)
	if got := w.events.count(event.EnemySpawned); got != size {
		t.Fatalf("spawned %d, want %d", got, size)
	}
}

func TestWaveCompletionAwardsGrowingBonus(t *testing.T) {
	w := newWorld(t)
	for wave := 1; wave <= 2; wave++ {
		w.waves.StartWave()
		w.waves.Update(100)
		for _, e := range w.enemies.All() {
			e.TakeDamage(e.Value)
		}
		w.enemies.RemoveDead()
		if !w.waves.Update(0.01) {
			t.Fatalf("wave %d should complete", wave)
		}
	}
	if w.gold != 60+70 {
		t.Fatalf("bonus total = %d, want 130", w.gold)
	}
	st := w.waves.State()
	if st.WavesCompleted != 2 || st.Number != 3 || st.InProgress() {
		t.Fatalf("unexpected state %+v", st)
	}
	if w.events.count(event.WaveCompleted) != 2 {
		t.Fatalf("WaveCompleted events missing")
	}
}
