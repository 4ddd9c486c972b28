// internal/sound/sound_manager.go
package sound

import (
	"log"
	"math"
	"sync"
	"time"

	"coin-tower-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	// minCueGap — один и тот же сигнал не чаще, чем раз в столько
	minCueGap = 60 * time.Millisecond
)

// SoundManager озвучивает события игры. Пока Initialize не вызван
// (или динамик недоступен), все Play — пустые операции.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
	lastPlayed  map[Cue]time.Time
	now         func() time.Time
	sink        func(beep.Streamer) // куда уходят сигналы; nil — звука нет
}

func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:      mixer,
		volume:     &effects.Volume{Streamer: mixer, Base: 2},
		lastPlayed: make(map[Cue]time.Time),
		now:        time.Now,
	}
}

// Initialize поднимает динамик и подключает микшер.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Cleanup останавливает все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.sink = nil
	sm.initialized = false
}

// SetVolume задает общую громкость в диапазоне [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if v <= 0 {
		sm.volume.Silent = true
		return
	}
	sm.volume.Silent = false
	sm.volume.Volume = math.Log2(math.Min(v, 1))
}

// ToggleMute включает и выключает звук, возвращает новое состояние.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Play ставит сигнал в микшер. Повтор того же сигнала чаще minCueGap
// отбрасывается, чтобы очередь выстрелов не превращалась в гул.
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.sink == nil || sm.muted {
		return false
	}
	now := sm.now()
	if last, ok := sm.lastPlayed[cue]; ok && now.Sub(last) < minCueGap {
		return false
	}
	tone, ok := Synth(sampleRate, cue)
	if !ok {
		log.Printf("sound: unknown cue %q", cue)
		return false
	}
	sm.lastPlayed[cue] = now
	sm.sink(beep.Take(tone.Len(), tone))
	return true
}

// OnEvent делает SoundManager слушателем диспетчера событий.
func (sm *SoundManager) OnEvent(e event.Event) {
	if cue, ok := cueFor(e); ok {
		sm.Play(cue)
	}
}

// Attach подписывает менеджер на все озвучиваемые события.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.AllTypes...)
}
