// internal/sound/tone.go
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Waveform — форма волны осциллятора
type Waveform int

const (
	Sine Waveform = iota
	Square
	Saw
	Triangle
)

// FreqPoint — опорная точка частоты. Между точками частота меняется
// экспоненциально; Step держит прежнюю частоту и прыгает в момент At.
type FreqPoint struct {
	At   time.Duration
	Hz   float64
	Step bool
}

// Tone — генератор одного звукового сигнала: осциллятор с огибающей частоты
// и громкостью, экспоненциально затухающей до 0.001 к концу длительности.
type Tone struct {
	sr     beep.SampleRate
	wave   Waveform
	points []FreqPoint
	volume float64
	total  int
	pos    int
	phase  float64
}

const silenceFloor = 0.001

// NewTone собирает генератор. points[0] задает стартовую частоту.
func NewTone(sr beep.SampleRate, wave Waveform, duration time.Duration, volume float64, points ...FreqPoint) *Tone {
	if len(points) == 0 {
		points = []FreqPoint{{Hz: 440}}
	}
	return &Tone{
		sr:     sr,
		wave:   wave,
		points: points,
		volume: volume,
		total:  sr.N(duration),
	}
}

// Len — длина сигнала в сэмплах
func (t *Tone) Len() int { return t.total }

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		at := time.Duration(float64(t.pos) / float64(t.sr) * float64(time.Second))
		freq := t.frequencyAt(at)

		val := oscillate(t.wave, t.phase) * t.gainAt(t.pos)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.sr)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// gainAt — экспоненциальный спад от volume до silenceFloor
func (t *Tone) gainAt(pos int) float64 {
	if t.volume <= silenceFloor || t.total == 0 {
		return t.volume
	}
	frac := float64(pos) / float64(t.total)
	return t.volume * math.Pow(silenceFloor/t.volume, frac)
}

func (t *Tone) frequencyAt(at time.Duration) float64 {
	prev := t.points[0]
	for _, next := range t.points[1:] {
		if at >= next.At {
			prev = next
			continue
		}
		if next.Step || next.At <= prev.At {
			return prev.Hz
		}
		frac := float64(at-prev.At) / float64(next.At-prev.At)
		return prev.Hz * math.Pow(next.Hz/prev.Hz, frac)
	}
	return prev.Hz
}

func oscillate(wave Waveform, phase float64) float64 {
	switch wave {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Saw:
		return 2 * (phase - 0.5)
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
