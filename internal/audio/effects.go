// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundType identifies one procedural sound effect.
type SoundType int

const (
	SoundNone SoundType = iota
	SoundShot
	SoundHit
	SoundExplosion
	SoundPlayerHurt
	SoundLevelUp
	SoundUpgrade
	SoundGameOver
)

// AllSounds lists every playable effect.
var AllSounds = []SoundType{
	SoundShot, SoundHit, SoundExplosion, SoundPlayerHurt, SoundLevelUp, SoundUpgrade, SoundGameOver,
}

// oscillator generates a wave whose frequency slides linearly from freq to
// endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope of the given total duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq, endFreq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(freq, endFreq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// NewSound builds a fresh streamer for st scaled by volume. SoundNone and
// unknown types return nil.
func NewSound(st SoundType, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch st {
	case SoundShot:
		s = newVolume(tone(880, 520, 60*time.Millisecond, WaveSquare, rate), 0.25)
	case SoundHit:
		s = newVolume(tone(0, 0, 40*time.Millisecond, WaveNoise, rate), 0.3)
	case SoundExplosion:
		s = beep.Mix(
			newVolume(tone(0, 0, 180*time.Millisecond, WaveNoise, rate), 0.5),
			newVolume(tone(180, 60, 180*time.Millisecond, WaveSine, rate), 0.5),
		)
	case SoundPlayerHurt:
		s = newVolume(tone(140, 90, 150*time.Millisecond, WaveSaw, rate), 0.5)
	case SoundLevelUp:
		// до-ми-соль
		s = beep.Seq(
			newVolume(tone(523.25, 523.25, 90*time.Millisecond, WaveSine, rate), 0.6),
			newVolume(tone(659.25, 659.25, 90*time.Millisecond, WaveSine, rate), 0.6),
			newVolume(tone(783.99, 783.99, 160*time.Millisecond, WaveSine, rate), 0.6),
		)
	case SoundUpgrade:
		s = beep.Seq(
			newVolume(tone(987.77, 987.77, 70*time.Millisecond, WaveSquare, rate), 0.3),
			newVolume(tone(1318.51, 1318.51, 120*time.Millisecond, WaveSquare, rate), 0.3),
		)
	case SoundGameOver:
		s = newVolume(tone(400, 80, 700*time.Millisecond, WaveSaw, rate), 0.6)
	default:
		return nil
	}
	return newVolume(s, volume)
}
