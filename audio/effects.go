package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope over duration
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
		if e.position < e.attackSamples {
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

// tremolo modulates amplitude with a low-frequency sine
type tremolo struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	freq     float64
	depth    float64
	position int
}

func (t *tremolo) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * t.freq * float64(t.position) / float64(t.rate)
		gain := 1 - t.depth*(0.5+0.5*math.Sin(phase))
		samples[i][0] *= gain
		samples[i][1] *= gain
		t.position++
	}
	return n, ok
}

func (t *tremolo) Err() error { return t.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateWarningSound generates a low pulsing drone that precedes the antagonist
func CreateWarningSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.WarningDuration
	base := parameter.WarningBaseFreq

	drone := NewOscillator(base, d, WaveSaw, rate)
	fifth := NewOscillator(base*1.5, d, WaveSine, rate)
	mixed := beep.Mix(
		newVolume(drone, 0.6),
		newVolume(fifth, 0.4),
	)
	shaped := NewEnvelope(mixed, d, d/3, d/3, rate)
	return &tremolo{streamer: shaped, rate: rate, freq: 4, depth: 0.6}
}

// CreateScareSound generates a harsh noise burst over a detuned square screech
func CreateScareSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ScareDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	screech := NewOscillator(1187, d, WaveSquare, rate)
	detune := NewOscillator(1243, d, WaveSquare, rate)
	mixed := beep.Mix(
		newVolume(noise, 0.5),
		newVolume(screech, 0.3),
		newVolume(detune, 0.3),
	)
	return NewEnvelope(mixed, d, 5*time.Millisecond, d/2, rate)
}

// CreateBootSound generates a two-note rising chime
func CreateBootSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.BootDuration / 2
	n := rate.N(half)

	low, err := generators.SineTone(rate, parameter.BootFreqLow)
	if err != nil {
		return nil
	}
	high, err := generators.SineTone(rate, parameter.BootFreqHigh)
	if err != nil {
		return nil
	}

	first := NewEnvelope(beep.Take(n, low), half, 5*time.Millisecond, half/2, rate)
	second := NewEnvelope(beep.Take(n, high), half, 5*time.Millisecond, half/2, rate)
	return beep.Seq(first, second)
}

// GetSoundEffect returns a fresh unity-gain streamer for st, nil if unknown
func GetSoundEffect(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundWarning:
		return CreateWarningSound(rate)
	case core.SoundScare:
		return CreateScareSound(rate)
	case core.SoundBoot:
		return CreateBootSound(rate)
	default:
		return nil
	}
}
