package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/parameter"
)

// drain streams s to completion, returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = math.Max(peak, math.Abs(sample[0]))
			peak = math.Max(peak, math.Abs(sample[1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer did not drain")
	return 0, 0
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	total, peak := drain(t, osc)
	if total != rate.N(50*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(50*time.Millisecond), total)
	}
	if peak != 1.0 {
		t.Errorf("Expected square peak 1.0, got %f", peak)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] > 0.11 {
		t.Errorf("Expected release near silence, got %f", samples[99][0])
	}
}

// TestCueLengths verifies every cue drains with bounded, audible output
func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	want := map[core.SoundType]time.Duration{
		core.SoundWarning: parameter.WarningDuration,
		core.SoundScare:   parameter.ScareDuration,
		core.SoundBoot:    parameter.BootDuration,
	}

	for st, d := range want {
		s := GetSoundEffect(st, rate)
		if s == nil {
			t.Fatalf("No streamer for %v", st)
		}
		total, peak := drain(t, s)
		if diff := total - rate.N(d); diff < -2 || diff > 2 {
			t.Errorf("%v: expected ~%d samples, got %d", st, rate.N(d), total)
		}
		if peak <= 0.05 || peak > 1.5 {
			t.Errorf("%v: unexpected peak %f", st, peak)
		}
	}

	if GetSoundEffect(core.SoundTypeCount, rate) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

// TestNewVolumeSilent verifies zero volume mutes the stream
func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)

	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

// TestCueCache verifies buffers are rendered once and reused
func TestCueCache(t *testing.T) {
	c := newCueCache(beep.SampleRate(8000))

	first := c.get(core.SoundBoot)
	if first == nil || first.Len() == 0 {
		t.Fatal("Expected rendered boot buffer")
	}
	if c.get(core.SoundBoot) != first {
		t.Error("Expected cached buffer to be reused")
	}
	if c.get(core.SoundType(-1)) != nil {
		t.Error("Expected nil for invalid cue")
	}
}
