package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/parameter"
)

// ErrNotInitialized is returned when the speaker has not been opened
var ErrNotInitialized = errors.New("audio: sound manager not initialized")

// SoundManager plays synthesized cues through the system speaker
// Every method is safe before Initialize and after Cleanup; cues are then dropped
type SoundManager struct {
	mu          sync.Mutex
	config      *Config
	rate        beep.SampleRate
	cache       *cueCache
	initialized bool

	muted  atomic.Bool
	played atomic.Int64
}

// NewSoundManager creates a sound manager; a nil config uses defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	sm := &SoundManager{
		config: cfg,
		rate:   rate,
		cache:  newCueCache(rate),
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and renders the cue buffers
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	sm.cache.preload()
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep keeps the device open; clearing the speaker mixer is enough to go quiet
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.initialized = false
}

// Play starts cue st at volume scaled by the master volume
// Returns false when the cue was dropped
func (sm *SoundManager) Play(st core.SoundType, volume float64) bool {
	if sm.muted.Load() {
		return false
	}

	s, err := sm.streamer(st, volume)
	if err != nil {
		return false
	}

	speaker.Play(s)
	sm.played.Add(1)
	return true
}

func (sm *SoundManager) streamer(st core.SoundType, volume float64) (beep.Streamer, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil, ErrNotInitialized
	}

	buf := sm.cache.get(st)
	if buf == nil {
		return nil, fmt.Errorf("audio: unknown cue %v", st)
	}
	return newVolume(buf.Streamer(0, buf.Len()), volume*sm.config.MasterVolume), nil
}

// ToggleMute toggles mute state, returns true if now muted
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	return muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume updates master volume (0.0-1.0)
func (sm *SoundManager) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	sm.mu.Lock()
	sm.config.MasterVolume = vol
	sm.mu.Unlock()
}

// Played returns the number of cues sent to the speaker
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}
