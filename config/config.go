package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/machine-room/audio"
	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/parameter"
)

// ErrInvalid marks a configuration that cannot run a session
var ErrInvalid = errors.New("config: invalid")

// Environment overrides, applied after the file
const (
	EnvAudioEnabled = "MACHINE_ROOM_AUDIO_ENABLED"
	EnvMasterVolume = "MACHINE_ROOM_MASTER_VOLUME" // 0-100
	EnvSeed         = "MACHINE_ROOM_SEED"
)

// Config is the on-disk session configuration
// Durations are TOML strings such as "15s" or "350ms"
type Config struct {
	Session   Session           `toml:"session"`
	Encounter Encounter         `toml:"encounter"`
	Spawn     Spawn             `toml:"spawn"`
	Player    Player            `toml:"player"`
	Audio     Audio             `toml:"audio"`
	Keys      map[string]string `toml:"keys"` // action name -> key name
}

// Session holds session-wide settings
type Session struct {
	Seed        uint64 `toml:"seed"` // 0 picks a time-based seed
	Briefing    bool   `toml:"briefing"`
	MaxProgress int    `toml:"max_progress"`
}

// Encounter tunes the antagonist schedule
type Encounter struct {
	InitialDelay     time.Duration `toml:"initial_delay"`
	InitialJitter    time.Duration `toml:"initial_jitter"`
	WarningLead      time.Duration `toml:"warning_lead"`
	WarningScale     float64       `toml:"warning_scale"`
	RescheduleFloor  time.Duration `toml:"reschedule_floor"`
	RescheduleJitter time.Duration `toml:"reschedule_jitter"`
	DisplayDuration  time.Duration `toml:"display_duration"`
	FatalScare       bool          `toml:"fatal_scare"`
}

// Spawn tunes the unlock schedule
type Spawn struct {
	BaseInterval time.Duration `toml:"base_interval"`
	PerUnlocked  time.Duration `toml:"per_unlocked"`
	Jitter       time.Duration `toml:"jitter"`
}

// Player tunes movement
type Player struct {
	Speed float64 `toml:"speed"`
}

// Audio holds output and per-cue volume settings
type Audio struct {
	Enabled       bool    `toml:"enabled"`
	MasterVolume  float64 `toml:"master_volume"`
	SampleRate    int     `toml:"sample_rate"`
	WarningVolume float64 `toml:"warning_volume"`
	ScareVolume   float64 `toml:"scare_volume"`
	BootVolume    float64 `toml:"boot_volume"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Session: Session{
			Briefing:    true,
			MaxProgress: parameter.MaxProgress,
		},
		Encounter: Encounter{
			InitialDelay:     parameter.EncounterInitialDelay,
			InitialJitter:    parameter.EncounterInitialJitter,
			WarningLead:      parameter.EncounterWarningLead,
			WarningScale:     parameter.EncounterWarningScale,
			RescheduleFloor:  parameter.EncounterRescheduleFloor,
			RescheduleJitter: parameter.EncounterRescheduleJitter,
			DisplayDuration:  parameter.EncounterDisplayDuration,
		},
		Spawn: Spawn{
			BaseInterval: parameter.SpawnBaseInterval,
			PerUnlocked:  parameter.SpawnPerUnlocked,
			Jitter:       parameter.SpawnJitter,
		},
		Player: Player{
			Speed: parameter.PlayerSpeed,
		},
		Audio: Audio{
			Enabled:       true,
			MasterVolume:  parameter.DefaultMasterVol,
			SampleRate:    parameter.AudioSampleRate,
			WarningVolume: parameter.VolumeWarning,
			ScareVolume:   parameter.VolumeScare,
			BootVolume:    parameter.VolumeBoot,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment overrides read through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvAudioEnabled, v, err)
		}
		c.Audio.Enabled = enabled
	}

	if v, ok := lookup(EnvMasterVolume); ok && v != "" {
		percent, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMasterVolume, v, err)
		}
		c.Audio.MasterVolume = min(max(float64(percent)/100.0, 0), 1)
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		c.Session.Seed = seed
	}

	return nil
}

// Validate rejects values the schedulers cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	e := c.Encounter
	check(e.InitialDelay > 0, "encounter.initial_delay must be positive, got %v", e.InitialDelay)
	check(e.InitialJitter >= 0, "encounter.initial_jitter must not be negative, got %v", e.InitialJitter)
	check(e.WarningLead >= 0, "encounter.warning_lead must not be negative, got %v", e.WarningLead)
	check(e.WarningScale >= 0, "encounter.warning_scale must not be negative, got %v", e.WarningScale)
	check(e.RescheduleFloor > 0, "encounter.reschedule_floor must be positive, got %v", e.RescheduleFloor)
	check(e.RescheduleJitter >= 0, "encounter.reschedule_jitter must not be negative, got %v", e.RescheduleJitter)
	check(e.DisplayDuration > 0, "encounter.display_duration must be positive, got %v", e.DisplayDuration)

	s := c.Spawn
	check(s.BaseInterval > 0, "spawn.base_interval must be positive, got %v", s.BaseInterval)
	check(s.PerUnlocked >= 0, "spawn.per_unlocked must not be negative, got %v", s.PerUnlocked)
	check(s.Jitter >= 0, "spawn.jitter must not be negative, got %v", s.Jitter)

	check(c.Player.Speed > 0, "player.speed must be positive, got %v", c.Player.Speed)
	check(c.Session.MaxProgress > 0, "session.max_progress must be positive, got %d", c.Session.MaxProgress)

	a := c.Audio
	check(a.SampleRate > 0, "audio.sample_rate must be positive, got %d", a.SampleRate)
	for name, v := range map[string]float64{
		"master_volume":  a.MasterVolume,
		"warning_volume": a.WarningVolume,
		"scare_volume":   a.ScareVolume,
		"boot_volume":    a.BootVolume,
	} {
		check(v >= 0 && v <= 1, "audio.%s must be within [0, 1], got %v", name, v)
	}

	return errors.Join(errs...)
}

// Tuning converts the configuration into scheduler tuning
func (c *Config) Tuning() *engine.Tuning {
	return &engine.Tuning{
		Encounter: engine.EncounterTuning{
			InitialDelay:     c.Encounter.InitialDelay,
			InitialJitter:    c.Encounter.InitialJitter,
			WarningLead:      c.Encounter.WarningLead,
			WarningScale:     c.Encounter.WarningScale,
			RescheduleFloor:  c.Encounter.RescheduleFloor,
			RescheduleJitter: c.Encounter.RescheduleJitter,
			DisplayDuration:  c.Encounter.DisplayDuration,
			FatalScare:       c.Encounter.FatalScare,
		},
		Spawn: engine.SpawnTuning{
			BaseInterval: c.Spawn.BaseInterval,
			PerUnlocked:  c.Spawn.PerUnlocked,
			Jitter:       c.Spawn.Jitter,
		},
		Move: engine.MoveTuning{
			Speed: c.Player.Speed,
		},
		Volume: engine.VolumeTuning{
			Warning: c.Audio.WarningVolume,
			Scare:   c.Audio.ScareVolume,
			Boot:    c.Audio.BootVolume,
		},
		MaxProgress: c.Session.MaxProgress,
	}
}

// AudioConfig converts the audio section for the sound manager
func (c *Config) AudioConfig() *audio.Config {
	return &audio.Config{
		Enabled:      c.Audio.Enabled,
		MasterVolume: c.Audio.MasterVolume,
		SampleRate:   c.Audio.SampleRate,
	}
}

// Encode writes the configuration as TOML
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
