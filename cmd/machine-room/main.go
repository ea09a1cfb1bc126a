package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/machine-room/audio"
	"github.com/lixenwraith/machine-room/config"
	"github.com/lixenwraith/machine-room/core"
	"github.com/lixenwraith/machine-room/engine"
	"github.com/lixenwraith/machine-room/input"
	"github.com/lixenwraith/machine-room/parameter"
	"github.com/lixenwraith/machine-room/spectate"
	"github.com/lixenwraith/machine-room/system"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML configuration file")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/machine-room.log")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 uses the configured or a time-based seed")
	observeFlag = flag.String("observe", "", "Serve the spectator feed on this address, e.g. :8080")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	dumpFlag    = flag.Bool("dump-config", false, "Print the effective configuration and exit")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Session.Seed = *seedFlag
	}

	if *dumpFlag {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	keys, err := input.ApplyBindings(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("session seed %d", seed)

	world := engine.NewWorld(nil, cfg.Tuning(), engine.NewRand(seed))
	system.RegisterAll(world)

	// Audio is optional; the session runs silent without a device
	sound := audio.NewSoundManager(cfg.AudioConfig())
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}
	if *muteFlag {
		sound.ToggleMute()
	}
	world.Resources.Audio = sound

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	// Panic recovery: restore the terminal before printing the crash
	restore := sync.OnceFunc(screen.Fini)
	core.SetCrashRestore(restore)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer restore()

	screen.EnableMouse()
	screen.HideCursor()

	a := newApp(world, engine.NewTimeProvider(), keys, cfg.Session.Briefing)

	if *observeFlag != "" {
		hub := spectate.NewHub(nil)
		srv, err := spectate.Listen(*observeFlag, hub)
		if err != nil {
			return err
		}
		defer srv.Shutdown()
		a.attachHub(hub)
		log.Printf("spectator feed on %s", srv.Addr())
	}

	events := make(chan tcell.Event, 256)
	// Input polling runs on its own goroutine as PollEvent blocks
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	log.Printf("session ready, briefing=%v", cfg.Session.Briefing)
	for !a.quit {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			a.handleEvent(ev)

		case <-ticker.C:
			a.tick()
			a.draw(screen)
			screen.Show()
		}
	}
	log.Printf("quit after %d ticks", world.Resources.Clock.Tick)
	return nil
}
