// cmd/swarm-tty/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"go-swarm-shooter/internal/app"
	"go-swarm-shooter/internal/audio"
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/settings"
	"go-swarm-shooter/internal/tty"
	"go-swarm-shooter/internal/utils"
)

func main() {
	seed := flag.Int64("seed", 0, "seed for enemy spawns, 0 uses settings or time")
	configPath := flag.String("config", "", "settings file (default: user config dir)")
	enemiesPath := flag.String("enemies", "", "YAML file overriding enemy definitions")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// Терминал занят экраном, логи пишем в файл или никуда
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := loadSettings(*configPath)
	if *seed == 0 {
		*seed = cfg.Seed
	}

	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Printf("enemies: %v, using built-in definitions", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Fini ниже выполнится раньше, терминал уже восстановлен
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	dispatcher := event.NewDispatcher()
	sound := audio.NewSoundManager(func() bool { return cfg.SoundEnabled })
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer sound.Cleanup()
	}
	sound.Subscribe(dispatcher)

	rng := utils.NewPRNGService(*seed)
	log.Printf("new run, seed %d", rng.Seed())
	w, h := tty.WorldSize(screen.Size())
	game := app.NewGame(w, h, rng, dispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := tty.NewFrontend(screen, game).Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("run: %v", err)
	}
}

func loadSettings(path string) *settings.Settings {
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			log.Printf("settings: %v", err)
			d := settings.Defaults()
			return &d
		}
		path = p
	}
	cfg, err := settings.Load(path)
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}
	return cfg
}
