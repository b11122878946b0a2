// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-swarm-shooter/internal/assets"
	"go-swarm-shooter/internal/audio"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/settings"
	"go-swarm-shooter/internal/state"
)

const fontLoadTimeout = 5 * time.Second

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Ctx.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	startFromMenu := flag.Bool("menu", true, "start from the main menu; false starts a run immediately")
	seed := flag.Int64("seed", 0, "seed for enemy spawns, 0 uses settings or time")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty disables")
	configPath := flag.String("config", "", "settings file (default: user config dir)")
	enemiesPath := flag.String("enemies", "", "YAML file overriding enemy definitions")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	path := *configPath
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			log.Printf("settings: %v, using working directory", err)
			p = "settings.yaml"
		}
		path = p
	}
	cfg, err := settings.Load(path)
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}

	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Printf("enemies: %v, using built-in definitions", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), fontLoadTimeout)
	fonts, err := assets.Load(ctx)
	cancel()
	if err != nil {
		log.Printf("fonts: %v", err)
	}

	sound := audio.NewSoundManager(func() bool { return cfg.SoundEnabled })
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()

	sm := state.NewStateMachine(&state.Context{
		Fonts:    fonts,
		Settings: cfg,
		Sound:    sound,
		Seed:     *seed,
	})
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm))
	} else {
		sm.SetState(state.NewGameState(sm))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Swarm Shooter")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
