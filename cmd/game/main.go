// cmd/game/main.go
package main

import (
	"flag"
	"go-space-arcade/internal/audio/speaker"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/state"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

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
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "settings.yaml", "path to the settings YAML file")
	startGame := flag.String("game", "", "game to start: menu, defense or shooter (overrides settings)")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Printf("[Config] Warning: %v, using defaults", err)
	}
	if *startGame != "" {
		settings.StartGame = *startGame
		if err := settings.Validate(); err != nil {
			log.Fatalf("[Config] %v", err)
		}
	}

	catalog, err := defs.Load()
	if err != nil {
		log.Fatalf("[Defs] %v", err)
	}

	player := speaker.New(settings)
	if p, ok := player.(*speaker.Player); ok {
		p.Preload()
	}

	sm := state.NewStateMachine(state.Shared{Catalog: catalog, Player: player, Seed: settings.Seed})
	sm.SetState(state.NewStartState(sm, settings.StartGame))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Arcade")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
