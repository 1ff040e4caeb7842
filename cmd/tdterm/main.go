// cmd/tdterm/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"go-space-arcade/internal/app"
	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/termview"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "settings.yaml", "path to the settings YAML file")
	logPath := flag.String("log", "", "write logs to this file (terminal output is taken by the game)")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.New(os.Stderr, "", log.LstdFlags).Fatalf("[Term] open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Printf("[Config] Warning: %v, using defaults", err)
	}
	catalog, err := defs.Load()
	if err != nil {
		log.New(os.Stderr, "", log.LstdFlags).Fatalf("[Defs] %v", err)
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Терминал звук не выводит.
	game := app.NewDefense(catalog, audio.Nop{}, seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.New(os.Stderr, "", log.LstdFlags).Fatalf("[Term] %v", err)
	}
	if err := screen.Init(); err != nil {
		log.New(os.Stderr, "", log.LstdFlags).Fatalf("[Term] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := termview.Run(ctx, screen, game)
	stop()
	screen.Fini()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Printf("[Term] %v", runErr)
	}
}
