// internal/termview/run.go
package termview

import (
	"context"
	"go-space-arcade/internal/app"
	"go-space-arcade/internal/config"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Run крутит игру в терминале до выхода или отмены ctx.
// PollEvent работает в отдельной горутине, симуляция идёт только здесь.
func Run(ctx context.Context, screen tcell.Screen, game *app.Defense) error {
	view := NewView(screen)
	ctrl := NewController(game)

	done := make(chan struct{})
	defer close(done)
	events, _ := pollEvents(screen, done)

	ticker := time.NewTicker(time.Second / config.TicksPerSec)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			if !ctrl.Handle(ev) {
				log.Printf("[Term] Quit at wave %d", game.Progress.Wave)
				return nil
			}
		case now := <-ticker.C:
			game.Update(now.Sub(last).Seconds())
			last = now
			view.Draw(game.Snapshot(), ctrl.Cursor)
		}
	}
}

// pollEvents читает события экрана в отдельной горутине. Горутина завершается,
// когда PollEvent вернёт nil (после Fini) или закроется done; exited закрывается
// при её выходе.
func pollEvents(screen tcell.Screen, done <-chan struct{}) (<-chan tcell.Event, <-chan struct{}) {
	events := make(chan tcell.Event, 100)
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events, exited
}
