// internal/state/shooter_state.go
package state

import (
	"go-space-arcade/internal/app"
	"go-space-arcade/internal/render"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ShooterState — разрушение города танком.
type ShooterState struct {
	sm       *StateMachine
	game     *app.Shooter
	renderer *render.ShooterRenderer
	held     map[app.Key]bool
}

func NewShooterState(sm *StateMachine) *ShooterState {
	return &ShooterState{
		sm:       sm,
		game:     app.NewShooter(sm.Shared.Catalog, sm.Shared.Player, sm.Shared.seed()),
		renderer: render.NewShooterRenderer(),
		held:     make(map[app.Key]bool, 4),
	}
}

func (g *ShooterState) Enter() {
	log.Printf("[State] City buster, session %s", g.game.SessionID)
}

func (g *ShooterState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if !g.game.Stats.Running && !g.game.Stats.Won && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Restart()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.game.ToggleArmory()
	}
	for i, key := range numberKeys[:5] {
		if inpututil.IsKeyJustPressed(key) {
			g.game.ArmorySlot(i + 1)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.game.Fire()
	}

	g.held[app.KeyLeft] = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	g.held[app.KeyRight] = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	g.held[app.KeyUp] = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	g.held[app.KeyDown] = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	x, y := ebiten.CursorPosition()
	g.game.Update(deltaTime, app.Input{Held: g.held, CursorX: float64(x), CursorY: float64(y)})
}

func (g *ShooterState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Snapshot())
}

func (g *ShooterState) Exit() {}
