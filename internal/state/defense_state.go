// internal/state/defense_state.go
package state

import (
	"go-space-arcade/internal/app"
	"go-space-arcade/internal/render"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefenseState — защита станции. Пауза живёт внутри самой игры (Space),
// чтобы магазин и сообщения продолжали анимироваться.
type DefenseState struct {
	sm       *StateMachine
	game     *app.Defense
	renderer *render.DefenseRenderer
}

func NewDefenseState(sm *StateMachine) *DefenseState {
	game := app.NewDefense(sm.Shared.Catalog, sm.Shared.Player, sm.Shared.seed())
	return &DefenseState{
		sm:       sm,
		game:     game,
		renderer: render.NewDefenseRenderer(game.Grid.Path),
	}
}

func (g *DefenseState) Enter() {
	log.Printf("[State] Station defense, session %s", g.game.SessionID)
}

func (g *DefenseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm))
		return
	}
	if !g.game.Progress.Running && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Restart()
	}

	x, y := ebiten.CursorPosition()
	g.game.SetCursor(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.game.Click(x, y, ebiten.IsKeyPressed(ebiten.KeyShift))
	}

	for i, key := range numberKeys[:6] {
		if inpututil.IsKeyJustPressed(key) {
			g.game.NumberKey(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.game.UpgradeHovered()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.SellHovered()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.game.ToggleShop()
	}

	g.game.Update(deltaTime)
}

func (g *DefenseState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Snapshot())
}

func (g *DefenseState) Exit() {}
