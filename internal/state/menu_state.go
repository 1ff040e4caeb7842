// internal/state/menu_state.go
package state

import (
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/render"
	"go-space-arcade/internal/ui"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — выбор игры.
type MenuState struct {
	sm      *StateMachine
	buttons []ui.Button
	hovered string
}

func NewMenuState(sm *StateMachine) *MenuState {
	const w, h = 260, 50
	x := (config.ScreenWidth - w) / 2
	return &MenuState{
		sm: sm,
		buttons: []ui.Button{
			ui.NewButton(x, 200, w, h, "[1] Station Defense", config.StartDefense),
			ui.NewButton(x, 270, w, h, "[2] City Buster", config.StartShooter),
		},
	}
}

func (m *MenuState) Enter() {
	log.Println("[State] Menu")
}

func (m *MenuState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	m.hovered = ""
	if b, ok := ui.ButtonAt(m.buttons, x, y); ok {
		m.hovered = b.Value
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		m.start(config.StartDefense)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		m.start(config.StartShooter)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.hovered != "":
		m.start(m.hovered)
	}
}

func (m *MenuState) start(game string) {
	m.sm.SetState(NewStartState(m.sm, game))
}

// NewStartState создаёт состояние по значению startGame из настроек.
func NewStartState(sm *StateMachine, game string) State {
	switch game {
	case config.StartDefense:
		return NewDefenseState(sm)
	case config.StartShooter:
		return NewShooterState(sm)
	}
	return NewMenuState(sm)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	render.DrawMenu(screen, "SPACE ARCADE", m.buttons, m.hovered)
}

func (m *MenuState) Exit() {}
