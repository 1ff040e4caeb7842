// internal/state/pause_state.go
package state

import (
	"go-space-arcade/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает предыдущее состояние: его Update не вызывается,
// а кадр рисуется под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		// Возврат без Exit/Enter: игра продолжается с того же места.
		s.stateMachine.current = s.previousState
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.stateMachine.SetState(NewMenuState(s.stateMachine))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	render.DrawPaused(screen)
}

func (s *PauseState) Exit() {}
