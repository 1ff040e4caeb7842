// internal/state/state.go
package state

import (
	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/defs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Shared — то, что живёт дольше отдельной игры: каталог, звук и сид.
type Shared struct {
	Catalog *defs.Catalog
	Player  audio.Player
	Seed    int64 // 0 — новый сид при каждом запуске игры
}

func (s Shared) seed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Shared  Shared
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(shared Shared) *StateMachine {
	return &StateMachine{Shared: shared}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// numberKeys — клавиши 1..9 в порядке номеров.
var numberKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}
