// internal/app/input.go
package app

// Key — удерживаемая клавиша, которую читает симуляция.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// Input — непрерывное состояние ввода за кадр. Дискретные действия
// (клики, переключатели) приходят отдельными вызовами методов игры.
type Input struct {
	Held             map[Key]bool
	CursorX, CursorY float64
}

func (in Input) Pressed(k Key) bool {
	return in.Held[k]
}
