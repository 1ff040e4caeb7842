// internal/termview/keys.go
package termview

import "github.com/gdamore/tcell/v2"

// Action — дискретная команда терминального интерфейса.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionPlace
	ActionUpgrade
	ActionSell
	ActionPause
	ActionShop
	ActionRestart
	ActionNumber // номер лежит во втором результате Translate
)

// Translate переводит клавишу в действие. Для цифр 1-6 возвращает ActionNumber и номер.
func Translate(key tcell.Key, r rune) (Action, int) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyLeft:
		return ActionLeft, 0
	case tcell.KeyRight:
		return ActionRight, 0
	case tcell.KeyUp:
		return ActionUp, 0
	case tcell.KeyDown:
		return ActionDown, 0
	case tcell.KeyEnter:
		return ActionPlace, 0
	case tcell.KeyRune:
	default:
		return ActionNone, 0
	}

	switch r {
	case 'q':
		return ActionQuit, 0
	case 'h':
		return ActionShop, 0
	case 'e', 'u':
		return ActionUpgrade, 0
	case 'f':
		return ActionSell, 0
	case ' ', 'p':
		return ActionPause, 0
	case 'r':
		return ActionRestart, 0
	case 'x':
		return ActionPlace, 0
	}
	if r >= '1' && r <= '6' {
		return ActionNumber, int(r - '0')
	}
	return ActionNone, 0
}
