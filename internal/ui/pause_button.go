// internal/ui/pause_button.go
package ui

import "go-space-arcade/internal/config"

// PauseButton — кнопка паузы в правом верхнем углу поля.
type PauseButton struct {
	Button
}

func NewPauseButton() *PauseButton {
	const size = 30
	return &PauseButton{Button: NewButton(config.FieldWidth-size-10, 10, size, size, "", "pause")}
}

// Icon — «II», пока игра идёт, и «>» на паузе.
func (b *PauseButton) Icon(paused bool) string {
	if paused {
		return ">"
	}
	return "II"
}
