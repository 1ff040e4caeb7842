// internal/ui/button.go
package ui

import "image"

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect  image.Rectangle
	Text  string
	Value string // что выбирает кнопка: id башни, режим игры
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h int, text, value string) Button {
	return Button{Rect: image.Rect(x, y, x+w, y+h), Text: text, Value: value}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// ButtonAt — первая кнопка под курсором.
func ButtonAt(buttons []Button, x, y int) (Button, bool) {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
