// internal/ui/notification.go
package ui

import (
	"go-space-arcade/internal/config"
	"image/color"
)

// Severity — окраска сообщения.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Color возвращает цвет плашки для уровня.
func (s Severity) Color() color.RGBA {
	if c, ok := config.NoticeColors[string(s)]; ok {
		return c
	}
	return config.NoticeColors[string(SeverityInfo)]
}

// Notifier показывает одно сообщение за раз. Новое сообщение заменяет старое
// и заново запускает таймер скрытия.
type Notifier struct {
	Text      string
	Severity  Severity
	remaining float64
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Show(text string, severity Severity) {
	n.Text = text
	n.Severity = severity
	n.remaining = config.NoticeDuration
}

// Update отсчитывает время показа в секундах. Таймер идёт и на паузе.
func (n *Notifier) Update(dt float64) {
	if n.remaining <= 0 {
		return
	}
	n.remaining -= dt
	if n.remaining <= 0 {
		n.remaining = 0
		n.Text = ""
	}
}

func (n *Notifier) Visible() bool {
	return n.remaining > 0 && n.Text != ""
}
