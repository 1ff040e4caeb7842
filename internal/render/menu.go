// internal/render/menu.go
package render

import (
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/ui"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawMenu рисует заголовок и кнопки меню. hovered — Value кнопки под курсором.
func DrawMenu(screen *ebiten.Image, title string, buttons []ui.Button, hovered string) {
	screen.Fill(config.SpaceColor)
	drawTextScaled(screen, title, config.ScreenWidth/2, 80, 4, config.ShieldColor)
	for _, b := range buttons {
		x, y := float64(b.Rect.Min.X), float64(b.Rect.Min.Y)
		w, h := float64(b.Rect.Dx()), float64(b.Rect.Dy())
		fill := color.RGBA{25, 25, 60, 255}
		if b.Value == hovered {
			fill = color.RGBA{45, 45, 100, 255}
		}
		fillRect(screen, x, y, w, h, fill)
		strokeRect(screen, x, y, w, h, 2, config.ShieldColor)
		drawTextCentered(screen, b.Text, x+w/2, y+h/2-7, config.TextLightColor)
	}
}

// DrawPaused затемняет экран поверх последнего кадра.
func DrawPaused(screen *ebiten.Image) {
	fillRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, Fade(config.OverlayColor, 0.6))
	drawTextScaled(screen, "PAUSED", config.ScreenWidth/2, 200, 3, config.TextLightColor)
	drawTextCentered(screen, "Space to resume, Esc for menu", config.ScreenWidth/2, 250, config.TextLightColor)
}
