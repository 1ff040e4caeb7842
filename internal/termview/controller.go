// internal/termview/controller.go
package termview

import (
	"go-space-arcade/internal/app"
	"go-space-arcade/internal/config"
	"go-space-arcade/pkg/gridmap"

	"github.com/gdamore/tcell/v2"
)

// Controller ведёт клеточный курсор и переводит действия в вызовы игры.
type Controller struct {
	game   *app.Defense
	Cursor gridmap.Point
}

func NewController(game *app.Defense) *Controller {
	c := &Controller{game: game, Cursor: gridmap.Point{X: config.GridWidth / 2, Y: config.GridHeight / 2}}
	c.syncCursor()
	return c
}

// Handle обрабатывает событие терминала. false означает выход.
func (c *Controller) Handle(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	action, n := Translate(key.Key(), key.Rune())
	return c.Apply(action, n)
}

// Apply выполняет действие. false означает выход.
func (c *Controller) Apply(action Action, n int) bool {
	g := c.game
	switch action {
	case ActionQuit:
		return false
	case ActionLeft:
		c.move(-1, 0)
	case ActionRight:
		c.move(1, 0)
	case ActionUp:
		c.move(0, -1)
	case ActionDown:
		c.move(0, 1)
	case ActionPlace:
		if g.AwaitingChoice() {
			return true
		}
		g.ClickCell(c.Cursor.X, c.Cursor.Y, false)
	case ActionUpgrade:
		g.UpgradeAt(c.Cursor.X, c.Cursor.Y)
	case ActionSell:
		g.SellAt(c.Cursor.X, c.Cursor.Y)
	case ActionPause:
		g.TogglePause()
	case ActionShop:
		g.ToggleShop()
	case ActionRestart:
		if !g.Progress.Running {
			g.Restart()
		}
	case ActionNumber:
		g.NumberKey(n)
	}
	return true
}

func (c *Controller) move(dx, dy int) {
	x, y := c.Cursor.X+dx, c.Cursor.Y+dy
	if !c.game.Grid.InBounds(x, y) {
		return
	}
	c.Cursor = gridmap.Point{X: x, Y: y}
	c.syncCursor()
}

// syncCursor наводит курсор игры на центр клетки, чтобы работали подсказки и E/F.
func (c *Controller) syncCursor() {
	px, py := c.game.Grid.ToPixel(c.Cursor)
	c.game.SetCursor(px, py)
}
