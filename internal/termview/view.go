// internal/termview/view.go
package termview

import (
	"fmt"
	"go-space-arcade/internal/app"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/ui"
	"go-space-arcade/pkg/gridmap"
	"image/color"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Клетка поля занимает cellCols символов по ширине и cellRows строк.
const (
	cellCols = 4
	cellRows = 2

	fieldCols = config.GridWidth * cellCols
	fieldRows = config.GridHeight * cellRows
	pxPerCol  = float64(config.FieldWidth) / fieldCols
	pxPerRow  = float64(config.FieldHeight) / fieldRows
	sideCol   = fieldCols + 2
)

var alienGlyphs = map[string]rune{
	"scout":      's',
	"fighter":    'f',
	"cruiser":    'c',
	"mothership": 'M',
}

// View рисует снимок защиты станции символами.
type View struct {
	screen tcell.Screen
	waves  *ui.WaveIndicator
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen, waves: ui.NewWaveIndicator()}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fg(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(c))
}

func (v *View) put(x, y int, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *View) print(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.put(x+i, y, r, style)
	}
}

// toCell переводит пиксели поля в символьную позицию.
func toCell(px, py float64) (int, int) {
	return int(px / pxPerCol), int(py / pxPerRow)
}

// Draw рисует кадр. cursor — клетка под клеточным курсором.
func (v *View) Draw(s app.DefenseSnapshot, cursor gridmap.Point) {
	v.screen.Clear()
	v.drawField(s, cursor)
	v.drawHUD(s)
	v.drawSide(s)
	v.screen.Show()
}

func (v *View) drawField(s app.DefenseSnapshot, cursor gridmap.Point) {
	pathStyle := fg(config.PathColor).Background(rgb(config.PathColor))
	dotStyle := fg(config.GridLineColor)
	for row := 0; row < fieldRows; row++ {
		for col := 0; col < fieldCols; col++ {
			v.put(col, row, '.', dotStyle)
		}
	}
	for _, p := range s.Path {
		v.fillCell(p, ' ', pathStyle)
	}

	for _, t := range s.Towers {
		x, y := toCell(t.X, t.Y)
		style := fg(t.Color).Bold(true)
		v.put(x-1, y, towerGlyph(t.DefID), style)
		v.put(x, y, rune('0'+t.Level), style)
	}
	for _, a := range s.Aliens {
		x, y := toCell(a.X, a.Y)
		glyph, ok := alienGlyphs[a.Kind]
		if !ok {
			glyph = '?'
		}
		style := fg(a.Color)
		if a.Slow.Active() {
			style = style.Underline(true)
		}
		v.put(x, y, glyph, style)
	}
	for _, p := range s.Projectiles {
		x, y := toCell(p.X, p.Y)
		v.put(x, y, '*', fg(p.Color))
	}

	cursorStyle := tcell.StyleDefault.Reverse(true)
	if s.HoverValid && !s.HoverFree && s.Hover == cursor {
		cursorStyle = cursorStyle.Foreground(rgb(config.BossColor))
	}
	x0, y0 := cursor.X*cellCols, cursor.Y*cellRows
	v.put(x0, y0, '[', cursorStyle)
	v.put(x0+cellCols-1, y0, ']', cursorStyle)
}

func towerGlyph(id string) rune {
	if id == "" {
		return 'T'
	}
	return unicode.ToUpper([]rune(id)[0])
}

func (v *View) fillCell(p gridmap.Point, r rune, style tcell.Style) {
	for dy := 0; dy < cellRows; dy++ {
		for dx := 0; dx < cellCols; dx++ {
			v.put(p.X*cellCols+dx, p.Y*cellRows+dy, r, style)
		}
	}
}

func (v *View) drawHUD(s app.DefenseSnapshot) {
	y := fieldRows + 1
	v.print(0, y, fmt.Sprintf("Credits: %d", s.Credits), fg(config.CreditsColor))
	v.print(16, y, fmt.Sprintf("Shield: %d", s.Shield), fg(config.ShieldColor))
	v.print(30, y, v.waves.Text(s.Wave), fg(v.waves.TextColor(s.Wave)))
	v.print(50, y, fmt.Sprintf("Towers: %d/%d  Kills: %d", s.TowerCount, config.MaxTowers, s.Kills), fg(config.TextLightColor))

	selected := "Selected: " + s.Selected
	if s.Paused {
		selected += "   [PAUSED]"
	}
	v.print(0, y+1, selected, fg(config.TextLightColor))
	if len(s.Shop) > 0 {
		labels := make([]string, len(s.Shop))
		for i, b := range s.Shop {
			labels[i] = fmt.Sprintf("%d:%s", i+1, b.Value)
		}
		v.print(0, y+2, strings.Join(labels, "  "), fg(config.GridLineColor))
	}
	if s.Notice.Visible {
		v.print(0, y+3, s.Notice.Text, fg(s.Notice.Severity.Color()).Bold(true))
	}
	if !s.Running {
		v.print(0, y+4, "STATION DESTROYED - press r to restart, q to quit", fg(config.BossColor).Bold(true))
	}
}

func (v *View) drawSide(s app.DefenseSnapshot) {
	y := 0
	if s.Announcement.Visible() {
		clr := config.ShieldColor
		if s.Announcement.Boss {
			clr = config.BossColor
		}
		v.print(sideCol, y, s.Announcement.Title, fg(clr).Bold(true))
		v.print(sideCol, y+1, s.Announcement.Subtitle, fg(config.TextLightColor))
		y += 3
	}
	if len(s.Choices) > 0 {
		v.print(sideCol, y, "CHOOSE A SPECIAL TOWER", fg(config.CreditsColor).Bold(true))
		for i, c := range s.Choices {
			v.print(sideCol, y+1+i, fmt.Sprintf("%d) %s - %s", i+1, c.Text, c.Description), fg(config.TextLightColor))
		}
		y += len(s.Choices) + 2
	}
	if s.HoverInfo != nil {
		v.print(sideCol, y, s.HoverInfo.Title, fg(config.ShieldColor))
		for i, l := range s.HoverInfo.Lines {
			v.print(sideCol, y+1+i, l, fg(config.TextLightColor))
		}
	}
}
