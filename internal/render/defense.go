// internal/render/defense.go
package render

import (
	"fmt"
	"go-space-arcade/internal/app"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/ui"
	"go-space-arcade/pkg/gridmap"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefenseRenderer рисует защиту станции по снимку.
type DefenseRenderer struct {
	fieldImage *ebiten.Image // сетка и маршрут, рисуются один раз
	waves      *ui.WaveIndicator
	pause      *ui.PauseButton
}

func NewDefenseRenderer(path []gridmap.Point) *DefenseRenderer {
	r := &DefenseRenderer{
		fieldImage: ebiten.NewImage(config.FieldWidth, config.FieldHeight),
		waves:      ui.NewWaveIndicator(),
		pause:      ui.NewPauseButton(),
	}
	r.renderField(path)
	return r
}

// renderField создаёт предрендеренное изображение сетки и маршрута.
func (r *DefenseRenderer) renderField(path []gridmap.Point) {
	img := r.fieldImage
	img.Clear()
	for _, p := range path {
		fillRect(img, float64(p.X*config.GridSize), float64(p.Y*config.GridSize), config.GridSize, config.GridSize, config.PathColor)
	}
	for x := 0; x <= config.GridWidth; x++ {
		line(img, float64(x*config.GridSize), 0, float64(x*config.GridSize), config.FieldHeight, 1, config.GridLineColor)
	}
	for y := 0; y <= config.GridHeight; y++ {
		line(img, 0, float64(y*config.GridSize), config.FieldWidth, float64(y*config.GridSize), 1, config.GridLineColor)
	}
	if n := len(path); n > 0 {
		end := path[n-1]
		cx := float64(end.X*config.GridSize) + config.GridSize/2
		cy := float64(end.Y*config.GridSize) + config.GridSize/2
		strokeCircle(img, cx, cy, config.GridSize/2-4, 3, config.PortalColor)
	}
}

func (r *DefenseRenderer) Draw(screen *ebiten.Image, s app.DefenseSnapshot) {
	screen.Fill(config.SpaceColor)
	for _, star := range s.Stars {
		fillCircle(screen, star.X, star.Y, star.Size, color.RGBA{200, 200, 255, 200})
	}
	screen.DrawImage(r.fieldImage, nil)

	r.drawHover(screen, s)
	for i := range s.Towers {
		r.drawTower(screen, &s.Towers[i])
	}
	for i := range s.Aliens {
		drawAlien(screen, &s.Aliens[i])
	}
	for _, p := range s.Projectiles {
		drawProjectile(screen, p)
	}
	for i := range s.Particles {
		drawParticle(screen, &s.Particles[i])
	}

	r.drawHUD(screen, s)
	r.drawShop(screen, s)
	if s.HoverInfo != nil {
		drawInfoPanel(screen, *s.HoverInfo)
	}
	if s.Announcement.Visible() {
		drawAnnouncement(screen, s.Announcement)
	}
	if len(s.Choices) > 0 {
		drawChoices(screen, s.Choices)
	}
	if !s.Running {
		fillRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)
		drawTextScaled(screen, "STATION DESTROYED", config.ScreenWidth/2, 200, 3, config.BossColor)
		drawTextCentered(screen, "Press R to restart, Esc for menu", config.ScreenWidth/2, 260, config.TextLightColor)
	}
	drawNotice(screen, s.Notice)
}

func (r *DefenseRenderer) drawHover(screen *ebiten.Image, s app.DefenseSnapshot) {
	if !s.HoverValid || !s.Running {
		return
	}
	clr := config.HoverColor
	if !s.HoverFree {
		clr = config.BlockedColor
	}
	fillRect(screen, float64(s.Hover.X*config.GridSize), float64(s.Hover.Y*config.GridSize), config.GridSize, config.GridSize, clr)
}

func (r *DefenseRenderer) drawTower(screen *ebiten.Image, t *component.Tower) {
	size := t.Size
	if size <= 0 {
		size = 16
	}
	strokeCircle(screen, t.X, t.Y, t.Range, 1, Fade(t.Color, 0.15))
	fillCircle(screen, t.X, t.Y, size, DarkenColor(t.Color))
	fillCircle(screen, t.X, t.Y, size*0.6, t.Color)
	// ствол смотрит на последнюю цель
	line(screen, t.X, t.Y, t.X+math.Cos(t.Angle)*size*1.2, t.Y+math.Sin(t.Angle)*size*1.2, 3, LightenColor(t.Color, 0.4))
	for i := 0; i < t.Level; i++ {
		fillCircle(screen, t.X-8+float64(i)*8, t.Y+size+5, 2.5, config.CreditsColor)
	}
}

func drawAlien(screen *ebiten.Image, a *component.Alien) {
	fillPolygon(screen, a.X, a.Y, a.Size, a.Rotation, shapeFor(a.Shape), a.Color)
	if a.Slow.Active() {
		strokeCircle(screen, a.X, a.Y, a.Size+3, 2, color.RGBA{135, 206, 235, 200})
	}
	if a.MaxHealth > 0 && a.Health < a.MaxHealth {
		w := a.Size * 2
		frac := math.Max(0, a.Health/a.MaxHealth)
		fillRect(screen, a.X-w/2, a.Y-a.Size-8, w, 3, color.RGBA{80, 0, 0, 255})
		fillRect(screen, a.X-w/2, a.Y-a.Size-8, w*frac, 3, color.RGBA{0, 220, 0, 255})
	}
}

func drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	for i, pt := range p.Trail {
		alpha := float64(i+1) / float64(len(p.Trail)+1)
		fillCircle(screen, pt.X, pt.Y, p.Size*alpha*0.6, Fade(p.Color, alpha*0.6))
	}
	fillCircle(screen, p.X, p.Y, p.Size/2, p.Color)
	if p.Kind == defs.BehaviorExplosive {
		strokeCircle(screen, p.X, p.Y, p.Size/2+2, 1, config.ExplosionColor)
	}
}

func drawParticle(screen *ebiten.Image, p *component.Particle) {
	alpha := p.Alpha()
	switch p.Kind {
	case component.ParticleDebris:
		fillCircle(screen, p.X, p.Y, p.Size, Fade(p.Color, alpha))
	case component.ParticleExplosion:
		strokeCircle(screen, p.X, p.Y, p.Size, 3, Fade(p.Color, alpha))
	case component.ParticleLaser:
		line(screen, p.FromX, p.FromY, p.ToX, p.ToY, 3, Fade(p.Color, alpha))
	case component.ParticleLightning:
		drawBolt(screen, p.FromX, p.FromY, p.ToX, p.ToY, Fade(p.Color, alpha))
	}
}

// drawBolt — ломаная молния из пяти звеньев с детерминированным изломом.
func drawBolt(screen *ebiten.Image, x0, y0, x1, y1 float64, clr color.RGBA) {
	const segments = 5
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length, dx/length
	px, py := x0, y0
	for i := 1; i <= segments; i++ {
		t := float64(i) / segments
		offset := 0.0
		if i < segments {
			offset = math.Sin(float64(i)*2.7+length) * 8
		}
		qx := x0 + dx*t + nx*offset
		qy := y0 + dy*t + ny*offset
		line(screen, px, py, qx, qy, 2, clr)
		px, py = qx, qy
	}
}

func (r *DefenseRenderer) drawHUD(screen *ebiten.Image, s app.DefenseSnapshot) {
	fillRect(screen, 5, 5, 230, 62, Fade(config.OverlayColor, 0.7))
	drawText(screen, fmt.Sprintf("Credits: %d", s.Credits), 12, 10, config.CreditsColor)
	drawText(screen, r.waves.Text(s.Wave), 12, 26, r.waves.TextColor(s.Wave))
	drawText(screen, fmt.Sprintf("Towers: %d/%d  Kills: %d", s.TowerCount, config.MaxTowers, s.Kills), 12, 42, config.TextLightColor)

	x := 130.0
	for _, c := range ui.ShieldIndicatorCells(s.Shield, config.MaxShield) {
		fillCircle(screen, x, 17, 4, c)
		strokeCircle(screen, x, 17, 4, 1, config.ShieldColor)
		x += 10
	}
	drawText(screen, fmt.Sprintf("%d", s.Shield), 130, 26, config.ShieldColor)

	b := r.pause.Rect
	fillRect(screen, float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()), Fade(config.OverlayColor, 0.7))
	drawTextCentered(screen, r.pause.Icon(s.Paused), float64(b.Min.X)+float64(b.Dx())/2, float64(b.Min.Y)+8, config.TextLightColor)
}

func (r *DefenseRenderer) drawShop(screen *ebiten.Image, s app.DefenseSnapshot) {
	top := float64(s.ShopTop)
	if top >= config.ScreenHeight {
		return
	}
	fillRect(screen, 0, top, config.ScreenWidth, config.ShopSlideMax, Fade(config.OverlayColor, 0.8))
	drawText(screen, "TOWERS  [1-6] select  [H] hide  [E] upgrade  [F] sell", 20, top+8, config.TextLightColor)
	for _, b := range s.Shop {
		x, y := float64(b.Rect.Min.X), float64(b.Rect.Min.Y)
		w, h := float64(b.Rect.Dx()), float64(b.Rect.Dy())
		border := config.GridLineColor
		if b.Value == s.Selected {
			border = config.ShieldColor
		}
		fillRect(screen, x, y, w, h, color.RGBA{20, 20, 45, 230})
		strokeRect(screen, x, y, w, h, 2, border)
		drawTextCentered(screen, b.Text, x+w/2, y+10, config.TextLightColor)
	}
}

func drawInfoPanel(screen *ebiten.Image, p ui.InfoPanel) {
	const w = 260
	h := float64(24 + 16*len(p.Lines))
	x := float64(config.ScreenWidth - w - 10)
	y := 50.0
	fillRect(screen, x, y, w, h, Fade(config.OverlayColor, 0.85))
	strokeRect(screen, x, y, w, h, 1, config.ShieldColor)
	drawText(screen, p.Title, x+8, y+4, config.ShieldColor)
	for i, l := range p.Lines {
		drawText(screen, l, x+8, y+22+float64(i)*16, config.TextLightColor)
	}
}

func drawAnnouncement(screen *ebiten.Image, a app.Announcement) {
	clr := config.ShieldColor
	if a.Boss {
		clr = config.BossColor
	}
	drawTextScaled(screen, a.Title, config.FieldWidth/2, 170, 4, clr)
	drawTextCentered(screen, a.Subtitle, config.FieldWidth/2, 240, config.TextLightColor)
}

func drawChoices(screen *ebiten.Image, choices []ui.ChoiceOption) {
	fillRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)
	drawTextScaled(screen, "CHOOSE A SPECIAL TOWER", config.FieldWidth/2, 90, 2, config.CreditsColor)
	for _, c := range choices {
		x, y := float64(c.Rect.Min.X), float64(c.Rect.Min.Y)
		w, h := float64(c.Rect.Dx()), float64(c.Rect.Dy())
		fillRect(screen, x, y, w, h, color.RGBA{25, 25, 60, 255})
		strokeRect(screen, x, y, w, h, 2, config.ShieldColor)
		drawTextCentered(screen, c.Text, x+w/2, y+30, config.TextLightColor)
		drawTextCentered(screen, c.Description, x+w/2, y+60, config.CreditsColor)
	}
}

func drawNotice(screen *ebiten.Image, n app.Notice) {
	if !n.Visible {
		return
	}
	const h = 26
	w := float64(len(n.Text)*7 + 24)
	x := (config.ScreenWidth - w) / 2
	y := float64(config.ScreenHeight/2 + 60)
	fillRect(screen, x, y, w, h, n.Severity.Color())
	drawTextCentered(screen, n.Text, config.ScreenWidth/2, y+6, config.TextLightColor)
}
