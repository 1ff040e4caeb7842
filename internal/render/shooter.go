// internal/render/shooter.go
package render

import (
	"fmt"
	"go-space-arcade/internal/app"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ShooterRenderer рисует разрушение города по снимку. Мир сдвигается на камеру.
type ShooterRenderer struct {
	sky  *ebiten.Image
	view *ebiten.Image // игровое поле над панелью HUD
}

func NewShooterRenderer() *ShooterRenderer {
	r := &ShooterRenderer{
		sky:  ebiten.NewImage(config.ScreenWidth, config.ShooterHeight),
		view: ebiten.NewImage(config.ScreenWidth, config.ShooterHeight),
	}
	r.renderSky()
	return r
}

// renderSky — вертикальный градиент полосами по 10 пикселей.
func (r *ShooterRenderer) renderSky() {
	const band = 10
	for y := 0; y < config.ShooterHeight; y += band {
		t := float64(y) / config.ShooterHeight
		fillRect(r.sky, 0, float64(y), config.ScreenWidth, band, LightenColor(config.SkyTopColor, t*0.6))
	}
}

func (r *ShooterRenderer) Draw(screen *ebiten.Image, s app.ShooterSnapshot) {
	screen.Fill(config.SpaceColor)
	view := r.view
	view.DrawImage(r.sky, nil)

	cam := s.Camera
	fillRect(view, 0, config.GroundY-cam.Y, config.ScreenWidth, config.ShooterHeight, config.GroundColor)
	for i := range s.Buildings {
		drawBuilding(view, &s.Buildings[i], cam)
	}
	for _, p := range s.PowerUps {
		x, y := p.X-cam.X, p.Y-cam.Y
		fillRect(view, x, y, p.W, p.H, config.CrateColor)
		strokeRect(view, x, y, p.W, p.H, 2, DarkenColor(config.CrateColor))
		drawTextCentered(view, "A", x+p.W/2, y+3, config.TextDarkColor)
	}
	drawTank(view, s.Tank, cam)
	for _, p := range s.Projectiles {
		p.X -= cam.X
		p.Y -= cam.Y
		for i := range p.Trail {
			p.Trail[i].X -= cam.X
			p.Trail[i].Y -= cam.Y
		}
		drawProjectile(view, p)
	}
	for _, e := range s.Explosions {
		alpha := math.Max(0, float64(e.Life)/30)
		fillCircle(view, e.X-cam.X, e.Y-cam.Y, e.Size, Fade(config.ExplosionColor, alpha*0.7))
		strokeCircle(view, e.X-cam.X, e.Y-cam.Y, e.Size, 2, Fade(color.RGBA{255, 255, 0, 255}, alpha))
	}
	for _, d := range s.Debris {
		alpha := math.Min(1, float64(d.Life)/30)
		fillRect(view, d.X-cam.X-d.Size/2, d.Y-cam.Y-d.Size/2, d.Size, d.Size, Fade(d.Color, alpha))
	}
	screen.DrawImage(view, nil)

	r.drawHUD(screen, s)
	if s.ArmoryOpen {
		drawArmory(screen, s)
	}
	if !s.Running && !s.Won {
		fillRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)
		drawTextScaled(screen, "GAME OVER", config.ScreenWidth/2, 180, 3, config.BossColor)
		drawTextCentered(screen, fmt.Sprintf("Final Score: %d", s.Score), config.ScreenWidth/2, 240, config.TextLightColor)
		drawTextCentered(screen, "Press R to restart, Esc for menu", config.ScreenWidth/2, 260, config.TextLightColor)
	}
	drawNotice(screen, s.Notice)
}

func drawBuilding(screen *ebiten.Image, b *component.Building, cam component.Camera) {
	x, y := b.X-cam.X, b.Y-cam.Y
	if x+b.W < 0 || x > config.ScreenWidth {
		return
	}
	opacity := b.Opacity()
	if b.Destroyed || opacity <= 0 {
		fillRect(screen, x, config.GroundY-cam.Y-6, b.W, 6, color.RGBA{70, 70, 70, 255})
		return
	}
	for _, d := range b.Details {
		clr := DarkenColor(b.Color)
		if d.Kind == "sign" {
			clr = config.CrateColor
		}
		fillRect(screen, d.X-cam.X, d.Y-cam.Y, d.W, d.H, Fade(clr, opacity))
	}
	fillRect(screen, x, y, b.W, b.H, Fade(b.Color, opacity))
	strokeRect(screen, x, y, b.W, b.H, 1, Fade(DarkenColor(b.Color), opacity))
	for _, w := range b.Windows {
		clr := config.WindowDarkColor
		if w.Lit {
			clr = config.WindowLitColor
		}
		h := w.Size
		if w.Industrial {
			h = w.Size / 2
		}
		fillRect(screen, w.X-cam.X, w.Y-cam.Y, w.Size, h, Fade(clr, opacity))
	}
	if b.Health < b.MaxHealth {
		fillRect(screen, x, y-6, b.W, 3, color.RGBA{80, 0, 0, 255})
		fillRect(screen, x, y-6, b.W*opacity, 3, color.RGBA{0, 220, 0, 255})
	}
}

func drawTank(screen *ebiten.Image, t component.Tank, cam component.Camera) {
	x, y := t.X-cam.X, t.Y-cam.Y
	fillRect(screen, x, y+t.H-8, t.W, 8, color.RGBA{40, 40, 40, 255})
	fillRect(screen, x+3, y+8, t.W-6, t.H-16, config.TankColor)
	cx, cy := t.Center()
	cx -= cam.X
	cy -= cam.Y
	fillCircle(screen, cx, cy-4, 8, DarkenColor(config.TankColor))
	line(screen, cx, cy-4, cx+math.Cos(t.TurretAngle)*24, cy-4+math.Sin(t.TurretAngle)*24, 4, color.RGBA{60, 60, 60, 255})
}

func (r *ShooterRenderer) drawHUD(screen *ebiten.Image, s app.ShooterSnapshot) {
	fillRect(screen, 0, config.ShooterHeight, config.ScreenWidth, config.ScreenHeight-config.ShooterHeight, Fade(config.OverlayColor, 0.8))
	y := float64(config.ShooterHeight + 10)
	drawText(screen, fmt.Sprintf("Score: %d", s.Score), 20, y, config.TextLightColor)
	drawText(screen, fmt.Sprintf("Buildings destroyed: %d/%d", s.Destroyed, config.BuildingCount), 20, y+20, config.TextLightColor)
	ammoClr := config.TextLightColor
	if s.Ammo < config.CrateAmmoBelow {
		ammoClr = config.BossColor
	}
	drawText(screen, fmt.Sprintf("Ammo: %d", s.Ammo), 260, y, ammoClr)
	drawText(screen, fmt.Sprintf("Money: $%d", s.Money), 260, y+20, config.CreditsColor)
	drawText(screen, "Weapon: "+s.Weapon.Name, 460, y, s.Weapon.Color.RGBA())
	drawText(screen, "Arrows move, click fires, B armory", 460, y+20, config.TextLightColor)
}

func drawArmory(screen *ebiten.Image, s app.ShooterSnapshot) {
	const w, rowH = 360.0, 24.0
	h := 40 + rowH*float64(len(s.Armory))
	x := (config.ScreenWidth - w) / 2
	y := 60.0
	fillRect(screen, x, y, w, h, Fade(config.OverlayColor, 0.9))
	strokeRect(screen, x, y, w, h, 2, config.CreditsColor)
	drawTextCentered(screen, "ARMORY  [1-5] buy or equip  [B] close", x+w/2, y+10, config.CreditsColor)
	for i, wpn := range s.Armory {
		status := fmt.Sprintf("$%d", wpn.Cost)
		if wpn.Owned {
			status = "owned"
		}
		label := fmt.Sprintf("%d. %-16s %s", i+1, wpn.Name, status)
		clr := config.TextLightColor
		if wpn.ID == s.Weapon.ID {
			clr = wpn.Color.RGBA()
		}
		drawText(screen, label, x+16, y+34+float64(i)*rowH, clr)
	}
}
