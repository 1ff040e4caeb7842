// internal/app/snapshot.go
package app

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/types"
	"go-space-arcade/internal/ui"
	"go-space-arcade/pkg/gridmap"
	"image/color"
)

// ProjectileView — снаряд вместе с копией следа.
type ProjectileView struct {
	component.Position
	Size  float64
	Kind  defs.BehaviorKind
	Color color.RGBA
	Trail []component.Position
}

// Notice — видимое сообщение.
type Notice struct {
	Text     string
	Severity ui.Severity
	Visible  bool
}

func noticeOf(n *ui.Notifier) Notice {
	return Notice{Text: n.Text, Severity: n.Severity, Visible: n.Visible()}
}

// DefenseSnapshot — копия состояния защиты станции для отрисовки.
type DefenseSnapshot struct {
	Towers      []component.Tower
	Aliens      []component.Alien
	Projectiles []ProjectileView
	Particles   []component.Particle
	Stars       []component.Star
	Path        []gridmap.Point

	Hover      gridmap.Point
	HoverValid bool
	HoverFree  bool
	HoverInfo  *ui.InfoPanel

	Credits    int
	Shield     int
	Wave       int
	Kills      int
	TowerCount int
	Phase      component.WavePhase
	Paused     bool
	Running    bool
	Selected   string

	Shop         []ui.Button
	ShopTop      int
	Announcement Announcement
	Choices      []ui.ChoiceOption
	Notice       Notice
}

// Snapshot копирует состояние. Изменения снимка не влияют на игру.
func (d *Defense) Snapshot() DefenseSnapshot {
	p := d.Progress
	s := DefenseSnapshot{
		Path:         append([]gridmap.Point(nil), d.Grid.Path...),
		Stars:        append([]component.Star(nil), d.World.Stars...),
		Hover:        d.Hover,
		HoverValid:   d.HoverValid,
		Credits:      d.Ledger.Balance,
		Shield:       p.Shield,
		Wave:         p.Wave,
		Kills:        p.Kills,
		TowerCount:   d.World.Towers.Len(),
		Phase:        p.Phase,
		Paused:       p.Paused,
		Running:      p.Running,
		Selected:     d.Selected,
		Shop:         d.Shop.Buttons(d.ShopTowers()),
		ShopTop:      d.Shop.Top(),
		Announcement: d.Announcement,
		Notice:       noticeOf(d.Notifier),
	}

	d.World.Towers.Each(func(_ types.EntityID, t *component.Tower) bool {
		s.Towers = append(s.Towers, *t)
		return true
	})
	d.World.Aliens.Each(func(_ types.EntityID, a *component.Alien) bool {
		s.Aliens = append(s.Aliens, *a)
		return true
	})
	d.World.Projectiles.Each(func(_ types.EntityID, pr *component.Projectile) bool {
		s.Projectiles = append(s.Projectiles, viewOf(pr))
		return true
	})
	d.World.Particles.Each(func(_ types.EntityID, pt *component.Particle) bool {
		s.Particles = append(s.Particles, *pt)
		return true
	})

	if d.HoverValid {
		cell, _ := d.Grid.Cell(d.Hover.X, d.Hover.Y)
		s.HoverFree = !cell.Occupied
		if _, tower, ok := d.construction.TowerAt(d.Hover.X, d.Hover.Y); ok {
			info := ui.NewTowerInfo(tower)
			s.HoverInfo = &info
		}
	}
	if d.AwaitingChoice() {
		s.Choices = ui.ChoiceOptions(d.Catalog.SpecialTowers())
	}
	return s
}

func viewOf(p *component.Projectile) ProjectileView {
	v := ProjectileView{Position: p.Position, Size: p.Size, Kind: p.Attack.Kind, Color: p.Color}
	if p.Trail != nil {
		v.Trail = p.Trail.Points()
	}
	return v
}

// ShooterSnapshot — копия состояния игры про здания.
type ShooterSnapshot struct {
	Tank        component.Tank
	Camera      component.Camera
	Buildings   []component.Building
	Projectiles []ProjectileView
	Explosions  []component.Explosion
	Debris      []component.Debris
	PowerUps    []component.PowerUp

	Score      int
	Destroyed  int
	Ammo       int
	Money      int
	Running    bool
	Won        bool
	Weapon     defs.WeaponDefinition
	Armory     []defs.WeaponDefinition
	ArmoryOpen bool
	Notice     Notice
}

func (g *Shooter) Snapshot() ShooterSnapshot {
	s := ShooterSnapshot{
		Tank:       g.World.Tank,
		Camera:     g.World.Camera,
		Score:      g.Stats.Score,
		Destroyed:  g.Stats.Destroyed,
		Ammo:       g.Stats.Ammo,
		Money:      g.Wallet.Balance,
		Running:    g.Stats.Running,
		Won:        g.Stats.Won,
		Weapon:     g.Armory.Weapon(),
		Armory:     append([]defs.WeaponDefinition(nil), g.Armory.Weapons...),
		ArmoryOpen: g.Armory.Open,
		Notice:     noticeOf(g.Notifier),
	}
	g.World.Buildings.Each(func(_ types.EntityID, b *component.Building) bool {
		s.Buildings = append(s.Buildings, *b)
		return true
	})
	g.World.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) bool {
		s.Projectiles = append(s.Projectiles, viewOf(p))
		return true
	})
	g.World.Explosions.Each(func(_ types.EntityID, e *component.Explosion) bool {
		s.Explosions = append(s.Explosions, *e)
		return true
	})
	g.World.Debris.Each(func(_ types.EntityID, d *component.Debris) bool {
		s.Debris = append(s.Debris, *d)
		return true
	})
	g.World.PowerUps.Each(func(_ types.EntityID, p *component.PowerUp) bool {
		s.PowerUps = append(s.PowerUps, *p)
		return true
	})
	return s
}
