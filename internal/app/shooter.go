// internal/app/shooter.go
package app

import (
	"errors"
	"fmt"
	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/system"
	"go-space-arcade/internal/ui"
	"go-space-arcade/internal/utils"
	"log"

	"github.com/google/uuid"
)

// Shooter — игра про здания: танк, город, оружейная.
type Shooter struct {
	SessionID       uuid.UUID
	Catalog         *defs.Catalog
	World           *entity.ShooterWorld
	Stats           *component.ShooterStats
	Wallet          *system.Ledger
	Armory          *system.Armory
	Scheduler       *event.Scheduler
	EventDispatcher *event.Dispatcher
	Notifier        *ui.Notifier

	player    audio.Player
	rng       *utils.PRNGService
	tank      *system.TankSystem
	artillery *system.ArtillerySystem
	powerups  *system.PowerUpSystem
	effects   *system.ShooterEffectSystem
}

// NewShooter собирает игру и строит первый город.
func NewShooter(catalog *defs.Catalog, player audio.Player, seed int64) *Shooter {
	if catalog == nil {
		panic("catalog cannot be nil")
	}
	if player == nil {
		player = audio.Nop{}
	}

	g := &Shooter{
		Catalog:         catalog,
		World:           entity.NewShooterWorld(),
		Stats:           &component.ShooterStats{},
		Wallet:          &system.Ledger{Balance: config.StartMoney},
		Armory:          system.NewArmory(catalog.Weapons),
		Scheduler:       event.NewScheduler(),
		EventDispatcher: event.NewDispatcher(),
		Notifier:        ui.NewNotifier(),
		player:          player,
		rng:             utils.NewPRNGService(seed),
	}
	g.tank = system.NewTankSystem(g.World)
	g.effects = system.NewShooterEffectSystem(g.World, g.rng)
	g.artillery = system.NewArtillerySystem(g.World, g.Armory, g.Stats, g.Wallet, g.effects, g.EventDispatcher)
	g.powerups = system.NewPowerUpSystem(g.World, g.Stats, g.rng, g.EventDispatcher)

	g.EventDispatcher.SubscribeAll(&shooterListener{game: g},
		event.ShotFired, event.BuildingHit, event.BuildingDestroyed,
		event.CratePicked, event.CityCleared, event.GameOver)

	g.Restart()
	return g
}

// Restart строит новый город. Деньги и купленное оружие сохраняются.
func (g *Shooter) Restart() {
	g.SessionID = uuid.New()
	g.Scheduler.NextGeneration()
	g.World.Reset()
	*g.Stats = component.ShooterStats{Ammo: config.StartAmmo, Running: true}
	g.Armory.Open = false
	g.Armory.LastShot = -1 << 20

	g.tank.Reset(g.Armory.Weapon().ID)
	system.GenerateCity(g.World, g.Catalog.Buildings, g.rng)
	log.Printf("[Shooter %s] New city with %d buildings, $%d", g.shortID(), g.World.Buildings.Len(), g.Wallet.Balance)
}

func (g *Shooter) shortID() string {
	return g.SessionID.String()[:8]
}

// Update — один тик: танк, камера, снаряды, эффекты, ящики, итог.
func (g *Shooter) Update(dt float64, in Input) {
	dt = utils.Clamp(dt, 0, config.MaxDeltaTime)
	g.Scheduler.Update(dt)
	g.Notifier.Update(dt)
	if !g.Stats.Running {
		return
	}
	g.Stats.Tick++

	g.tank.Update(system.TankControls{
		Left:    in.Pressed(KeyLeft),
		Right:   in.Pressed(KeyRight),
		Up:      in.Pressed(KeyUp),
		Down:    in.Pressed(KeyDown),
		CursorX: in.CursorX,
		CursorY: in.CursorY,
	})
	g.tank.UpdateCamera()
	g.artillery.Update()
	g.effects.Update()
	g.powerups.Update()
	g.artillery.CheckOutcome()
}

// Fire стреляет из текущего оружия, если позволяет скорострельность.
func (g *Shooter) Fire() bool {
	return g.artillery.Fire()
}

func (g *Shooter) ToggleArmory() {
	g.Armory.Open = !g.Armory.Open
}

// ArmorySlot покупает или экипирует n-е (с единицы) оружие. Работает только в открытой оружейной.
func (g *Shooter) ArmorySlot(n int) {
	if !g.Armory.Open {
		return
	}
	action, err := g.Armory.Select(n-1, g.Wallet)
	if errors.Is(err, system.ErrUnknownWeapon) {
		return
	}
	weapon := g.Armory.Weapons[n-1]
	switch {
	case errors.Is(err, system.ErrInsufficientFunds):
		g.Notifier.Show(fmt.Sprintf("Not enough money! Need $%d", weapon.Cost), ui.SeverityError)
		return
	case action == system.ArmoryPurchased:
		g.Notifier.Show(fmt.Sprintf("Purchased %s!", weapon.Name), ui.SeveritySuccess)
	default:
		g.Notifier.Show(fmt.Sprintf("Equipped %s!", weapon.Name), ui.SeverityInfo)
	}
	g.World.Tank.Weapon = weapon.ID
}

// shooterListener переводит события в звуки и сообщения.
type shooterListener struct {
	game *Shooter
}

func (l *shooterListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.ShotFired:
		g.player.Play(audio.CueShoot)
	case event.BuildingHit:
		g.player.Play(audio.CueExplosion)
	case event.BuildingDestroyed:
		info := e.Data.(event.BuildingInfo)
		g.player.Play(audio.CueExplosion)
		g.Notifier.Show(fmt.Sprintf("Building Destroyed! +%d points, +$%d", info.Points, info.Money), ui.SeveritySuccess)
	case event.CratePicked:
		g.player.Play(audio.CuePowerUp)
		g.Notifier.Show(fmt.Sprintf("Ammo Refill! +%d rounds", config.CrateAmmo), ui.SeverityInfo)
	case event.CityCleared:
		g.Notifier.Show(fmt.Sprintf("All Buildings Destroyed! Bonus: +%d points", config.WinBonus), ui.SeveritySuccess)
		g.Scheduler.After(config.RestartDelay, g.Restart)
	case event.GameOver:
		g.Notifier.Show(fmt.Sprintf("Game Over! Final Score: %d", g.Stats.Score), ui.SeverityError)
	}
}
