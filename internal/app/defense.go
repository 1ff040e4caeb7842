// internal/app/defense.go
package app

import (
	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/system"
	"go-space-arcade/internal/ui"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/gridmap"
	"log"

	"github.com/google/uuid"
)

// Announcement — крупная надпись о начале волны.
type Announcement struct {
	Title     string
	Subtitle  string
	Boss      bool
	remaining float64
}

func (a *Announcement) Update(dt float64) {
	if a.remaining > 0 {
		a.remaining -= dt
	}
}

func (a *Announcement) Visible() bool {
	return a.remaining > 0
}

// Defense — защита станции: владеет миром, системами и состоянием интерфейса.
type Defense struct {
	SessionID       uuid.UUID
	Catalog         *defs.Catalog
	World           *entity.DefenseWorld
	Grid            *gridmap.Grid
	Progress        *component.Progress
	Ledger          *system.Ledger
	Scheduler       *event.Scheduler
	EventDispatcher *event.Dispatcher
	Notifier        *ui.Notifier
	Shop            ui.ShopSlide
	Announcement    Announcement
	Selected        string // id башни для постройки
	Hover           gridmap.Point
	HoverValid      bool

	player       audio.Player
	rng          *utils.PRNGService
	effects      *system.VisualEffectSystem
	movement     *system.MovementSystem
	status       *system.StatusEffectSystem
	combat       *system.CombatSystem
	projectiles  *system.ProjectileSystem
	waves        *system.WaveSystem
	construction *system.ConstructionSystem
}

// NewDefense собирает игру и сразу запускает первую волну.
func NewDefense(catalog *defs.Catalog, player audio.Player, seed int64) *Defense {
	if catalog == nil {
		panic("catalog cannot be nil")
	}
	if player == nil {
		player = audio.Nop{}
	}

	d := &Defense{
		Catalog:         catalog,
		World:           entity.NewDefenseWorld(),
		Grid:            gridmap.NewGrid(config.GridWidth, config.GridHeight, config.GridSize, system.PathPoints(catalog.Path)),
		Progress:        &component.Progress{},
		Ledger:          &system.Ledger{},
		Scheduler:       event.NewScheduler(),
		EventDispatcher: event.NewDispatcher(),
		Notifier:        ui.NewNotifier(),
		player:          player,
		rng:             utils.NewPRNGService(seed),
	}
	d.effects = system.NewVisualEffectSystem(d.World, d.rng)
	d.movement = system.NewMovementSystem(d.World, d.Grid, d.Progress, d.effects, d.EventDispatcher)
	d.status = system.NewStatusEffectSystem(d.World)
	d.combat = system.NewCombatSystem(d.World, d.effects, d.EventDispatcher)
	d.projectiles = system.NewProjectileSystem(d.World, d.effects, d.EventDispatcher)
	d.waves = system.NewWaveSystem(d.World, d.Grid, catalog, d.Progress, d.Ledger,
		d.Scheduler, d.effects, d.EventDispatcher, d.rng)
	d.construction = system.NewConstructionSystem(d.World, d.Grid, catalog, d.Progress, d.Ledger, d.EventDispatcher)

	listener := &defenseListener{game: d}
	d.EventDispatcher.SubscribeAll(listener,
		event.WaveAnnounced, event.WaveStarted, event.WaveCompleted, event.ChoiceOffered, event.BossDefeated,
		event.AlienKilled, event.MothershipBurst, event.TowerFired, event.ProjectileBurst,
		event.TowerPlaced, event.TowerUpgraded, event.TowerSold, event.GameOver)

	d.Restart()
	return d
}

// Restart начинает игру заново. Отложенные вызовы прошлой игры не выполнятся.
func (d *Defense) Restart() {
	d.SessionID = uuid.New()
	d.Scheduler.NextGeneration()
	d.World.Reset()
	d.Grid.Reset()

	*d.Progress = component.Progress{
		Wave:     1,
		Shield:   config.MaxShield,
		Running:  true,
		Unlocked: baseTowers(d.Catalog),
	}
	d.Ledger.Balance = config.StartCredits
	d.Selected = d.Progress.Unlocked[0]
	d.Shop = ui.ShopSlide{}
	d.effects.CreateStars()

	log.Printf("[Defense %s] New game, %d credits", d.shortID(), d.Ledger.Balance)
	d.waves.StartWave()
}

func baseTowers(catalog *defs.Catalog) []string {
	var ids []string
	for _, t := range catalog.Towers {
		if !t.Special {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (d *Defense) shortID() string {
	return d.SessionID.String()[:8]
}

// Update продвигает игру на один кадр. Один вызов — один тик симуляции;
// dt в секундах нужен только планировщику и таймерам интерфейса.
func (d *Defense) Update(dt float64) {
	dt = utils.Clamp(dt, 0, config.MaxDeltaTime)
	d.Scheduler.Update(dt)
	d.Notifier.Update(dt)
	d.Announcement.Update(dt)
	d.Shop.Update()

	p := d.Progress
	if !p.Running || p.Paused {
		return
	}
	p.Tick++

	d.effects.Update()
	d.movement.Update()
	if !p.Running {
		return
	}
	d.status.Update()
	d.combat.Update(p.Tick)
	d.projectiles.Update()
	d.waves.ResolveCasualties()
	d.waves.Update()
}

// ShopTowers — открытые башни в порядке каталога.
func (d *Defense) ShopTowers() []defs.TowerDefinition {
	var out []defs.TowerDefinition
	for _, t := range d.Catalog.Towers {
		for _, id := range d.Progress.Unlocked {
			if id == t.ID {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// AwaitingChoice сообщает, что игра ждёт выбора особой башни.
func (d *Defense) AwaitingChoice() bool {
	return d.Progress.Phase == component.PhaseAwaitingChoice
}

func (d *Defense) notify(text string, severity ui.Severity) {
	d.Notifier.Show(text, severity)
}
