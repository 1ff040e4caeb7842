package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/types"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/gridmap"
	"testing"
)

type defenseFixture struct {
	catalog      *defs.Catalog
	world        *entity.DefenseWorld
	grid         *gridmap.Grid
	progress     *component.Progress
	ledger       *Ledger
	scheduler    *event.Scheduler
	dispatcher   *event.Dispatcher
	effects      *VisualEffectSystem
	combat       *CombatSystem
	projectiles  *ProjectileSystem
	movement     *MovementSystem
	waves        *WaveSystem
	construction *ConstructionSystem
	events       []event.Event
}

func newDefenseFixture(t *testing.T) *defenseFixture {
	t.Helper()
	catalog, err := defs.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	f := &defenseFixture{
		catalog:    catalog,
		world:      entity.NewDefenseWorld(),
		grid:       gridmap.NewGrid(config.GridWidth, config.GridHeight, config.GridSize, PathPoints(catalog.Path)),
		scheduler:  event.NewScheduler(),
		dispatcher: event.NewDispatcher(),
		ledger:     &Ledger{Balance: config.StartCredits},
		progress: &component.Progress{
			Wave:     1,
			Shield:   config.MaxShield,
			Running:  true,
			Unlocked: []string{"plasma", "laser", "missile", "freezer"},
		},
	}
	prng := utils.NewPRNGService(42)
	f.effects = NewVisualEffectSystem(f.world, prng)
	f.combat = NewCombatSystem(f.world, f.effects, f.dispatcher)
	f.projectiles = NewProjectileSystem(f.world, f.effects, f.dispatcher)
	f.movement = NewMovementSystem(f.world, f.grid, f.progress, f.effects, f.dispatcher)
	f.waves = NewWaveSystem(f.world, f.grid, catalog, f.progress, f.ledger, f.scheduler, f.effects, f.dispatcher, prng)
	f.construction = NewConstructionSystem(f.world, f.grid, catalog, f.progress, f.ledger, f.dispatcher)

	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) })
	f.dispatcher.SubscribeAll(record,
		event.WaveAnnounced, event.WaveStarted, event.WaveCompleted, event.ChoiceOffered,
		event.BossDefeated, event.AlienKilled, event.AlienLeaked, event.MothershipBurst,
		event.TowerFired, event.ProjectileBurst, event.TowerPlaced, event.TowerUpgraded, event.TowerSold, event.GameOver)
	return f
}

// alien кладёт пришельца в точку (x, y) с заданным здоровьем.
func (f *defenseFixture) alien(x, y, health float64) (types.EntityID, *component.Alien) {
	id := f.world.NewEntity()
	a := &component.Alien{
		Kind:      defs.AlienScout,
		Position:  component.Position{X: x, Y: y},
		Health:    health,
		MaxHealth: health,
		BaseSpeed: 1,
		Size:      10,
	}
	f.world.Aliens.Add(id, a)
	return id, a
}

// tower ставит башню напрямую, минуя экономику.
func (f *defenseFixture) tower(x, y float64, damage, rng float64, attack defs.Behavior) *component.Tower {
	t := &component.Tower{
		DefID:        "test",
		X:            x,
		Y:            y,
		Damage:       damage,
		Range:        rng,
		FireInterval: 10,
		Level:        1,
		Attack:       attack,
	}
	f.world.Towers.Add(f.world.NewEntity(), t)
	return t
}

func (f *defenseFixture) count(t event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
