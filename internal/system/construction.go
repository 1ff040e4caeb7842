// internal/system/construction.go
package system

import (
	"errors"
	"fmt"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/types"
	"go-space-arcade/pkg/gridmap"
	"math"
	"slices"
)

var (
	ErrOccupied          = errors.New("cell is occupied")
	ErrOutOfBounds       = errors.New("cell is outside the field")
	ErrTowerCap          = errors.New("tower limit reached")
	ErrInsufficientFunds = errors.New("insufficient credits")
	ErrMaxLevel          = errors.New("tower is already max level")
	ErrNoTower           = errors.New("no tower in this cell")
	ErrLocked            = errors.New("tower type is locked")
)

// ConstructionSystem строит, улучшает и продаёт башни.
// Клетка занята тогда и только тогда, когда это путь или на ней стоит башня.
type ConstructionSystem struct {
	world           *entity.DefenseWorld
	grid            *gridmap.Grid
	catalog         *defs.Catalog
	progress        *component.Progress
	ledger          *Ledger
	eventDispatcher *event.Dispatcher
}

func NewConstructionSystem(world *entity.DefenseWorld, grid *gridmap.Grid, catalog *defs.Catalog,
	progress *component.Progress, ledger *Ledger, eventDispatcher *event.Dispatcher) *ConstructionSystem {
	return &ConstructionSystem{
		world:           world,
		grid:            grid,
		catalog:         catalog,
		progress:        progress,
		ledger:          ledger,
		eventDispatcher: eventDispatcher,
	}
}

// Place ставит башню defID в клетку (x, y).
func (s *ConstructionSystem) Place(x, y int, defID string) (types.EntityID, error) {
	cell, ok := s.grid.Cell(x, y)
	if !ok {
		return types.None, ErrOutOfBounds
	}
	if cell.Occupied {
		return types.None, ErrOccupied
	}
	if s.world.Towers.Len() >= config.MaxTowers {
		return types.None, ErrTowerCap
	}
	def, ok := s.catalog.Tower(defID)
	if !ok || !slices.Contains(s.progress.Unlocked, defID) {
		return types.None, ErrLocked
	}
	if !s.ledger.Spend(def.Cost) {
		return types.None, ErrInsufficientFunds
	}

	id := s.world.NewEntity()
	s.grid.Place(x, y, uint64(id))
	px, py := s.grid.ToPixel(gridmap.Point{X: x, Y: y})
	tower := &component.Tower{
		DefID:        def.ID,
		Name:         def.Name,
		GridX:        x,
		GridY:        y,
		X:            px,
		Y:            py,
		Damage:       def.Damage,
		Range:        def.Range,
		FireInterval: def.FireInterval,
		Level:        1,
		BaseCost:     def.Cost,
		Invested:     def.Cost,
		Attack:       def.Attack,
		Color:        def.Color.RGBA(),
		Size:         def.Size,
	}
	s.world.Towers.Add(id, tower)
	s.dispatch(event.TowerPlaced, id, tower, def.Cost)
	return id, nil
}

// TowerAt возвращает башню в клетке.
func (s *ConstructionSystem) TowerAt(x, y int) (types.EntityID, *component.Tower, bool) {
	cell, ok := s.grid.Cell(x, y)
	if !ok || cell.Tower == 0 {
		return types.None, nil, false
	}
	id := types.EntityID(cell.Tower)
	tower, ok := s.world.Towers.Get(id)
	return id, tower, ok
}

// Upgrade повышает уровень башни в клетке. При отказе ничего не меняется.
func (s *ConstructionSystem) Upgrade(x, y int) (*component.Tower, error) {
	id, tower, ok := s.TowerAt(x, y)
	if !ok {
		return nil, ErrNoTower
	}
	if tower.Level >= config.MaxTowerLevel {
		return tower, ErrMaxLevel
	}
	cost := UpgradeCost(tower.BaseCost, tower.Level)
	if !s.ledger.Spend(cost) {
		return tower, ErrInsufficientFunds
	}
	tower.Level++
	tower.Invested += cost
	tower.Damage = math.Floor(tower.Damage * config.UpgradeDamageMul)
	tower.Range += config.UpgradeRangeBonus
	s.dispatch(event.TowerUpgraded, id, tower, cost)
	return tower, nil
}

// Sell убирает башню и возвращает половину вложенного.
func (s *ConstructionSystem) Sell(x, y int) (int, error) {
	id, tower, ok := s.TowerAt(x, y)
	if !ok {
		return 0, ErrNoTower
	}
	refund := SellRefund(tower.BaseCost, tower.Level)
	s.world.Towers.Remove(id)
	s.grid.Release(x, y)
	s.ledger.Earn(refund)
	s.dispatch(event.TowerSold, id, tower, refund)
	return refund, nil
}

func (s *ConstructionSystem) dispatch(t event.EventType, id types.EntityID, tower *component.Tower, amount int) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.TowerInfo{
			ID:     id,
			DefID:  tower.DefID,
			Name:   tower.Name,
			Level:  tower.Level,
			Amount: amount,
			Attack: tower.Attack.Kind,
		},
	})
}

// CheckGrid проверяет связь башен и клеток. Возвращает первую найденную ошибку.
func (s *ConstructionSystem) CheckGrid() error {
	seen := make(map[gridmap.Point]types.EntityID)
	var err error
	s.world.Towers.Each(func(id types.EntityID, tower *component.Tower) bool {
		p := gridmap.Point{X: tower.GridX, Y: tower.GridY}
		if other, dup := seen[p]; dup {
			err = fmt.Errorf("towers %d and %d share cell %v", other, id, p)
			return false
		}
		seen[p] = id
		cell, ok := s.grid.Cell(p.X, p.Y)
		if !ok || !cell.Occupied || types.EntityID(cell.Tower) != id {
			err = fmt.Errorf("cell %v does not reference tower %d", p, id)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	for x := 0; x < s.grid.Width; x++ {
		for y := 0; y < s.grid.Height; y++ {
			cell, _ := s.grid.Cell(x, y)
			if cell.Occupied != (cell.IsPath || cell.Tower != 0) {
				return fmt.Errorf("cell (%d,%d): occupancy does not match its contents", x, y)
			}
			if cell.Tower != 0 && !s.world.Towers.Has(types.EntityID(cell.Tower)) {
				return fmt.Errorf("cell (%d,%d) references missing tower %d", x, y, cell.Tower)
			}
		}
	}
	return nil
}
