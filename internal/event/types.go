// internal/event/types.go
package event

import (
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/types"
)

const (
	WaveAnnounced     EventType = "WaveAnnounced"     // Объявлена новая волна
	WaveStarted       EventType = "WaveStarted"       // Начался спавн
	WaveCompleted     EventType = "WaveCompleted"     // Волна зачищена
	ChoiceOffered     EventType = "ChoiceOffered"     // Предложен выбор особой башни
	BossDefeated      EventType = "BossDefeated"      // Пройдена волна босса
	AlienKilled       EventType = "AlienKilled"       // Пришелец уничтожен
	AlienLeaked       EventType = "AlienLeaked"       // Пришелец дошёл до портала
	MothershipBurst   EventType = "MothershipBurst"   // Материнский корабль распался на истребители
	TowerFired        EventType = "TowerFired"        // Башня выстрелила
	ProjectileBurst   EventType = "ProjectileBurst"   // Взрыв ракеты
	TowerPlaced       EventType = "TowerPlaced"       // Башня построена
	TowerUpgraded     EventType = "TowerUpgraded"
	TowerSold         EventType = "TowerSold"
	ShotFired         EventType = "ShotFired"         // Выстрел танка
	BuildingHit       EventType = "BuildingHit"
	BuildingDestroyed EventType = "BuildingDestroyed" // Здание разрушено
	CratePicked       EventType = "CratePicked"       // Подобран ящик с патронами
	CityCleared       EventType = "CityCleared"       // Все здания разрушены
	GameOver          EventType = "GameOver"
)

// WaveInfo — данные событий волны.
type WaveInfo struct {
	Wave       int
	AlienCount int
	Boss       bool
	Bonus      int
	Message    string
}

// AlienInfo — данные событий о пришельце.
type AlienInfo struct {
	ID     types.EntityID
	Kind   string
	X, Y   float64
	Reward int
}

// TowerInfo — данные событий о башне.
type TowerInfo struct {
	ID     types.EntityID
	DefID  string
	Name   string
	Level  int
	Amount int // цена, стоимость улучшения или возврат при продаже
	Attack defs.BehaviorKind
}

// BuildingInfo — данные событий о здании.
type BuildingInfo struct {
	ID     types.EntityID
	Points int
	Money  int
	X, Y   float64
}
