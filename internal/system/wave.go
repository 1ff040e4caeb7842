// internal/system/wave.go
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
	"log"
	"math"
)

const killDebris = 12

// ScaledStats — характеристики пришельца после масштабирования волной.
type ScaledStats struct {
	Health float64
	Speed  float64
	Reward int
}

// ScaleAlien применяет множители волны и побеждённых боссов к базовым характеристикам.
// Материнский корабль дополнительно усиливается с каждой волной босса.
func ScaleAlien(def defs.AlienDefinition, wave, bossesDefeated int) ScaledStats {
	w := float64(wave - 1)
	healthMul := (1 + w*config.HealthPerWave) * math.Pow(config.BossHealthBuff, float64(bossesDefeated))
	speedMul := 1 + w*config.SpeedPerWave
	rewardMul := 1 + w*config.RewardPerWave

	if def.ID == defs.AlienMothership {
		bossIndex := float64(wave)/config.BossWaveEvery - 1
		healthMul *= 1 + bossIndex*config.BossExtraHealth
		speedMul *= 1 + bossIndex*config.BossExtraSpeed
		rewardMul *= 1 + bossIndex*config.BossExtraReward
	}

	return ScaledStats{
		Health: math.Floor(def.Health * healthMul),
		Speed:  def.Speed * speedMul,
		Reward: int(math.Floor(def.Reward * rewardMul)),
	}
}

// AlienCount — сколько пришельцев выпускает волна.
func AlienCount(wave int) int {
	return int(math.Floor(config.WaveBaseCount + config.WaveCountPerWave*float64(wave)))
}

// SpawnInterval — пауза между появлениями в секундах.
func SpawnInterval(wave int) float64 {
	ms := config.SpawnIntervalBaseMs - config.SpawnIntervalStepMs*wave
	if ms < config.SpawnIntervalFloorMs {
		ms = config.SpawnIntervalFloorMs
	}
	return float64(ms) / 1000
}

// AnnouncementText — подпись к номеру волны.
func AnnouncementText(wave int) string {
	switch {
	case wave%config.BossWaveEvery == 0:
		return "BOSS WAVE - MOTHERSHIP INCOMING"
	case wave == 1:
		return "Tutorial Wave - Only Scouts"
	case wave <= 3:
		return "Scouts & Fighters Incoming"
	case wave <= 6:
		return "Mixed Forces Approaching"
	case wave <= 9:
		return "Heavy Units Detected"
	}
	return "Full Alien Fleet Incoming!"
}

// WaveSystem ведёт волны: объявление, спавн, завершение, выбор особой башни.
type WaveSystem struct {
	world           *entity.DefenseWorld
	grid            *gridmap.Grid
	catalog         *defs.Catalog
	progress        *component.Progress
	ledger          *Ledger
	scheduler       *event.Scheduler
	effects         *VisualEffectSystem
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
	spawnTimer      event.TimerID
}

func NewWaveSystem(world *entity.DefenseWorld, grid *gridmap.Grid, catalog *defs.Catalog,
	progress *component.Progress, ledger *Ledger, scheduler *event.Scheduler,
	effects *VisualEffectSystem, eventDispatcher *event.Dispatcher, prng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		world:           world,
		grid:            grid,
		catalog:         catalog,
		progress:        progress,
		ledger:          ledger,
		scheduler:       scheduler,
		effects:         effects,
		eventDispatcher: eventDispatcher,
		prng:            prng,
	}
}

// StartWave объявляет текущую волну. Все отложенные вызовы прошлой волны отбрасываются.
func (s *WaveSystem) StartWave() {
	p := s.progress
	s.scheduler.NextGeneration()
	p.Phase = component.PhaseAnnouncing
	p.Spawned = 0
	p.SpawnTarget = AlienCount(p.Wave)
	p.AllSpawned = false

	info := event.WaveInfo{
		Wave:       p.Wave,
		AlienCount: p.SpawnTarget,
		Boss:       p.BossWave(),
		Message:    AnnouncementText(p.Wave),
	}
	log.Printf("[WaveSystem] Wave %d announced: %d aliens, boss=%v", p.Wave, p.SpawnTarget, info.Boss)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveAnnounced, Data: info})

	s.scheduler.After(config.AnnounceDelay, func() {
		p.Phase = component.PhaseSpawning
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: info})
		s.spawnTimer = s.scheduler.Every(SpawnInterval(p.Wave), s.spawnTick)
	})
}

func (s *WaveSystem) spawnTick() {
	p := s.progress
	if !p.Running || p.Paused {
		return
	}
	if p.Spawned >= p.SpawnTarget {
		s.finishSpawning()
		return
	}
	s.Spawn(s.chooseKind())
	p.Spawned++
	if p.Spawned >= p.SpawnTarget {
		s.finishSpawning()
	}
}

func (s *WaveSystem) finishSpawning() {
	s.progress.AllSpawned = true
	s.progress.Phase = component.PhaseInProgress
	s.scheduler.Cancel(s.spawnTimer)
}

// chooseKind выбирает тип по полосе волны. Первый на волне босса — материнский корабль,
// случайных материнских кораблей на ней не бывает.
func (s *WaveSystem) chooseKind() string {
	p := s.progress
	boss := p.BossWave()
	if boss && p.Spawned == 0 {
		return defs.AlienMothership
	}
	band, ok := s.catalog.BandFor(p.Wave, boss)
	if !ok {
		return defs.AlienScout
	}
	kind := s.prng.ChooseWeighted(band.Weights)
	if kind == "" || (boss && kind == defs.AlienMothership) {
		return defs.AlienCruiser
	}
	return kind
}

// Spawn выпускает пришельца на старте маршрута.
func (s *WaveSystem) Spawn(kind string) types.EntityID {
	def, ok := s.catalog.Aliens[kind]
	if !ok {
		log.Printf("[WaveSystem] Unknown alien kind %q", kind)
		return types.None
	}
	stats := ScaleAlien(def, s.progress.Wave, s.progress.BossesDefeated)
	x, y := s.grid.Waypoint(0)
	return s.add(def, stats, x, y, 0, s.chooseShape(def))
}

func (s *WaveSystem) add(def defs.AlienDefinition, stats ScaledStats, x, y float64, pathIndex int, shape string) types.EntityID {
	id := s.world.NewEntity()
	s.world.Aliens.Add(id, &component.Alien{
		Kind:      def.ID,
		Position:  component.Position{X: x, Y: y},
		PathIndex: pathIndex,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		BaseSpeed: stats.Speed,
		Reward:    stats.Reward,
		Size:      def.Size,
		Shape:     shape,
		Color:     def.Color.RGBA(),
	})
	return id
}

// chooseShape открывает новые силуэты по мере роста волн.
func (s *WaveSystem) chooseShape(def defs.AlienDefinition) string {
	n := len(def.Shapes)
	wave := s.progress.Wave
	var i int
	switch {
	case wave <= 3:
		i = 0
	case wave <= 6:
		i = s.prng.Intn(min(2, n))
	case wave <= 9:
		i = s.prng.Intn(n)
	default:
		start := n / 3
		i = start + s.prng.Intn(n-start)
	}
	return def.Shapes[i]
}

// ResolveCasualties убирает погибших пришельцев в том же тике, начисляет награду
// и раскалывает материнские корабли на истребители.
func (s *WaveSystem) ResolveCasualties() {
	type burst struct{ x, y float64 }
	var bursts []burst

	s.world.Aliens.RemoveIf(func(id types.EntityID, alien *component.Alien) bool {
		if !alien.Dead() {
			return false
		}
		s.ledger.Earn(alien.Reward)
		s.progress.Kills++
		s.effects.Debris(alien.X, alien.Y, alien.Color, killDebris)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.AlienKilled,
			Data: event.AlienInfo{ID: id, Kind: alien.Kind, X: alien.X, Y: alien.Y, Reward: alien.Reward},
		})
		if alien.Kind == defs.AlienMothership {
			bursts = append(bursts, burst{alien.X, alien.Y})
		}
		return true
	})

	for _, b := range bursts {
		s.burst(b.x, b.y)
	}
}

// burst выпускает истребители вокруг точки гибели. Они продолжают путь
// с ближайшей к этой точке вехи, а не с начала.
func (s *WaveSystem) burst(x, y float64) {
	fighter := s.catalog.Aliens[defs.AlienFighter]
	stats := ScaleAlien(fighter, s.progress.Wave, s.progress.BossesDefeated)
	pathIndex := min(s.grid.NearestWaypoint(x, y), len(s.grid.Path)-1)

	for i := 0; i < config.BurstCount; i++ {
		angle := math.Pi * 2 * float64(i) / config.BurstCount
		shape := fighter.Shapes[s.prng.Intn(len(fighter.Shapes))]
		s.add(fighter, stats,
			x+math.Cos(angle)*config.BurstOffset,
			y+math.Sin(angle)*config.BurstOffset,
			pathIndex, shape)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MothershipBurst,
		Data: event.AlienInfo{Kind: defs.AlienMothership, X: x, Y: y},
	})
}

// Update проверяет завершение волны: все выпущены и никого не осталось.
func (s *WaveSystem) Update() {
	p := s.progress
	if !p.Running || !p.AllSpawned || s.world.Aliens.Len() > 0 {
		return
	}
	if p.Phase != component.PhaseSpawning && p.Phase != component.PhaseInProgress {
		return
	}
	s.completeWave()
}

func (s *WaveSystem) completeWave() {
	p := s.progress
	completed := p.Wave
	bonus := WaveBonus(completed)

	p.Phase = component.PhaseComplete
	s.ledger.Earn(bonus)
	p.Shield = min(config.MaxShield, p.Shield+config.ShieldWaveBonus)
	if completed%config.BossWaveEvery == 0 {
		p.BossesDefeated++
		log.Printf("[WaveSystem] Boss wave %d cleared, bosses defeated: %d", completed, p.BossesDefeated)
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.WaveInfo{Wave: completed, Boss: true}})
	}
	p.Wave++

	log.Printf("[WaveSystem] Wave %d complete, bonus %d", completed, bonus)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCompleted,
		Data: event.WaveInfo{Wave: completed, Bonus: bonus, Boss: p.BossWave()},
	})

	if completed == config.ChoiceAfterWave && p.SpecialChoice == "" {
		p.Phase = component.PhaseAwaitingChoice
		p.Paused = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.ChoiceOffered, Data: event.WaveInfo{Wave: completed, Bonus: bonus}})
		return
	}
	s.StartWave()
}

// ChooseSpecial открывает особую башню. Выбор делается один раз и снимает паузу.
func (s *WaveSystem) ChooseSpecial(towerID string) bool {
	p := s.progress
	if p.Phase != component.PhaseAwaitingChoice || p.SpecialChoice != "" {
		return false
	}
	def, ok := s.catalog.Tower(towerID)
	if !ok || !def.Special {
		return false
	}
	p.SpecialChoice = towerID
	p.Unlocked = append(p.Unlocked, towerID)
	p.Paused = false
	log.Printf("[WaveSystem] Special tower %s unlocked", towerID)
	s.StartWave()
	return true
}
