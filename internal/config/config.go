// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 500
	MaxDeltaTime = 0.06
	TicksPerSec  = 60

	NoticeDuration = 3.0 // секунды до автоскрытия сообщения
)

// Tower defense
const (
	GridSize   = 50
	GridWidth  = 800 / GridSize
	GridHeight = 500 / GridSize

	FieldWidth  = 800
	FieldHeight = 500

	MaxTowers       = 20
	StartCredits    = 200
	MaxShield       = 100
	ShieldLeakCost  = 10 // урон щиту за пришельца, дошедшего до портала
	ShieldWaveBonus = 10
	WaveBonusBase   = 60
	WaveBonusStep   = 15

	MaxTowerLevel      = 3
	UpgradeCostFactor  = 0.8
	UpgradeDamageMul   = 1.4
	UpgradeRangeBonus  = 15
	SellRefundFraction = 0.5

	AnnounceDelay        = 3.0 // секунды
	SpawnIntervalBaseMs  = 1500
	SpawnIntervalStepMs  = 20
	SpawnIntervalFloorMs = 1000
	WaveBaseCount        = 8
	WaveCountPerWave     = 1.5
	BossWaveEvery        = 10
	ChoiceAfterWave      = 9

	WaypointArrival = 5.0
	SlowDuration    = 60 // тиков
	SlowMultiplier  = 0.5

	ChainFalloff    = 0.7
	SplashFalloff   = 0.6
	HealthPerWave   = 0.20
	SpeedPerWave    = 0.06
	RewardPerWave   = 0.12
	BossHealthBuff  = 1.5
	BossExtraHealth = 0.8
	BossExtraSpeed  = 0.15
	BossExtraReward = 0.5

	BurstCount  = 4
	BurstOffset = 40.0

	BoltSpeed      = 10.0
	BoltSize       = 5.0
	MissileSpeed   = 6.0
	MissileSize    = 8.0
	RailSpeed      = 15.0
	RailSize       = 6.0
	DefenseTrail   = 10
	ShopSlideMax   = 130
	ShopSlideStep  = 8
	StarCount      = 100
	AlienSpinSpeed = 0.02
)

// Building shooter
const (
	MapWidth       = 1600
	GroundY        = 350
	ShooterHeight  = 400
	BuildingCount  = 18
	StartMoney     = 500
	StartAmmo      = 100
	TankStartX     = 50
	TankStartY     = 320
	TankWidth      = 40
	TankHeight     = 30
	TankSpeed      = 2.0
	CameraSmooth   = 0.08
	ShooterTrail   = 5
	ProjectileSlop = 50
	ShooterAOE     = 40.0
	CrateChance    = 0.01
	CrateAmmoBelow = 50
	CrateSize      = 20
	CrateAmmo      = 25
	CrateScore     = 50
	WinBonus       = 1000
	RestartDelay   = 3.0
	MoneyPerPoints = 5
	DebrisGravity  = 0.3
	DebrisDrag     = 0.98
)

var (
	SpaceColor      = color.RGBA{10, 10, 26, 255}
	PathColor       = color.RGBA{40, 40, 80, 200}
	GridLineColor   = color.RGBA{60, 60, 100, 80}
	HoverColor      = color.RGBA{0, 255, 255, 60}
	BlockedColor    = color.RGBA{255, 0, 0, 60}
	PortalColor     = color.RGBA{0, 150, 255, 200}
	ShieldColor     = color.RGBA{0, 255, 255, 255}
	CreditsColor    = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 200}
	BossColor       = color.RGBA{255, 0, 0, 255}
	SkyTopColor     = color.RGBA{135, 206, 235, 255}
	GroundColor     = color.RGBA{90, 140, 70, 255}
	TankColor       = color.RGBA{74, 144, 226, 255}
	CrateColor      = color.RGBA{255, 215, 0, 255}
	WindowLitColor  = color.RGBA{255, 230, 120, 255}
	WindowDarkColor = color.RGBA{40, 40, 60, 255}
	ExplosionColor  = color.RGBA{255, 140, 0, 255}

	NoticeColors = map[string]color.RGBA{
		"info":    {0, 200, 255, 230},
		"success": {0, 200, 80, 230},
		"error":   {220, 50, 50, 230},
	}
)
