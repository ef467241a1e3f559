// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 760
	TileSize     = 50 // Размер клетки карты в пикселях
	MaxDeltaTime = 0.06

	HUDHeight      = 40 // Верхняя панель над картой
	SidePanelWidth = 260

	ProjectileHitRadius = 10.0 // Дистанция попадания снаряда
	ProjectileRadius    = 5.0
	EnemyRadius         = 10.0
	TowerRadius         = 16.0
	TowerClickRadius    = 20.0 // Радиус клика для выбора башни
	BuildSpotSize       = 50.0

	// Значения врагов по умолчанию, когда таблица тиров пуста
	DefaultEnemyMinSpeed  = 90.0 // пикселей в секунду
	DefaultEnemyMaxSpeed  = 180.0
	DefaultEnemyMinHealth = 80
	DefaultEnemyMaxHealth = 150
	DefaultEnemyReward    = 15

	DefaultLambda         = 0.5 // Прибытий в секунду
	DefaultEnemiesPerWave = 10
	DefaultWavesToWin     = 5
	DefaultStartingLives  = 3

	DefaultLambdaGrowth = 1.1
	DefaultSpeedGrowth  = 1.05
	DefaultHealthGrowth = 1.1

	// Рост квоты: floor(old*QuotaGrowthNum/QuotaGrowthDen) + QuotaGrowthAdd
	QuotaGrowthNum = 12
	QuotaGrowthDen = 10
	QuotaGrowthAdd = 2

	// Башня по умолчанию, если каталог пуст
	DefaultTowerCost            = 50
	DefaultTowerRange           = 220.0
	DefaultTowerFireRate        = 1.5
	DefaultTowerDamage          = 25
	DefaultTowerProjectileSpeed = 360.0

	MinFireRate = 0.1
	MinRange    = 10.0

	DefaultTickRate = 60 // Тиков в секунду на сервере
)

var (
	BackgroundColor   = color.RGBA{15, 25, 15, 255}
	GroundColor       = color.RGBA{34, 139, 34, 255}
	PathColor         = color.RGBA{139, 90, 43, 255}
	BuildSpotColor    = color.RGBA{128, 128, 128, 255}
	StartColor        = color.RGBA{100, 255, 100, 255}
	EndColor          = color.RGBA{255, 100, 100, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	PanelColor        = color.RGBA{30, 30, 45, 230}
	EnemyColor        = color.RGBA{200, 40, 40, 255}
	HealthBarBack     = color.RGBA{60, 0, 0, 255}
	ProjectileColor   = color.RGBA{255, 230, 80, 255}
	RangeColor        = color.RGBA{255, 255, 255, 60}
	SelectionColor    = color.RGBA{255, 215, 0, 255}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	DefaultTowerColor = color.RGBA{50, 100, 255, 255}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
