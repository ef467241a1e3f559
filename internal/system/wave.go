// internal/system/wave.go
package system

import (
	"log"

	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

// WaveSystem - планировщик волн. Враги прибывают пуассоновским потоком:
// интервалы между появлениями распределены экспоненциально с параметром λ.
type WaveSystem struct {
	ecs             *entity.ECS
	level           *defs.Level
	paths           [][]component.Position
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, level *defs.Level, paths [][]component.Position, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		level:           level,
		paths:           paths,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// StartLevel сбрасывает планировщик на первую волну уровня.
func (s *WaveSystem) StartLevel() {
	lambda := s.level.BaseLambda * s.level.Multipliers.Lambda
	*s.ecs.Wave = component.Wave{
		Number:           1,
		TargetWaves:      s.level.WavesToWin,
		EnemiesPerWave:   s.level.EnemiesPerWave,
		SpawnInterval:    s.rng.ExpFloat64(lambda),
		Lambda:           lambda,
		SpeedMultiplier:  s.level.Multipliers.Speed,
		HealthMultiplier: s.level.Multipliers.Health,
		Active:           true,
	}
	if len(s.paths) == 0 {
		log.Printf("level %q has no enemy path, spawning disabled", s.level.Name)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 1}})
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || !wave.Active || wave.Cleared {
		return
	}

	wave.SpawnTimer += deltaTime
	if wave.SpawnTimer >= wave.SpawnInterval && wave.SpawnedInWave < wave.EnemiesPerWave {
		if s.spawnEnemy(wave) {
			wave.SpawnTimer = 0
			wave.SpawnInterval = s.rng.ExpFloat64(wave.Lambda)
			wave.SpawnedInWave++
		}
	}

	if wave.SpawnedInWave >= wave.EnemiesPerWave && len(s.ecs.EnemyOrder) == 0 {
		s.completeWave(wave)
	}
}

func (s *WaveSystem) completeWave(wave *component.Wave) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: wave.Number}})

	if wave.Number >= wave.TargetWaves {
		wave.Cleared = true
		wave.Active = false
		log.Printf("level %q cleared after wave %d", s.level.Name, wave.Number)
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelCleared, Data: event.WaveData{Number: wave.Number}})
		return
	}
	NextWave(wave, s.level.Growth)
	log.Printf("wave %d started: %d enemies, lambda %.3f", wave.Number, wave.EnemiesPerWave, wave.Lambda)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: wave.Number}})
}

// NextWave advances wave parameters: quota floor(old*1.2)+2 and every
// multiplier scaled by its growth rate.
func NextWave(wave *component.Wave, growth defs.Growth) {
	wave.Number++
	wave.EnemiesPerWave = wave.EnemiesPerWave*config.QuotaGrowthNum/config.QuotaGrowthDen + config.QuotaGrowthAdd
	wave.Lambda *= growth.Lambda
	wave.SpeedMultiplier *= growth.Speed
	wave.HealthMultiplier *= growth.Health
	wave.SpawnedInWave = 0
}

// spawnEnemy создаёт врага на случайном пути. Возвращает false, если путей нет.
func (s *WaveSystem) spawnEnemy(wave *component.Wave) bool {
	if len(s.paths) == 0 {
		return false
	}
	path := s.paths[s.rng.Intn(len(s.paths))]
	if len(path) == 0 {
		return false
	}

	tier := defs.EnemyTier{
		Speed:            defs.Range{Min: config.DefaultEnemyMinSpeed, Max: config.DefaultEnemyMaxSpeed},
		Health:           defs.Range{Min: config.DefaultEnemyMinHealth, Max: config.DefaultEnemyMaxHealth},
		Reward:           config.DefaultEnemyReward,
		SpeedMultiplier:  1,
		HealthMultiplier: 1,
		Visuals:          defs.Visuals{Color: config.EnemyColor, Radius: config.EnemyRadius},
	}
	if idx := s.rng.ChooseWeighted(defs.Weights(s.level.Tiers)); idx >= 0 {
		tier = s.level.Tiers[idx]
	}

	speed := s.rng.Uniform(tier.Speed.Min, tier.Speed.Max) * wave.SpeedMultiplier * tier.SpeedMultiplier
	baseHealth := s.rng.IntRange(int(tier.Health.Min), int(tier.Health.Max))
	health := int(float64(baseHealth) * wave.HealthMultiplier * tier.HealthMultiplier)
	if health < 1 {
		health = 1
	}

	id := s.ecs.CreateEnemy(path, speed, health, tier.Reward, tier.ID)
	radius := tier.Visuals.Radius
	if radius <= 0 {
		radius = config.EnemyRadius
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  tier.Visuals.Color,
		Radius: float32(radius),
		Sprite: tier.Visuals.Sprite,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: id, Reward: tier.Reward}})
	return true
}
