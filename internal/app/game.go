// internal/app/game.go
package app

import (
	"errors"
	"log"

	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/system"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

// Outcome - итог прохождения уровня.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeCleared:
		return "cleared"
	}
	return "none"
}

// Game holds one level run: ECS, systems and player selection.
type Game struct {
	Level            *defs.Level
	Map              MapProvider
	ECS              *entity.ECS
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EconomySystem    *system.EconomySystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	SelectedTower types.EntityID
	SelectedType  string
	outcome       Outcome
}

var ErrNoLevel = errors.New("level and map provider cannot be nil")

// NewGame initializes a level run. The wave scheduler starts immediately.
func NewGame(level *defs.Level, provider MapProvider, rng *utils.PRNGService) (*Game, error) {
	if level == nil || provider == nil {
		return nil, ErrNoLevel
	}

	ecs := entity.NewECS()
	ecs.Economy.Money = level.StartingMoney
	ecs.Economy.Lives = level.StartingLives
	for _, p := range provider.BuildSpots() {
		ecs.BuildSpots = append(ecs.BuildSpots, &component.BuildSpot{Position: p})
	}

	eventDispatcher := event.NewDispatcher()
	projectiles := system.NewProjectileSystem(ecs)
	g := &Game{
		Level:            level,
		Map:              provider,
		ECS:              ecs,
		WaveSystem:       system.NewWaveSystem(ecs, level, provider.Paths(), rng, eventDispatcher),
		MovementSystem:   system.NewMovementSystem(ecs, eventDispatcher),
		ProjectileSystem: projectiles,
		CombatSystem:     system.NewCombatSystem(ecs, projectiles, eventDispatcher),
		EconomySystem:    system.NewEconomySystem(ecs, eventDispatcher),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
	}
	if len(level.Towers) > 0 {
		g.SelectedType = level.Towers[0].ID
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener, event.LivesDepleted, event.LevelCleared)

	log.Printf("level %q started: money=%d lives=%d waves=%d paths=%d spots=%d",
		level.Name, ecs.Economy.Money, ecs.Economy.Lives, level.WavesToWin, len(provider.Paths()), len(ecs.BuildSpots))
	g.WaveSystem.StartLevel()
	return g, nil
}

// Update advances the simulation by deltaTime seconds. Order: scheduler,
// movement with escapes, dead sweep with rewards, towers.
func (g *Game) Update(deltaTime float64) {
	if g.outcome != OutcomeNone || deltaTime <= 0 {
		return
	}
	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	if g.outcome != OutcomeNone {
		return
	}

	g.MovementSystem.Update(deltaTime)
	if g.outcome == OutcomeLost {
		return
	}

	g.cleanupDestroyedEntities()
	g.CombatSystem.Update(deltaTime)
}

// cleanupDestroyedEntities удаляет убитых врагов и начисляет награду ровно один раз.
func (g *Game) cleanupDestroyedEntities() {
	var dead []types.EntityID
	for _, id := range g.ECS.EnemyOrder {
		enemy := g.ECS.Enemies[id]
		if enemy == nil || enemy.Alive {
			continue
		}
		if !enemy.Escaped && !enemy.Rewarded {
			enemy.Rewarded = true
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{ID: id, Reward: enemy.Reward}})
		}
		dead = append(dead, id)
	}
	g.ECS.DestroyEnemies(dead)
}

// Outcome returns the result of the run so far.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// SetWaveActive включает или замораживает планировщик волн.
func (g *Game) SetWaveActive(active bool) {
	if g.ECS.Wave.Cleared {
		return
	}
	g.ECS.Wave.Active = active
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LivesDepleted:
		log.Printf("game over on level %q at wave %d", l.game.Level.Name, l.game.ECS.Wave.Number)
		l.game.outcome = OutcomeLost
	case event.LevelCleared:
		if l.game.outcome == OutcomeNone {
			l.game.outcome = OutcomeCleared
		}
	}
}
