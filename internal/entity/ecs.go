// internal/entity/ecs.go
package entity

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
)

// ECS хранит все компоненты уровня. Карты не упорядочены, поэтому порядок
// появления врагов и башен хранится отдельно в EnemyOrder и TowerOrder.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Combats     map[types.EntityID]*component.Combat
	Enemies     map[types.EntityID]*component.Enemy
	EnemyOrder  []types.EntityID // Активные враги в порядке появления
	TowerOrder  []types.EntityID // Башни в порядке постройки
	BuildSpots  []*component.BuildSpot
	Wave        *component.Wave
	Economy     *component.Economy
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Combats:     make(map[types.EntityID]*component.Combat),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Wave:        &component.Wave{},
		Economy:     &component.Economy{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// CreateEnemy создаёт живого врага в начале пути и добавляет его в конец EnemyOrder.
func (ecs *ECS) CreateEnemy(path []component.Position, speed float64, health, reward int, tierID string) types.EntityID {
	id := ecs.NewEntity()
	start := component.Position{}
	if len(path) > 0 {
		start = path[0]
	}
	ecs.Positions[id] = &start
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Paths[id] = &component.Path{Points: path}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{TierID: tierID, Reward: reward, Alive: true}
	ecs.EnemyOrder = append(ecs.EnemyOrder, id)
	return id
}

// DestroyEnemies удаляет врагов из всех хранилищ, сохраняя порядок остальных.
func (ecs *ECS) DestroyEnemies(ids []types.EntityID) {
	if len(ids) == 0 {
		return
	}
	doomed := make(map[types.EntityID]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
		delete(ecs.Positions, id)
		delete(ecs.Velocities, id)
		delete(ecs.Paths, id)
		delete(ecs.Healths, id)
		delete(ecs.Renderables, id)
		delete(ecs.Enemies, id)
	}
	kept := ecs.EnemyOrder[:0]
	for _, id := range ecs.EnemyOrder {
		if _, gone := doomed[id]; !gone {
			kept = append(kept, id)
		}
	}
	ecs.EnemyOrder = kept
}

// RemoveProjectile удаляет снаряд. Ссылку в башне убирает система башен.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Projectiles, id)
	delete(ecs.Positions, id)
	delete(ecs.Renderables, id)
}

// AliveEnemies возвращает живых врагов в порядке появления.
func (ecs *ECS) AliveEnemies() []types.EntityID {
	alive := make([]types.EntityID, 0, len(ecs.EnemyOrder))
	for _, id := range ecs.EnemyOrder {
		if e, ok := ecs.Enemies[id]; ok && e.Alive {
			alive = append(alive, id)
		}
	}
	return alive
}
