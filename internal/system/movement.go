// internal/system/movement.go
package system

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

// MovementSystem двигает живых врагов по их путям и убирает тех,
// кто дошёл до последней точки.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var escaped []types.EntityID
	for _, id := range s.ecs.EnemyOrder {
		enemy := s.ecs.Enemies[id]
		if enemy == nil || !enemy.Alive {
			continue
		}
		pos, path, vel := s.ecs.Positions[id], s.ecs.Paths[id], s.ecs.Velocities[id]
		if pos == nil || path == nil || vel == nil {
			continue
		}

		if !path.Finished() {
			step := vel.Speed * deltaTime
			next, reached := utils.MoveTowards(*pos, path.Points[path.CurrentIndex+1], step)
			*pos = next
			if reached && step > 0 {
				path.CurrentIndex++
			}
		}

		if path.Finished() {
			// Мёртвый флаг отменяет летящие в него снаряды
			enemy.Alive = false
			enemy.Escaped = true
			escaped = append(escaped, id)
		}
	}

	for _, id := range escaped {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyData{ID: id}})
	}
	s.ecs.DestroyEnemies(escaped)
}
