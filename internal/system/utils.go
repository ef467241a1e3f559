// internal/system/utils.go
package system

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
)

// ApplyDamage наносит урон врагу. Здоровье не опускается ниже нуля, и в том же
// шаге враг помечается мёртвым. Возвращает true, если этот удар убил врага.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	enemy, isEnemy := ecs.Enemies[entityID]
	health, hasHealth := ecs.Healths[entityID]
	if !isEnemy || !hasHealth || !enemy.Alive {
		return false
	}
	if damage < 0 {
		damage = 0
	}

	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
		enemy.Alive = false
		return true
	}
	return false
}
