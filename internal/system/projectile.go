// internal/system/projectile.go
package system

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряды продвигает система башен, которой они принадлежат.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Advance moves one projectile toward its target and resolves the hit.
func (s *ProjectileSystem) Advance(id types.EntityID, deltaTime float64) {
	proj := s.ecs.Projectiles[id]
	pos := s.ecs.Positions[id]
	if proj == nil || pos == nil || !proj.Alive {
		return
	}

	enemy, ok := s.ecs.Enemies[proj.TargetID]
	targetPos := s.ecs.Positions[proj.TargetID]
	if !ok || !enemy.Alive || targetPos == nil {
		// Цель пропала или уже мертва: снаряд исчезает без эффекта
		proj.Alive = false
		return
	}

	step := proj.Speed * deltaTime
	dist := utils.Distance(*pos, *targetPos)
	// Попадание: в радиусе ProjectileHitRadius или цель достижима за этот тик
	if dist < config.ProjectileHitRadius || dist <= step {
		*pos = *targetPos
		ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
		proj.Alive = false
		return
	}

	*pos, _ = utils.MoveTowards(*pos, *targetPos, step)
}
