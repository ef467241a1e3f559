package system

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

// CombatSystem управляет атакой башен. За тик каждая башня в порядке постройки
// убирает мёртвые снаряды, продвигает оставшиеся и принимает одно решение о выстреле.
type CombatSystem struct {
	ecs             *entity.ECS
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		projectiles:     projectiles,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerOrder {
		tower, combat, pos := s.ecs.Towers[id], s.ecs.Combats[id], s.ecs.Positions[id]
		if tower == nil || combat == nil || pos == nil {
			continue
		}

		s.pruneProjectiles(tower)
		for _, projID := range tower.Projectiles {
			s.projectiles.Advance(projID, deltaTime)
		}

		if !combat.Ready(s.ecs.GameTime) {
			continue
		}
		if target := s.FindFirstInRange(*pos, combat.Range); target != 0 {
			s.fire(id, target, pos, combat)
		}
	}
}

// FindFirstInRange возвращает первого живого врага в порядке появления,
// находящегося в радиусе. Ближайший не ищется.
func (s *CombatSystem) FindFirstInRange(from component.Position, radius float64) types.EntityID {
	for _, enemyID := range s.ecs.EnemyOrder {
		enemy := s.ecs.Enemies[enemyID]
		if enemy == nil || !enemy.Alive {
			continue
		}
		if enemyPos := s.ecs.Positions[enemyID]; enemyPos != nil && utils.Distance(from, *enemyPos) <= radius {
			return enemyID
		}
	}
	return 0
}

func (s *CombatSystem) pruneProjectiles(tower *component.Tower) {
	kept := tower.Projectiles[:0]
	for _, projID := range tower.Projectiles {
		if proj, ok := s.ecs.Projectiles[projID]; ok && proj.Alive {
			kept = append(kept, projID)
			continue
		}
		s.ecs.RemoveProjectile(projID)
	}
	tower.Projectiles = kept
}

func (s *CombatSystem) fire(towerID, targetID types.EntityID, towerPos *component.Position, combat *component.Combat) {
	projID := s.ecs.NewEntity()
	start := *towerPos
	s.ecs.Positions[projID] = &start
	s.ecs.Projectiles[projID] = &component.Projectile{
		OwnerID:  towerID,
		TargetID: targetID,
		Speed:    combat.ProjectileSpeed,
		Damage:   combat.Damage,
		Alive:    true,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
	tower := s.ecs.Towers[towerID]
	tower.Projectiles = append(tower.Projectiles, projID)

	combat.LastShot = s.ecs.GameTime
	combat.HasFired = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.TowerData{ID: towerID}})
}
