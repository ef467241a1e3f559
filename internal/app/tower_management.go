// internal/app/tower_management.go
package app

import (
	"math"

	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/system"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

// PlaceTower attempts to build a tower of typeID on the given spot.
// Unknown types fall back to the first catalog entry.
func (g *Game) PlaceTower(spotIndex int, typeID string) bool {
	if g.outcome != OutcomeNone || spotIndex < 0 || spotIndex >= len(g.ECS.BuildSpots) {
		return false
	}
	spot := g.ECS.BuildSpots[spotIndex]
	if spot.Occupied {
		return false
	}
	towerType := g.Level.Tower(typeID)
	if !g.EconomySystem.Spend(towerType.Cost) {
		return false
	}

	id := g.createTowerEntity(spotIndex, spot.Position, towerType)
	spot.Occupied = true
	spot.TowerID = id
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{ID: id}})
	return true
}

func (g *Game) createTowerEntity(spotIndex int, pos component.Position, t defs.TowerType) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.Towers[id] = &component.Tower{
		TypeID:    t.ID,
		SpotIndex: spotIndex,
		Levels:    make(map[defs.UpgradeStat]int),
	}
	g.ECS.Combats[id] = &component.Combat{
		Damage:          t.Damage,
		FireRate:        t.FireRate,
		Range:           t.Range,
		ProjectileSpeed: t.ProjectileSpeed,
	}
	radius := t.Visuals.Radius
	if radius <= 0 {
		radius = config.TowerRadius
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  t.Visuals.Color,
		Radius: float32(radius),
		Sprite: t.Visuals.Sprite,
	}
	g.ECS.TowerOrder = append(g.ECS.TowerOrder, id)
	return id
}

// UpgradeTower улучшает характеристику башни. Либо меняется всё сразу
// (стат, уровень, деньги), либо ничего.
func (g *Game) UpgradeTower(id types.EntityID, stat defs.UpgradeStat) bool {
	if g.outcome != OutcomeNone {
		return false
	}
	tower, combat := g.ECS.Towers[id], g.ECS.Combats[id]
	if tower == nil || combat == nil {
		return false
	}
	def, ok := g.Level.Upgrade(stat)
	if !ok || !system.CanUpgrade(tower, def) {
		return false
	}
	if !g.EconomySystem.Spend(def.Cost) {
		return false
	}
	system.ApplyUpgrade(tower, combat, def)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{ID: id, Stat: string(stat)}})
	return true
}

// UpgradeSelected upgrades the currently selected tower.
func (g *Game) UpgradeSelected(stat defs.UpgradeStat) bool {
	if g.SelectedTower == 0 {
		return false
	}
	return g.UpgradeTower(g.SelectedTower, stat)
}

// SelectTowerType sets the type built by the next click on a free spot.
func (g *Game) SelectTowerType(typeID string) bool {
	for _, t := range g.Level.Towers {
		if t.ID == typeID {
			g.SelectedType = typeID
			return true
		}
	}
	return false
}

// HandleClick: клик по башне переключает её выбор, клик по свободному
// месту строит выбранный тип, любой другой клик снимает выбор.
func (g *Game) HandleClick(x, y float64) {
	click := component.Position{X: x, Y: y}

	if id := g.towerAt(click); id != 0 {
		if g.SelectedTower == id {
			g.SelectedTower = 0
		} else {
			g.SelectedTower = id
		}
		return
	}

	g.SelectedTower = 0
	if idx := g.spotAt(click); idx >= 0 && !g.ECS.BuildSpots[idx].Occupied {
		g.PlaceTower(idx, g.SelectedType)
	}
}

func (g *Game) towerAt(p component.Position) types.EntityID {
	for _, id := range g.ECS.TowerOrder {
		if pos := g.ECS.Positions[id]; pos != nil && utils.Distance(*pos, p) <= config.TowerClickRadius {
			return id
		}
	}
	return 0
}

func (g *Game) spotAt(p component.Position) int {
	half := config.BuildSpotSize / 2
	for i, spot := range g.ECS.BuildSpots {
		if math.Abs(spot.Position.X-p.X) <= half && math.Abs(spot.Position.Y-p.Y) <= half {
			return i
		}
	}
	return -1
}
