package app

import (
	"image/color"
	"sort"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/system"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
)

// Snapshot - неизменяемый снимок состояния уровня для отрисовки и сети.
type Snapshot struct {
	Level        string              `json:"level"`
	Time         float64             `json:"time"`
	Tiles        [][]int             `json:"tiles,omitempty"`
	TileSize     float64             `json:"tile_size"`
	Paths        [][]Point           `json:"paths"`
	Spots        []SpotView          `json:"spots"`
	Towers       []TowerView         `json:"towers"`
	Enemies      []EnemyView         `json:"enemies"`
	Projectiles  []Point             `json:"projectiles"`
	Economy      EconomyView         `json:"economy"`
	Wave         WaveView            `json:"wave"`
	Metrics      system.QueueMetrics `json:"metrics"`
	TowerTypes   []TowerTypeView     `json:"tower_types"`
	SelectedType string              `json:"selected_type"`
	Selected     types.EntityID      `json:"selected_tower,omitempty"`
	Upgrades     []UpgradeView       `json:"upgrades,omitempty"`
	Outcome      string              `json:"outcome"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SpotView struct {
	Point
	Occupied bool `json:"occupied"`
}

type TowerView struct {
	ID   types.EntityID `json:"id"`
	Type string         `json:"type"`
	Point
	Range    float64        `json:"range"`
	FireRate float64        `json:"fire_rate"`
	Damage   int            `json:"damage"`
	Levels   map[string]int `json:"levels"`
	Color    color.RGBA     `json:"color"`
	Radius   float32        `json:"radius"`
	Sprite   string         `json:"sprite,omitempty"`
}

type EnemyView struct {
	ID   types.EntityID `json:"id"`
	Tier string         `json:"tier,omitempty"`
	Point
	Health    int        `json:"health"`
	MaxHealth int        `json:"max_health"`
	Ratio     float64    `json:"ratio"`
	Color     color.RGBA `json:"color"`
	Radius    float32    `json:"radius"`
	Sprite    string     `json:"sprite,omitempty"`
}

type EconomyView struct {
	Money   int `json:"money"`
	Lives   int `json:"lives"`
	Kills   int `json:"kills"`
	Escapes int `json:"escapes"`
}

type WaveView struct {
	Number  int     `json:"number"`
	Target  int     `json:"target"`
	Quota   int     `json:"quota"`
	Spawned int     `json:"spawned"`
	Active  bool    `json:"active"`
	Lambda  float64 `json:"lambda"`
}

type TowerTypeView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// UpgradeView описывает доступное улучшение выбранной башни.
type UpgradeView struct {
	Stat     string `json:"stat"`
	Cost     int    `json:"cost"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"max_level"`
}

// Snapshot собирает снимок. Враги и башни идут в порядке появления.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	s := Snapshot{
		Level:        g.Level.Name,
		Time:         ecs.GameTime,
		Tiles:        g.Level.Map,
		TileSize:     config.TileSize,
		Upgrades:     g.Upgrades(g.SelectedTower),
		Metrics:      system.ComputeMetrics(ecs),
		SelectedType: g.SelectedType,
		Selected:     g.SelectedTower,
		Outcome:      g.outcome.String(),
		Economy: EconomyView{
			Money:   ecs.Economy.Money,
			Lives:   ecs.Economy.Lives,
			Kills:   ecs.Economy.Kills,
			Escapes: ecs.Economy.Escapes,
		},
		Wave: WaveView{
			Number:  ecs.Wave.Number,
			Target:  ecs.Wave.TargetWaves,
			Quota:   ecs.Wave.EnemiesPerWave,
			Spawned: ecs.Wave.SpawnedInWave,
			Active:  ecs.Wave.Active,
			Lambda:  ecs.Wave.Lambda,
		},
	}

	for _, path := range g.Map.Paths() {
		pts := make([]Point, len(path))
		for i, p := range path {
			pts[i] = Point{X: p.X, Y: p.Y}
		}
		s.Paths = append(s.Paths, pts)
	}
	for _, spot := range ecs.BuildSpots {
		s.Spots = append(s.Spots, SpotView{Point: Point{X: spot.Position.X, Y: spot.Position.Y}, Occupied: spot.Occupied})
	}
	for _, id := range ecs.TowerOrder {
		tower, combat, pos := ecs.Towers[id], ecs.Combats[id], ecs.Positions[id]
		if tower == nil || combat == nil || pos == nil {
			continue
		}
		view := TowerView{
			ID:       id,
			Type:     tower.TypeID,
			Point:    Point{X: pos.X, Y: pos.Y},
			Range:    combat.Range,
			FireRate: combat.FireRate,
			Damage:   combat.Damage,
			Levels:   make(map[string]int, len(tower.Levels)),
		}
		for stat, lvl := range tower.Levels {
			view.Levels[string(stat)] = lvl
		}
		if r := ecs.Renderables[id]; r != nil {
			view.Color, view.Radius, view.Sprite = r.Color, r.Radius, r.Sprite
		}
		s.Towers = append(s.Towers, view)
	}
	for _, id := range ecs.EnemyOrder {
		enemy, health, pos := ecs.Enemies[id], ecs.Healths[id], ecs.Positions[id]
		if enemy == nil || health == nil || pos == nil || !enemy.Alive {
			continue
		}
		view := EnemyView{
			ID:        id,
			Tier:      enemy.TierID,
			Point:     Point{X: pos.X, Y: pos.Y},
			Health:    health.Value,
			MaxHealth: health.Max,
			Ratio:     health.Ratio(),
		}
		if r := ecs.Renderables[id]; r != nil {
			view.Color, view.Radius, view.Sprite = r.Color, r.Radius, r.Sprite
		}
		s.Enemies = append(s.Enemies, view)
	}

	// Карта снарядов не упорядочена, сортируем по ID для стабильного вывода
	projIDs := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id, p := range ecs.Projectiles {
		if p.Alive {
			projIDs = append(projIDs, id)
		}
	}
	sort.Slice(projIDs, func(i, j int) bool { return projIDs[i] < projIDs[j] })
	for _, id := range projIDs {
		if pos := ecs.Positions[id]; pos != nil {
			s.Projectiles = append(s.Projectiles, Point{X: pos.X, Y: pos.Y})
		}
	}

	for _, t := range g.Level.Towers {
		s.TowerTypes = append(s.TowerTypes, TowerTypeView{ID: t.ID, Name: t.Name, Cost: t.Cost})
	}
	return s
}

// Upgrades lists upgrade options for a tower with their current levels.
func (g *Game) Upgrades(id types.EntityID) []UpgradeView {
	tower := g.ECS.Towers[id]
	if tower == nil {
		return nil
	}
	var out []UpgradeView
	for _, stat := range defs.AllStats {
		def, ok := g.Level.Upgrade(stat)
		if !ok {
			continue
		}
		out = append(out, UpgradeView{Stat: string(stat), Cost: def.Cost, Level: tower.Level(stat), MaxLevel: def.MaxLevel})
	}
	return out
}
