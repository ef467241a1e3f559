package app

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

const dt = 0.25

func scenarioLevel(t *testing.T, money, lives, quota int, speed float64) *defs.Level {
	t.Helper()
	l := &defs.Level{
		Name:           "scenario",
		Map:            [][]int{{3, 1, 4}},
		WavesToWin:     1,
		StartingMoney:  money,
		StartingLives:  lives,
		EnemiesPerWave: quota,
		BaseLambda:     100,
		Tiers: []defs.EnemyTier{{
			ID: "a", Weight: 1,
			Speed:  defs.Range{Min: speed, Max: speed},
			Health: defs.Range{Min: 50, Max: 50},
			Reward: 15,
		}},
		Towers: []defs.TowerType{
			{ID: "t", Name: "T", Cost: 50, Range: 200, FireRate: 1, Damage: 50, ProjectileSpeed: 1000},
			{ID: "weak", Name: "Weak", Cost: 10, Range: 50, FireRate: 1, Damage: 1, ProjectileSpeed: 100},
		},
		Upgrades: []defs.UpgradeDef{
			{Stat: defs.StatDamage, Cost: 40, Increment: 10, MaxLevel: 1},
			{Stat: defs.StatRange, Cost: 30, Increment: 25},
		},
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return l
}

func newScenario(t *testing.T, l *defs.Level, pathLen float64, spots ...component.Position) *Game {
	t.Helper()
	m := &StaticMap{
		PathList: [][]component.Position{{{X: 0, Y: 0}, {X: pathLen, Y: 0}}},
		Spots:    spots,
	}
	g, err := NewGame(l, m, utils.NewPRNGService(1))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestBasicKill(t *testing.T) {
	g := newScenario(t, scenarioLevel(t, 100, 3, 1, 0), 1000, component.Position{X: 100, Y: 0})
	if !g.PlaceTower(0, "t") {
		t.Fatal("PlaceTower failed")
	}
	if g.ECS.Economy.Money != 50 {
		t.Fatalf("money after build = %d, want 50", g.ECS.Economy.Money)
	}

	for i := 0; i < 4; i++ {
		g.Update(dt)
	}
	eco := g.ECS.Economy
	if eco.Money != 65 || eco.Kills != 1 || eco.Lives != 3 {
		t.Errorf("economy = %+v, want money 65, 1 kill, 3 lives", *eco)
	}
	if g.Outcome() != OutcomeCleared {
		t.Errorf("outcome = %v, want cleared", g.Outcome())
	}
}

// quietScenario - уровень без собственных спавнов: врагов тест создаёт сам.
func quietScenario(t *testing.T, path []component.Position, spots ...component.Position) *Game {
	t.Helper()
	l := scenarioLevel(t, 100, 3, 1, 0)
	l.BaseLambda = 1e-9
	l.Towers[0].Range = 100
	g, err := NewGame(l, &StaticMap{PathList: [][]component.Position{path}, Spots: spots}, utils.NewPRNGService(1))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestBasicKillTakesTwoCycles(t *testing.T) {
	g := quietScenario(t, []component.Position{{X: 50, Y: 0}, {X: 1000, Y: 0}}, component.Position{X: 0, Y: 0})
	if !g.PlaceTower(0, "t") {
		t.Fatal("PlaceTower failed")
	}
	id := g.ECS.CreateEnemy(g.Map.Paths()[0], 0, 100, 15, "a")
	health, enemy := g.ECS.Healths[id], g.ECS.Enemies[id]

	// Выстрел и попадание первого цикла
	g.Update(dt)
	g.Update(dt)
	if health.Value != 50 || !enemy.Alive {
		t.Fatalf("after first cycle: health=%d alive=%v, want 50 alive", health.Value, enemy.Alive)
	}
	if g.ECS.Economy.Money != 50 || g.ECS.Economy.Kills != 0 {
		t.Fatalf("reward before the kill: %+v", *g.ECS.Economy)
	}

	for i := 0; i < 8 && enemy.Alive; i++ {
		g.Update(dt)
	}
	if health.Value != 0 || enemy.Alive {
		t.Fatalf("after second cycle: health=%d alive=%v, want 0 dead", health.Value, enemy.Alive)
	}

	for i := 0; i < 8; i++ {
		g.Update(dt)
	}
	if eco := g.ECS.Economy; eco.Money != 65 || eco.Kills != 1 || eco.Lives != 3 {
		t.Errorf("economy = %+v, want money 65, 1 kill, 3 lives", *eco)
	}
	if _, ok := g.ECS.Enemies[id]; ok || len(g.ECS.EnemyOrder) != 0 {
		t.Error("dead enemy was not removed")
	}
}

func TestEscapeWinsOverSameTickHit(t *testing.T) {
	g := quietScenario(t, []component.Position{{X: 50, Y: 0}, {X: 60, Y: 0}}, component.Position{X: 0, Y: 0})
	if !g.PlaceTower(0, "t") {
		t.Fatal("PlaceTower failed")
	}
	id := g.ECS.CreateEnemy(g.Map.Paths()[0], 0, 50, 15, "a")

	// Первый тик: враг стоит, башня выпускает смертельный снаряд
	g.Update(dt)
	if len(g.ECS.Projectiles) != 1 {
		t.Fatalf("projectiles in flight = %d, want 1", len(g.ECS.Projectiles))
	}

	// Во втором тике враг доходит до конца раньше, чем снаряд долетает
	g.ECS.Velocities[id].Speed = 40
	g.Update(dt)

	eco := g.ECS.Economy
	if eco.Lives != 2 || eco.Kills != 0 || eco.Escapes != 1 || eco.Money != 50 {
		t.Errorf("economy = %+v, want an escape: lives 2, no kill, money 50", *eco)
	}
	for _, p := range g.ECS.Projectiles {
		if p.Alive {
			t.Error("projectile survived its escaped target")
		}
	}
}

func TestEscapeCostsLife(t *testing.T) {
	g := newScenario(t, scenarioLevel(t, 100, 3, 2, 100), 10)
	g.Update(dt)
	eco := g.ECS.Economy
	if eco.Lives != 2 || eco.Money != 100 || eco.Kills != 0 {
		t.Errorf("economy after escape = %+v", *eco)
	}
	if g.Outcome() != OutcomeNone {
		t.Errorf("outcome = %v", g.Outcome())
	}
}

func TestGameOverHaltsImmediately(t *testing.T) {
	g := newScenario(t, scenarioLevel(t, 100, 1, 3, 100), 10)
	g.Update(dt)
	if g.Outcome() != OutcomeLost || g.ECS.Economy.Lives != 0 {
		t.Fatalf("outcome=%v lives=%d", g.Outcome(), g.ECS.Economy.Lives)
	}
	before := g.ECS.GameTime
	g.Update(dt)
	if g.ECS.GameTime != before || g.ECS.Wave.SpawnedInWave != 1 {
		t.Error("simulation advanced after game over")
	}
	if g.PlaceTower(0, "t") {
		t.Error("build allowed after game over")
	}
}

func TestBuildRejection(t *testing.T) {
	g := newScenario(t, scenarioLevel(t, 40, 3, 1, 0), 1000,
		component.Position{X: 100, Y: 0}, component.Position{X: 200, Y: 0})

	if g.PlaceTower(0, "t") {
		t.Fatal("build with insufficient money succeeded")
	}
	if g.ECS.Economy.Money != 40 || g.ECS.BuildSpots[0].Occupied || len(g.ECS.TowerOrder) != 0 {
		t.Fatalf("rejected build changed state: money=%d", g.ECS.Economy.Money)
	}
	if !g.PlaceTower(0, "weak") {
		t.Fatal("affordable build failed")
	}
	if g.PlaceTower(0, "weak") {
		t.Error("second tower on an occupied spot")
	}
	if g.PlaceTower(5, "weak") || g.PlaceTower(-1, "weak") {
		t.Error("build on a missing spot")
	}
	if g.ECS.Economy.Money != 30 {
		t.Errorf("money = %d, want 30", g.ECS.Economy.Money)
	}
}

func TestUnknownTowerTypeFallsBack(t *testing.T) {
	g := newScenario(t, scenarioLevel(t, 100, 3, 1, 0), 1000, component.Position{X: 100, Y: 0})
	if !g.PlaceTower(0, "nope") {
		t.Fatal("PlaceTower failed")
	}
	id := g.ECS.TowerOrder[0]
	if g.ECS.Towers[id].TypeID != "t" || g.ECS.Economy.Money != 50 {
		t.Errorf("fallback type = %q money=%d", g.ECS.Towers[id].TypeID, g.ECS.Economy.Money)
	}
}

func TestSingleRewardForSimultaneousHits(t *testing.T) {
	g := newScenario(t, scenarioLevel(t, 100, 3, 1, 0), 1000,
		component.Position{X: 100, Y: 0}, component.Position{X: 0, Y: 100})
	g.PlaceTower(0, "t")
	g.PlaceTower(1, "t")

	for i := 0; i < 4; i++ {
		g.Update(dt)
	}
	if eco := g.ECS.Economy; eco.Money != 15 || eco.Kills != 1 {
		t.Errorf("economy = %+v, want a single reward", *eco)
	}
}

func TestUpgradeAtomicity(t *testing.T) {
	g := newScenario(t, scenarioLevel(t, 100, 3, 1, 0), 1000, component.Position{X: 100, Y: 0})
	g.PlaceTower(0, "t")
	id := g.ECS.TowerOrder[0]
	combat := g.ECS.Combats[id]

	if !g.UpgradeTower(id, defs.StatDamage) {
		t.Fatal("affordable upgrade failed")
	}
	if combat.Damage != 60 || g.ECS.Economy.Money != 10 || g.ECS.Towers[id].Level(defs.StatDamage) != 1 {
		t.Fatalf("after upgrade: damage=%d money=%d", combat.Damage, g.ECS.Economy.Money)
	}

	tests := []struct {
		name string
		stat defs.UpgradeStat
	}{
		{"max level", defs.StatDamage},
		{"insufficient money", defs.StatRange},
		{"not in catalog", defs.StatFireRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := *combat
			if g.UpgradeTower(id, tt.stat) {
				t.Fatal("upgrade should fail")
			}
			if *combat != before || g.ECS.Economy.Money != 10 {
				t.Errorf("failed upgrade changed state: %+v money=%d", *combat, g.ECS.Economy.Money)
			}
		})
	}
	if g.ECS.Towers[id].Level(defs.StatRange) != 0 {
		t.Error("range level changed on failed upgrade")
	}
}

func TestHandleClick(t *testing.T) {
	g := newScenario(t, scenarioLevel(t, 100, 3, 1, 0), 1000, component.Position{X: 100, Y: 100})

	g.HandleClick(110, 90) // свободное место
	if len(g.ECS.TowerOrder) != 1 {
		t.Fatal("click on a free spot did not build")
	}
	id := g.ECS.TowerOrder[0]
	if g.SelectedTower != 0 {
		t.Error("building should not select the tower")
	}

	g.HandleClick(100, 100)
	if g.SelectedTower != id {
		t.Fatalf("tower not selected")
	}
	if len(g.Snapshot().Upgrades) != 2 {
		t.Errorf("selected tower should expose upgrades")
	}
	g.HandleClick(100, 100)
	if g.SelectedTower != 0 {
		t.Error("second click should deselect")
	}
	g.HandleClick(100, 100)
	g.HandleClick(600, 600)
	if g.SelectedTower != 0 {
		t.Error("click elsewhere should deselect")
	}
	if len(g.ECS.TowerOrder) != 1 || g.ECS.Economy.Money != 50 {
		t.Error("clicks on a placed tower should not build")
	}

	if g.SelectTowerType("missing") || !g.SelectTowerType("weak") || g.SelectedType != "weak" {
		t.Error("SelectTowerType misbehaved")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() Snapshot {
		level := defs.BuiltinLevels()[0]
		m, err := NewGridMap(&level)
		if err != nil {
			t.Fatal(err)
		}
		g, err := NewGame(&level, m, utils.NewPRNGService(2024))
		if err != nil {
			t.Fatal(err)
		}
		g.PlaceTower(0, "balanced")
		g.PlaceTower(3, "rapid")
		for i := 0; i < 200; i++ {
			g.Update(1.0 / 60)
		}
		return g.Snapshot()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different snapshots")
	}
}

func TestBuiltinMaps(t *testing.T) {
	levels := defs.BuiltinLevels()
	wantPaths := []int{1, 1, 3}
	for i := range levels {
		m, err := NewGridMap(&levels[i])
		if err != nil {
			t.Fatalf("level %d: %v", i, err)
		}
		if got := len(m.Paths()); got != wantPaths[i] {
			t.Errorf("level %d: %d paths, want %d", i, got, wantPaths[i])
		}
		if len(m.BuildSpots()) == 0 {
			t.Errorf("level %d has no build spots", i)
		}
		for _, p := range m.Paths() {
			if len(p) < 2 {
				t.Errorf("level %d: degenerate path %v", i, p)
			}
		}
	}
	m, _ := NewGridMap(&levels[0])
	if first := m.Paths()[0][0]; first.X != 25 || first.Y != 75 {
		t.Errorf("level 1 path starts at %+v, want (25,75)", first)
	}
}

func TestNewGameRequiresLevelAndMap(t *testing.T) {
	l := scenarioLevel(t, 100, 3, 1, 0)
	tests := []struct {
		name  string
		level *defs.Level
		m     MapProvider
	}{
		{"nil level", nil, &StaticMap{}},
		{"nil map", l, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGame(tt.level, tt.m, utils.NewPRNGService(1))
			if g != nil || !errors.Is(err, ErrNoLevel) {
				t.Errorf("NewGame = %v, %v; want ErrNoLevel", g, err)
			}
		})
	}
}
