package system

import (
	"math"
	"testing"

	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

const dt = 0.25

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func testLevel(t *testing.T) *defs.Level {
	t.Helper()
	l := &defs.Level{
		Name:           "test",
		Map:            [][]int{{3, 1, 4}},
		WavesToWin:     2,
		EnemiesPerWave: 3,
		BaseLambda:     100,
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return l
}

func straightPath(length float64) []component.Position {
	return []component.Position{{X: 0, Y: 0}, {X: length, Y: 0}}
}

func addTower(ecs *entity.ECS, x, y float64, c component.Combat) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{TypeID: "t", Levels: map[defs.UpgradeStat]int{}}
	ecs.Combats[id] = &c
	ecs.TowerOrder = append(ecs.TowerOrder, id)
	return id
}

func TestNextWaveGrowth(t *testing.T) {
	wave := &component.Wave{Number: 1, EnemiesPerWave: 10, Lambda: 0.5, SpeedMultiplier: 1, HealthMultiplier: 1, SpawnedInWave: 10}
	growth := defs.Growth{Lambda: 1.1, Speed: 1.05, Health: 1.1}

	wantQuota := []int{14, 18, 23, 29}
	for i, want := range wantQuota {
		prevLambda := wave.Lambda
		NextWave(wave, growth)
		if wave.EnemiesPerWave != want {
			t.Errorf("wave %d quota = %d, want %d", wave.Number, wave.EnemiesPerWave, want)
		}
		if wave.Number != i+2 || wave.SpawnedInWave != 0 {
			t.Errorf("wave %d: number=%d spawned=%d", i, wave.Number, wave.SpawnedInWave)
		}
		if wave.Lambda <= prevLambda {
			t.Errorf("lambda did not grow: %v -> %v", prevLambda, wave.Lambda)
		}
	}
	if math.Abs(wave.SpeedMultiplier-math.Pow(1.05, 4)) > 1e-9 {
		t.Errorf("speed multiplier = %v", wave.SpeedMultiplier)
	}
}

func TestWaveSpawnsQuotaAndAdvances(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(rec, event.WaveStarted, event.WaveEnded, event.LevelCleared, event.EnemySpawned)
	ws := NewWaveSystem(ecs, testLevel(t), [][]component.Position{straightPath(1000)}, utils.NewPRNGService(5), d)
	ws.StartLevel()

	for i := 0; i < 10; i++ {
		ws.Update(dt)
	}
	if got := len(ecs.EnemyOrder); got != 3 {
		t.Fatalf("spawned %d enemies, want quota 3", got)
	}
	if ecs.Wave.Number != 1 {
		t.Fatalf("wave advanced while enemies remain")
	}

	ecs.DestroyEnemies(append([]types.EntityID(nil), ecs.EnemyOrder...))
	ws.Update(dt)
	if ecs.Wave.Number != 2 || ecs.Wave.EnemiesPerWave != 5 {
		t.Fatalf("after clear: wave=%d quota=%d, want 2 and 5", ecs.Wave.Number, ecs.Wave.EnemiesPerWave)
	}

	for i := 0; i < 10; i++ {
		ws.Update(dt)
	}
	ecs.DestroyEnemies(append([]types.EntityID(nil), ecs.EnemyOrder...))
	ws.Update(dt)
	if !ecs.Wave.Cleared || ecs.Wave.Active {
		t.Fatalf("final wave should clear the level: %+v", ecs.Wave)
	}
	if rec.count(event.LevelCleared) != 1 || rec.count(event.EnemySpawned) != 8 || rec.count(event.WaveStarted) != 2 {
		t.Errorf("events: cleared=%d spawned=%d started=%d",
			rec.count(event.LevelCleared), rec.count(event.EnemySpawned), rec.count(event.WaveStarted))
	}
}

func TestWaveWithoutPathDoesNotSpawn(t *testing.T) {
	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, testLevel(t), nil, utils.NewPRNGService(1), event.NewDispatcher())
	ws.StartLevel()
	for i := 0; i < 20; i++ {
		ws.Update(dt)
	}
	if len(ecs.EnemyOrder) != 0 || ecs.Wave.SpawnedInWave != 0 || ecs.Wave.Number != 1 {
		t.Errorf("expected no spawns, got enemies=%d spawned=%d wave=%d",
			len(ecs.EnemyOrder), ecs.Wave.SpawnedInWave, ecs.Wave.Number)
	}
}

func TestWaveSameSeedSameEnemies(t *testing.T) {
	run := func() []int {
		ecs := entity.NewECS()
		l := testLevel(t)
		l.Tiers = defs.BuiltinLevels()[0].Tiers
		ws := NewWaveSystem(ecs, l, [][]component.Position{straightPath(1000)}, utils.NewPRNGService(99), event.NewDispatcher())
		ws.StartLevel()
		for i := 0; i < 3; i++ {
			ws.Update(dt)
		}
		var hp []int
		for _, id := range ecs.EnemyOrder {
			hp = append(hp, ecs.Healths[id].Max)
		}
		return hp
	}
	a, b := run(), run()
	if len(a) != 3 || len(a) != len(b) {
		t.Fatalf("unexpected spawn counts %d / %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("enemy %d health differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestMovementEscapeCostsLife(t *testing.T) {
	ecs := entity.NewECS()
	ecs.Economy.Lives = 3
	d := event.NewDispatcher()
	NewEconomySystem(ecs, d)
	ms := NewMovementSystem(ecs, d)

	id := ecs.CreateEnemy(straightPath(100), 100, 10, 5, "")
	for i := 0; i < 3; i++ {
		ms.Update(dt)
	}
	if pos := ecs.Positions[id]; pos == nil || pos.X != 75 {
		t.Fatalf("after 3 ticks position = %+v, want X=75", pos)
	}
	ms.Update(dt)
	if len(ecs.EnemyOrder) != 0 || ecs.Enemies[id] != nil {
		t.Fatalf("escaped enemy still present")
	}
	if ecs.Economy.Lives != 2 || ecs.Economy.Money != 0 || ecs.Economy.Escapes != 1 {
		t.Errorf("economy after escape = %+v", *ecs.Economy)
	}
}

func TestLivesDepletedOnce(t *testing.T) {
	ecs := entity.NewECS()
	ecs.Economy.Lives = 1
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(rec, event.LivesDepleted)
	NewEconomySystem(ecs, d)
	ms := NewMovementSystem(ecs, d)

	ecs.CreateEnemy(straightPath(10), 100, 10, 5, "")
	ecs.CreateEnemy(straightPath(10), 100, 10, 5, "")
	ms.Update(dt)
	if ecs.Economy.Lives != 0 || rec.count(event.LivesDepleted) != 1 {
		t.Errorf("lives=%d depleted events=%d", ecs.Economy.Lives, rec.count(event.LivesDepleted))
	}
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.CreateEnemy(straightPath(100), 0, 30, 5, "")

	if ApplyDamage(ecs, id, 10) {
		t.Fatal("non-lethal hit reported a kill")
	}
	if !ApplyDamage(ecs, id, 50) {
		t.Fatal("lethal hit not reported")
	}
	if h := ecs.Healths[id]; h.Value != 0 || ecs.Enemies[id].Alive {
		t.Errorf("health=%d alive=%v", h.Value, ecs.Enemies[id].Alive)
	}
	if ApplyDamage(ecs, id, 10) {
		t.Error("dead enemy killed twice")
	}
}

func TestFindFirstInRangeUsesSpawnOrder(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, NewProjectileSystem(ecs), event.NewDispatcher())
	far := ecs.CreateEnemy([]component.Position{{X: 90, Y: 0}, {X: 1000, Y: 0}}, 0, 10, 5, "")
	near := ecs.CreateEnemy([]component.Position{{X: 10, Y: 0}, {X: 1000, Y: 0}}, 0, 10, 5, "")
	origin := component.Position{}

	for i := 0; i < 5; i++ {
		if got := cs.FindFirstInRange(origin, 100); got != far {
			t.Fatalf("iteration %d: got %d, want first spawned %d", i, got, far)
		}
	}
	ecs.Enemies[far].Alive = false
	if got := cs.FindFirstInRange(origin, 100); got != near {
		t.Errorf("dead enemy not skipped: got %d", got)
	}
	if got := cs.FindFirstInRange(origin, 5); got != 0 {
		t.Errorf("out of range enemy returned: %d", got)
	}
}

func TestTowerFireRateCooldown(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, NewProjectileSystem(ecs), event.NewDispatcher())
	ecs.CreateEnemy([]component.Position{{X: 50, Y: 0}, {X: 1000, Y: 0}}, 0, 1000, 5, "")
	tower := addTower(ecs, 0, 0, component.Combat{Damage: 1, FireRate: 2, Range: 100, ProjectileSpeed: 4})

	shots := func() int { return len(ecs.Towers[tower].Projectiles) }
	steps := []struct {
		time float64
		want int
	}{
		{0, 1},
		{0.25, 1},
		{0.5, 2},
		{0.75, 2},
		{1.0, 3},
	}
	for _, s := range steps {
		ecs.GameTime = s.time
		cs.Update(dt)
		if got := shots(); got != s.want {
			t.Fatalf("t=%.2f: %d projectiles, want %d", s.time, got, s.want)
		}
	}
}

func TestZeroFireRateNeverFires(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, NewProjectileSystem(ecs), event.NewDispatcher())
	ecs.CreateEnemy([]component.Position{{X: 50, Y: 0}, {X: 1000, Y: 0}}, 0, 10, 5, "")
	tower := addTower(ecs, 0, 0, component.Combat{Damage: 1, FireRate: 0, Range: 100, ProjectileSpeed: 100})
	cs.Update(dt)
	if n := len(ecs.Towers[tower].Projectiles); n != 0 {
		t.Errorf("tower with zero fire rate fired %d shots", n)
	}
}

func TestProjectileHitsOnce(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, NewProjectileSystem(ecs), event.NewDispatcher())
	enemy := ecs.CreateEnemy([]component.Position{{X: 50, Y: 0}, {X: 1000, Y: 0}}, 0, 25, 5, "")
	addTower(ecs, 0, 0, component.Combat{Damage: 25, FireRate: 0.1, Range: 100, ProjectileSpeed: 1000})

	cs.Update(dt) // выстрел
	cs.Update(dt) // попадание
	if h := ecs.Healths[enemy]; h.Value != 0 || ecs.Enemies[enemy].Alive {
		t.Fatalf("enemy not killed: health=%d", h.Value)
	}
	cs.Update(dt)
	if len(ecs.Projectiles) != 0 {
		t.Errorf("dead projectile not pruned: %d left", len(ecs.Projectiles))
	}
}

func TestProjectileCancelsWhenTargetDies(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs)
	enemy := ecs.CreateEnemy([]component.Position{{X: 500, Y: 0}, {X: 1000, Y: 0}}, 0, 40, 5, "")
	pid := ecs.NewEntity()
	ecs.Positions[pid] = &component.Position{}
	ecs.Projectiles[pid] = &component.Projectile{TargetID: enemy, Speed: 10, Damage: 10, Alive: true}

	ps.Advance(pid, dt)
	if ecs.Positions[pid].X <= 0 {
		t.Fatal("projectile did not move toward target")
	}
	ecs.Enemies[enemy].Alive = false
	ps.Advance(pid, dt)
	if ecs.Projectiles[pid].Alive {
		t.Error("projectile should self-cancel on a dead target")
	}
	if ecs.Healths[enemy].Value != 40 {
		t.Errorf("cancelled projectile dealt damage: health=%d", ecs.Healths[enemy].Value)
	}
}

func TestApplyUpgrade(t *testing.T) {
	tests := []struct {
		name  string
		def   defs.UpgradeDef
		check func(c component.Combat) bool
	}{
		{"damage", defs.UpgradeDef{Stat: defs.StatDamage, Increment: 10}, func(c component.Combat) bool { return c.Damage == 35 }},
		{"fire rate floor", defs.UpgradeDef{Stat: defs.StatFireRate, Increment: -5}, func(c component.Combat) bool { return c.FireRate == 0.1 }},
		{"range floor", defs.UpgradeDef{Stat: defs.StatRange, Increment: -500}, func(c component.Combat) bool { return c.Range == 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tower := &component.Tower{}
			combat := component.Combat{Damage: 25, FireRate: 1.5, Range: 220}
			ApplyUpgrade(tower, &combat, tt.def)
			if !tt.check(combat) {
				t.Errorf("unexpected combat after upgrade: %+v", combat)
			}
			if tower.Level(tt.def.Stat) != 1 {
				t.Errorf("level = %d, want 1", tower.Level(tt.def.Stat))
			}
		})
	}

	tower := &component.Tower{Levels: map[defs.UpgradeStat]int{defs.StatRange: 4}}
	if CanUpgrade(tower, defs.UpgradeDef{Stat: defs.StatRange, MaxLevel: 4}) {
		t.Error("max level reached but CanUpgrade returned true")
	}
	if !CanUpgrade(tower, defs.UpgradeDef{Stat: defs.StatRange}) {
		t.Error("max level 0 should mean unlimited")
	}
}

func TestComputeMetrics(t *testing.T) {
	ecs := entity.NewECS()
	ecs.Wave.Lambda = 0.5
	if m := ComputeMetrics(ecs); m.Utilization != 0 || m.Servers != 0 {
		t.Errorf("no towers: %+v", m)
	}
	addTower(ecs, 0, 0, component.Combat{FireRate: 1})
	addTower(ecs, 0, 0, component.Combat{FireRate: 1.5})
	ecs.CreateEnemy(straightPath(10), 0, 1, 1, "")

	m := ComputeMetrics(ecs)
	if m.Servers != 2 || m.Mu != 1.25 || m.Utilization != 0.2 || m.InSystem != 1 || m.Lambda != 0.5 {
		t.Errorf("metrics = %+v", m)
	}
}
