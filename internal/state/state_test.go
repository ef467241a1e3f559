package state

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
)

const dt = 0.25

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseMenu, PhasePlaying, true},
		{PhaseMenu, PhasePaused, false},
		{PhasePlaying, PhasePaused, true},
		{PhasePaused, PhasePlaying, true},
		{PhasePaused, PhaseGameOver, false},
		{PhasePlaying, PhaseGameOver, true},
		{PhasePlaying, PhaseLevelComplete, true},
		{PhasePlaying, PhaseVictory, true},
		{PhasePlaying, PhaseMenu, false},
		{PhaseLevelComplete, PhasePlaying, true},
		{PhaseLevelComplete, PhaseMenu, true},
		{PhaseGameOver, PhasePlaying, true},
		{PhaseGameOver, PhaseMenu, true},
		{PhaseVictory, PhaseMenu, true},
		{PhaseVictory, PhasePaused, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPhaseJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Phase{"p": PhaseLevelComplete})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"p":"level_complete"}` {
		t.Errorf("got %s", b)
	}

	var back map[string]Phase
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back["p"] != PhaseLevelComplete {
		t.Errorf("decoded %v", back["p"])
	}
	if err := json.Unmarshal([]byte(`{"p":"lobby"}`), &back); err == nil {
		t.Error("expected error for unknown phase")
	}
}

// killLevel: враг стоит на месте, башня на месте постройки убивает его одним выстрелом.
func killLevel(name string) defs.Level {
	l := defs.Level{
		Name:           name,
		Map:            [][]int{{3, 1, 1, 1, 4}, {0, 2, 0, 0, 0}},
		WavesToWin:     1,
		StartingMoney:  50,
		StartingLives:  3,
		EnemiesPerWave: 1,
		BaseLambda:     100,
		Tiers: []defs.EnemyTier{{
			ID: "still", Weight: 1,
			Speed:  defs.Range{Min: 0, Max: 0},
			Health: defs.Range{Min: 10, Max: 10},
			Reward: 15,
		}},
		Towers: []defs.TowerType{{ID: "t", Name: "T", Cost: 50, Range: 200, FireRate: 1, Damage: 100, ProjectileSpeed: 1000}},
	}
	if err := l.Validate(); err != nil {
		panic(err)
	}
	return l
}

func escapeLevel() defs.Level {
	l := defs.Level{
		Name:           "leak",
		Map:            [][]int{{3, 4}},
		StartingLives:  1,
		EnemiesPerWave: 3,
		BaseLambda:     100,
		Tiers: []defs.EnemyTier{{
			ID: "fast", Weight: 1,
			Speed:  defs.Range{Min: 500, Max: 500},
			Health: defs.Range{Min: 10, Max: 10},
		}},
	}
	if err := l.Validate(); err != nil {
		panic(err)
	}
	return l
}

type counter struct{ n map[event.EventType]int }

func (c *counter) OnEvent(e event.Event) { c.n[e.Type]++ }

func TestCampaignFlow(t *testing.T) {
	s := NewSession([]defs.Level{killLevel("one"), killLevel("two")}, 1)
	var runs []RunRecord
	s.OnRunEnd(func(r RunRecord) { runs = append(runs, r) })
	c := &counter{n: map[event.EventType]int{}}
	s.Subscribe(c, event.EnemyKilled)

	if s.Phase() != PhaseMenu || s.Snapshot().Game != nil {
		t.Fatalf("session should start in the menu")
	}
	s.HandleClick(0, 0)
	if s.Phase() != PhasePlaying {
		t.Fatalf("click in menu should start, phase=%s", s.Phase())
	}

	playLevel := func() {
		t.Helper()
		s.HandleClick(75, 75) // строим башню
		if len(s.Game().ECS.TowerOrder) != 1 {
			t.Fatal("tower was not built")
		}
		for i := 0; i < 4; i++ {
			s.Update(dt)
		}
	}

	playLevel()
	if s.Phase() != PhaseLevelComplete {
		t.Fatalf("phase = %s, want level_complete", s.Phase())
	}
	if len(runs) != 0 {
		t.Fatalf("level clear should not end the run")
	}
	if err := s.Pause(); !errors.Is(err, ErrTransition) {
		t.Errorf("pause from level_complete: %v", err)
	}

	s.HandleClick(0, 0)
	if s.Phase() != PhasePlaying || s.LevelIndex() != 1 {
		t.Fatalf("click should advance to level 2, phase=%s index=%d", s.Phase(), s.LevelIndex())
	}
	playLevel()
	if s.Phase() != PhaseVictory {
		t.Fatalf("phase = %s, want victory", s.Phase())
	}
	if len(runs) != 1 || runs[0].Outcome != "victory" || runs[0].Level != "two" || runs[0].Kills != 1 || runs[0].ID == "" {
		t.Errorf("run records = %+v", runs)
	}
	if c.n[event.EnemyKilled] != 2 {
		t.Errorf("subscriber saw %d kills across levels, want 2", c.n[event.EnemyKilled])
	}

	s.HandleClick(0, 0)
	if s.Phase() != PhaseMenu {
		t.Errorf("click after victory should return to menu, phase=%s", s.Phase())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	s := NewSession([]defs.Level{escapeLevel()}, 7)
	var runs []RunRecord
	s.OnRunEnd(func(r RunRecord) { runs = append(runs, r) })

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.Update(dt)
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", s.Phase())
	}
	if len(runs) != 1 || runs[0].Outcome != "game_over" || runs[0].Lives != 0 || runs[0].Seed != 7 {
		t.Errorf("run records = %+v", runs)
	}
	first := s.Game()

	s.HandleClick(0, 0)
	if s.Phase() != PhasePlaying || s.Game() == first {
		t.Fatalf("click after game over should restart with a fresh level")
	}
	if s.Game().ECS.Economy.Lives != 1 {
		t.Errorf("restart did not reset lives")
	}
	if err := s.BackToMenu(); !errors.Is(err, ErrTransition) {
		t.Errorf("menu from playing should be rejected, got %v", err)
	}
}

func TestPauseFreezesAndRestoresWave(t *testing.T) {
	s := NewSession([]defs.Level{killLevel("one")}, 3)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	g := s.Game()
	if g.ECS.Wave.Active {
		t.Error("wave should be inactive while paused")
	}
	for i := 0; i < 5; i++ {
		s.Update(dt)
	}
	if g.ECS.GameTime != 0 || len(g.ECS.EnemyOrder) != 0 {
		t.Errorf("simulation advanced while paused: time=%v", g.ECS.GameTime)
	}
	s.HandleClick(75, 75)
	if len(g.ECS.TowerOrder) != 0 {
		t.Error("build accepted while paused")
	}

	if err := s.Resume(); err != nil {
		t.Fatal(err)
	}
	if !g.ECS.Wave.Active {
		t.Error("wave flag not restored on resume")
	}
	if err := s.Resume(); !errors.Is(err, ErrTransition) {
		t.Errorf("double resume: %v", err)
	}
}

func TestSetStartLevel(t *testing.T) {
	s := NewSession([]defs.Level{killLevel("one"), killLevel("two")}, 1)
	if err := s.SetStartLevel(5); err == nil {
		t.Error("expected out of range error")
	}
	if err := s.SetStartLevel(1); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.Game().Level.Name != "two" {
		t.Errorf("started on %q", s.Game().Level.Name)
	}
}
