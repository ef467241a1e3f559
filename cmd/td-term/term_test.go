package main

import (
	"encoding/json"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Pipe0105/TD-Modelamiento/internal/app"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/server"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

func TestCellMapping(t *testing.T) {
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{25, 75, 1, 3},
		{0, 0, 0, 2},
		{149, 49, 5, 2},
	}
	for _, tt := range tests {
		col, row := cellOf(tt.x, tt.y, 50)
		if col != tt.col || row != tt.row {
			t.Errorf("cellOf(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
		// Центр клетки должен вернуться в ту же клетку
		wx, wy := worldOf(col, row, 50)
		if c2, r2 := cellOf(wx, wy, 50); c2 != col || r2 != row {
			t.Errorf("worldOf(%d, %d) maps back to (%d, %d)", col, row, c2, r2)
		}
	}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawSnapshot(t *testing.T) {
	screen := newSimScreen(t)
	v := &view{screen: screen}
	snap := state.Snapshot{
		Phase: state.PhasePlaying,
		Game: &app.Snapshot{
			Level:    "test",
			Tiles:    [][]int{{3, 1, 1, 4}, {0, 2, 0, 0}},
			TileSize: 50,
			Towers:   []app.TowerView{{ID: 1, Type: "sniper", Point: app.Point{X: 75, Y: 75}}},
			Enemies:  []app.EnemyView{{ID: 2, Point: app.Point{X: 125, Y: 25}, Ratio: 1}},
		},
	}
	v.draw(snap, "")

	if got := runeAt(screen, 3, 3); got != 'S' {
		t.Errorf("tower rune = %q, want 'S'", got)
	}
	if got := runeAt(screen, 5, 2); got != 'E' {
		t.Errorf("enemy rune = %q, want 'E'", got)
	}
}

func TestSpectatorHandlesMessages(t *testing.T) {
	screen := newSimScreen(t)
	counter := map[event.EventType]int{}
	sp := &spectator{view: &view{screen: screen}, sounds: event.NewHandler(func(e event.Event) { counter[e.Type]++ })}

	snapMsg, _ := json.Marshal(server.Message{
		Type: server.MessageTypeSnapshot,
		Data: state.Snapshot{Phase: state.PhaseGameOver, LevelNames: []string{"a"}},
	})
	redraw, err := sp.handleMessage(snapMsg)
	if err != nil || !redraw {
		t.Fatalf("snapshot: redraw=%v err=%v", redraw, err)
	}
	if sp.last.Phase != state.PhaseGameOver {
		t.Errorf("phase = %v", sp.last.Phase)
	}

	evMsg, _ := json.Marshal(server.Message{
		Type: server.MessageTypeEvent,
		Data: map[string]interface{}{"type": event.EnemyKilled},
	})
	if _, err := sp.handleMessage(evMsg); err != nil {
		t.Fatal(err)
	}
	if counter[event.EnemyKilled] != 1 {
		t.Errorf("sound cues = %v", counter)
	}

	if _, err := sp.handleMessage([]byte("{")); err == nil {
		t.Error("expected error for malformed message")
	}
}

func TestLocalKeys(t *testing.T) {
	session := state.NewSession(defs.BuiltinLevels(), 7)
	g := &localGame{session: session, view: &view{screen: newSimScreen(t)}}
	key := func(r rune) bool {
		return g.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}

	key('2')
	if session.LevelIndex() != 1 {
		t.Errorf("level index = %d, want 1", session.LevelIndex())
	}
	key(' ')
	if session.Phase() != state.PhasePlaying {
		t.Fatalf("phase = %v, want playing", session.Phase())
	}
	key('2')
	if got := session.Game().SelectedType; got != session.Game().Level.Towers[1].ID {
		t.Errorf("selected type = %q", got)
	}
	key('p')
	if session.Phase() != state.PhasePaused {
		t.Errorf("phase = %v, want paused", session.Phase())
	}
	key('n')
	if g.status == "" {
		t.Error("next level while paused should report an error")
	}
	if key('q') {
		t.Error("q should quit")
	}
}
