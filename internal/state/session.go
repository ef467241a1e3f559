package state

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Pipe0105/TD-Modelamiento/internal/app"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

// RunRecord - итог одного забега, сохраняется после поражения или победы.
type RunRecord struct {
	ID         string    `json:"id"`
	Level      string    `json:"level"`
	LevelIndex int       `json:"level_index"`
	Wave       int       `json:"wave"`
	Outcome    string    `json:"outcome"`
	Money      int       `json:"money"`
	Lives      int       `json:"lives"`
	Kills      int       `json:"kills"`
	Escapes    int       `json:"escapes"`
	Duration   float64   `json:"duration"` // секунды игрового времени
	Seed       int64     `json:"seed"`
	EndedAt    time.Time `json:"ended_at"`
}

// Snapshot - состояние сессии для клиентов.
type Snapshot struct {
	Phase      Phase         `json:"phase"`
	LevelIndex int           `json:"level_index"`
	LevelCount int           `json:"level_count"`
	LevelNames []string      `json:"level_names"`
	Game       *app.Snapshot `json:"game,omitempty"`
}

type subscription struct {
	listener event.Listener
	types    []event.EventType
}

// Session ведёт игрока по уровням через машину состояний.
// Не потокобезопасна: вызывать из одной горутины.
type Session struct {
	levels     []defs.Level
	levelIndex int
	game       *app.Game
	rng        *utils.PRNGService
	sm         *StateMachine
	subs       []subscription
	onRunEnd   []func(RunRecord)
}

// NewSession starts in the menu. A zero seed picks one from the clock.
func NewSession(levels []defs.Level, seed int64) *Session {
	s := &Session{
		levels: levels,
		rng:    utils.NewPRNGService(seed),
		sm:     NewStateMachine(),
	}
	_ = s.sm.SetState(&menuState{s: s})
	return s
}

// SetStartLevel chooses the level used by Start.
func (s *Session) SetStartLevel(index int) error {
	if index < 0 || index >= len(s.levels) {
		return fmt.Errorf("start level %d out of range [0,%d)", index, len(s.levels))
	}
	s.levelIndex = index
	return nil
}

// Subscribe registers a listener on every level's dispatcher, current and future.
func (s *Session) Subscribe(listener event.Listener, types ...event.EventType) {
	s.subs = append(s.subs, subscription{listener: listener, types: types})
	if s.game != nil {
		s.game.EventDispatcher.Subscribe(listener, types...)
	}
}

// OnRunEnd registers a callback for finished runs.
func (s *Session) OnRunEnd(fn func(RunRecord)) {
	s.onRunEnd = append(s.onRunEnd, fn)
}

func (s *Session) Phase() Phase         { return s.sm.Current().Phase() }
func (s *Session) Game() *app.Game      { return s.game }
func (s *Session) Levels() []defs.Level { return s.levels }
func (s *Session) LevelIndex() int      { return s.levelIndex }
func (s *Session) Seed() int64          { return s.rng.Seed() }

// Update advances the current state; only playing moves the simulation.
func (s *Session) Update(deltaTime float64) {
	s.sm.Update(deltaTime)
}

// HandleClick routes a pointer click to the current state.
func (s *Session) HandleClick(x, y float64) {
	s.sm.HandleClick(x, y)
}

// Start: menu → playing на выбранном уровне.
func (s *Session) Start() error {
	if s.Phase() != PhaseMenu {
		return fmt.Errorf("%w: start from %s", ErrTransition, s.Phase())
	}
	return s.play(s.levelIndex)
}

func (s *Session) Pause() error {
	if s.Phase() != PhasePlaying {
		return fmt.Errorf("%w: pause from %s", ErrTransition, s.Phase())
	}
	return s.sm.SetState(&pausedState{s: s})
}

func (s *Session) Resume() error {
	if s.Phase() != PhasePaused {
		return fmt.Errorf("%w: resume from %s", ErrTransition, s.Phase())
	}
	return s.sm.SetState(&playingState{s: s})
}

// Restart replays the current level after a loss or level clear.
// After victory the campaign starts again from the first level.
func (s *Session) Restart() error {
	switch s.Phase() {
	case PhaseGameOver, PhaseLevelComplete:
		return s.play(s.levelIndex)
	case PhaseVictory:
		return s.play(0)
	}
	return fmt.Errorf("%w: restart from %s", ErrTransition, s.Phase())
}

// NextLevel: level_complete → playing на следующем уровне.
func (s *Session) NextLevel() error {
	if s.Phase() != PhaseLevelComplete {
		return fmt.Errorf("%w: next level from %s", ErrTransition, s.Phase())
	}
	return s.play(s.levelIndex + 1)
}

func (s *Session) BackToMenu() error {
	return s.sm.SetState(&menuState{s: s})
}

func (s *Session) play(index int) error {
	if index < 0 || index >= len(s.levels) {
		return fmt.Errorf("level %d out of range", index)
	}
	level := &s.levels[index]
	provider, err := app.NewGridMap(level)
	if err != nil {
		return err
	}

	g, err := app.NewGame(level, provider, s.rng)
	if err != nil {
		return err
	}
	prev := s.game
	s.game = g
	for _, sub := range s.subs {
		s.game.EventDispatcher.Subscribe(sub.listener, sub.types...)
	}
	if err := s.sm.SetState(&playingState{s: s}); err != nil {
		s.game = prev
		return err
	}
	s.levelIndex = index
	return nil
}

func (s *Session) endRun(phase Phase) {
	g := s.game
	rec := RunRecord{
		ID:         uuid.NewString(),
		Level:      g.Level.Name,
		LevelIndex: s.levelIndex,
		Wave:       g.ECS.Wave.Number,
		Outcome:    phase.String(),
		Money:      g.ECS.Economy.Money,
		Lives:      g.ECS.Economy.Lives,
		Kills:      g.ECS.Economy.Kills,
		Escapes:    g.ECS.Economy.Escapes,
		Duration:   g.ECS.GameTime,
		Seed:       s.rng.Seed(),
		EndedAt:    time.Now().UTC(),
	}
	log.Printf("run %s ended: %s on %q wave %d", rec.ID, rec.Outcome, rec.Level, rec.Wave)

	var next State = &gameOverState{s: s}
	if phase == PhaseVictory {
		next = &victoryState{s: s}
	}
	_ = s.sm.SetState(next)
	for _, fn := range s.onRunEnd {
		fn(rec)
	}
}

// Snapshot returns the session view; Game is nil in the menu.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.Phase(),
		LevelIndex: s.levelIndex,
		LevelCount: len(s.levels),
	}
	for _, l := range s.levels {
		snap.LevelNames = append(snap.LevelNames, l.Name)
	}
	if s.game != nil {
		g := s.game.Snapshot()
		snap.Game = &g
	}
	return snap
}
