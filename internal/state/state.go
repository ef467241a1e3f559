// internal/state/state.go
package state

import (
	"errors"
	"fmt"
)

// Phase - фаза сессии
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseLevelComplete
	PhaseVictory
)

var phaseNames = map[Phase]string{
	PhaseMenu:          "menu",
	PhasePlaying:       "playing",
	PhasePaused:        "paused",
	PhaseGameOver:      "game_over",
	PhaseLevelComplete: "level_complete",
	PhaseVictory:       "victory",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText makes phases render as names in JSON.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase name, for clients reading snapshots.
func (p *Phase) UnmarshalText(b []byte) error {
	for phase, name := range phaseNames {
		if name == string(b) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}

// ErrTransition возвращается, если команда недопустима в текущей фазе.
var ErrTransition = errors.New("transition not allowed")

var transitions = map[Phase][]Phase{
	PhaseMenu:          {PhasePlaying},
	PhasePlaying:       {PhasePaused, PhaseGameOver, PhaseLevelComplete, PhaseVictory},
	PhasePaused:        {PhasePlaying},
	PhaseGameOver:      {PhasePlaying, PhaseMenu},
	PhaseLevelComplete: {PhasePlaying, PhaseMenu},
	PhaseVictory:       {PhasePlaying, PhaseMenu},
}

// CanTransition reports whether from → to is a legal move.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// State - интерфейс для всех состояний
type State interface {
	Phase() Phase
	Enter()
	Update(deltaTime float64)
	HandleClick(x, y float64)
	Exit()
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState переключает состояние, если переход разрешён.
func (sm *StateMachine) SetState(newState State) error {
	if sm.current != nil {
		if !CanTransition(sm.current.Phase(), newState.Phase()) {
			return fmt.Errorf("%w: %s -> %s", ErrTransition, sm.current.Phase(), newState.Phase())
		}
		sm.current.Exit()
	}
	sm.current = newState
	sm.current.Enter()
	return nil
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// HandleClick передаёт клик текущему состоянию
func (sm *StateMachine) HandleClick(x, y float64) {
	if sm.current != nil {
		sm.current.HandleClick(x, y)
	}
}
