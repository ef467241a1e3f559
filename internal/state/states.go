package state

import "github.com/Pipe0105/TD-Modelamiento/internal/app"

// menuState - главное меню. Клик начинает игру.
type menuState struct{ s *Session }

func (m *menuState) Phase() Phase             { return PhaseMenu }
func (m *menuState) Enter()                   { m.s.game = nil }
func (m *menuState) Update(float64)           {}
func (m *menuState) HandleClick(x, y float64) { _ = m.s.Start() }
func (m *menuState) Exit()                    {}

// playingState - идёт симуляция уровня.
type playingState struct{ s *Session }

func (p *playingState) Phase() Phase { return PhasePlaying }
func (p *playingState) Enter()       {}
func (p *playingState) Exit()        {}

func (p *playingState) Update(deltaTime float64) {
	g := p.s.game
	g.Update(deltaTime)

	switch g.Outcome() {
	case app.OutcomeLost:
		p.s.endRun(PhaseGameOver)
	case app.OutcomeCleared:
		if p.s.levelIndex >= len(p.s.levels)-1 {
			p.s.endRun(PhaseVictory)
		} else {
			_ = p.s.sm.SetState(&levelCompleteState{s: p.s})
		}
	}
}

func (p *playingState) HandleClick(x, y float64) {
	p.s.game.HandleClick(x, y)
}

// pausedState замораживает симуляцию и сохраняет флаг активной волны.
type pausedState struct {
	s          *Session
	waveActive bool
}

func (p *pausedState) Phase() Phase { return PhasePaused }

func (p *pausedState) Enter() {
	p.waveActive = p.s.game.ECS.Wave.Active
	p.s.game.SetWaveActive(false)
}

func (p *pausedState) Exit() {
	p.s.game.SetWaveActive(p.waveActive)
}

func (p *pausedState) Update(float64)           {}
func (p *pausedState) HandleClick(x, y float64) {}

// gameOverState: клик перезапускает уровень.
type gameOverState struct{ s *Session }

func (g *gameOverState) Phase() Phase             { return PhaseGameOver }
func (g *gameOverState) Enter()                   {}
func (g *gameOverState) Update(float64)           {}
func (g *gameOverState) HandleClick(x, y float64) { _ = g.s.Restart() }
func (g *gameOverState) Exit()                    {}

// levelCompleteState: клик переходит на следующий уровень.
type levelCompleteState struct{ s *Session }

func (l *levelCompleteState) Phase() Phase             { return PhaseLevelComplete }
func (l *levelCompleteState) Enter()                   {}
func (l *levelCompleteState) Update(float64)           {}
func (l *levelCompleteState) HandleClick(x, y float64) { _ = l.s.NextLevel() }
func (l *levelCompleteState) Exit()                    {}

// victoryState: пройден последний уровень, клик возвращает в меню.
type victoryState struct{ s *Session }

func (v *victoryState) Phase() Phase             { return PhaseVictory }
func (v *victoryState) Enter()                   {}
func (v *victoryState) Update(float64)           {}
func (v *victoryState) HandleClick(x, y float64) { _ = v.s.BackToMenu() }
func (v *victoryState) Exit()                    {}
