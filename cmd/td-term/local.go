package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

// localGame - игра в терминале с сессией в этом же процессе.
type localGame struct {
	session *state.Session
	view    *view
	status  string
}

// handleKey возвращает false, если пора выходить.
func (g *localGame) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	var err error
	s := g.session
	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == ' ':
		switch s.Phase() {
		case state.PhaseMenu:
			err = s.Start()
		case state.PhasePaused:
			err = s.Resume()
		case state.PhasePlaying:
			err = s.Pause()
		}
	case r == 'p':
		err = s.Pause()
	case r == 'r':
		err = s.Restart()
	case r == 'n':
		err = s.NextLevel()
	case r == 'm':
		err = s.BackToMenu()
	case r >= '1' && r <= '9':
		idx := int(r - '1')
		if s.Phase() == state.PhaseMenu {
			err = s.SetStartLevel(idx)
		} else if game := s.Game(); game != nil && idx < len(game.Level.Towers) {
			game.SelectTowerType(game.Level.Towers[idx].ID)
		}
	case r == 'd' || r == 'f' || r == 'g':
		stat := map[rune]defs.UpgradeStat{'d': defs.StatDamage, 'f': defs.StatFireRate, 'g': defs.StatRange}[r]
		if game := s.Game(); game != nil && s.Phase() == state.PhasePlaying {
			if !game.UpgradeSelected(stat) {
				g.status = "upgrade rejected"
				return true
			}
		}
	}
	if err != nil {
		g.status = err.Error()
	} else {
		g.status = ""
	}
	return true
}

func (g *localGame) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	game := g.session.Game()
	if game == nil {
		return
	}
	col, row := ev.Position()
	x, y := worldOf(col, row, config.TileSize)
	g.session.HandleClick(x, y)
}

func (g *localGame) run(screen tcell.Screen, tickRate int) {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				g.handleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			g.session.Update(dt)
			g.view.draw(g.session.Snapshot(), g.status)
		}
	}
}

func logRunEnd(rec state.RunRecord) {
	log.Printf("run %s: %s on %s, wave %d, kills %d", rec.ID, rec.Outcome, rec.Level, rec.Wave, rec.Kills)
}
