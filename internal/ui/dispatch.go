package ui

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/interfaces"
)

// Apply выполняет действие HUD. towers может быть nil, если уровень не идёт.
func Apply(a Action, session interfaces.SessionController, towers interfaces.TowerController) error {
	switch a.Kind {
	case ActionStart:
		if err := session.SetStartLevel(a.Level); err != nil {
			return err
		}
		return session.Start()
	case ActionPause:
		return session.Pause()
	case ActionResume:
		return session.Resume()
	case ActionRestart:
		return session.Restart()
	case ActionNextLevel:
		return session.NextLevel()
	case ActionMenu:
		return session.BackToMenu()
	case ActionSelectType:
		if towers != nil {
			towers.SelectTowerType(a.TypeID)
		}
	case ActionUpgrade:
		if towers != nil {
			towers.UpgradeSelected(a.Stat)
		}
	}
	return nil
}
