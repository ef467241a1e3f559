// internal/interfaces/controller.go
package interfaces

import "github.com/Pipe0105/TD-Modelamiento/internal/defs"

// SessionController - команды фаз сессии. Реализуется state.Session.
type SessionController interface {
	SetStartLevel(index int) error
	Start() error
	Pause() error
	Resume() error
	Restart() error
	NextLevel() error
	BackToMenu() error
}

// TowerController - действия игрока на текущем уровне. Реализуется app.Game.
type TowerController interface {
	SelectTowerType(typeID string) bool
	UpgradeSelected(stat defs.UpgradeStat) bool
}
