// component/tower.go
package component

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
)

type Tower struct {
	TypeID      string                   // ID из каталога башен уровня
	SpotIndex   int                      // Индекс места постройки
	Levels      map[defs.UpgradeStat]int // Уровни улучшений по характеристикам
	Projectiles []types.EntityID         // Снаряды, принадлежащие башне
}

// Level returns the upgrade level for stat.
func (t *Tower) Level(stat defs.UpgradeStat) int {
	return t.Levels[stat]
}

// BuildSpot - место, где можно поставить ровно одну башню.
type BuildSpot struct {
	Position Position
	Occupied bool
	TowerID  types.EntityID
}
