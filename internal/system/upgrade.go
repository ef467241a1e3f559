package system

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
)

// CanUpgrade reports whether the stat is below its max level (0 means no limit).
func CanUpgrade(tower *component.Tower, def defs.UpgradeDef) bool {
	return def.MaxLevel <= 0 || tower.Level(def.Stat) < def.MaxLevel
}

// ApplyUpgrade применяет прирост характеристики с нижними границами
// и повышает уровень. Оплату проверяет вызывающий.
func ApplyUpgrade(tower *component.Tower, combat *component.Combat, def defs.UpgradeDef) {
	switch def.Stat {
	case defs.StatDamage:
		combat.Damage += int(def.Increment)
		if combat.Damage < 0 {
			combat.Damage = 0
		}
	case defs.StatFireRate:
		combat.FireRate += def.Increment
		if combat.FireRate < config.MinFireRate {
			combat.FireRate = config.MinFireRate
		}
	case defs.StatRange:
		combat.Range += def.Increment
		if combat.Range < config.MinRange {
			combat.Range = config.MinRange
		}
	default:
		return
	}
	if tower.Levels == nil {
		tower.Levels = make(map[defs.UpgradeStat]int)
	}
	tower.Levels[def.Stat]++
}
