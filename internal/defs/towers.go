// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
)

// UpgradeStat - характеристика башни, которую можно улучшать.
type UpgradeStat string

const (
	StatDamage   UpgradeStat = "damage"
	StatFireRate UpgradeStat = "fire_rate"
	StatRange    UpgradeStat = "range"
)

// AllStats lists upgradeable stats in display order.
var AllStats = []UpgradeStat{StatDamage, StatFireRate, StatRange}

// ParseUpgradeStat converts a string key into an UpgradeStat.
func ParseUpgradeStat(s string) (UpgradeStat, error) {
	switch UpgradeStat(s) {
	case StatDamage, StatFireRate, StatRange:
		return UpgradeStat(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStat, s)
}

// TowerType holds all the static data for a buildable tower.
type TowerType struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Cost            int     `json:"cost"`
	Range           float64 `json:"range"`     // pixels
	FireRate        float64 `json:"fire_rate"` // Shots per second
	Damage          int     `json:"damage"`
	ProjectileSpeed float64 `json:"projectile_speed"` // pixels per second
	Visuals         Visuals `json:"visuals"`
}

// UpgradeDef - одна строка каталога улучшений.
type UpgradeDef struct {
	Stat      UpgradeStat `json:"stat"`
	Cost      int         `json:"cost"`
	Increment float64     `json:"increment"`
	MaxLevel  int         `json:"max_level"` // 0 - без ограничения
}

// Visuals contains parameters for rendering a tower or an enemy.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
	Sprite string     `json:"sprite,omitempty"`
}
