// internal/defs/level.go
package defs

import (
	"errors"
	"fmt"
	"math"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
)

var (
	ErrInvalidLevel = errors.New("invalid level")
	ErrUnknownStat  = errors.New("unknown upgrade stat")
)

// Multipliers scale the base enemy values and arrival rate of a level.
type Multipliers struct {
	Speed  float64 `json:"speed"`
	Health float64 `json:"health"`
	Lambda float64 `json:"lambda"`
}

// Growth is applied to the wave parameters each time a wave is cleared.
type Growth struct {
	Lambda float64 `json:"lambda"`
	Speed  float64 `json:"speed"`
	Health float64 `json:"health"`
}

// Level описывает один уровень: карту, экономику, волны и каталоги.
type Level struct {
	Name           string       `json:"name"`
	Map            [][]int      `json:"map"`
	PathTypes      []int        `json:"path_types,omitempty"`
	WavesToWin     int          `json:"waves_to_win"`
	StartingMoney  int          `json:"starting_money"`
	StartingLives  int          `json:"starting_lives"`
	EnemiesPerWave int          `json:"enemies_per_wave"`
	BaseLambda     float64      `json:"base_lambda"`
	Multipliers    Multipliers  `json:"multipliers"`
	Growth         Growth       `json:"growth"`
	Tiers          []EnemyTier  `json:"tiers"`
	Towers         []TowerType  `json:"towers"`
	Upgrades       []UpgradeDef `json:"upgrades"`
}

// Tower returns the catalog entry for id. Unknown ids fall back to the
// first catalog entry, and an empty catalog to DefaultTower.
func (l *Level) Tower(id string) TowerType {
	for _, t := range l.Towers {
		if t.ID == id {
			return t
		}
	}
	if len(l.Towers) > 0 {
		return l.Towers[0]
	}
	return DefaultTower()
}

// Upgrade returns the upgrade definition for stat.
func (l *Level) Upgrade(stat UpgradeStat) (UpgradeDef, bool) {
	for _, u := range l.Upgrades {
		if u.Stat == stat {
			return u, true
		}
	}
	return UpgradeDef{}, false
}

// DefaultTower is used when a level has no tower catalog.
func DefaultTower() TowerType {
	return TowerType{
		ID:              "basic",
		Name:            "Basic",
		Cost:            config.DefaultTowerCost,
		Range:           config.DefaultTowerRange,
		FireRate:        config.DefaultTowerFireRate,
		Damage:          config.DefaultTowerDamage,
		ProjectileSpeed: config.DefaultTowerProjectileSpeed,
		Visuals:         Visuals{Color: config.DefaultTowerColor, Radius: config.TowerRadius},
	}
}

// DefaultUpgrades is the upgrade catalog used when a level defines none.
func DefaultUpgrades() []UpgradeDef {
	return []UpgradeDef{
		{Stat: StatDamage, Cost: 40, Increment: 10, MaxLevel: 5},
		{Stat: StatFireRate, Cost: 50, Increment: 0.25, MaxLevel: 5},
		{Stat: StatRange, Cost: 30, Increment: 25, MaxLevel: 4},
	}
}

// Validate fills zero values with defaults and rejects inconsistent data.
func (l *Level) Validate() error {
	if len(l.Map) == 0 {
		return fmt.Errorf("%w %q: empty map", ErrInvalidLevel, l.Name)
	}
	width := len(l.Map[0])
	for i, row := range l.Map {
		if len(row) != width {
			return fmt.Errorf("%w %q: map row %d has %d cells, want %d", ErrInvalidLevel, l.Name, i, len(row), width)
		}
	}
	if len(l.PathTypes) == 0 {
		l.PathTypes = []int{1, 5}
	}

	if l.WavesToWin < 0 || l.StartingMoney < 0 || l.StartingLives < 0 || l.EnemiesPerWave < 0 || l.BaseLambda < 0 {
		return fmt.Errorf("%w %q: negative wave or economy value", ErrInvalidLevel, l.Name)
	}
	if l.WavesToWin == 0 {
		l.WavesToWin = config.DefaultWavesToWin
	}
	if l.StartingLives == 0 {
		l.StartingLives = config.DefaultStartingLives
	}
	if l.EnemiesPerWave == 0 {
		l.EnemiesPerWave = config.DefaultEnemiesPerWave
	}
	if l.BaseLambda == 0 {
		l.BaseLambda = config.DefaultLambda
	}

	for _, m := range []*float64{&l.Multipliers.Speed, &l.Multipliers.Health, &l.Multipliers.Lambda} {
		if *m < 0 {
			return fmt.Errorf("%w %q: negative multiplier", ErrInvalidLevel, l.Name)
		}
		if *m == 0 {
			*m = 1
		}
	}

	growth := []struct {
		v   *float64
		def float64
	}{
		{&l.Growth.Lambda, config.DefaultLambdaGrowth},
		{&l.Growth.Speed, config.DefaultSpeedGrowth},
		{&l.Growth.Health, config.DefaultHealthGrowth},
	}
	for _, g := range growth {
		if *g.v == 0 {
			*g.v = g.def
		}
		if *g.v < 1 {
			return fmt.Errorf("%w %q: growth rate %.2f below 1", ErrInvalidLevel, l.Name, *g.v)
		}
	}

	for i := range l.Tiers {
		if err := validateTier(&l.Tiers[i]); err != nil {
			return fmt.Errorf("%w %q: %v", ErrInvalidLevel, l.Name, err)
		}
	}

	for _, t := range l.Towers {
		if t.Cost < 0 || t.Range < 0 || t.FireRate < 0 || t.Damage < 0 || t.ProjectileSpeed <= 0 {
			return fmt.Errorf("%w %q: tower %q has invalid stats", ErrInvalidLevel, l.Name, t.ID)
		}
	}

	if l.Upgrades == nil {
		l.Upgrades = DefaultUpgrades()
	}
	seen := make(map[UpgradeStat]bool)
	for _, u := range l.Upgrades {
		if _, err := ParseUpgradeStat(string(u.Stat)); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidLevel, l.Name, err)
		}
		if seen[u.Stat] {
			return fmt.Errorf("%w %q: duplicate upgrade %q", ErrInvalidLevel, l.Name, u.Stat)
		}
		seen[u.Stat] = true
		if u.Cost < 0 || u.MaxLevel < 0 {
			return fmt.Errorf("%w %q: upgrade %q has negative cost or max level", ErrInvalidLevel, l.Name, u.Stat)
		}
		// урон целочисленный
		if u.Stat == StatDamage && u.Increment != math.Trunc(u.Increment) {
			return fmt.Errorf("%w %q: damage increment %v is not a whole number", ErrInvalidLevel, l.Name, u.Increment)
		}
	}
	return nil
}

func validateTier(t *EnemyTier) error {
	if t.Weight < 0 {
		return fmt.Errorf("tier %q has negative weight", t.ID)
	}
	if t.Speed.Min < 0 || t.Speed.Min > t.Speed.Max {
		return fmt.Errorf("tier %q has invalid speed range", t.ID)
	}
	if t.Health.Min < 1 || t.Health.Min > t.Health.Max {
		return fmt.Errorf("tier %q has invalid health range", t.ID)
	}
	if t.Reward < 0 {
		return fmt.Errorf("tier %q has negative reward", t.ID)
	}
	if t.SpeedMultiplier == 0 {
		t.SpeedMultiplier = 1
	}
	if t.HealthMultiplier == 0 {
		t.HealthMultiplier = 1
	}
	if t.SpeedMultiplier < 0 || t.HealthMultiplier < 0 {
		return fmt.Errorf("tier %q has negative multiplier", t.ID)
	}
	return nil
}
