// internal/defs/enemies.go
package defs

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EnemyTier - строка таблицы врагов уровня, выбирается по весу.
type EnemyTier struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Weight           int     `json:"weight"`
	Speed            Range   `json:"speed"`  // pixels per second
	Health           Range   `json:"health"` // целые значения
	Reward           int     `json:"reward"`
	SpeedMultiplier  float64 `json:"speed_multiplier"`
	HealthMultiplier float64 `json:"health_multiplier"`
	Visuals          Visuals `json:"visuals"`
}

// Weights returns the tier weights in table order.
func Weights(tiers []EnemyTier) []int {
	w := make([]int, len(tiers))
	for i, t := range tiers {
		w[i] = t.Weight
	}
	return w
}
