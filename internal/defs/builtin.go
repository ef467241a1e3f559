// internal/defs/builtin.go
package defs

import "image/color"

// BuiltinLevels returns the default campaign. Each call returns fresh
// slices so callers may mutate them.
func BuiltinLevels() []Level {
	levels := []Level{
		{
			Name: "Camino de Gracia",
			Map: [][]int{
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				{3, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 1, 0, 2, 0, 2, 0, 2, 0, 0, 0, 0},
				{0, 2, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				{0, 0, 2, 0, 2, 0, 2, 0, 0, 0, 0, 1, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
				{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
				{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 2, 0, 1, 0, 2, 0, 2, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			},
			WavesToWin:    5,
			StartingMoney: 150,
			StartingLives: 3,
			Multipliers:   Multipliers{Speed: 1.0, Health: 1.0, Lambda: 1.0},
		},
		{
			Name: "Valle Dividido",
			Map: [][]int{
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				{3, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 1, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0},
				{0, 0, 2, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
				{0, 0, 0, 2, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 1, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
				{0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
				{0, 0, 1, 0, 0, 0, 1, 0, 2, 0, 2, 0, 2, 0, 0, 0, 1, 0},
				{0, 0, 1, 0, 2, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
				{0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			},
			WavesToWin:    7,
			StartingMoney: 170,
			StartingLives: 3,
			Multipliers:   Multipliers{Speed: 1.15, Health: 1.2, Lambda: 1.15},
		},
		{
			// Три входа сходятся в общий коридор к выходу.
			Name: "Infierno Convergente",
			Map: [][]int{
				{3, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 2, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0},
				{3, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 2, 0, 0, 0, 1, 0, 2, 0, 0, 1, 0, 2, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
				{0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0},
				{3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0},
			},
			WavesToWin:    9,
			StartingMoney: 190,
			StartingLives: 3,
			Multipliers:   Multipliers{Speed: 1.3, Health: 1.45, Lambda: 1.3},
		},
	}
	for i := range levels {
		levels[i].Tiers = builtinTiers()
		levels[i].Towers = builtinTowers()
		if err := levels[i].Validate(); err != nil {
			panic(err) // встроенные данные всегда валидны
		}
	}
	return levels
}

func builtinTiers() []EnemyTier {
	return []EnemyTier{
		{
			ID: "grunt", Name: "Grunt", Weight: 6,
			Speed:   Range{Min: 80, Max: 120},
			Health:  Range{Min: 80, Max: 150},
			Reward:  15,
			Visuals: Visuals{Color: color.RGBA{200, 40, 40, 255}, Radius: 10},
		},
		{
			ID: "runner", Name: "Runner", Weight: 3,
			Speed:   Range{Min: 130, Max: 170},
			Health:  Range{Min: 50, Max: 90},
			Reward:  12,
			Visuals: Visuals{Color: color.RGBA{240, 160, 30, 255}, Radius: 8},
		},
		{
			ID: "brute", Name: "Brute", Weight: 1,
			Speed:   Range{Min: 50, Max: 70},
			Health:  Range{Min: 220, Max: 320},
			Reward:  30,
			Visuals: Visuals{Color: color.RGBA{120, 30, 160, 255}, Radius: 14},
		},
	}
}

func builtinTowers() []TowerType {
	return []TowerType{
		{
			ID: "balanced", Name: "Balanced", Cost: 50,
			Range: 220, FireRate: 1.5, Damage: 25, ProjectileSpeed: 360,
			Visuals: Visuals{Color: color.RGBA{50, 100, 255, 255}, Radius: 16},
		},
		{
			ID: "sniper", Name: "Sniper", Cost: 80,
			Range: 400, FireRate: 0.5, Damage: 80, ProjectileSpeed: 600,
			Visuals: Visuals{Color: color.RGBA{180, 50, 230, 255}, Radius: 16},
		},
		{
			ID: "rapid", Name: "Rapid", Cost: 60,
			Range: 160, FireRate: 4, Damage: 8, ProjectileSpeed: 420,
			Visuals: Visuals{Color: color.RGBA{50, 255, 50, 255}, Radius: 14},
		},
	}
}
