// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
// Health/Speed/Damage are wave-1 base stats; the wave director multiplies
// them by the current wave scaling at spawn time.
type EnemyDefinition struct {
	ID        string
	Name      string
	Health    float64
	Speed     float64
	Damage    float64
	Radius    float64
	CoinValue int

	// Splitters break into SplitCount copies of SplitInto on death.
	SplitInto  string
	SplitCount int

	Visuals Visuals
}

// EnemyLibrary is the library of all enemy definitions, keyed by ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_BASIC": {
		ID: "ENEMY_BASIC", Name: "Walker",
		Health: 30, Speed: 70, Damage: 10, Radius: 12, CoinValue: 3,
		Visuals: Visuals{Color: color.RGBA{220, 70, 70, 255}, Radius: 12},
	},
	"ENEMY_FAST": {
		ID: "ENEMY_FAST", Name: "Sprinter",
		Health: 18, Speed: 140, Damage: 7, Radius: 9, CoinValue: 4,
		Visuals: Visuals{Color: color.RGBA{240, 160, 60, 255}, Radius: 9},
	},
	"ENEMY_TANK": {
		ID: "ENEMY_TANK", Name: "Bruiser",
		Health: 90, Speed: 40, Damage: 20, Radius: 18, CoinValue: 8,
		Visuals: Visuals{Color: color.RGBA{150, 60, 160, 255}, Radius: 18, HasStroke: true},
	},
	"ENEMY_SPLITTER": {
		ID: "ENEMY_SPLITTER", Name: "Splitter",
		Health: 45, Speed: 60, Damage: 12, Radius: 14, CoinValue: 6,
		SplitInto: "ENEMY_MINI", SplitCount: 2,
		Visuals: Visuals{Color: color.RGBA{80, 200, 120, 255}, Radius: 14},
	},
	"ENEMY_MINI": {
		ID: "ENEMY_MINI", Name: "Mite",
		Health: 12, Speed: 100, Damage: 5, Radius: 7, CoinValue: 1,
		Visuals: Visuals{Color: color.RGBA{120, 230, 150, 255}, Radius: 7},
	},
}

// SpawnTable returns the enemy-type probability table for a wave. Early
// waves are pure basic; fast, tank and splitter mix in at increasing
// ratios as the tier rises.
func SpawnTable(wave int) []SpawnWeight {
	switch {
	case wave < 3:
		return []SpawnWeight{{"ENEMY_BASIC", 1}}
	case wave < 5:
		return []SpawnWeight{{"ENEMY_BASIC", 7}, {"ENEMY_FAST", 3}}
	case wave < 8:
		return []SpawnWeight{{"ENEMY_BASIC", 5}, {"ENEMY_FAST", 3}, {"ENEMY_TANK", 2}}
	default:
		return []SpawnWeight{{"ENEMY_BASIC", 4}, {"ENEMY_FAST", 3}, {"ENEMY_TANK", 2}, {"ENEMY_SPLITTER", 2}}
	}
}
