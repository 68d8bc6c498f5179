// internal/defs/bosses.go
package defs

import "image/color"

// BossDefinition holds the static config for one boss type. There is no
// default stat block: constructing a boss from an unknown key fails fast.
type BossDefinition struct {
	ID             string
	Name           string
	Type           string // one of the component.BossType values
	Health         float64
	Speed          float64
	Damage         float64
	Radius         float64
	AttackInterval float64
	CoinValue      int

	// Shielded variant only.
	ShieldHealth float64
	ShieldRegen  float64

	Visuals Visuals
}

// BossLibrary is the library of all boss definitions, keyed by ID.
var BossLibrary = map[string]BossDefinition{
	"BOSS_ORBITAL": {
		ID: "BOSS_ORBITAL", Name: "Warden of Rings", Type: "ORBITAL",
		Health: 600, Speed: 30, Damage: 25, Radius: 34, AttackInterval: 2.4, CoinValue: 60,
		Visuals: Visuals{Color: color.RGBA{200, 90, 220, 255}, Radius: 34, HasStroke: true},
	},
	"BOSS_PULSE": {
		ID: "BOSS_PULSE", Name: "Resonant Heart", Type: "PULSE",
		Health: 750, Speed: 25, Damage: 30, Radius: 38, AttackInterval: 3.0, CoinValue: 70,
		Visuals: Visuals{Color: color.RGBA{90, 160, 240, 255}, Radius: 38, HasStroke: true},
	},
	"BOSS_HUNTER": {
		ID: "BOSS_HUNTER", Name: "Void Hunter", Type: "HUNTER",
		Health: 680, Speed: 55, Damage: 35, Radius: 30, AttackInterval: 2.8, CoinValue: 75,
		Visuals: Visuals{Color: color.RGBA{60, 60, 90, 255}, Radius: 30, HasStroke: true},
	},
	"BOSS_STORM": {
		ID: "BOSS_STORM", Name: "Stormcaller", Type: "STORM",
		Health: 820, Speed: 28, Damage: 22, Radius: 36, AttackInterval: 2.2, CoinValue: 85,
		Visuals: Visuals{Color: color.RGBA{120, 200, 255, 255}, Radius: 36, HasStroke: true},
	},
	"BOSS_CRYSTAL": {
		ID: "BOSS_CRYSTAL", Name: "Shardmother", Type: "CRYSTAL",
		Health: 900, Speed: 26, Damage: 28, Radius: 40, AttackInterval: 2.6, CoinValue: 95,
		Visuals: Visuals{Color: color.RGBA{170, 240, 230, 255}, Radius: 40, HasStroke: true},
	},
	"BOSS_SHIELDED": {
		ID: "BOSS_SHIELDED", Name: "Aegis Colossus", Type: "SHIELDED",
		Health: 800, Speed: 32, Damage: 32, Radius: 38, AttackInterval: 2.4, CoinValue: 110,
		ShieldHealth: 350, ShieldRegen: 60,
		Visuals: Visuals{Color: color.RGBA{230, 200, 90, 255}, Radius: 38, HasStroke: true},
	},
}

// BossRotation is the canonical boss roster order. Boss waves occur on
// every config.BossWaveInterval-th wave and walk this list, wrapping.
var BossRotation = []string{
	"BOSS_ORBITAL",
	"BOSS_PULSE",
	"BOSS_HUNTER",
	"BOSS_STORM",
	"BOSS_CRYSTAL",
	"BOSS_SHIELDED",
}
