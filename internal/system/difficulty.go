// internal/system/difficulty.go
package system

import (
	"errors"
	"fmt"
	"math"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
)

// ErrInvalidWave rejects wave numbers below 1. A caller passing one is a
// programming error, not a runtime condition to recover from.
var ErrInvalidWave = errors.New("wave number must be >= 1")

// EnemyCount returns how many regular enemies wave w spawns.
func EnemyCount(w int) (int, error) {
	if w < 1 {
		return 0, fmt.Errorf("enemy count for wave %d: %w", w, ErrInvalidWave)
	}
	return config.BaseEnemyCount + w*config.EnemyCountScaling, nil
}

// SpawnInterval returns the seconds between spawns for wave w, floored at
// the configured minimum.
func SpawnInterval(w int) (float64, error) {
	if w < 1 {
		return 0, fmt.Errorf("spawn interval for wave %d: %w", w, ErrInvalidWave)
	}
	interval := config.BaseSpawnInterval - float64(w)*config.SpawnIntervalReduction
	return math.Max(config.MinSpawnInterval, interval), nil
}

// Scaling returns the per-stat multipliers for wave w. Each factor grows
// exponentially with the wave number and is capped to bound late-game
// growth; scaling never decreases as w rises.
func Scaling(w int) (component.StatScaling, error) {
	if w < 1 {
		return component.StatScaling{}, fmt.Errorf("scaling for wave %d: %w", w, ErrInvalidWave)
	}
	exp := float64(w - 1)
	return component.StatScaling{
		Health: math.Min(math.Pow(config.HealthScaleFactor, exp), config.MaxHealthScale),
		Speed:  math.Min(math.Pow(config.SpeedScaleFactor, exp), config.MaxSpeedScale),
		Damage: math.Min(math.Pow(config.DamageScaleFactor, exp), config.MaxDamageScale),
	}, nil
}
