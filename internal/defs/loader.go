// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// enemyOverride carries the numeric tuning knobs of an enemy definition.
// Visuals are intentionally not overridable from file.
type enemyOverride struct {
	ID        string   `yaml:"id"`
	Health    *float64 `yaml:"health"`
	Speed     *float64 `yaml:"speed"`
	Damage    *float64 `yaml:"damage"`
	Radius    *float64 `yaml:"radius"`
	CoinValue *int     `yaml:"coin_value"`
}

type bossOverride struct {
	ID             string   `yaml:"id"`
	Health         *float64 `yaml:"health"`
	Speed          *float64 `yaml:"speed"`
	Damage         *float64 `yaml:"damage"`
	Radius         *float64 `yaml:"radius"`
	AttackInterval *float64 `yaml:"attack_interval"`
	CoinValue      *int     `yaml:"coin_value"`
	ShieldHealth   *float64 `yaml:"shield_health"`
	ShieldRegen    *float64 `yaml:"shield_regen"`
}

type tuningFile struct {
	Enemies []enemyOverride `yaml:"enemies"`
	Bosses  []bossOverride  `yaml:"bosses"`
}

// LoadTuning reads an optional YAML tuning file and overrides the numeric
// stats of matching enemy and boss definitions. Referencing an unknown ID
// is a configuration error.
func LoadTuning(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file: %w", err)
	}

	var tf tuningFile
	if err := yaml.Unmarshal(file, &tf); err != nil {
		return fmt.Errorf("failed to unmarshal tuning file: %w", err)
	}

	for _, ov := range tf.Enemies {
		def, ok := EnemyLibrary[ov.ID]
		if !ok {
			return fmt.Errorf("tuning file references unknown enemy %q", ov.ID)
		}
		applyFloat(&def.Health, ov.Health)
		applyFloat(&def.Speed, ov.Speed)
		applyFloat(&def.Damage, ov.Damage)
		applyFloat(&def.Radius, ov.Radius)
		applyInt(&def.CoinValue, ov.CoinValue)
		EnemyLibrary[ov.ID] = def
	}

	for _, ov := range tf.Bosses {
		def, ok := BossLibrary[ov.ID]
		if !ok {
			return fmt.Errorf("tuning file references unknown boss %q", ov.ID)
		}
		applyFloat(&def.Health, ov.Health)
		applyFloat(&def.Speed, ov.Speed)
		applyFloat(&def.Damage, ov.Damage)
		applyFloat(&def.Radius, ov.Radius)
		applyFloat(&def.AttackInterval, ov.AttackInterval)
		applyInt(&def.CoinValue, ov.CoinValue)
		applyFloat(&def.ShieldHealth, ov.ShieldHealth)
		applyFloat(&def.ShieldRegen, ov.ShieldRegen)
		BossLibrary[ov.ID] = def
	}

	log.Printf("Applied tuning overrides: %d enemies, %d bosses", len(tf.Enemies), len(tf.Bosses))
	return nil
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
