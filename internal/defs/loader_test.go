package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuning(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTuningOverridesStats(t *testing.T) {
	origEnemy := EnemyLibrary["ENEMY_BASIC"]
	origBoss := BossLibrary["BOSS_SHIELDED"]
	t.Cleanup(func() {
		EnemyLibrary["ENEMY_BASIC"] = origEnemy
		BossLibrary["BOSS_SHIELDED"] = origBoss
	})

	path := writeTuning(t, `
enemies:
  - id: ENEMY_BASIC
    health: 55
    coin_value: 9
bosses:
  - id: BOSS_SHIELDED
    shield_health: 500
`)
	require.NoError(t, LoadTuning(path))

	enemy := EnemyLibrary["ENEMY_BASIC"]
	assert.Equal(t, 55.0, enemy.Health)
	assert.Equal(t, 9, enemy.CoinValue)
	assert.Equal(t, origEnemy.Speed, enemy.Speed, "untouched fields keep their defaults")

	boss := BossLibrary["BOSS_SHIELDED"]
	assert.Equal(t, 500.0, boss.ShieldHealth)
	assert.Equal(t, origBoss.Health, boss.Health)
}

func TestLoadTuningUnknownID(t *testing.T) {
	path := writeTuning(t, `
enemies:
  - id: ENEMY_NOPE
    health: 1
`)
	err := LoadTuning(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENEMY_NOPE")
}

func TestLoadTuningMissingFile(t *testing.T) {
	err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadTuningMalformedYAML(t *testing.T) {
	path := writeTuning(t, "enemies: [broken")
	require.Error(t, LoadTuning(path))
}
