package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyLibraryConsistency(t *testing.T) {
	for id, def := range EnemyLibrary {
		assert.Equal(t, id, def.ID)
		assert.Greater(t, def.Health, 0.0, id)
		assert.Greater(t, def.Speed, 0.0, id)
		assert.Greater(t, def.Radius, 0.0, id)
		if def.SplitInto != "" {
			_, ok := EnemyLibrary[def.SplitInto]
			assert.True(t, ok, "%s splits into unknown enemy %q", id, def.SplitInto)
			assert.Greater(t, def.SplitCount, 0, id)
		}
	}
}

func TestBossLibraryConsistency(t *testing.T) {
	assert.Len(t, BossRotation, len(BossLibrary))
	for _, id := range BossRotation {
		def, ok := BossLibrary[id]
		require.True(t, ok, "rotation entry %q missing from library", id)
		assert.Equal(t, id, def.ID)
		assert.Greater(t, def.Health, 0.0, id)
		assert.Greater(t, def.AttackInterval, 0.0, id)
	}
	shielded := BossLibrary["BOSS_SHIELDED"]
	assert.Greater(t, shielded.ShieldHealth, 0.0)
}

func TestSpawnTableTiers(t *testing.T) {
	ids := func(wave int) []string {
		var out []string
		for _, entry := range SpawnTable(wave) {
			_, ok := EnemyLibrary[entry.EnemyID]
			require.True(t, ok, "wave %d references unknown enemy %q", wave, entry.EnemyID)
			assert.Greater(t, entry.Weight, 0)
			out = append(out, entry.EnemyID)
		}
		return out
	}

	assert.Equal(t, []string{"ENEMY_BASIC"}, ids(1))
	assert.Contains(t, ids(3), "ENEMY_FAST")
	assert.NotContains(t, ids(3), "ENEMY_TANK")
	assert.Contains(t, ids(5), "ENEMY_TANK")
	assert.Contains(t, ids(8), "ENEMY_SPLITTER")
	assert.Contains(t, ids(100), "ENEMY_SPLITTER")
}
