package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-survival/internal/config"
)

func TestEnemyCount(t *testing.T) {
	count, err := EnemyCount(1)
	require.NoError(t, err)
	assert.Equal(t, config.BaseEnemyCount+config.EnemyCountScaling, count)

	prev := 0
	for w := 1; w <= 30; w++ {
		count, err := EnemyCount(w)
		require.NoError(t, err)
		assert.Greater(t, count, prev, "wave %d", w)
		prev = count
	}

	_, err = EnemyCount(0)
	assert.ErrorIs(t, err, ErrInvalidWave)
	_, err = EnemyCount(-3)
	assert.ErrorIs(t, err, ErrInvalidWave)
}

func TestSpawnIntervalFloor(t *testing.T) {
	first, err := SpawnInterval(1)
	require.NoError(t, err)
	assert.InDelta(t, config.BaseSpawnInterval-config.SpawnIntervalReduction, first, 1e-9)

	prev := first
	for w := 2; w <= 100; w++ {
		interval, err := SpawnInterval(w)
		require.NoError(t, err)
		assert.LessOrEqual(t, interval, prev, "wave %d", w)
		assert.GreaterOrEqual(t, interval, config.MinSpawnInterval)
		prev = interval
	}
	assert.Equal(t, config.MinSpawnInterval, prev, "late waves bottom out at the floor")

	_, err = SpawnInterval(0)
	assert.ErrorIs(t, err, ErrInvalidWave)
}

func TestScaling(t *testing.T) {
	s1, err := Scaling(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s1.Health)
	assert.Equal(t, 1.0, s1.Speed)
	assert.Equal(t, 1.0, s1.Damage)

	s2, err := Scaling(2)
	require.NoError(t, err)
	assert.InDelta(t, config.HealthScaleFactor, s2.Health, 1e-9)
	assert.InDelta(t, config.SpeedScaleFactor, s2.Speed, 1e-9)
	assert.InDelta(t, config.DamageScaleFactor, s2.Damage, 1e-9)

	// Monotone non-decreasing and capped.
	prev := s1
	for w := 2; w <= 200; w++ {
		s, err := Scaling(w)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.Health, prev.Health)
		assert.GreaterOrEqual(t, s.Speed, prev.Speed)
		assert.GreaterOrEqual(t, s.Damage, prev.Damage)
		prev = s
	}
	assert.Equal(t, config.MaxHealthScale, prev.Health)
	assert.Equal(t, config.MaxSpeedScale, prev.Speed)
	assert.Equal(t, config.MaxDamageScale, prev.Damage)

	_, err = Scaling(0)
	assert.ErrorIs(t, err, ErrInvalidWave)
}
