package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/utils"
)

// eventRecorder captures dispatched events for assertions.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestECS() *entity.ECS {
	ecs := entity.NewECS()
	ecs.Player = component.NewPlayer(config.ScreenWidth/2, config.ScreenHeight/2)
	return ecs
}

func newWaveSystem(ecs *entity.ECS) (*WaveSystem, *eventRecorder) {
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	for _, t := range []event.EventType{event.WaveEnded, event.EnemySpawned, event.BossSpawned} {
		dispatcher.Subscribe(t, recorder)
	}
	return NewWaveSystem(ecs, dispatcher, utils.NewPRNGService(42)), recorder
}

func TestStartWaveSpawnsFirstEnemyImmediately(t *testing.T) {
	ecs := newTestECS()
	ws, recorder := newWaveSystem(ecs)

	require.NoError(t, ws.StartWave(1))
	wave := ecs.Wave
	require.NotNil(t, wave)

	count, err := EnemyCount(1)
	require.NoError(t, err)
	assert.Equal(t, count-1, wave.EnemiesToSpawn)
	assert.Equal(t, 1, wave.Spawned)
	assert.Len(t, ecs.Enemies, 1)
	assert.False(t, wave.BossWave)
	assert.Equal(t, 1, recorder.count(event.EnemySpawned))
}

func TestStartWaveRejectsInvalidNumber(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)
	assert.ErrorIs(t, ws.StartWave(0), ErrInvalidWave)
}

func TestWaveSpawnsAllEnemies(t *testing.T) {
	ecs := newTestECS()
	ws, recorder := newWaveSystem(ecs)
	require.NoError(t, ws.StartWave(1))

	count, err := EnemyCount(1)
	require.NoError(t, err)

	for i := 0; i < 200 && ecs.Wave.EnemiesToSpawn > 0; i++ {
		ws.Update(0.5)
	}
	assert.Equal(t, 0, ecs.Wave.EnemiesToSpawn)
	assert.Equal(t, count, ecs.Wave.Spawned)
	assert.Len(t, ecs.Enemies, count)
	assert.Equal(t, count, recorder.count(event.EnemySpawned))

	// Exhausted waves spawn nothing more.
	ws.Update(10)
	assert.Len(t, ecs.Enemies, count)
}

func TestCheckCompletionDebouncesAndFiresOnce(t *testing.T) {
	ecs := newTestECS()
	ws, recorder := newWaveSystem(ecs)
	require.NoError(t, ws.StartWave(1))

	for i := 0; i < 200 && ecs.Wave.EnemiesToSpawn > 0; i++ {
		ws.Update(0.5)
	}
	ecs.ClearEnemies()
	require.True(t, ws.IsComplete())

	// The delay must fully elapse before the transition fires.
	ws.CheckCompletion(config.WaveCompleteDelay / 2)
	assert.Equal(t, 0, recorder.count(event.WaveEnded))
	ws.CheckCompletion(config.WaveCompleteDelay / 2)
	assert.Equal(t, 1, recorder.count(event.WaveEnded))
	assert.True(t, ecs.Wave.Complete)

	// Idempotent after firing.
	ws.CheckCompletion(10)
	ws.CheckCompletion(10)
	assert.Equal(t, 1, recorder.count(event.WaveEnded))
}

func TestCheckCompletionResetsDebounceOnRespawn(t *testing.T) {
	ecs := newTestECS()
	ws, recorder := newWaveSystem(ecs)
	require.NoError(t, ws.StartWave(1))

	for i := 0; i < 200 && ecs.Wave.EnemiesToSpawn > 0; i++ {
		ws.Update(0.5)
	}
	ecs.ClearEnemies()
	ws.CheckCompletion(config.WaveCompleteDelay * 0.9)

	// A late arrival (e.g. a splitter child) interrupts the debounce.
	_, err := SpawnScaledEnemy(ecs, "ENEMY_BASIC", 0, 0, component.StatScaling{Health: 1, Speed: 1, Damage: 1})
	require.NoError(t, err)
	ws.CheckCompletion(config.WaveCompleteDelay * 0.9)
	assert.Equal(t, 0, recorder.count(event.WaveEnded))
	assert.Equal(t, 0.0, ecs.Wave.CompleteTimer)

	ecs.ClearEnemies()
	ws.CheckCompletion(config.WaveCompleteDelay)
	assert.Equal(t, 1, recorder.count(event.WaveEnded))
}

func TestBossWaveCadenceAndRotation(t *testing.T) {
	ecs := newTestECS()
	ws, recorder := newWaveSystem(ecs)

	require.NoError(t, ws.StartWave(config.BossWaveInterval))
	require.Len(t, ecs.Bosses, 1)
	assert.True(t, ecs.Wave.BossWave)
	assert.Equal(t, 1, recorder.count(event.BossSpawned))
	for id := range ecs.Bosses {
		assert.Equal(t, "BOSS_ORBITAL", ecs.Enemies[id].DefID)
	}

	ecs.ClearEnemies()
	require.NoError(t, ws.StartWave(2*config.BossWaveInterval))
	for id := range ecs.Bosses {
		assert.Equal(t, "BOSS_PULSE", ecs.Enemies[id].DefID)
	}

	ecs.ClearEnemies()
	require.NoError(t, ws.StartWave(config.BossWaveInterval + 1))
	assert.Empty(t, ecs.Bosses, "off-cadence waves have no boss")
}

func TestBossStatsScaleWithWave(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)

	require.NoError(t, ws.StartWave(2 * config.BossWaveInterval))
	scaling, err := Scaling(2 * config.BossWaveInterval)
	require.NoError(t, err)

	for id, boss := range ecs.Bosses {
		def := ecs.Enemies[id]
		health := ecs.Healths[id]
		assert.InDelta(t, 750*scaling.Health, health.Max, 1e-6)
		assert.InDelta(t, 30*scaling.Damage, def.Damage, 1e-6)
		assert.Equal(t, 0.0, boss.MaxShieldHP, "pulse boss has no shield")
	}
}

func TestWaveReward(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)
	require.NoError(t, ws.StartWave(3))

	fast := ws.Reward(ecs.Wave)
	assert.Equal(t, config.RewardBase+15+config.RewardTimeBonus, fast)

	ecs.GameTime += config.FastClearSeconds + 1
	slow := ws.Reward(ecs.Wave)
	assert.Equal(t, config.RewardBase+15, slow)
}

func TestSpawnScaledEnemyUnknownID(t *testing.T) {
	ecs := newTestECS()
	_, err := SpawnScaledEnemy(ecs, "ENEMY_NOPE", 0, 0, component.StatScaling{Health: 1, Speed: 1, Damage: 1})
	require.Error(t, err)
	assert.Empty(t, ecs.Enemies)
}
