package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/interfaces"
	"go-wave-survival/internal/types"
	"go-wave-survival/internal/utils"
	"go-wave-survival/pkg/vmath"
)

func newBossSystem(ecs *entity.ECS) (*BossSystem, *eventRecorder) {
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.BossPhaseChanged, recorder)
	return NewBossSystem(ecs, dispatcher, utils.NewPRNGService(7), interfaces.NopEffects{}, interfaces.NopSound{}), recorder
}

func addBoss(t *testing.T, ecs *entity.ECS, defID string, x, y float64) (types.EntityID, *component.Boss) {
	t.Helper()
	def, ok := defs.BossLibrary[defID]
	require.True(t, ok)
	boss, err := NewBossState(def)
	require.NoError(t, err)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	ecs.Enemies[id] = &component.Enemy{
		DefID: def.ID, Damage: def.Damage, Radius: def.Radius, CoinValue: def.CoinValue, SlowFactor: 1,
	}
	boss.ShieldHP = def.ShieldHealth
	boss.MaxShieldHP = def.ShieldHealth
	ecs.Bosses[id] = boss
	return id, boss
}

func TestNewBossStateUnknownType(t *testing.T) {
	_, err := NewBossState(defs.BossDefinition{ID: "BOSS_X", Type: "NOPE"})
	assert.ErrorIs(t, err, ErrUnknownBossType)
}

func TestNewBossStateInitialState(t *testing.T) {
	orbital, err := NewBossState(defs.BossLibrary["BOSS_ORBITAL"])
	require.NoError(t, err)
	assert.Len(t, orbital.Minions, 3)
	assert.Equal(t, 1, orbital.Phase)

	crystal, err := NewBossState(defs.BossLibrary["BOSS_CRYSTAL"])
	require.NoError(t, err)
	assert.True(t, crystal.FormingShards)
}

func TestPhaseChangeFiresOncePerCrossing(t *testing.T) {
	ecs := newTestECS()
	bs, recorder := newBossSystem(ecs)

	id, boss := addBoss(t, ecs, "BOSS_STORM", 100, 100)
	base := boss.AttackInterval
	health := ecs.Healths[id]

	// 70% -> 60%: crosses the phase 2 boundary once.
	health.Value = health.Max * 0.6
	bs.Update(0.016)
	assert.Equal(t, 2, boss.Phase)
	assert.Equal(t, 1, recorder.count(event.BossPhaseChanged))
	assert.InDelta(t, base*config.PhaseAttackSpeedup, boss.AttackInterval, 1e-9)

	// Staying inside phase 2 must not re-fire.
	health.Value = health.Max * 0.5
	bs.Update(0.016)
	bs.Update(0.016)
	assert.Equal(t, 1, recorder.count(event.BossPhaseChanged))
	assert.InDelta(t, base*config.PhaseAttackSpeedup, boss.AttackInterval, 1e-9)

	// Into phase 3: one more transition.
	health.Value = health.Max * 0.2
	bs.Update(0.016)
	assert.Equal(t, 3, boss.Phase)
	assert.Equal(t, 2, recorder.count(event.BossPhaseChanged))
}

func TestPhaseJumpAppliesSpeedupPerBoundary(t *testing.T) {
	ecs := newTestECS()
	bs, recorder := newBossSystem(ecs)

	id, boss := addBoss(t, ecs, "BOSS_STORM", 100, 100)
	base := boss.AttackInterval

	// A single burst from full health into phase 3 crosses two boundaries.
	ecs.Healths[id].Value = ecs.Healths[id].Max * 0.1
	bs.Update(0.016)

	assert.Equal(t, 3, boss.Phase)
	assert.Equal(t, 1, recorder.count(event.BossPhaseChanged))
	assert.InDelta(t, base*config.PhaseAttackSpeedup*config.PhaseAttackSpeedup, boss.AttackInterval, 1e-9)
}

func TestOrbitalGainsMinionPerPhase(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)

	id, boss := addBoss(t, ecs, "BOSS_ORBITAL", 100, 100)
	require.Len(t, boss.Minions, 3)

	ecs.Healths[id].Value = ecs.Healths[id].Max * 0.5
	bs.Update(0.016)
	assert.Len(t, boss.Minions, 4)
}

func TestShieldRegenAfterQuietPeriod(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)

	_, boss := addBoss(t, ecs, "BOSS_SHIELDED", 100, 100)
	boss.ShieldHP = 100
	boss.SinceShieldDamage = 0

	// Inside the regen delay nothing recovers.
	bs.Update(config.BossShieldRegenDelay - 0.5)
	assert.Equal(t, 100.0, boss.ShieldHP)

	bs.Update(1.0)
	assert.InDelta(t, 100+boss.ShieldRegen*1.0, boss.ShieldHP, 1e-9)
}

func TestVulnerabilityWindowRestoresShield(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)

	_, boss := addBoss(t, ecs, "BOSS_SHIELDED", 100, 100)
	boss.ShieldHP = 0
	boss.Vulnerable = true
	boss.VulnerableTimer = 0.5

	bs.Update(0.3)
	assert.True(t, boss.Vulnerable)

	bs.Update(0.3)
	assert.False(t, boss.Vulnerable)
	assert.Equal(t, boss.MaxShieldHP, boss.ShieldHP, "shield comes back up after the window")
}

func TestHunterTeleportAndCharge(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)
	player := ecs.Player

	id, boss := addBoss(t, ecs, "BOSS_HUNTER", 100, 100)
	boss.AttackInterval = 0.1

	bs.Update(0.2)
	require.True(t, boss.Charging)
	assert.Equal(t, player.X, boss.ChargeTargetX)
	assert.Equal(t, player.Y, boss.ChargeTargetY)
	pos := ecs.Positions[id]
	assert.InDelta(t, 260.0, vmath.Dist(pos.X, pos.Y, player.X, player.Y), 1e-6)

	// Suppress further attacks so the charge can play out.
	boss.AttackInterval = 1e9

	// The charge runs until the captured point is reached, then ends.
	for i := 0; i < 100 && boss.Charging; i++ {
		bs.Update(0.05)
	}
	assert.False(t, boss.Charging)
}

func TestPulseLifecycle(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)

	_, boss := addBoss(t, ecs, "BOSS_PULSE", 100, 100)
	boss.AttackInterval = 0.1

	bs.Update(0.2)
	assert.Greater(t, boss.PulseCharge, 0.0, "attack starts the charge-up")
	assert.False(t, boss.Pulsing)

	bs.Update(0.5)
	bs.Update(0.5)
	assert.True(t, boss.Pulsing)
	assert.Greater(t, boss.PulseRadius, 0.0)
	assert.False(t, boss.PulseHit, "fresh pulse has not hit yet")

	bs.Update(0.5)
	assert.False(t, boss.Pulsing, "pulse dissipates at max radius")
}

func TestCrystalFormThenLaunch(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)

	_, boss := addBoss(t, ecs, "BOSS_CRYSTAL", 100, 100)
	boss.AttackInterval = 0.1

	bs.Update(0.2)
	assert.Len(t, boss.Shards, 8)
	assert.False(t, boss.FormingShards)
	assert.Empty(t, ecs.Projectiles)

	bs.Update(0.2)
	assert.Empty(t, boss.Shards)
	assert.True(t, boss.FormingShards)

	shots := 0
	for _, proj := range ecs.Projectiles {
		if proj.FromEnemy {
			shots++
		}
	}
	assert.Equal(t, 8, shots)
}

func TestStormSchedulesStrikes(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)

	_, boss := addBoss(t, ecs, "BOSS_STORM", 100, 100)
	boss.AttackInterval = 0.1

	bs.Update(0.2)
	require.Len(t, boss.Strikes, 3)
	for _, strike := range boss.Strikes {
		assert.Greater(t, strike.TimeLeft, 0.0)
		assert.False(t, strike.Struck)
	}
}

func TestPendingShotsFireAfterDelay(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)

	_, boss := addBoss(t, ecs, "BOSS_SHIELDED", 100, 100)
	boss.Pending = []component.DelayedShot{
		{Delay: 0.05, Angle: 0, Speed: 200, Damage: 10},
		{Delay: 0.50, Angle: 1, Speed: 200, Damage: 10},
	}

	bs.Update(0.1)
	assert.Len(t, ecs.Projectiles, 1)
	assert.Len(t, boss.Pending, 1)

	bs.Update(0.5)
	assert.Len(t, ecs.Projectiles, 2)
	assert.Empty(t, boss.Pending)
}

func TestBossKeepsStandoffDistance(t *testing.T) {
	ecs := newTestECS()
	bs, _ := newBossSystem(ecs)
	player := ecs.Player

	farID, _ := addBoss(t, ecs, "BOSS_ORBITAL", player.X-600, player.Y)
	before := vmath.Dist(ecs.Positions[farID].X, ecs.Positions[farID].Y, player.X, player.Y)
	bs.Update(0.5)
	after := vmath.Dist(ecs.Positions[farID].X, ecs.Positions[farID].Y, player.X, player.Y)
	assert.Less(t, after, before, "distant boss closes in")

	nearPos := ecs.Positions[farID]
	nearPos.X = player.X + config.BossMinDistance - 10
	nearPos.Y = player.Y
	bs.Update(0.5)
	assert.Equal(t, player.X+config.BossMinDistance-10, nearPos.X, "inside the standoff ring the boss holds position")
}
