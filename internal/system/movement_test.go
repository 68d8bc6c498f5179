package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
)

func TestEnemiesConvergeOnPlayer(t *testing.T) {
	ecs := newTestECS()
	ms := NewMovementSystem(ecs)
	player := ecs.Player

	id := addEnemy(ecs, player.X-300, player.Y, 100, 12)
	ecs.Velocities[id] = &component.Velocity{Speed: 100}

	ms.Update(0.5)
	assert.InDelta(t, player.X-250, ecs.Positions[id].X, 1e-9)
	assert.InDelta(t, player.Y, ecs.Positions[id].Y, 1e-9)
}

func TestSlowFactorScalesMovement(t *testing.T) {
	ecs := newTestECS()
	ms := NewMovementSystem(ecs)
	player := ecs.Player

	id := addEnemy(ecs, player.X-300, player.Y, 100, 12)
	ecs.Velocities[id] = &component.Velocity{Speed: 100}
	ecs.Enemies[id].SlowFactor = 0.5

	ms.Update(0.5)
	assert.InDelta(t, player.X-275, ecs.Positions[id].X, 1e-9)
}

func TestDyingAndBossEnemiesDoNotMoveHere(t *testing.T) {
	ecs := newTestECS()
	ms := NewMovementSystem(ecs)
	player := ecs.Player

	dying := addEnemy(ecs, player.X-300, player.Y, 100, 12)
	ecs.Velocities[dying] = &component.Velocity{Speed: 100}
	ecs.Enemies[dying].Dying = true

	bossID := addEnemy(ecs, player.X+300, player.Y, 100, 30)
	ecs.Velocities[bossID] = &component.Velocity{Speed: 100}
	ecs.Bosses[bossID] = &component.Boss{Type: component.BossOrbital, Phase: 1, LastPhase: 1}

	ms.Update(0.5)
	assert.Equal(t, player.X-300, ecs.Positions[dying].X)
	assert.Equal(t, player.X+300, ecs.Positions[bossID].X, "boss movement belongs to the boss system")
}

func TestProjectileFlightAndExpiry(t *testing.T) {
	ecs := newTestECS()
	ms := NewMovementSystem(ecs)

	id, proj := addProjectile(ecs, 100, 100, 10)
	proj.Speed = 200
	proj.Direction = 0
	proj.Lifetime = 0.3

	ms.Update(0.1)
	require.Contains(t, ecs.Projectiles, id)
	assert.InDelta(t, 120.0, ecs.Positions[id].X, 1e-9)

	ms.Update(0.3)
	assert.NotContains(t, ecs.Projectiles, id, "expired lifetime removes the projectile")
}

func TestProjectileRemovedOutOfBounds(t *testing.T) {
	ecs := newTestECS()
	ms := NewMovementSystem(ecs)

	id, proj := addProjectile(ecs, config.ScreenWidth-10, 100, 10)
	proj.Speed = 2000
	proj.Direction = 0
	proj.Lifetime = 100

	ms.Update(0.1)
	assert.NotContains(t, ecs.Projectiles, id)
}
