// internal/system/player.go
package system

import (
	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/interfaces"
	"go-wave-survival/internal/types"
	"go-wave-survival/pkg/vmath"
)

// PlayerSystem runs the player's per-tick combat state: regeneration, the
// slow-field aura, auto-targeting and automatic fire.
type PlayerSystem struct {
	ecs   *entity.ECS
	sound interfaces.SoundPlayer
}

func NewPlayerSystem(ecs *entity.ECS, sound interfaces.SoundPlayer) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, sound: sound}
}

func (s *PlayerSystem) Update(dt float64) {
	player := s.ecs.Player
	player.Regenerate(dt)

	// SlowFactor is transient: reset every tick, then re-applied to
	// enemies inside the aura.
	for id, enemy := range s.ecs.Enemies {
		enemy.SlowFactor = 1
		if !player.SlowField || enemy.Dying {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if vmath.Dist(player.X, player.Y, pos.X, pos.Y) < config.SlowFieldRadius {
			enemy.SlowFactor = config.SlowFieldFactor
		}
	}

	if player.FireCooldown > 0 {
		player.FireCooldown -= dt
	}
	if player.FireCooldown > 0 {
		return
	}

	targetID, found := s.selectTarget()
	if !found {
		// No live target is normal control flow; try again next tick
		// without resetting the cooldown.
		return
	}

	targetPos := s.ecs.Positions[targetID]
	angle := vmath.Angle(player.X, player.Y, targetPos.X, targetPos.Y)
	s.fire(angle)
	player.FireCooldown = 1.0 / (config.BaseFireRate * player.FireRateMod)
	s.sound.Play("shoot")
}

// selectTarget picks the single best enemy by a priority score combining
// proximity and remaining-health advantage: closer and lower-health
// enemies score better. Dying enemies are skipped.
func (s *PlayerSystem) selectTarget() (types.EntityID, bool) {
	player := s.ecs.Player
	var best types.EntityID
	bestScore := 0.0
	found := false

	for id, enemy := range s.ecs.Enemies {
		if enemy.Dying {
			continue
		}
		pos := s.ecs.Positions[id]
		health := s.ecs.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		score := vmath.Dist(player.X, player.Y, pos.X, pos.Y)
		if health.Max > 0 {
			score -= (1 - health.Value/health.Max) * config.TargetHealthWeight
		}
		if !found || score < bestScore {
			best = id
			bestScore = score
			found = true
		}
	}
	return best, found
}

// fire creates one projectile, or three in a spread with triple shot,
// tagged with the player's current ability flags.
func (s *PlayerSystem) fire(angle float64) {
	angles := []float64{angle}
	if s.ecs.Player.TripleShot {
		angles = []float64{angle - config.TripleShotSpread, angle, angle + config.TripleShotSpread}
	}
	for _, a := range angles {
		s.createProjectile(a)
	}
}

func (s *PlayerSystem) createProjectile(angle float64) {
	player := s.ecs.Player
	id := s.ecs.NewEntity()

	proj := &component.Projectile{
		Damage:    config.BaseProjectileDamage * player.DamageMod,
		Speed:     config.BaseProjectileSpeed * player.ProjectileSpeedMod,
		Direction: angle,
		Lifetime:  config.ProjectileLifetime,
	}
	if player.Piercing {
		proj.Piercing = true
		proj.PierceLeft = config.BasePierceCount
	}
	if player.Explosive {
		proj.Explosive = true
		proj.ExplosionRadius = config.ExplosionRadius
		proj.ExplosionDamage = config.ExplosionDamage * player.DamageMod
	}

	s.ecs.Positions[id] = &component.Position{X: player.X, Y: player.Y}
	s.ecs.Projectiles[id] = proj
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
}
