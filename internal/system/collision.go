// internal/system/collision.go
package system

import (
	"fmt"
	"log"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/interfaces"
	"go-wave-survival/internal/types"
	"go-wave-survival/pkg/vmath"
)

// CollisionSystem resolves every spatial overlap each frame and applies
// its game-state consequences: projectile hits, contact damage, boss
// special attacks, and removal of exhausted entities. Removal always goes
// through collected ID lists applied after iteration.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	fx              interfaces.EffectSink
	sound           interfaces.SoundPlayer
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, fx interfaces.EffectSink, sound interfaces.SoundPlayer) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		fx:              fx,
		sound:           sound,
	}
}

func (s *CollisionSystem) Update(dt float64) {
	s.advanceDeathAnimations(dt)
	s.resolvePlayerProjectiles()
	s.resolveEnemyProjectiles()
	s.resolveContacts()
	s.resolveBossAttacks()
}

// advanceDeathAnimations ticks dying enemies and removes them once their
// timer elapses. While dying they are purely cosmetic.
func (s *CollisionSystem) advanceDeathAnimations(dt float64) {
	var finished []types.EntityID
	for id, enemy := range s.ecs.Enemies {
		if !enemy.Dying {
			continue
		}
		enemy.DeathTimer -= dt
		if enemy.DeathTimer <= 0 {
			finished = append(finished, id)
		}
	}
	for _, id := range finished {
		s.ecs.RemoveEntity(id)
	}
}

// resolvePlayerProjectiles tests every player shot against every live
// enemy. The per-projectile HitBy set guarantees at-most-one-hit-per-enemy
// both within a frame and across frames for piercing shots.
func (s *CollisionSystem) resolvePlayerProjectiles() {
	var spent []types.EntityID

	for projID, proj := range s.ecs.Projectiles {
		if proj.FromEnemy {
			continue
		}
		projPos := s.ecs.Positions[projID]
		if projPos == nil {
			continue
		}

		destroyed := false
		for enemyID, enemy := range s.ecs.Enemies {
			if enemy.Dying || proj.HasHit(enemyID) {
				continue
			}
			enemyPos := s.ecs.Positions[enemyID]
			if enemyPos == nil {
				continue
			}
			if !vmath.CirclesOverlap(projPos.X, projPos.Y, config.ProjectileRadius, enemyPos.X, enemyPos.Y, enemy.Radius) {
				continue
			}

			damage := proj.Damage
			if proj.Piercing {
				// Flat falloff per completed pierce: the first enemy takes
				// full damage, each later one a quarter less of the base.
				damage = proj.Damage * (1 - config.PierceFalloff*float64(proj.Hits))
				if damage < 0 {
					damage = 0
				}
			}
			proj.MarkHit(enemyID)
			s.sound.Play("hit")
			s.fx.CreateExplosion(projPos.X, projPos.Y, 4)
			s.damageEnemy(enemyID, damage)

			if proj.Explosive {
				s.explode(proj.HitBy, projPos.X, projPos.Y, proj.ExplosionRadius, proj.ExplosionDamage)
			}

			if !proj.Piercing {
				destroyed = true
				break
			}
			if proj.PierceLeft == 0 {
				destroyed = true
				break
			}
			proj.PierceLeft--
		}

		if destroyed {
			spent = append(spent, projID)
		}
	}

	for _, id := range spent {
		s.ecs.RemoveEntity(id)
	}
}

// explode runs the area-damage pass of an explosive hit: every live enemy
// within the radius takes linearly falling damage. Enemies the projectile
// already damaged directly are excluded via the shared hit set.
func (s *CollisionSystem) explode(already map[types.EntityID]struct{}, x, y, radius, damage float64) {
	s.fx.CreateExplosionRing(x, y, radius)
	s.sound.Play("explosion")
	for enemyID, enemy := range s.ecs.Enemies {
		if enemy.Dying {
			continue
		}
		if _, hit := already[enemyID]; hit {
			continue
		}
		pos := s.ecs.Positions[enemyID]
		if pos == nil {
			continue
		}
		dist := vmath.Dist(x, y, pos.X, pos.Y)
		if dist >= radius {
			continue
		}
		s.damageEnemy(enemyID, damage*(1-dist/radius))
	}
}

// resolveEnemyProjectiles tests boss-sourced shots against the player.
func (s *CollisionSystem) resolveEnemyProjectiles() {
	player := s.ecs.Player
	var spent []types.EntityID

	for projID, proj := range s.ecs.Projectiles {
		if !proj.FromEnemy {
			continue
		}
		pos := s.ecs.Positions[projID]
		if pos == nil {
			continue
		}
		if !vmath.CirclesOverlap(pos.X, pos.Y, config.ProjectileRadius, player.X, player.Y, config.PlayerRadius) {
			continue
		}
		s.damagePlayer(proj.Damage)
		spent = append(spent, projID)
	}

	for _, id := range spent {
		s.ecs.RemoveEntity(id)
	}
}

// resolveContacts applies direct-contact damage. Regular enemies are a
// one-shot interaction: consumed on contact regardless of remaining
// health, with no death animation and no coin reward. Bosses persist and
// instead deal contact damage on a cooldown.
func (s *CollisionSystem) resolveContacts() {
	player := s.ecs.Player
	var consumed []types.EntityID

	for enemyID, enemy := range s.ecs.Enemies {
		if enemy.Dying {
			continue
		}
		pos := s.ecs.Positions[enemyID]
		if pos == nil {
			continue
		}
		if !vmath.CirclesOverlap(pos.X, pos.Y, enemy.Radius, player.X, player.Y, config.PlayerRadius) {
			continue
		}

		if boss, isBoss := s.ecs.Bosses[enemyID]; isBoss {
			if boss.ContactTimer <= 0 {
				s.damagePlayer(enemy.Damage)
				boss.ContactTimer = config.BossContactCooldown
			}
			continue
		}

		s.damagePlayer(enemy.Damage)
		s.fx.CreateExplosion(pos.X, pos.Y, 8)
		consumed = append(consumed, enemyID)
	}

	for _, id := range consumed {
		s.ecs.RemoveEntity(id)
	}
}

// resolveBossAttacks runs the type-specific geometric tests. Each is gated
// by the boss's own state and resets that state after applying damage, so
// a single attack instance can never hit twice.
func (s *CollisionSystem) resolveBossAttacks() {
	player := s.ecs.Player

	for bossID, boss := range s.ecs.Bosses {
		pos := s.ecs.Positions[bossID]
		if pos == nil {
			continue
		}
		enemy := s.ecs.Enemies[bossID]
		if enemy == nil || enemy.Dying {
			continue
		}

		// Expanding pulse window: hits at most once per pulse.
		if boss.Pulsing && !boss.PulseHit {
			if vmath.Dist(pos.X, pos.Y, player.X, player.Y) <= boss.PulseRadius+config.PlayerRadius {
				s.damagePlayer(enemy.Damage)
				boss.PulseHit = true
			}
		}

		// Lightning strikes: each fires once when its countdown ends.
		for i := range boss.Strikes {
			strike := &boss.Strikes[i]
			if strike.Struck || strike.TimeLeft > 0 {
				continue
			}
			strike.Struck = true
			if vmath.Dist(strike.X, strike.Y, player.X, player.Y) < strike.Radius+config.PlayerRadius {
				s.damagePlayer(enemy.Damage)
			}
			s.fx.CreateExplosionRing(strike.X, strike.Y, strike.Radius)
			s.sound.Play("lightning")
		}

		// Charge collision: one contact hit per charge.
		if boss.Charging && !boss.ChargeHit {
			if vmath.CirclesOverlap(pos.X, pos.Y, enemy.Radius, player.X, player.Y, config.PlayerRadius) {
				s.damagePlayer(enemy.Damage)
				boss.ChargeHit = true
			}
		}
	}
}

// damageEnemy applies damage to an enemy, routing through a shielded
// boss's shield pool first, and starts the death sequence when health runs
// out.
func (s *CollisionSystem) damageEnemy(enemyID types.EntityID, amount float64) {
	enemy := s.ecs.Enemies[enemyID]
	health := s.ecs.Healths[enemyID]
	pos := s.ecs.Positions[enemyID]
	if enemy == nil || health == nil || enemy.Dying {
		return
	}

	if boss, isBoss := s.ecs.Bosses[enemyID]; isBoss && boss.ShieldHP > 0 && !boss.Vulnerable {
		absorbed := amount
		if absorbed > boss.ShieldHP {
			absorbed = boss.ShieldHP
		}
		boss.ShieldHP -= absorbed
		boss.SinceShieldDamage = 0
		amount -= absorbed
		if pos != nil {
			s.fx.SpawnFloatingText(fmt.Sprintf("%.0f", absorbed), pos.X, pos.Y, "shield")
		}
		if boss.ShieldHP <= 0 {
			// Shield break opens the timed vulnerability window.
			boss.ShieldHP = 0
			boss.Vulnerable = true
			boss.VulnerableTimer = config.BossVulnerableTime
			s.sound.Play("shield_break")
			if pos != nil {
				s.fx.CreateExplosionRing(pos.X, pos.Y, enemy.Radius*2)
			}
		}
		if amount <= 0 {
			return
		}
	}

	health.Value -= amount
	if pos != nil {
		s.fx.SpawnFloatingText(fmt.Sprintf("%.0f", amount), pos.X, pos.Y, "damage")
	}
	if health.Value > 0 {
		return
	}

	s.killEnemy(enemyID, enemy, health, pos)
}

func (s *CollisionSystem) killEnemy(enemyID types.EntityID, enemy *component.Enemy, health *component.Health, pos *component.Position) {
	player := s.ecs.Player

	enemy.Dying = true
	enemy.DeathTimer = config.DeathAnimationTime

	if err := player.AddCoins(enemy.CoinValue); err != nil {
		log.Printf("CollisionSystem: kill reward: %v", err)
	}
	player.Score += enemy.CoinValue * 10
	player.Kills++

	if player.LifeSteal {
		if err := player.Heal(health.Max * config.LifeStealFraction); err != nil {
			log.Printf("CollisionSystem: life steal: %v", err)
		}
	}

	if pos != nil {
		s.fx.CreateExplosion(pos.X, pos.Y, 12)
		s.fx.SpawnFloatingText(fmt.Sprintf("+%d", enemy.CoinValue), pos.X, pos.Y, "reward")
		s.spawnSplits(enemy, pos)
	}
	s.sound.Play("enemy_death")
	if s.ecs.Wave != nil {
		s.ecs.Wave.Killed++
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: enemyID})
}

// spawnSplits breaks a splitter into its children at the death position.
func (s *CollisionSystem) spawnSplits(enemy *component.Enemy, pos *component.Position) {
	def, ok := defs.EnemyLibrary[enemy.DefID]
	if !ok || def.SplitInto == "" || def.SplitCount <= 0 {
		return
	}
	scaling := component.StatScaling{Health: 1, Speed: 1, Damage: 1}
	if s.ecs.Wave != nil {
		scaling = s.ecs.Wave.Scaling
	}
	for i := 0; i < def.SplitCount; i++ {
		offset := float64(i*2-1) * def.Radius
		if _, err := SpawnScaledEnemy(s.ecs, def.SplitInto, pos.X+offset, pos.Y, scaling); err != nil {
			log.Printf("CollisionSystem: split spawn: %v", err)
		}
	}
}

// damagePlayer routes damage through the player's shield-first intake and
// triggers the hit feedback.
func (s *CollisionSystem) damagePlayer(amount float64) {
	player := s.ecs.Player
	if err := player.TakeDamage(amount); err != nil {
		log.Printf("CollisionSystem: player damage: %v", err)
		return
	}
	s.fx.ScreenFlash()
	s.fx.AddScreenShake(config.HitShakeIntensity, config.HitShakeDuration)
	s.sound.Play("player_hit")
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: amount})
}
