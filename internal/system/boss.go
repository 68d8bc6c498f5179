// internal/system/boss.go
package system

import (
	"errors"
	"fmt"
	"math"

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

// ErrUnknownBossType rejects boss definitions whose type key has no state
// machine. There is no default stat block; the spawn attempt is aborted.
var ErrUnknownBossType = errors.New("unknown boss type")

const (
	pulseChargeTime      = 0.8
	pulseGrowthRate      = 300.0 // radius expansion, px/s
	pulseMaxRadius       = 220.0
	minionOrbitSpeed     = 1.6 // radians/s
	chargeSpeedMult      = 4.0
	hunterTeleportDist   = 260.0
	strikeFuse           = 1.2
	strikeRadius         = 60.0
	shardCount           = 8
	vulnerableSpeedMult  = 1.5
	vulnerableAttackMult = 0.6
)

// NewBossState builds the per-type boss component for a definition,
// failing fast on unrecognized type keys.
func NewBossState(def defs.BossDefinition) (*component.Boss, error) {
	t := component.BossType(def.Type)
	boss := &component.Boss{
		Type:           t,
		Phase:          1,
		LastPhase:      1,
		AttackInterval: def.AttackInterval,
		ShieldRegen:    def.ShieldRegen,
	}

	switch t {
	case component.BossOrbital:
		for i := 0; i < 3; i++ {
			boss.Minions = append(boss.Minions, component.Minion{
				Angle:    float64(i) * 2 * math.Pi / 3,
				Distance: def.Radius * 2.2,
			})
		}
	case component.BossCrystal:
		boss.FormingShards = true
	case component.BossPulse, component.BossHunter, component.BossStorm, component.BossShielded:
		// no extra initial state
	default:
		return nil, fmt.Errorf("boss type %q: %w", def.Type, ErrUnknownBossType)
	}
	return boss, nil
}

// BossSystem drives every boss's movement, phase transitions and
// signature attack state machine. The geometric damage tests themselves
// live in the collision system.
type BossSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	fx              interfaces.EffectSink
	sound           interfaces.SoundPlayer
}

func NewBossSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, fx interfaces.EffectSink, sound interfaces.SoundPlayer) *BossSystem {
	return &BossSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		fx:              fx,
		sound:           sound,
	}
}

func (s *BossSystem) Update(dt float64) {
	for id, boss := range s.ecs.Bosses {
		enemy := s.ecs.Enemies[id]
		health := s.ecs.Healths[id]
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if enemy == nil || health == nil || pos == nil || vel == nil || enemy.Dying {
			continue
		}

		s.updatePhase(id, boss, health, pos, enemy)

		if boss.ContactTimer > 0 {
			boss.ContactTimer -= dt
		}

		s.updateShield(boss, pos, enemy, dt)
		s.updatePending(boss, pos, dt)
		s.updateMovement(boss, enemy, pos, vel, dt)
		s.updateMechanics(boss, dt)

		boss.AttackTimer += dt
		interval := boss.AttackInterval
		if boss.Vulnerable {
			interval *= vulnerableAttackMult
		}
		if boss.AttackTimer >= interval {
			boss.AttackTimer = 0
			s.triggerAttack(boss, enemy, pos)
		}
	}
}

// updatePhase recomputes the phase from the current health ratio every
// tick and applies the attack-speed side effect exactly once per crossed
// boundary.
func (s *BossSystem) updatePhase(id types.EntityID, boss *component.Boss, health *component.Health, pos *component.Position, enemy *component.Enemy) {
	ratio := health.Value / health.Max
	phase := 1
	switch {
	case ratio <= 0.33:
		phase = 3
	case ratio <= 0.66:
		phase = 2
	}
	boss.Phase = phase

	if phase > boss.LastPhase {
		for crossed := boss.LastPhase; crossed < phase; crossed++ {
			boss.AttackInterval *= config.PhaseAttackSpeedup
		}
		boss.LastPhase = phase
		if boss.Type == component.BossOrbital {
			boss.Minions = append(boss.Minions, component.Minion{
				Angle:    s.rng.Range(0, 2*math.Pi),
				Distance: enemy.Radius * 2.2,
			})
		}
		s.fx.CreateExplosionRing(pos.X, pos.Y, enemy.Radius*3)
		s.sound.Play("phase_change")
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BossPhaseChanged,
			Data: event.PhaseChangeData{ID: id, Phase: phase},
		})
	}
}

// updateShield runs the shielded variant's regen-after-quiet rule and the
// shield-break vulnerability cycle.
func (s *BossSystem) updateShield(boss *component.Boss, pos *component.Position, enemy *component.Enemy, dt float64) {
	if boss.MaxShieldHP <= 0 {
		return
	}

	if boss.Vulnerable {
		boss.VulnerableTimer -= dt
		if boss.VulnerableTimer <= 0 {
			boss.Vulnerable = false
			boss.ShieldHP = boss.MaxShieldHP
			boss.SinceShieldDamage = 0
			s.sound.Play("shield_up")
			s.fx.CreateExplosionRing(pos.X, pos.Y, enemy.Radius*1.5)
		}
		return
	}

	if boss.ShieldHP < boss.MaxShieldHP {
		boss.SinceShieldDamage += dt
		if boss.SinceShieldDamage >= config.BossShieldRegenDelay {
			boss.ShieldHP = math.Min(boss.ShieldHP+boss.ShieldRegen*dt, boss.MaxShieldHP)
		}
	}
}

// updatePending advances staggered attack payloads, firing each shot when
// its countdown elapses. These are explicit state, not host timers, so a
// paused game suspends them.
func (s *BossSystem) updatePending(boss *component.Boss, pos *component.Position, dt float64) {
	remaining := boss.Pending[:0]
	for _, shot := range boss.Pending {
		shot.Delay -= dt
		if shot.Delay <= 0 {
			s.fireProjectile(pos, shot.Angle, shot.Speed, shot.Damage)
		} else {
			remaining = append(remaining, shot)
		}
	}
	boss.Pending = remaining
}

func (s *BossSystem) updateMovement(boss *component.Boss, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, dt float64) {
	player := s.ecs.Player

	if boss.Type == component.BossHunter && boss.Charging {
		// Straight line toward the captured target point.
		dist := vmath.Dist(pos.X, pos.Y, boss.ChargeTargetX, boss.ChargeTargetY)
		step := vel.Speed * chargeSpeedMult * dt
		if step >= dist {
			pos.X = boss.ChargeTargetX
			pos.Y = boss.ChargeTargetY
			boss.Charging = false
		} else {
			angle := vmath.Angle(pos.X, pos.Y, boss.ChargeTargetX, boss.ChargeTargetY)
			pos.X += math.Cos(angle) * step
			pos.Y += math.Sin(angle) * step
		}
		return
	}

	// Default drift: close in on the player but keep a standoff distance.
	dist := vmath.Dist(pos.X, pos.Y, player.X, player.Y)
	if dist <= config.BossMinDistance {
		return
	}
	speed := vel.Speed * enemy.SlowFactor
	if boss.Vulnerable {
		speed *= vulnerableSpeedMult
	}
	angle := vmath.Angle(pos.X, pos.Y, player.X, player.Y)
	pos.X += math.Cos(angle) * speed * dt
	pos.Y += math.Sin(angle) * speed * dt
}

// updateMechanics advances the continuous parts of each signature
// mechanic: minion orbits, pulse expansion, strike fuses.
func (s *BossSystem) updateMechanics(boss *component.Boss, dt float64) {
	switch boss.Type {
	case component.BossOrbital:
		for i := range boss.Minions {
			boss.Minions[i].Angle += minionOrbitSpeed * dt
		}
	case component.BossPulse:
		if boss.PulseCharge > 0 {
			boss.PulseCharge -= dt
			if boss.PulseCharge <= 0 {
				boss.Pulsing = true
				boss.PulseRadius = 0
				boss.PulseHit = false
				s.sound.Play("pulse")
			}
		}
		if boss.Pulsing {
			boss.PulseRadius += pulseGrowthRate * dt
			if boss.PulseRadius >= pulseMaxRadius {
				boss.Pulsing = false
			}
		}
	case component.BossStorm:
		kept := boss.Strikes[:0]
		for _, strike := range boss.Strikes {
			strike.TimeLeft -= dt
			// Struck strikes were consumed by the collision pass.
			if !strike.Struck {
				kept = append(kept, strike)
			}
		}
		boss.Strikes = kept
	}
}

func (s *BossSystem) triggerAttack(boss *component.Boss, enemy *component.Enemy, pos *component.Position) {
	player := s.ecs.Player

	switch boss.Type {
	case component.BossOrbital:
		// One staggered radial volley per orbiting minion.
		for m, minion := range boss.Minions {
			angle := minion.Angle
			for i := 0; i < 4; i++ {
				boss.Pending = append(boss.Pending, component.DelayedShot{
					Delay:  float64(m) * 0.15,
					Angle:  angle + float64(i)*math.Pi/2,
					Speed:  220,
					Damage: enemy.Damage * 0.4,
				})
			}
		}
		s.sound.Play("boss_shoot")

	case component.BossPulse:
		if !boss.Pulsing && boss.PulseCharge <= 0 {
			boss.PulseCharge = pulseChargeTime
			s.sound.Play("pulse_charge")
		}

	case component.BossHunter:
		// Teleport near the player, then charge at the captured point.
		angle := s.rng.Range(0, 2*math.Pi)
		pos.X = player.X + math.Cos(angle)*hunterTeleportDist
		pos.Y = player.Y + math.Sin(angle)*hunterTeleportDist
		boss.Charging = true
		boss.ChargeHit = false
		boss.ChargeTargetX = player.X
		boss.ChargeTargetY = player.Y
		s.sound.Play("teleport")

	case component.BossStorm:
		for i := 0; i < 3; i++ {
			boss.Strikes = append(boss.Strikes, component.LightningStrike{
				X:        player.X + s.rng.Range(-120, 120),
				Y:        player.Y + s.rng.Range(-120, 120),
				TimeLeft: strikeFuse,
				Radius:   strikeRadius,
			})
		}
		s.sound.Play("storm_warn")

	case component.BossCrystal:
		if boss.FormingShards {
			boss.Shards = boss.Shards[:0]
			for i := 0; i < shardCount; i++ {
				boss.Shards = append(boss.Shards, float64(i)*2*math.Pi/shardCount)
			}
			boss.FormingShards = false
			s.sound.Play("crystal_form")
		} else {
			for _, angle := range boss.Shards {
				s.fireProjectile(pos, angle, 260, enemy.Damage*0.5)
			}
			boss.Shards = nil
			boss.FormingShards = true
			s.sound.Play("crystal_launch")
		}

	case component.BossShielded:
		shots := 6
		if boss.Vulnerable {
			// The vulnerability window is also the aggression window.
			shots = 12
		}
		aim := vmath.Angle(pos.X, pos.Y, player.X, player.Y)
		for i := 0; i < shots; i++ {
			boss.Pending = append(boss.Pending, component.DelayedShot{
				Delay:  float64(i) * 0.05,
				Angle:  aim + float64(i)*2*math.Pi/float64(shots),
				Speed:  240,
				Damage: enemy.Damage * 0.45,
			})
		}
		s.sound.Play("boss_shoot")
	}
}

func (s *BossSystem) fireProjectile(pos *component.Position, angle, speed, damage float64) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		Damage:    damage,
		Speed:     speed,
		Direction: angle,
		Lifetime:  config.ProjectileLifetime * 2,
		FromEnemy: true,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.EnemyProjColor,
		Radius: config.ProjectileRadius,
	}
}
