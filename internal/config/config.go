// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.1

	// Difficulty model coefficients. EnemyCount(w) = BaseEnemyCount + w*EnemyCountScaling.
	BaseEnemyCount    = 4
	EnemyCountScaling = 2

	BaseSpawnInterval      = 1.2  // seconds between spawns on wave 1
	MinSpawnInterval       = 0.3  // spawn interval floor
	SpawnIntervalReduction = 0.04 // seconds shaved off per wave
	SpawnJitter            = 0.2  // +/- applied to each spawn delay

	HealthScaleFactor = 1.18
	SpeedScaleFactor  = 1.04
	DamageScaleFactor = 1.10
	MaxHealthScale    = 40.0
	MaxSpeedScale     = 2.5
	MaxDamageScale    = 12.0

	SpawnMargin = 40.0 // distance outside the screen edge where enemies appear

	// Wave lifecycle.
	BossWaveInterval  = 5
	WaveCompleteDelay = 1.0 // seconds of debounce before the shop transition
	RewardBase        = 25
	RewardPerWave     = 5.0
	RewardTimeBonus   = 20
	FastClearSeconds  = 30.0

	// Player.
	PlayerRadius         = 16.0
	PlayerMaxHP          = 100.0
	BaseFireRate         = 2.0 // shots per second before modifiers
	BaseProjectileSpeed  = 420.0
	BaseProjectileDamage = 25.0
	ProjectileRadius     = 4.0
	ProjectileLifetime   = 1.6  // seconds
	TripleShotSpread     = 0.18 // radians between spread shots
	TargetHealthWeight   = 120.0

	// Projectile modifiers.
	BasePierceCount   = 2    // extra enemies a piercing shot may pass through
	PierceFalloff     = 0.25 // fraction of base damage lost per completed pierce
	ExplosionRadius   = 50.0
	ExplosionDamage   = 20.0
	SlowFieldRadius   = 140.0
	SlowFieldFactor   = 0.5
	LifeStealFraction = 0.08

	DeathAnimationTime  = 0.4 // seconds a dying enemy lingers, purely cosmetic
	BossContactCooldown = 1.0 // seconds between boss contact hits on the player

	// Boss behavior.
	PhaseAttackSpeedup   = 0.7 // attack interval multiplier applied once per phase crossing
	BossMinDistance      = 150.0
	BossVulnerableTime   = 4.0
	BossShieldRegenDelay = 3.0

	// Shop.
	ShopChoiceCount = 4

	// Visual feedback.
	HitShakeIntensity    = 4.0
	HitShakeDuration     = 0.25
	FloatingTextLifetime = 0.8
	ParticlePoolInitial  = 128
	ParticlePoolMax      = 1024
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{80, 200, 255, 255}
	ShieldColor     = color.RGBA{120, 160, 255, 140}
	ProjectileColor = color.RGBA{255, 240, 120, 255}
	EnemyProjColor  = color.RGBA{255, 80, 120, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	RewardTextColor = color.RGBA{255, 215, 0, 255}
	DamageTextColor = color.RGBA{255, 120, 90, 255}
	HPBarColor      = color.RGBA{70, 200, 90, 255}
	ShieldBarColor  = color.RGBA{90, 130, 255, 255}
	FlashColor      = color.RGBA{255, 60, 60, 70}
)
