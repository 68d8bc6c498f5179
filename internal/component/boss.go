// internal/component/boss.go
package component

// BossType selects the boss's signature mechanic.
type BossType string

const (
	BossOrbital  BossType = "ORBITAL"
	BossPulse    BossType = "PULSE"
	BossHunter   BossType = "HUNTER"
	BossStorm    BossType = "STORM"
	BossCrystal  BossType = "CRYSTAL"
	BossShielded BossType = "SHIELDED"
)

// Minion is an orbiting marker around an Orbital boss. Minions are not
// entities of their own; they revolve with the boss and fire radial bursts.
type Minion struct {
	Angle    float64
	Distance float64
}

// LightningStrike is a time-limited strike target maintained by a Storm
// boss. Each strike expires independently and damages the player at most
// once, when its countdown reaches zero.
type LightningStrike struct {
	X, Y     float64
	TimeLeft float64
	Radius   float64
	Struck   bool
}

// DelayedShot is a pending projectile payload. Attack sequences that need
// staggering carry these instead of host timers, so pausing the game loop
// suspends them correctly.
type DelayedShot struct {
	Delay  float64
	Angle  float64
	Speed  float64
	Damage float64
}

// Boss layers a per-type state machine on top of a regular enemy entity.
// The entity also carries Enemy, Health, Position, Velocity and Renderable
// components; Boss holds only what the type machines need.
type Boss struct {
	Type BossType

	// Phase is recomputed every tick from the health ratio, never cached
	// stale. LastPhase detects the crossing edge so the phase-change side
	// effect fires exactly once per crossing.
	Phase     int
	LastPhase int

	AttackInterval float64
	AttackTimer    float64
	ContactTimer   float64

	Pending []DelayedShot

	// Orbital.
	Minions []Minion

	// Pulse.
	PulseCharge float64
	Pulsing     bool
	PulseRadius float64
	PulseHit    bool

	// Hunter.
	Charging      bool
	ChargeTargetX float64
	ChargeTargetY float64
	ChargeHit     bool

	// Storm.
	Strikes []LightningStrike

	// Crystal. FormingShards toggles on each attack trigger between
	// growing the shard ring and launching it.
	FormingShards bool
	Shards        []float64

	// Shielded variant.
	ShieldHP          float64
	MaxShieldHP       float64
	ShieldRegen       float64
	SinceShieldDamage float64
	Vulnerable        bool
	VulnerableTimer   float64
}
