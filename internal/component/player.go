// internal/component/player.go
package component

import (
	"errors"
	"fmt"
)

// ErrNegativeAmount rejects negative damage/coin amounts at the API
// boundary. Silently clamping would mask caller bugs.
var ErrNegativeAmount = errors.New("amount must not be negative")

// Player is the stationary player at the canvas center. It is a singleton
// owned directly by the ECS rather than a component map entry.
type Player struct {
	X, Y float64

	HP          float64
	MaxHP       float64
	ShieldHP    float64
	MaxShieldHP float64
	HPRegen     float64 // per second
	ShieldRegen float64 // per second

	DamageMod          float64
	FireRateMod        float64
	ProjectileSpeedMod float64

	Piercing   bool
	TripleShot bool
	LifeSteal  bool
	Explosive  bool
	SlowField  bool

	// Stacks counts every purchased stackable upgrade by power-up ID.
	Stacks map[string]int

	Coins int
	Score int
	Kills int

	FireCooldown float64
}

// NewPlayer creates the session player at the given canvas center.
func NewPlayer(x, y float64) *Player {
	p := &Player{}
	p.Reset(x, y)
	return p
}

// Reset restores session defaults. Used on game start and restart.
func (p *Player) Reset(x, y float64) {
	p.X, p.Y = x, y
	p.MaxHP = 100
	p.HP = p.MaxHP
	p.ShieldHP = 0
	p.MaxShieldHP = 0
	p.HPRegen = 0
	p.ShieldRegen = 0
	p.DamageMod = 1
	p.FireRateMod = 1
	p.ProjectileSpeedMod = 1
	p.Piercing = false
	p.TripleShot = false
	p.LifeSteal = false
	p.Explosive = false
	p.SlowField = false
	p.Stacks = make(map[string]int)
	p.Coins = 0
	p.Score = 0
	p.Kills = 0
	p.FireCooldown = 0
}

// TakeDamage applies damage with shield-first absorption: the shield is
// drained to zero before any excess spills to HP. HP is clamped at zero.
func (p *Player) TakeDamage(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("take damage %.2f: %w", amount, ErrNegativeAmount)
	}
	if p.ShieldHP > 0 {
		absorbed := min(p.ShieldHP, amount)
		p.ShieldHP -= absorbed
		amount -= absorbed
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	return nil
}

// Heal restores HP, clamped at MaxHP.
func (p *Player) Heal(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("heal %.2f: %w", amount, ErrNegativeAmount)
	}
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return nil
}

// Regenerate applies continuous HP and shield regeneration for the
// elapsed time, independent of combat.
func (p *Player) Regenerate(dt float64) {
	if p.HPRegen > 0 && p.HP < p.MaxHP {
		p.HP = min(p.HP+p.HPRegen*dt, p.MaxHP)
	}
	if p.ShieldRegen > 0 && p.ShieldHP < p.MaxShieldHP {
		p.ShieldHP = min(p.ShieldHP+p.ShieldRegen*dt, p.MaxShieldHP)
	}
}

// AddCoins credits the player. Negative amounts are caller bugs.
func (p *Player) AddCoins(amount int) error {
	if amount < 0 {
		return fmt.Errorf("add %d coins: %w", amount, ErrNegativeAmount)
	}
	p.Coins += amount
	return nil
}

// SpendCoins debits the player, returning false when funds are
// insufficient. Insufficient funds is expected control flow, not an error;
// a negative amount is.
func (p *Player) SpendCoins(amount int) (bool, error) {
	if amount < 0 {
		return false, fmt.Errorf("spend %d coins: %w", amount, ErrNegativeAmount)
	}
	if p.Coins < amount {
		return false, nil
	}
	p.Coins -= amount
	return true, nil
}

// AddStack increments the stack counter for a power-up and returns the
// new count.
func (p *Player) AddStack(id string) int {
	p.Stacks[id]++
	return p.Stacks[id]
}

// IsDead reports whether the player has run out of HP.
func (p *Player) IsDead() bool {
	return p.HP <= 0
}
