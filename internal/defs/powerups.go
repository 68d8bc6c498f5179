// internal/defs/powerups.go
package defs

import (
	"fmt"

	"go-wave-survival/internal/component"
)

// PowerUpDefinition describes one shop upgrade. Stackable upgrades may be
// bought repeatedly up to MaxStacks (0 = unlimited); one-shot abilities
// disappear from the shop after purchase.
type PowerUpDefinition struct {
	ID           string
	Name         string
	Description  string
	BasePrice    int
	PriceScaling float64 // price multiplier applied per owned stack
	Stackable    bool
	MaxStacks    int
}

// PowerUpLibrary is the catalog of every purchasable upgrade, keyed by ID.
var PowerUpLibrary = map[string]PowerUpDefinition{
	"PU_DAMAGE": {
		ID: "PU_DAMAGE", Name: "Sharpened Rounds", Description: "+20% damage",
		BasePrice: 30, PriceScaling: 1.4, Stackable: true,
	},
	"PU_FIRE_RATE": {
		ID: "PU_FIRE_RATE", Name: "Rapid Loader", Description: "+15% fire rate",
		BasePrice: 30, PriceScaling: 1.4, Stackable: true,
	},
	"PU_PROJ_SPEED": {
		ID: "PU_PROJ_SPEED", Name: "Railed Barrel", Description: "+20% projectile speed",
		BasePrice: 20, PriceScaling: 1.3, Stackable: true,
	},
	"PU_MAX_HP": {
		ID: "PU_MAX_HP", Name: "Reinforced Hull", Description: "+25 max HP and heal 25",
		BasePrice: 35, PriceScaling: 1.35, Stackable: true,
	},
	"PU_HP_REGEN": {
		ID: "PU_HP_REGEN", Name: "Nanite Mesh", Description: "+1 HP/s regeneration",
		BasePrice: 40, PriceScaling: 1.5, Stackable: true, MaxStacks: 5,
	},
	"PU_SHIELD": {
		ID: "PU_SHIELD", Name: "Barrier Cell", Description: "+30 max shield",
		BasePrice: 45, PriceScaling: 1.4, Stackable: true,
	},
	"PU_SHIELD_REGEN": {
		ID: "PU_SHIELD_REGEN", Name: "Barrier Capacitor", Description: "+3 shield/s regeneration",
		BasePrice: 50, PriceScaling: 1.5, Stackable: true, MaxStacks: 5,
	},
	"PU_HEAL": {
		ID: "PU_HEAL", Name: "Field Repair", Description: "Restore 50 HP",
		BasePrice: 25, PriceScaling: 1.0, Stackable: true,
	},
	"PU_PIERCING": {
		ID: "PU_PIERCING", Name: "Piercing Rounds", Description: "Shots pass through enemies",
		BasePrice: 80, Stackable: false,
	},
	"PU_TRIPLE_SHOT": {
		ID: "PU_TRIPLE_SHOT", Name: "Triple Shot", Description: "Fire three shots in a spread",
		BasePrice: 100, Stackable: false,
	},
	"PU_EXPLOSIVE": {
		ID: "PU_EXPLOSIVE", Name: "Explosive Rounds", Description: "Shots explode on impact",
		BasePrice: 120, Stackable: false,
	},
	"PU_LIFE_STEAL": {
		ID: "PU_LIFE_STEAL", Name: "Siphon Rounds", Description: "Kills restore a little HP",
		BasePrice: 90, Stackable: false,
	},
	"PU_SLOW_FIELD": {
		ID: "PU_SLOW_FIELD", Name: "Stasis Field", Description: "Slow nearby enemies",
		BasePrice: 110, Stackable: false,
	},
}

// PowerUpOrder fixes the catalog iteration order for shop display.
var PowerUpOrder = []string{
	"PU_DAMAGE", "PU_FIRE_RATE", "PU_PROJ_SPEED", "PU_MAX_HP", "PU_HP_REGEN",
	"PU_SHIELD", "PU_SHIELD_REGEN", "PU_HEAL", "PU_PIERCING", "PU_TRIPLE_SHOT",
	"PU_EXPLOSIVE", "PU_LIFE_STEAL", "PU_SLOW_FIELD",
}

// Price returns the cost of the next purchase of the power-up given how
// many stacks the player already owns.
func (d PowerUpDefinition) Price(ownedStacks int) int {
	price := float64(d.BasePrice)
	for i := 0; i < ownedStacks; i++ {
		scale := d.PriceScaling
		if scale <= 0 {
			scale = 1
		}
		price *= scale
	}
	return int(price)
}

// Available reports whether the player can still buy this power-up
// (one-shot already owned, or stack cap reached).
func (d PowerUpDefinition) Available(p *component.Player) bool {
	owned := p.Stacks[d.ID]
	if !d.Stackable && owned > 0 {
		return false
	}
	if d.MaxStacks > 0 && owned >= d.MaxStacks {
		return false
	}
	return true
}

// ApplyPowerUp mutates the player with the effect of one purchase of the
// given power-up. Unknown IDs are configuration errors.
func ApplyPowerUp(p *component.Player, id string) error {
	switch id {
	case "PU_DAMAGE":
		p.DamageMod *= 1.20
	case "PU_FIRE_RATE":
		p.FireRateMod *= 1.15
	case "PU_PROJ_SPEED":
		p.ProjectileSpeedMod *= 1.20
	case "PU_MAX_HP":
		p.MaxHP += 25
		p.HP = min(p.HP+25, p.MaxHP)
	case "PU_HP_REGEN":
		p.HPRegen += 1
	case "PU_SHIELD":
		p.MaxShieldHP += 30
		p.ShieldHP = min(p.ShieldHP+30, p.MaxShieldHP)
	case "PU_SHIELD_REGEN":
		p.ShieldRegen += 3
	case "PU_HEAL":
		if err := p.Heal(50); err != nil {
			return err
		}
	case "PU_PIERCING":
		p.Piercing = true
	case "PU_TRIPLE_SHOT":
		p.TripleShot = true
	case "PU_EXPLOSIVE":
		p.Explosive = true
	case "PU_LIFE_STEAL":
		p.LifeSteal = true
	case "PU_SLOW_FIELD":
		p.SlowField = true
	default:
		return fmt.Errorf("apply power-up: unknown id %q", id)
	}
	p.AddStack(id)
	return nil
}
