// internal/component/projectile.go
package component

import "go-wave-survival/internal/types"

// Projectile is a shot in flight, from either the player or a boss.
type Projectile struct {
	Damage    float64
	Speed     float64
	Direction float64
	Lifetime  float64

	// Piercing shots pass through enemies until PierceLeft is exhausted.
	// HitBy records every enemy this projectile has already damaged, which
	// guarantees at-most-one-hit-per-enemy across frames; Hits counts them
	// for the per-pierce damage falloff.
	Piercing   bool
	PierceLeft int
	Hits       int
	HitBy      map[types.EntityID]struct{}

	Explosive       bool
	ExplosionRadius float64
	ExplosionDamage float64

	// FromEnemy distinguishes boss-sourced shots: they test against the
	// player instead of the enemy set.
	FromEnemy bool
}

// HasHit reports whether this projectile already damaged the given enemy.
func (p *Projectile) HasHit(id types.EntityID) bool {
	_, ok := p.HitBy[id]
	return ok
}

// MarkHit records the enemy as damaged by this projectile.
func (p *Projectile) MarkHit(id types.EntityID) {
	if p.HitBy == nil {
		p.HitBy = make(map[types.EntityID]struct{})
	}
	p.HitBy[id] = struct{}{}
	p.Hits++
}
