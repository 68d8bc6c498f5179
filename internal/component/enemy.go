// internal/component/enemy.go
package component

// Enemy marks an entity as hostile and carries its combat stats.
type Enemy struct {
	DefID     string
	Damage    float64
	Radius    float64
	CoinValue int

	// SlowFactor is transient: reset to 1 at the start of every tick and
	// re-applied by the player's slow-field aura when in range.
	SlowFactor float64

	// Once Dying is set the enemy is purely cosmetic: it neither deals nor
	// takes contact damage until DeathTimer elapses and it is removed.
	Dying      bool
	DeathTimer float64
}
