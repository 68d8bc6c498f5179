// internal/event/types.go
package event

import "go-wave-survival/internal/types"

const (
	WaveEnded        EventType = "WaveEnded"        // Data: WaveEndedData
	EnemySpawned     EventType = "EnemySpawned"     // Data: types.EntityID
	EnemyKilled      EventType = "EnemyKilled"      // Data: types.EntityID
	BossSpawned      EventType = "BossSpawned"      // Data: types.EntityID
	BossPhaseChanged EventType = "BossPhaseChanged" // Data: PhaseChangeData
	PlayerDamaged    EventType = "PlayerDamaged"    // Data: float64 (amount)
	PlayerDied       EventType = "PlayerDied"
	PowerUpPurchased EventType = "PowerUpPurchased" // Data: string (power-up ID)
)

// WaveEndedData accompanies WaveEnded.
type WaveEndedData struct {
	Wave   int
	Reward int
}

// PhaseChangeData accompanies BossPhaseChanged.
type PhaseChangeData struct {
	ID    types.EntityID
	Phase int
}
