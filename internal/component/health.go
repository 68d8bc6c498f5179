// internal/component/health.go
package component

// Health tracks current and maximum hit points.
type Health struct {
	Value float64
	Max   float64
}

// StatScaling is the per-wave stat multiplier set produced by the
// difficulty model and applied to every enemy spawned in that wave.
type StatScaling struct {
	Health float64
	Speed  float64
	Damage float64
}
