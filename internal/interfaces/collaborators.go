// internal/interfaces/collaborators.go
package interfaces

// SoundPlayer is the fire-and-forget audio collaborator. Implementations
// must never block the game loop; failures are swallowed.
type SoundPlayer interface {
	Play(name string)
}

// EffectSink receives cosmetic side effects from the combat and wave
// systems. All calls are outbound only; no state flows back into the core.
type EffectSink interface {
	SpawnFloatingText(text string, x, y float64, category string)
	ScreenFlash()
	AddScreenShake(intensity, duration float64)
	CreateExplosion(x, y float64, count int)
	CreateExplosionRing(x, y, radius float64)
}

// NopSound is a SoundPlayer that does nothing. Used in tests and when the
// audio backend is unavailable.
type NopSound struct{}

func (NopSound) Play(string) {}

// NopEffects is an EffectSink that does nothing.
type NopEffects struct{}

func (NopEffects) SpawnFloatingText(string, float64, float64, string) {}
func (NopEffects) ScreenFlash()                                       {}
func (NopEffects) AddScreenShake(float64, float64)                    {}
func (NopEffects) CreateExplosion(float64, float64, int)              {}
func (NopEffects) CreateExplosionRing(float64, float64, float64)      {}
