// internal/fx/effects.go
package fx

import (
	"image/color"
	"log"
	"math"

	"go-wave-survival/internal/config"
	"go-wave-survival/internal/utils"
)

// FloatingText is a short-lived combat text marker drifting upward.
type FloatingText struct {
	Text     string
	X, Y     float64
	Life     float64
	Category string // "damage", "shield", "reward"
}

// Ring is an expanding explosion ring marker.
type Ring struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      float64
}

// Effects implements the visual-feedback collaborator: particles,
// floating text, screen shake and flash. It is purely cosmetic state read
// by the renderer; nothing flows back into the combat core.
type Effects struct {
	pool      *ParticlePool
	particles []*Particle
	texts     []FloatingText
	rings     []Ring
	rng       *utils.PRNGService

	shakeIntensity float64
	shakeTime      float64
	flashTime      float64
}

func NewEffects(rng *utils.PRNGService) *Effects {
	pool, err := NewParticlePool(config.ParticlePoolInitial, config.ParticlePoolMax)
	if err != nil {
		// Pool sizes come from config constants; a bad value is a
		// development-time defect.
		log.Panicf("fx: %v", err)
	}
	return &Effects{pool: pool, rng: rng}
}

func (e *Effects) SpawnFloatingText(text string, x, y float64, category string) {
	e.texts = append(e.texts, FloatingText{
		Text:     text,
		X:        x,
		Y:        y,
		Life:     config.FloatingTextLifetime,
		Category: category,
	})
}

func (e *Effects) ScreenFlash() {
	e.flashTime = 0.15
}

func (e *Effects) AddScreenShake(intensity, duration float64) {
	if intensity > e.shakeIntensity {
		e.shakeIntensity = intensity
	}
	if duration > e.shakeTime {
		e.shakeTime = duration
	}
}

// CreateExplosion bursts count particles from a point. Exhausting the
// pool just truncates the burst.
func (e *Effects) CreateExplosion(x, y float64, count int) {
	for i := 0; i < count; i++ {
		particle, ok := e.pool.Acquire()
		if !ok {
			return
		}
		angle := e.rng.Range(0, 2*math.Pi)
		speed := e.rng.Range(40, 160)
		particle.X = x
		particle.Y = y
		particle.VX = math.Cos(angle) * speed
		particle.VY = math.Sin(angle) * speed
		particle.MaxLife = e.rng.Range(0.25, 0.6)
		particle.Life = particle.MaxLife
		particle.Size = e.rng.Range(1.5, 3.5)
		particle.Color = color.RGBA{255, uint8(120 + e.rng.Intn(100)), 60, 255}
		e.particles = append(e.particles, particle)
	}
}

func (e *Effects) CreateExplosionRing(x, y, radius float64) {
	e.rings = append(e.rings, Ring{
		X: x, Y: y,
		MaxRadius: radius,
		Life:      0.4,
	})
}

// Update ages all cosmetic state and releases expired particles back to
// the pool.
func (e *Effects) Update(dt float64) {
	live := e.particles[:0]
	for _, particle := range e.particles {
		particle.Life -= dt
		if particle.Life <= 0 {
			e.pool.Release(particle)
			continue
		}
		particle.X += particle.VX * dt
		particle.Y += particle.VY * dt
		live = append(live, particle)
	}
	e.particles = live

	texts := e.texts[:0]
	for _, text := range e.texts {
		text.Life -= dt
		if text.Life <= 0 {
			continue
		}
		text.Y -= 30 * dt
		texts = append(texts, text)
	}
	e.texts = texts

	rings := e.rings[:0]
	for _, ring := range e.rings {
		ring.Life -= dt
		if ring.Life <= 0 {
			continue
		}
		ring.Radius = ring.MaxRadius * (1 - ring.Life/0.4)
		rings = append(rings, ring)
	}
	e.rings = rings

	if e.shakeTime > 0 {
		e.shakeTime -= dt
		if e.shakeTime <= 0 {
			e.shakeIntensity = 0
		}
	}
	if e.flashTime > 0 {
		e.flashTime -= dt
	}
}

// ShakeOffset returns the current frame's render offset.
func (e *Effects) ShakeOffset() (float64, float64) {
	if e.shakeTime <= 0 {
		return 0, 0
	}
	return e.rng.Range(-e.shakeIntensity, e.shakeIntensity),
		e.rng.Range(-e.shakeIntensity, e.shakeIntensity)
}

// FlashActive reports whether the damage flash overlay should draw.
func (e *Effects) FlashActive() bool {
	return e.flashTime > 0
}

func (e *Effects) Particles() []*Particle { return e.particles }
func (e *Effects) Texts() []FloatingText  { return e.texts }
func (e *Effects) Rings() []Ring          { return e.rings }

// Reset drops all live cosmetic state, releasing particles to the pool.
func (e *Effects) Reset() {
	for _, particle := range e.particles {
		e.pool.Release(particle)
	}
	e.particles = e.particles[:0]
	e.texts = e.texts[:0]
	e.rings = e.rings[:0]
	e.shakeIntensity = 0
	e.shakeTime = 0
	e.flashTime = 0
}
