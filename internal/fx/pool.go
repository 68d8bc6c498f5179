// internal/fx/pool.go
package fx

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrBadPoolSize rejects malformed pool size parameters at construction.
var ErrBadPoolSize = errors.New("invalid particle pool size")

// Particle is a pooled cosmetic spark. fromPool marks its origin so the
// pool never accepts foreign objects back.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Life     float64
	MaxLife  float64
	Size     float64
	Color    color.RGBA
	fromPool bool
}

func (p *Particle) reset() {
	*p = Particle{fromPool: true}
}

// ParticlePool recycles particles to avoid per-frame allocation churn.
// Acquire beyond the configured maximum is an expected condition and
// reports failure instead of growing without bound.
type ParticlePool struct {
	free    []*Particle
	maxSize int
	created int
}

// NewParticlePool pre-allocates initial particles with a hard cap of max.
func NewParticlePool(initial, max int) (*ParticlePool, error) {
	if initial < 0 || max <= 0 || initial > max {
		return nil, fmt.Errorf("particle pool initial=%d max=%d: %w", initial, max, ErrBadPoolSize)
	}
	pool := &ParticlePool{
		free:    make([]*Particle, 0, initial),
		maxSize: max,
	}
	for i := 0; i < initial; i++ {
		pool.free = append(pool.free, &Particle{fromPool: true})
		pool.created++
	}
	return pool, nil
}

// Acquire hands out a reset particle, creating one if the pool is empty
// and the cap allows. Returns false when the pool is exhausted.
func (p *ParticlePool) Acquire() (*Particle, bool) {
	if n := len(p.free); n > 0 {
		particle := p.free[n-1]
		p.free = p.free[:n-1]
		particle.reset()
		return particle, true
	}
	if p.created >= p.maxSize {
		return nil, false
	}
	p.created++
	return &Particle{fromPool: true}, true
}

// Release returns a particle to the pool. Only particles that originated
// from Acquire are accepted; anything else is rejected to keep the pool
// unpolluted.
func (p *ParticlePool) Release(particle *Particle) bool {
	if particle == nil || !particle.fromPool {
		return false
	}
	p.free = append(p.free, particle)
	return true
}

// InUse reports how many created particles are currently outside the pool.
func (p *ParticlePool) InUse() int {
	return p.created - len(p.free)
}
