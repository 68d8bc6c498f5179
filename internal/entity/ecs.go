// internal/entity/ecs.go
package entity

import (
	"go-wave-survival/internal/component"
	"go-wave-survival/internal/types"
)

// ECS owns every entity collection. All collections are mutated only
// during the orchestrator's single update pass; systems receive the ECS
// each frame and must not retain entity references across frames.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Bosses      map[types.EntityID]*component.Boss
	Projectiles map[types.EntityID]*component.Projectile

	Player *component.Player
	Wave   *component.Wave
	Phase  component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Bosses:      make(map[types.EntityID]*component.Boss),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Phase:       component.WavePhase,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity deletes the entity from every component store.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.Projectiles, id)
}

// ClearEnemies removes every enemy (bosses included). Used on restart.
func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
}

// ClearProjectiles removes every projectile. Used on restart.
func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveEntity(id)
	}
}
