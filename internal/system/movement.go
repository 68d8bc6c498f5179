// internal/system/movement.go
package system

import (
	"math"

	"go-wave-survival/internal/config"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/types"
)

// MovementSystem advances regular enemies toward the player and moves
// projectiles along their headings. Boss movement is owned entirely by the
// BossSystem, and dying enemies stop moving.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(dt float64) {
	player := s.ecs.Player

	for id, enemy := range s.ecs.Enemies {
		if enemy.Dying {
			continue
		}
		if _, isBoss := s.ecs.Bosses[id]; isBoss {
			continue
		}
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}

		dx := player.X - pos.X
		dy := player.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < 0.01 {
			continue
		}
		move := vel.Speed * enemy.SlowFactor * dt
		if move > dist {
			move = dist
		}
		pos.X += (dx / dist) * move
		pos.Y += (dy / dist) * move
	}

	var expired []types.EntityID
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			expired = append(expired, id)
			continue
		}
		pos.X += math.Cos(proj.Direction) * proj.Speed * dt
		pos.Y += math.Sin(proj.Direction) * proj.Speed * dt

		proj.Lifetime -= dt
		if proj.Lifetime <= 0 || outOfBounds(pos.X, pos.Y) {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}

func outOfBounds(x, y float64) bool {
	const slack = 80.0
	return x < -slack || x > config.ScreenWidth+slack ||
		y < -slack || y > config.ScreenHeight+slack
}
