// internal/system/movement.go
package system

import (
	"go-endless-runner/internal/entity"
)

// MovementSystem integrates entity positions from their velocities.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
