// internal/system/scroll.go
package system

import (
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
)

// ScrollSystem advances the background offset at a fraction of the level
// speed and wraps it at the background tile width (one view width).
type ScrollSystem struct {
	ecs *entity.ECS
}

func NewScrollSystem(ecs *entity.ECS) *ScrollSystem {
	return &ScrollSystem{ecs: ecs}
}

func (s *ScrollSystem) Update(deltaTime float64) {
	sess := s.ecs.Session
	sess.ScrollOffset += sess.Speed * config.ScrollSpeedFactor * deltaTime
	if sess.ViewW > 0 {
		for sess.ScrollOffset >= sess.ViewW {
			sess.ScrollOffset -= sess.ViewW
		}
	}
}
