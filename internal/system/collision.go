// internal/system/collision.go
package system

import (
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
)

// CollisionSystem despawns monsters that left the screen and resolves
// rectangle overlaps between the hero's narrowed hitbox and each monster.
// Resolution outcomes are published as events; the session listener owns
// the counters and hearts.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CollisionSystem) Update() {
	for id, hero := range s.ecs.Heroes {
		heroPos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		s.resolve(hero, heroPos)
	}
}

func (s *CollisionSystem) resolve(hero *component.Hero, heroPos *component.Position) {
	left := hero.HitboxLeft(heroPos.X, config.HitboxLeftFactor)
	right := hero.HitboxRight(heroPos.X, config.HitboxRightFactor)
	top := heroPos.Y
	bottom := heroPos.Y + hero.Height

	for id, mon := range s.ecs.Monsters {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		// Past the left edge: gone, and it still counts toward progress.
		if pos.X+mon.Width < 0 {
			s.ecs.RemoveEntity(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.MonsterEscaped, Data: mon})
			continue
		}

		if pos.X < right && pos.X+mon.Width > left && pos.Y < bottom && pos.Y+mon.Height > top {
			s.ecs.RemoveEntity(id)
			if mon.RequiredWeapon == hero.Weapon {
				s.eventDispatcher.Dispatch(event.Event{Type: event.MonsterDefeated, Data: mon})
			} else {
				s.eventDispatcher.Dispatch(event.Event{Type: event.HeroDamaged, Data: mon})
			}
		}
	}
}
