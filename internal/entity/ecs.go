// internal/entity/ecs.go
package entity

import (
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/types"
)

type ECS struct {
	GameTime   float64
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Sprites    map[types.EntityID]*component.Sprite
	Monsters   map[types.EntityID]*component.Monster
	Heroes     map[types.EntityID]*component.Hero
	Session    *component.Session
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Sprites:    make(map[types.EntityID]*component.Sprite),
		Monsters:   make(map[types.EntityID]*component.Monster),
		Heroes:     make(map[types.EntityID]*component.Hero),
		Session:    &component.Session{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity deletes the entity from every component map.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Sprites, id)
	delete(ecs.Monsters, id)
	delete(ecs.Heroes, id)
}
