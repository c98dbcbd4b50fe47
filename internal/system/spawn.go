// internal/system/spawn.go
package system

import (
	"log"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/defs"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/utils"
)

// SpawnSystem creates monsters at the level's interval until the quota is
// reached. The kind is a weighted random pick from the spawn table.
type SpawnSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	sess := s.ecs.Session
	if sess.MonstersSpawned >= sess.MonstersToSpawn {
		return
	}
	sess.SpawnTimer += deltaTime
	if sess.SpawnTimer < sess.SpawnInterval {
		return
	}
	if s.spawnMonster() {
		sess.MonstersSpawned++
	}
	sess.SpawnTimer = 0
}

// SpawnIntervalForLevel returns the spawn interval in seconds: the base
// interval shrinks per level and clamps at the floor.
func SpawnIntervalForLevel(level int) float64 {
	ms := config.InitialSpawnInterval - level*config.SpawnIntervalDecrement
	if ms < config.MinSpawnInterval {
		ms = config.MinSpawnInterval
	}
	return float64(ms) / 1000.0
}

func (s *SpawnSystem) spawnMonster() bool {
	sess := s.ecs.Session
	defID := s.rng.ChooseWeighted(defs.SpawnTable)
	def, ok := defs.MonsterDefs[defID]
	if !ok {
		log.Printf("Error: monster definition not found for ID: %s", defID)
		return false
	}

	id := s.ecs.NewEntity()
	groundY := sess.ViewH - config.GroundHeight
	s.ecs.Positions[id] = &component.Position{X: sess.ViewW, Y: groundY - def.Height}
	s.ecs.Velocities[id] = &component.Velocity{VX: -sess.Speed}
	s.ecs.Sprites[id] = &component.Sprite{Name: def.Sprite}
	s.ecs.Monsters[id] = &component.Monster{
		DefID:          defID,
		Kind:           def.Kind,
		RequiredWeapon: component.CounterWeapon(def.Kind),
		Width:          def.Width,
		Height:         def.Height,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.MonsterSpawned, Data: id})
	return true
}
