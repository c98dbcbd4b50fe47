// internal/app/game.go
package app

import (
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/defs"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/system"
	"go-endless-runner/internal/types"
	"go-endless-runner/internal/utils"
)

// Game holds the session state and runs the simulation. All transitions
// happen synchronously inside one frame's Update; input arrives between
// frames through the Choose/AdvanceLevel/Restart methods.
type Game struct {
	ECS             *entity.ECS
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	CollisionSystem *system.CollisionSystem
	ScrollSystem    *system.ScrollSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	HeroID          types.EntityID
}

// NewGame initializes a session at level 0 with full hearts, entering the
// first choice. Level definitions must be loaded first.
func NewGame(seed int64) *Game {
	if len(defs.LevelDefs) == 0 {
		panic("level definitions are not loaded")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	g := &Game{
		ECS:             ecs,
		MovementSystem:  system.NewMovementSystem(ecs),
		SpawnSystem:     system.NewSpawnSystem(ecs, rng, eventDispatcher),
		CollisionSystem: system.NewCollisionSystem(ecs, eventDispatcher),
		ScrollSystem:    system.NewScrollSystem(ecs),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}

	sess := ecs.Session
	sess.Hearts = config.MaxHearts
	sess.ViewW = config.ScreenWidth
	sess.ViewH = config.ScreenHeight

	g.createHero()

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.MonsterDefeated, listener)
	eventDispatcher.Subscribe(event.MonsterEscaped, listener)
	eventDispatcher.Subscribe(event.HeroDamaged, listener)

	g.StartLevel(0)
	return g
}

func (g *Game) createHero() {
	id := g.ECS.NewEntity()
	g.ECS.Heroes[id] = &component.Hero{
		Width:  config.HeroWidth,
		Height: config.HeroHeight,
	}
	g.ECS.Positions[id] = &component.Position{}
	g.ECS.Sprites[id] = &component.Sprite{Name: "hero"}
	g.HeroID = id
	g.positionHero()
}

// Session is a shorthand for the session singleton.
func (g *Game) Session() *component.Session {
	return g.ECS.Session
}

// Hero returns the hero component.
func (g *Game) Hero() *component.Hero {
	return g.ECS.Heroes[g.HeroID]
}

// Update advances the simulation by deltaTime seconds. Outside of
// PhasePlaying the simulation is blocked and only time passes.
func (g *Game) Update(deltaTime float64) {
	g.ECS.GameTime += deltaTime
	sess := g.ECS.Session
	if sess.Phase != component.PhasePlaying {
		return
	}

	if sess.FlashTimer > 0 {
		sess.FlashTimer -= deltaTime
		if sess.FlashTimer < 0 {
			sess.FlashTimer = 0
		}
	}

	g.ScrollSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.checkTransitions()
}

// checkTransitions applies the end-of-frame phase rules in priority
// order: game over pre-empts level completion, which pre-empts the next
// power-up choice.
func (g *Game) checkTransitions() {
	sess := g.ECS.Session
	if sess.Hearts <= 0 {
		sess.Phase = component.PhaseGameOver
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		return
	}
	if sess.MonstersDefeated >= sess.MonstersToSpawn && len(g.ECS.Monsters) == 0 {
		sess.Phase = component.PhaseLevelEnd
		g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: sess.Level})
		return
	}
	if sess.MonstersDefeated >= sess.NextChoiceAt {
		g.openChoice()
	}
}

// openChoice blocks the simulation and deals the two power-ups to random
// sides.
func (g *Game) openChoice() {
	sess := g.ECS.Session
	sess.Phase = component.PhaseChoice
	if g.Rng.Bool() {
		sess.LeftOption, sess.RightOption = component.WeaponSword, component.WeaponWand
	} else {
		sess.LeftOption, sess.RightOption = component.WeaponWand, component.WeaponSword
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.ChoiceOpened})
}

// Choose equips the power-up on the picked side, re-arms the next choice
// threshold and resumes play. Ignored outside PhaseChoice.
func (g *Game) Choose(left bool) {
	sess := g.ECS.Session
	if sess.Phase != component.PhaseChoice {
		return
	}
	weapon := sess.RightOption
	if left {
		weapon = sess.LeftOption
	}
	g.Hero().Weapon = weapon
	sess.NextChoiceAt = utils.MinInt(sess.MonstersDefeated+config.DefeatsPerChoice, sess.MonstersToSpawn)
	sess.Phase = component.PhasePlaying
}

// AdvanceLevel moves on from a completed level, wrapping to level 0 after
// the final one. Ignored outside PhaseLevelEnd.
func (g *Game) AdvanceLevel() {
	sess := g.ECS.Session
	if sess.Phase != component.PhaseLevelEnd {
		return
	}
	g.StartLevel((sess.Level + 1) % len(defs.LevelDefs))
}

// Restart begins a fresh run at level 0 with full hearts. Ignored outside
// PhaseGameOver.
func (g *Game) Restart() {
	sess := g.ECS.Session
	if sess.Phase != component.PhaseGameOver {
		return
	}
	sess.Hearts = config.MaxHearts
	g.StartLevel(0)
}

// StartLevel resets the per-level counters, clears live monsters and
// enters the opening choice of the given level.
func (g *Game) StartLevel(level int) {
	for id := range g.ECS.Monsters {
		g.ECS.RemoveEntity(id)
	}

	def := defs.LevelDefs[level]
	sess := g.ECS.Session
	sess.Level = level
	sess.MonstersToSpawn = def.MonsterCount
	sess.MonstersSpawned = 0
	sess.MonstersDefeated = 0
	sess.NextChoiceAt = utils.MinInt(config.DefeatsPerChoice, def.MonsterCount)
	sess.SpawnTimer = 0
	sess.SpawnInterval = system.SpawnIntervalForLevel(level)
	sess.Speed = def.Speed
	sess.ScrollOffset = 0
	sess.FlashTimer = 0

	g.positionHero()
	g.openChoice()
}

// Resize follows the window size; the hero is repositioned against the
// new ground line.
func (g *Game) Resize(w, h float64) {
	sess := g.ECS.Session
	sess.ViewW = w
	sess.ViewH = h
	g.positionHero()
}

func (g *Game) positionHero() {
	sess := g.ECS.Session
	hero := g.Hero()
	pos := g.ECS.Positions[g.HeroID]
	pos.X = config.HeroOffsetX
	pos.Y = sess.ViewH - config.GroundHeight - hero.Height
}
