package system

import (
	"testing"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/defs"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/utils"
)

func setupSpawnDefs(t *testing.T) {
	t.Helper()
	defs.MonsterDefs = map[string]defs.MonsterDefinition{
		"MONSTER_BEAST": {ID: "MONSTER_BEAST", Kind: component.KindBeast, Width: 40, Height: 50, Weight: 1, Sprite: "beast"},
		"MONSTER_GHOST": {ID: "MONSTER_GHOST", Kind: component.KindGhost, Width: 40, Height: 50, Weight: 1, Sprite: "ghost"},
	}
	defs.SpawnTable = []defs.SpawnEntry{
		{MonsterID: "MONSTER_BEAST", Weight: 1},
		{MonsterID: "MONSTER_GHOST", Weight: 1},
	}
}

func newSpawnFixture(t *testing.T, quota int) (*entity.ECS, *SpawnSystem) {
	t.Helper()
	setupSpawnDefs(t)
	ecs := entity.NewECS()
	sess := ecs.Session
	sess.ViewW = config.ScreenWidth
	sess.ViewH = config.ScreenHeight
	sess.Speed = 100
	sess.SpawnInterval = 0.5
	sess.MonstersToSpawn = quota
	return ecs, NewSpawnSystem(ecs, utils.NewPRNGService(42), event.NewDispatcher())
}

func TestSpawningStopsAtQuota(t *testing.T) {
	ecs, s := newSpawnFixture(t, 5)

	// Far more ticks than the quota needs.
	for i := 0; i < 50; i++ {
		s.Update(0.5)
	}

	if got := ecs.Session.MonstersSpawned; got != 5 {
		t.Errorf("expected exactly 5 spawns, got %d", got)
	}
	if got := len(ecs.Monsters); got != 5 {
		t.Errorf("expected 5 live monsters, got %d", got)
	}
}

func TestSpawnWaitsForInterval(t *testing.T) {
	ecs, s := newSpawnFixture(t, 5)

	s.Update(0.2)
	if got := ecs.Session.MonstersSpawned; got != 0 {
		t.Errorf("expected no spawn before the interval, got %d", got)
	}
	s.Update(0.3)
	if got := ecs.Session.MonstersSpawned; got != 1 {
		t.Errorf("expected one spawn once the interval elapsed, got %d", got)
	}
}

func TestSpawnedMonsterStandsOnGroundAtRightEdge(t *testing.T) {
	ecs, s := newSpawnFixture(t, 1)

	s.Update(0.5)

	for id, mon := range ecs.Monsters {
		pos := ecs.Positions[id]
		if pos.X != ecs.Session.ViewW {
			t.Errorf("expected spawn at the right edge %g, got %g", ecs.Session.ViewW, pos.X)
		}
		wantY := ecs.Session.ViewH - config.GroundHeight - mon.Height
		if pos.Y != wantY {
			t.Errorf("expected monster on the ground line at %g, got %g", wantY, pos.Y)
		}
		vel := ecs.Velocities[id]
		if vel.VX != -ecs.Session.Speed {
			t.Errorf("expected leftward velocity %g, got %g", -ecs.Session.Speed, vel.VX)
		}
		if mon.RequiredWeapon != component.CounterWeapon(mon.Kind) {
			t.Errorf("monster %s requires %s, derived %s", mon.Kind, component.CounterWeapon(mon.Kind), mon.RequiredWeapon)
		}
	}
}

func TestSpawnIntervalShrinksWithFloor(t *testing.T) {
	if got := SpawnIntervalForLevel(0); got != float64(config.InitialSpawnInterval)/1000 {
		t.Errorf("expected base interval at level 0, got %g", got)
	}
	if SpawnIntervalForLevel(1) >= SpawnIntervalForLevel(0) {
		t.Errorf("expected the interval to shrink per level")
	}
	floor := float64(config.MinSpawnInterval) / 1000
	if got := SpawnIntervalForLevel(100); got != floor {
		t.Errorf("expected floor %g at high levels, got %g", floor, got)
	}
}
