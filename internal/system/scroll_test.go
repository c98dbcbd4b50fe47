package system

import (
	"testing"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
)

func TestScrollWrapsAtViewWidth(t *testing.T) {
	ecs := entity.NewECS()
	sess := ecs.Session
	sess.ViewW = 200
	sess.Speed = 100
	s := NewScrollSystem(ecs)

	// 100 px/s at the scroll factor; run long enough to wrap several
	// times.
	for i := 0; i < 100; i++ {
		s.Update(0.5)
	}

	if sess.ScrollOffset < 0 || sess.ScrollOffset >= sess.ViewW {
		t.Errorf("expected offset within [0,%g), got %g", sess.ViewW, sess.ScrollOffset)
	}
}

func TestScrollAdvancesWithLevelSpeed(t *testing.T) {
	ecs := entity.NewECS()
	sess := ecs.Session
	sess.ViewW = 10000
	sess.Speed = 100
	s := NewScrollSystem(ecs)

	s.Update(1.0)

	want := 100 * config.ScrollSpeedFactor
	if sess.ScrollOffset != want {
		t.Errorf("expected offset %g after one second, got %g", want, sess.ScrollOffset)
	}
}
