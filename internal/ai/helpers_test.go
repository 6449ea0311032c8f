package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/game/ability"
	"github.com/udisondev/arenacore/internal/game/hero"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
)

var (
	testBase = model.Vec3{X: -50}
	testGoal = model.Vec3{X: 50}
)

type testWorld struct {
	*projectile.Manager
	list *testutil.World
}

func (w *testWorld) EnemiesInRadius(of *model.Entity, center model.Vec3, r float64) []*model.Entity {
	var out []*model.Entity
	for _, e := range w.list.Entities() {
		if e.CanBeTargetedBy(of) && e.Position().Distance(center) <= r {
			out = append(out, e)
		}
	}
	return out
}

type testMover struct {
	dest []model.Vec3
}

func (m *testMover) RequestMoveTo(p model.Vec3) { m.dest = append(m.dest, p) }
func (m *testMover) Stop()                      {}

func (m *testMover) last() model.Vec3 {
	if len(m.dest) == 0 {
		return model.Vec3{}
	}
	return m.dest[len(m.dest)-1]
}

type fixture struct {
	t     *testing.T
	clk   *clock.Manual
	list  *testutil.World
	world *testWorld
	mover *testMover
	hero  *hero.Controller
	ai    *HeroAI
}

func newFixture(t *testing.T, heroID string, build ...string) *fixture {
	t.Helper()
	clk := clock.NewManual(100)
	list := &testutil.World{}
	f := &fixture{
		t:     t,
		clk:   clk,
		list:  list,
		world: &testWorld{Manager: projectile.NewManager(clk, list), list: list},
		mover: &testMover{},
	}
	c, err := hero.BuildByID(heroID, model.TeamBlue, model.Vec3{}, hero.Deps{
		ID:    1,
		Clock: clk,
		World: f.world,
		Mover: func(*model.Entity) ability.Mover { return f.mover },
	})
	require.NoError(t, err)
	list.Add(c.Entity())
	f.hero = c
	f.ai = NewHeroAI(c, f.world, Config{Base: testBase, Goal: testGoal, Build: build})
	return f
}

func (f *fixture) enemy(kind model.Kind, x float64) *model.Entity {
	f.t.Helper()
	e := testutil.NewEntity(f.t, f.clk, kind.String(), kind, model.TeamRed, model.Vec3{X: x}, testutil.DummyTemplate())
	f.list.Add(e)
	return e
}

// tick advances time by dt and runs one AI step.
func (f *fixture) tick(dt float64) {
	f.clk.Advance(dt)
	f.ai.Tick(dt)
}
