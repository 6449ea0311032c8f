package hero

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/ability"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
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
	stops int
	dest  []model.Vec3
}

func (m *testMover) RequestMoveTo(p model.Vec3) { m.dest = append(m.dest, p) }
func (m *testMover) Stop()                      { m.stops++ }

type fixture struct {
	t     *testing.T
	clk   *clock.Manual
	list  *testutil.World
	world *testWorld
	mover *testMover
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewManual(100)
	list := &testutil.World{}
	return &fixture{
		t:     t,
		clk:   clk,
		list:  list,
		world: &testWorld{Manager: projectile.NewManager(clk, list), list: list},
		mover: &testMover{},
	}
}

func (f *fixture) deps() Deps {
	return Deps{
		ID:    1,
		Clock: f.clk,
		World: f.world,
		Mover: func(*model.Entity) ability.Mover { return f.mover },
	}
}

// hero builds heroID on the blue team at the origin.
func (f *fixture) hero(heroID string) *Controller {
	f.t.Helper()
	c, err := BuildByID(heroID, model.TeamBlue, model.Vec3{}, f.deps())
	require.NoError(f.t, err)
	f.list.Add(c.Entity())
	return c
}

// dummy places an armorless red target at x on the lane axis.
func (f *fixture) dummy(x float64) *model.Entity {
	f.t.Helper()
	e := testutil.NewDummy(f.t, f.clk, "dummy", model.TeamRed, model.Vec3{X: x})
	f.list.Add(e)
	return e
}

func mustHero(t *testing.T, id string) *data.HeroTemplate {
	t.Helper()
	h, err := data.Hero(id)
	require.NoError(t, err)
	return h
}

var noHit = combat.HitResult{}
