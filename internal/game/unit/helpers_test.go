package unit

import (
	"testing"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
)

type testWorld struct {
	*projectile.Manager
	list *testutil.World
}

func (w *testWorld) query(center model.Vec3, r float64, keep func(*model.Entity) bool) []*model.Entity {
	var out []*model.Entity
	for _, e := range w.list.Entities() {
		if keep(e) && e.Position().Distance(center) <= r {
			out = append(out, e)
		}
	}
	return out
}

func (w *testWorld) EnemiesInRadius(of *model.Entity, center model.Vec3, r float64) []*model.Entity {
	return w.query(center, r, func(e *model.Entity) bool { return e.CanBeTargetedBy(of) })
}

func (w *testWorld) AlliesInRadius(of *model.Entity, center model.Vec3, r float64) []*model.Entity {
	return w.query(center, r, func(e *model.Entity) bool { return e.IsAlive() && e.Team() == of.Team() })
}

type fixture struct {
	t     *testing.T
	clk   *clock.Manual
	list  *testutil.World
	world *testWorld
	ids   uint32
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
		ids:   1000,
	}
}

func (f *fixture) nextID() uint32 {
	f.ids++
	return f.ids
}

// unit adds a sturdy dummy of kind for team at x.
func (f *fixture) unit(kind model.Kind, team model.Team, x float64) *model.Entity {
	f.t.Helper()
	tpl := testutil.DummyTemplate()
	tpl.Base.MaxHealth = 10000
	e := testutil.NewEntity(f.t, f.clk, kind.String(), kind, team, model.Vec3{X: x}, tpl)
	f.list.Add(e)
	return e
}

// lost returns how much health e has lost.
func lost(e *model.Entity) float64 {
	return e.Stats().MaxHealth() - e.Stats().Health()
}

func kill(victim, killer *model.Entity) {
	victim.Stats().TakeDamage(model.Hit{Amount: 1e9, Type: formula.True, Source: killer})
}

type rewardee struct {
	gold, xp int
}

func (r *rewardee) GrantReward(gold, xp int) {
	r.gold += gold
	r.xp += xp
}
