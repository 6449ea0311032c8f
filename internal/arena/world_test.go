package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
)

func entityAt(t *testing.T, clk clock.Clock, w *World, id uint32, kind model.Kind, team model.Team, x float64) *model.Entity {
	t.Helper()
	stats := model.NewStatBlock(clk, testutil.DummyTemplate())
	e := model.NewEntity(id, kind.String(), kind, team, model.Vec3{X: x}, stats)
	require.NoError(t, w.Add(e))
	return e
}

func TestWorld_AddDuplicate(t *testing.T) {
	clk := clock.NewManual(0)
	w := NewWorld(clk)
	e := entityAt(t, clk, w, 1, model.KindMinion, model.TeamBlue, 0)

	require.Error(t, w.Add(e))
	assert.Equal(t, 1, w.Len())

	got, ok := w.Get(1)
	require.True(t, ok)
	assert.Same(t, e, got)
}

func TestWorld_Queries(t *testing.T) {
	clk := clock.NewManual(0)
	w := NewWorld(clk)
	self := entityAt(t, clk, w, 1, model.KindHero, model.TeamBlue, 0)
	ally := entityAt(t, clk, w, 2, model.KindMinion, model.TeamBlue, 2)
	near := entityAt(t, clk, w, 3, model.KindMinion, model.TeamRed, 3)
	far := entityAt(t, clk, w, 4, model.KindMinion, model.TeamRed, 20)
	monster := entityAt(t, clk, w, 5, model.KindMonster, model.TeamNeutral, 4)
	testutil.Kill(entityAt(t, clk, w, 6, model.KindMinion, model.TeamRed, 1), nil)

	enemies := w.EnemiesInRadius(self, self.Position(), 5)
	assert.Equal(t, []*model.Entity{near, monster}, enemies)

	allies := w.AlliesInRadius(self, self.Position(), 5)
	assert.Equal(t, []*model.Entity{ally}, allies)

	got := w.Nearest(self.Position(), 30, func(e *model.Entity) bool { return e.Team() == model.TeamRed })
	assert.Same(t, near, got)
	assert.Nil(t, w.Nearest(model.Vec3{X: 100}, 5, nil))
	assert.NotContains(t, enemies, far)
}

func TestWorld_PruneKeepsDeadHeroes(t *testing.T) {
	clk := clock.NewManual(0)
	w := NewWorld(clk)
	h := entityAt(t, clk, w, 1, model.KindHero, model.TeamBlue, 0)
	m := entityAt(t, clk, w, 2, model.KindMinion, model.TeamRed, 0)
	entityAt(t, clk, w, 3, model.KindMinion, model.TeamRed, 0)
	testutil.Kill(h, nil)
	testutil.Kill(m, nil)

	assert.Equal(t, 1, w.Prune())
	assert.Equal(t, 2, w.Len())
	assert.True(t, m.Removed())
	_, ok := w.Get(2)
	assert.False(t, ok)
	_, ok = w.Get(1)
	assert.True(t, ok)
}

func TestWorld_Remove(t *testing.T) {
	clk := clock.NewManual(0)
	w := NewWorld(clk)
	e := entityAt(t, clk, w, 1, model.KindMinion, model.TeamBlue, 0)

	w.Remove(1)
	w.Remove(1)

	assert.Zero(t, w.Len())
	assert.True(t, e.Removed())
	assert.False(t, e.IsAlive())
}
