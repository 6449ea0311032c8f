package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
)

func TestDirectMover(t *testing.T) {
	clk := clock.NewManual(0)
	e := testutil.NewDummy(t, clk, "walker", model.TeamBlue, model.Vec3{})
	m := NewDirectMover(e, func() float64 { return 2 })

	m.Update(1)
	assert.Equal(t, model.Vec3{}, e.Position(), "idle until asked")

	m.RequestMoveTo(model.Vec3{X: 3})
	m.Update(1)
	assert.InDelta(t, 2, e.Position().X, 1e-9)
	assert.True(t, m.Moving())

	m.Update(1)
	assert.InDelta(t, 3, e.Position().X, 1e-9, "does not overshoot")
	assert.False(t, m.Moving())
}

func TestDirectMover_StopAndDead(t *testing.T) {
	clk := clock.NewManual(0)
	e := testutil.NewDummy(t, clk, "walker", model.TeamBlue, model.Vec3{})
	m := NewDirectMover(e, func() float64 { return 1 })

	m.RequestMoveTo(model.Vec3{X: 10})
	m.Stop()
	m.Update(1)
	assert.Zero(t, e.Position().X)

	m.RequestMoveTo(model.Vec3{X: 10})
	testutil.Kill(e, nil)
	m.Update(1)
	assert.Zero(t, e.Position().X)
}
