package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
)

const (
	stubAbility      = "test_stub"
	reentrantAbility = "test_reentrant"
)

// stub records executions.
type stub struct {
	executed []Target
}

func (p *stub) Execute(_ *State, t Target) { p.executed = append(p.executed, t) }

// reentrant tries to activate itself again from inside Execute.
type reentrant struct {
	readyInside  bool
	secondResult bool
	energyInside float64
}

func (r *reentrant) Execute(s *State, t Target) {
	r.readyInside = s.IsReady()
	r.energyInside = s.Owner().Entity().Stats().Energy()
	r.secondResult = s.TryActivate(t)
}

func init() {
	Register(stubAbility, func() Behavior { return &stub{} })
	Register(reentrantAbility, func() Behavior { return &reentrant{} })
}

func stubTemplate(targeting data.Targeting) *data.AbilityTemplate {
	return &data.AbilityTemplate{
		ID:         stubAbility,
		Name:       "Stub",
		Slot:       0,
		Targeting:  targeting,
		Range:      10,
		Damage:     []float64{80, 120, 160},
		EnergyCost: []float64{40, 50, 60},
		Cooldown:   []float64{9, 8, 7},
	}
}

func TestTryActivate_PaysAndStartsCooldown(t *testing.T) {
	o := newOwner(t)
	rec := testutil.Listen(o.e)
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))

	require.Equal(t, StatusReady, s.Status())
	require.True(t, s.TryActivate(NoTarget))

	assert.Equal(t, 460.0, o.e.Stats().Energy())
	assert.False(t, s.IsReady())
	assert.Equal(t, StatusOnCooldown, s.Status())
	assert.InDelta(t, 9.0, s.RemainingCooldown(), 1e-9)
	assert.Equal(t, []int{0}, rec.Abilities)
	assert.Len(t, s.Behavior().(*stub).executed, 1)
}

func TestCooldown_ReadyExactlyAtBoundary(t *testing.T) {
	o := newOwner(t)
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))
	require.True(t, s.TryActivate(NoTarget))

	o.clk.Advance(8.95)
	assert.False(t, s.IsReady(), "one tick early")
	assert.False(t, s.TryActivate(NoTarget))

	o.clk.Set(109)
	assert.True(t, s.IsReady())
	assert.True(t, s.TryActivate(NoTarget))
}

func TestCooldown_Reduction(t *testing.T) {
	o := newOwner(t)
	o.cdr = 0.4
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))
	require.True(t, s.TryActivate(NoTarget))

	assert.InDelta(t, 5.4, s.EffectiveCooldown(), 1e-9)
	o.clk.Set(105.3)
	assert.False(t, s.IsReady())
	o.clk.Set(105.5)
	assert.True(t, s.IsReady())
}

func TestTryActivate_UnaffordableNoMutation(t *testing.T) {
	o := newOwner(t)
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))
	require.True(t, o.e.Stats().UseEnergy(470))

	assert.Equal(t, StatusUnaffordable, s.Status())
	assert.False(t, s.TryActivate(NoTarget))
	assert.Equal(t, 30.0, o.e.Stats().Energy())
	assert.True(t, s.IsReady())
	assert.Empty(t, s.Behavior().(*stub).executed)
}

func TestTryActivate_DeadOwner(t *testing.T) {
	o := newOwner(t)
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))
	o.e.Stats().TakeDamage(model.Hit{Amount: 5000})

	assert.False(t, s.TryActivate(NoTarget))
	assert.Empty(t, s.Behavior().(*stub).executed)
}

func TestValidateTarget_Modes(t *testing.T) {
	o := newOwner(t)
	near := o.enemy("near", model.Vec3{X: 10.9})
	far := o.enemy("far", model.Vec3{X: 11.2})

	tests := []struct {
		name      string
		targeting data.Targeting
		target    Target
		want      bool
	}{
		{"instant without target", data.TargetingInstant, NoTarget, true},
		{"skillshot needs position", data.TargetingSkillshot, NoTarget, false},
		{"skillshot inside tolerance", data.TargetingSkillshot, AtPoint(model.Vec3{X: 11}), true},
		{"skillshot outside tolerance", data.TargetingSkillshot, AtPoint(model.Vec3{X: 11.1}), false},
		{"point inside range", data.TargetingPointTarget, AtPoint(model.Vec3{Z: 5}), true},
		{"unit needs unit", data.TargetingUnitTarget, AtPoint(model.Vec3{X: 1}), false},
		{"unit inside tolerance", data.TargetingUnitTarget, AtUnit(near), true},
		{"unit outside tolerance", data.TargetingUnitTarget, AtUnit(far), false},
		{"global any range", data.TargetingGlobal, AtPoint(model.Vec3{X: 500}), true},
		{"global unit", data.TargetingGlobal, AtUnit(far), true},
		{"global nothing", data.TargetingGlobal, NoTarget, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := o.equipTemplate(stubTemplate(tt.targeting))
			assert.Equal(t, tt.want, s.ValidateTarget(tt.target))
		})
	}
}

func TestTryActivate_InvalidTargetPaysNothing(t *testing.T) {
	o := newOwner(t)
	s := o.equipTemplate(stubTemplate(data.TargetingSkillshot))

	assert.False(t, s.TryActivate(AtPoint(model.Vec3{X: 20})))
	assert.Equal(t, 500.0, o.e.Stats().Energy())
	assert.True(t, s.IsReady())
}

func TestTryActivate_ExecuteSeesCooldown(t *testing.T) {
	o := newOwner(t)
	tpl := stubTemplate(data.TargetingInstant)
	tpl.ID = reentrantAbility
	s := o.equipTemplate(tpl)

	require.True(t, s.TryActivate(NoTarget))

	r := s.Behavior().(*reentrant)
	assert.False(t, r.readyInside)
	assert.False(t, r.secondResult, "re-entrant activation must fail")
	assert.Equal(t, 460.0, r.energyInside, "cost paid before execution")
	assert.Equal(t, 460.0, o.e.Stats().Energy())
}

func TestReduceAndResetCooldown(t *testing.T) {
	o := newOwner(t)
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))
	require.True(t, s.TryActivate(NoTarget))

	s.ReduceCooldown(3)
	assert.InDelta(t, 6.0, s.RemainingCooldown(), 1e-9)
	s.ReduceCooldown(-5)
	assert.InDelta(t, 6.0, s.RemainingCooldown(), 1e-9)

	s.ResetCooldown()
	assert.True(t, s.IsReady())
	assert.Zero(t, s.CooldownPercent())
}

func TestReduceCooldown_ClampedAtNeverActivated(t *testing.T) {
	o := newOwner(t)
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))

	s.ReduceCooldown(1e12)
	assert.Equal(t, neverActivated, s.LastActivation())
	assert.True(t, s.IsReady())

	require.True(t, s.TryActivate(NoTarget))
	s.ReduceCooldown(1e12)
	assert.Equal(t, neverActivated, s.LastActivation())
	assert.True(t, s.IsReady())
}

func TestLevelUp(t *testing.T) {
	o := newOwner(t)
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))
	require.True(t, s.TryActivate(NoTarget))
	ready := s.LastActivation()

	assert.True(t, s.LevelUp())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 120.0, s.Damage())
	assert.Equal(t, 50.0, s.EnergyCost())
	assert.Equal(t, 8.0, s.Cooldown())
	assert.Equal(t, ready, s.LastActivation(), "timer untouched")

	assert.True(t, s.LevelUp())
	assert.False(t, s.LevelUp(), "capped at table length")
	assert.Equal(t, 3, s.Level())
}

func TestCooldownPercent(t *testing.T) {
	o := newOwner(t)
	s := o.equipTemplate(stubTemplate(data.TargetingInstant))
	require.True(t, s.TryActivate(NoTarget))

	assert.InDelta(t, 1.0, s.CooldownPercent(), 1e-9)
	o.clk.Advance(4.5)
	assert.InDelta(t, 0.5, s.CooldownPercent(), 1e-9)
}

func TestIndicatorShape(t *testing.T) {
	o := newOwner(t)
	s := o.equip(data.AbilityAchillesShot)

	assert.Equal(t, Shape{Targeting: data.TargetingSkillshot, Range: 10, Radius: 0.5}, s.IndicatorShape())
}

func TestNew_UnknownBehavior(t *testing.T) {
	o := newOwner(t)
	tpl := stubTemplate(data.TargetingInstant)
	tpl.ID = "no_such_ability"

	_, err := New(tpl, o)
	assert.ErrorIs(t, err, data.ErrUnknownAbility)
}

func TestEveryAbilityHasBehavior(t *testing.T) {
	for _, id := range data.AbilityIDs() {
		assert.True(t, Registered(id), id)
	}
}
