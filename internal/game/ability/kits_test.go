package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
)

func TestAchillesShot_DamagesAndSlows(t *testing.T) {
	o := newOwner(t)
	enemy := o.enemy("krul", model.Vec3{X: 5})
	s := o.equip(data.AbilityAchillesShot)

	require.True(t, s.TryActivate(AtPoint(enemy.Position())))
	o.run(10, 0.05)

	assert.InDelta(t, 1000-142.5, enemy.Stats().Health(), 1e-9, "80 + 50×1.25 crystal")
	assert.InDelta(t, 0.7, enemy.Stats().MoveSpeedMultiplier(), 1e-9)
	assert.Same(t, o.e, enemy.Stats().LastDamageSource())
}

func TestTwirlingSilver_RefundsOtherCooldowns(t *testing.T) {
	o := newOwner(t)
	enemy := o.enemy("krul", model.Vec3{X: 5})
	shot := o.equip(data.AbilityAchillesShot)
	silver := o.equip(data.AbilityTwirlingSilver)

	require.True(t, shot.TryActivate(AtPoint(enemy.Position())))
	require.True(t, silver.TryActivate(NoTarget))
	assert.InDelta(t, 1.5, o.e.Stats().AttackSpeedMultiplier(), 1e-9)

	silver.OnBasicAttackHit(enemy, 50)
	assert.InDelta(t, 8.4, shot.RemainingCooldown(), 1e-9)
	assert.InDelta(t, 12.0, silver.RemainingCooldown(), 1e-9, "own cooldown untouched")

	o.clk.Advance(6.5)
	assert.InDelta(t, 1.0, o.e.Stats().AttackSpeedMultiplier(), 1e-9)
	before := shot.RemainingCooldown()
	silver.OnBasicAttackHit(enemy, 50)
	assert.InDelta(t, before, shot.RemainingCooldown(), 1e-9, "no refund after buff expiry")
}

func TestHellfireBrew_EnemyHeroOnly(t *testing.T) {
	o := newOwner(t)
	minion := testutil.NewEntity(t, o.clk, "minion", model.KindMinion, model.TeamRed, model.Vec3{X: 5}, testutil.DummyTemplate())
	ally := testutil.NewDummy(t, o.clk, "ally", model.TeamBlue, model.Vec3{X: 5})
	s := o.equip(data.AbilityHellfireBrew)

	assert.False(t, s.TryActivate(AtUnit(minion)))
	assert.False(t, s.TryActivate(AtUnit(ally)))
	assert.Equal(t, 500.0, o.e.Stats().Energy())
}

func TestHellfireBrew_CastThenBurn(t *testing.T) {
	o := newOwner(t)
	enemy := o.enemy("krul", model.Vec3{X: 6})
	s := o.equip(data.AbilityHellfireBrew)

	require.True(t, s.TryActivate(AtUnit(enemy)))
	o.run(4, 0.1)
	assert.Zero(t, o.world.Len(), "still casting")

	o.run(56, 0.1)
	assert.InDelta(t, 1000-315-6*15, enemy.Stats().Health(), 1e-6, "impact plus six burn ticks")
}

func TestHellfireBrew_CastCancelledByDeath(t *testing.T) {
	o := newOwner(t)
	enemy := o.enemy("krul", model.Vec3{X: 6})
	s := o.equip(data.AbilityHellfireBrew)

	require.True(t, s.TryActivate(AtUnit(enemy)))
	enemy.Stats().TakeDamage(model.Hit{Amount: 5000})
	o.run(10, 0.1)

	assert.Zero(t, o.world.Len())
}

func TestDeadMansRush_DashHitAndSlow(t *testing.T) {
	o := newOwner(t)
	enemy := o.enemy("ringo", model.Vec3{X: 4})
	s := o.equip(data.AbilityDeadMansRush)

	require.True(t, s.TryActivate(AtUnit(enemy)))
	assert.True(t, s.Channeling())
	assert.Equal(t, 1, o.mover.stops)

	o.run(10, 0.05)

	assert.False(t, s.Channeling())
	assert.InDelta(t, 1000-170.0, enemy.Stats().Health(), 1e-9, "60 + 100×1.1")
	assert.InDelta(t, 0.6, enemy.Stats().MoveSpeedMultiplier(), 1e-9)
	assert.LessOrEqual(t, o.e.DistanceTo(enemy), 1.5)
}

func TestDeadMansRush_Timeout(t *testing.T) {
	o := newOwner(t)
	enemy := o.enemy("ringo", model.Vec3{X: 4})
	s := o.equip(data.AbilityDeadMansRush)
	require.True(t, s.TryActivate(AtUnit(enemy)))

	for range 20 {
		enemy.SetPosition(enemy.Position().Add(model.Vec3{X: 1}))
		o.run(1, 0.05)
	}

	assert.False(t, s.Channeling(), "gave up after travel time plus margin")
	assert.Equal(t, 1000.0, enemy.Stats().Health())
}

func TestDeadMansRush_TargetLost(t *testing.T) {
	o := newOwner(t)
	enemy := o.enemy("ringo", model.Vec3{X: 4})
	s := o.equip(data.AbilityDeadMansRush)
	require.True(t, s.TryActivate(AtUnit(enemy)))

	o.run(1, 0.05)
	enemy.Remove()
	o.run(1, 0.05)

	assert.False(t, s.Channeling())
}

func TestSpectralSmite_ConsumesStacks(t *testing.T) {
	o := newOwner(t)
	passive := &stubPassive{weakness: 3}
	o.passive = passive
	enemy := o.enemy("ringo", model.Vec3{X: 2})
	s := o.equip(data.AbilitySpectralSmite)
	o.e.Stats().TakeDamage(model.Hit{Amount: 200})

	require.True(t, s.TryActivate(AtUnit(enemy)))

	assert.InDelta(t, 1000-210.0, enemy.Stats().Health(), 1e-9, "40 + 70 + 40 + 3×20")
	assert.InDelta(t, 800+95.0, o.e.Stats().Health(), 1e-9, "50 + 3×15")
	assert.Equal(t, []*model.Entity{enemy}, passive.consumed)
}

func TestFromHellsHeart_StunAndPull(t *testing.T) {
	o := newOwner(t)
	minion := testutil.NewEntity(t, o.clk, "minion", model.KindMinion, model.TeamRed, model.Vec3{X: 3}, testutil.DummyTemplate())
	o.entities.Add(minion)
	enemy := o.enemy("ringo", model.Vec3{X: 8})
	s := o.equip(data.AbilityFromHellsHeart)

	require.True(t, s.TryActivate(AtPoint(enemy.Position())))
	o.run(12, 0.05)

	stun, ok := enemy.Stats().Modifier(FromHellsHeartStun)
	require.True(t, ok)
	assert.Zero(t, stun.Multiplier)
	assert.Zero(t, enemy.Stats().MoveSpeedMultiplier())

	o.run(28, 0.05)

	assert.Equal(t, 1000.0, minion.Stats().Health(), "hook ignores minions")
	assert.InDelta(t, 1000-350.0, enemy.Stats().Health(), 1e-9)
	assert.LessOrEqual(t, o.e.DistanceTo(enemy), 1.5, "pulled next to the target")
	assert.False(t, s.Channeling())
}

func TestKaiten_ThroughTarget(t *testing.T) {
	o := newOwner(t)
	passive := &stubPassive{}
	o.passive = passive
	enemy := o.enemy("krul", model.Vec3{X: 3})
	s := o.equip(data.AbilityKaiten)

	require.True(t, s.TryActivate(AtUnit(enemy)))
	o.run(20, 0.05)

	assert.False(t, s.Channeling())
	assert.InDelta(t, 5.0, o.e.Position().X, 1e-9, "ends beyond the target")
	assert.InDelta(t, 1000-260.0, enemy.Stats().Health(), 1e-9, "hit once")
	assert.Equal(t, 1, passive.ki)
}

func TestKaku_StealthSpeedAndKi(t *testing.T) {
	o := newOwner(t)
	passive := &stubPassive{}
	o.passive = passive
	s := o.equip(data.AbilityKaku)

	require.True(t, s.TryActivate(NoTarget))

	assert.Equal(t, 3.0, passive.stealthFor)
	assert.Equal(t, 40.0, passive.stealthHPS)
	assert.Equal(t, 1, passive.ki)
	assert.InDelta(t, 1.2, o.e.Stats().MoveSpeedMultiplier(), 1e-9)
}

func TestXRetsu_ExecuteBonus(t *testing.T) {
	tpl := testutil.DummyTemplate()
	tpl.Base.MaxHealth = 2000

	tests := []struct {
		name   string
		predmg float64
		wantHP float64
	}{
		{"healthy target", 0, 2000 - 505},
		{"low target", 1100, 900 - 505*1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOwner(t)
			o.passive = &stubPassive{}
			enemy := testutil.NewEntity(t, o.clk, "ringo", model.KindHero, model.TeamRed, model.Vec3{X: 5}, tpl)
			o.entities.Add(enemy)
			if tt.predmg > 0 {
				enemy.Stats().TakeDamage(model.Hit{Amount: tt.predmg})
			}
			s := o.equip(data.AbilityXRetsu)

			require.True(t, s.TryActivate(AtUnit(enemy)))
			o.run(10, 0.05)

			assert.InDelta(t, tt.wantHP, enemy.Stats().Health(), 1e-9)
		})
	}
}

func TestUnitAbilities_RejectAllies(t *testing.T) {
	o := newOwner(t)
	ally := testutil.NewDummy(t, o.clk, "ally", model.TeamBlue, model.Vec3{X: 2})

	for _, id := range []string{data.AbilityDeadMansRush, data.AbilitySpectralSmite, data.AbilityKaiten, data.AbilityXRetsu} {
		s := o.equip(id)
		assert.False(t, s.TryActivate(AtUnit(ally)), id)
	}
}
