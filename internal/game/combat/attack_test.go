package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
)

func attackerTemplate() model.StatTemplate {
	tpl := testutil.DummyTemplate()
	tpl.Base.WeaponPower = 100
	return tpl
}

func setup(t *testing.T) (*clock.Manual, *model.Entity, *model.Entity) {
	t.Helper()
	clk := clock.NewManual(0)
	a := testutil.NewEntity(t, clk, "ringo", model.KindHero, model.TeamBlue, model.Vec3{}, attackerTemplate())
	d := testutil.NewDummy(t, clk, "krul", model.TeamRed, model.Vec3{X: 2})
	return clk, a, d
}

func TestCalcBasicAttackDamage(t *testing.T) {
	_, a, _ := setup(t)

	tests := []struct {
		name     string
		attacker Attacker
		roll     float64
		want     float64
		crit     bool
		forced   bool
	}{
		{"plain", Attacker{Entity: a}, 0.5, 100, false, false},
		{"item addend", Attacker{Entity: a, ItemWeaponPower: 20}, 0.5, 120, false, false},
		{"chance crit", Attacker{Entity: a, CritChance: 0.6}, 0.5, 150, true, false},
		{"crit damage bonus", Attacker{Entity: a, CritChance: 1, CritDamage: 0.25}, 0.99, 175, true, false},
		{"roll misses", Attacker{Entity: a, CritChance: 0.2}, 0.5, 100, false, false},
		{"guaranteed wins", Attacker{Entity: a, CritChance: 1, GuaranteedCrit: 1.8}, 0, 180, true, true},
		{"passive multiplier", Attacker{Entity: a, PassiveMultiplier: 1.25}, 0.5, 125, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, crit, forced := CalcBasicAttackDamage(tt.attacker, tt.roll)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.crit, crit)
			assert.Equal(t, tt.forced, forced)
		})
	}
}

func TestCalcBasicAttackDamage_DealtMultiplierAfterAddend(t *testing.T) {
	_, a, _ := setup(t)
	a.Stats().ApplyModifier("buff", model.StatDamageDealt, 1.5, -1)

	got, _, _ := CalcBasicAttackDamage(Attacker{Entity: a, ItemWeaponPower: 20}, 1)

	assert.InDelta(t, 180.0, got, 1e-9, "(100 + 20) × 1.5")
}

func TestBasicAttack_LifestealUsesActualDelta(t *testing.T) {
	_, a, d := setup(t)
	d.Stats().TakeDamage(model.Hit{Amount: 960})
	a.Stats().TakeDamage(model.Hit{Amount: 500})
	require.Equal(t, 40.0, d.Stats().Health())

	r := NewResolver(nil)
	res := r.BasicAttack(Attacker{Entity: a, Lifesteal: 0.2}, d)

	assert.Equal(t, 100.0, res.Raw)
	assert.Equal(t, 40.0, res.Dealt)
	assert.InDelta(t, 8.0, res.Healed, 1e-9)
	assert.InDelta(t, 508.0, a.Stats().Health(), 1e-9)
	assert.True(t, res.Killed)
	assert.Same(t, a, d.Stats().LastDamageSource())
}

func TestBasicAttack_Pierce(t *testing.T) {
	clk, a, _ := setup(t)
	tpl := testutil.DummyTemplate()
	tpl.Base.Armor = 100
	d := testutil.NewEntity(t, clk, "tank", model.KindHero, model.TeamRed, model.Vec3{}, tpl)

	res := NewResolver(nil).BasicAttack(Attacker{Entity: a, FlatPierce: 50, PercentPierce: 0.5}, d)

	assert.InDelta(t, 100*(1-25.0/125), res.Dealt, 1e-9)
}

func TestBasicAttack_DeadTargetNoop(t *testing.T) {
	_, a, d := setup(t)
	d.Stats().TakeDamage(model.Hit{Amount: 5000})

	var observed []HitResult
	r := NewResolver(nil)
	r.SetHitObserver(func(h HitResult) { observed = append(observed, h) })
	res := r.BasicAttack(Attacker{Entity: a}, d)

	assert.Zero(t, res.Dealt)
	assert.Empty(t, observed)
}

func TestSeededResolver_Deterministic(t *testing.T) {
	rolls := func() []bool {
		_, a, d := setup(t)
		r := NewSeededResolver(42)
		var out []bool
		for range 5 {
			out = append(out, r.BasicAttack(Attacker{Entity: a, CritChance: 0.5}, d).Crit)
			d.Stats().FullHeal()
		}
		return out
	}

	assert.Equal(t, rolls(), rolls())
}

func TestEffectiveAttackSpeed_TwoTier(t *testing.T) {
	_, a, _ := setup(t)
	a.Stats().ApplyModifier("twirling_silver", model.StatAttackSpeed, 1.5, 6)

	as := EffectiveAttackSpeed(a.Stats(), 0.2)

	assert.InDelta(t, 1.8, as, 1e-9, "1 × 1.5 × (1 + 0.2)")
	assert.InDelta(t, 1/1.8, AttackInterval(as), 1e-9)
	assert.True(t, math.IsInf(AttackInterval(0), 1))
}
