package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ArmorMonotonic(t *testing.T) {
	prev := Resolve(Request{Amount: 200, Type: Physical}, Defense{Armor: 0, DamageTakenMultiplier: 1}).Amount
	assert.InDelta(t, 200.0, prev, 1e-9)

	for armor := 1.0; armor <= 1000; armor += 7 {
		got := Resolve(Request{Amount: 200, Type: Physical}, Defense{Armor: armor, DamageTakenMultiplier: 1}).Amount
		assert.LessOrEqual(t, got, prev, "armor=%v", armor)
		assert.Less(t, got, 200.0, "armor=%v", armor)
		prev = got
	}
}

func TestEffectiveDefense_FlatBeforePercent(t *testing.T) {
	assert.InDelta(t, 25.0, EffectiveDefense(100, 50, 0.5), 1e-9)
	assert.Equal(t, 0.0, EffectiveDefense(30, 50, 0.5), "flat pierce floors at zero")
}

func TestDamageReduction(t *testing.T) {
	tests := []struct {
		defense float64
		want    float64
	}{
		{0, 0},
		{-20, 0},
		{100, 0.5},
		{20, 20.0 / 120.0},
		{300, 0.75},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, DamageReduction(tt.defense), 1e-9, "defense=%v", tt.defense)
	}
}

func TestResolve_TrueDamageBypass(t *testing.T) {
	for _, def := range []Defense{
		{Armor: 0, Shield: 0, DamageTakenMultiplier: 1},
		{Armor: 500, Shield: 500, DamageTakenMultiplier: 1.3},
		{Armor: 80, Shield: 10, DamageTakenMultiplier: 0.5},
	} {
		got := Resolve(Request{Amount: 120, Type: True, FlatPierce: 40, PercentPierce: 0.9}, def)
		assert.InDelta(t, 120*def.DamageTakenMultiplier, got.Amount, 1e-9)
	}
}

func TestResolve_CrystalUsesShield(t *testing.T) {
	def := Defense{Armor: 0, Shield: 100, DamageTakenMultiplier: 1}
	assert.InDelta(t, 50.0, Resolve(Request{Amount: 100, Type: Crystal}, def).Amount, 1e-9)
	assert.InDelta(t, 100.0, Resolve(Request{Amount: 100, Type: Physical}, def).Amount, 1e-9)
}

func TestResolve_Bounds(t *testing.T) {
	got := Resolve(Request{Amount: -50, Type: Physical}, Defense{Armor: 10, DamageTakenMultiplier: 1})
	assert.Equal(t, 0.0, got.Amount)

	got = Resolve(Request{Amount: 100, Type: Physical, PercentPierce: 4}, Defense{Armor: 60, DamageTakenMultiplier: 1.2})
	assert.InDelta(t, 120.0, got.Amount, 1e-9, "percent pierce clamps to 1")
}

func TestResolve_Invulnerable(t *testing.T) {
	got := Resolve(Request{Amount: 999, Type: True}, Defense{Invulnerable: true, DamageTakenMultiplier: 1})
	assert.True(t, got.Rejected)
	assert.Zero(t, got.Amount)
}

func TestResolve_LethalScenario(t *testing.T) {
	raw := Compose(Scaling{Base: 80, WeaponRatio: 1}, 71, 0, 1)
	assert.InDelta(t, 151.0, raw, 1e-9)

	got := Resolve(Request{Amount: raw, Type: Physical}, Defense{Armor: 20, DamageTakenMultiplier: 1})
	assert.InDelta(t, 125.83, got.Amount, 0.01)
}

func TestCompose(t *testing.T) {
	s := Scaling{Base: 80, WeaponRatio: 0, CrystalRatio: 1.25}
	assert.InDelta(t, (80+1.25*40)*1.15, Compose(s, 71, 40, 1.15), 1e-9)
}

func TestCritAndLifesteal(t *testing.T) {
	assert.Equal(t, 1.5, CritMultiplier(0))
	assert.InDelta(t, 1.75, CritMultiplier(0.25), 1e-9)

	assert.InDelta(t, 8.0, Lifesteal(40, 0.2), 1e-9)
	assert.Zero(t, Lifesteal(0, 0.2))
	assert.Zero(t, Lifesteal(40, 0))
}
