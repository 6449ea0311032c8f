// Package combat resolves basic attacks: damage composition, critical
// strikes, penetration and lifesteal on the actual health delta.
package combat

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/model"
)

// Attacker is a snapshot of everything a basic attack reads from its
// source. The hero controller fills it from StatBlock, inventory and passive.
type Attacker struct {
	Entity *model.Entity

	ItemWeaponPower float64 // flat addend from items
	CritChance      float64
	CritDamage      float64 // bonus over BaseCritMultiplier
	Lifesteal       float64
	FlatPierce      float64
	PercentPierce   float64

	// GuaranteedCrit is the multiplier of a passive that forces a crit,
	// 0 when none fired. It takes priority over the chance crit.
	GuaranteedCrit float64

	// PassiveMultiplier scales the final amount, 0 means 1.
	PassiveMultiplier float64
}

// HitResult содержит результат одной атаки для наблюдения в тестах.
type HitResult struct {
	AttackerID uint32
	TargetID   uint32
	Raw        float64 // amount sent to the resolver
	Dealt      float64 // health actually removed
	Healed     float64 // lifesteal
	Crit       bool
	Guaranteed bool
	Killed     bool
}

// CalcBasicAttackDamage composes basic attack damage.
//
// Parameters:
//   - a: attacker snapshot
//   - roll: uniform [0,1) sample for the chance crit
//
// Returns raw damage before mitigation and which crit applied.
func CalcBasicAttackDamage(a Attacker, roll float64) (raw float64, crit, guaranteed bool) {
	stats := a.Entity.Stats()
	raw = (stats.WeaponPower() + a.ItemWeaponPower) * stats.DamageDealtMultiplier()

	switch {
	case a.GuaranteedCrit > 0:
		raw *= a.GuaranteedCrit
		crit, guaranteed = true, true
	case roll < a.CritChance:
		raw *= formula.CritMultiplier(a.CritDamage)
		crit = true
	}

	if a.PassiveMultiplier > 0 {
		raw *= a.PassiveMultiplier
	}
	return raw, crit, guaranteed
}

// EffectiveAttackSpeed composes the modifier layer with the additive item layer.
func EffectiveAttackSpeed(stats *model.StatBlock, itemAttackSpeed float64) float64 {
	return stats.AttackSpeed() * (1 + itemAttackSpeed)
}

// AttackInterval returns seconds between attacks, +Inf when attacks are impossible.
func AttackInterval(attackSpeed float64) float64 {
	if attackSpeed <= 0 {
		return math.Inf(1)
	}
	return 1 / attackSpeed
}

// Resolver performs basic attacks with an injected random source.
type Resolver struct {
	rng *rand.Rand

	// hitObserver - callback для наблюдения за результатами атак (nil в production).
	hitObserver func(HitResult)
}

// NewResolver creates a resolver. A nil rng disables chance crits.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// NewSeededResolver creates a deterministic resolver from seed.
func NewSeededResolver(seed uint64) *Resolver {
	return NewResolver(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// SetHitObserver sets a callback invoked after every resolved attack.
func (r *Resolver) SetHitObserver(fn func(HitResult)) {
	r.hitObserver = fn
}

func (r *Resolver) roll() float64 {
	if r.rng == nil {
		return 1
	}
	return r.rng.Float64()
}

// BasicAttack resolves one basic attack of a on target.
// Lifesteal heals from the observed health delta, so overkill and the
// target's damage-taken modifiers are respected.
func (r *Resolver) BasicAttack(a Attacker, target *model.Entity) HitResult {
	res := HitResult{AttackerID: a.Entity.ID(), TargetID: target.ID()}
	if !a.Entity.IsAlive() || !target.IsAlive() {
		return res
	}

	raw, crit, guaranteed := CalcBasicAttackDamage(a, r.roll())
	res.Raw, res.Crit, res.Guaranteed = raw, crit, guaranteed

	before := target.Stats().Health()
	target.Stats().TakeDamage(model.Hit{
		Amount:        raw,
		Type:          formula.Physical,
		Source:        a.Entity,
		FlatPierce:    a.FlatPierce,
		PercentPierce: a.PercentPierce,
	})
	res.Dealt = before - target.Stats().Health()
	res.Killed = !target.IsAlive()

	if heal := formula.Lifesteal(res.Dealt, a.Lifesteal); heal > 0 {
		a.Entity.Stats().Heal(heal)
		res.Healed = heal
	}

	slog.Debug("basic attack",
		"attacker", a.Entity,
		"target", target,
		"raw", raw,
		"dealt", res.Dealt,
		"crit", crit)

	if r.hitObserver != nil {
		r.hitObserver(res)
	}
	return res
}
