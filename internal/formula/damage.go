// Package formula holds the pure damage math shared by stat blocks,
// abilities and basic attacks. Nothing here touches entity state.
package formula

import "math"

// DamageType selects which defense stat mitigates a hit.
type DamageType int8

const (
	Physical DamageType = iota // mitigated by armor
	Crystal                    // mitigated by shield
	True                       // ignores defense
)

// String returns the lowercase name used in logs and metric labels.
func (t DamageType) String() string {
	switch t {
	case Physical:
		return "physical"
	case Crystal:
		return "crystal"
	case True:
		return "true"
	default:
		return "unknown"
	}
}

// DefenseConstant is the K in defense/(defense+K). At defense == K damage is halved.
const DefenseConstant = 100.0

// Request is one incoming hit before mitigation.
type Request struct {
	Amount        float64
	Type          DamageType
	FlatPierce    float64
	PercentPierce float64 // 0..1
}

// Defense is the defender snapshot the resolver needs.
type Defense struct {
	Armor                 float64
	Shield                float64
	DamageTakenMultiplier float64
	Invulnerable          bool
}

// Result of resolving one hit.
type Result struct {
	Amount   float64
	Rejected bool // defender was invulnerable, nothing applies
}

// Resolve turns a raw hit into the amount subtracted from health.
//
// Pipeline:
//  1. pick armor (physical) or shield (crystal); true damage skips defense
//  2. defense = max(0, defense - flat) * (1 - percent)
//  3. reduction = defense / (defense + 100)
//  4. final = amount * (1 - reduction) * damageTaken
//
// Flat pierce is applied before percent pierce. Swapping them changes results.
func Resolve(req Request, def Defense) Result {
	if def.Invulnerable {
		return Result{Rejected: true}
	}

	amount := math.Max(0, req.Amount)
	taken := def.DamageTakenMultiplier
	if taken < 0 {
		taken = 0
	}

	if req.Type == True {
		return Result{Amount: amount * taken}
	}

	base := def.Armor
	if req.Type == Crystal {
		base = def.Shield
	}

	eff := EffectiveDefense(base, req.FlatPierce, req.PercentPierce)
	return Result{Amount: amount * (1 - DamageReduction(eff)) * taken}
}

// EffectiveDefense applies flat then percent penetration.
func EffectiveDefense(defense, flatPierce, percentPierce float64) float64 {
	flatPierce = math.Max(0, flatPierce)
	percentPierce = clamp01(percentPierce)

	eff := math.Max(0, defense-flatPierce)
	return eff * (1 - percentPierce)
}

// DamageReduction is the fraction of damage removed by the given defense.
// Negative defense is treated as zero.
func DamageReduction(defense float64) float64 {
	if defense <= 0 {
		return 0
	}
	return defense / (defense + DefenseConstant)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
