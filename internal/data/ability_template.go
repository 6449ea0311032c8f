package data

import "github.com/udisondev/arenacore/internal/formula"

// Targeting определяет, какую цель требует способность.
type Targeting int8

const (
	TargetingInstant     Targeting = iota // no target
	TargetingSkillshot                    // direction given by a position
	TargetingPointTarget                  // ground position
	TargetingUnitTarget                   // entity
	TargetingGlobal                       // position or entity, any range
)

func (t Targeting) String() string {
	switch t {
	case TargetingInstant:
		return "instant"
	case TargetingSkillshot:
		return "skillshot"
	case TargetingPointTarget:
		return "point"
	case TargetingUnitTarget:
		return "unit"
	case TargetingGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// AbilityTemplate - immutable шаблон способности героя.
// Один экземпляр на способность, общий для всех героев.
// НЕ модифицировать после загрузки.
//
// Per-level tables are indexed by level-1 and clamped to their bounds,
// so a single-entry table is a constant.
type AbilityTemplate struct {
	ID        string // registry key of the behavior, "achilles_shot"
	Name      string
	Slot      int
	Ultimate  bool
	Targeting Targeting
	Range     float64
	Radius    float64

	DamageType   formula.DamageType
	WeaponRatio  float64
	CrystalRatio float64

	Damage     []float64
	EnergyCost []float64
	Cooldown   []float64

	// Params holds ability specific leveled values ("slow", "dash_speed").
	Params map[string][]float64
}

// MaxLevel returns the number of levels, taken from the cooldown table.
func (t *AbilityTemplate) MaxLevel() int {
	n := max(len(t.Cooldown), len(t.Damage), len(t.EnergyCost))
	if n == 0 {
		return 1
	}
	return n
}

// At returns table[level-1] clamped to the table bounds, 0 for an empty table.
func At(table []float64, level int) float64 {
	if len(table) == 0 {
		return 0
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// Param returns the named leveled parameter, 0 if absent.
func (t *AbilityTemplate) Param(name string, level int) float64 {
	return At(t.Params[name], level)
}
