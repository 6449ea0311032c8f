// Package ability implements the per-slot ability state machine
// (cooldown, energy cost, target validation) and the hero kits.
package ability

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/model"
)

// RangeTolerance is the slack applied to every range check.
const RangeTolerance = 1.1

// neverActivated is the far-past sentinel for lastActivation.
const neverActivated = -1e9

// Status is the observable state of an ability.
type Status int8

const (
	StatusOnCooldown Status = iota
	StatusUnaffordable
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusOnCooldown:
		return "on_cooldown"
	case StatusUnaffordable:
		return "unaffordable"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Targeting aliases data.Targeting so callers do not need the data package.
type Targeting = data.Targeting

// Target is what the input or AI layer supplies to TryActivate.
type Target struct {
	Unit        *model.Entity
	Position    model.Vec3
	HasPosition bool
}

// NoTarget is the empty target for instant abilities.
var NoTarget = Target{}

// AtUnit targets an entity.
func AtUnit(e *model.Entity) Target { return Target{Unit: e} }

// AtPoint targets a ground position.
func AtPoint(p model.Vec3) Target { return Target{Position: p, HasPosition: true} }

// Shape describes the targeting indicator.
type Shape struct {
	Targeting Targeting
	Range     float64
	Radius    float64
}

// State - состояние одной способности героя: уровень, кулдаун, поведение.
// Один State на слот. Время берётся из часов владельца.
type State struct {
	tpl      *data.AbilityTemplate
	owner    Owner
	behavior Behavior

	level          int
	lastActivation float64
}

// New creates the state for tpl, resolving its behavior from the registry.
func New(tpl *data.AbilityTemplate, owner Owner) (*State, error) {
	b, err := newBehavior(tpl.ID)
	if err != nil {
		return nil, fmt.Errorf("ability %s: %w", tpl.Name, err)
	}
	return &State{
		tpl:            tpl,
		owner:          owner,
		behavior:       b,
		level:          1,
		lastActivation: neverActivated,
	}, nil
}

func (s *State) Template() *data.AbilityTemplate { return s.tpl }
func (s *State) Owner() Owner                    { return s.owner }
func (s *State) Behavior() Behavior              { return s.behavior }
func (s *State) Name() string                    { return s.tpl.Name }
func (s *State) Slot() int                       { return s.tpl.Slot }
func (s *State) Level() int                      { return s.level }
func (s *State) MaxLevel() int                   { return s.tpl.MaxLevel() }

// LastActivation returns when the cooldown last started.
func (s *State) LastActivation() float64 { return s.lastActivation }

// LevelUp raises the level up to the cap. The running cooldown is untouched.
func (s *State) LevelUp() bool {
	if s.level >= s.MaxLevel() {
		return false
	}
	s.level++
	slog.Debug("ability level up",
		"ability", s.tpl.ID,
		"level", s.level)
	return true
}

// --- leveled values ---

func (s *State) Damage() float64     { return data.At(s.tpl.Damage, s.level) }
func (s *State) EnergyCost() float64 { return data.At(s.tpl.EnergyCost, s.level) }
func (s *State) Cooldown() float64   { return data.At(s.tpl.Cooldown, s.level) }

// Param returns a leveled ability parameter.
func (s *State) Param(name string) float64 { return s.tpl.Param(name, s.level) }

// EffectiveCooldown applies the owner's cooldown reduction.
func (s *State) EffectiveCooldown() float64 {
	return s.Cooldown() * (1 - s.owner.CooldownReduction())
}

// --- readiness ---

func (s *State) now() float64 { return s.owner.Clock().Now() }

// ReadyAt returns the instant the ability becomes ready.
func (s *State) ReadyAt() float64 {
	return s.lastActivation + s.EffectiveCooldown()
}

// IsReady reports whether the cooldown has elapsed.
func (s *State) IsReady() bool {
	return s.now() >= s.ReadyAt()
}

// CanAfford reports whether the owner has enough energy.
func (s *State) CanAfford() bool {
	return s.owner.Entity().Stats().HasEnergy(s.EnergyCost())
}

// RemainingCooldown returns seconds until ready, 0 when ready.
func (s *State) RemainingCooldown() float64 {
	return math.Max(0, s.ReadyAt()-s.now())
}

// CooldownPercent returns the remaining share of the cooldown in [0,1].
func (s *State) CooldownPercent() float64 {
	cd := s.EffectiveCooldown()
	if cd <= 0 {
		return 0
	}
	return math.Min(1, s.RemainingCooldown()/cd)
}

// Status combines readiness and affordability.
func (s *State) Status() Status {
	switch {
	case !s.IsReady():
		return StatusOnCooldown
	case !s.CanAfford():
		return StatusUnaffordable
	default:
		return StatusReady
	}
}

// IndicatorShape returns what the targeting indicator should draw.
func (s *State) IndicatorShape() Shape {
	return Shape{Targeting: s.tpl.Targeting, Range: s.tpl.Range, Radius: s.tpl.Radius}
}

// ReduceCooldown makes the ability ready d seconds sooner.
func (s *State) ReduceCooldown(d float64) {
	if d <= 0 {
		return
	}
	s.lastActivation = math.Max(neverActivated, s.lastActivation-d)
}

// ResetCooldown makes the ability ready immediately.
func (s *State) ResetCooldown() {
	s.lastActivation = neverActivated
}

// --- activation ---

// TryActivate runs the activation protocol. Cost is paid and the
// cooldown started before the behavior executes, so Execute always
// observes the ability as on cooldown.
//
// Returns false without any mutation when the ability is on cooldown,
// unaffordable, or the target is invalid.
func (s *State) TryActivate(t Target) bool {
	owner := s.owner.Entity()
	if !owner.IsAlive() || s.level < 1 {
		return false
	}
	if !s.IsReady() {
		return false
	}
	if !s.CanAfford() {
		return false
	}
	if !s.ValidateTarget(t) {
		return false
	}

	if !owner.Stats().UseEnergy(s.EnergyCost()) {
		return false
	}
	s.lastActivation = s.now()

	slog.Debug("ability activated",
		"owner", owner,
		"ability", s.tpl.ID,
		"level", s.level)

	s.behavior.Execute(s, t)
	owner.NotifyAbilityActivated(s.tpl.Slot)
	return true
}

// ValidateTarget runs the base check for the targeting mode, then the
// behavior override if any.
func (s *State) ValidateTarget(t Target) bool {
	if !s.baseTargetCheck(t) {
		return false
	}
	if v, ok := s.behavior.(TargetValidator); ok {
		return v.ValidateTarget(s, t)
	}
	return true
}

func (s *State) baseTargetCheck(t Target) bool {
	pos := s.owner.Entity().Position()
	limit := s.tpl.Range * RangeTolerance

	switch s.tpl.Targeting {
	case data.TargetingInstant:
		return true
	case data.TargetingSkillshot, data.TargetingPointTarget:
		return t.HasPosition && pos.Distance(t.Position) <= limit
	case data.TargetingUnitTarget:
		return t.Unit != nil && t.Unit.IsAlive() && pos.Distance(t.Unit.Position()) <= limit
	case data.TargetingGlobal:
		return t.HasPosition || t.Unit != nil
	default:
		return false
	}
}

// --- per tick ---

// Update advances staged phases (dashes, pulls).
func (s *State) Update(dt float64) {
	if u, ok := s.behavior.(Updater); ok {
		u.Update(s, dt)
	}
}

// Channeling reports whether a dash or pull owns the hero's movement.
func (s *State) Channeling() bool {
	c, ok := s.behavior.(Channeler)
	return ok && c.Channeling()
}

// OnBasicAttackHit forwards a landed basic attack to the behavior.
func (s *State) OnBasicAttackHit(target *model.Entity, dealt float64) {
	if h, ok := s.behavior.(BasicAttackHook); ok {
		h.OnBasicAttackHit(s, target, dealt)
	}
}

// --- damage helpers ---

// ScaledDamage composes the level damage with the owner's power and
// damage-dealt multiplier.
func (s *State) ScaledDamage() float64 {
	return formula.Compose(formula.Scaling{
		Base:         s.Damage(),
		WeaponRatio:  s.tpl.WeaponRatio,
		CrystalRatio: s.tpl.CrystalRatio,
	}, s.owner.WeaponPower(), s.owner.CrystalPower(),
		s.owner.Entity().Stats().DamageDealtMultiplier())
}

// DealDamage applies amount of the ability damage type to target with
// the owner's penetration. Returns the health actually removed.
func (s *State) DealDamage(target *model.Entity, amount float64) float64 {
	if !target.IsAlive() {
		return 0
	}
	flat, pct := s.owner.Pierce(s.tpl.DamageType)
	before := target.Stats().Health()
	target.Stats().TakeDamage(model.Hit{
		Amount:        amount,
		Type:          s.tpl.DamageType,
		Source:        s.owner.Entity(),
		FlatPierce:    flat,
		PercentPierce: pct,
	})
	return before - target.Stats().Health()
}
