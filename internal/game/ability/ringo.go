package ability

import (
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/game/effect"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
)

func init() {
	Register(data.AbilityAchillesShot, func() Behavior { return &achillesShot{} })
	Register(data.AbilityTwirlingSilver, func() Behavior { return &twirlingSilver{} })
	Register(data.AbilityHellfireBrew, func() Behavior { return &hellfireBrew{} })
}

// Modifier ids.
const (
	AchillesSlowModifier   = "achilles_slow"
	TwirlingSilverModifier = "twirling_silver"
	HellfireBurnEffect     = "hellfire_burn"
	hellfireCastEffect     = "hellfire_cast"
)

// achillesShot fires a skillshot that damages and slows the first enemy hit.
type achillesShot struct{}

func (a *achillesShot) Execute(s *State, t Target) {
	owner := s.Owner().Entity()
	damage := s.ScaledDamage()
	slow := s.Param("slow")
	slowFor := s.Param("slow_duration")

	s.Owner().World().Launch(owner, owner.Position(), projectile.Spec{
		Kind:        projectile.Linear,
		Speed:       s.Param("projectile_speed"),
		Radius:      s.Template().Radius,
		Direction:   t.Position.Sub(owner.Position()),
		MaxDistance: s.Template().Range,
		OnHit: func(target *model.Entity) {
			s.DealDamage(target, damage)
			if target.IsAlive() {
				target.Stats().ApplyModifier(AchillesSlowModifier, model.StatMoveSpeed, 1-slow, slowFor)
			}
		},
	})
}

// twirlingSilver grants attack speed; while it lasts every basic attack
// shortens the other abilities' cooldowns.
type twirlingSilver struct{}

func (a *twirlingSilver) Execute(s *State, _ Target) {
	s.Owner().Entity().Stats().ApplyModifier(
		TwirlingSilverModifier, model.StatAttackSpeed, 1+s.Param("attack_speed"), s.Param("duration"))
}

func (a *twirlingSilver) OnBasicAttackHit(s *State, _ *model.Entity, _ float64) {
	stats := s.Owner().Entity().Stats()
	m, ok := stats.Modifier(TwirlingSilverModifier)
	if !ok || !m.Live(s.now()) {
		return
	}
	refund := s.Param("refund_per_hit")
	for slot := range data.HeroAbilitySlots {
		if slot == s.Slot() {
			continue
		}
		if other := s.Owner().Ability(slot); other != nil {
			other.ReduceCooldown(refund)
		}
	}
}

// hellfireBrew casts for a moment, then throws a blockable homing bottle
// at an enemy hero that damages and burns whoever it hits.
type hellfireBrew struct{}

func (a *hellfireBrew) ValidateTarget(s *State, t Target) bool {
	return t.Unit.Kind() == model.KindHero && t.Unit.CanBeTargetedBy(s.Owner().Entity())
}

func (a *hellfireBrew) Execute(s *State, t Target) {
	target := t.Unit
	s.Owner().Effects().Schedule(effect.Delay(hellfireCastEffect, func(float64) {
		a.fire(s, target)
	}), s.Param("cast_time"), 0)
}

func (a *hellfireBrew) fire(s *State, target *model.Entity) {
	owner := s.Owner().Entity()
	if !owner.IsAlive() || !target.IsAlive() {
		return
	}
	damage := s.ScaledDamage()
	interval := s.Param("burn_interval")
	perTick := s.Param("burn_per_sec") * interval
	burnFor := s.Param("burn_duration")

	s.Owner().World().Launch(owner, owner.Position(), projectile.Spec{
		Kind:      projectile.Homing,
		Speed:     s.Param("projectile_speed"),
		Radius:    0.5,
		Target:    target,
		Blockable: true,
		OnHit: func(hit *model.Entity) {
			s.DealDamage(hit, damage)
			if !hit.IsAlive() {
				return
			}
			s.Owner().Effects().Schedule(&effect.DamageOverTime{
				ID:      HellfireBurnEffect,
				Source:  owner,
				Target:  hit,
				PerTick: perTick,
				Type:    formula.Crystal,
			}, burnFor, interval)
		},
	})
}
