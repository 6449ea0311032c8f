package ai

import (
	"context"
	"errors"
	"log/slog"

	"github.com/looplab/fsm"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/ability"
	"github.com/udisondev/arenacore/internal/model"
)

// States of the hero AI.
const (
	StateIdle       = "idle"
	StateFarming    = "farming"
	StatePushing    = "pushing"
	StateFighting   = "fighting"
	StateRetreating = "retreating"
)

// Events of the hero AI.
const (
	EventFarm    = "farm"
	EventPush    = "push"
	EventFight   = "fight"
	EventRetreat = "retreat"
	EventReset   = "reset"
)

// Behavior constants.
const (
	DecisionInterval   = 0.5
	AggroRange         = 10.0
	RetreatHealth      = 0.25
	EngageHealth       = 0.6
	ResumeHealth       = 0.9
	AbilityInterval    = 2.0
	FarmAbilityHealth  = 0.3 // farming uses abilities on targets below this
	BaseReach          = 8.0
	PushReach          = 5.0
	closeEngageDivisor = 2.0
)

// abilityLevelOrder is the order ability points are spent in.
var abilityLevelOrder = [...]int{2, 0, 1, 3}

// Config of one hero AI.
type Config struct {
	Base  model.Vec3 // retreat point
	Goal  model.Vec3 // push destination, the enemy crystal
	Build []string   // item ids bought in order when at base
}

// HeroAI - ИИ героя поверх конечного автомата looplab/fsm.
// Решение принимается каждые 0.5 с, поведение исполняется каждый тик.
// Из отступления автомат выходит только при здоровье ≥90% у базы.
type HeroAI struct {
	hero  Hero
	world World
	cfg   Config
	fsm   *fsm.FSM

	target       *model.Entity
	lastDecision float64
	lastAbility  float64
	nextItem     int
}

// NewHeroAI creates an idle AI for hero.
func NewHeroAI(hero Hero, world World, cfg Config) *HeroAI {
	a := &HeroAI{
		hero:         hero,
		world:        world,
		cfg:          cfg,
		lastDecision: -DecisionInterval,
		lastAbility:  -AbilityInterval,
	}
	fighting := []string{StateIdle, StateFarming, StatePushing}
	a.fsm = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: EventFarm, Src: []string{StateIdle, StatePushing, StateFighting}, Dst: StateFarming},
			{Name: EventPush, Src: []string{StateIdle, StateFarming, StateFighting, StateRetreating}, Dst: StatePushing},
			{Name: EventFight, Src: fighting, Dst: StateFighting},
			{Name: EventRetreat, Src: []string{StateIdle, StateFarming, StatePushing, StateFighting}, Dst: StateRetreating},
			{Name: EventReset, Src: []string{StateFarming, StatePushing, StateFighting, StateRetreating}, Dst: StateIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if IsDebugEnabled() {
					slog.Debug("hero AI state changed",
						"hero", a.hero.Entity(),
						"from", e.Src,
						"to", e.Dst)
				}
			},
			"enter_" + StateRetreating: func(context.Context, *fsm.Event) {
				a.target = nil
				a.hero.ClearTarget()
			},
			"enter_" + StateIdle: func(context.Context, *fsm.Event) {
				a.target = nil
			},
		},
	)
	return a
}

// State returns the current state name.
func (a *HeroAI) State() string { return a.fsm.Current() }

// Target returns the unit the AI is focused on.
func (a *HeroAI) Target() *model.Entity { return a.target }

// Hero returns the driven hero.
func (a *HeroAI) Hero() Hero { return a.hero }

func (a *HeroAI) now() float64 { return a.hero.Clock().Now() }

func (a *HeroAI) fire(event string) {
	if !a.fsm.Can(event) {
		return
	}
	err := a.fsm.Event(context.Background(), event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		slog.Warn("hero AI transition failed",
			"hero", a.hero.Entity(),
			"event", event,
			"error", err)
	}
}

// Tick runs one AI step.
func (a *HeroAI) Tick(float64) {
	self := a.hero.Entity()
	if !self.IsAlive() {
		a.fire(EventReset)
		return
	}

	a.spendAbilityPoints()

	if now := a.now(); now >= a.lastDecision+DecisionInterval {
		a.lastDecision = now
		a.decide()
	}

	switch a.State() {
	case StateFarming:
		a.farm()
	case StatePushing:
		a.push()
	case StateFighting:
		a.fight()
	case StateRetreating:
		a.retreat()
	}
}

func (a *HeroAI) decide() {
	self := a.hero.Entity()
	hp := self.Stats().HealthPercent()

	if a.State() == StateRetreating {
		if hp >= ResumeHealth && self.Position().Distance(a.cfg.Base) < BaseReach {
			a.fire(EventPush)
		}
		return
	}
	if hp < RetreatHealth {
		a.fire(EventRetreat)
		return
	}

	pos := self.Position()
	enemies := a.world.EnemiesInRadius(self, pos, AggroRange)

	if foe := closest(pos, enemies, model.KindHero); foe != nil {
		d := pos.Distance(foe.Position())
		weaker := foe.Stats().HealthPercent() < hp
		if hp >= EngageHealth && (weaker || d < AggroRange/closeEngageDivisor) {
			a.target = foe
			a.fire(EventFight)
			return
		}
	}

	if m := closest(pos, enemies, model.KindMinion); m != nil {
		a.target = m
		a.fire(EventFarm)
		return
	}

	a.target = nil
	a.fire(EventPush)
}

func (a *HeroAI) farm() {
	if !a.targetValid() {
		a.target = nil
		a.fire(EventPush)
		return
	}
	a.attack(a.target)
	if a.target.Stats().HealthPercent() < FarmAbilityHealth {
		a.tryAbility(a.target)
	}
}

func (a *HeroAI) push() {
	self := a.hero.Entity()
	pos := self.Position()

	if cur := a.hero.Target(); cur != nil && cur.CanBeTargetedBy(self) {
		return
	}
	inRange := a.world.EnemiesInRadius(self, pos, self.Stats().AttackRange())
	if t := closest(pos, inRange, -1); t != nil {
		a.hero.SetAttackTarget(t)
		return
	}
	if pos.Distance(a.cfg.Goal) > PushReach {
		a.hero.MoveTo(a.cfg.Goal)
	}
}

func (a *HeroAI) fight() {
	if !a.targetValid() {
		a.target = nil
		a.fire(EventPush)
		return
	}
	a.tryAbility(a.target)
	a.attack(a.target)
}

func (a *HeroAI) retreat() {
	self := a.hero.Entity()
	if self.Position().Distance(a.cfg.Base) < BaseReach {
		a.shop()
		return
	}
	a.hero.MoveTo(a.cfg.Base)
}

func (a *HeroAI) targetValid() bool {
	return a.target != nil && a.target.CanBeTargetedBy(a.hero.Entity())
}

func (a *HeroAI) attack(t *model.Entity) {
	if a.hero.Target() != t {
		a.hero.SetAttackTarget(t)
	}
}

// tryAbility fires the first ready and affordable ability at t, at most
// once per AbilityInterval.
func (a *HeroAI) tryAbility(t *model.Entity) {
	now := a.now()
	if now < a.lastAbility+AbilityInterval {
		return
	}
	for slot := range data.HeroAbilitySlots {
		s := a.hero.Ability(slot)
		if s == nil || !s.IsReady() || !s.CanAfford() {
			continue
		}
		if a.hero.UseAbility(slot, targetFor(s, t)) {
			a.lastAbility = now
			return
		}
	}
}

func targetFor(s *ability.State, t *model.Entity) ability.Target {
	switch s.Template().Targeting {
	case data.TargetingInstant:
		return ability.NoTarget
	case data.TargetingSkillshot, data.TargetingPointTarget:
		return ability.AtPoint(t.Position())
	default:
		return ability.AtUnit(t)
	}
}

// spendAbilityPoints levels the lowest ability first, ties going to the
// ultimate and then by slot.
func (a *HeroAI) spendAbilityPoints() {
	for a.hero.AbilityPoints() > 0 {
		best := -1
		for _, slot := range abilityLevelOrder {
			s := a.hero.Ability(slot)
			if s == nil || s.Level() >= s.MaxLevel() {
				continue
			}
			if best < 0 || s.Level() < a.hero.Ability(best).Level() {
				best = slot
			}
		}
		if best < 0 || !a.hero.LevelUpAbility(best) {
			return
		}
	}
}

func (a *HeroAI) shop() {
	for a.nextItem < len(a.cfg.Build) {
		ok, err := a.hero.Buy(a.cfg.Build[a.nextItem])
		if err != nil {
			slog.Warn("hero AI build item skipped",
				"hero", a.hero.Entity(),
				"item", a.cfg.Build[a.nextItem],
				"error", err)
			a.nextItem++
			continue
		}
		if !ok {
			return
		}
		a.nextItem++
	}
}

// closest returns the nearest entity of kind, any kind when kind < 0.
func closest(from model.Vec3, list []*model.Entity, kind model.Kind) *model.Entity {
	var (
		best     *model.Entity
		bestDist float64
	)
	for _, e := range list {
		if kind >= 0 && e.Kind() != kind {
			continue
		}
		if d := from.DistanceSquared(e.Position()); best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
