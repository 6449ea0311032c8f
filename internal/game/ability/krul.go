package ability

import (
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
)

func init() {
	Register(data.AbilityDeadMansRush, func() Behavior { return newDeadMansRush() })
	Register(data.AbilitySpectralSmite, func() Behavior { return &spectralSmite{} })
	Register(data.AbilityFromHellsHeart, func() Behavior { return newFromHellsHeart() })
}

const (
	DeadMansRushSlowModifier = "dead_mans_rush_slow"
	FromHellsHeartStun       = "from_hells_heart_stun"
)

// deadMansRush chases a unit; on contact it strikes and slows. The dash
// gives up after its expected travel time plus a margin.
type deadMansRush struct {
	enemyUnit
	dash
}

func newDeadMansRush() *deadMansRush {
	return &deadMansRush{dash: dash{name: data.AbilityDeadMansRush, follow: true, stopOnHit: true}}
}

func (a *deadMansRush) Execute(s *State, t Target) {
	owner := s.Owner().Entity()
	a.target = t.Unit
	a.speed = s.Param("dash_speed")
	a.hitRange = s.Param("hit_range")

	damage := s.ScaledDamage()
	slow := s.Param("slow")
	slowFor := s.Param("slow_duration")
	a.onHit = func(s *State, target *model.Entity) {
		s.DealDamage(target, damage)
		if target.IsAlive() {
			target.Stats().ApplyModifier(DeadMansRushSlowModifier, model.StatMoveSpeed, 1-slow, slowFor)
		}
	}
	a.begin(s, owner.DistanceTo(t.Unit), s.Param("timeout_margin"))
}

// spectralSmite consumes the weakness stacks on the target: each stack
// adds damage and healing.
type spectralSmite struct {
	enemyUnit
}

func (a *spectralSmite) Execute(s *State, t Target) {
	stacks := 0
	if c, ok := s.Owner().Passive().(WeaknessConsumer); ok {
		stacks = c.ConsumeWeaknessStacks(t.Unit)
	}
	n := float64(stacks)

	s.DealDamage(t.Unit, s.ScaledDamage()+s.Param("damage_per_stack")*n)
	s.Owner().Entity().Stats().Heal(s.Param("heal") + s.Param("heal_per_stack")*n)
}

// fromHellsHeart throws a hook at heroes. A hit stuns the target and pulls
// Krul toward it.
type fromHellsHeart struct {
	pull dash
}

func newFromHellsHeart() *fromHellsHeart {
	return &fromHellsHeart{pull: dash{name: data.AbilityFromHellsHeart, follow: true, stopOnHit: true}}
}

func (a *fromHellsHeart) Channeling() bool { return a.pull.Channeling() }

func (a *fromHellsHeart) Update(s *State, dt float64) { a.pull.Update(s, dt) }

func (a *fromHellsHeart) Execute(s *State, t Target) {
	owner := s.Owner().Entity()
	damage := s.ScaledDamage()
	stun := s.Param("stun")

	s.Owner().World().Launch(owner, owner.Position(), projectile.Spec{
		Kind:        projectile.Linear,
		Speed:       s.Param("projectile_speed"),
		Radius:      s.Template().Radius,
		Direction:   t.Position.Sub(owner.Position()),
		MaxDistance: s.Template().Range,
		HeroesOnly:  true,
		OnHit: func(target *model.Entity) {
			s.DealDamage(target, damage)
			if !target.IsAlive() {
				return
			}
			target.Stats().ApplyModifier(FromHellsHeartStun, model.StatMoveSpeed, 0, stun)
			a.startPull(s, target, stun)
		},
	})
}

func (a *fromHellsHeart) startPull(s *State, target *model.Entity, stun float64) {
	stopAt := s.Param("pull_stop_range")
	if s.Owner().Entity().DistanceTo(target) <= stopAt {
		return
	}
	a.pull.target = target
	a.pull.speed = s.Param("pull_speed")
	a.pull.hitRange = stopAt
	a.pull.active = true
	a.pull.hit = false
	a.pull.deadline = s.now() + s.Param("pull_share")*stun
	s.Owner().Mover().Stop()
}
