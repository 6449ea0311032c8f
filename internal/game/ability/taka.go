package ability

import (
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
)

func init() {
	Register(data.AbilityKaiten, func() Behavior { return newKaiten() })
	Register(data.AbilityKaku, func() Behavior { return &kaku{} })
	Register(data.AbilityXRetsu, func() Behavior { return newXRetsu() })
}

const KakuSpeedModifier = "kaku_speed"

func gainKi(s *State) {
	if k, ok := s.Owner().Passive().(KiGainer); ok {
		k.AddKiStack()
	}
}

// kaiten flips through the target along a straight line, striking it
// once on the way.
type kaiten struct {
	enemyUnit
	dash
}

func newKaiten() *kaiten {
	return &kaiten{dash: dash{name: data.AbilityKaiten}}
}

func (a *kaiten) Execute(s *State, t Target) {
	owner := s.Owner().Entity()
	from := owner.Position()
	dir := t.Unit.Position().Sub(from).Normalized()
	distance := max(s.Param("dash_distance"), from.Distance(t.Unit.Position())+2)

	a.target = t.Unit
	a.dest = from.Add(dir.Scale(distance))
	a.speed = s.Param("dash_speed")
	a.hitRange = s.Param("hit_range")

	damage := s.ScaledDamage()
	a.onHit = func(s *State, target *model.Entity) {
		s.DealDamage(target, damage)
		gainKi(s)
	}
	a.begin(s, distance, 0.5)
}

// kaku turns Taka invisible: heal over the duration, faster movement.
type kaku struct{}

func (a *kaku) Execute(s *State, _ Target) {
	duration := s.Param("duration")
	if st, ok := s.Owner().Passive().(Stealther); ok {
		st.EnterStealth(duration, s.Param("heal_per_sec"))
	}
	s.Owner().Entity().Stats().ApplyModifier(KakuSpeedModifier, model.StatMoveSpeed, s.Param("move_speed"), duration)
	gainKi(s)
}

// xRetsu dashes to the target and strikes hard, harder still when the
// target is low.
type xRetsu struct {
	enemyUnit
	dash
}

func newXRetsu() *xRetsu {
	return &xRetsu{dash: dash{name: data.AbilityXRetsu, follow: true, stopOnHit: true}}
}

func (a *xRetsu) Execute(s *State, t Target) {
	owner := s.Owner().Entity()
	a.target = t.Unit
	a.speed = s.Param("dash_speed")
	a.hitRange = s.Param("hit_range")

	damage := s.ScaledDamage()
	threshold := s.Param("execute_threshold")
	bonus := s.Param("execute_bonus")
	a.onHit = func(s *State, target *model.Entity) {
		amount := damage
		if target.Stats().HealthPercent() < threshold {
			amount *= bonus
		}
		s.DealDamage(target, amount)
		gainKi(s)
	}
	a.begin(s, owner.DistanceTo(t.Unit), 0.5)
}
