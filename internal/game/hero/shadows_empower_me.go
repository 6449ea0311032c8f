package hero

import (
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/model"
)

const (
	KrulLifesteal       = 0.10
	MaxWeaknessStacks   = 8
	WeaknessDuration    = 4.0
	WeaknessDamageBonus = 0.025
)

type weakness struct {
	stacks int
	expire float64
}

// shadowsEmpowerMe - пассивка Krul: атаки лечат на 10% нанесённого урона
// и вешают на цель стаки слабости, каждый усиливает следующие атаки по ней.
type shadowsEmpowerMe struct {
	nopPassive
	c       *Controller
	targets map[*model.Entity]*weakness
}

func newShadowsEmpowerMe(c *Controller) *shadowsEmpowerMe {
	return &shadowsEmpowerMe{c: c, targets: make(map[*model.Entity]*weakness)}
}

func (p *shadowsEmpowerMe) ID() string { return data.PassiveShadowsEmpowerMe }

// WeaknessStacks returns live stacks on target.
func (p *shadowsEmpowerMe) WeaknessStacks(target *model.Entity) int {
	w, ok := p.targets[target]
	if !ok || p.c.clock.Now() > w.expire {
		return 0
	}
	return w.stacks
}

// ConsumeWeaknessStacks removes and returns the stacks on target.
func (p *shadowsEmpowerMe) ConsumeWeaknessStacks(target *model.Entity) int {
	n := p.WeaknessStacks(target)
	delete(p.targets, target)
	return n
}

func (p *shadowsEmpowerMe) Update(float64) {
	now := p.c.clock.Now()
	for e, w := range p.targets {
		if now > w.expire || !e.IsAlive() {
			delete(p.targets, e)
		}
	}
}

func (p *shadowsEmpowerMe) ModifyAttack(a *combat.Attacker, target *model.Entity) {
	if n := p.WeaknessStacks(target); n > 0 {
		a.PassiveMultiplier = multiply(a.PassiveMultiplier, 1+WeaknessDamageBonus*float64(n))
	}
}

func (p *shadowsEmpowerMe) OnAttackHit(target *model.Entity, res combat.HitResult) {
	if target.IsAlive() {
		w, ok := p.targets[target]
		if !ok || p.c.clock.Now() > w.expire {
			w = &weakness{}
			p.targets[target] = w
		}
		w.stacks = min(w.stacks+1, MaxWeaknessStacks)
		w.expire = p.c.clock.Now() + WeaknessDuration
	}
	if res.Dealt > 0 {
		p.c.entity.Stats().Heal(res.Dealt * KrulLifesteal)
	}
}

func (p *shadowsEmpowerMe) Reset() { clear(p.targets) }

// multiply composes passive multipliers where 0 means unset.
func multiply(cur, k float64) float64 {
	if cur == 0 {
		return k
	}
	return cur * k
}
