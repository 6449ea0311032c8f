package unit

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
)

// TurretProjectileSpeed is the speed of the homing turret shot.
const TurretProjectileSpeed = 15.0

// Turret - линейная башня. Приоритет целей: герой, атаковавший союзного
// героя в последние 3 секунды, затем ближайший миньон или монстр, затем
// любой герой. Каждое последовательное попадание по одной цели +45%.
type Turret struct {
	entity *model.Entity
	clock  clock.Clock
	world  World

	// requires must fall before this turret can act or be damaged.
	requires *Turret

	target     *model.Entity
	lastAttack float64
	lastTarget *model.Entity
	stacks     int

	threats map[*model.Entity]float64 // hero → threat expiry
}

// NewTurret creates a turret named name for team at pos.
func NewTurret(id uint32, name string, team model.Team, pos model.Vec3, clk clock.Clock, world World) *Turret {
	stats := model.NewStatBlock(clk, data.TurretStatTemplate())
	e := model.NewEntity(id, name, model.KindTurret, team, pos, stats)
	t := &Turret{
		entity:     e,
		clock:      clk,
		world:      world,
		lastAttack: neverAttacked,
		threats:    make(map[*model.Entity]float64),
	}
	e.Data = t
	return t
}

func (t *Turret) Entity() *model.Entity { return t.entity }
func (t *Turret) Target() *model.Entity { return t.target }
func (t *Turret) Stacks() int           { return t.stacks }

// Destroyed reports whether the turret has fallen.
func (t *Turret) Destroyed() bool { return !t.entity.IsAlive() }

// Require makes t inactive and invulnerable while outer stands.
func (t *Turret) Require(outer *Turret) {
	t.requires = outer
	t.entity.Stats().SetInvulnerableWhen(func() bool {
		return !outer.Destroyed()
	})
}

// Active reports whether the turret may shoot.
func (t *Turret) Active() bool {
	return !t.Destroyed() && (t.requires == nil || t.requires.Destroyed())
}

// ReportThreat marks attacker as a priority target for the threat window.
func (t *Turret) ReportThreat(attacker *model.Entity) {
	if attacker == nil || !isHero(attacker) || !attacker.IsEnemyOf(t.entity) {
		return
	}
	t.threats[attacker] = t.clock.Now() + data.TurretHeroThreatWindow
}

// Threatening reports whether e is a live threat.
func (t *Turret) Threatening(e *model.Entity) bool {
	until, ok := t.threats[e]
	return ok && t.clock.Now() <= until
}

// InRange reports whether p is inside the turret's attack range.
func (t *Turret) InRange(p model.Vec3) bool {
	return t.entity.Position().Distance(p) <= data.TurretRange
}

func (t *Turret) Update(float64) {
	if !t.Active() {
		t.target = nil
		return
	}
	t.pruneThreats()
	t.updateTarget()
	if t.target == nil {
		return
	}

	now := t.clock.Now()
	if now < t.lastAttack+data.TurretAttackCooldown {
		return
	}
	t.lastAttack = now
	t.fire()
}

func (t *Turret) pruneThreats() {
	now := t.clock.Now()
	for e, until := range t.threats {
		if now > until || !e.IsAlive() {
			delete(t.threats, e)
		}
	}
}

func (t *Turret) updateTarget() {
	if t.target != nil {
		if !t.target.CanBeTargetedBy(t.entity) || !t.InRange(t.target.Position()) {
			t.target = nil
		}
	}
	// A hero that hits an allied hero preempts the current target.
	pos := t.entity.Position()
	candidates := t.world.EnemiesInRadius(t.entity, pos, data.TurretRange)
	if threat := nearest(pos, candidates, t.Threatening); threat != nil {
		t.target = threat
		return
	}
	if t.target != nil {
		return
	}
	t.target = t.bestTarget(pos, candidates)
}

func (t *Turret) bestTarget(pos model.Vec3, candidates []*model.Entity) *model.Entity {
	units := func(e *model.Entity) bool {
		return e.Kind() == model.KindMinion || e.Kind() == model.KindMonster
	}
	if m := nearest(pos, candidates, units); m != nil {
		return m
	}
	return nearest(pos, candidates, isHero)
}

// Damage returns the damage of the next shot at target with the ramp applied.
func (t *Turret) Damage(target *model.Entity) float64 {
	stacks := 0
	if target == t.lastTarget {
		stacks = min(t.stacks+1, data.TurretMaxRampHits)
	}
	return data.TurretDamage * (1 + data.TurretRampPerHit*float64(stacks))
}

func (t *Turret) fire() {
	target := t.target
	amount := t.Damage(target)
	if target == t.lastTarget {
		t.stacks = min(t.stacks+1, data.TurretMaxRampHits)
	} else {
		t.stacks = 0
		t.lastTarget = target
	}

	slog.Debug("turret fired",
		"turret", t.entity,
		"target", target,
		"damage", amount,
		"stacks", t.stacks)

	src := t.entity
	t.world.Launch(src, src.Position(), projectile.Spec{
		Kind:   projectile.Homing,
		Speed:  TurretProjectileSpeed,
		Target: target,
		OnHit: func(hit *model.Entity) {
			strike(src, hit, amount)
		},
	})
}
