package hero

import (
	"fmt"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/model"
)

// Passive is the always-on hero trait.
type Passive interface {
	ID() string
	Update(dt float64)
	// ModifyAttack adjusts the attacker snapshot of the next basic attack.
	ModifyAttack(a *combat.Attacker, target *model.Entity)
	OnAttackHit(target *model.Entity, res combat.HitResult)
	OnKill(victim *model.Entity)
	// Reset clears all state on respawn.
	Reset()
}

// nopPassive does nothing; embedded by passives that need only some hooks.
type nopPassive struct{}

func (nopPassive) Update(float64)                               {}
func (nopPassive) ModifyAttack(*combat.Attacker, *model.Entity) {}
func (nopPassive) OnAttackHit(*model.Entity, combat.HitResult)  {}
func (nopPassive) OnKill(*model.Entity)                         {}
func (nopPassive) Reset()                                       {}

// passiveRegistry maps passive ID → factory.
var passiveRegistry = map[string]func(c *Controller) Passive{
	data.PassiveDoubleDown:       func(c *Controller) Passive { return newDoubleDown(c) },
	data.PassiveShadowsEmpowerMe: func(c *Controller) Passive { return newShadowsEmpowerMe(c) },
	data.PassiveKiAndStealth:     func(c *Controller) Passive { return newKiAndStealth(c) },
}

func newPassive(id string, c *Controller) (Passive, error) {
	factory, ok := passiveRegistry[id]
	if !ok {
		return nil, fmt.Errorf("passive %q: %w", id, ErrUnknownPassive)
	}
	return factory(c), nil
}
