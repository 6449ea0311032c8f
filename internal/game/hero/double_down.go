package hero

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/model"
)

const (
	DoubleDownMultiplier = 1.8
	DoubleDownDuration   = 6.0
)

// doubleDown - пассивка Ringo: после любого убийства следующая атака
// в течение 6 секунд гарантированно критует с множителем 1.8.
type doubleDown struct {
	nopPassive
	c          *Controller
	armedUntil float64
	armed      bool
}

func newDoubleDown(c *Controller) *doubleDown { return &doubleDown{c: c} }

func (p *doubleDown) ID() string { return data.PassiveDoubleDown }

// Ready reports whether the next attack will crit.
func (p *doubleDown) Ready() bool {
	return p.armed && p.c.clock.Now() <= p.armedUntil
}

func (p *doubleDown) OnKill(victim *model.Entity) {
	p.armed = true
	p.armedUntil = p.c.clock.Now() + DoubleDownDuration
	slog.Debug("double down armed",
		"hero", p.c.entity,
		"victim", victim)
}

func (p *doubleDown) ModifyAttack(a *combat.Attacker, _ *model.Entity) {
	if !p.Ready() {
		p.armed = false
		return
	}
	p.armed = false
	a.GuaranteedCrit = DoubleDownMultiplier
}

func (p *doubleDown) Reset() { p.armed = false }
