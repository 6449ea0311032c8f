package hero

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/model"
)

const (
	MaxKiStacks         = 5
	KiMoveSpeedPerStack = 0.04
	KiDuration          = 5.0
	StealthAttackBonus  = 1.25
	KiModifier          = "taka_ki"
)

// kiAndStealth - пассивка Taka. Попадания способностей дают стаки Ки
// (+4% скорости каждый, 5 секунд). Kaku уводит в невидимость с лечением,
// атака из невидимости наносит +25% и снимает её.
type kiAndStealth struct {
	nopPassive
	c *Controller

	ki       int
	kiExpire float64

	stealthed   bool
	stealthEnd  float64
	stealthHeal float64
}

func newKiAndStealth(c *Controller) *kiAndStealth { return &kiAndStealth{c: c} }

func (p *kiAndStealth) ID() string      { return data.PassiveKiAndStealth }
func (p *kiAndStealth) KiStacks() int   { return p.ki }
func (p *kiAndStealth) Stealthed() bool { return p.stealthed }

func (p *kiAndStealth) AddKiStack() {
	p.ki = min(p.ki+1, MaxKiStacks)
	p.kiExpire = p.c.clock.Now() + KiDuration
	p.c.entity.Stats().ApplyModifier(KiModifier, model.StatMoveSpeed,
		1+KiMoveSpeedPerStack*float64(p.ki), KiDuration)
}

func (p *kiAndStealth) EnterStealth(duration, healPerSec float64) {
	p.stealthed = true
	p.stealthEnd = p.c.clock.Now() + duration
	p.stealthHeal = healPerSec
	slog.Debug("stealth entered",
		"hero", p.c.entity,
		"duration", duration)
}

func (p *kiAndStealth) breakStealth() {
	p.stealthed = false
	p.stealthHeal = 0
}

func (p *kiAndStealth) Update(dt float64) {
	now := p.c.clock.Now()
	if p.ki > 0 && now > p.kiExpire {
		p.ki = 0
		p.c.entity.Stats().RemoveModifier(KiModifier)
	}
	if !p.stealthed {
		return
	}
	if now >= p.stealthEnd {
		p.breakStealth()
		return
	}
	p.c.entity.Stats().HealSilently(p.stealthHeal * dt)
}

func (p *kiAndStealth) ModifyAttack(a *combat.Attacker, _ *model.Entity) {
	if !p.stealthed {
		return
	}
	p.breakStealth()
	a.PassiveMultiplier = multiply(a.PassiveMultiplier, StealthAttackBonus)
}

func (p *kiAndStealth) Reset() {
	p.ki = 0
	p.c.entity.Stats().RemoveModifier(KiModifier)
	p.breakStealth()
}
