package effect

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/model"
)

// DamageOverTime deals a fixed amount every tick until the target dies.
type DamageOverTime struct {
	ID      string
	Source  *model.Entity
	Target  *model.Entity
	PerTick float64
	Type    formula.DamageType
}

func (e *DamageOverTime) Name() string { return e.ID }

func (e *DamageOverTime) OnStart(float64) {}

func (e *DamageOverTime) OnActionTime(float64) bool {
	if !e.Target.IsAlive() {
		return false // stop ticking on dead target
	}
	dealt := e.Target.Stats().TakeDamage(model.Hit{
		Amount: e.PerTick,
		Type:   e.Type,
		Source: e.Source,
	})

	slog.Debug("dot tick",
		"effect", e.ID,
		"target", e.Target.Name(),
		"damage", dealt)
	return e.Target.IsAlive()
}

func (e *DamageOverTime) OnExit(float64, bool) {}

// HealOverTime heals a fixed amount every tick while the target lives.
type HealOverTime struct {
	ID      string
	Target  *model.Entity
	PerTick float64
}

func (e *HealOverTime) Name() string { return e.ID }

func (e *HealOverTime) OnStart(float64) {}

func (e *HealOverTime) OnActionTime(float64) bool {
	if !e.Target.IsAlive() {
		return false
	}
	e.Target.Stats().Heal(e.PerTick)
	return true
}

func (e *HealOverTime) OnExit(float64, bool) {}
