package testutil

import (
	"sync/atomic"
	"testing"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/model"
)

var nextID atomic.Uint32

// DummyTemplate is a plain target: 1000 HP, no defenses, no regen.
func DummyTemplate() model.StatTemplate {
	return model.StatTemplate{
		Base: model.BaseStats{
			MaxHealth:   1000,
			MaxEnergy:   100,
			AttackSpeed: 1,
			MoveSpeed:   3,
			AttackRange: 2,
		},
		Thresholds: []int{0},
	}
}

// NewEntity создаёт сущность с произвольным шаблоном.
func NewEntity(t testing.TB, clk clock.Clock, name string, kind model.Kind, team model.Team, pos model.Vec3, tpl model.StatTemplate) *model.Entity {
	t.Helper()
	return model.NewEntity(nextID.Add(1), name, kind, team, pos, model.NewStatBlock(clk, tpl))
}

// NewDummy создаёт героя-манекен без брони и регена.
func NewDummy(t testing.TB, clk clock.Clock, name string, team model.Team, pos model.Vec3) *model.Entity {
	t.Helper()
	return NewEntity(t, clk, name, model.KindHero, team, pos, DummyTemplate())
}

// NewHeroEntity создаёт сущность героя по шаблону из data (без контроллера).
func NewHeroEntity(t testing.TB, clk clock.Clock, heroID string, team model.Team, pos model.Vec3) *model.Entity {
	t.Helper()
	h, err := data.Hero(heroID)
	if err != nil {
		t.Fatalf("hero %s: %v", heroID, err)
	}
	return NewEntity(t, clk, h.Name, model.KindHero, team, pos, h.StatTemplate())
}

// World is a fixed entity list for collision and target queries.
type World struct {
	List []*model.Entity
}

func (w *World) Entities() []*model.Entity { return w.List }

// Add appends entities and returns w.
func (w *World) Add(es ...*model.Entity) *World {
	w.List = append(w.List, es...)
	return w
}

// Kill drops e to zero health with a true-damage hit from killer (may be nil).
func Kill(e, killer *model.Entity) {
	e.Stats().TakeDamage(model.Hit{Amount: 1e9, Type: formula.True, Source: killer})
}
