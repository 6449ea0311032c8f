package testutil

import (
	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/model"
)

// Recorder collects notifications for assertions.
type Recorder struct {
	model.NopListener

	Damage    []float64
	Deaths    int
	Killers   []*model.Entity
	Levels    []int
	Gold      []int
	Abilities []int
	Purchased []*model.Item
}

// Listen attaches a new Recorder to e.
func Listen(e *model.Entity) *Recorder {
	r := &Recorder{}
	e.Listeners().Add(r)
	return r
}

func (r *Recorder) Damaged(_ *model.Entity, _ *model.Entity, amount float64, _ formula.DamageType) {
	r.Damage = append(r.Damage, amount)
}

func (r *Recorder) Died(*model.Entity) { r.Deaths++ }

func (r *Recorder) DiedWithKiller(_ *model.Entity, killer *model.Entity) {
	r.Killers = append(r.Killers, killer)
}

func (r *Recorder) LevelUp(_ *model.Entity, level int)    { r.Levels = append(r.Levels, level) }
func (r *Recorder) GoldChanged(_ *model.Entity, gold int) { r.Gold = append(r.Gold, gold) }

func (r *Recorder) AbilityActivated(_ *model.Entity, slot int) {
	r.Abilities = append(r.Abilities, slot)
}

func (r *Recorder) ItemPurchased(_ *model.Entity, it *model.Item) {
	r.Purchased = append(r.Purchased, it)
}

// TotalDamage sums recorded damage.
func (r *Recorder) TotalDamage() float64 {
	var sum float64
	for _, d := range r.Damage {
		sum += d
	}
	return sum
}
