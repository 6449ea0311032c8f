package model

import (
	"testing"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/formula"
)

var testThresholds = []int{0, 100, 250, 450, 700, 1000, 1350, 1750, 2200, 2700, 3250, 3850}

func testTemplate() StatTemplate {
	return StatTemplate{
		Base: BaseStats{
			MaxHealth:   703,
			MaxEnergy:   163,
			HealthRegen: 3,
			EnergyRegen: 5,
			WeaponPower: 71,
			AttackSpeed: 1,
			MoveSpeed:   3.1,
			AttackRange: 6.2,
			Armor:       20,
			Shield:      20,
		},
		Growth: Growth{
			Health:      50,
			Energy:      20,
			Armor:       3,
			Shield:      3,
			WeaponPower: 5,
		},
		Thresholds:  testThresholds,
		LevelUpHeal: 100,
	}
}

// newTestEntity создаёт героя с тестовыми статами и ручными часами.
func newTestEntity(t *testing.T, name string, team Team) (*Entity, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(0)
	stats := NewStatBlock(clk, testTemplate())
	return NewEntity(1, name, KindHero, team, Vec3{}, stats), clk
}

// recorder counts every notification it receives.
type recorder struct {
	NopListener

	health    []float64
	energy    []float64
	gold      []int
	levels    []int
	damaged   []float64
	died      int
	killers   []*Entity
	inventory int
	purchased []*Item
	abilities []int
}

func (r *recorder) HealthChanged(_ *Entity, cur, _ float64) { r.health = append(r.health, cur) }
func (r *recorder) EnergyChanged(_ *Entity, cur, _ float64) { r.energy = append(r.energy, cur) }
func (r *recorder) GoldChanged(_ *Entity, gold int)         { r.gold = append(r.gold, gold) }
func (r *recorder) LevelUp(_ *Entity, level int)            { r.levels = append(r.levels, level) }
func (r *recorder) Died(*Entity)                            { r.died++ }
func (r *recorder) DiedWithKiller(_ *Entity, k *Entity)     { r.killers = append(r.killers, k) }
func (r *recorder) InventoryChanged(*Entity)                { r.inventory++ }
func (r *recorder) ItemPurchased(_ *Entity, it *Item)       { r.purchased = append(r.purchased, it) }
func (r *recorder) AbilityActivated(_ *Entity, slot int)    { r.abilities = append(r.abilities, slot) }

func (r *recorder) Damaged(_ *Entity, _ *Entity, amount float64, _ formula.DamageType) {
	r.damaged = append(r.damaged, amount)
}

func listen(e *Entity) *recorder {
	r := &recorder{}
	e.Listeners().Add(r)
	return r
}
