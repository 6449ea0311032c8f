package ability

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/game/effect"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
	"github.com/udisondev/arenacore/internal/testutil"
)

func ownerTemplate() model.StatTemplate {
	return model.StatTemplate{
		Base: model.BaseStats{
			MaxHealth:    1000,
			MaxEnergy:    500,
			WeaponPower:  100,
			CrystalPower: 50,
			AttackSpeed:  1,
			MoveSpeed:    3,
			AttackRange:  2,
		},
		Thresholds: []int{0},
	}
}

type fakeWorld struct {
	*projectile.Manager
	list *testutil.World
}

func (w *fakeWorld) EnemiesInRadius(of *model.Entity, center model.Vec3, r float64) []*model.Entity {
	var out []*model.Entity
	for _, e := range w.list.Entities() {
		if e.CanBeTargetedBy(of) && e.Position().Distance(center) <= r {
			out = append(out, e)
		}
	}
	return out
}

type fakeMover struct {
	stops int
	dest  []model.Vec3
}

func (m *fakeMover) RequestMoveTo(p model.Vec3) { m.dest = append(m.dest, p) }
func (m *fakeMover) Stop()                      { m.stops++ }

type testOwner struct {
	t         *testing.T
	e         *model.Entity
	clk       *clock.Manual
	cdr       float64
	abilities [data.HeroAbilitySlots]*State
	effects   *effect.Scheduler
	world     *fakeWorld
	entities  *testutil.World
	mover     *fakeMover
	passive   any
}

func newOwner(t *testing.T) *testOwner {
	t.Helper()
	clk := clock.NewManual(100)
	o := &testOwner{
		t:        t,
		clk:      clk,
		e:        testutil.NewEntity(t, clk, "owner", model.KindHero, model.TeamBlue, model.Vec3{}, ownerTemplate()),
		effects:  effect.NewScheduler(clk),
		entities: &testutil.World{},
		mover:    &fakeMover{},
	}
	o.entities.Add(o.e)
	o.world = &fakeWorld{Manager: projectile.NewManager(clk, o.entities), list: o.entities}
	return o
}

func (o *testOwner) Entity() *model.Entity      { return o.e }
func (o *testOwner) Clock() clock.Clock         { return o.clk }
func (o *testOwner) CooldownReduction() float64 { return o.cdr }
func (o *testOwner) WeaponPower() float64       { return o.e.Stats().WeaponPower() }
func (o *testOwner) CrystalPower() float64      { return o.e.Stats().CrystalPower() }
func (o *testOwner) Ability(slot int) *State    { return o.abilities[slot] }
func (o *testOwner) Effects() *effect.Scheduler { return o.effects }
func (o *testOwner) World() World               { return o.world }
func (o *testOwner) Mover() Mover               { return o.mover }
func (o *testOwner) Passive() any               { return o.passive }

func (o *testOwner) Pierce(formula.DamageType) (float64, float64) { return 0, 0 }

// equip creates the ability id in its slot.
func (o *testOwner) equip(id string) *State {
	o.t.Helper()
	tpl, err := data.Ability(id)
	require.NoError(o.t, err)
	return o.equipTemplate(tpl)
}

func (o *testOwner) equipTemplate(tpl *data.AbilityTemplate) *State {
	o.t.Helper()
	s, err := New(tpl, o)
	require.NoError(o.t, err)
	o.abilities[tpl.Slot] = s
	return s
}

// enemy spawns a red dummy hero at pos.
func (o *testOwner) enemy(name string, pos model.Vec3) *model.Entity {
	o.t.Helper()
	e := testutil.NewDummy(o.t, o.clk, name, model.TeamRed, pos)
	o.entities.Add(e)
	return e
}

// run advances the world like the arena loop does.
func (o *testOwner) run(steps int, dt float64) {
	for range steps {
		o.clk.Advance(dt)
		o.e.Stats().Advance(dt)
		o.effects.Advance()
		for _, a := range o.abilities {
			if a != nil {
				a.Update(dt)
			}
		}
		o.world.Update(dt)
	}
}

// stubPassive implements every kit hook.
type stubPassive struct {
	weakness   int
	consumed   []*model.Entity
	stealthFor float64
	stealthHPS float64
	ki         int
}

func (p *stubPassive) ConsumeWeaknessStacks(target *model.Entity) int {
	p.consumed = append(p.consumed, target)
	n := p.weakness
	p.weakness = 0
	return n
}

func (p *stubPassive) EnterStealth(duration, healPerSec float64) {
	p.stealthFor, p.stealthHPS = duration, healPerSec
}

func (p *stubPassive) AddKiStack() { p.ki++ }
