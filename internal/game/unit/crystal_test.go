package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
)

func TestCrystal_InvulnerableWhileProtected(t *testing.T) {
	f := newFixture(t)
	outer := f.turret("blue_outer", model.TeamBlue, 30)
	inner := f.turret("blue_inner", model.TeamBlue, 20)
	c := NewCrystal(f.nextID(), model.TeamBlue, model.Vec3{}, []*Turret{outer, inner}, f.clk, f.world)
	attacker := f.unit(model.KindHero, model.TeamRed, 1)

	hit := model.Hit{Amount: 100, Source: attacker}
	c.Entity().Stats().TakeDamage(hit)
	assert.Zero(t, lost(c.Entity()))
	assert.False(t, c.Vulnerable())

	kill(outer.Entity(), attacker)
	c.Entity().Stats().TakeDamage(hit)
	assert.Zero(t, lost(c.Entity()), "one protector still stands")

	kill(inner.Entity(), attacker)
	assert.True(t, c.Vulnerable())
	c.Entity().Stats().TakeDamage(hit)
	assert.InDelta(t, 100, lost(c.Entity()), 1e-9)

	kill(c.Entity(), attacker)
	assert.True(t, c.Destroyed())
}

func TestCrystal_HealsAlliedHeroes(t *testing.T) {
	f := newFixture(t)
	c := NewCrystal(f.nextID(), model.TeamBlue, model.Vec3{}, nil, f.clk, f.world)
	f.list.Add(c.Entity())
	ally := f.unit(model.KindHero, model.TeamBlue, 2)
	farAlly := f.unit(model.KindHero, model.TeamBlue, data.CrystalHealRadius+1)
	allyMinion := f.unit(model.KindMinion, model.TeamBlue, 1)
	enemy := f.unit(model.KindHero, model.TeamRed, 1)
	for _, e := range []*model.Entity{ally, farAlly, allyMinion, enemy} {
		e.Stats().SetHealth(5000)
		e.Stats().UseEnergy(50)
	}

	c.Update(0.5)

	assert.InDelta(t, 5025, ally.Stats().Health(), 1e-9)
	assert.InDelta(t, 62.5, ally.Stats().Energy(), 1e-9)
	assert.Equal(t, 5000.0, farAlly.Stats().Health())
	assert.Equal(t, 5000.0, allyMinion.Stats().Health())
	assert.Equal(t, 5000.0, enemy.Stats().Health())
}
