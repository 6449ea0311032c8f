package unit

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
)

// Crystal is the team objective. It ignores all damage while any of its
// protecting turrets stands and heals allied heroes around it.
type Crystal struct {
	entity     *model.Entity
	world      World
	protectors []*Turret
	vulnerable bool
}

// NewCrystal creates the crystal of team at pos protected by turrets.
func NewCrystal(id uint32, team model.Team, pos model.Vec3, turrets []*Turret, clk clock.Clock, world World) *Crystal {
	stats := model.NewStatBlock(clk, data.CrystalStatTemplate())
	e := model.NewEntity(id, team.String()+"_crystal", model.KindCrystal, team, pos, stats)
	c := &Crystal{
		entity:     e,
		world:      world,
		protectors: turrets,
	}
	stats.SetInvulnerableWhen(func() bool { return !c.Vulnerable() })
	e.Data = c
	return c
}

func (c *Crystal) Entity() *model.Entity { return c.entity }

// Destroyed reports whether the crystal has fallen, which ends the match.
func (c *Crystal) Destroyed() bool { return !c.entity.IsAlive() }

// Vulnerable reports whether every protecting turret is down.
func (c *Crystal) Vulnerable() bool {
	for _, t := range c.protectors {
		if !t.Destroyed() {
			return false
		}
	}
	return true
}

func (c *Crystal) Update(dt float64) {
	if c.Destroyed() {
		return
	}
	if v := c.Vulnerable(); v != c.vulnerable {
		c.vulnerable = v
		slog.Info("crystal exposed",
			"team", c.entity.Team().String())
	}

	pos := c.entity.Position()
	for _, e := range c.world.AlliesInRadius(c.entity, pos, data.CrystalHealRadius) {
		if !isHero(e) || !e.IsAlive() {
			continue
		}
		e.Stats().HealSilently(data.CrystalHealthPerSec * dt)
		e.Stats().RestoreEnergySilently(data.CrystalEnergyPerSec * dt)
	}
}
