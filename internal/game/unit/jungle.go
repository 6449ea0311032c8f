package unit

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
)

const (
	// MonsterReturnSpeed is the walk-home speed of an idle monster.
	MonsterReturnSpeed = 2.0
	// MonsterHomeReach is the distance at which a monster counts as home.
	MonsterHomeReach = 0.5

	smallCampSpread = 0.5
)

// Monster - нейтральный монстр лагеря. Атакует ближайшего героя в радиусе
// агра; при удалении от дома дальше поводка сбрасывается и лечится.
type Monster struct {
	entity *model.Entity
	camp   *Camp
	clock  clock.Clock
	world  World
	home   model.Vec3

	target     *model.Entity
	lastAttack float64
}

func (m *Monster) Entity() *model.Entity { return m.entity }
func (m *Monster) Target() *model.Entity { return m.target }
func (m *Monster) Home() model.Vec3      { return m.home }

// Reward implements Bounty. Monsters pay through their camp once it is
// cleared, so a single monster is worth nothing on its own.
func (m *Monster) Reward() (gold, xp int) { return 0, 0 }

func (m *Monster) Update(dt float64) {
	if !m.entity.IsAlive() {
		return
	}

	if m.entity.Position().Distance(m.home) > data.MonsterLeashRange {
		slog.Debug("monster leashed",
			"monster", m.entity)
		m.target = nil
		m.entity.SetPosition(m.home)
		m.entity.Stats().FullHeal()
		return
	}

	if m.target != nil {
		leash := data.MonsterAggroRange * data.LeashFactor
		if !m.target.CanBeTargetedBy(m.entity) || m.entity.DistanceTo(m.target) > leash {
			m.target = nil
		}
	}
	if m.target == nil {
		pos := m.entity.Position()
		m.target = nearest(pos, m.world.EnemiesInRadius(m.entity, pos, data.MonsterAggroRange), isHero)
	}

	if m.target == nil {
		if m.entity.Position().Distance(m.home) > MonsterHomeReach {
			step(m.entity, m.home, MonsterReturnSpeed, dt)
		}
		return
	}

	if m.entity.DistanceTo(m.target) > data.MonsterAttackRange {
		step(m.entity, m.target.Position(), m.entity.Stats().MoveSpeed(), dt)
		return
	}
	now := m.clock.Now()
	if now < m.lastAttack+data.MonsterAttackCooldown {
		return
	}
	m.lastAttack = now
	strike(m.entity, m.target, m.entity.Stats().WeaponPower())
}

// Camp - лагерь нейтральных монстров. После зачистки платит последнему
// убийце, выдаёт бафф (большой лагерь) и возрождается по таймеру.
type Camp struct {
	name  string
	tpl   data.CampTemplate
	pos   model.Vec3
	clock clock.Clock
	world World

	nextID  func() uint32
	onSpawn func(m *Monster)

	monsters   []*Monster
	cleared    bool
	respawnAt  float64
	lastKiller *model.Entity
}

// NewCamp creates the camp and spawns its monsters. nextID allocates
// entity ids; onSpawn registers each new monster with the world.
func NewCamp(spec data.CampSpec, clk clock.Clock, world World, nextID func() uint32, onSpawn func(*Monster)) (*Camp, error) {
	tpl, ok := data.CampTable[spec.Size]
	if !ok {
		return nil, fmt.Errorf("camp %s: unknown size %s", spec.Name, spec.Size)
	}
	c := &Camp{
		name:    spec.Name,
		tpl:     tpl,
		pos:     spec.Position,
		clock:   clk,
		world:   world,
		nextID:  nextID,
		onSpawn: onSpawn,
	}
	c.spawn()
	return c, nil
}

func (c *Camp) Name() string                { return c.name }
func (c *Camp) Template() data.CampTemplate { return c.tpl }
func (c *Camp) Monsters() []*Monster        { return c.monsters }
func (c *Camp) Cleared() bool               { return c.cleared }
func (c *Camp) RespawnAt() float64          { return c.respawnAt }

func (c *Camp) spawn() {
	c.cleared = false
	c.lastKiller = nil
	c.monsters = make([]*Monster, 0, c.tpl.Monsters)

	for i := range c.tpl.Monsters {
		pos := c.pos
		if c.tpl.Monsters > 1 {
			pos.X += smallCampSpread * float64(2*i-c.tpl.Monsters+1)
		}
		stats := model.NewStatBlock(c.clock, c.tpl.MonsterStatTemplate())
		name := fmt.Sprintf("%s_%d", c.name, i)
		e := model.NewEntity(c.nextID(), name, model.KindMonster, model.TeamNeutral, pos, stats)
		m := &Monster{
			entity:     e,
			camp:       c,
			clock:      c.clock,
			world:      c.world,
			home:       pos,
			lastAttack: neverAttacked,
		}
		e.Data = m
		e.Listeners().Add(campListener{camp: c})
		c.monsters = append(c.monsters, m)
		if c.onSpawn != nil {
			c.onSpawn(m)
		}
	}

	slog.Debug("camp spawned",
		"camp", c.name,
		"size", c.tpl.Size.String())
}

type campListener struct {
	model.NopListener
	camp *Camp
}

func (l campListener) DiedWithKiller(_ *model.Entity, killer *model.Entity) {
	l.camp.lastKiller = killer
}

// Update ticks the monsters, detects the clear and respawns on schedule.
func (c *Camp) Update(dt float64) {
	if c.cleared {
		if c.clock.Now() >= c.respawnAt {
			c.spawn()
		}
		return
	}
	for _, m := range c.monsters {
		m.Update(dt)
	}
	for _, m := range c.monsters {
		if m.entity.IsAlive() {
			return
		}
	}
	c.clear()
}

func (c *Camp) clear() {
	c.cleared = true
	c.respawnAt = c.clock.Now() + c.tpl.Respawn

	killer := c.lastKiller
	slog.Debug("camp cleared",
		"camp", c.name,
		"killer", killer)
	if killer == nil {
		return
	}
	if r, ok := killer.Data.(Rewardee); ok {
		r.GrantReward(c.tpl.Gold, c.tpl.Experience)
	}
	if c.tpl.Buff != "" {
		killer.Stats().ApplyModifier(c.tpl.Buff, model.StatDamageDealt, c.tpl.BuffMultiplier, c.tpl.BuffDuration)
	}
}
