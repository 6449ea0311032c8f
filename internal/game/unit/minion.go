package unit

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
)

// WaypointReach is the distance at which a minion advances to the next waypoint.
const WaypointReach = 1.0

// Minion walks its lane and fights the nearest enemy in aggro range.
type Minion struct {
	entity *model.Entity
	tpl    *data.MinionTemplate
	clock  clock.Clock
	world  World

	waypoints []model.Vec3
	next      int

	target     *model.Entity
	lastAttack float64
}

// NewMinion creates a minion of tpl at pos following waypoints.
func NewMinion(id uint32, tpl *data.MinionTemplate, team model.Team, pos model.Vec3, waypoints []model.Vec3, clk clock.Clock, world World) *Minion {
	stats := model.NewStatBlock(clk, tpl.StatTemplate())
	e := model.NewEntity(id, tpl.ID, model.KindMinion, team, pos, stats)
	m := &Minion{
		entity:     e,
		tpl:        tpl,
		clock:      clk,
		world:      world,
		waypoints:  waypoints,
		lastAttack: neverAttacked,
	}
	e.Data = m
	return m
}

func (m *Minion) Entity() *model.Entity          { return m.entity }
func (m *Minion) Target() *model.Entity          { return m.target }
func (m *Minion) Template() *data.MinionTemplate { return m.tpl }

// Reward implements Bounty. Only the last hit is paid.
func (m *Minion) Reward() (gold, xp int) { return m.tpl.Gold, m.tpl.Experience }

// Waypoint returns the index of the waypoint the minion is heading to.
func (m *Minion) Waypoint() int { return m.next }

func (m *Minion) Update(dt float64) {
	if !m.entity.IsAlive() {
		return
	}
	m.updateTarget()

	if m.target == nil {
		m.walkLane(dt)
		return
	}

	if m.entity.DistanceTo(m.target) > m.tpl.AttackRange {
		step(m.entity, m.target.Position(), m.entity.Stats().MoveSpeed(), dt)
		return
	}

	now := m.clock.Now()
	if now < m.lastAttack+m.tpl.AttackCooldown {
		return
	}
	m.lastAttack = now
	strike(m.entity, m.target, m.entity.Stats().WeaponPower())
}

func (m *Minion) updateTarget() {
	if m.target != nil {
		leash := m.tpl.AggroRange * data.LeashFactor
		if !m.target.CanBeTargetedBy(m.entity) || m.entity.DistanceTo(m.target) > leash {
			m.target = nil
		}
	}
	if m.target != nil {
		return
	}

	pos := m.entity.Position()
	m.target = nearest(pos, m.world.EnemiesInRadius(m.entity, pos, m.tpl.AggroRange), nil)
	if m.target != nil {
		slog.Debug("minion acquired target",
			"minion", m.entity,
			"target", m.target)
	}
}

func (m *Minion) walkLane(dt float64) {
	if m.next >= len(m.waypoints) {
		return
	}
	if m.entity.Position().Distance(m.waypoints[m.next]) < WaypointReach {
		m.next++
		if m.next >= len(m.waypoints) {
			return
		}
	}
	step(m.entity, m.waypoints[m.next], m.entity.Stats().MoveSpeed(), dt)
}
