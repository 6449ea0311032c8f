// Package projectile moves skillshot and homing projectiles once per tick
// and reports hits to the launching ability.
package projectile

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/model"
)

const (
	// MaxLifetime bounds every projectile, seconds.
	MaxLifetime = 5.0
	// HomingHitRange is the distance at which a homing projectile connects.
	HomingHitRange = 0.5
)

// Kind of motion.
type Kind int8

const (
	Linear Kind = iota // flies in a fixed direction up to MaxDistance
	Homing             // chases Target
)

// Spec describes a projectile to launch.
type Spec struct {
	Kind        Kind
	Speed       float64
	Radius      float64    // hit radius for Linear and for blocking
	Direction   model.Vec3 // Linear
	MaxDistance float64    // Linear, 0 means until lifetime runs out
	Target      *model.Entity

	HeroesOnly bool // Linear: only heroes are hit
	Blockable  bool // Homing: the first enemy hero or minion in the path absorbs it

	// OnHit is called once with the entity that was hit.
	OnHit func(target *model.Entity)
}

// Projectile is one flying projectile.
type Projectile struct {
	spec     Spec
	owner    *model.Entity
	position model.Vec3
	origin   model.Vec3
	born     float64
	done     bool
}

func (p *Projectile) Position() model.Vec3 { return p.position }
func (p *Projectile) Owner() *model.Entity { return p.owner }
func (p *Projectile) Done() bool           { return p.done }

// Candidates lists entities a projectile may collide with.
type Candidates interface {
	Entities() []*model.Entity
}

// Manager owns every projectile in flight.
type Manager struct {
	clock  clock.Clock
	world  Candidates
	flying []*Projectile
}

// NewManager creates a manager testing collisions against world.
func NewManager(clk clock.Clock, world Candidates) *Manager {
	return &Manager{clock: clk, world: world}
}

// Launch spawns a projectile at from.
func (m *Manager) Launch(owner *model.Entity, from model.Vec3, spec Spec) *Projectile {
	if spec.Kind == Linear {
		spec.Direction = spec.Direction.Normalized()
	}
	p := &Projectile{
		spec:     spec,
		owner:    owner,
		position: from,
		origin:   from,
		born:     m.clock.Now(),
	}
	m.flying = append(m.flying, p)

	slog.Debug("projectile launched",
		"owner", owner,
		"kind", spec.Kind,
		"speed", spec.Speed)
	return p
}

// Len returns the number of projectiles in flight.
func (m *Manager) Len() int { return len(m.flying) }

// Update advances every projectile by dt and drops finished ones.
func (m *Manager) Update(dt float64) {
	now := m.clock.Now()
	// OnHit may launch new projectiles; they start moving next tick.
	flying := m.flying
	for _, p := range flying {
		if !p.done {
			m.step(p, dt, now)
		}
	}

	alive := m.flying[:0]
	for _, p := range m.flying {
		if !p.done {
			alive = append(alive, p)
		}
	}
	clear(m.flying[len(alive):])
	m.flying = alive
}

func (m *Manager) step(p *Projectile, dt, now float64) {
	if now-p.born >= MaxLifetime {
		p.done = true
		return
	}

	switch p.spec.Kind {
	case Homing:
		m.stepHoming(p, dt)
	default:
		m.stepLinear(p, dt)
	}
}

func (m *Manager) stepHoming(p *Projectile, dt float64) {
	target := p.spec.Target
	if target == nil || !target.IsAlive() || target.Removed() {
		p.done = true
		return
	}

	from := p.position
	p.position = from.MoveTowards(target.Position(), p.spec.Speed*dt)

	if p.spec.Blockable {
		if blocker := m.firstHit(p, from, p.position, func(e *model.Entity) bool {
			return e != target && (e.Kind() == model.KindHero || e.Kind() == model.KindMinion)
		}); blocker != nil {
			m.hit(p, blocker)
			return
		}
	}

	if p.position.Distance(target.Position()) <= HomingHitRange {
		m.hit(p, target)
	}
}

func (m *Manager) stepLinear(p *Projectile, dt float64) {
	from := p.position
	step := p.spec.Speed * dt
	if p.spec.MaxDistance > 0 {
		if left := p.spec.MaxDistance - from.Distance(p.origin); left < step {
			step = left
		}
	}
	p.position = from.Add(p.spec.Direction.Scale(step))

	if e := m.firstHit(p, from, p.position, func(e *model.Entity) bool {
		return !p.spec.HeroesOnly || e.Kind() == model.KindHero
	}); e != nil {
		m.hit(p, e)
		return
	}

	if p.spec.MaxDistance > 0 && p.position.Distance(p.origin) >= p.spec.MaxDistance-1e-9 {
		p.done = true
	}
}

// firstHit returns the enemy closest to from whose position lies within
// Radius of the swept segment.
func (m *Manager) firstHit(p *Projectile, from, to model.Vec3, accept func(*model.Entity) bool) *model.Entity {
	if m.world == nil {
		return nil
	}

	var best *model.Entity
	bestDist := 0.0
	for _, e := range m.world.Entities() {
		if !e.CanBeTargetedBy(p.owner) || !accept(e) {
			continue
		}
		if e.Position().DistanceToSegment(from, to) > p.spec.Radius {
			continue
		}
		if d := from.Distance(e.Position()); best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func (m *Manager) hit(p *Projectile, target *model.Entity) {
	p.done = true
	slog.Debug("projectile hit",
		"owner", p.owner,
		"target", target)
	if p.spec.OnHit != nil {
		p.spec.OnHit(target)
	}
}
