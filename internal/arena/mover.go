package arena

import "github.com/udisondev/arenacore/internal/model"

// ArrivalEpsilon is how close counts as arrived.
const ArrivalEpsilon = 0.05

// DirectMover walks an entity in a straight line. Pathfinding lives
// outside the arena.
type DirectMover struct {
	entity *model.Entity
	speed  func() float64
	dest   model.Vec3
	moving bool
}

// NewDirectMover creates a mover for e. speed is read every tick.
func NewDirectMover(e *model.Entity, speed func() float64) *DirectMover {
	return &DirectMover{entity: e, speed: speed}
}

// RequestMoveTo sets the destination.
func (m *DirectMover) RequestMoveTo(p model.Vec3) {
	m.dest = p
	m.moving = true
}

// Stop halts movement.
func (m *DirectMover) Stop() { m.moving = false }

func (m *DirectMover) Moving() bool            { return m.moving }
func (m *DirectMover) Destination() model.Vec3 { return m.dest }

// Update moves the entity towards the destination for dt seconds.
func (m *DirectMover) Update(dt float64) {
	if !m.moving || !m.entity.IsAlive() {
		return
	}
	pos := m.entity.Position().MoveTowards(m.dest, m.speed()*dt)
	m.entity.SetPosition(pos)
	if pos.Distance(m.dest) <= ArrivalEpsilon {
		m.moving = false
	}
}
