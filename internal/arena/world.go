package arena

import (
	"fmt"
	"slices"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
)

// World is the entity registry of one match. Iteration follows insertion
// order so every query is deterministic.
//
// World satisfies the world views of abilities, units, AI and projectiles.
type World struct {
	entities    []*model.Entity
	byID        map[uint32]*model.Entity
	projectiles *projectile.Manager
}

// NewWorld creates an empty world with its own projectile manager.
func NewWorld(clk clock.Clock) *World {
	w := &World{byID: make(map[uint32]*model.Entity)}
	w.projectiles = projectile.NewManager(clk, w)
	return w
}

// Add registers e. Returns error if the ID is taken.
func (w *World) Add(e *model.Entity) error {
	if _, ok := w.byID[e.ID()]; ok {
		return fmt.Errorf("entity %d already in world", e.ID())
	}
	w.byID[e.ID()] = e
	w.entities = append(w.entities, e)
	return nil
}

// Remove marks the entity gone and drops it from the registry.
func (w *World) Remove(id uint32) {
	e, ok := w.byID[id]
	if !ok {
		return
	}
	e.Remove()
	delete(w.byID, id)
	w.entities = slices.DeleteFunc(w.entities, func(x *model.Entity) bool { return x == e })
}

// Get returns the entity with id.
func (w *World) Get(id uint32) (*model.Entity, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// Entities returns every registered entity, dead heroes included.
func (w *World) Entities() []*model.Entity { return w.entities }

// Len returns the number of registered entities.
func (w *World) Len() int { return len(w.entities) }

// Projectiles returns the projectile manager of the world.
func (w *World) Projectiles() *projectile.Manager { return w.projectiles }

// Launch fires a projectile owned by owner.
func (w *World) Launch(owner *model.Entity, from model.Vec3, spec projectile.Spec) *projectile.Projectile {
	return w.projectiles.Launch(owner, from, spec)
}

// EnemiesInRadius returns live enemies of of within radius of center.
func (w *World) EnemiesInRadius(of *model.Entity, center model.Vec3, radius float64) []*model.Entity {
	return w.query(center, radius, func(e *model.Entity) bool {
		return e.CanBeTargetedBy(of)
	})
}

// AlliesInRadius returns live teammates of of within radius of center,
// excluding of itself.
func (w *World) AlliesInRadius(of *model.Entity, center model.Vec3, radius float64) []*model.Entity {
	return w.query(center, radius, func(e *model.Entity) bool {
		return e != of && e.IsAlive() && e.Team() == of.Team()
	})
}

// Nearest returns the closest live entity within radius accepted by keep.
func (w *World) Nearest(center model.Vec3, radius float64, keep func(*model.Entity) bool) *model.Entity {
	var (
		best     *model.Entity
		bestDist float64
	)
	r2 := radius * radius
	for _, e := range w.entities {
		if !e.IsAlive() || (keep != nil && !keep(e)) {
			continue
		}
		d := center.DistanceSquared(e.Position())
		if d > r2 {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func (w *World) query(center model.Vec3, radius float64, keep func(*model.Entity) bool) []*model.Entity {
	var out []*model.Entity
	r2 := radius * radius
	for _, e := range w.entities {
		if center.DistanceSquared(e.Position()) <= r2 && keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Prune drops removed entities and dead non-heroes. Heroes stay
// registered while they wait for respawn. Returns the number dropped.
func (w *World) Prune() int {
	before := len(w.entities)
	w.entities = slices.DeleteFunc(w.entities, func(e *model.Entity) bool {
		gone := e.Removed() || (!e.IsAlive() && e.Kind() != model.KindHero)
		if gone {
			e.Remove()
			delete(w.byID, e.ID())
		}
		return gone
	})
	return before - len(w.entities)
}
