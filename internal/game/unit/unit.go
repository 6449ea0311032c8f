// Package unit drives the non-hero actors of the arena: lane minions,
// turrets, the vain crystal and jungle camps.
package unit

import (
	"math"

	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
)

var neverAttacked = math.Inf(-1)

// World is the arena as seen by units. Injected to avoid an import
// cycle with the arena package.
type World interface {
	EnemiesInRadius(of *model.Entity, center model.Vec3, radius float64) []*model.Entity
	AlliesInRadius(of *model.Entity, center model.Vec3, radius float64) []*model.Entity
	Launch(owner *model.Entity, from model.Vec3, spec projectile.Spec) *projectile.Projectile
}

// Unit is anything the arena ticks after the heroes.
type Unit interface {
	Entity() *model.Entity
	Update(dt float64)
}

// Bounty is implemented by entities worth gold and experience to their killer.
type Bounty interface {
	Reward() (gold, xp int)
}

// Rewardee receives gold and experience outside of a last hit.
type Rewardee interface {
	GrantReward(gold, xp int)
}

// strike deals a physical hit of the unit's weapon power.
func strike(src, target *model.Entity, amount float64) {
	target.Stats().TakeDamage(model.Hit{
		Amount: amount * src.Stats().DamageDealtMultiplier(),
		Type:   formula.Physical,
		Source: src,
	})
}

// nearest returns the closest entity to from that matches keep, nil if none.
func nearest(from model.Vec3, list []*model.Entity, keep func(*model.Entity) bool) *model.Entity {
	var (
		best     *model.Entity
		bestDist float64
	)
	for _, e := range list {
		if keep != nil && !keep(e) {
			continue
		}
		d := from.DistanceSquared(e.Position())
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// step moves e towards dest at speed for dt seconds.
func step(e *model.Entity, dest model.Vec3, speed, dt float64) {
	e.SetPosition(e.Position().MoveTowards(dest, speed*dt))
}

func isHero(e *model.Entity) bool { return e.Kind() == model.KindHero }
