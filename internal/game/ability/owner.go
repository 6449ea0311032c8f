package ability

import (
	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/game/effect"
	"github.com/udisondev/arenacore/internal/game/projectile"
	"github.com/udisondev/arenacore/internal/model"
)

// Owner is what an ability needs from the hero that carries it.
// The hero controller implements it; abilities never look siblings up
// by type.
type Owner interface {
	Entity() *model.Entity
	Clock() clock.Clock

	CooldownReduction() float64
	// WeaponPower includes the flat item addend.
	WeaponPower() float64
	CrystalPower() float64
	Pierce(t formula.DamageType) (flat, percent float64)

	Ability(slot int) *State
	Effects() *effect.Scheduler
	World() World
	Mover() Mover

	// Passive returns the hero passive. Kits type-assert the hooks they need.
	Passive() any
}

// World is the arena as seen by abilities.
type World interface {
	Launch(owner *model.Entity, from model.Vec3, spec projectile.Spec) *projectile.Projectile
	EnemiesInRadius(of *model.Entity, center model.Vec3, radius float64) []*model.Entity
}

// Mover is the movement collaborator. Pathfinding lives outside the core.
type Mover interface {
	RequestMoveTo(p model.Vec3)
	Stop()
}

// Passive hooks used by kits.
type (
	// WeaknessConsumer removes and returns the weakness stacks on target.
	WeaknessConsumer interface {
		ConsumeWeaknessStacks(target *model.Entity) int
	}

	// Stealther puts the owner in stealth healing healPerSec.
	Stealther interface {
		EnterStealth(duration, healPerSec float64)
	}

	// KiGainer grants one Ki stack.
	KiGainer interface {
		AddKiStack()
	}
)
