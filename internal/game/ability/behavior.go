package ability

import (
	"fmt"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
)

// Behavior is the ability-specific execution effect.
type Behavior interface {
	Execute(s *State, t Target)
}

// Optional behavior hooks.
type (
	// TargetValidator adds constraints on top of the base range check.
	TargetValidator interface {
		ValidateTarget(s *State, t Target) bool
	}

	// BasicAttackHook observes the owner's landed basic attacks.
	BasicAttackHook interface {
		OnBasicAttackHit(s *State, target *model.Entity, dealt float64)
	}

	// Updater is advanced once per tick.
	Updater interface {
		Update(s *State, dt float64)
	}

	// Channeler reports a running dash or pull.
	Channeler interface {
		Channeling() bool
	}
)

// registry maps ability ID → behavior factory.
// Populated by init() in each kit file.
var registry = map[string]func() Behavior{}

// Register adds a behavior factory. Called from init().
func Register(id string, factory func() Behavior) {
	registry[id] = factory
}

// Registered reports whether id has a behavior.
func Registered(id string) bool {
	_, ok := registry[id]
	return ok
}

func newBehavior(id string) (Behavior, error) {
	factory, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("behavior %q: %w", id, data.ErrUnknownAbility)
	}
	return factory(), nil
}

// enemyUnit rejects unit targets that are not hostile to the owner.
type enemyUnit struct{}

func (enemyUnit) ValidateTarget(s *State, t Target) bool {
	return t.Unit.CanBeTargetedBy(s.Owner().Entity())
}
