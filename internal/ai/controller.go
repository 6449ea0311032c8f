package ai

import (
	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/game/ability"
	"github.com/udisondev/arenacore/internal/model"
)

// Controller is an AI that drives one entity.
type Controller interface {
	// Tick runs decisions and behavior, once per simulation step.
	Tick(dt float64)

	// State returns the current state name.
	State() string
}

// Hero is the part of the hero orchestrator the AI drives. It is the same
// surface player input uses.
type Hero interface {
	Entity() *model.Entity
	Clock() clock.Clock
	Target() *model.Entity
	Ability(slot int) *ability.State

	SetAttackTarget(t *model.Entity) bool
	ClearTarget()
	MoveTo(p model.Vec3)
	UseAbility(slot int, t ability.Target) bool

	AbilityPoints() int
	LevelUpAbility(slot int) bool
	Buy(id string) (bool, error)
}

// World answers proximity queries.
type World interface {
	EnemiesInRadius(of *model.Entity, center model.Vec3, radius float64) []*model.Entity
}
