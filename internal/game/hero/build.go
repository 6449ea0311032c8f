package hero

import (
	"fmt"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/ability"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/game/effect"
	"github.com/udisondev/arenacore/internal/model"
)

// Deps are the collaborators a hero is assembled with.
type Deps struct {
	ID       uint32
	Clock    clock.Clock
	World    ability.World
	Mover    func(e *model.Entity) ability.Mover
	Resolver *combat.Resolver // nil: crit-free resolver
	Balance  *data.Balance    // nil: DefaultBalance
}

// Build assembles a hero from its template: entity and stats, inventory,
// ability states for every non-empty slot and the passive. The entity's
// Data points back at the controller.
func Build(def *data.HeroTemplate, team model.Team, pos model.Vec3, deps Deps) (*Controller, error) {
	if deps.Balance == nil {
		deps.Balance = data.DefaultBalance()
	}
	if deps.Resolver == nil {
		deps.Resolver = combat.NewResolver(nil)
	}

	stats := model.NewStatBlock(deps.Clock, def.StatTemplate())
	e := model.NewEntity(deps.ID, def.Name, model.KindHero, team, pos, stats)

	c := &Controller{
		entity:     e,
		tpl:        def,
		clock:      deps.Clock,
		inventory:  model.NewInventory(e),
		effects:    effect.NewScheduler(deps.Clock),
		world:      deps.World,
		resolver:   deps.Resolver,
		balance:    deps.Balance,
		lastAttack: neverAttacked,
	}
	c.mover = deps.Mover(e)

	for slot, id := range def.Abilities {
		if id == "" {
			continue
		}
		tpl, err := deps.Balance.Ability(id)
		if err != nil {
			return nil, fmt.Errorf("hero %s slot %d: %w", def.ID, slot, err)
		}
		s, err := ability.New(tpl, c)
		if err != nil {
			return nil, fmt.Errorf("hero %s: %w", def.ID, err)
		}
		c.abilities[slot] = s
	}

	p, err := newPassive(def.Passive, c)
	if err != nil {
		return nil, fmt.Errorf("hero %s: %w", def.ID, err)
	}
	c.passive = p

	e.Data = c
	return c, nil
}

// BuildByID looks the hero up in the balance and builds it.
func BuildByID(id string, team model.Team, pos model.Vec3, deps Deps) (*Controller, error) {
	b := deps.Balance
	if b == nil {
		b = data.DefaultBalance()
		deps.Balance = b
	}
	def, err := b.Hero(id)
	if err != nil {
		return nil, fmt.Errorf("building hero: %w", err)
	}
	return Build(def, team, pos, deps)
}
