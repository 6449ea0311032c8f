package hero

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/game/ability"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/game/effect"
	"github.com/udisondev/arenacore/internal/model"
)

var ErrUnknownPassive = errors.New("unknown passive")

var neverAttacked = math.Inf(-1)

// Controller - боевой оркестратор героя. Владеет StatBlock (через Entity),
// четырьмя слотами способностей, инвентарём и пассивкой. Все ссылки
// передаются при сборке в Build, поиск соседей по типу не используется.
type Controller struct {
	entity    *model.Entity
	tpl       *data.HeroTemplate
	clock     clock.Clock
	inventory *model.Inventory
	abilities [data.HeroAbilitySlots]*ability.State
	effects   *effect.Scheduler
	world     ability.World
	mover     ability.Mover
	passive   Passive
	resolver  *combat.Resolver
	balance   *data.Balance

	target     *model.Entity
	lastAttack float64
	spent      int // ability points spent
}

// --- ability.Owner ---

func (c *Controller) Entity() *model.Entity      { return c.entity }
func (c *Controller) Clock() clock.Clock         { return c.clock }
func (c *Controller) Effects() *effect.Scheduler { return c.effects }
func (c *Controller) World() ability.World       { return c.world }
func (c *Controller) Mover() ability.Mover       { return c.mover }
func (c *Controller) Passive() any               { return c.passive }

func (c *Controller) Template() *data.HeroTemplate { return c.tpl }
func (c *Controller) Inventory() *model.Inventory  { return c.inventory }
func (c *Controller) HeroPassive() Passive         { return c.passive }

func (c *Controller) CooldownReduction() float64 {
	return c.inventory.Bonuses().CooldownReduction
}

// WeaponPower includes the flat item addend.
func (c *Controller) WeaponPower() float64 {
	return c.entity.Stats().WeaponPower() + c.inventory.Bonuses().WeaponPower
}

// CrystalPower already carries items through the flat-bonus sync.
func (c *Controller) CrystalPower() float64 {
	return c.entity.Stats().CrystalPower()
}

// Pierce returns item penetration against the defense matching t.
func (c *Controller) Pierce(t formula.DamageType) (flat, percent float64) {
	b := c.inventory.Bonuses()
	switch t {
	case formula.Physical:
		return b.ArmorPierce, b.ArmorPiercePercent
	case formula.Crystal:
		return b.ShieldPierce, b.ShieldPiercePercent
	default:
		return 0, 0
	}
}

// Ability returns the state in slot, nil for an empty or invalid slot.
func (c *Controller) Ability(slot int) *ability.State {
	if slot < 0 || slot >= len(c.abilities) {
		return nil
	}
	return c.abilities[slot]
}

// --- targeting and movement ---

// SetAttackTarget sets the basic attack target.
// Self, allies and dead units are rejected.
func (c *Controller) SetAttackTarget(t *model.Entity) bool {
	if t == nil || t == c.entity || !t.CanBeTargetedBy(c.entity) {
		return false
	}
	c.target = t
	return true
}

func (c *Controller) ClearTarget() { c.target = nil }

func (c *Controller) Target() *model.Entity { return c.target }

// MoveTo clears the attack target and walks to p.
func (c *Controller) MoveTo(p model.Vec3) {
	c.target = nil
	c.mover.RequestMoveTo(p)
}

// Stop halts movement without touching the target.
func (c *Controller) Stop() { c.mover.Stop() }

// --- abilities ---

// UseAbility activates the ability in slot. This is the single
// activation entry point for player input and AI alike.
func (c *Controller) UseAbility(slot int, t ability.Target) bool {
	a := c.Ability(slot)
	if a == nil || c.Channeling() {
		return false
	}
	return a.TryActivate(t)
}

// AbilityPoints returns unspent points: one per hero level above the first.
func (c *Controller) AbilityPoints() int {
	return c.entity.Stats().Level() - 1 - c.spent
}

// LevelUpAbility spends one point on slot.
func (c *Controller) LevelUpAbility(slot int) bool {
	a := c.Ability(slot)
	if a == nil || c.AbilityPoints() <= 0 {
		return false
	}
	if !a.LevelUp() {
		return false
	}
	c.spent++
	return true
}

// Channeling reports whether a dash or pull owns movement right now.
func (c *Controller) Channeling() bool {
	for _, a := range c.abilities {
		if a != nil && a.Channeling() {
			return true
		}
	}
	return false
}

// --- shop ---

// Buy purchases the catalogue item id.
func (c *Controller) Buy(id string) (bool, error) {
	it, err := c.balance.Item(id)
	if err != nil {
		return false, fmt.Errorf("buying: %w", err)
	}
	return c.inventory.TryPurchase(it), nil
}

// Sell sells the item in slot at the standard refund.
func (c *Controller) Sell(slot int) (*model.Item, error) {
	return c.inventory.SellItem(slot)
}

// --- attack ---

// AttackSpeed is the stat layer times the item layer.
func (c *Controller) AttackSpeed() float64 {
	return combat.EffectiveAttackSpeed(c.entity.Stats(), c.inventory.Bonuses().AttackSpeed)
}

// MoveSpeed is the walk speed with the item addend under the same
// multipliers, so a stun still pins the hero.
func (c *Controller) MoveSpeed() float64 {
	stats := c.entity.Stats()
	return stats.MoveSpeed() + c.inventory.Bonuses().MoveSpeed*stats.MoveSpeedMultiplier()
}

// LastAttack returns the time of the last basic attack.
func (c *Controller) LastAttack() float64 { return c.lastAttack }

func (c *Controller) attacker() combat.Attacker {
	b := c.inventory.Bonuses()
	return combat.Attacker{
		Entity:          c.entity,
		ItemWeaponPower: b.WeaponPower,
		CritChance:      b.CritChance,
		CritDamage:      b.CritDamage,
		Lifesteal:       b.Lifesteal,
		FlatPierce:      b.ArmorPierce,
		PercentPierce:   b.ArmorPiercePercent,
	}
}

// UpdateAttackCycle runs the basic attack cycle once per tick.
func (c *Controller) UpdateAttackCycle(float64) {
	if !c.entity.IsAlive() || c.Channeling() {
		return
	}
	if c.target == nil {
		return
	}
	if !c.target.CanBeTargetedBy(c.entity) {
		slog.Debug("attack target lost",
			"hero", c.entity,
			"target", c.target)
		c.target = nil
		c.mover.Stop()
		return
	}

	if c.entity.DistanceTo(c.target) > c.entity.Stats().AttackRange() {
		c.mover.RequestMoveTo(c.target.Position())
		return
	}
	c.mover.Stop()

	now := c.clock.Now()
	if now < c.lastAttack+combat.AttackInterval(c.AttackSpeed()) {
		return
	}
	c.lastAttack = now

	a := c.attacker()
	c.passive.ModifyAttack(&a, c.target)
	res := c.resolver.BasicAttack(a, c.target)
	c.passive.OnAttackHit(c.target, res)
	for _, s := range c.abilities {
		if s != nil {
			s.OnBasicAttackHit(c.target, res.Dealt)
		}
	}
}

// UpdateAbilities advances the passive and staged ability phases.
// Abilities run even while dead so an interrupted dash can abort.
func (c *Controller) UpdateAbilities(dt float64) {
	if c.entity.IsAlive() {
		c.passive.Update(dt)
	}
	for _, a := range c.abilities {
		if a != nil {
			a.Update(dt)
		}
	}
}

// Update runs both halves of the per-tick controller update.
func (c *Controller) Update(dt float64) {
	c.UpdateAbilities(dt)
	c.UpdateAttackCycle(dt)
}

// --- kills and respawn ---

// Reward is what killing this hero is worth.
func (c *Controller) Reward() (gold, xp int) {
	return data.HeroKillGold, data.HeroKillExperience
}

// GrantReward adds gold and experience without counting a kill.
func (c *Controller) GrantReward(gold, xp int) {
	stats := c.entity.Stats()
	if gold > 0 {
		stats.AddGold(gold)
	}
	if xp > 0 {
		stats.AddExperience(xp)
	}
}

// AwardKill credits the hero with a kill of victim.
func (c *Controller) AwardKill(victim *model.Entity, gold, xp int) {
	c.GrantReward(gold, xp)
	c.passive.OnKill(victim)

	slog.Debug("kill awarded",
		"hero", c.entity,
		"victim", victim,
		"gold", gold,
		"xp", xp)
}

// Respawn revives the hero at pos with a clean combat state.
func (c *Controller) Respawn(pos model.Vec3) {
	c.entity.SetPosition(pos)
	c.entity.Stats().Revive()
	c.effects.CancelAll()
	c.passive.Reset()
	c.mover.Stop()
	c.target = nil
	c.lastAttack = neverAttacked

	slog.Info("hero respawned",
		"hero", c.entity,
		"level", c.entity.Stats().Level())
}
