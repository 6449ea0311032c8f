package model

import (
	"log/slog"
	"math"

	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/formula"
)

// BaseStats - базовые характеристики сущности до бонусов и модификаторов.
type BaseStats struct {
	MaxHealth    float64
	MaxEnergy    float64
	HealthRegen  float64 // per second
	EnergyRegen  float64 // per second
	WeaponPower  float64
	CrystalPower float64
	AttackSpeed  float64 // 1.0 = 100%
	MoveSpeed    float64
	AttackRange  float64
	Armor        float64
	Shield       float64
}

// Growth is added to BaseStats on every level-up.
type Growth struct {
	Health      float64
	Energy      float64
	Armor       float64
	Shield      float64
	WeaponPower float64
	AttackSpeed float64
}

// StatTemplate describes how to build a StatBlock.
type StatTemplate struct {
	Base   BaseStats
	Growth Growth

	// Thresholds[i] is the total experience needed to reach level i+1.
	// Thresholds[0] is 0. Level cap is len(Thresholds).
	Thresholds  []int
	LevelUpHeal float64

	// PassiveGoldPerSec is credited while alive. Zero for non-heroes.
	PassiveGoldPerSec float64
}

// Hit is one incoming damage request.
type Hit struct {
	Amount        float64
	Type          formula.DamageType
	Source        *Entity
	FlatPierce    float64
	PercentPierce float64
}

// StatBlock - ресурсы (здоровье, энергия), базовые характеристики,
// активные модификаторы и постоянные бонусы от предметов одной сущности.
//
// Два состояния: жив (health > 0) и мёртв (health == 0).
// Из мёртвого состояния выводит только Revive/FullHeal.
//
// Not safe for concurrent use. Each entity owns its StatBlock and the
// simulation advances every entity from a single goroutine.
type StatBlock struct {
	clock clock.Clock
	owner *Entity

	base        BaseStats
	growth      Growth
	thresholds  []int
	levelUpHeal float64
	passiveGold float64
	goldFrac    float64

	health     float64
	energy     float64
	level      int
	experience int
	gold       int

	modifiers []Modifier
	mult      [statTypeCount]float64

	flat        map[string]FlatBonus
	flatSum     [statTypeCount]float64
	energyBonus float64 // item max energy

	lastSource   *Entity
	invulnerable func() bool
}

// NewStatBlock creates a StatBlock at level 1 with full pools.
func NewStatBlock(clk clock.Clock, t StatTemplate) *StatBlock {
	s := &StatBlock{
		clock:       clk,
		base:        t.Base,
		growth:      t.Growth,
		thresholds:  t.Thresholds,
		levelUpHeal: t.LevelUpHeal,
		passiveGold: t.PassiveGoldPerSec,
		level:       1,
		flat:        make(map[string]FlatBonus),
	}
	s.recalculate()
	s.health = s.MaxHealth()
	s.energy = s.MaxEnergy()
	return s
}

// Owner returns the entity this block belongs to, nil if detached.
func (s *StatBlock) Owner() *Entity { return s.owner }

// Base returns a copy of the current base stats (after level growth).
func (s *StatBlock) Base() BaseStats { return s.base }

// --- pools ---

func (s *StatBlock) Health() float64 { return s.health }

// MaxHealth = base + Σ flat MaxHealth bonuses.
func (s *StatBlock) MaxHealth() float64 {
	return s.base.MaxHealth + s.flatSum[StatMaxHealth]
}

func (s *StatBlock) Energy() float64 { return s.energy }

// MaxEnergy = base + item max energy.
func (s *StatBlock) MaxEnergy() float64 {
	return s.base.MaxEnergy + s.energyBonus
}

// SetMaxEnergyBonus replaces the item max energy bonus. Current energy is
// kept, clamped to the new cap.
func (s *StatBlock) SetMaxEnergyBonus(v float64) {
	if v == s.energyBonus {
		return
	}
	s.energyBonus = v
	if maxEnergy := s.MaxEnergy(); s.energy > maxEnergy {
		s.energy = maxEnergy
		s.notifyEnergy()
	}
}

// HealthPercent returns health/max in [0,1].
func (s *StatBlock) HealthPercent() float64 {
	maxHP := s.MaxHealth()
	if maxHP <= 0 {
		return 0
	}
	return s.health / maxHP
}

// EnergyPercent returns energy/max in [0,1].
func (s *StatBlock) EnergyPercent() float64 {
	maxEnergy := s.MaxEnergy()
	if maxEnergy <= 0 {
		return 0
	}
	return s.energy / maxEnergy
}

func (s *StatBlock) IsAlive() bool { return s.health > 0 }

// LastDamageSource returns the last non-nil source that damaged this block.
func (s *StatBlock) LastDamageSource() *Entity { return s.lastSource }

// SetInvulnerableWhen installs a predicate checked before every hit.
// While it returns true incoming damage is rejected outright.
func (s *StatBlock) SetInvulnerableWhen(fn func() bool) {
	s.invulnerable = fn
}

// IsInvulnerable reports whether incoming damage is currently rejected.
func (s *StatBlock) IsInvulnerable() bool {
	return s.invulnerable != nil && s.invulnerable()
}

// SetHealth overrides current health for scripted setups. Clamped to
// (0, MaxHealth]; ignored on a dead block and for non-positive values.
func (s *StatBlock) SetHealth(v float64) {
	if !s.IsAlive() || v <= 0 {
		return
	}
	s.health = math.Min(v, s.MaxHealth())
	s.notifyHealth()
}

// TakeDamage resolves the hit against current defenses and subtracts the
// result from health. Returns the health actually removed.
//
// No-op on a dead or invulnerable block. A non-nil source becomes the kill
// credit holder. Reaching zero health fires Died and DiedWithKiller.
func (s *StatBlock) TakeDamage(hit Hit) float64 {
	if !s.IsAlive() {
		return 0
	}

	res := formula.Resolve(
		formula.Request{
			Amount:        hit.Amount,
			Type:          hit.Type,
			FlatPierce:    hit.FlatPierce,
			PercentPierce: hit.PercentPierce,
		},
		formula.Defense{
			Armor:                 s.Armor(),
			Shield:                s.Shield(),
			DamageTakenMultiplier: s.DamageTakenMultiplier(),
			Invulnerable:          s.IsInvulnerable(),
		},
	)
	if res.Rejected {
		return 0
	}

	if hit.Source != nil {
		s.lastSource = hit.Source
	}

	before := s.health
	s.health = math.Max(0, s.health-res.Amount)
	dealt := before - s.health

	if e := s.owner; e != nil {
		e.events.notify(func(l Listener) { l.Damaged(e, hit.Source, dealt, hit.Type) })
	}
	s.notifyHealth()

	if s.health <= 0 {
		s.health = 0
		s.die()
	}
	return dealt
}

func (s *StatBlock) die() {
	e := s.owner
	if e == nil {
		return
	}
	killer := s.lastSource

	slog.Debug("entity died",
		"entity", e.Name(),
		"killer", killerName(killer))

	e.events.notify(func(l Listener) { l.Died(e) })
	e.events.notify(func(l Listener) { l.DiedWithKiller(e, killer) })
}

func killerName(k *Entity) string {
	if k == nil {
		return ""
	}
	return k.Name()
}

// Heal restores health up to MaxHealth and notifies. No-op when dead.
func (s *StatBlock) Heal(amount float64) {
	s.heal(amount, true)
}

// HealSilently is Heal without the health-changed notification.
func (s *StatBlock) HealSilently(amount float64) {
	s.heal(amount, false)
}

func (s *StatBlock) heal(amount float64, notify bool) {
	if !s.IsAlive() || amount <= 0 {
		return
	}
	s.health = math.Min(s.MaxHealth(), s.health+amount)
	if notify {
		s.notifyHealth()
	}
}

// UseEnergy spends amount if available. Either the whole amount is spent
// or nothing changes.
func (s *StatBlock) UseEnergy(amount float64) bool {
	if !s.IsAlive() || amount < 0 || s.energy < amount {
		return false
	}
	s.energy -= amount
	s.notifyEnergy()
	return true
}

// HasEnergy reports whether amount could be spent right now.
func (s *StatBlock) HasEnergy(amount float64) bool {
	return s.energy >= amount
}

// RestoreEnergy adds energy up to MaxEnergy and notifies. No-op when dead.
func (s *StatBlock) RestoreEnergy(amount float64) {
	s.restoreEnergy(amount, true)
}

// RestoreEnergySilently is RestoreEnergy without notification.
func (s *StatBlock) RestoreEnergySilently(amount float64) {
	s.restoreEnergy(amount, false)
}

func (s *StatBlock) restoreEnergy(amount float64, notify bool) {
	if !s.IsAlive() || amount <= 0 {
		return
	}
	s.energy = math.Min(s.MaxEnergy(), s.energy+amount)
	if notify {
		s.notifyEnergy()
	}
}

// FullHeal fills both pools. Works on a dead block too, which makes it
// the revive transition.
func (s *StatBlock) FullHeal() {
	s.health = s.MaxHealth()
	s.energy = s.MaxEnergy()
	s.notifyHealth()
	s.notifyEnergy()
}

// Revive resets a block for respawn: full pools, every modifier dropped,
// kill credit forgotten. Flat item bonuses stay.
func (s *StatBlock) Revive() {
	clear(s.modifiers)
	s.modifiers = s.modifiers[:0]
	s.recalculate()
	s.lastSource = nil
	s.goldFrac = 0
	s.FullHeal()
}

// SetBaseStats overrides health, weapon power and armor of a non-hero unit
// and refills its pools. Turrets and the crystal are tuned this way.
func (s *StatBlock) SetBaseStats(maxHealth, weaponPower, armor float64) {
	s.base.MaxHealth = maxHealth
	s.base.WeaponPower = weaponPower
	s.base.Armor = armor
	s.health = s.MaxHealth()
	s.notifyHealth()
}

// --- derived stats ---

func (s *StatBlock) WeaponPower() float64 {
	return s.base.WeaponPower + s.flatSum[StatWeaponPower]
}

func (s *StatBlock) CrystalPower() float64 {
	return s.base.CrystalPower + s.flatSum[StatCrystalPower]
}

func (s *StatBlock) Armor() float64 {
	return s.base.Armor + s.flatSum[StatArmor]
}

func (s *StatBlock) Shield() float64 {
	return s.base.Shield + s.flatSum[StatShield]
}

func (s *StatBlock) AttackRange() float64 { return s.base.AttackRange }

func (s *StatBlock) HealthRegen() float64 {
	return s.base.HealthRegen + s.flatSum[StatHealthRegen]
}

func (s *StatBlock) EnergyRegen() float64 {
	return s.base.EnergyRegen + s.flatSum[StatEnergyRegen]
}

// AttackSpeed = (base + flat) × live AttackSpeed modifiers.
func (s *StatBlock) AttackSpeed() float64 {
	return (s.base.AttackSpeed + s.flatSum[StatAttackSpeed]) * s.multiplier(StatAttackSpeed)
}

// MoveSpeed = (base + flat) × live MoveSpeed modifiers.
func (s *StatBlock) MoveSpeed() float64 {
	return (s.base.MoveSpeed + s.flatSum[StatMoveSpeed]) * s.multiplier(StatMoveSpeed)
}

func (s *StatBlock) MoveSpeedMultiplier() float64   { return s.multiplier(StatMoveSpeed) }
func (s *StatBlock) AttackSpeedMultiplier() float64 { return s.multiplier(StatAttackSpeed) }
func (s *StatBlock) DamageDealtMultiplier() float64 { return s.multiplier(StatDamageDealt) }
func (s *StatBlock) DamageTakenMultiplier() float64 { return s.multiplier(StatDamageTaken) }

func (s *StatBlock) multiplier(st StatType) float64 {
	s.purgeExpired()
	return s.mult[st]
}

// --- modifiers ---

// ApplyModifier adds or replaces the modifier with the given id.
// duration <= 0 makes it permanent until RemoveModifier.
func (s *StatBlock) ApplyModifier(id string, stat StatType, multiplier, duration float64) {
	s.dropModifier(id)
	s.modifiers = append(s.modifiers, Modifier{
		ID:         id,
		Stat:       stat,
		Multiplier: multiplier,
		CreatedAt:  s.clock.Now(),
		Duration:   duration,
	})
	s.recalculate()
}

// RemoveModifier removes the modifier by id. Returns false if absent.
func (s *StatBlock) RemoveModifier(id string) bool {
	if !s.dropModifier(id) {
		return false
	}
	s.recalculate()
	return true
}

// Modifier returns the live modifier with the given id.
func (s *StatBlock) Modifier(id string) (Modifier, bool) {
	s.purgeExpired()
	for _, m := range s.modifiers {
		if m.ID == id {
			return m, true
		}
	}
	return Modifier{}, false
}

// Modifiers returns a copy of all live modifiers in application order.
func (s *StatBlock) Modifiers() []Modifier {
	s.purgeExpired()
	out := make([]Modifier, len(s.modifiers))
	copy(out, s.modifiers)
	return out
}

func (s *StatBlock) dropModifier(id string) bool {
	for i, m := range s.modifiers {
		if m.ID == id {
			s.modifiers = append(s.modifiers[:i], s.modifiers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *StatBlock) purgeExpired() {
	now := s.clock.Now()
	kept := s.modifiers[:0]
	for _, m := range s.modifiers {
		if m.Live(now) {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(s.modifiers) {
		return
	}
	s.modifiers = kept
	s.recalculate()
}

// recalculate rebuilds the multiplier cache from scratch.
func (s *StatBlock) recalculate() {
	for i := range s.mult {
		s.mult[i] = 1
	}
	for _, m := range s.modifiers {
		s.mult[m.Stat] *= m.Multiplier
	}
}

// --- flat bonuses ---

// AddFlatBonus sets the bonus with the given id, replacing any previous value.
func (s *StatBlock) AddFlatBonus(id string, stat StatType, value float64) {
	s.flat[id] = FlatBonus{Stat: stat, Value: value}
	s.resumFlat()
}

// RemoveFlatBonus removes a bonus by id. Returns false if absent.
func (s *StatBlock) RemoveFlatBonus(id string) bool {
	if _, ok := s.flat[id]; !ok {
		return false
	}
	delete(s.flat, id)
	s.resumFlat()
	return true
}

// FlatBonus returns the summed flat bonus for one stat.
func (s *StatBlock) FlatBonus(stat StatType) float64 {
	return s.flatSum[stat]
}

func (s *StatBlock) resumFlat() {
	s.flatSum = [statTypeCount]float64{}
	for _, b := range s.flat {
		s.flatSum[b.Stat] += b.Value
	}
	if maxHP := s.MaxHealth(); s.health > maxHP {
		s.health = maxHP
		s.notifyHealth()
	}
}

// --- per tick ---

// Advance runs one tick of regen, passive income and modifier expiry.
// Regen never overshoots the cap and is suppressed while dead.
func (s *StatBlock) Advance(dt float64) {
	s.purgeExpired()
	if dt <= 0 || !s.IsAlive() {
		return
	}

	if s.health < s.MaxHealth() {
		s.heal(s.HealthRegen()*dt, false)
	}
	if s.energy < s.MaxEnergy() {
		s.restoreEnergy(s.EnergyRegen()*dt, false)
	}

	if s.passiveGold > 0 {
		s.goldFrac += s.passiveGold * dt
		if whole := int(s.goldFrac); whole > 0 {
			s.goldFrac -= float64(whole)
			s.AddGold(whole)
		}
	}
}

// --- progression ---

func (s *StatBlock) Level() int      { return s.level }
func (s *StatBlock) Experience() int { return s.experience }

// MaxLevel returns the level cap implied by the threshold table.
func (s *StatBlock) MaxLevel() int {
	if len(s.thresholds) == 0 {
		return 1
	}
	return len(s.thresholds)
}

// NextLevelExperience returns the experience required for the next level,
// or -1 at the cap.
func (s *StatBlock) NextLevelExperience() int {
	if s.level >= len(s.thresholds) {
		return -1
	}
	return s.thresholds[s.level]
}

// AddExperience grants experience and applies every level-up it unlocks.
// Bounded by the threshold table.
func (s *StatBlock) AddExperience(amount int) {
	if amount <= 0 {
		return
	}
	s.experience += amount

	for s.level < len(s.thresholds) && s.experience >= s.thresholds[s.level] {
		s.level++
		s.applyGrowth()

		if e := s.owner; e != nil {
			level := s.level
			slog.Debug("level up", "entity", e.Name(), "level", level)
			e.events.notify(func(l Listener) { l.LevelUp(e, level) })
		}
	}
}

func (s *StatBlock) applyGrowth() {
	g := s.growth
	s.base.MaxHealth += g.Health
	s.base.MaxEnergy += g.Energy
	s.base.Armor += g.Armor
	s.base.Shield += g.Shield
	s.base.WeaponPower += g.WeaponPower
	s.base.AttackSpeed += g.AttackSpeed

	s.heal(s.levelUpHeal, true)
	if maxHP := s.MaxHealth(); s.health > maxHP {
		s.health = maxHP
	}
}

// --- gold ---

func (s *StatBlock) Gold() int { return s.gold }

// AddGold credits gold. Non-positive amounts are ignored.
func (s *StatBlock) AddGold(amount int) {
	if amount <= 0 {
		return
	}
	s.gold += amount
	s.notifyGold()
}

// SpendGold debits amount if the balance covers it.
func (s *StatBlock) SpendGold(amount int) bool {
	if amount < 0 || s.gold < amount {
		return false
	}
	s.gold -= amount
	s.notifyGold()
	return true
}

// --- notifications ---

func (s *StatBlock) notifyHealth() {
	if e := s.owner; e != nil {
		cur, maxHP := s.health, s.MaxHealth()
		e.events.notify(func(l Listener) { l.HealthChanged(e, cur, maxHP) })
	}
}

func (s *StatBlock) notifyEnergy() {
	if e := s.owner; e != nil {
		cur, maxEnergy := s.energy, s.MaxEnergy()
		e.events.notify(func(l Listener) { l.EnergyChanged(e, cur, maxEnergy) })
	}
}

func (s *StatBlock) notifyGold() {
	if e := s.owner; e != nil {
		gold := s.gold
		e.events.notify(func(l Listener) { l.GoldChanged(e, gold) })
	}
}
