package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/arenacore/internal/model"
)

// Balance is a private copy of the balance tables that a match reads from.
// Overrides never touch the package level tables.
type Balance struct {
	Heroes    map[string]*HeroTemplate
	Abilities map[string]*AbilityTemplate
	Items     map[string]*model.Item
}

// DefaultBalance returns a copy of the built-in tables.
func DefaultBalance() *Balance {
	b := &Balance{
		Heroes:    make(map[string]*HeroTemplate, len(HeroTable)),
		Abilities: make(map[string]*AbilityTemplate, len(AbilityTable)),
		Items:     make(map[string]*model.Item, len(ItemTable)),
	}
	for id, h := range HeroTable {
		c := *h
		b.Heroes[id] = &c
	}
	for id, a := range AbilityTable {
		c := *a
		b.Abilities[id] = &c
	}
	for id, it := range ItemTable {
		c := *it
		b.Items[id] = &c
	}
	return b
}

// Hero returns the hero template for id.
func (b *Balance) Hero(id string) (*HeroTemplate, error) {
	h, ok := b.Heroes[id]
	if !ok {
		return nil, fmt.Errorf("hero %q: %w", id, ErrUnknownHero)
	}
	return h, nil
}

// Ability returns the ability template for id.
func (b *Balance) Ability(id string) (*AbilityTemplate, error) {
	a, ok := b.Abilities[id]
	if !ok {
		return nil, fmt.Errorf("ability %q: %w", id, ErrUnknownAbility)
	}
	return a, nil
}

// Item returns the catalogue item for id.
func (b *Balance) Item(id string) (*model.Item, error) {
	it, ok := b.Items[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrUnknownItem)
	}
	return it, nil
}

// balanceFile is the YAML override document. Absent fields keep defaults.
type balanceFile struct {
	Heroes    map[string]heroOverride    `yaml:"heroes"`
	Abilities map[string]abilityOverride `yaml:"abilities"`
	Items     map[string]itemOverride    `yaml:"items"`
}

type heroOverride struct {
	MaxHealth   *float64 `yaml:"max_health"`
	MaxEnergy   *float64 `yaml:"max_energy"`
	HealthRegen *float64 `yaml:"health_regen"`
	EnergyRegen *float64 `yaml:"energy_regen"`
	WeaponPower *float64 `yaml:"weapon_power"`
	AttackSpeed *float64 `yaml:"attack_speed"`
	MoveSpeed   *float64 `yaml:"move_speed"`
	AttackRange *float64 `yaml:"attack_range"`
	Armor       *float64 `yaml:"armor"`
	Shield      *float64 `yaml:"shield"`
}

type abilityOverride struct {
	Damage     []float64 `yaml:"damage"`
	EnergyCost []float64 `yaml:"energy_cost"`
	Cooldown   []float64 `yaml:"cooldown"`
	Range      *float64  `yaml:"range"`
}

type itemOverride struct {
	Cost              *int     `yaml:"cost"`
	WeaponPower       *float64 `yaml:"weapon_power"`
	CrystalPower      *float64 `yaml:"crystal_power"`
	MaxHealth         *float64 `yaml:"max_health"`
	AttackSpeed       *float64 `yaml:"attack_speed"`
	Armor             *float64 `yaml:"armor"`
	Shield            *float64 `yaml:"shield"`
	Lifesteal         *float64 `yaml:"lifesteal"`
	CritChance        *float64 `yaml:"crit_chance"`
	CooldownReduction *float64 `yaml:"cooldown_reduction"`
}

// LoadBalance loads balance overrides from a YAML file on top of the defaults.
// An empty path or a missing file returns the defaults.
func LoadBalance(path string) (*Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return b, fmt.Errorf("reading balance %s: %w", path, err)
	}

	if err := b.apply(raw); err != nil {
		return b, fmt.Errorf("parsing balance %s: %w", path, err)
	}
	return b, nil
}

func (b *Balance) apply(raw []byte) error {
	var f balanceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return err
	}

	for id, o := range f.Heroes {
		h, err := b.Hero(id)
		if err != nil {
			return err
		}
		s := &h.Base
		set(&s.MaxHealth, o.MaxHealth)
		set(&s.MaxEnergy, o.MaxEnergy)
		set(&s.HealthRegen, o.HealthRegen)
		set(&s.EnergyRegen, o.EnergyRegen)
		set(&s.WeaponPower, o.WeaponPower)
		set(&s.AttackSpeed, o.AttackSpeed)
		set(&s.MoveSpeed, o.MoveSpeed)
		set(&s.AttackRange, o.AttackRange)
		set(&s.Armor, o.Armor)
		set(&s.Shield, o.Shield)
	}

	for id, o := range f.Abilities {
		a, err := b.Ability(id)
		if err != nil {
			return err
		}
		if o.Damage != nil {
			a.Damage = o.Damage
		}
		if o.EnergyCost != nil {
			a.EnergyCost = o.EnergyCost
		}
		if o.Cooldown != nil {
			a.Cooldown = o.Cooldown
		}
		set(&a.Range, o.Range)
	}

	for id, o := range f.Items {
		it, err := b.Item(id)
		if err != nil {
			return err
		}
		set(&it.Cost, o.Cost)
		s := &it.Stats
		set(&s.WeaponPower, o.WeaponPower)
		set(&s.CrystalPower, o.CrystalPower)
		set(&s.MaxHealth, o.MaxHealth)
		set(&s.AttackSpeed, o.AttackSpeed)
		set(&s.Armor, o.Armor)
		set(&s.Shield, o.Shield)
		set(&s.Lifesteal, o.Lifesteal)
		set(&s.CritChance, o.CritChance)
		set(&s.CooldownReduction, o.CooldownReduction)
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
