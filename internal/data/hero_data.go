package data

import (
	"fmt"
	"sort"

	"github.com/udisondev/arenacore/internal/model"
)

// Hero IDs.
const (
	HeroRingo = "ringo"
	HeroKrul  = "krul"
	HeroTaka  = "taka"
)

// Passive IDs.
const (
	PassiveDoubleDown       = "double_down"
	PassiveShadowsEmpowerMe = "shadows_empower_me"
	PassiveKiAndStealth     = "ki_and_stealth"
)

// HeroPassiveGoldPerSec is passive income of every hero.
const HeroPassiveGoldPerSec = 1.0

// HeroAbilitySlots is the number of ability slots. Slot 3 stays empty
// for the current kits.
const HeroAbilitySlots = 4

// HeroTemplate - шаблон героя: базовые характеристики, рост за уровень,
// набор способностей и пассивка.
type HeroTemplate struct {
	ID        string
	Name      string
	Base      model.BaseStats
	Growth    model.Growth
	Abilities [HeroAbilitySlots]string // ability IDs, "" for an empty slot
	Passive   string
}

// StatTemplate builds the model template for this hero.
func (h *HeroTemplate) StatTemplate() model.StatTemplate {
	return model.StatTemplate{
		Base:              h.Base,
		Growth:            h.Growth,
		Thresholds:        Thresholds(),
		LevelUpHeal:       LevelUpHeal,
		PassiveGoldPerSec: HeroPassiveGoldPerSec,
	}
}

var heroGrowth = model.Growth{
	Health:      50,
	Energy:      20,
	Armor:       3,
	Shield:      3,
	WeaponPower: 5,
}

// HeroTable indexes hero templates by ID.
var HeroTable = map[string]*HeroTemplate{
	HeroRingo: {
		ID:   HeroRingo,
		Name: "Ringo",
		Base: model.BaseStats{
			MaxHealth:   703,
			MaxEnergy:   163,
			HealthRegen: 3,
			EnergyRegen: 5,
			WeaponPower: 71,
			AttackSpeed: 1,
			MoveSpeed:   3.1,
			AttackRange: 6.2,
			Armor:       20,
			Shield:      20,
		},
		Growth:    heroGrowth,
		Abilities: [HeroAbilitySlots]string{AbilityAchillesShot, AbilityTwirlingSilver, AbilityHellfireBrew},
		Passive:   PassiveDoubleDown,
	},
	HeroKrul: {
		ID:   HeroKrul,
		Name: "Krul",
		Base: model.BaseStats{
			MaxHealth:   781,
			MaxEnergy:   150,
			HealthRegen: 4,
			EnergyRegen: 4,
			WeaponPower: 73,
			AttackSpeed: 1,
			MoveSpeed:   3.2,
			AttackRange: 1.8,
			Armor:       25,
			Shield:      20,
		},
		Growth:    heroGrowth,
		Abilities: [HeroAbilitySlots]string{AbilityDeadMansRush, AbilitySpectralSmite, AbilityFromHellsHeart},
		Passive:   PassiveShadowsEmpowerMe,
	},
	HeroTaka: {
		ID:   HeroTaka,
		Name: "Taka",
		Base: model.BaseStats{
			MaxHealth:   690,
			MaxEnergy:   160,
			HealthRegen: 3,
			EnergyRegen: 5,
			WeaponPower: 75,
			AttackSpeed: 1.1,
			MoveSpeed:   3.4,
			AttackRange: 1.8,
			Armor:       20,
			Shield:      20,
		},
		Growth:    heroGrowth,
		Abilities: [HeroAbilitySlots]string{AbilityKaiten, AbilityKaku, AbilityXRetsu},
		Passive:   PassiveKiAndStealth,
	},
}

// Hero returns the template for id.
func Hero(id string) (*HeroTemplate, error) {
	h, ok := HeroTable[id]
	if !ok {
		return nil, fmt.Errorf("hero %q: %w", id, ErrUnknownHero)
	}
	return h, nil
}

// HeroIDs returns all hero ids, sorted.
func HeroIDs() []string {
	ids := make([]string, 0, len(HeroTable))
	for id := range HeroTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
