package data

import (
	"fmt"
	"sort"

	"github.com/udisondev/arenacore/internal/model"
)

// itemList is the shop catalogue. Costs are full purchase prices.
var itemList = []model.Item{
	// Weapon
	{ID: "weapon_blade", Name: "Weapon Blade", Cost: 300, Tier: 1, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 15}},
	{ID: "book_of_eulogies", Name: "Book of Eulogies", Cost: 300, Tier: 1, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 5, Lifesteal: 0.1}},
	{ID: "swift_shooter", Name: "Swift Shooter", Cost: 300, Tier: 1, Category: model.CategoryWeapon, Stats: model.ItemStats{AttackSpeed: 0.2}},
	{ID: "heavy_steel", Name: "Heavy Steel", Cost: 1150, Tier: 2, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 55}},
	{ID: "six_sins", Name: "Six Sins", Cost: 650, Tier: 2, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 30}},
	{ID: "barbed_needle", Name: "Barbed Needle", Cost: 800, Tier: 2, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 15, Lifesteal: 0.1}},
	{ID: "blazing_salvo", Name: "Blazing Salvo", Cost: 700, Tier: 2, Category: model.CategoryWeapon, Stats: model.ItemStats{AttackSpeed: 0.35}},
	{ID: "piercing_spear", Name: "Piercing Spear", Cost: 900, Tier: 2, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 15, ArmorPiercePercent: 0.1}, Passive: "10% Armor Pierce"},
	{ID: "lucky_strike", Name: "Lucky Strike", Cost: 900, Tier: 2, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 20, CritChance: 0.2}, Passive: "20% Crit Chance"},
	{ID: "sorrowblade", Name: "Sorrowblade", Cost: 3100, Tier: 3, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 150}},
	{ID: "serpent_mask", Name: "Serpent Mask", Cost: 2800, Tier: 3, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 85, Lifesteal: 0.2}, Passive: "+20% Lifesteal"},
	{ID: "poisoned_shiv", Name: "Poisoned Shiv", Cost: 2250, Tier: 3, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 35, AttackSpeed: 0.4, Lifesteal: 0.1}, Passive: "Mortal Wounds"},
	{ID: "breaking_point", Name: "Breaking Point", Cost: 2600, Tier: 3, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 55, AttackSpeed: 0.35}, Passive: "Stacking damage"},
	{ID: "tornado_trigger", Name: "Tornado Trigger", Cost: 2600, Tier: 3, Category: model.CategoryWeapon, Stats: model.ItemStats{AttackSpeed: 0.75, CritChance: 0.35}, Passive: "35% Crit Chance"},
	{ID: "tyrants_monocle", Name: "Tyrant's Monocle", Cost: 2750, Tier: 3, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 50, CritChance: 0.4, CritDamage: 0.25}, Passive: "40% Crit, +25% Crit Dmg"},
	{ID: "tension_bow", Name: "Tension Bow", Cost: 2150, Tier: 3, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 45, ArmorPierce: 10}, Passive: "180 bonus dmg (6s)"},
	{ID: "bonesaw", Name: "Bonesaw", Cost: 2700, Tier: 3, Category: model.CategoryWeapon, Stats: model.ItemStats{WeaponPower: 25, AttackSpeed: 0.5, ArmorPiercePercent: 0.2}, Passive: "Shred 20% armor"},

	// Crystal
	{ID: "crystal_bit", Name: "Crystal Bit", Cost: 300, Tier: 1, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 20}},
	{ID: "energy_battery", Name: "Energy Battery", Cost: 300, Tier: 1, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 5, MaxEnergy: 150}, Passive: "+150 Energy"},
	{ID: "hourglass", Name: "Hourglass", Cost: 250, Tier: 1, Category: model.CategoryCrystal, Stats: model.ItemStats{CooldownReduction: 0.1}},
	{ID: "heavy_prism", Name: "Heavy Prism", Cost: 1050, Tier: 2, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 50}},
	{ID: "eclipse_prism", Name: "Eclipse Prism", Cost: 650, Tier: 2, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 35}},
	{ID: "piercing_shard", Name: "Piercing Shard", Cost: 900, Tier: 2, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 20, ShieldPiercePercent: 0.1}, Passive: "10% Shield Pierce"},
	{ID: "chronograph", Name: "Chronograph", Cost: 800, Tier: 2, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 10, CooldownReduction: 0.2}},
	{ID: "void_battery", Name: "Void Battery", Cost: 700, Tier: 2, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 25, MaxEnergy: 250}, Passive: "+250 Energy"},
	{ID: "shatterglass", Name: "Shatterglass", Cost: 3000, Tier: 3, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 150}},
	{ID: "spellfire", Name: "Spellfire", Cost: 2400, Tier: 3, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 100}, Passive: "Mortal Wounds"},
	{ID: "frostburn", Name: "Frostburn", Cost: 2600, Tier: 3, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 100}, Passive: "Slow enemies 30%"},
	{ID: "eve_of_harvest", Name: "Eve of Harvest", Cost: 2600, Tier: 3, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 55, Lifesteal: 0.15}, Passive: "15% Crystal Lifesteal"},
	{ID: "broken_myth", Name: "Broken Myth", Cost: 2150, Tier: 3, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 70, ShieldPiercePercent: 0.3}, Passive: "30% Shield Pierce"},
	{ID: "clockwork", Name: "Clockwork", Cost: 2500, Tier: 3, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 30, CooldownReduction: 0.35}, Passive: "Energy regen"},
	{ID: "alternating_current", Name: "Alternating Current", Cost: 2800, Tier: 3, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 60, AttackSpeed: 0.65}, Passive: "CP basic attack"},
	{ID: "dragons_eye", Name: "Dragon's Eye", Cost: 2800, Tier: 3, Category: model.CategoryCrystal, Stats: model.ItemStats{CrystalPower: 85}, Passive: "Stacking CP on hit"},

	// Defense
	{ID: "oakheart", Name: "Oakheart", Cost: 300, Tier: 1, Category: model.CategoryDefense, Stats: model.ItemStats{MaxHealth: 250}},
	{ID: "light_armor", Name: "Light Armor", Cost: 300, Tier: 1, Category: model.CategoryDefense, Stats: model.ItemStats{Armor: 30}},
	{ID: "light_shield", Name: "Light Shield", Cost: 300, Tier: 1, Category: model.CategoryDefense, Stats: model.ItemStats{Shield: 30}},
	{ID: "dragonheart", Name: "Dragonheart", Cost: 650, Tier: 2, Category: model.CategoryDefense, Stats: model.ItemStats{MaxHealth: 500}},
	{ID: "coat_of_plates", Name: "Coat of Plates", Cost: 800, Tier: 2, Category: model.CategoryDefense, Stats: model.ItemStats{Armor: 70}},
	{ID: "kinetic_shield", Name: "Kinetic Shield", Cost: 800, Tier: 2, Category: model.CategoryDefense, Stats: model.ItemStats{Shield: 70}},
	{ID: "lifespring", Name: "Lifespring", Cost: 800, Tier: 2, Category: model.CategoryDefense, Stats: model.ItemStats{MaxHealth: 250}, Passive: "Regen out of combat"},
	{ID: "slumbering_husk", Name: "Slumbering Husk", Cost: 1600, Tier: 3, Category: model.CategoryDefense, Stats: model.ItemStats{MaxHealth: 400, Armor: 30, Shield: 30}, Passive: "Anti-burst"},
	{ID: "metal_jacket", Name: "Metal Jacket", Cost: 2100, Tier: 3, Category: model.CategoryDefense, Stats: model.ItemStats{Armor: 120}, Passive: "Anti-WP carry"},
	{ID: "aegis", Name: "Aegis", Cost: 2100, Tier: 3, Category: model.CategoryDefense, Stats: model.ItemStats{Shield: 85}, Passive: "Reflex Block"},
	{ID: "atlas_pauldron", Name: "Atlas Pauldron", Cost: 1900, Tier: 3, Category: model.CategoryDefense, Stats: model.ItemStats{Armor: 85}, Passive: "Slow atk speed"},
	{ID: "crucible", Name: "Crucible", Cost: 1850, Tier: 3, Category: model.CategoryDefense, Stats: model.ItemStats{MaxHealth: 600}, Passive: "Team Reflex"},
	{ID: "fountain_of_renewal", Name: "Fountain of Renewal", Cost: 2300, Tier: 3, Category: model.CategoryDefense, Stats: model.ItemStats{MaxHealth: 300, Armor: 30, Shield: 30}, Passive: "Team heal"},
	{ID: "pulseweave", Name: "Pulseweave", Cost: 2100, Tier: 3, Category: model.CategoryDefense, Stats: model.ItemStats{MaxHealth: 500, Armor: 35}, Passive: "Slow nearby"},
	{ID: "rooks_decree", Name: "Rook's Decree", Cost: 2200, Tier: 3, Category: model.CategoryDefense, Stats: model.ItemStats{MaxHealth: 400, Armor: 50}, Passive: "Ally barrier"},

	// Utility
	{ID: "sprint_boots", Name: "Sprint Boots", Cost: 300, Tier: 1, Category: model.CategoryUtility, Stats: model.ItemStats{MoveSpeed: 0.5}},
	{ID: "travel_boots", Name: "Travel Boots", Cost: 500, Tier: 2, Category: model.CategoryUtility, Stats: model.ItemStats{MoveSpeed: 0.6}, Passive: "Sprint"},
	{ID: "stormguard_banner", Name: "Stormguard Banner", Cost: 1100, Tier: 2, Category: model.CategoryUtility, Stats: model.ItemStats{MaxHealth: 150}, Passive: "True dmg to minions"},
	{ID: "contraption", Name: "Contraption", Cost: 1650, Tier: 2, Category: model.CategoryUtility, Stats: model.ItemStats{MaxHealth: 350, CooldownReduction: 0.25}, Passive: "Traps & Flares"},
	{ID: "journey_boots", Name: "Journey Boots", Cost: 1900, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{MoveSpeed: 0.6}, Passive: "Sprint on hero dmg"},
	{ID: "war_treads", Name: "War Treads", Cost: 2000, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{MaxHealth: 500, MoveSpeed: 0.5}, Passive: "Team sprint"},
	{ID: "halcyon_chargers", Name: "Halcyon Chargers", Cost: 2100, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{MoveSpeed: 0.5, CooldownReduction: 0.15}, Passive: "Energy/cooldown"},
	{ID: "teleport_boots", Name: "Teleport Boots", Cost: 2000, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{MoveSpeed: 0.5}, Passive: "Teleport to ally"},
	{ID: "stormcrown", Name: "Stormcrown", Cost: 2200, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{MaxHealth: 200, CooldownReduction: 0.3}, Passive: "True dmg on-hit"},
	{ID: "aftershock", Name: "Aftershock", Cost: 2400, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{CrystalPower: 35, CooldownReduction: 0.2}, Passive: "On-ability dmg"},
	{ID: "echo", Name: "Echo", Cost: 2500, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{CrystalPower: 40}, Passive: "Repeat ability"},
	{ID: "nullwave_gauntlet", Name: "Nullwave Gauntlet", Cost: 2250, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{MaxHealth: 300}, Passive: "Item silence"},
	{ID: "shiversteel", Name: "Shiversteel", Cost: 1450, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{MaxHealth: 500}, Passive: "Basic atk slow"},
	{ID: "capacitor_plate", Name: "Capacitor Plate", Cost: 1800, Tier: 3, Category: model.CategoryUtility, Stats: model.ItemStats{MaxHealth: 250}, Passive: "Barrier on ability"},
}

// ItemTable indexes the catalogue by item ID.
var ItemTable = buildItemTable(itemList)

func buildItemTable(list []model.Item) map[string]*model.Item {
	t := make(map[string]*model.Item, len(list))
	for i := range list {
		t[list[i].ID] = &list[i]
	}
	return t
}

// Item returns a catalogue item by ID.
func Item(id string) (*model.Item, error) {
	it, ok := ItemTable[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrUnknownItem)
	}
	return it, nil
}

// ItemsByCategory returns items of one category ordered by tier, then cost.
func ItemsByCategory(c model.ItemCategory) []*model.Item {
	var out []*model.Item
	for i := range itemList {
		if itemList[i].Category == c {
			out = append(out, ItemTable[itemList[i].ID])
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Tier != out[b].Tier {
			return out[a].Tier < out[b].Tier
		}
		return out[a].Cost < out[b].Cost
	})
	return out
}
