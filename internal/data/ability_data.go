package data

import (
	"fmt"
	"sort"

	"github.com/udisondev/arenacore/internal/formula"
)

// Ability IDs. They double as behavior registry keys.
const (
	AbilityAchillesShot   = "achilles_shot"
	AbilityTwirlingSilver = "twirling_silver"
	AbilityHellfireBrew   = "hellfire_brew"
	AbilityDeadMansRush   = "dead_mans_rush"
	AbilitySpectralSmite  = "spectral_smite"
	AbilityFromHellsHeart = "from_hells_heart"
	AbilityKaiten         = "kaiten"
	AbilityKaku           = "kaku"
	AbilityXRetsu         = "x_retsu"
)

// AbilityTable indexes every ability template by ID.
var AbilityTable = map[string]*AbilityTemplate{
	// Ringo
	AbilityAchillesShot: {
		ID:           AbilityAchillesShot,
		Name:         "Achilles Shot",
		Slot:         0,
		Targeting:    TargetingSkillshot,
		Range:        10,
		Radius:       0.5,
		DamageType:   formula.Crystal,
		CrystalRatio: 1.25,
		Damage:       []float64{80, 125, 170, 215, 350},
		EnergyCost:   []float64{40, 50, 60, 70, 100},
		Cooldown:     []float64{9, 8.5, 8, 7.5, 7},
		Params: map[string][]float64{
			"slow":             {0.30, 0.35, 0.40, 0.45, 0.50},
			"slow_duration":    {1.5, 1.5, 1.5, 1.5, 2.5},
			"projectile_speed": {20},
		},
	},
	AbilityTwirlingSilver: {
		ID:         AbilityTwirlingSilver,
		Name:       "Twirling Silver",
		Slot:       1,
		Targeting:  TargetingInstant,
		EnergyCost: []float64{40, 45, 50, 55, 60},
		Cooldown:   []float64{12, 11, 10, 9, 8},
		Params: map[string][]float64{
			"attack_speed":   {0.5, 0.6, 0.7, 0.8, 1.0},
			"duration":       {6},
			"refund_per_hit": {0.6},
		},
	},
	AbilityHellfireBrew: {
		ID:           AbilityHellfireBrew,
		Name:         "Hellfire Brew",
		Slot:         2,
		Ultimate:     true,
		Targeting:    TargetingUnitTarget,
		Range:        1000,
		DamageType:   formula.Crystal,
		CrystalRatio: 1.3,
		Damage:       []float64{250, 365, 480},
		EnergyCost:   []float64{150, 175, 200},
		Cooldown:     []float64{100, 85, 70},
		Params: map[string][]float64{
			"burn_per_sec":     {30, 50, 70},
			"burn_duration":    {3},
			"burn_interval":    {0.5},
			"cast_time":        {0.5},
			"projectile_speed": {12},
		},
	},

	// Krul
	AbilityDeadMansRush: {
		ID:          AbilityDeadMansRush,
		Name:        "Dead Man's Rush",
		Slot:        0,
		Targeting:   TargetingUnitTarget,
		Range:       5,
		DamageType:  formula.Physical,
		WeaponRatio: 1.1,
		Damage:      []float64{60, 100, 140, 180, 220},
		EnergyCost:  []float64{45, 50, 55, 60, 65},
		Cooldown:    []float64{10, 9.5, 9, 8.5, 8},
		Params: map[string][]float64{
			"dash_speed":     {12},
			"hit_range":      {1.5},
			"timeout_margin": {0.5},
			"slow":           {0.4},
			"slow_duration":  {2},
		},
	},
	AbilitySpectralSmite: {
		ID:           AbilitySpectralSmite,
		Name:         "Spectral Smite",
		Slot:         1,
		Targeting:    TargetingUnitTarget,
		Range:        3,
		DamageType:   formula.Crystal,
		WeaponRatio:  0.7,
		CrystalRatio: 0.8,
		Damage:       []float64{40, 80, 120, 160, 200},
		EnergyCost:   []float64{30, 35, 40, 45, 50},
		Cooldown:     []float64{8, 7.5, 7, 6.5, 6},
		Params: map[string][]float64{
			"damage_per_stack": {20},
			"heal":             {50, 80, 110, 140, 200},
			"heal_per_stack":   {15},
		},
	},
	AbilityFromHellsHeart: {
		ID:          AbilityFromHellsHeart,
		Name:        "From Hell's Heart",
		Slot:        2,
		Ultimate:    true,
		Targeting:   TargetingSkillshot,
		Range:       9,
		Radius:      0.5,
		DamageType:  formula.Physical,
		WeaponRatio: 1.0,
		Damage:      []float64{250, 400, 550},
		EnergyCost:  []float64{100},
		Cooldown:    []float64{80, 70, 60},
		Params: map[string][]float64{
			"stun":             {1.5, 1.75, 2},
			"projectile_speed": {15},
			"pull_speed":       {20},
			"pull_share":       {0.7},
			"pull_stop_range":  {1.5},
		},
	},

	// Taka
	AbilityKaiten: {
		ID:           AbilityKaiten,
		Name:         "Kaiten",
		Slot:         0,
		Targeting:    TargetingUnitTarget,
		Range:        4,
		DamageType:   formula.Physical,
		WeaponRatio:  1.4,
		CrystalRatio: 0.8,
		Damage:       []float64{80, 110, 140, 170, 230},
		EnergyCost:   []float64{50, 55, 60, 65, 70},
		Cooldown:     []float64{12, 11, 10, 9, 8},
		Params: map[string][]float64{
			"dash_speed":    {15},
			"dash_distance": {5},
			"hit_range":     {1.5},
		},
	},
	AbilityKaku: {
		ID:         AbilityKaku,
		Name:       "Kaku",
		Slot:       1,
		Targeting:  TargetingInstant,
		EnergyCost: []float64{80, 85, 90, 95, 100},
		Cooldown:   []float64{18, 17, 16, 15, 13},
		Params: map[string][]float64{
			"heal_per_sec": {40, 55, 70, 85, 100},
			"duration":     {3, 3, 3, 3, 4},
			"move_speed":   {1.2},
		},
	},
	AbilityXRetsu: {
		ID:           AbilityXRetsu,
		Name:         "X-Retsu",
		Slot:         2,
		Ultimate:     true,
		Targeting:    TargetingUnitTarget,
		Range:        6,
		DamageType:   formula.Physical,
		WeaponRatio:  1.3,
		CrystalRatio: 0.5,
		Damage:       []float64{350, 500, 650},
		EnergyCost:   []float64{100},
		Cooldown:     []float64{70, 60, 50},
		Params: map[string][]float64{
			"dash_speed":        {25},
			"hit_range":         {1.5},
			"execute_threshold": {0.5},
			"execute_bonus":     {1.25},
		},
	},
}

// Ability returns the template for id.
func Ability(id string) (*AbilityTemplate, error) {
	t, ok := AbilityTable[id]
	if !ok {
		return nil, fmt.Errorf("ability %q: %w", id, ErrUnknownAbility)
	}
	return t, nil
}

// AbilityIDs returns all known ability ids, sorted.
func AbilityIDs() []string {
	ids := make([]string, 0, len(AbilityTable))
	for id := range AbilityTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
