package model

// ItemCategory groups items in the shop.
type ItemCategory int8

const (
	CategoryWeapon ItemCategory = iota
	CategoryCrystal
	CategoryDefense
	CategoryUtility
)

func (c ItemCategory) String() string {
	switch c {
	case CategoryWeapon:
		return "weapon"
	case CategoryCrystal:
		return "crystal"
	case CategoryDefense:
		return "defense"
	case CategoryUtility:
		return "utility"
	default:
		return "unknown"
	}
}

// ItemStats is an additive bundle of stat contributions. The same shape is
// used for one item and for the inventory total.
type ItemStats struct {
	WeaponPower         float64
	CrystalPower        float64
	MaxHealth           float64
	MaxEnergy           float64
	AttackSpeed         float64
	MoveSpeed           float64
	Armor               float64
	Shield              float64
	CooldownReduction   float64
	Lifesteal           float64
	CritChance          float64
	CritDamage          float64
	ArmorPierce         float64
	ArmorPiercePercent  float64
	ShieldPierce        float64
	ShieldPiercePercent float64
}

// Add returns s+o.
func (s ItemStats) Add(o ItemStats) ItemStats {
	s.WeaponPower += o.WeaponPower
	s.CrystalPower += o.CrystalPower
	s.MaxHealth += o.MaxHealth
	s.MaxEnergy += o.MaxEnergy
	s.AttackSpeed += o.AttackSpeed
	s.MoveSpeed += o.MoveSpeed
	s.Armor += o.Armor
	s.Shield += o.Shield
	s.CooldownReduction += o.CooldownReduction
	s.Lifesteal += o.Lifesteal
	s.CritChance += o.CritChance
	s.CritDamage += o.CritDamage
	s.ArmorPierce += o.ArmorPierce
	s.ArmorPiercePercent += o.ArmorPiercePercent
	s.ShieldPierce += o.ShieldPierce
	s.ShieldPiercePercent += o.ShieldPiercePercent
	return s
}

// Item - шаблон предмета магазина. Immutable после загрузки.
type Item struct {
	ID         string
	Name       string
	Cost       int
	Tier       int
	Category   ItemCategory
	Stats      ItemStats
	Passive    string  // description only
	BuildsFrom []*Item // components
}

// TotalCost returns the item cost plus all components, recursively.
func (it *Item) TotalCost() int {
	total := it.Cost
	for _, c := range it.BuildsFrom {
		total += c.TotalCost()
	}
	return total
}
