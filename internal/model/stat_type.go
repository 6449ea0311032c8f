package model

// StatType identifies the stat a modifier or flat bonus adjusts.
type StatType int8

const (
	StatMoveSpeed StatType = iota
	StatAttackSpeed
	StatWeaponPower
	StatCrystalPower
	StatArmor
	StatShield
	StatMaxHealth
	StatHealthRegen
	StatEnergyRegen
	StatDamageDealt
	StatDamageTaken

	statTypeCount
)

var statTypeNames = [statTypeCount]string{
	"move_speed",
	"attack_speed",
	"weapon_power",
	"crystal_power",
	"armor",
	"shield",
	"max_health",
	"health_regen",
	"energy_regen",
	"damage_dealt",
	"damage_taken",
}

// String returns the snake_case name used in logs and YAML.
func (s StatType) String() string {
	if s < 0 || s >= statTypeCount {
		return "unknown"
	}
	return statTypeNames[s]
}

// ParseStatType is the inverse of String.
func ParseStatType(name string) (StatType, bool) {
	for i, n := range statTypeNames {
		if n == name {
			return StatType(i), true
		}
	}
	return 0, false
}
