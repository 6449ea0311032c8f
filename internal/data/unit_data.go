package data

import "github.com/udisondev/arenacore/internal/model"

// MinionTemplate описывает линейного миньона.
type MinionTemplate struct {
	ID             string
	Health         float64
	Damage         float64
	AttackRange    float64
	AttackCooldown float64
	MoveSpeed      float64
	AggroRange     float64
	Gold           int
	Experience     int
}

// LeashFactor multiplies AggroRange to get the distance at which a minion drops its target.
const LeashFactor = 1.5

var (
	MeleeMinion = MinionTemplate{
		ID:             "melee_minion",
		Health:         450,
		Damage:         12,
		AttackRange:    1.5,
		AttackCooldown: 1,
		MoveSpeed:      3,
		AggroRange:     5,
		Gold:           22,
		Experience:     30,
	}
	RangedMinion = MinionTemplate{
		ID:             "ranged_minion",
		Health:         280,
		Damage:         23,
		AttackRange:    5,
		AttackCooldown: 1,
		MoveSpeed:      3,
		AggroRange:     5,
		Gold:           17,
		Experience:     25,
	}
)

// StatTemplate returns a non-levelling template for the minion.
func (m *MinionTemplate) StatTemplate() model.StatTemplate {
	return unitTemplate(m.Health, m.Damage, m.AttackRange, m.MoveSpeed)
}

// Turret constants.
const (
	TurretHealth           = 500.0
	TurretDamage           = 160.0
	TurretArmor            = 0.0
	TurretRange            = 8.0
	TurretAttackCooldown   = 1.25
	TurretRampPerHit       = 0.45 // bonus per consecutive hit on one target
	TurretMaxRampHits      = 6
	TurretHeroThreatWindow = 3.0 // seconds an enemy hero stays a priority after hitting an ally hero
)

// TurretStatTemplate returns the stat template of a lane turret.
func TurretStatTemplate() model.StatTemplate {
	t := unitTemplate(TurretHealth, TurretDamage, TurretRange, 0)
	t.Base.Armor = TurretArmor
	return t
}

// Crystal constants.
const (
	CrystalHealth       = 500.0
	CrystalHealRadius   = 5.0
	CrystalHealthPerSec = 50.0
	CrystalEnergyPerSec = 25.0
)

// CrystalStatTemplate returns the stat template of the vain crystal.
func CrystalStatTemplate() model.StatTemplate {
	return unitTemplate(CrystalHealth, 0, 0, 0)
}

// CampSize - размер лагеря нейтральных монстров.
type CampSize int8

const (
	CampSmall CampSize = iota
	CampMedium
	CampLarge
)

func (c CampSize) String() string {
	switch c {
	case CampSmall:
		return "small"
	case CampMedium:
		return "medium"
	case CampLarge:
		return "large"
	default:
		return "unknown"
	}
}

// CampTemplate describes one jungle camp.
type CampTemplate struct {
	Size       CampSize
	Monsters   int
	Health     float64
	Damage     float64
	Gold       int
	Experience int
	Respawn    float64

	// Buff is granted to the killer of the last monster, empty for no buff.
	Buff           string
	BuffMultiplier float64
	BuffDuration   float64
}

// Monster behavior constants.
const (
	MonsterAttackRange    = 2.0
	MonsterAttackCooldown = 1.0
	MonsterAggroRange     = 6.0
	MonsterLeashRange     = 10.0
	MonsterMoveSpeed      = 3.0
)

// JungleBuffModifier is the modifier id of the large camp buff.
const JungleBuffModifier = "jungle_buff"

// CampTable holds the camp templates by size.
var CampTable = map[CampSize]CampTemplate{
	CampSmall:  {Size: CampSmall, Monsters: 2, Health: 200, Damage: 20, Gold: 30, Experience: 25, Respawn: 50},
	CampMedium: {Size: CampMedium, Monsters: 1, Health: 600, Damage: 40, Gold: 55, Experience: 45, Respawn: 60},
	CampLarge: {
		Size: CampLarge, Monsters: 1, Health: 1000, Damage: 60, Gold: 100, Experience: 80, Respawn: 90,
		Buff: JungleBuffModifier, BuffMultiplier: 1.15, BuffDuration: 60,
	},
}

// MonsterStatTemplate returns the stat template of one monster of the camp.
func (c *CampTemplate) MonsterStatTemplate() model.StatTemplate {
	return unitTemplate(c.Health, c.Damage, MonsterAttackRange, MonsterMoveSpeed)
}

func unitTemplate(health, damage, attackRange, moveSpeed float64) model.StatTemplate {
	return model.StatTemplate{
		Base: model.BaseStats{
			MaxHealth:   health,
			WeaponPower: damage,
			AttackSpeed: 1,
			AttackRange: attackRange,
			MoveSpeed:   moveSpeed,
		},
		Thresholds: []int{0},
	}
}

// Kill rewards.
const (
	HeroKillGold       = 300
	HeroKillExperience = 200
)

// Respawn formula: min(RespawnBase + RespawnPerLevel·(level−1) + RespawnPerMinute·minutes, RespawnMax).
const (
	RespawnBase      = 10.0
	RespawnPerLevel  = 2.5
	RespawnPerMinute = 1.5
	RespawnMax       = 60.0
)

// Minion waves.
const (
	FirstWaveAt      = 5.0
	WaveInterval     = 30.0
	WaveMeleeCount   = 3
	WaveRangedCount  = 3
	WaveSpawnSpacing = 1.0
)
