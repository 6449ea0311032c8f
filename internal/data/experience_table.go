package data

// MaxHeroLevel is the level cap implied by ExperienceTable.
const MaxHeroLevel = 12

// LevelUpHeal is the flat heal granted on every level-up.
const LevelUpHeal = 100.0

// ExperienceTable holds cumulative experience required for each level.
// Index i is the total needed to reach level i+1; index 0 is level 1.
var ExperienceTable = [MaxHeroLevel]int{
	0,    // 1
	100,  // 2
	250,  // 3
	450,  // 4
	700,  // 5
	1000, // 6
	1350, // 7
	1750, // 8
	2200, // 9
	2700, // 10
	3250, // 11
	3850, // 12
}

// Thresholds returns ExperienceTable as a slice for model.StatTemplate.
func Thresholds() []int {
	out := make([]int, len(ExperienceTable))
	copy(out, ExperienceTable[:])
	return out
}

// RequiredExperience returns total experience for level, or -1 if out of range.
func RequiredExperience(level int) int {
	if level < 1 || level > MaxHeroLevel {
		return -1
	}
	return ExperienceTable[level-1]
}
