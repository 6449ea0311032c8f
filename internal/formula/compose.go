package formula

// BaseCritMultiplier is the crit damage multiplier before item bonuses.
const BaseCritMultiplier = 1.5

// Scaling describes how an ability converts attacker power into damage.
type Scaling struct {
	Base         float64 // level table value
	WeaponRatio  float64
	CrystalRatio float64
}

// Compose returns (base + wp*wr + cp*cr) * dealtMultiplier.
func Compose(s Scaling, weaponPower, crystalPower, dealtMultiplier float64) float64 {
	raw := s.Base + weaponPower*s.WeaponRatio + crystalPower*s.CrystalRatio
	return raw * dealtMultiplier
}

// CritMultiplier returns the chance-crit multiplier for the given bonus crit damage.
func CritMultiplier(bonusCritDamage float64) float64 {
	return BaseCritMultiplier + bonusCritDamage
}

// Lifesteal returns the heal produced by dealing `dealt` damage.
// dealt must be the health delta observed on the target, not the raw hit.
func Lifesteal(dealt, ratio float64) float64 {
	if dealt <= 0 || ratio <= 0 {
		return 0
	}
	return dealt * ratio
}
