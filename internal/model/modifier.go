package model

// Modifier is a multiplicative adjustment to one stat.
// Applying a modifier with an id that is already present replaces it.
//
// Duration <= 0 means the modifier stays until RemoveModifier.
type Modifier struct {
	ID         string
	Stat       StatType
	Multiplier float64
	CreatedAt  float64
	Duration   float64
}

// Permanent reports whether the modifier never expires on its own.
func (m Modifier) Permanent() bool {
	return m.Duration <= 0
}

// Live reports whether the modifier still applies at now.
// The boundary instant CreatedAt+Duration is still live.
func (m Modifier) Live(now float64) bool {
	return m.Permanent() || now <= m.CreatedAt+m.Duration
}

// Remaining returns seconds left, or -1 for permanent modifiers.
func (m Modifier) Remaining(now float64) float64 {
	if m.Permanent() {
		return -1
	}
	r := m.CreatedAt + m.Duration - now
	if r < 0 {
		return 0
	}
	return r
}

// FlatBonus is a permanent additive adjustment, tracked by id for removal.
type FlatBonus struct {
	Stat  StatType
	Value float64
}
