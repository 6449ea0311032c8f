package arena

import "sync/atomic"

// IDGenerator hands out entity IDs for one match.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid, test fixtures)
//	0x10000000 - 0x1FFFFFFF: Heroes
//	0x20000000 - 0x2FFFFFFF: Lane units (minions, turrets, crystals)
//	0x30000000 - 0x3FFFFFFF: Jungle monsters
type IDGenerator struct {
	nextHeroID    atomic.Uint32
	nextUnitID    atomic.Uint32
	nextMonsterID atomic.Uint32
}

// NewIDGenerator creates a generator positioned at the start of each range.
func NewIDGenerator() *IDGenerator {
	gen := &IDGenerator{}
	gen.nextHeroID.Store(0x10000000)
	gen.nextUnitID.Store(0x20000000)
	gen.nextMonsterID.Store(0x30000000)
	return gen
}

// NextHeroID returns the next hero ID.
func (g *IDGenerator) NextHeroID() uint32 {
	return g.nextHeroID.Add(1)
}

// NextUnitID returns the next lane unit ID.
func (g *IDGenerator) NextUnitID() uint32 {
	return g.nextUnitID.Add(1)
}

// NextMonsterID returns the next jungle monster ID.
func (g *IDGenerator) NextMonsterID() uint32 {
	return g.nextMonsterID.Add(1)
}

// IsHeroID reports whether id came from the hero range.
func IsHeroID(id uint32) bool {
	return id >= 0x10000000 && id < 0x20000000
}
