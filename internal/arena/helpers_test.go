package arena

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/game/hero"
	"github.com/udisondev/arenacore/internal/model"
)

var testMatchID = uuid.MustParse("6f1c2a3e-9b7d-4e21-8c55-0a1b2c3d4e5f")

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MatchID = testMatchID
	cfg.TickRate = 10
	cfg.Speed = 0
	cfg.Seed = 1
	return cfg
}

func newArena(t *testing.T) *Arena {
	t.Helper()
	a, err := New(testConfig())
	require.NoError(t, err)
	return a
}

func addHero(t *testing.T, a *Arena, team model.Team, id string) *hero.Controller {
	t.Helper()
	c, err := a.AddHero(team, HeroSpec{ID: id})
	require.NoError(t, err)
	return c
}

// steps runs n steps of dt.
func steps(a *Arena, n int, dt float64) {
	for range n {
		a.Step(dt)
	}
}
