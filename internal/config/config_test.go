package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenacore/internal/arena"
	"github.com/udisondev/arenacore/internal/data"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arenasim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultSimulation(t *testing.T) {
	cfg := DefaultSimulation()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, arena.DefaultTickRate, cfg.TickRate)
	assert.Len(t, cfg.Match.Blue, 2)
	assert.Len(t, cfg.Match.Red, 2)

	for _, team := range [][]arena.HeroSpec{cfg.Match.Blue, cfg.Match.Red} {
		for _, h := range team {
			_, err := data.Hero(h.ID)
			require.NoError(t, err)
			for _, id := range h.Build {
				_, err := data.Item(id)
				require.NoError(t, err, "build item %s", id)
			}
		}
	}
}

func TestLoadSimulation_MissingFile(t *testing.T) {
	cfg, err := LoadSimulation(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulation(), cfg)
}

func TestLoadSimulation_Overrides(t *testing.T) {
	path := writeConfig(t, `
tick_rate: 20
speed: 2
seed: 42
log_level: debug
metrics:
  enabled: true
  listen_addr: ":9200"
match:
  blue:
    - id: krul
      ai: true
  red:
    - id: taka
      ai: true
      build: [weapon_blade]
  respawn:
    max: 30
`)

	cfg, err := LoadSimulation(path)
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.TickRate)
	assert.Equal(t, 2.0, cfg.Speed)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 1200.0, cfg.MaxDuration, "untouched keys keep defaults")
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9200", cfg.Metrics.ListenAddr)
	assert.Equal(t, []arena.HeroSpec{{ID: data.HeroKrul, AI: true}}, cfg.Match.Blue)
	assert.Equal(t, []string{"weapon_blade"}, cfg.Match.Red[0].Build)
	assert.Equal(t, 30.0, cfg.Match.Respawn.Max)
	assert.Equal(t, data.RespawnBase, cfg.Match.Respawn.Base)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadSimulation_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "tick_rate: [\n"},
		{"zero tick rate", "tick_rate: 0\n"},
		{"negative speed", "speed: -1\n"},
		{"bad log level", "log_level: loud\n"},
		{"empty team", "match:\n  red: []\n"},
		{"metrics without address", "metrics:\n  enabled: true\n  listen_addr: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSimulation(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestSimulation_Arena(t *testing.T) {
	cfg := DefaultSimulation()
	cfg.Seed = 7
	b := data.DefaultBalance()

	ac := cfg.Arena(b)

	assert.Equal(t, cfg.TickRate, ac.TickRate)
	assert.Equal(t, uint64(7), ac.Seed)
	assert.Equal(t, cfg.Match.Waves, ac.Waves)
	assert.Same(t, b, ac.Balance)
}
