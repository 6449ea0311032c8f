package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/arenacore/internal/arena"
	"github.com/udisondev/arenacore/internal/data"
)

// Simulation holds all configuration of one arenasim run.
type Simulation struct {
	// Tick loop
	TickRate    float64 `yaml:"tick_rate"`    // steps per simulated second
	Speed       float64 `yaml:"speed"`        // 1 = real time, 0 = as fast as possible
	MaxDuration float64 `yaml:"max_duration"` // simulated seconds, 0 = until a crystal falls
	Seed        uint64  `yaml:"seed"`

	// Logging
	LogLevel string `yaml:"log_level"`
	AIDebug  bool   `yaml:"ai_debug"`

	// Balance overrides applied on top of the built-in tables
	BalanceFile string `yaml:"balance_file"`

	Metrics Metrics `yaml:"metrics"`
	Match   Match   `yaml:"match"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
}

// Match holds the line-up and the match rules.
type Match struct {
	Blue    []arena.HeroSpec   `yaml:"blue"`
	Red     []arena.HeroSpec   `yaml:"red"`
	Waves   arena.WaveRules    `yaml:"waves"`
	Respawn arena.RespawnRules `yaml:"respawn"`
}

// DefaultSimulation returns a two-versus-two AI match at 30 steps per
// second, unpaced, capped at 20 minutes of match time.
func DefaultSimulation() Simulation {
	return Simulation{
		TickRate:    arena.DefaultTickRate,
		Speed:       0,
		MaxDuration: 1200,
		Seed:        1,
		LogLevel:    "info",
		Metrics: Metrics{
			Enabled:    false,
			ListenAddr: "127.0.0.1:9100",
		},
		Match: Match{
			Blue: []arena.HeroSpec{
				{ID: data.HeroRingo, AI: true, Build: []string{"weapon_blade", "sprint_boots", "six_sins", "sorrowblade"}},
				{ID: data.HeroKrul, AI: true, Build: []string{"light_armor", "weapon_blade", "blazing_salvo"}},
			},
			Red: []arena.HeroSpec{
				{ID: data.HeroTaka, AI: true, Build: []string{"weapon_blade", "sprint_boots", "six_sins"}},
				{ID: data.HeroRingo, AI: true, Build: []string{"swift_shooter", "weapon_blade", "blazing_salvo"}},
			},
			Waves:   arena.DefaultWaveRules(),
			Respawn: arena.DefaultRespawnRules(),
		},
	}
}

// LoadSimulation loads the simulation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the line-up.
func (s Simulation) Validate() error {
	var errs []error
	if s.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %v", s.TickRate))
	}
	if s.Speed < 0 {
		errs = append(errs, fmt.Errorf("speed must not be negative, got %v", s.Speed))
	}
	if s.MaxDuration < 0 {
		errs = append(errs, fmt.Errorf("max_duration must not be negative, got %v", s.MaxDuration))
	}
	if _, err := s.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(s.Match.Blue) == 0 || len(s.Match.Red) == 0 {
		errs = append(errs, errors.New("both teams need at least one hero"))
	}
	if s.Metrics.Enabled && s.Metrics.ListenAddr == "" {
		errs = append(errs, errors.New("metrics.listen_addr is required when metrics are enabled"))
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel.
func (s Simulation) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}

// Arena returns the arena config for these settings. Listeners and
// observers are wired by the caller.
func (s Simulation) Arena(balance *data.Balance) arena.Config {
	cfg := arena.DefaultConfig()
	cfg.TickRate = s.TickRate
	cfg.Speed = s.Speed
	cfg.MaxDuration = s.MaxDuration
	cfg.Seed = s.Seed
	cfg.Waves = s.Match.Waves
	cfg.Respawn = s.Match.Respawn
	cfg.Balance = balance
	return cfg
}
