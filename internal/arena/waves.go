package arena

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/model"
)

// WaveRules time the lane minion waves.
type WaveRules struct {
	FirstAt  float64 `yaml:"first_at"`
	Interval float64 `yaml:"interval"`
	Melee    int     `yaml:"melee"`
	Ranged   int     `yaml:"ranged"`
}

// DefaultWaveRules returns the standard wave timing.
func DefaultWaveRules() WaveRules {
	return WaveRules{
		FirstAt:  data.FirstWaveAt,
		Interval: data.WaveInterval,
		Melee:    data.WaveMeleeCount,
		Ranged:   data.WaveRangedCount,
	}
}

// SpawnFunc places one minion of tpl for team at pos.
type SpawnFunc func(tpl *data.MinionTemplate, team model.Team, pos model.Vec3)

// WaveSpawner releases a wave for both teams on every interval.
type WaveSpawner struct {
	rules  WaveRules
	layout *data.Layout
	spawn  SpawnFunc
	next   float64
	waves  int
}

// NewWaveSpawner creates a spawner whose first wave is due at rules.FirstAt.
func NewWaveSpawner(rules WaveRules, layout *data.Layout, spawn SpawnFunc) *WaveSpawner {
	return &WaveSpawner{
		rules:  rules,
		layout: layout,
		spawn:  spawn,
		next:   rules.FirstAt,
	}
}

// Waves returns how many waves were released.
func (s *WaveSpawner) Waves() int { return s.waves }

// NextAt returns when the next wave is due.
func (s *WaveSpawner) NextAt() float64 { return s.next }

// Update releases every wave due at now.
func (s *WaveSpawner) Update(now float64) {
	if s.rules.Interval <= 0 {
		return
	}
	for now >= s.next {
		s.release(model.TeamBlue)
		s.release(model.TeamRed)
		s.waves++

		slog.Debug("minion wave released",
			"wave", s.waves,
			"at", s.next)
		s.next += s.rules.Interval
	}
}

// release lines the wave up behind the lane start, melee in front.
func (s *WaveSpawner) release(team model.Team) {
	start := s.layout.Waypoints(team)[0]
	back := -data.WaveSpawnSpacing
	if team == model.TeamRed {
		back = data.WaveSpawnSpacing
	}
	slot := 0
	place := func(tpl *data.MinionTemplate, n int) {
		for range n {
			pos := start
			pos.X += back * float64(slot)
			s.spawn(tpl, team, pos)
			slot++
		}
	}
	place(&data.MeleeMinion, s.rules.Melee)
	place(&data.RangedMinion, s.rules.Ranged)
}
