package arena

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/hero"
)

// RespawnRules define the hero death timer:
// min(Base + PerLevel·(level−1) + PerMinute·minutes, Max).
type RespawnRules struct {
	Base      float64 `yaml:"base"`
	PerLevel  float64 `yaml:"per_level"`
	PerMinute float64 `yaml:"per_minute"`
	Max       float64 `yaml:"max"`
}

// DefaultRespawnRules returns the standard death timer.
func DefaultRespawnRules() RespawnRules {
	return RespawnRules{
		Base:      data.RespawnBase,
		PerLevel:  data.RespawnPerLevel,
		PerMinute: data.RespawnPerMinute,
		Max:       data.RespawnMax,
	}
}

// Delay returns the death timer for a hero of level at matchTime seconds.
func (r RespawnRules) Delay(level int, matchTime float64) float64 {
	d := r.Base + r.PerLevel*float64(level-1) + r.PerMinute*(matchTime/60)
	return math.Min(d, r.Max)
}

// RespawnTask is one scheduled hero respawn.
type RespawnTask struct {
	Hero *hero.Controller
	At   float64
}

// RespawnManager revives dead heroes when their timer runs out.
type RespawnManager struct {
	rules RespawnRules
	tasks map[uint32]*RespawnTask // hero ID → task
}

// NewRespawnManager creates a manager using rules.
func NewRespawnManager(rules RespawnRules) *RespawnManager {
	return &RespawnManager{
		rules: rules,
		tasks: make(map[uint32]*RespawnTask),
	}
}

// Schedule queues c for respawn. now is the match time of death.
// A hero already queued keeps its original timer.
func (m *RespawnManager) Schedule(c *hero.Controller, now float64) *RespawnTask {
	id := c.Entity().ID()
	if t, ok := m.tasks[id]; ok {
		return t
	}
	delay := m.rules.Delay(c.Entity().Stats().Level(), now)
	task := &RespawnTask{Hero: c, At: now + delay}
	m.tasks[id] = task

	slog.Debug("respawn scheduled",
		"hero", c.Entity(),
		"delay", delay,
		"at", task.At)
	return task
}

// Cancel drops the respawn of hero id.
func (m *RespawnManager) Cancel(id uint32) {
	delete(m.tasks, id)
}

// Due removes and returns every task due at now, ordered by time then ID.
func (m *RespawnManager) Due(now float64) []*RespawnTask {
	var due []*RespawnTask
	for id, t := range m.tasks {
		if now >= t.At {
			due = append(due, t)
			delete(m.tasks, id)
		}
	}
	slices.SortFunc(due, func(a, b *RespawnTask) int {
		if c := cmp.Compare(a.At, b.At); c != 0 {
			return c
		}
		return cmp.Compare(a.Hero.Entity().ID(), b.Hero.Entity().ID())
	})
	return due
}

// TaskCount returns the number of queued respawns.
func (m *RespawnManager) TaskCount() int { return len(m.tasks) }

// GetTask returns the queued respawn of hero id.
func (m *RespawnManager) GetTask(id uint32) (*RespawnTask, bool) {
	t, ok := m.tasks[id]
	return t, ok
}
