// Package metrics exports match counters to Prometheus. Labels are
// bounded enums only: entity kind, team, damage type, ability slot.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/model"
)

// Metrics owns the collectors of one process on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ticks          prometheus.Counter
	tickDuration   prometheus.Histogram
	deaths         *prometheus.CounterVec
	heroKills      *prometheus.CounterVec
	abilities      *prometheus.CounterVec
	goldEarned     *prometheus.CounterVec
	itemsPurchased *prometheus.CounterVec
	damage         *prometheus.CounterVec
	basicAttacks   *prometheus.CounterVec
	levelUps       prometheus.Counter
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "arena_ticks_total",
			Help: "Simulation steps executed",
		}),
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "arena_tick_duration_seconds",
			Help:    "Wall time spent in one simulation step",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.033},
		}),
		deaths: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_deaths_total",
			Help: "Entities killed",
		}, []string{"kind"}),
		heroKills: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_hero_kills_total",
			Help: "Heroes killed, by killer team",
		}, []string{"team"}),
		abilities: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_abilities_activated_total",
			Help: "Successful ability activations",
		}, []string{"slot"}),
		goldEarned: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_gold_earned_total",
			Help: "Gold credited to heroes",
		}, []string{"team"}),
		itemsPurchased: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_items_purchased_total",
			Help: "Items bought in the shop",
		}, []string{"category"}),
		damage: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_damage_dealt_total",
			Help: "Health removed by hits",
		}, []string{"type"}),
		basicAttacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_basic_attacks_total",
			Help: "Resolved basic attacks",
		}, []string{"result"}),
		levelUps: f.NewCounter(prometheus.CounterOpts{
			Name: "arena_level_ups_total",
			Help: "Hero level ups",
		}),
	}
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveTick records one simulation step.
func (m *Metrics) ObserveTick(took time.Duration) {
	m.ticks.Inc()
	m.tickDuration.Observe(took.Seconds())
}

// ObserveHit records one resolved basic attack.
func (m *Metrics) ObserveHit(res combat.HitResult) {
	result := "normal"
	switch {
	case res.Guaranteed:
		result = "guaranteed_crit"
	case res.Crit:
		result = "crit"
	}
	m.basicAttacks.WithLabelValues(result).Inc()
}

// Listener returns a model.Listener feeding these metrics. One listener
// is shared by every entity of a match.
func (m *Metrics) Listener() *Listener {
	return &Listener{m: m, gold: make(map[*model.Entity]int)}
}

// Listener translates entity notifications into counter updates.
type Listener struct {
	model.NopListener
	m    *Metrics
	gold map[*model.Entity]int // last seen gold per hero
}

func (l *Listener) Damaged(_ *model.Entity, _ *model.Entity, amount float64, typ formula.DamageType) {
	if amount > 0 {
		l.m.damage.WithLabelValues(typ.String()).Add(amount)
	}
}

func (l *Listener) Died(e *model.Entity) {
	l.m.deaths.WithLabelValues(e.Kind().String()).Inc()
}

func (l *Listener) DiedWithKiller(e *model.Entity, killer *model.Entity) {
	if killer == nil || e.Kind() != model.KindHero {
		return
	}
	l.m.heroKills.WithLabelValues(killer.Team().String()).Inc()
}

// GoldChanged counts increases only. Spending lowers the baseline.
func (l *Listener) GoldChanged(e *model.Entity, gold int) {
	prev := l.gold[e]
	l.gold[e] = gold
	if gold > prev {
		l.m.goldEarned.WithLabelValues(e.Team().String()).Add(float64(gold - prev))
	}
}

func (l *Listener) LevelUp(*model.Entity, int) {
	l.m.levelUps.Inc()
}

func (l *Listener) ItemPurchased(_ *model.Entity, item *model.Item) {
	l.m.itemsPurchased.WithLabelValues(item.Category.String()).Inc()
}

func (l *Listener) AbilityActivated(_ *model.Entity, slot int) {
	l.m.abilities.WithLabelValues(strconv.Itoa(slot)).Inc()
}
