// Package arena runs one match: it owns the clock, the entity registry,
// heroes, lane units and jungle camps, and advances them in a fixed order
// every tick.
package arena

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/udisondev/arenacore/internal/ai"
	"github.com/udisondev/arenacore/internal/clock"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/game/ability"
	"github.com/udisondev/arenacore/internal/game/combat"
	"github.com/udisondev/arenacore/internal/game/hero"
	"github.com/udisondev/arenacore/internal/game/unit"
	"github.com/udisondev/arenacore/internal/model"
)

// DefaultTickRate is the number of simulation steps per second.
const DefaultTickRate = 30.0

// ErrMatchOver is returned when a hero is added after the match ended.
var ErrMatchOver = errors.New("match is over")

// Config of one match.
type Config struct {
	MatchID     uuid.UUID // uuid.Nil: random
	TickRate    float64   // steps per simulated second
	Speed       float64   // Run pacing: 1 is real time, 0 runs unpaced
	MaxDuration float64   // simulated seconds, 0 is unlimited
	Seed        uint64    // crit roll seed

	Waves   WaveRules
	Respawn RespawnRules
	Layout  *data.Layout  // nil: DefaultLayout
	Balance *data.Balance // nil: DefaultBalance

	// Listeners are attached to every entity that enters the world.
	Listeners []model.Listener
	// OnTick observes the wall time of every Step.
	OnTick func(took time.Duration)
	// OnHit observes every resolved basic attack.
	OnHit func(combat.HitResult)
}

// DefaultConfig returns a real-time match with standard rules.
func DefaultConfig() Config {
	return Config{
		TickRate: DefaultTickRate,
		Speed:    1,
		Waves:    DefaultWaveRules(),
		Respawn:  DefaultRespawnRules(),
	}
}

// HeroSpec describes one hero entering the match.
type HeroSpec struct {
	ID    string   `yaml:"id"`
	AI    bool     `yaml:"ai"`
	Build []string `yaml:"build"` // items the AI buys in order
}

// Result summarises a finished match.
type Result struct {
	MatchID  uuid.UUID
	Winner   model.Team
	Decided  bool
	Duration float64
	Ticks    int
	Kills    []Kill
}

// Arena - матч целиком. Однопоточный: Step вызывается только из одной
// горутины, всё время берётся из собственных ручных часов.
type Arena struct {
	cfg      Config
	matchID  uuid.UUID
	clock    *clock.Manual
	ids      *IDGenerator
	world    *World
	layout   *data.Layout
	balance  *data.Balance
	resolver *combat.Resolver
	ai       *ai.TickManager
	respawns *RespawnManager
	waves    *WaveSpawner
	router   router

	heroes   []*hero.Controller
	movers   []*DirectMover // parallel to heroes
	minions  []*unit.Minion
	turrets  []*unit.Turret
	crystals []*unit.Crystal
	camps    []*unit.Camp

	kills  []Kill
	ticks  int
	winner model.Team
	over   bool
}

// New builds the arena: turrets, crystals and camps of the layout.
// Heroes are added with AddHero.
func New(cfg Config) (*Arena, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.Layout == nil {
		cfg.Layout = &data.DefaultLayout
	}
	if cfg.Balance == nil {
		cfg.Balance = data.DefaultBalance()
	}
	if cfg.MatchID == uuid.Nil {
		cfg.MatchID = uuid.New()
	}

	clk := clock.NewManual(0)
	a := &Arena{
		cfg:      cfg,
		matchID:  cfg.MatchID,
		clock:    clk,
		ids:      NewIDGenerator(),
		world:    NewWorld(clk),
		layout:   cfg.Layout,
		balance:  cfg.Balance,
		resolver: combat.NewSeededResolver(cfg.Seed),
		ai:       ai.NewTickManager(),
		respawns: NewRespawnManager(cfg.Respawn),
		winner:   model.TeamNeutral,
	}
	a.router = router{arena: a}
	if cfg.OnHit != nil {
		a.resolver.SetHitObserver(cfg.OnHit)
	}
	a.waves = NewWaveSpawner(cfg.Waves, cfg.Layout, a.spawnMinion)

	if err := a.buildStructures(); err != nil {
		return nil, fmt.Errorf("building arena: %w", err)
	}
	if err := a.buildCamps(); err != nil {
		return nil, fmt.Errorf("building arena: %w", err)
	}

	slog.Info("arena created",
		"match", a.matchID,
		"turrets", len(a.turrets),
		"camps", len(a.camps))
	return a, nil
}

func (a *Arena) buildStructures() error {
	byName := make(map[string]*unit.Turret, len(a.layout.Turrets))
	for _, spec := range a.layout.Turrets {
		t := unit.NewTurret(a.ids.NextUnitID(), spec.Name, spec.Team, spec.Position, a.clock, a.world)
		if err := a.track(t.Entity()); err != nil {
			return fmt.Errorf("turret %s: %w", spec.Name, err)
		}
		byName[spec.Name] = t
		a.turrets = append(a.turrets, t)
	}
	for i, spec := range a.layout.Turrets {
		if spec.Requires == "" {
			continue
		}
		outer, ok := byName[spec.Requires]
		if !ok {
			return fmt.Errorf("turret %s requires unknown turret %q", spec.Name, spec.Requires)
		}
		a.turrets[i].Require(outer)
	}

	for _, team := range []model.Team{model.TeamBlue, model.TeamRed} {
		var guards []*unit.Turret
		for _, t := range a.turrets {
			if t.Entity().Team() == team {
				guards = append(guards, t)
			}
		}
		c := unit.NewCrystal(a.ids.NextUnitID(), team, a.layout.Crystal(team), guards, a.clock, a.world)
		if err := a.track(c.Entity()); err != nil {
			return fmt.Errorf("crystal %s: %w", team, err)
		}
		a.crystals = append(a.crystals, c)
	}
	return nil
}

func (a *Arena) buildCamps() error {
	for _, spec := range a.layout.Camps {
		c, err := unit.NewCamp(spec, a.clock, a.world, a.ids.NextMonsterID, a.onMonsterSpawn)
		if err != nil {
			return fmt.Errorf("creating camp: %w", err)
		}
		a.camps = append(a.camps, c)
	}
	return nil
}

func (a *Arena) onMonsterSpawn(m *unit.Monster) {
	if err := a.track(m.Entity()); err != nil {
		slog.Error("monster not tracked",
			"monster", m.Entity(),
			"error", err)
	}
}

// track registers e with the world and attaches the match listeners.
func (a *Arena) track(e *model.Entity) error {
	if err := a.world.Add(e); err != nil {
		return err
	}
	e.Listeners().Add(a.router)
	for _, l := range a.cfg.Listeners {
		e.Listeners().Add(l)
	}
	return nil
}

func (a *Arena) spawnMinion(tpl *data.MinionTemplate, team model.Team, pos model.Vec3) {
	m := unit.NewMinion(a.ids.NextUnitID(), tpl, team, pos, a.layout.Waypoints(team), a.clock, a.world)
	if err := a.track(m.Entity()); err != nil {
		slog.Error("minion not tracked",
			"minion", m.Entity(),
			"error", err)
		return
	}
	a.minions = append(a.minions, m)
}

// AddHero builds the hero at its team base and, when spec.AI is set,
// hands it to a hero AI.
func (a *Arena) AddHero(team model.Team, spec HeroSpec) (*hero.Controller, error) {
	if a.over {
		return nil, ErrMatchOver
	}

	var c *hero.Controller
	var mover *DirectMover
	c, err := hero.BuildByID(spec.ID, team, a.layout.Base(team), hero.Deps{
		ID:       a.ids.NextHeroID(),
		Clock:    a.clock,
		World:    a.world,
		Resolver: a.resolver,
		Balance:  a.balance,
		Mover: func(e *model.Entity) ability.Mover {
			mover = NewDirectMover(e, func() float64 { return c.MoveSpeed() })
			return mover
		},
	})
	if err != nil {
		return nil, fmt.Errorf("adding hero %s: %w", spec.ID, err)
	}
	if err := a.track(c.Entity()); err != nil {
		return nil, fmt.Errorf("adding hero %s: %w", spec.ID, err)
	}
	a.heroes = append(a.heroes, c)
	a.movers = append(a.movers, mover)

	if spec.AI {
		brain := ai.NewHeroAI(c, a.world, ai.Config{
			Base:  a.layout.Base(team),
			Goal:  a.layout.Crystal(team.Opponent()),
			Build: spec.Build,
		})
		a.ai.Register(c.Entity().ID(), brain)
	}

	slog.Info("hero joined",
		"match", a.matchID,
		"hero", c.Entity(),
		"ai", spec.AI)
	return c, nil
}

// Step advances the match by dt seconds. The order is fixed: clock,
// stat blocks, effect schedulers, abilities, projectiles, AI, hero
// attack cycles, hero movement, waves, units, pruning, respawns and the
// winner check.
func (a *Arena) Step(dt float64) {
	if a.over || dt <= 0 {
		return
	}
	start := time.Now()

	a.clock.Advance(dt)
	now := a.clock.Now()

	for _, e := range a.world.Entities() {
		e.Stats().Advance(dt)
	}
	for _, h := range a.heroes {
		h.Effects().Advance()
	}
	for _, h := range a.heroes {
		h.UpdateAbilities(dt)
	}
	a.world.Projectiles().Update(dt)
	a.ai.TickAll(dt)
	for _, h := range a.heroes {
		h.UpdateAttackCycle(dt)
	}
	for i, m := range a.movers {
		if !a.heroes[i].Channeling() {
			m.Update(dt)
		}
	}

	a.waves.Update(now)
	for _, m := range a.minions {
		m.Update(dt)
	}
	for _, t := range a.turrets {
		t.Update(dt)
	}
	for _, c := range a.crystals {
		c.Update(dt)
	}
	for _, c := range a.camps {
		c.Update(dt)
	}

	a.prune()
	for _, task := range a.respawns.Due(now) {
		task.Hero.Respawn(a.layout.Base(task.Hero.Entity().Team()))
	}
	a.checkWinner()

	a.ticks++
	if a.cfg.OnTick != nil {
		a.cfg.OnTick(time.Since(start))
	}
}

func (a *Arena) prune() {
	if a.world.Prune() == 0 {
		return
	}
	alive := a.minions[:0]
	for _, m := range a.minions {
		if m.Entity().IsAlive() {
			alive = append(alive, m)
		}
	}
	clear(a.minions[len(alive):])
	a.minions = alive
}

func (a *Arena) checkWinner() {
	for _, c := range a.crystals {
		if !c.Destroyed() {
			continue
		}
		a.over = true
		a.winner = c.Entity().Team().Opponent()
		slog.Info("crystal destroyed",
			"match", a.matchID,
			"winner", a.winner.String(),
			"at", a.clock.Now())
		return
	}
}

// Run steps the match until a crystal falls, MaxDuration passes or ctx
// is cancelled. With Speed > 0 steps are paced by a rate limiter at
// TickRate×Speed per wall second.
func (a *Arena) Run(ctx context.Context) (Result, error) {
	dt := 1 / a.cfg.TickRate
	var limiter *rate.Limiter
	if a.cfg.Speed > 0 {
		limiter = rate.NewLimiter(rate.Limit(a.cfg.TickRate*a.cfg.Speed), 1)
	}

	slog.Info("match started",
		"match", a.matchID,
		"heroes", len(a.heroes),
		"tick_rate", a.cfg.TickRate,
		"speed", a.cfg.Speed)

	for !a.over {
		if a.cfg.MaxDuration > 0 && a.clock.Now() >= a.cfg.MaxDuration {
			break
		}
		if err := ctx.Err(); err != nil {
			return a.Result(), err
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return a.Result(), fmt.Errorf("pacing match: %w", err)
			}
		}
		a.Step(dt)
	}

	res := a.Result()
	slog.Info("match finished",
		"match", a.matchID,
		"decided", res.Decided,
		"winner", res.Winner.String(),
		"duration", res.Duration,
		"kills", len(res.Kills))
	return res, nil
}

// Result returns the match summary so far.
func (a *Arena) Result() Result {
	return Result{
		MatchID:  a.matchID,
		Winner:   a.winner,
		Decided:  a.over,
		Duration: a.clock.Now(),
		Ticks:    a.ticks,
		Kills:    append([]Kill(nil), a.kills...),
	}
}

// --- accessors ---

func (a *Arena) MatchID() uuid.UUID         { return a.matchID }
func (a *Arena) Clock() clock.Clock         { return a.clock }
func (a *Arena) World() *World              { return a.world }
func (a *Arena) Heroes() []*hero.Controller { return a.heroes }
func (a *Arena) Minions() []*unit.Minion    { return a.minions }
func (a *Arena) Turrets() []*unit.Turret    { return a.turrets }
func (a *Arena) Crystals() []*unit.Crystal  { return a.crystals }
func (a *Arena) Camps() []*unit.Camp        { return a.camps }
func (a *Arena) Respawns() *RespawnManager  { return a.respawns }
func (a *Arena) Waves() *WaveSpawner        { return a.waves }
func (a *Arena) AI() *ai.TickManager        { return a.ai }
func (a *Arena) Over() bool                 { return a.over }
func (a *Arena) Layout() *data.Layout       { return a.layout }
func (a *Arena) Kills() []Kill              { return a.kills }

// Turret returns the turret named name.
func (a *Arena) Turret(name string) *unit.Turret {
	for _, t := range a.turrets {
		if t.Entity().Name() == name {
			return t
		}
	}
	return nil
}

// Crystal returns the crystal of team.
func (a *Arena) Crystal(team model.Team) *unit.Crystal {
	for _, c := range a.crystals {
		if c.Entity().Team() == team {
			return c
		}
	}
	return nil
}
