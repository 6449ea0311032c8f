package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/arenacore/internal/ai"
	"github.com/udisondev/arenacore/internal/arena"
	"github.com/udisondev/arenacore/internal/config"
	"github.com/udisondev/arenacore/internal/data"
	"github.com/udisondev/arenacore/internal/metrics"
	"github.com/udisondev/arenacore/internal/model"
)

const ConfigPath = "config/arenasim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("ARENACORE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel, err := cfg.SlogLevel()
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// AI transition traces are noisy, keep them behind debug
	ai.EnableDebugLogging(cfg.AIDebug || logLevel == slog.LevelDebug)

	balance := data.DefaultBalance()
	if cfg.BalanceFile != "" {
		if balance, err = data.LoadBalance(cfg.BalanceFile); err != nil {
			return fmt.Errorf("loading balance: %w", err)
		}
	}

	acfg := cfg.Arena(balance)
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		acfg.Listeners = []model.Listener{m.Listener()}
		acfg.OnTick = m.ObserveTick
		acfg.OnHit = m.ObserveHit
	}

	match, err := arena.New(acfg)
	if err != nil {
		return fmt.Errorf("creating arena: %w", err)
	}
	for _, side := range []struct {
		team   model.Team
		heroes []arena.HeroSpec
	}{
		{model.TeamBlue, cfg.Match.Blue},
		{model.TeamRed, cfg.Match.Red},
	} {
		for _, spec := range side.heroes {
			if _, err := match.AddHero(side.team, spec); err != nil {
				return fmt.Errorf("line-up: %w", err)
			}
		}
	}

	slog.Info("arenasim starting",
		"match", match.MatchID(),
		"tick_rate", cfg.TickRate,
		"speed", cfg.Speed,
		"max_duration", cfg.MaxDuration,
		"seed", cfg.Seed)

	g, gctx := errgroup.WithContext(ctx)
	serveCtx, stopServe := context.WithCancel(gctx)
	defer stopServe()

	g.Go(func() error {
		defer stopServe()
		res, err := match.Run(gctx)
		if errors.Is(err, context.Canceled) {
			slog.Info("match interrupted",
				"match", res.MatchID,
				"duration", res.Duration)
			return nil
		}
		if err != nil {
			return fmt.Errorf("running match: %w", err)
		}
		logResult(res)
		return nil
	})

	if m != nil {
		g.Go(func() error {
			if err := m.Serve(serveCtx, cfg.Metrics.ListenAddr); err != nil {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

func logResult(res arena.Result) {
	if !res.Decided {
		slog.Info("match ended without a winner",
			"match", res.MatchID,
			"duration", res.Duration,
			"ticks", res.Ticks,
			"kills", len(res.Kills))
		return
	}

	kills := map[model.Team]int{}
	for _, k := range res.Kills {
		kills[k.KillerTeam]++
	}
	slog.Info("match won",
		"match", res.MatchID,
		"winner", res.Winner.String(),
		"duration", res.Duration,
		"ticks", res.Ticks,
		"blue_kills", kills[model.TeamBlue],
		"red_kills", kills[model.TeamRed])
}
