package arena

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/formula"
	"github.com/udisondev/arenacore/internal/game/hero"
	"github.com/udisondev/arenacore/internal/game/unit"
	"github.com/udisondev/arenacore/internal/model"
)

// Kill is one hero kill in the kill feed.
type Kill struct {
	At         float64
	Killer     string
	KillerTeam model.Team
	Victim     string
}

// router is attached to every entity of the match. It pays bounties,
// queues hero respawns and tells turrets which heroes are diving.
type router struct {
	model.NopListener
	arena *Arena
}

// Damaged reports hero-on-hero damage to the victim's turrets.
func (r router) Damaged(victim, source *model.Entity, _ float64, _ formula.DamageType) {
	if source == nil || victim.Kind() != model.KindHero || source.Kind() != model.KindHero {
		return
	}
	for _, t := range r.arena.turrets {
		if t.Entity().Team() == victim.Team() && t.Active() && t.InRange(victim.Position()) {
			t.ReportThreat(source)
		}
	}
}

func (r router) DiedWithKiller(victim, killer *model.Entity) {
	a := r.arena
	now := a.clock.Now()

	if c, ok := victim.Data.(*hero.Controller); ok {
		a.respawns.Schedule(c, now)
	}

	if killer == nil {
		return
	}
	k, ok := killer.Data.(*hero.Controller)
	if !ok {
		return
	}
	gold, xp := 0, 0
	if b, ok := victim.Data.(unit.Bounty); ok {
		gold, xp = b.Reward()
	}
	k.AwardKill(victim, gold, xp)

	if victim.Kind() == model.KindHero {
		a.kills = append(a.kills, Kill{
			At:         now,
			Killer:     killer.Name(),
			KillerTeam: killer.Team(),
			Victim:     victim.Name(),
		})
		slog.Info("hero slain",
			"killer", killer,
			"victim", victim,
			"at", now)
	}
}
