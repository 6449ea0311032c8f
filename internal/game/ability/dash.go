package ability

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/model"
)

// dash moves the owner toward a moving target or a fixed point, once per
// tick, and fires onHit the first time the target comes within hitRange.
// It aborts when the owner dies, the followed target is lost, or the
// deadline passes.
type dash struct {
	active    bool
	name      string
	target    *model.Entity
	follow    bool       // chase target; otherwise head to dest
	dest      model.Vec3 // fixed destination when !follow
	speed     float64
	hitRange  float64
	deadline  float64
	stopOnHit bool
	hit       bool
	onHit     func(s *State, target *model.Entity)
}

func (d *dash) Channeling() bool { return d.active }

// begin starts the dash. margin is added to the travel time to get the timeout.
func (d *dash) begin(s *State, distance, margin float64) {
	d.active = true
	d.hit = false
	d.deadline = s.now() + distance/d.speed + margin
	s.Owner().Mover().Stop()

	slog.Debug("dash started",
		"ability", d.name,
		"owner", s.Owner().Entity(),
		"target", d.target,
		"deadline", d.deadline)
}

func (d *dash) stop(s *State, reason string) {
	d.active = false
	slog.Debug("dash finished",
		"ability", d.name,
		"owner", s.Owner().Entity(),
		"reason", reason)
}

func (d *dash) Update(s *State, dt float64) {
	if !d.active {
		return
	}
	e := s.Owner().Entity()
	switch {
	case !e.IsAlive():
		d.stop(s, "owner dead")
		return
	case s.now() > d.deadline:
		d.stop(s, "timeout")
		return
	case d.follow && !d.target.IsAlive():
		d.stop(s, "target lost")
		return
	}

	goal := d.dest
	if d.follow {
		goal = d.target.Position()
	}
	e.SetPosition(e.Position().MoveTowards(goal, d.speed*dt))

	if !d.hit && d.target.IsAlive() && e.DistanceTo(d.target) <= d.hitRange {
		d.hit = true
		if d.onHit != nil {
			d.onHit(s, d.target)
		}
		if d.stopOnHit {
			d.stop(s, "hit")
			return
		}
	}

	if !d.follow && e.Position() == d.dest {
		d.stop(s, "arrived")
	}
}
