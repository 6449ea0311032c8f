package effect

import (
	"log/slog"

	"github.com/udisondev/arenacore/internal/clock"
)

// Scheduled is a running effect record.
type Scheduled struct {
	Effect   Effect
	Start    float64
	Duration float64 // <= 0 runs until stopped
	Interval float64 // <= 0 means no periodic ticks

	lastTick float64
	done     bool
}

// End returns the expiry time, or -1 for open-ended records.
func (r *Scheduled) End() float64 {
	if r.Duration <= 0 {
		return -1
	}
	return r.Start + r.Duration
}

// Scheduler owns the staged effects of one entity.
// Not safe for concurrent use.
type Scheduler struct {
	clock   clock.Clock
	active  []*Scheduled
	running bool
	added   []*Scheduled
}

// NewScheduler creates an empty scheduler reading time from clk.
func NewScheduler(clk clock.Clock) *Scheduler {
	return &Scheduler{clock: clk}
}

// Schedule starts e now. Periodic ticks fire at Start+Interval,
// Start+2·Interval, ... up to and including the end instant.
func (s *Scheduler) Schedule(e Effect, duration, interval float64) *Scheduled {
	now := s.clock.Now()
	rec := &Scheduled{
		Effect:   e,
		Start:    now,
		Duration: duration,
		Interval: interval,
		lastTick: now,
	}

	if s.running {
		s.added = append(s.added, rec)
	} else {
		s.active = append(s.active, rec)
	}

	e.OnStart(now)
	slog.Debug("effect scheduled",
		"effect", e.Name(),
		"duration", duration,
		"interval", interval)
	return rec
}

// Advance fires due ticks and retires finished records.
// A single large step fires every tick that became due, in order.
func (s *Scheduler) Advance() {
	now := s.clock.Now()

	s.running = true
	kept := s.active[:0]
	for _, rec := range s.active {
		if !rec.done {
			s.advanceOne(rec, now)
		}
		if !rec.done {
			kept = append(kept, rec)
		}
	}
	s.running = false

	s.active = append(kept, s.added...)
	s.added = s.added[:0]
}

func (s *Scheduler) advanceOne(rec *Scheduled, now float64) {
	end := rec.End()
	limit := now
	if end >= 0 && end < limit {
		limit = end
	}

	if rec.Interval > 0 {
		for rec.lastTick+rec.Interval <= limit+1e-9 {
			rec.lastTick += rec.Interval
			if !rec.Effect.OnActionTime(rec.lastTick) {
				s.finish(rec, rec.lastTick, false)
				return
			}
		}
	}

	if end >= 0 && now >= end-1e-9 {
		s.finish(rec, end, true)
	}
}

func (s *Scheduler) finish(rec *Scheduled, at float64, expired bool) {
	rec.done = true
	rec.Effect.OnExit(at, expired)
}

// Cancel stops every record with the given name. OnExit sees expired=false.
// Returns the number cancelled.
func (s *Scheduler) Cancel(name string) int {
	n := 0
	now := s.clock.Now()
	for _, list := range [][]*Scheduled{s.active, s.added} {
		for _, rec := range list {
			if !rec.done && rec.Effect.Name() == name {
				s.finish(rec, now, false)
				n++
			}
		}
	}
	return n
}

// CancelAll stops everything, e.g. on owner death.
func (s *Scheduler) CancelAll() {
	now := s.clock.Now()
	for _, list := range [][]*Scheduled{s.active, s.added} {
		for _, rec := range list {
			if !rec.done {
				s.finish(rec, now, false)
			}
		}
	}
	if !s.running {
		s.active = s.active[:0]
		s.added = s.added[:0]
	}
}

// Has reports whether a live record with the given name exists.
func (s *Scheduler) Has(name string) bool {
	for _, list := range [][]*Scheduled{s.active, s.added} {
		for _, rec := range list {
			if !rec.done && rec.Effect.Name() == name {
				return true
			}
		}
	}
	return false
}

// Len returns the number of live records.
func (s *Scheduler) Len() int {
	n := 0
	for _, list := range [][]*Scheduled{s.active, s.added} {
		for _, rec := range list {
			if !rec.done {
				n++
			}
		}
	}
	return n
}
