// Package effect runs staged and periodic effects driven by the tick loop:
// burns, heal-over-time, cast delays. Each record is advanced explicitly by
// its Scheduler, there are no goroutines or timers.
package effect

// Effect is one staged behavior.
//
// OnStart runs when the effect is scheduled. OnActionTime runs every
// Interval seconds and returns false to stop early. OnExit runs exactly
// once; expired is true when the full duration elapsed.
type Effect interface {
	Name() string
	OnStart(now float64)
	OnActionTime(now float64) bool
	OnExit(now float64, expired bool)
}

// Func adapts closures to Effect. Nil callbacks are skipped.
type Func struct {
	ID     string
	Start  func(now float64)
	Action func(now float64) bool
	Exit   func(now float64, expired bool)
}

func (f *Func) Name() string { return f.ID }

func (f *Func) OnStart(now float64) {
	if f.Start != nil {
		f.Start(now)
	}
}

func (f *Func) OnActionTime(now float64) bool {
	if f.Action == nil {
		return true
	}
	return f.Action(now)
}

func (f *Func) OnExit(now float64, expired bool) {
	if f.Exit != nil {
		f.Exit(now, expired)
	}
}

// Delay returns an effect that runs fn once after the scheduled duration,
// unless cancelled first.
func Delay(name string, fn func(now float64)) Effect {
	return &Func{
		ID: name,
		Exit: func(now float64, expired bool) {
			if expired {
				fn(now)
			}
		},
	}
}
