package game

import "math"

// Mode is a villager's discrete behaviour state. Chase by day, a short halt
// while the night transition plays, then flee for the rest of the night.
type Mode int

const (
	ModeChase Mode = iota
	ModeFlee
	ModeHalt
)

func (m Mode) String() string {
	switch m {
	case ModeChase:
		return "chase"
	case ModeFlee:
		return "flee"
	case ModeHalt:
		return "halt"
	default:
		return "unknown"
	}
}

// CycleSignal is a phase-boundary event emitted by the DayCycle.
type CycleSignal int

const (
	SignalNightBegin  CycleSignal = iota // night starts; villagers halt
	SignalHaltElapsed                    // transition window over; villagers flee
	SignalDayBegin                       // day resumes; villagers chase
)

func (s CycleSignal) String() string {
	switch s {
	case SignalNightBegin:
		return "night-begin"
	case SignalHaltElapsed:
		return "halt-elapsed"
	case SignalDayBegin:
		return "day-begin"
	default:
		return "unknown"
	}
}

// DayCycle tracks the day/night timer and turns it into discrete signals.
// Advance is driven by the orchestrator's dt, never by a wall clock, so the
// cycle is fully deterministic under test.
type DayCycle struct {
	dayLen     float64
	nightLen   float64
	haltWindow float64

	t        float64 // position within the current day+night period
	night    bool
	haltLeft float64 // remaining halt window after a night-begin
	halting  bool
}

func NewDayCycle(dayLen, nightLen, haltWindow float64) *DayCycle {
	return &DayCycle{dayLen: dayLen, nightLen: nightLen, haltWindow: haltWindow}
}

// IsNight reports whether the cycle is currently in its night half.
func (c *DayCycle) IsNight() bool { return c.night }

// Elapsed returns the position within the current period, for sky rendering.
func (c *DayCycle) Elapsed() float64 { return c.t }

// Advance moves the timer by dt and returns the signals crossed, in order.
// A dt spike can cross two boundaries in a single call (night-begin plus an
// immediately elapsed halt window).
func (c *DayCycle) Advance(dt float64) []CycleSignal {
	var out []CycleSignal
	period := c.dayLen + c.nightLen
	c.t = math.Mod(c.t+dt, period)

	nowNight := c.t >= c.dayLen
	switch {
	case nowNight && !c.night:
		c.night = true
		c.halting = true
		out = append(out, SignalNightBegin)
		// The halt window starts at the boundary, not at the tick edge.
		c.haltLeft = c.haltWindow - (c.t - c.dayLen)
		if c.haltLeft <= 0 {
			c.halting = false
			out = append(out, SignalHaltElapsed)
		}

	case !nowNight && c.night:
		c.night = false
		c.halting = false
		out = append(out, SignalDayBegin)

	case c.halting:
		c.haltLeft -= dt
		if c.haltLeft <= 0 {
			c.halting = false
			out = append(out, SignalHaltElapsed)
		}
	}
	return out
}
