package game

// TestSim is a headless simulation harness used by tests and by the headless
// report runner. It wraps a World built from explicit geometry rather than
// random placement, steps it with a fixed dt, and lets a script drive the
// player.
type TestSim struct {
	World *World

	// Script produces the player input for each tick. Nil means idle.
	Script func(tick int, w *World) PlayerInput

	// Events accumulates every event emitted since construction.
	Events []Event

	dt float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptConfig simOptionKind = iota // config tweaks and seed, applied first
	simOptWorld                       // obstacles, villagers, player, applied after
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind   simOptionKind
	cfgFn  func(*simBuild)
	postFn func(*TestSim)
}

// simBuild is the pre-world accumulation of options.
type simBuild struct {
	cfg         Config
	seed        int64
	verbose     bool
	obstacles   []Obstacle
	villagerPos []Vec
	playerPos   Vec
	playerSet   bool
}

// WithWorldSize sets the world dimensions.
func WithWorldSize(w, h float64) SimOption {
	return SimOption{kind: simOptConfig, cfgFn: func(b *simBuild) {
		b.cfg.WorldW = w
		b.cfg.WorldH = h
	}}
}

// WithCellSize sets the nav grid cell size and expansion margin.
func WithCellSize(size float64, expand int) SimOption {
	return SimOption{kind: simOptConfig, cfgFn: func(b *simBuild) {
		b.cfg.CellSize = size
		b.cfg.ExpandCells = expand
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{kind: simOptConfig, cfgFn: func(b *simBuild) { b.seed = seed }}
}

// WithVerboseLog enables per-tick verbose logging.
func WithVerboseLog() SimOption {
	return SimOption{kind: simOptConfig, cfgFn: func(b *simBuild) { b.verbose = true }}
}

// WithConfig applies an arbitrary tweak to the config under construction.
func WithConfig(fn func(*Config)) SimOption {
	return SimOption{kind: simOptConfig, cfgFn: func(b *simBuild) { fn(&b.cfg) }}
}

// WithObstacle adds an obstacle footprint (top-left corner plus size).
func WithObstacle(x, y, w, h float64) SimOption {
	return SimOption{kind: simOptConfig, cfgFn: func(b *simBuild) {
		b.obstacles = append(b.obstacles, Obstacle{X: x, Y: y, W: w, H: h})
	}}
}

// WithVillagerAt adds a villager starting at (x, y). Villagers get sequential
// ids in the order these options appear.
func WithVillagerAt(x, y float64) SimOption {
	return SimOption{kind: simOptConfig, cfgFn: func(b *simBuild) {
		b.villagerPos = append(b.villagerPos, Vec{x, y})
	}}
}

// WithPlayerAt places the player. Defaults to the world center.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{kind: simOptConfig, cfgFn: func(b *simBuild) {
		b.playerPos = Vec{x, y}
		b.playerSet = true
	}}
}

// WithPlayerScript installs the per-tick input source.
func WithPlayerScript(fn func(tick int, w *World) PlayerInput) SimOption {
	return SimOption{kind: simOptWorld, postFn: func(ts *TestSim) { ts.Script = fn }}
}

// NewTestSim constructs a harness from the options: config options first,
// then the world is built, then post-world options.
func NewTestSim(opts ...SimOption) *TestSim {
	b := &simBuild{cfg: DefaultConfig(), seed: 1}
	for _, o := range opts {
		if o.kind == simOptConfig {
			o.cfgFn(b)
		}
	}
	if !b.playerSet {
		b.playerPos = Vec{b.cfg.WorldW / 2, b.cfg.WorldH / 2}
	}

	ts := &TestSim{
		World: newWorldEmpty(b.cfg, b.seed, b.obstacles, b.villagerPos, b.playerPos, b.verbose),
		dt:    tickDt,
	}
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.postFn(ts)
		}
	}
	return ts
}

// SetDt overrides the fixed step (default 1/60 s).
func (ts *TestSim) SetDt(dt float64) { ts.dt = dt }

// StepOne advances a single tick and returns its events.
func (ts *TestSim) StepOne() []Event {
	var in PlayerInput
	if ts.Script != nil {
		in = ts.Script(ts.World.Tick()+1, ts.World)
	}
	ev := ts.World.Step(ts.dt, in)
	ts.Events = append(ts.Events, ev...)
	return ev
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.StepOne()
	}
}

// RunUntil advances up to maxTicks, stopping early when predicate returns
// true. Returns the tick at which it was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*World) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.StepOne()
		if predicate(ts.World) {
			return ts.World.Tick()
		}
	}
	return -1
}

// RunSeconds advances the simulation by the given amount of sim time.
func (ts *TestSim) RunSeconds(s float64) {
	n := int(s/ts.dt) + 1
	ts.RunTicks(n)
}

// EventsOfKind filters the accumulated events.
func (ts *TestSim) EventsOfKind(kind EventKind) []Event {
	var out []Event
	for _, e := range ts.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
