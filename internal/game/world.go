package game

import "math/rand"

// RoundState is the outcome of a round.
type RoundState int

const (
	RoundActive RoundState = iota
	RoundWon               // every villager caught and despawned
	RoundLost              // player ran out of hearts
)

func (rs RoundState) String() string {
	switch rs {
	case RoundActive:
		return "active"
	case RoundWon:
		return "won"
	case RoundLost:
		return "lost"
	default:
		return "unknown"
	}
}

// EventKind tags a per-tick event for the presentation layer.
type EventKind int

const (
	EventNightBegin EventKind = iota
	EventNightHunt            // halt window elapsed; villagers now flee
	EventDayBegin
	EventCatch     // a fleeing villager was caught
	EventDespawn   // a caught villager was removed; a heart was awarded
	EventPlayerHit // daytime contact cost a heart
	EventPlayerBump
	EventWin
	EventLose
)

// Event is a simulation output the renderer and audio layer react to. The
// core never consumes its own events.
type Event struct {
	Kind     EventKind
	Villager int // villager id for catch/despawn/hit events, else -1
}

// World owns one round: the immutable nav grid, the obstacle set, the player
// and the villagers. It drives the fixed per-tick update order and emits
// events for the presentation layer.
type World struct {
	cfg       Config
	seed      int64
	rng       *rand.Rand
	grid      *NavGrid
	obstacles []Obstacle
	villagers []*Villager
	player    *Player
	cycle     *DayCycle

	tick  int
	now   float64
	state RoundState
	stats RoundStats
	log   *SimLog

	// Night hunting is only legal once the halt window has elapsed; a catch
	// during the transition itself would be unfair.
	hunting bool
}

// NewWorld builds a round with randomized placement from the seed. The player
// starts at the world center.
func NewWorld(cfg Config, seed int64) *World {
	w := &World{cfg: cfg}
	w.reset(seed)
	return w
}

// newWorldEmpty builds a round with no placement; the test harness adds
// obstacles and villagers explicitly.
func newWorldEmpty(cfg Config, seed int64, obstacles []Obstacle, villagerPos []Vec, playerPos Vec, verbose bool) *World {
	w := &World{
		cfg:       cfg,
		seed:      seed,
		rng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- simulation, not crypto
		obstacles: obstacles,
		cycle:     NewDayCycle(cfg.DayLength, cfg.NightLength, cfg.HaltWindow),
	}
	w.log = NewSimLog(verbose, &w.tick)
	w.grid = NewNavGrid(cfg.WorldW, cfg.WorldH, cfg.CellSize, obstacles, cfg.ExpandCells)
	w.player = NewPlayer(playerPos, &cfg)
	for i, pos := range villagerPos {
		w.villagers = append(w.villagers, NewVillager(i, pos, &w.stats, w.log))
	}
	return w
}

// reset discards and rebuilds all round state atomically between ticks.
func (w *World) reset(seed int64) {
	w.seed = seed
	w.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation, not crypto
	w.tick = 0
	w.now = 0
	w.state = RoundActive
	w.stats = RoundStats{}
	w.hunting = false
	w.log = NewSimLog(false, &w.tick)
	w.cycle = NewDayCycle(w.cfg.DayLength, w.cfg.NightLength, w.cfg.HaltWindow)

	start := Vec{w.cfg.WorldW / 2, w.cfg.WorldH / 2}
	w.obstacles = PlaceObstacles(w.rng, &w.cfg, start)
	w.grid = NewNavGrid(w.cfg.WorldW, w.cfg.WorldH, w.cfg.CellSize, w.obstacles, w.cfg.ExpandCells)
	w.player = NewPlayer(start, &w.cfg)
	w.villagers = nil
	for i, pos := range PlaceVillagers(w.rng, &w.cfg, w.grid, start) {
		w.villagers = append(w.villagers, NewVillager(i, pos, &w.stats, w.log))
	}
}

// Reset starts a fresh round with a new seed.
func (w *World) Reset(seed int64) { w.reset(seed) }

func (w *World) Config() Config         { return w.cfg }
func (w *World) Grid() *NavGrid         { return w.grid }
func (w *World) Obstacles() []Obstacle  { return w.obstacles }
func (w *World) Villagers() []*Villager { return w.villagers }
func (w *World) Player() *Player        { return w.player }
func (w *World) Cycle() *DayCycle       { return w.cycle }
func (w *World) Tick() int              { return w.tick }
func (w *World) Now() float64           { return w.now }
func (w *World) State() RoundState      { return w.state }
func (w *World) Stats() RoundStats      { return w.stats }
func (w *World) Log() *SimLog           { return w.log }

// Hunting reports whether fleeing villagers can currently be caught.
func (w *World) Hunting() bool { return w.hunting }

// Step advances the simulation by dt. The update order is fixed: cycle
// signals, player movement, villager steering against a position snapshot,
// player/obstacle collision, contact resolution, despawn compaction, then the
// win/lose check. Returned events are valid until the next Step.
func (w *World) Step(dt float64, in PlayerInput) []Event {
	if w.state != RoundActive {
		return nil
	}
	w.tick++
	w.now += dt

	var events []Event

	// 1. DAY/NIGHT: advance the clock and fan signals out to every villager.
	for _, sig := range w.cycle.Advance(dt) {
		switch sig {
		case SignalNightBegin:
			w.hunting = false
			events = append(events, Event{Kind: EventNightBegin, Villager: -1})
		case SignalHaltElapsed:
			w.hunting = true
			events = append(events, Event{Kind: EventNightHunt, Villager: -1})
		case SignalDayBegin:
			w.hunting = false
			events = append(events, Event{Kind: EventDayBegin, Villager: -1})
		}
		for _, v := range w.villagers {
			v.OnCycleSignal(sig)
		}
	}

	// 2. PLAYER: move from input.
	w.player.Update(dt, w.now, in, &w.cfg)

	// 3. STEER: snapshot positions first so separation reads a consistent
	// previous-tick view regardless of villager update order. Caught villagers
	// keep repelling their siblings until the despawn pass removes them; only
	// halted ones are inert.
	snapshot := make([]neighborSnapshot, len(w.villagers))
	for i, v := range w.villagers {
		snapshot[i] = neighborSnapshot{
			id:        v.id,
			pos:       v.pos,
			separates: v.mode != ModeHalt,
		}
	}
	for _, v := range w.villagers {
		if v.hit || v.mode == ModeHalt {
			continue
		}
		v.Update(dt, w.now, w.grid, w.player.pos, snapshot, w.obstacles, &w.cfg, w.rng)
	}

	// 4. PLAYER vs OBSTACLES: knockback on true overlap.
	for _, ob := range w.obstacles {
		if ob.aabbOverlapsCircle(w.player.pos, w.cfg.PlayerRadius) &&
			ob.OverlapsCircle(w.player.pos, w.cfg.PlayerRadius) {
			w.player.BumpObstacle(ob, w.now, &w.cfg, w.rng)
			w.stats.PlayerBumps++
			events = append(events, Event{Kind: EventPlayerBump, Villager: -1})
			break
		}
	}

	// 5. CONTACT: catches at night once hunting, heart loss by day.
	for _, v := range w.villagers {
		if v.hit {
			continue
		}
		if v.pos.Dist(w.player.pos) >= w.cfg.VillagerRadius+w.cfg.PlayerRadius {
			continue
		}
		if w.cycle.IsNight() && w.hunting && v.mode == ModeFlee {
			v.MarkCaught(w.now)
			w.player.OnCatch(w.now, &w.cfg)
			events = append(events, Event{Kind: EventCatch, Villager: v.id})
		} else if !w.cycle.IsNight() {
			w.player.HitByVillager(v, w.now, &w.cfg, w.rng)
			w.stats.PlayerHits++
			v.vel = v.vel.Scale(-0.3)
			w.log.Add(v.id, "player", "hit", "", w.now)
			events = append(events, Event{Kind: EventPlayerHit, Villager: v.id})
		}
		break
	}

	// 6. DESPAWN: mark-then-compact so removal never invalidates iteration.
	kept := w.villagers[:0]
	for _, v := range w.villagers {
		if v.DespawnDue(w.now, w.cfg.DespawnDelay) {
			w.player.GainHeart()
			w.stats.Despawns++
			w.log.Add(v.id, "catch", "despawn", "", w.now)
			events = append(events, Event{Kind: EventDespawn, Villager: v.id})
			continue
		}
		kept = append(kept, v)
	}
	w.villagers = kept

	// 7. OUTCOME.
	if w.player.hearts <= 0 {
		w.state = RoundLost
		w.log.Add(-1, "round", "lost", "", w.now)
		events = append(events, Event{Kind: EventLose, Villager: -1})
	} else if len(w.villagers) == 0 {
		w.state = RoundWon
		w.log.Add(-1, "round", "won", "", w.now)
		events = append(events, Event{Kind: EventWin, Villager: -1})
	}
	return events
}
