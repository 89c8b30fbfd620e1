package game

import (
	"math"
	"math/rand"
)

// collisionDamping is the velocity multiplier applied after a hard collision.
const collisionDamping = 0.55

// collisionNudge is the displacement away from an obstacle center, in cells.
const collisionNudge = 0.06

// Villager is an autonomous agent. By day it chases the player; at night it
// halts for the transition window and then flees. A villager caught while
// fleeing is marked hit, stops moving and despawns after a fixed delay.
type Villager struct {
	id  int
	pos Vec
	vel Vec

	mode   Mode
	facing Facing

	// Navigation.
	path       []Vec // simplified waypoints, replaced wholesale on repath
	pathIdx    int
	lastRecalc float64

	// Catch state.
	hit   bool
	hitAt float64

	stats *RoundStats
	log   *SimLog
}

// neighborSnapshot is a sibling's position captured before any villager moved
// this tick, so separation never observes a half-updated neighbor.
type neighborSnapshot struct {
	id  int
	pos Vec
	// separates is false only for halted villagers. Caught villagers stay in
	// the separation field until they despawn, so nobody walks through a body.
	separates bool
}

func NewVillager(id int, pos Vec, stats *RoundStats, log *SimLog) *Villager {
	return &Villager{
		id:         id,
		pos:        pos,
		mode:       ModeChase,
		facing:     FacingDown,
		lastRecalc: math.Inf(-1),
		stats:      stats,
		log:        log,
	}
}

func (v *Villager) ID() int        { return v.id }
func (v *Villager) Pos() Vec       { return v.pos }
func (v *Villager) Vel() Vec       { return v.vel }
func (v *Villager) Mode() Mode     { return v.mode }
func (v *Villager) Facing() Facing { return v.facing }
func (v *Villager) Hit() bool      { return v.hit }
func (v *Villager) Path() []Vec    { return v.path }

// OnCycleSignal applies a day/night phase signal to the villager's mode.
// Caught villagers ignore all further transitions.
func (v *Villager) OnCycleSignal(sig CycleSignal) {
	if v.hit {
		return
	}
	prev := v.mode
	switch sig {
	case SignalNightBegin:
		v.mode = ModeHalt
	case SignalHaltElapsed:
		if v.mode == ModeHalt {
			v.mode = ModeFlee
			v.lastRecalc = math.Inf(-1) // repath immediately on the next tick
		}
	case SignalDayBegin:
		v.mode = ModeChase
		v.lastRecalc = math.Inf(-1)
	}
	if v.mode != prev {
		v.stats.ModeChanges++
		v.log.Add(v.id, "mode", "change", prev.String()+" → "+v.mode.String(), 0)
	}
}

// MarkCaught freezes the villager and timestamps the catch.
func (v *Villager) MarkCaught(now float64) {
	v.hit = true
	v.hitAt = now
	v.vel = Vec{}
	v.stats.Catches++
	v.log.Add(v.id, "catch", "caught", "", now)
}

// DespawnDue reports whether the despawn delay has elapsed since the catch.
func (v *Villager) DespawnDue(now, delay float64) bool {
	return v.hit && now-v.hitAt >= delay
}

// goalCell picks the pathfinding target for the current mode. Chase targets
// the player's cell. Flee mirrors the villager's own offset from the player
// through itself, clamped to the grid; if that cell is blocked, it falls back
// to the free corner farthest from the player. ok=false means no usable goal.
func (v *Villager) goalCell(ng *NavGrid, playerPos Vec) (Cell, bool) {
	pcx, pcy := ng.CellOf(playerPos)
	scx, scy := ng.CellOf(v.pos)

	switch v.mode {
	case ModeChase:
		cx, cy := ng.ClampCell(pcx, pcy)
		return Cell{cx, cy}, true

	case ModeFlee:
		gx, gy := ng.ClampCell(scx+(scx-pcx), scy+(scy-pcy))
		if !ng.IsBlocked(gx, gy) {
			return Cell{gx, gy}, true
		}
		corners := []Cell{
			{0, 0},
			{ng.Cols() - 1, 0},
			{0, ng.Rows() - 1},
			{ng.Cols() - 1, ng.Rows() - 1},
		}
		bestD := -1.0
		var best Cell
		found := false
		for _, c := range corners {
			if ng.IsBlocked(c.X, c.Y) {
				continue
			}
			d := math.Hypot(float64(c.X-pcx), float64(c.Y-pcy))
			if d > bestD {
				bestD = d
				best = c
				found = true
			}
		}
		return best, found
	}
	return Cell{}, false
}

// requestPath recomputes the path toward the mode goal, throttled to once per
// recalcInterval. A failed search clears the path; the steering fallback takes
// over until the next eligible attempt.
func (v *Villager) requestPath(ng *NavGrid, playerPos Vec, now float64, cfg *Config) {
	if now-v.lastRecalc < cfg.RecalcInterval {
		return
	}
	v.lastRecalc = now

	goal, ok := v.goalCell(ng, playerPos)
	if !ok {
		v.path = nil
		v.pathIdx = 0
		v.stats.PathFails++
		return
	}

	scx, scy := ng.CellOf(v.pos)
	cells := FindPath(ng, Cell{scx, scy}, goal, cfg.MaxExpansions)
	v.stats.Repaths++
	if cells == nil {
		v.path = nil
		v.pathIdx = 0
		v.stats.PathFails++
		v.log.AddVerbose(v.id, "nav", "no_path", v.mode.String(), now)
		return
	}
	v.path = Simplify(ng, cells)
	v.pathIdx = 0
}

// desiredVelocity steers toward the current waypoint, advancing the cursor on
// arrival, or falls back to a direct vector relative to the player when no
// path is available.
func (v *Villager) desiredVelocity(playerPos Vec, cfg *Config) Vec {
	if v.pathIdx < len(v.path) {
		target := v.path[v.pathIdx]
		if v.pos.Dist(target) < cfg.WaypointReach() {
			v.pathIdx++
		}
		if v.pathIdx < len(v.path) {
			target = v.path[v.pathIdx]
			d := target.Sub(v.pos)
			if d.LenSq() > 0 {
				return d.Normalized().Scale(cfg.VillagerMaxSpeed)
			}
			return Vec{}
		}
	}

	switch v.mode {
	case ModeChase:
		d := playerPos.Sub(v.pos)
		if d.LenSq() > 0 {
			return d.Normalized().Scale(cfg.VillagerMaxSpeed)
		}
	case ModeFlee:
		d := v.pos.Sub(playerPos)
		if d.LenSq() > 0 {
			return d.Normalized().Scale(cfg.VillagerMaxSpeed)
		}
	}
	return Vec{}
}

// separation accumulates inverse-square repulsion from nearby active siblings.
func (v *Villager) separation(neighbors []neighborSnapshot, dt float64, cfg *Config, rng *rand.Rand) Vec {
	var sep Vec
	for _, n := range neighbors {
		if n.id == v.id || !n.separates {
			continue
		}
		d := v.pos.Dist(n.pos)
		if d > 0 && d < cfg.SeparationRadius {
			sep = sep.Add(v.pos.Sub(n.pos).Scale(1 / (d * d)))
		}
	}
	if sep.LenSq() == 0 {
		return Vec{}
	}
	return sep.NormalizedOr(rng).Scale(cfg.SeparationForce * dt)
}

// avoidance accumulates inverse-square repulsion from obstacle centers inside
// the avoid radius. This is a soft bias; resolveCollision is the hard backstop.
func (v *Villager) avoidance(obstacles []Obstacle, dt float64, cfg *Config, rng *rand.Rand) Vec {
	var avoid Vec
	radius := cfg.AvoidRadius()
	for _, ob := range obstacles {
		c := ob.Center()
		d := v.pos.Dist(c)
		if d > 0 && d < radius {
			avoid = avoid.Add(v.pos.Sub(c).Scale(1 / (d * d)))
		}
	}
	if avoid.LenSq() == 0 {
		return Vec{}
	}
	return avoid.NormalizedOr(rng).Scale(cfg.AvoidForce * dt)
}

// Update runs one steering tick. Halted and caught villagers are expected to
// be skipped by the caller; Update still guards against both.
func (v *Villager) Update(dt, now float64, ng *NavGrid, playerPos Vec,
	neighbors []neighborSnapshot, obstacles []Obstacle, cfg *Config, rng *rand.Rand) {

	if v.hit || v.mode == ModeHalt {
		return
	}

	v.requestPath(ng, playerPos, now, cfg)

	desired := v.desiredVelocity(playerPos, cfg)
	sep := v.separation(neighbors, dt, cfg, rng)
	avoid := v.avoidance(obstacles, dt, cfg, rng)

	steer := desired.Sub(v.vel).Add(sep).Add(avoid)
	steer = steer.ClampLen(cfg.VillagerAccel * dt)
	v.vel = v.vel.Add(steer).ClampLen(cfg.VillagerMaxSpeed)

	v.resolveCollision(dt, obstacles, cfg, rng)

	v.pos.X = math.Max(0, math.Min(v.pos.X, cfg.WorldW))
	v.pos.Y = math.Max(0, math.Min(v.pos.Y, cfg.WorldH))

	if v.vel.Len() > 4 {
		v.facing = FacingFromVec(v.vel)
	}
}

// resolveCollision advances the position by vel*dt unless the tentative
// position overlaps an obstacle. On overlap the villager keeps its old
// position, gets nudged away from the obstacle center, loses most of its
// speed, and drops its path so the next eligible tick replans around the
// contact.
func (v *Villager) resolveCollision(dt float64, obstacles []Obstacle, cfg *Config, rng *rand.Rand) {
	next := v.pos.Add(v.vel.Scale(dt))
	for _, ob := range obstacles {
		if !ob.aabbOverlapsCircle(next, cfg.VillagerRadius) {
			continue
		}
		if !ob.OverlapsCircle(next, cfg.VillagerRadius) {
			continue
		}
		push := v.pos.Sub(ob.Center()).NormalizedOr(rng)
		v.pos = v.pos.Add(push.Scale(cfg.CellSize * collisionNudge))
		v.vel = v.vel.Scale(collisionDamping)
		v.path = nil
		v.pathIdx = 0
		v.stats.Collisions++
		return
	}
	v.pos = next
}
