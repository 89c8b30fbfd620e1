package game

import (
	"math"
	"math/rand"
)

// PlayerInput is one tick of movement intent. The Ebiten layer builds it from
// the keyboard; tests and the headless runner script it directly.
type PlayerInput struct {
	Move   Vec // direction, normalized internally; zero means idle
	Sprint bool
}

// Player is the externally-driven character the villagers navigate relative
// to. Villagers only ever read its position and shape.
type Player struct {
	pos Vec
	vel Vec

	hearts  int
	stamina float64

	// Time-window status effects, all in simulation seconds.
	freezeUntil float64 // obstacle knockback recovery
	pauseUntil  float64 // post-catch pause
	flashUntil  float64 // damage flash for the renderer

	facing    Facing
	sprinting bool
}

func NewPlayer(pos Vec, cfg *Config) *Player {
	return &Player{
		pos:     pos,
		hearts:  cfg.MaxHearts,
		stamina: cfg.StaminaMax,
		facing:  FacingDown,
	}
}

func (p *Player) Pos() Vec         { return p.pos }
func (p *Player) Vel() Vec         { return p.vel }
func (p *Player) Hearts() int      { return p.hearts }
func (p *Player) Stamina() float64 { return p.stamina }
func (p *Player) Facing() Facing   { return p.facing }
func (p *Player) Sprinting() bool  { return p.sprinting }

// Flashing reports whether the damage flash window is active.
func (p *Player) Flashing(now float64) bool { return now < p.flashUntil }

// Paused reports whether the player is locked out of control (catch pause or
// knockback freeze).
func (p *Player) Paused(now float64) bool {
	return now < p.pauseUntil || now < p.freezeUntil
}

// Update integrates one tick of movement. While paused or frozen, control is
// ignored and residual velocity decays.
func (p *Player) Update(dt, now float64, in PlayerInput, cfg *Config) {
	if p.Paused(now) {
		p.vel = p.vel.Scale(0.9)
		p.pos = p.pos.Add(p.vel.Scale(dt))
		p.clampToWorld(cfg)
		return
	}

	sprinting := in.Sprint && p.stamina > cfg.StaminaMinSprint
	speedCap := cfg.PlayerMaxSpeed
	if sprinting {
		speedCap *= cfg.SprintMultiplier
	}

	moving := in.Move.LenSq() > 0
	if moving {
		desired := in.Move.Normalized().Scale(speedCap)
		change := desired.Sub(p.vel).ClampLen(cfg.PlayerAccel * dt)
		p.vel = p.vel.Add(change)
	} else if p.vel.LenSq() > 0 {
		decel := cfg.Friction * dt
		if p.vel.Len() <= decel {
			p.vel = Vec{}
		} else {
			p.vel = p.vel.Sub(p.vel.Normalized().Scale(decel))
		}
	}
	p.vel = p.vel.ClampLen(speedCap)

	p.pos = p.pos.Add(p.vel.Scale(dt))
	p.clampToWorld(cfg)

	if p.vel.LenSq() > 10 {
		p.facing = FacingFromVec(p.vel)
	}

	if sprinting && moving {
		p.stamina = math.Max(0, p.stamina-cfg.StaminaDrain*dt)
	} else {
		p.stamina = math.Min(cfg.StaminaMax, p.stamina+cfg.StaminaRecover*dt)
	}
	p.sprinting = sprinting && moving
}

func (p *Player) clampToWorld(cfg *Config) {
	p.pos.X = math.Max(0, math.Min(p.pos.X, cfg.WorldW))
	p.pos.Y = math.Max(0, math.Min(p.pos.Y, cfg.WorldH))
}

// BumpObstacle knocks the player back from an obstacle and freezes control
// briefly.
func (p *Player) BumpObstacle(ob Obstacle, now float64, cfg *Config, rng *rand.Rand) {
	dir := p.pos.Sub(ob.Center()).NormalizedOr(rng)
	p.vel = dir.Scale(cfg.KnockbackSpeed)
	p.freezeUntil = now + cfg.BumpFreeze
}

// HitByVillager applies daytime contact damage: heart loss, knockback, flash.
func (p *Player) HitByVillager(v *Villager, now float64, cfg *Config, rng *rand.Rand) {
	if p.hearts > 0 {
		p.hearts--
	}
	dir := p.pos.Sub(v.pos).NormalizedOr(rng)
	p.vel = dir.Scale(cfg.KnockbackSpeed)
	p.flashUntil = now + cfg.HitFlash
}

// OnCatch pauses the player while the catch plays out.
func (p *Player) OnCatch(now float64, cfg *Config) {
	p.pauseUntil = now + cfg.CatchPause
}

// GainHeart awards a heart for a despawned catch.
func (p *Player) GainHeart() {
	if p.hearts < 99 {
		p.hearts++
	}
}
