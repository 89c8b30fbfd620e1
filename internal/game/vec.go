package game

import (
	"math"
	"math/rand"
)

// Vec is a 2D world-space vector.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) LenSq() float64      { return v.X*v.X + v.Y*v.Y }
func (v Vec) Dot(o Vec) float64   { return v.X*o.X + v.Y*o.Y }

func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Normalized returns the unit vector in v's direction, or the zero vector if v
// has zero length. Callers that must never steer by a zero vector should use
// NormalizedOr instead.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// NormalizedOr returns the unit vector in v's direction, substituting a random
// unit vector from rng when v is degenerate. This keeps steering directions
// defined when an agent sits exactly on a repulsion source.
func (v Vec) NormalizedOr(rng *rand.Rand) Vec {
	l := v.Len()
	if l == 0 {
		a := rng.Float64() * 2 * math.Pi
		return Vec{math.Cos(a), math.Sin(a)}
	}
	return Vec{v.X / l, v.Y / l}
}

// ClampLen returns v shortened to max if it is longer than max.
func (v Vec) ClampLen(max float64) Vec {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Facing is the coarse heading an agent presents to the renderer.
type Facing int

const (
	FacingDown Facing = iota
	FacingLeft
	FacingRight
	FacingUp
)

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	case FacingUp:
		return "up"
	default:
		return "unknown"
	}
}

// FacingFromVec maps a velocity to the dominant axis direction. Zero velocity
// keeps the conventional default of facing down.
func FacingFromVec(v Vec) Facing {
	if v.LenSq() == 0 {
		return FacingDown
	}
	if math.Abs(v.X) > math.Abs(v.Y) {
		if v.X > 0 {
			return FacingRight
		}
		return FacingLeft
	}
	if v.Y > 0 {
		return FacingDown
	}
	return FacingUp
}
