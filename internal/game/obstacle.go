package game

import "math"

// Obstacle is an immovable world prop. The axis-aligned footprint is used for
// broad-phase tests and grid rasterization; precise collision treats agents as
// circles against that footprint.
type Obstacle struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Center returns the footprint's midpoint.
func (o Obstacle) Center() Vec {
	return Vec{o.X + o.W/2, o.Y + o.H/2}
}

// aabbOverlapsCircle is the cheap broad-phase test: the circle's bounding box
// against the obstacle footprint.
func (o Obstacle) aabbOverlapsCircle(c Vec, r float64) bool {
	return c.X+r > o.X && c.X-r < o.X+o.W && c.Y+r > o.Y && c.Y-r < o.Y+o.H
}

// OverlapsCircle is the precise test: distance from the circle center to the
// closest point on the footprint.
func (o Obstacle) OverlapsCircle(c Vec, r float64) bool {
	cx := math.Max(o.X, math.Min(c.X, o.X+o.W))
	cy := math.Max(o.Y, math.Min(c.Y, o.Y+o.H))
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy < r*r
}

// OverlapsRect reports footprint overlap with another obstacle, used during
// placement to keep props apart.
func (o Obstacle) OverlapsRect(p Obstacle) bool {
	return o.X < p.X+p.W && o.X+o.W > p.X && o.Y < p.Y+p.H && o.Y+o.H > p.Y
}
