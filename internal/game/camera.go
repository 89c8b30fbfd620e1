package game

import "math/rand"

// Camera follows the player with exponential smoothing, leads in the movement
// direction, clamps to world bounds and supports a decaying shake.
type Camera struct {
	cfg *Config

	offset Vec // world-space top-left of the view
	target Vec

	shakeOffset Vec
	shakeUntil  float64
	shakeAmp    float64
}

func NewCamera(cfg *Config) *Camera {
	return &Camera{cfg: cfg}
}

// Offset is the camera's current view origin including shake.
func (c *Camera) Offset() Vec {
	return c.offset.Add(c.shakeOffset)
}

// Update recenters on the focus position, leading ahead of velocity.
func (c *Camera) Update(now float64, focus, vel Vec, rng *rand.Rand) {
	t := Vec{
		X: focus.X - float64(c.cfg.ScreenW)/2,
		Y: focus.Y - float64(c.cfg.ScreenH)/2,
	}
	if vel.LenSq() > 100 {
		t = t.Add(vel.Normalized().Scale(c.cfg.CameraLookahead))
	}
	t.X = clamp(t.X, 0, c.cfg.WorldW-float64(c.cfg.ScreenW))
	t.Y = clamp(t.Y, 0, c.cfg.WorldH-float64(c.cfg.ScreenH))
	c.target = t

	c.offset.X += (c.target.X - c.offset.X) * c.cfg.CameraSmoothing
	c.offset.Y += (c.target.Y - c.offset.Y) * c.cfg.CameraSmoothing

	if now < c.shakeUntil {
		remain := (c.shakeUntil - now) / c.cfg.ShakeDuration
		amp := c.shakeAmp * remain
		c.shakeOffset = Vec{
			X: (rng.Float64()*2 - 1) * amp,
			Y: (rng.Float64()*2 - 1) * amp,
		}
	} else {
		c.shakeOffset = Vec{}
	}
}

// Shake kicks off a screen shake.
func (c *Camera) Shake(now float64) {
	c.shakeUntil = now + c.cfg.ShakeDuration
	c.shakeAmp = c.cfg.ShakeIntensity
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
