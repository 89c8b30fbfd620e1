package game

import "image/color"

// Sky color keyframes for the day/night ramp.
var (
	skySunrise   = color.RGBA{R: 255, G: 140, B: 80, A: 255}
	skyAfternoon = color.RGBA{R: 255, G: 220, B: 100, A: 255}
	skySunset    = color.RGBA{R: 255, G: 120, B: 60, A: 255}
	skyNight     = color.RGBA{R: 40, G: 60, B: 120, A: 255}
)

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// SkyColor maps a position within the day+night period to a backdrop color.
// The first and last 20% of each half blend toward the neighbouring keyframe.
func SkyColor(cycleTime, dayLen, nightLen float64) color.RGBA {
	if dayLen <= 0 || nightLen <= 0 {
		return skyAfternoon
	}
	if cycleTime < dayLen {
		p := cycleTime / dayLen
		switch {
		case p < 0.2:
			return lerpColor(skySunrise, skyAfternoon, p/0.2)
		case p < 0.8:
			return skyAfternoon
		default:
			return lerpColor(skyAfternoon, skySunset, (p-0.8)/0.2)
		}
	}
	p := (cycleTime - dayLen) / nightLen
	switch {
	case p < 0.2:
		return lerpColor(skySunset, skyNight, p/0.2)
	case p < 0.8:
		return skyNight
	default:
		return lerpColor(skyNight, skySunrise, (p-0.8)/0.2)
	}
}
