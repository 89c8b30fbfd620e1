package game

import "math/rand"

// placementMargin keeps spawned props and villagers off the world edge.
const placementMargin = 64

// PlaceObstacles scatters count obstacles by rejection sampling: each
// candidate must keep its distance from avoid (the player start) and must not
// overlap an already placed obstacle. Attempts are bounded, so a crowded
// world may come up short rather than loop forever.
func PlaceObstacles(rng *rand.Rand, cfg *Config, avoid Vec) []Obstacle {
	var out []Obstacle
	maxAttempts := cfg.ObstacleCount * cfg.PlacementAttemptsMult
	for attempts := 0; len(out) < cfg.ObstacleCount && attempts < maxAttempts; attempts++ {
		w := 48 + rng.Float64()*48
		h := 48 + rng.Float64()*48
		cx := placementMargin + rng.Float64()*(cfg.WorldW-2*placementMargin)
		cy := placementMargin + rng.Float64()*(cfg.WorldH-2*placementMargin)
		ob := Obstacle{X: cx - w/2, Y: cy - h/2, W: w, H: h}

		if ob.Center().Dist(avoid) < cfg.ObstacleMinDist {
			continue
		}
		overlaps := false
		for _, other := range out {
			if ob.OverlapsRect(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		out = append(out, ob)
	}
	return out
}

// PlaceVillagers spawns villager start positions away from the player start
// and from each other. Positions landing in blocked grid cells are rejected so
// nobody starts inside an obstacle's expanded footprint.
func PlaceVillagers(rng *rand.Rand, cfg *Config, ng *NavGrid, avoid Vec) []Vec {
	var out []Vec
	maxAttempts := cfg.VillagerCount * cfg.PlacementAttemptsMult
	for attempts := 0; len(out) < cfg.VillagerCount && attempts < maxAttempts; attempts++ {
		pos := Vec{
			X: placementMargin + rng.Float64()*(cfg.WorldW-2*placementMargin),
			Y: placementMargin + rng.Float64()*(cfg.WorldH-2*placementMargin),
		}
		if pos.Dist(avoid) < cfg.VillagerSpawnMinDist {
			continue
		}
		cx, cy := ng.CellOf(pos)
		if ng.IsBlocked(cx, cy) {
			continue
		}
		tooClose := false
		for _, p := range out {
			if pos.Dist(p) < cfg.VillagerMinGap {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		out = append(out, pos)
	}
	return out
}
