package game

import (
	"math/rand"
	"testing"
)

func TestPlaceObstacles_RespectsConstraints(t *testing.T) {
	cfg := DefaultConfig()
	start := Vec{cfg.WorldW / 2, cfg.WorldH / 2}

	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		obs := PlaceObstacles(rng, &cfg, start)
		if len(obs) != cfg.ObstacleCount {
			t.Fatalf("seed %d: placed %d obstacles, want %d", seed, len(obs), cfg.ObstacleCount)
		}
		for i, ob := range obs {
			if ob.Center().Dist(start) < cfg.ObstacleMinDist {
				t.Fatalf("seed %d: obstacle %d too close to the start: %+v", seed, i, ob)
			}
			if ob.X < 0 || ob.Y < 0 || ob.X+ob.W > cfg.WorldW || ob.Y+ob.H > cfg.WorldH {
				t.Fatalf("seed %d: obstacle %d leaves the world: %+v", seed, i, ob)
			}
			for j := i + 1; j < len(obs); j++ {
				if ob.OverlapsRect(obs[j]) {
					t.Fatalf("seed %d: obstacles %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestPlaceVillagers_RespectsConstraints(t *testing.T) {
	cfg := DefaultConfig()
	start := Vec{cfg.WorldW / 2, cfg.WorldH / 2}

	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		obs := PlaceObstacles(rng, &cfg, start)
		ng := NewNavGrid(cfg.WorldW, cfg.WorldH, cfg.CellSize, obs, cfg.ExpandCells)
		positions := PlaceVillagers(rng, &cfg, ng, start)

		if len(positions) != cfg.VillagerCount {
			t.Fatalf("seed %d: placed %d villagers, want %d", seed, len(positions), cfg.VillagerCount)
		}
		for i, pos := range positions {
			if pos.Dist(start) < cfg.VillagerSpawnMinDist {
				t.Fatalf("seed %d: villager %d spawns too close to the start", seed, i)
			}
			if cx, cy := ng.CellOf(pos); ng.IsBlocked(cx, cy) {
				t.Fatalf("seed %d: villager %d spawns in a blocked cell", seed, i)
			}
			for j := i + 1; j < len(positions); j++ {
				if pos.Dist(positions[j]) < cfg.VillagerMinGap {
					t.Fatalf("seed %d: villagers %d and %d spawn too close", seed, i, j)
				}
			}
		}
	}
}

func TestPlaceObstacles_CrowdedWorldComesUpShort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorldW = 300
	cfg.WorldH = 300
	cfg.ObstacleMinDist = 0
	rng := rand.New(rand.NewSource(1))

	// A 300x300 world cannot hold 60 non-overlapping 48..96 px props; the
	// attempt bound must terminate with whatever fit.
	obs := PlaceObstacles(rng, &cfg, Vec{150, 150})
	if len(obs) >= cfg.ObstacleCount {
		t.Fatalf("expected a short placement, got %d", len(obs))
	}
	for i, ob := range obs {
		for j := i + 1; j < len(obs); j++ {
			if ob.OverlapsRect(obs[j]) {
				t.Fatalf("obstacles %d and %d overlap", i, j)
			}
		}
	}
}
