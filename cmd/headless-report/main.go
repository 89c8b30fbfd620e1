package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/Garsondee/Moon-Howl/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome       game.RoundState
	outcomeTick   int
	firstNight    int
	firstCatch    int
	villagersLeft int
	heartsLeft    int

	stats game.RoundStats
}

const dt = 1.0 / 60.0

func main() {
	var runs int
	var maxTicks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless rounds")
	flag.IntVar(&maxTicks, "ticks", 18000, "tick cap per round (60 ticks = 1s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTicks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Moon-Howl headless report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, maxTicks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runRound(i+1, seed, maxTicks)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

// runRound plays one full round with the scripted player: keep distance from
// the nearest villager by day, close on the nearest one at night.
func runRound(runIndex int, seed int64, maxTicks int) runStats {
	w := game.NewWorld(game.DefaultConfig(), seed)
	rs := runStats{runIndex: runIndex, seed: seed, firstNight: -1, firstCatch: -1}

	for t := 0; t < maxTicks && w.State() == game.RoundActive; t++ {
		events := w.Step(dt, botInput(w))
		for _, e := range events {
			switch e.Kind {
			case game.EventNightBegin:
				if rs.firstNight < 0 {
					rs.firstNight = w.Tick()
				}
			case game.EventCatch:
				if rs.firstCatch < 0 {
					rs.firstCatch = w.Tick()
				}
			}
		}
	}

	rs.outcome = w.State()
	rs.outcomeTick = w.Tick()
	rs.villagersLeft = len(w.Villagers())
	rs.heartsLeft = w.Player().Hearts()
	rs.stats = w.Stats()
	return rs
}

func botInput(w *game.World) game.PlayerInput {
	var nearest *game.Villager
	best := math.Inf(1)
	for _, v := range w.Villagers() {
		if v.Hit() {
			continue
		}
		if d := v.Pos().Dist(w.Player().Pos()); d < best {
			best = d
			nearest = v
		}
	}
	if nearest == nil {
		return game.PlayerInput{}
	}

	toward := nearest.Pos().Sub(w.Player().Pos())
	if w.Cycle().IsNight() && w.Hunting() {
		return game.PlayerInput{Move: toward, Sprint: best > 200}
	}
	if best < 350 {
		return game.PlayerInput{Move: toward.Scale(-1), Sprint: best < 180}
	}
	return game.PlayerInput{}
}

func printRun(rs runStats) {
	fmt.Printf("--- run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s tick=%d hearts=%d villagers_left=%d\n",
		rs.outcome, rs.outcomeTick, rs.heartsLeft, rs.villagersLeft)
	fmt.Printf("first_night=%d first_catch=%d\n", rs.firstNight, rs.firstCatch)
	s := rs.stats
	fmt.Printf("repaths=%d path_fails=%d collisions=%d catches=%d despawns=%d player_hits=%d player_bumps=%d mode_changes=%d\n\n",
		s.Repaths, s.PathFails, s.Collisions, s.Catches, s.Despawns, s.PlayerHits, s.PlayerBumps, s.ModeChanges)
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	wins := 0
	losses := 0
	timeouts := 0
	var catchSum, repathSum, failSum, collSum int
	for _, rs := range all {
		switch rs.outcome {
		case game.RoundWon:
			wins++
		case game.RoundLost:
			losses++
		default:
			timeouts++
		}
		catchSum += rs.stats.Catches
		repathSum += rs.stats.Repaths
		failSum += rs.stats.PathFails
		collSum += rs.stats.Collisions
	}
	n := float64(len(all))
	fmt.Printf("=== aggregate over %d runs ===\n", len(all))
	fmt.Printf("wins=%d losses=%d timeouts=%d\n", wins, losses, timeouts)
	fmt.Printf("avg catches=%.1f repaths=%.1f path_fails=%.1f collisions=%.1f\n",
		float64(catchSum)/n, float64(repathSum)/n, float64(failSum)/n, float64(collSum)/n)
}
