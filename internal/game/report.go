package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// RoundStats accumulates behaviour counters over one round. The world and its
// villagers increment it directly; it resets with the round.
type RoundStats struct {
	Repaths     int // pathfinder invocations
	PathFails   int // searches that returned no path
	Collisions  int // villager hard collisions with obstacles
	PlayerBumps int // player knockbacks off obstacles
	PlayerHits  int // daytime villager contacts costing a heart
	Catches     int // fleeing villagers caught at night
	Despawns    int // caught villagers removed after the delay
	ModeChanges int // villager mode transitions
}

// Report renders a round report: config summary, stats, and the per-villager
// state table. The same text backs the in-game debug export and the headless
// runner's per-run block.
func (w *World) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Moon-Howl round report ---\n")
	fmt.Fprintf(&b, "seed=%d tick=%d elapsed=%.1fs night=%v state=%s\n",
		w.seed, w.tick, w.now, w.cycle.IsNight(), w.state)
	fmt.Fprintf(&b, "world=%.0fx%.0f cell=%.0f villagers=%d/%d obstacles=%d hearts=%d\n\n",
		w.cfg.WorldW, w.cfg.WorldH, w.cfg.CellSize,
		len(w.villagers), w.cfg.VillagerCount, len(w.obstacles), w.player.Hearts())

	s := w.stats
	fmt.Fprintf(&b, "repaths=%d path_fails=%d collisions=%d mode_changes=%d\n",
		s.Repaths, s.PathFails, s.Collisions, s.ModeChanges)
	fmt.Fprintf(&b, "catches=%d despawns=%d player_hits=%d player_bumps=%d\n\n",
		s.Catches, s.Despawns, s.PlayerHits, s.PlayerBumps)

	b.WriteString("villagers:\n")
	for _, v := range w.villagers {
		marker := " "
		if v.hit {
			marker = "x"
		}
		fmt.Fprintf(&b, "  V%02d%s %-5s pos=(%.0f,%.0f) speed=%.0f waypoints=%d/%d\n",
			v.id, marker, v.mode.String(), v.pos.X, v.pos.Y, v.vel.Len(),
			v.pathIdx, len(v.path))
	}
	return b.String()
}

// CopyReport places the current round report on the system clipboard.
func (w *World) CopyReport() error {
	return clipboard.WriteAll(w.Report())
}
