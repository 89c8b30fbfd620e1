package game

import "testing"

func TestWorld_NightCycleScenario(t *testing.T) {
	ts := NewTestSim(
		WithConfig(func(c *Config) {
			c.DayLength = 2.0
			c.NightLength = 5.0
			c.HaltWindow = 0.5
		}),
		WithVillagerAt(1000, 600),
		WithPlayerAt(1000, 1000),
	)
	w := ts.World
	v := w.Villagers()[0]

	// Day: the villager chases and closes on the idle player.
	startDist := v.Pos().Dist(w.Player().Pos())
	ts.RunTicks(60)
	if v.Mode() != ModeChase {
		t.Fatalf("expected chase during day, got %v", v.Mode())
	}
	if v.Pos().Dist(w.Player().Pos()) >= startDist {
		t.Fatal("chasing villager did not close on the player")
	}

	// Night begins: the villager halts and its position freezes.
	if ts.RunUntil(func(w *World) bool { return v.Mode() == ModeHalt }, 120) < 0 {
		t.Fatal("villager never halted at night-begin")
	}
	if len(ts.EventsOfKind(EventNightBegin)) != 1 {
		t.Fatalf("expected one night-begin event, got %d", len(ts.EventsOfKind(EventNightBegin)))
	}
	haltPos := v.Pos()
	haltCellX, haltCellY := w.Grid().CellOf(haltPos)
	playerCellX, playerCellY := w.Grid().CellOf(w.Player().Pos())
	ts.RunTicks(20) // 0.33s, inside the 0.5s halt window
	if v.Mode() != ModeHalt {
		t.Fatalf("halt window ended early, mode %v", v.Mode())
	}
	if v.Pos() != haltPos {
		t.Fatalf("halted villager moved: %+v → %+v", haltPos, v.Pos())
	}

	// Halt window elapses: the villager flees toward the mirrored cell.
	if ts.RunUntil(func(w *World) bool { return v.Mode() == ModeFlee }, 60) < 0 {
		t.Fatal("villager never started fleeing")
	}
	if len(ts.EventsOfKind(EventNightHunt)) != 1 {
		t.Fatal("expected one night-hunt event")
	}
	if len(v.Path()) == 0 {
		t.Fatal("fleeing villager should have an immediate path")
	}
	mirrorX, mirrorY := w.Grid().ClampCell(
		haltCellX+(haltCellX-playerCellX), haltCellY+(haltCellY-playerCellY))
	want := w.Grid().CenterOf(mirrorX, mirrorY)
	path := v.Path()
	if got := path[len(path)-1]; got != want {
		t.Fatalf("flee path ends at %+v, want mirrored cell center %+v", got, want)
	}

	// Day resumes: back to chase.
	if ts.RunUntil(func(w *World) bool { return v.Mode() == ModeChase }, 400) < 0 {
		t.Fatal("villager never resumed chasing at day-begin")
	}
	if len(ts.EventsOfKind(EventDayBegin)) != 1 {
		t.Fatal("expected one day-begin event")
	}

	// The log carries the whole transition chain: halt, flee, chase.
	changes := w.Log().Filter("mode", "change")
	if len(changes) != 3 {
		t.Logf("log:\n%s", w.Log().Dump())
		t.Fatalf("expected 3 logged mode changes, got %d", len(changes))
	}
}

func TestWorld_CatchDespawnAwardsHeart(t *testing.T) {
	ts := NewTestSim(
		WithConfig(func(c *Config) {
			c.DayLength = 0.5
			c.NightLength = 20.0
			c.HaltWindow = 0.2
		}),
		WithVillagerAt(1500, 1500),
	)
	w := ts.World
	v := w.Villagers()[0]

	if ts.RunUntil(func(w *World) bool { return w.Hunting() }, 120) < 0 {
		t.Fatal("hunting never opened")
	}
	if v.Mode() != ModeFlee {
		t.Fatalf("expected flee once hunting, got %v", v.Mode())
	}

	heartsBefore := w.Player().Hearts()
	v.pos = w.Player().Pos().Add(Vec{20, 0}) // inside contact range
	ts.StepOne()
	if !v.Hit() {
		t.Fatal("contact while hunting should catch the villager")
	}
	if len(ts.EventsOfKind(EventCatch)) != 1 {
		t.Fatal("expected a catch event")
	}
	if !w.Player().Paused(w.Now()) {
		t.Fatal("catch should pause the player")
	}

	if ts.RunUntil(func(w *World) bool { return w.State() == RoundWon }, 120) < 0 {
		t.Fatalf("last despawn should win the round, state %v", w.State())
	}
	if got := w.Player().Hearts(); got != heartsBefore+1 {
		t.Fatalf("hearts = %d, want %d after despawn award", got, heartsBefore+1)
	}
	if w.Stats().Despawns != 1 || w.Stats().Catches != 1 {
		t.Fatalf("stats = %+v, want one catch and one despawn", w.Stats())
	}
	if len(ts.EventsOfKind(EventDespawn)) != 1 || len(ts.EventsOfKind(EventWin)) != 1 {
		t.Fatal("expected despawn and win events")
	}
}

func TestWorld_CaughtVillagerRepelsUntilDespawn(t *testing.T) {
	ts := NewTestSim(
		WithVillagerAt(500, 500),
		WithVillagerAt(512, 500), // 12 apart, inside the 36 separation radius
		WithPlayerAt(500, 100),   // due north, so chase alone has no -X pull
	)
	w := ts.World
	live, caught := w.Villagers()[0], w.Villagers()[1]
	caught.MarkCaught(0)

	ts.StepOne()
	if caught.Pos() != (Vec{512, 500}) {
		t.Fatalf("caught villager moved: %+v", caught.Pos())
	}
	// The body to the east still pushes the live villager west while it waits
	// out the despawn delay.
	if live.Vel().X >= 0 {
		t.Fatalf("live villager should be repelled by the body, vel %+v", live.Vel())
	}
}

func TestWorld_DaytimeContactCostsHeart(t *testing.T) {
	ts := NewTestSim(
		WithVillagerAt(1000, 980),
		WithPlayerAt(1000, 1000),
	)
	w := ts.World

	ev := ts.StepOne()
	found := false
	for _, e := range ev {
		if e.Kind == EventPlayerHit {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a player-hit event on daytime contact")
	}
	if got := w.Player().Hearts(); got != w.Config().MaxHearts-1 {
		t.Fatalf("hearts = %d, want %d", got, w.Config().MaxHearts-1)
	}
	// Knockback pushes the player away from the villager, flash is lit and the
	// villager recoils.
	if w.Player().Vel().Y <= 0 {
		t.Fatalf("knockback should point away from the villager, vel %+v", w.Player().Vel())
	}
	if !w.Player().Flashing(w.Now()) {
		t.Fatal("damage flash should be active")
	}
	if w.Stats().PlayerHits != 1 {
		t.Fatalf("PlayerHits = %d, want 1", w.Stats().PlayerHits)
	}
}

func TestWorld_HeartsExhaustedLosesRound(t *testing.T) {
	ts := NewTestSim(
		WithVillagerAt(1000, 980),
		WithPlayerAt(1000, 1000),
	)
	w := ts.World
	w.Player().hearts = 1

	ts.StepOne()
	if w.State() != RoundLost {
		t.Fatalf("state = %v, want lost", w.State())
	}
	if len(ts.EventsOfKind(EventLose)) != 1 {
		t.Fatal("expected a lose event")
	}
	// A finished round no longer advances.
	tick := w.Tick()
	if ev := ts.StepOne(); ev != nil || w.Tick() != tick {
		t.Fatal("stepping a finished round must be a no-op")
	}
}

func TestWorld_ObstacleBumpKnocksPlayerBack(t *testing.T) {
	ts := NewTestSim(
		WithObstacle(1040, 980, 60, 60),
		WithVillagerAt(100, 100),
		WithPlayerAt(1000, 1000),
		WithPlayerScript(func(tick int, w *World) PlayerInput {
			return PlayerInput{Move: Vec{1, 0}}
		}),
	)
	w := ts.World

	if ts.RunUntil(func(w *World) bool { return w.Stats().PlayerBumps > 0 }, 120) < 0 {
		t.Fatal("player never bumped the obstacle")
	}
	if len(ts.EventsOfKind(EventPlayerBump)) == 0 {
		t.Fatal("expected a bump event")
	}
	if !w.Player().Paused(w.Now()) {
		t.Fatal("bump should freeze player control")
	}
	if w.Player().Vel().X >= 0 {
		t.Fatalf("knockback should point away from the obstacle, vel %+v", w.Player().Vel())
	}
}

func TestWorld_CoarseGridChase(t *testing.T) {
	ts := NewTestSim(
		WithWorldSize(600, 600),
		WithCellSize(30, 1),
		WithSeed(5),
		WithObstacle(270, 240, 60, 60),
		WithVillagerAt(80, 300),
		WithPlayerAt(520, 300),
	)
	w := ts.World
	if w.Grid().Cols() != 20 || w.Grid().Rows() != 20 {
		t.Fatalf("expected a 20x20 grid at cell 30, got %dx%d", w.Grid().Cols(), w.Grid().Rows())
	}

	ts.SetDt(1.0 / 30)
	v := w.Villagers()[0]
	start := v.Pos().Dist(w.Player().Pos())
	ts.RunSeconds(2)
	if w.Now() < 2 {
		t.Fatalf("two sim seconds should have elapsed, now=%.2f", w.Now())
	}
	if v.Pos().Dist(w.Player().Pos()) >= start {
		t.Fatal("villager did not close around the obstacle on the coarse grid")
	}
	if w.Stats().Repaths == 0 {
		t.Fatal("expected path requests during the chase")
	}
}

func TestWorld_VerboseLogRecordsPathFailures(t *testing.T) {
	// The villager stands inside the obstacle's expanded footprint, so its
	// start cell is blocked and every search fails; steering falls back to the
	// direct vector.
	ts := NewTestSim(
		WithSeed(3),
		WithVerboseLog(),
		WithObstacle(960, 960, 96, 96),
		WithVillagerAt(940, 1000),
		WithPlayerAt(200, 200),
	)
	w := ts.World
	ts.RunTicks(10)

	if w.Stats().PathFails == 0 {
		t.Fatal("expected failed path requests from a blocked start cell")
	}
	if len(w.Log().Filter("nav", "no_path")) == 0 {
		t.Logf("log:\n%s", w.Log().Dump())
		t.Fatal("verbose log should record the failed searches")
	}
	if w.Villagers()[0].Vel().X >= 0 {
		t.Fatal("pathless villager should still head directly for the player")
	}
}

func TestWorld_ResetRebuildsRound(t *testing.T) {
	w := NewWorld(DefaultConfig(), 3)
	for i := 0; i < 100; i++ {
		w.Step(tickDt, PlayerInput{Move: Vec{1, 0}, Sprint: true})
	}
	w.Reset(4)

	if w.Tick() != 0 || w.Now() != 0 || w.State() != RoundActive {
		t.Fatalf("reset left stale round state: tick=%d now=%.2f state=%v",
			w.Tick(), w.Now(), w.State())
	}
	if got, want := len(w.Villagers()), w.Config().VillagerCount; got != want {
		t.Fatalf("villagers = %d, want %d", got, want)
	}
	if got, want := len(w.Obstacles()), w.Config().ObstacleCount; got != want {
		t.Fatalf("obstacles = %d, want %d", got, want)
	}
	center := Vec{w.Config().WorldW / 2, w.Config().WorldH / 2}
	if w.Player().Pos() != center {
		t.Fatalf("player at %+v, want world center %+v", w.Player().Pos(), center)
	}
	if w.Player().Hearts() != w.Config().MaxHearts {
		t.Fatal("hearts should reset to max")
	}
	if w.Stats() != (RoundStats{}) {
		t.Fatalf("stats should reset, got %+v", w.Stats())
	}
}

func TestWorld_SameSeedIsDeterministic(t *testing.T) {
	script := func(tick int) PlayerInput {
		if tick%120 < 60 {
			return PlayerInput{Move: Vec{1, 0.5}, Sprint: true}
		}
		return PlayerInput{Move: Vec{-1, 0}}
	}
	a := NewWorld(DefaultConfig(), 42)
	b := NewWorld(DefaultConfig(), 42)
	for i := 0; i < 600; i++ {
		a.Step(tickDt, script(i))
		b.Step(tickDt, script(i))
	}
	if a.Player().Pos() != b.Player().Pos() {
		t.Fatalf("player positions diverged: %+v vs %+v", a.Player().Pos(), b.Player().Pos())
	}
	if len(a.Villagers()) != len(b.Villagers()) {
		t.Fatal("villager counts diverged")
	}
	for i := range a.Villagers() {
		if a.Villagers()[i].Pos() != b.Villagers()[i].Pos() {
			t.Fatalf("villager %d diverged: %+v vs %+v",
				i, a.Villagers()[i].Pos(), b.Villagers()[i].Pos())
		}
	}
	if a.Stats() != b.Stats() {
		t.Fatalf("stats diverged: %+v vs %+v", a.Stats(), b.Stats())
	}
}
