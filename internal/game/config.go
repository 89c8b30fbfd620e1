package game

// Config bundles every tunable of a round. A Config is treated as immutable
// once a World has been built from it; tests construct variants instead of
// mutating shared state.
type Config struct {
	// World / grid.
	WorldW        float64
	WorldH        float64
	CellSize      float64
	ExpandCells   int
	MaxExpansions int

	// Villager steering.
	VillagerRadius   float64
	VillagerMaxSpeed float64
	VillagerAccel    float64
	RecalcInterval   float64 // seconds between path recomputations per villager
	SeparationRadius float64
	SeparationForce  float64
	AvoidForce       float64

	// Player movement.
	PlayerRadius     float64
	PlayerMaxSpeed   float64
	PlayerAccel      float64
	Friction         float64
	KnockbackSpeed   float64
	SprintMultiplier float64
	StaminaMax       float64
	StaminaDrain     float64 // per second while sprinting
	StaminaRecover   float64 // per second while not sprinting
	StaminaMinSprint float64
	MaxHearts        int

	// Day/night cycle.
	DayLength    float64
	NightLength  float64
	HaltWindow   float64 // transition window during which villagers halt
	DespawnDelay float64 // seconds a caught villager lingers before removal
	CatchPause   float64 // player pause after catching a villager
	BumpFreeze   float64 // player freeze after an obstacle knockback
	HitFlash     float64

	// Placement.
	ObstacleCount         int
	ObstacleMinDist       float64
	VillagerCount         int
	VillagerSpawnMinDist  float64
	VillagerMinGap        float64
	PlacementAttemptsMult int

	// Camera / presentation.
	ScreenW         int
	ScreenH         int
	CameraSmoothing float64
	CameraLookahead float64
	ShakeDuration   float64
	ShakeIntensity  float64
	DarkAlpha       uint8
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		WorldW:        2000,
		WorldH:        2000,
		CellSize:      48,
		ExpandCells:   1,
		MaxExpansions: 25000,

		VillagerRadius:   14,
		VillagerMaxSpeed: 150,
		VillagerAccel:    900,
		RecalcInterval:   0.85,
		SeparationRadius: 36,
		SeparationForce:  420,
		AvoidForce:       600,

		PlayerRadius:     16,
		PlayerMaxSpeed:   250,
		PlayerAccel:      1200,
		Friction:         2000,
		KnockbackSpeed:   440,
		SprintMultiplier: 1.6,
		StaminaMax:       5.0,
		StaminaDrain:     2.5,
		StaminaRecover:   0.3,
		StaminaMinSprint: 0.2,
		MaxHearts:        5,

		DayLength:    20.0,
		NightLength:  12.0,
		HaltWindow:   0.56,
		DespawnDelay: 0.7,
		CatchPause:   0.8,
		BumpFreeze:   0.5,
		HitFlash:     0.2,

		ObstacleCount:         60,
		ObstacleMinDist:       140,
		VillagerCount:         12,
		VillagerSpawnMinDist:  300,
		VillagerMinGap:        70,
		PlacementAttemptsMult: 30,

		ScreenW:         800,
		ScreenH:         600,
		CameraSmoothing: 0.1,
		CameraLookahead: 80,
		ShakeDuration:   0.2,
		ShakeIntensity:  8,
		DarkAlpha:       190,
	}
}

// WaypointReach is the distance at which a villager advances to its next
// waypoint.
func (c *Config) WaypointReach() float64 {
	if r := c.CellSize * 0.35; r > 10 {
		return r
	}
	return 10
}

// AvoidRadius is the obstacle-repulsion activation distance.
func (c *Config) AvoidRadius() float64 {
	if r := c.CellSize * 0.8; r > 32 {
		return r
	}
	return 32
}
