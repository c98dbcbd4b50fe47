package component

// Phase is the in-run state of the session. All transitions happen
// synchronously inside one frame's update.
type Phase int

const (
	PhaseChoice Phase = iota
	PhasePlaying
	PhaseLevelEnd
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseChoice:
		return "choice"
	case PhasePlaying:
		return "playing"
	case PhaseLevelEnd:
		return "levelEnd"
	case PhaseGameOver:
		return "gameOver"
	}
	return "unknown"
}

// Session aggregates the mutable state of one run. It is the single
// session object; every system reads and writes it through the ECS.
type Session struct {
	Phase Phase

	Level  int
	Hearts int

	MonstersToSpawn  int
	MonstersSpawned  int
	MonstersDefeated int
	NextChoiceAt     int

	SpawnTimer    float64 // seconds since the last spawn
	SpawnInterval float64 // seconds between spawns for the current level
	Speed         float64 // monster speed for the current level, px/s

	ScrollOffset float64 // background scroll, wraps at the view width
	FlashTimer   float64 // remaining damage-flash time, seconds

	// Power-ups assigned to the two option boxes while in PhaseChoice.
	LeftOption  Weapon
	RightOption Weapon

	// Current view size. Follows the window on resize.
	ViewW float64
	ViewH float64
}
