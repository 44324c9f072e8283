package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Score          int
	Best           int
	Runs           int
	Length         int // Target length
	BodyLen        int // Occupied cells
	HeadX          int
	HeadY          int
	Dir            Direction
	Apple          Point
	RottenApple    Point
	Brick          Point
	MoveEveryTicks int
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	head := g.body.Head()
	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		Best:           g.best,
		Runs:           g.runs,
		Length:         g.body.Length(),
		BodyLen:        g.body.Len(),
		HeadX:          head.X,
		HeadY:          head.Y,
		Dir:            g.body.Direction(),
		Apple:          g.field.Get(KindApple).Pos,
		RottenApple:    g.field.Get(KindRottenApple).Pos,
		Brick:          g.field.Get(KindBrick).Pos,
		MoveEveryTicks: g.moveEveryTicks,
		State:          state,
	}
}
