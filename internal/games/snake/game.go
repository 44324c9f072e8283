// Package snake implements the classic grid Snake game: a wrapping board,
// an apple that grows the snake, a rotten apple that shrinks it and a brick
// that ends the run.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game implements the Snake game.
type Game struct {
	cfg        config.Config
	difficulty *config.DifficultyManager
	grid       Grid
	rng        *rand.Rand

	tick           uint64
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	body  *Body
	field *Field

	// Current run
	score     int
	apples    int
	rotten    int
	maxLength int
	runStart  uint64

	// Session
	best int
	runs int

	paused   bool
	tooSmall bool

	// Screen layout
	screenW int
	screenH int
	boardX  int // Screen column of board cell (0, 0)
	boardY  int // Screen row of board cell (0, 0)
}

// hudHeight is the number of rows above the board frame.
const hudHeight = 1

// New creates a Snake game using the given configuration.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		grid: Grid{
			Width:    cfg.Board.Width,
			Height:   cfg.Board.Height,
			CellSize: cfg.Board.CellSize,
		},
	}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Grid returns the board.
func (g *Game) Grid() Grid {
	return g.grid
}

// Config returns the active configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset initializes/restarts the game, including session statistics.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.best = 0
	g.runs = 0
	g.paused = false
	if g.body == nil {
		g.body = NewBody(g.grid.Center(), DirRight)
	}
	g.field = NewField(g.grid)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.startRun(DirRight)
}

// Resize recomputes the layout for a new screen size without touching the
// simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	requiredW := g.grid.Width + 2
	requiredH := g.grid.Height + 2 + hudHeight
	g.tooSmall = w < requiredW || h < requiredH
	if g.tooSmall {
		return
	}

	// Center the board below the HUD
	g.boardX = (w-requiredW)/2 + 1
	g.boardY = hudHeight + (h-requiredH)/2 + 1
}

// ApplyConfig swaps in a reloaded configuration. Speed, difficulty and
// palette take effect immediately; a different board size cannot be applied
// to a running game and is reported by returning false.
func (g *Game) ApplyConfig(cfg config.Config) bool {
	sameBoard := cfg.Board.Width == g.grid.Width && cfg.Board.Height == g.grid.Height
	cfg.Board = g.cfg.Board
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.updateSpeed()
	return sameBoard
}

// startRun puts a one-cell snake in the center heading dir and respawns
// every collectible.
func (g *Game) startRun(dir Direction) {
	g.body.Reset(g.grid.Center(), dir)
	g.field.RespawnAll(g.body, g.rng)

	g.score = 0
	g.apples = 0
	g.rotten = 0
	g.maxLength = g.body.Length()
	g.runStart = g.tick
	g.moveTicker = 0
	g.updateSpeed()
}

// endRun closes the current run and returns its summary event.
func (g *Game) endRun(reason string) core.Event {
	g.runs++
	return core.Event{
		Kind: core.EventRunEnded,
		Run: core.RunSummary{
			Score:     g.score,
			MaxLength: g.maxLength,
			Apples:    g.apples,
			Rotten:    g.rotten,
			Ticks:     g.tick - g.runStart,
			Reason:    reason,
		},
	}
}

// Finish ends the current run without restarting, e.g. when the player quits.
func (g *Game) Finish() core.RunSummary {
	return g.endRun(core.EndQuit).Run
}

func (g *Game) updateSpeed() {
	g.moveEveryTicks = g.difficulty.MoveInterval(
		g.cfg.Speed.MoveEveryTicks,
		g.cfg.Speed.MinMoveEveryTicks,
		g.score,
		g.tick-g.runStart,
	)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		ev := g.endRun(core.EndRestart)
		g.startRun(g.randomDirection())
		return g.result(ev)
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return g.result()
	}

	g.processInput(input)

	g.moveTicker++
	if g.moveTicker < g.moveEveryTicks {
		return g.result()
	}
	g.moveTicker = 0

	events := g.advance()
	g.updateSpeed()
	return g.result(events...)
}

func (g *Game) result(events ...core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// processInput buffers direction changes in the order they were pressed.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Order {
		switch a {
		case core.ActionUp:
			g.body.Turn(DirUp)
		case core.ActionDown:
			g.body.Turn(DirDown)
		case core.ActionLeft:
			g.body.Turn(DirLeft)
		case core.ActionRight:
			g.body.Turn(DirRight)
		}
	}
}

// advance moves the snake one cell and applies the collision rules:
// apple grows, self or brick resets, rotten apple shrinks.
func (g *Game) advance() []core.Event {
	var events []core.Event
	head := g.body.Move(g.grid)

	if g.field.Get(KindApple).At(head) {
		g.body.Grow()
		g.score++
		g.apples++
		if g.score > g.best {
			g.best = g.score
		}
		g.maxLength = max(g.maxLength, g.body.Length())
		g.field.Respawn(KindApple, g.body, g.rng)
		events = append(events, core.Event{Kind: core.EventAteApple})
	}

	switch {
	case g.body.HitsSelf():
		events = append(events, g.endRun(core.EndSelf))
		g.startRun(g.randomDirection())
		return events
	case g.field.Get(KindBrick).At(head):
		events = append(events, g.endRun(core.EndBrick))
		g.startRun(g.randomDirection())
		return events
	}

	if g.field.Get(KindRottenApple).At(head) {
		g.field.Respawn(KindRottenApple, g.body, g.rng)
		g.rotten++
		g.body.Shrink()
		events = append(events, core.Event{Kind: core.EventAteRotten})
	}

	return events
}

// State returns the current game state. The classic game never ends; runs
// restart in place and are reported through events.
func (g *Game) State() core.GameState {
	length := 0
	if g.body != nil {
		length = g.body.Length()
	}
	return core.GameState{
		Score:  g.score,
		Best:   g.best,
		Length: length,
		Paused: g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Best: %d, Runs: %d\n", g.tick, g.score, g.best, g.runs)
	fmt.Fprintf(&b, "Snake len: %d/%d, Direction: %s\n", g.body.Len(), g.body.Length(), g.body.Direction())
	head := g.body.Head()
	fmt.Fprintf(&b, "Head: (%d, %d)", head.X, head.Y)
	for _, c := range g.field.Items() {
		fmt.Fprintf(&b, ", %s: (%d, %d)", c.Kind, c.Pos.X, c.Pos.Y)
	}
	fmt.Fprintf(&b, "\nPaused: %v, TooSmall: %v\n", g.paused, g.tooSmall)
	return b.String()
}

// randomDirection picks the heading for a run started by a crash or restart.
func (g *Game) randomDirection() Direction {
	return Directions[g.rng.Intn(len(Directions))]
}
