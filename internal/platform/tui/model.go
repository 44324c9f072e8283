package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// statusTicks is how long a status message stays on screen.
const statusTicks = 120

// Options configures a game session.
type Options struct {
	Store         *storage.Store // nil disables persistence
	Logger        *log.Logger
	Player        string
	ConfigPath    string // Watched for changes when WatchConfig is set
	WatchConfig   bool
	Preset        config.DifficultyPreset // Re-applied to every reloaded config
	ScreenshotDir string
}

// DefaultScreenshotDir returns ~/.snake/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".snake", "screenshots")
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// Model is the Bubble Tea model for a snake session.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	styles     Styles
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	statusLeft int
	quitting   bool
	saved      int // Runs persisted this session
}

// NewModel creates a new Bubble Tea model and starts the game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Config().Speed.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		styles:     NewStyles(game.Config().Palette),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.opts.Logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadedMsg:
		return m.handleReload(msg.Config)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun(m.game.Finish())
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize keeps the run going and only recomputes the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventRunEnded {
			m.saveRun(ev.Run)
		}
	}

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleReload applies a configuration change from the watcher.
func (m Model) handleReload(cfg config.Config) (tea.Model, tea.Cmd) {
	config.ApplyPreset(&cfg, m.opts.Preset)
	if !m.game.ApplyConfig(cfg) {
		m.opts.Logger.Warn("board size change ignored until restart",
			"width", cfg.Board.Width, "height", cfg.Board.Height)
	}
	m.styles = NewStyles(cfg.Palette)
	m.setStatus("Config reloaded")
	m.opts.Logger.Debug("config applied", "move_every_ticks", cfg.Speed.MoveEveryTicks)
	return m, nil
}

// saveRun persists a finished run. Storage failures are logged, never fatal.
func (m *Model) saveRun(run core.RunSummary) {
	logger := m.opts.Logger.With("score", run.Score, "length", run.MaxLength, "reason", run.Reason)
	if run.Ticks == 0 {
		logger.Debug("empty run skipped")
		return
	}
	if m.opts.Store == nil {
		logger.Info("run ended")
		return
	}

	id, err := m.opts.Store.SaveRun(m.opts.Player, run)
	if err != nil {
		logger.Warn("cannot save run", "error", err)
		return
	}
	m.saved++
	logger.Info("run ended", "run_id", id)
}

// saveScreenshot writes the board as PNG and the screen as text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	base := filepath.Join(m.opts.ScreenshotDir,
		fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))

	if err := m.game.ExportPNG(base+".png", m.game.Config().Palette); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		m.setStatus("Screenshot failed")
		return
	}
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save text screenshot", "error", err)
	}

	m.opts.Logger.Info("screenshot saved", "path", base+".png")
	m.setStatus("Saved " + filepath.Base(base) + ".png")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// Saved returns how many runs were persisted.
func (m Model) Saved() int {
	return m.saved
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 0 {
		m.screen.DrawText(1, m.screen.Height()-1, m.status, core.ColorHUD)
	}

	return RenderScreen(m.screen, m.styles)
}

// Run starts the Bubble Tea program for a game session and blocks until the
// player quits.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if opts.WatchConfig {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if path := config.ResolvePath(opts.ConfigPath); path == "" {
			model.opts.Logger.Warn("config watch disabled: no config file found")
		} else {
			go func() {
				err := config.Watch(ctx, path, model.opts.Logger, func(c config.Config) {
					p.Send(ConfigReloadedMsg{Config: c})
				})
				if err != nil {
					model.opts.Logger.Warn("config watch stopped", "error", err)
				}
			}()
		}
	}

	_, err := p.Run()
	return err
}
