package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Options configures a game run.
type Options struct {
	// TickInterval is the time between simulation steps. Zero uses the default.
	TickInterval time.Duration
	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for running the snake game.
// Ticks and key presses both arrive through Update, so game calls never interleave.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	interval time.Duration
	logger   *log.Logger

	termW, termH int // Terminal size, zero until the first resize message

	quitting bool
	reported bool // Whether game over has been logged for the current session
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	interval := opts.TickInterval
	if interval <= 0 {
		interval = config.DefaultSnakeConfig().Timing.TickInterval.Std()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		screen:   core.NewScreen(game.ScreenSize()),
		keys:     DefaultKeyMap(),
		help:     h,
		interval: interval,
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	w, h := m.game.GridSize()
	m.logger.Info("game started", "grid", fmt.Sprintf("%dx%d", w, h), "tick", m.interval)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionRestart:
		if !m.game.Running() {
			m.game.Initialize()
			m.reported = false
			m.logger.Info("game restarted")
		}
	default:
		if d, ok := action.Direction(); ok {
			if m.game.SetDirection(d) {
				m.logger.Debug("direction changed", "direction", d)
			}
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
// The tick loop keeps running after game over so a restart needs no re-arm.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Tick()

	if !m.game.Running() && !m.reported {
		snap := m.game.Snapshot()
		m.logger.Info("game over",
			"length", snap.Len(),
			"tick", snap.Tick,
			"head", fmt.Sprintf("(%d,%d)", snap.Head().X, snap.Head().Y),
		)
		m.reported = true
	}

	return m, tickCmd(m.interval)
}

// Game returns the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)

	needW, needH := m.game.ScreenSize()
	needH += lipgloss.Height(helpView)
	if m.termW > 0 && (m.termW < needW || m.termH < needH) {
		return tooSmall(m.termW, m.termH, needW, needH)
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// tooSmall renders the message shown when the terminal cannot fit the board.
func tooSmall(w, h, needW, needH int) string {
	var b strings.Builder
	b.WriteString("Window too small\n")
	fmt.Fprintf(&b, "Need %dx%d, have %dx%d\n", needW, needH, w, h)
	b.WriteString("Resize to continue, q to quit")
	return b.String()
}

// Run starts the Bubble Tea program for the given game and blocks until it exits.
func Run(game *snake.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
