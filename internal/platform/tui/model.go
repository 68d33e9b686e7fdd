package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-breaker/internal/core"
	"github.com/vovakirdan/block-breaker/internal/registry"
)

// helpRows is the number of rows under the canvas used by the help line.
const helpRows = 1

// Model is the Bubble Tea model for a single run.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	opts     registry.RunOptions
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	input    core.InputFrame
	fireHeld bool // Left mouse button is down
	pressed  bool // A press arrived since the last tick
	width    int
	state    core.GameState
	quitting bool
}

// NewModel creates a model sized to cfg until the first WindowSizeMsg arrives.
func NewModel(game registry.Game, opts registry.RunOptions, cfg core.RuntimeConfig) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpRows)),
		opts:   opts,
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   help.New(),
		input:  core.NewInputFrame(opts.ViewportWidth / 2),
		width:  cfg.ScreenW,
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.mapper.MapKeyToFrame(msg, &m.input, m.opts.ViewportWidth)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleMouse tracks the pointer column and the left button.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	m.input.PointerX = PointerFromColumn(msg.X, m.width, m.opts.ViewportWidth)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.fireHeld = true
		m.pressed = true
		m.input.Set(core.ActionFire)
	case msg.Action == tea.MouseActionRelease:
		// Some terminals report the release without a button.
		// A click shorter than a tick still reaches the next Step.
		m.fireHeld = false
		if !m.pressed {
			m.input.Unset(core.ActionFire)
		}
	}
	return m
}

// handleTick steps the simulation once and stops the program on a terminal
// outcome.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State

	// Keys are one-shot; the mouse button stays held until released
	m.input.Clear()
	m.pressed = false
	if m.fireHeld {
		m.input.Set(core.ActionFire)
	}

	if m.state.Outcome.Terminal() {
		m.opts.Logger.Debug("stopping", "outcome", m.state.Outcome)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.TickRate)
}

// View renders the canvas and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.state
}

// PointerFromColumn maps a terminal column to a logical x coordinate at the
// center of that column.
func PointerFromColumn(col, width int, viewportW float64) float64 {
	if width <= 0 {
		return viewportW / 2
	}
	x := (float64(col) + 0.5) * viewportW / float64(width)
	return core.ClampF(x, 0, viewportW)
}

// Backend runs the game with Bubble Tea.
type Backend struct{}

// ID implements registry.Backend.
func (Backend) ID() string { return "tui" }

// Title implements registry.Backend.
func (Backend) Title() string { return "Bubble Tea terminal UI (mouse + keyboard)" }

// Run starts the Bubble Tea program and blocks until the run ends.
func (Backend) Run(ctx context.Context, g registry.Game, opts registry.RunOptions) error {
	model := NewModel(g, opts, core.DefaultConfig())

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func init() {
	registry.Register("tui", func() registry.Backend { return Backend{} })
}
