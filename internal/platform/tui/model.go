package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// DefaultHoldWindow is how long a direction key keeps the paddle moving.
// Terminals report presses only, so key repeat refreshes the window and
// silence releases it.
const DefaultHoldWindow = 250 * time.Millisecond

// Model is the Bubble Tea model for a running breakout session.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	holdWindow time.Duration
	heldDir    core.Direction
	holdUntil  time.Time
	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	goingBack  bool
}

// NewModel creates a new Bubble Tea model driving the given game.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holdWindow: DefaultHoldWindow,
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the intent of a key press for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.goingBack = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		dir := core.DirLeft
		if action == core.ActionRight {
			dir = core.DirRight
		}
		m.heldDir = dir
		m.holdUntil = m.lastTick.Add(m.holdWindow)
		m.inputFrame.Set(action)
	case core.ActionStop:
		m.heldDir = core.DirNone
		m.inputFrame.Set(action)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The arena is fixed, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds pending intents to the game and advances it.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastTick.IsZero() && m.heldDir != core.DirNone {
		m.holdUntil = now.Add(m.holdWindow)
	}
	m.lastTick = now

	if m.heldDir != core.DirNone && now.After(m.holdUntil) {
		m.heldDir = core.DirNone
		m.inputFrame.Set(core.ActionStop)
	}

	m.game.Apply(m.inputFrame)
	m.inputFrame.Clear()

	if result, stepped := m.game.Tick(now); stepped {
		m.gameState = result.State
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the game and the help line.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(GameKeys(m.keys)))
}

// State returns the game state observed after the last performed step.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsGoingBack returns true if user wants to go back to the level menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run plays the game until the user leaves.
// Returns true if user wants to go back to the menu, false if quitting.
func Run(game *breakout.Game, cfg core.RuntimeConfig) (goBack bool, final core.RuntimeConfig, err error) {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, cfg, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, cfg, nil
	}

	return m.IsGoingBack(), m.Config(), nil
}
