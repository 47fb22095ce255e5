package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-play/internal/core"
	"github.com/vovakirdan/tui-play/internal/registry"
)

// SessionResult describes how a game session ended.
type SessionResult struct {
	GameID   string
	Title    string
	Score    uint32
	Reason   string
	Ticks    uint64
	Duration time.Duration
	// Aborted is set when the player pressed Ctrl+C. An aborted session is
	// neither ranked nor journaled.
	Aborted bool
}

// runPhase tracks the game runner through one session.
type runPhase int

const (
	running  runPhase = iota
	finished          // game over, final frame shown until a key is pressed
	dismissed
	aborted
)

// Model drives one game: it forwards keys into an input frame, steps the
// game on every tick and renders it after each update.
type Model struct {
	game   registry.Game
	cfg    core.RuntimeConfig
	screen *core.Screen
	keys   *KeyMapper
	input  core.InputFrame

	phase runPhase
	state core.GameState
	ticks uint64

	now            func() time.Time
	started, ended time.Time
}

// NewModel prepares a session of game. A zero seed is replaced by the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return Model{
		game:   game,
		cfg:    cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		input:  core.NewInputFrame(),
		now:    time.Now,
	}
}

// Init resets the game and schedules the first tick.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.cfg)
	return tickCmd(m.game.TickInterval())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cfg.ScreenW, m.cfg.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.key(msg)
	case TickMsg:
		return m.tick()
	}
	return m, nil
}

// key records input while playing. Once the game is over any key except
// an arrow dismisses the final frame, so a late steering key is not taken
// as a dismissal.
func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.phase = aborted
		return m, tea.Quit
	case m.phase == running:
		m.keys.MapKeyToFrame(msg, &m.input)
		return m, nil
	case m.phase == finished && !isArrow(msg):
		m.phase = dismissed
		return m, tea.Quit
	}
	return m, nil
}

// tick steps the game once. The tick chain ends with the game.
func (m Model) tick() (tea.Model, tea.Cmd) {
	if m.phase != running {
		return m, nil
	}
	if m.started.IsZero() {
		m.started = m.now()
	}

	m.state = m.game.Step(m.input).State
	m.ticks++
	m.input.Clear()

	if m.state.GameOver {
		m.phase = finished
		m.ended = m.now()
		return m, nil
	}
	return m, tickCmd(m.game.TickInterval())
}

// View implements tea.Model.
func (m Model) View() string {
	if m.phase == dismissed || m.phase == aborted {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Result reports the session outcome. A session that never reached game
// over counts as aborted.
func (m Model) Result() SessionResult {
	r := SessionResult{
		GameID:  m.game.ID(),
		Title:   m.game.Title(),
		Score:   m.state.Score,
		Reason:  m.state.Reason,
		Ticks:   m.ticks,
		Aborted: m.phase == aborted || !m.state.GameOver,
	}
	if !m.ended.IsZero() {
		r.Duration = m.ended.Sub(m.started)
	}
	return r
}

// RunGame plays one session of game and returns how it ended.
func RunGame(game registry.Game, cfg core.RuntimeConfig) (SessionResult, error) {
	final, err := tea.NewProgram(NewModel(game, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return SessionResult{GameID: game.ID(), Aborted: true}, err
	}
	m, ok := final.(Model)
	if !ok {
		return SessionResult{GameID: game.ID(), Aborted: true}, nil
	}
	return m.Result(), nil
}
