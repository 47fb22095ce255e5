package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-play/internal/core"
	"github.com/vovakirdan/tui-play/internal/registry"
	"github.com/vovakirdan/tui-play/internal/scores"
)

// menuEntry is one selectable game and its best stored score.
type menuEntry struct {
	registry.GameInfo
	best string
}

// MenuModel is the game picker.
type MenuModel struct {
	entries []menuEntry
	cursor  int
	config  core.RuntimeConfig
	keys    *KeyMapper
	choice  MenuResult
	done    bool
}

// NewMenuModel lists every registered game. load, when set, supplies the
// all-time board shown as each game's best score.
func NewMenuModel(cfg core.RuntimeConfig, load BoardLoader) MenuModel {
	games := registry.List()
	entries := make([]menuEntry, len(games))
	for i, g := range games {
		entries[i] = menuEntry{GameInfo: g, best: bestScore(load, g.ID)}
	}
	return MenuModel{entries: entries, config: cfg, keys: NewKeyMapper()}
}

// bestScore formats the top all-time score of a game, or "-" when there is
// none or the board cannot be read.
func bestScore(load BoardLoader, gameID string) string {
	if load == nil {
		return "-"
	}
	b, err := load(gameID, scores.AllTime)
	if err != nil || b.Len() == 0 {
		return "-"
	}
	top := b.At(0)
	return strconv.FormatUint(uint64(top.Score), 10) + " " + top.Name
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
		return m, nil
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.entries)-1)
		return m, nil
	case MenuActionSelect:
		if len(m.entries) == 0 {
			return m, nil
		}
		m.choice.GameID = m.entries[m.cursor].ID
	case MenuActionScoreboard:
		m.choice.WantsScoreboard = true
	case MenuActionQuit, MenuActionBack:
		m.choice.Quit = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		accentStyle.Render(centerText("  P L A Y  ", w)),
		"",
		centerText("Select a game", w),
		"",
	}
	for i, e := range m.entries {
		line := fmt.Sprintf("%-12s best: %s", e.Title, e.best)
		if i == m.cursor {
			lines = append(lines, accentStyle.Render(centerText("> "+line, w)))
		} else {
			lines = append(lines, centerText("  "+line, w))
		}
	}
	lines = append(lines, "", dimStyle.Render(centerText("j/k: Navigate  |  Enter: Play  |  Tab: Scores  |  q: Quit", w)))
	return strings.Join(lines, "\n")
}

// Result reports what the player picked.
func (m MenuModel) Result() MenuResult {
	r := m.choice
	r.Config = m.config
	if !m.done {
		r.Quit = true
	}
	return r
}

// centerText pads text on the left to centre it within width.
func centerText(text string, width int) string {
	if pad := (width - len(text)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu until the player picks something.
func RunMenu(cfg core.RuntimeConfig, load BoardLoader) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg, load), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
