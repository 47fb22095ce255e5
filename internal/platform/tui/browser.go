package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-play/internal/registry"
	"github.com/vovakirdan/tui-play/internal/scores"
)

const (
	// Below this width the game list collapses into a single "< Title >" line.
	browserSidebarMin = 80
	browserSidebarW   = 20
	// Rows taken by the title, borders and help bar.
	browserChrome = 8
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// BoardLoader reads the board of a game for one period.
type BoardLoader func(gameID string, p scores.Period) (*scores.Board, error)

// browserKeys are the board browser bindings. They double as the help
// bar contents.
type browserKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Period key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Period, k.Back, k.Quit}
}

func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Next, k.Prev}, {k.Period, k.Back, k.Quit}}
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("j/k", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/l", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("h", "prev game")),
		Period: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "weekly/all-time")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// BrowserModel shows the stored boards of every registered game, read-only.
type BrowserModel struct {
	games  []registry.GameInfo
	game   int
	period scores.Period
	load   BoardLoader

	board   *scores.Board
	loadErr error

	table table.Model
	help  help.Model
	keys  browserKeys

	width, height int
	exit          browserExit
}

// browserExit records how the browser was left.
type browserExit int

const (
	browserOpen browserExit = iota
	browserBack
	browserQuit
)

// NewBrowserModel opens the browser on the all-time board of the first game.
func NewBrowserModel(load BoardLoader, width, height int) BrowserModel {
	m := BrowserModel{
		games:  registry.List(),
		period: scores.AllTime,
		load:   load,
		help:   help.New(),
		keys:   newBrowserKeys(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.refresh()
	return m
}

func (m BrowserModel) wide() bool { return m.width >= browserSidebarMin }

// newTable lays out Rank/Score/Name/Date; the name column gets whatever
// width is left, capped at the longest storable name.
func (m BrowserModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= browserSidebarW + 3
	}
	nameW := min(max(avail-6-10-10-8, 12), scores.NameMax)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Name", Width: nameW},
			{Title: "Date", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-browserChrome, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// refresh rereads the selected board and refills the table.
func (m *BrowserModel) refresh() {
	m.board, m.loadErr = nil, nil
	if m.load != nil && len(m.games) > 0 {
		m.board, m.loadErr = m.load(m.games[m.game].ID, m.period)
	}
	m.fillTable()
}

func (m *BrowserModel) fillTable() {
	var rows []table.Row
	if m.board != nil {
		rows = make([]table.Row, 0, m.board.Len())
		for i, r := range m.board.Records() {
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1),
				strconv.FormatUint(uint64(r.Score), 10),
				r.Name,
				r.Date.Local().Format(scores.DateLayout),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves the game selection by delta, wrapping around.
func (m *BrowserModel) step(delta int) {
	if n := len(m.games); n > 0 {
		m.game = (m.game + delta + n) % n
		m.refresh()
	}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = browserQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = browserBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.Period):
			m.period = otherPeriod(m.period)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func otherPeriod(p scores.Period) scores.Period {
	if p == scores.Weekly {
		return scores.AllTime
	}
	return scores.Weekly
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if m.exit != browserOpen {
		return ""
	}

	heading := m.period.Title()
	if len(m.games) > 0 {
		heading += " - " + m.games[m.game].Title
	}

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", frameStyle.Render(m.content()))
	} else {
		var picker string
		if len(m.games) > 0 {
			picker = centerText(fmt.Sprintf("< %s >", m.games[m.game].Title), m.width) + "\n\n"
		}
		body = picker + frameStyle.Render(m.content())
	}

	return strings.Join([]string{
		accentStyle.MarginBottom(1).Render(centerText(heading, m.width)),
		"",
		body,
		dimStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// sidebar lists the games with the selected one marked.
func (m BrowserModel) sidebar() string {
	lines := []string{"Games", strings.Repeat("-", browserSidebarW-4)}
	for i, g := range m.games {
		title := g.Title
		if limit := browserSidebarW - 6; len(title) > limit {
			title = title[:limit-1] + "."
		}
		if i == m.game {
			lines = append(lines, accentStyle.Render("> "+title))
		} else {
			lines = append(lines, "  "+title)
		}
	}
	return frameStyle.Width(browserSidebarW).Render(strings.Join(lines, "\n"))
}

// content is the table, or a note when there is nothing to list.
func (m BrowserModel) content() string {
	switch {
	case m.loadErr != nil:
		return noteStyle.Render("Cannot read the board:\n" + m.loadErr.Error())
	case m.board == nil || m.board.Len() == 0:
		return noteStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// RunBrowser runs the board browser. goBack is false when the player quit.
func RunBrowser(load BoardLoader, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewBrowserModel(load, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("tui: browser: %w", err)
	}
	m, ok := final.(BrowserModel)
	return ok && m.exit == browserBack, nil
}
