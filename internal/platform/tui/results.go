package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-play/internal/scores"
)

// BoardStore is a score board the results screen reads and commits to.
// *scores.File implements it.
type BoardStore interface {
	Load() (*scores.Board, error)
	Commit(r scores.Record) (int, error)
}

// BoardSource pairs a board with the period it tracks.
type BoardSource struct {
	Period scores.Period
	Store  BoardStore
}

// resultsPhase is where the results screen is in its flow.
type resultsPhase int

const (
	phaseEntry resultsPhase = iota
	phaseCommitting
	phaseDone
)

var (
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	headerStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// boardView is one board as shown on the results screen.
type boardView struct {
	source BoardSource
	board  *scores.Board
	rank   int
	// provisional is the rank shown before the commit.
	provisional int
}

// committedMsg carries the outcome of committing the record.
type committedMsg struct {
	ranks  []int
	boards []*scores.Board
	err    error
}

// ResultsModel is the post-game screen: it shows the boards with the new
// score in place, takes the player's name and commits the record.
type ResultsModel struct {
	title     string
	record    scores.Record
	views     []boardView
	input     textinput.Model
	phase     resultsPhase
	shown     int // board shown when the terminal is too narrow for both
	width     int
	height    int
	aborted   bool
	leaving   bool // ctrl+c during the commit; quit once it lands
	committed bool
	err       error
	logger    *log.Logger
}

// NewResultsModel loads every board and inserts the record provisionally,
// to show where it would rank. Nothing is written until the name is entered.
func NewResultsModel(title string, score uint32, sources []BoardSource, name string, logger *log.Logger) (ResultsModel, error) {
	m := ResultsModel{
		title:  title,
		record: scores.Record{Date: time.Now(), Score: score},
		views:  make([]boardView, 0, len(sources)),
		phase:  phaseDone,
		width:  80,
		height: 24,
		logger: logger,
	}

	ranked := false
	for _, src := range sources {
		b, err := src.Store.Load()
		if err != nil {
			return m, err
		}
		rank := b.Insert(m.record)
		ranked = ranked || rank != scores.NotRanked
		m.views = append(m.views, boardView{source: src, board: b, rank: rank, provisional: rank})
	}

	if ranked {
		ti := textinput.New()
		ti.Prompt = "Your name: "
		ti.CharLimit = scores.NameMax
		ti.Width = scores.NameMax
		ti.SetValue(name)
		ti.Focus()
		m.input = ti
		m.phase = phaseEntry
	}
	return m, nil
}

// Init starts the cursor blinking while a name is expected.
func (m ResultsModel) Init() tea.Cmd {
	if m.phase == phaseEntry {
		return textinput.Blink
	}
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case committedMsg:
		return m.handleCommitted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseEntry {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ResultsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		// A commit in flight must reach both boards before the program exits.
		if m.phase == phaseCommitting {
			m.leaving = true
			return m, nil
		}
		m.aborted = true
		return m, tea.Quit
	}
	if msg.String() == "tab" && len(m.views) > 0 {
		m.shown = (m.shown + 1) % len(m.views)
		return m, nil
	}

	switch m.phase {
	case phaseEntry:
		if msg.Type == tea.KeyEnter {
			m.record.Name = scores.SanitizeName(m.input.Value())
			m.input.Blur()
			m.phase = phaseCommitting
			return m, m.commitCmd()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseCommitting:
		return m, nil
	}
	return m, tea.Quit
}

// commitCmd commits the record to each board in turn, holding one lock at a
// time, and rereads the boards for display. It runs off the UI loop since a
// commit blocks while another player holds the lock.
func (m ResultsModel) commitCmd() tea.Cmd {
	rec := m.record
	stores := make([]BoardStore, len(m.views))
	for i, v := range m.views {
		stores[i] = v.source.Store
	}
	return func() tea.Msg {
		out := committedMsg{
			ranks:  make([]int, len(stores)),
			boards: make([]*scores.Board, len(stores)),
		}
		for i, s := range stores {
			rank, err := s.Commit(rec)
			if err != nil {
				return committedMsg{err: err}
			}
			b, err := s.Load()
			if err != nil {
				return committedMsg{err: err}
			}
			out.ranks[i] = rank
			out.boards[i] = b
		}
		return out
	}
}

func (m ResultsModel) handleCommitted(msg committedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, tea.Quit
	}
	for i := range m.views {
		v := &m.views[i]
		v.board = msg.boards[i]
		v.rank = msg.ranks[i]
		m.logCommit(*v)
	}
	m.phase = phaseDone
	m.committed = true
	if m.leaving {
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ResultsModel) logCommit(v boardView) {
	if m.logger == nil {
		return
	}
	if v.rank == scores.NotRanked {
		m.logger.Info("score committed",
			"board", v.source.Period, "score", m.record.Score, "name", m.record.Name, "ranked", false)
	} else {
		m.logger.Info("score committed",
			"board", v.source.Period, "score", m.record.Score, "name", m.record.Name, "rank", v.rank+1)
	}
	if v.rank != v.provisional {
		m.logger.Info("rank changed while the name was entered",
			"board", v.source.Period, "provisional", displayRank(v.provisional), "rank", displayRank(v.rank))
	}
}

// displayRank is the one-based rank for logs, or "none".
func displayRank(rank int) any {
	if rank == scores.NotRanked {
		return "none"
	}
	return rank + 1
}

// View renders the boards and the prompt.
func (m ResultsModel) View() string {
	if m.aborted || m.err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s: final score %d", m.title, m.record.Score)))
	b.WriteString("\n\n")

	panels := make([]string, len(m.views))
	for i, v := range m.views {
		panels[i] = m.renderBoard(v)
	}
	switch {
	case len(panels) == 0:
	case len(panels) > 1 && m.width >= len(panels)*(scores.Width+4):
		joined := make([]string, 0, 2*len(panels))
		for i, p := range panels {
			if i > 0 {
				joined = append(joined, "    ")
			}
			joined = append(joined, p)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, joined...))
	default:
		b.WriteString(panels[m.shown%len(panels)])
	}
	b.WriteString("\n\n")

	switch m.phase {
	case phaseEntry:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter: save"))
	case phaseCommitting:
		b.WriteString(dimStyle.Render("Saving..."))
	default:
		b.WriteString(dimStyle.Render("Press any key to continue."))
	}
	if len(m.views) > 1 && m.width < len(m.views)*(scores.Width+4) {
		b.WriteString(dimStyle.Render("  tab: other board"))
	}
	return b.String()
}

// renderBoard draws one board excerpt in the report layout.
func (m ResultsModel) renderBoard(v boardView) string {
	var b strings.Builder
	b.WriteString(scores.TitleLine(v.source.Period.Title()))
	b.WriteByte('\n')
	b.WriteString(scores.Rule())
	for _, line := range v.board.Excerpt(v.rank) {
		b.WriteByte('\n')
		if line.Separator {
			b.WriteString(scores.Rule())
			continue
		}
		rec := line.Record
		if line.Highlight && m.phase == phaseEntry {
			rec.Name = scores.SanitizeName(m.input.Value())
		}
		row := scores.FormatRow(line.Rank, rec)
		if line.Highlight {
			row = highlightStyle.Render(row)
		}
		b.WriteString(row)
	}
	return b.String()
}

// Ranks returns the zero-based rank on each board, authoritative once the
// record has been committed.
func (m ResultsModel) Ranks() []int {
	ranks := make([]int, len(m.views))
	for i, v := range m.views {
		ranks[i] = v.rank
	}
	return ranks
}

// Committed reports whether the record was written.
func (m ResultsModel) Committed() bool {
	return m.committed
}

// Err returns the commit failure, if any.
func (m ResultsModel) Err() error {
	return m.err
}

// RunResults shows the results screen for a finished session.
// aborted is set when the player pressed Ctrl+C.
func RunResults(title string, score uint32, sources []BoardSource, name string, logger *log.Logger) (aborted bool, err error) {
	model, err := NewResultsModel(title, score, sources, name, logger)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: results: %w", err)
	}

	m, ok := finalModel.(ResultsModel)
	if !ok {
		return false, nil
	}
	if m.Err() != nil {
		return false, m.Err()
	}
	return m.aborted, nil
}
