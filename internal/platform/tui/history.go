package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const maxHistoryRows = 100

// HistoryView selects which runs the history screen lists.
type HistoryView int

const (
	ViewRecent HistoryView = iota
	ViewBest
)

// String returns the view title.
func (v HistoryView) String() string {
	if v == ViewBest {
		return "BEST RUNS"
	}
	return "RECENT RUNS"
}

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	store  *storage.Store
	gameID string
	view   HistoryView
	runs   []storage.Run
	stats  *storage.Stats
	err    error
	table  table.Model
	help   help.Model
	keys   HistoryKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
	// embedded screens report back/quit instead of quitting the program
	embedded bool
}

// NewHistoryModel creates a history screen for the given game. store may be nil.
func NewHistoryModel(store *storage.Store, gameID string, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		store:  store,
		gameID: gameID,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Locked", Width: 8},
		{Title: "Gravity", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Title, stats, borders, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and stats for the current view.
func (m *HistoryModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		switch m.view {
		case ViewBest:
			m.runs, m.err = m.store.BestRuns(m.gameID, maxHistoryRows)
		default:
			m.runs, m.err = m.store.RecentRuns(m.gameID, maxHistoryRows)
		}
		if m.err == nil {
			m.stats, m.err = m.store.Stats(m.gameID)
		}
	}
	m.table.SetRows(historyRows(m.runs))
	m.table.GotoTop()
}

// historyRows formats runs as table rows.
func historyRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Locks),
			fmt.Sprintf("%d", r.GravityTicks),
			formatDuration(r.Duration),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Toggle):
			if m.view == ViewRecent {
				m.view = ViewBest
			} else {
				m.view = ViewRecent
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetRows(historyRows(m.runs))
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if !m.embedded && (m.quitting || m.goingBack) {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.view.String()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	for _, line := range strings.Split(box.Render(m.tableContent()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) statsLine() string {
	switch {
	case m.store == nil:
		return dimStyle.Render("History unavailable (no database)")
	case m.err != nil:
		return dimStyle.Render("Error: " + m.err.Error())
	case m.stats == nil || m.stats.Runs == 0:
		return ""
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f  Played: %s",
		m.stats.Runs, m.stats.BestLocks, m.stats.AvgLocks, formatDuration(int(m.stats.TotalDuration)))
}

// tableContent renders the table or empty message.
func (m HistoryModel) tableContent() string {
	if len(m.runs) == 0 {
		return dimStyle.Padding(2, 4).Render("No runs recorded yet.\nPlay a game to start your history!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
