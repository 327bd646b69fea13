package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultRunLogLimit caps how many finished runs a session remembers.
const defaultRunLogLimit = 50

// RunRecord describes one finished run.
type RunRecord struct {
	Game     string
	Preset   string
	Score    int
	Duration time.Duration
	EndedAt  time.Time
}

// RunLog is the in-memory list of runs finished during one session.
// It is owned by a single Bubble Tea program and is not safe for concurrent use.
type RunLog struct {
	records []RunRecord
	limit   int
}

// NewRunLog creates a log that keeps at most limit records.
func NewRunLog(limit int) *RunLog {
	if limit <= 0 {
		limit = defaultRunLogLimit
	}
	return &RunLog{limit: limit}
}

// Add appends a record, dropping the oldest one when the log is full.
func (l *RunLog) Add(r RunRecord) {
	l.records = append(l.records, r)
	if over := len(l.records) - l.limit; over > 0 {
		l.records = append(l.records[:0], l.records[over:]...)
	}
}

// Len returns the number of recorded runs.
func (l *RunLog) Len() int {
	return len(l.records)
}

// Ranked returns the records ordered by score, best first.
// Runs with equal scores keep the order in which they finished.
func (l *RunLog) Ranked() []RunRecord {
	out := make([]RunRecord, len(l.records))
	copy(out, l.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Best returns the highest scoring run.
func (l *RunLog) Best() (RunRecord, bool) {
	ranked := l.Ranked()
	if len(ranked) == 0 {
		return RunRecord{}, false
	}
	return ranked[0], true
}

// RunsKeyMap defines the key bindings for the runs table.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model listing the session's finished runs.
type RunsModel struct {
	log       *RunLog
	table     table.Model
	help      help.Model
	keys      RunsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRunsModel creates a runs view over the given log.
func NewRunsModel(log *RunLog, width, height int) RunsModel {
	m := RunsModel{
		log:    log,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Mode", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// updateTableRows fills the table from the log, best run first.
func (m *RunsModel) updateTableRows() {
	var ranked []RunRecord
	if m.log != nil {
		ranked = m.log.Ranked()
	}

	rows := make([]table.Row, len(ranked))
	for i, r := range ranked {
		mode := r.Preset
		if mode == "" {
			mode = "default"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			mode,
			r.Duration.Round(time.Second).String(),
			r.EndedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs view.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs table.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUNS THIS SESSION", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if m.log == nil || m.log.Len() == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No runs finished yet.\nGo jump over something!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// RunRuns shows the runs table.
// Returns true if user wants to go back to menu, false if quitting.
func RunRuns(log *RunLog, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRunsModel(log, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
