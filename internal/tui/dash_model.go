package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okulov/nudge/internal/dates"
	"github.com/okulov/nudge/internal/db"
	"github.com/okulov/nudge/internal/models"
)

// DashModel is the TUI model for the live dashboard: the running clock on
// top, the goals scoreboard below.
type DashModel struct {
	width  int
	height int

	userID   uint
	deadline dates.TimeOfDay

	record  *models.TimeLog
	project *models.Project
	goals   []db.GoalStatus
	err     error

	goalsTable table.Model

	// UI state
	stopping bool // True when user pressed S and we're stopping the record
	exiting  bool // True when user pressed ESC/Q
}

// timerTickMsg is sent every second to redraw the clock
type timerTickMsg struct{}

// refreshTickMsg is sent periodically to reload data from the database
type refreshTickMsg struct{}

// dashDataMsg carries a fresh snapshot loaded from the database
type dashDataMsg struct {
	record  *models.TimeLog
	project *models.Project
	goals   []db.GoalStatus
	err     error
}

const refreshInterval = 15 * time.Second

// NewDashModel creates a new dashboard model
func NewDashModel(userID uint, deadline dates.TimeOfDay) DashModel {
	columns := []table.Column{
		{Title: "Goal", Width: 16},
		{Title: "Status", Width: 10},
		{Title: "Delta", Width: 10},
		{Title: "Today", Width: 10},
		{Title: "Total", Width: 10},
		{Title: "Deadline", Width: 16},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(7),
		table.WithStyles(styles),
	)

	return DashModel{
		userID:     userID,
		deadline:   deadline,
		goalsTable: t,
	}
}

// Init starts the tickers and the first data load
func (m DashModel) Init() tea.Cmd {
	return tea.Batch(
		m.refreshCmd(),
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return timerTickMsg{}
		}),
		tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
			return refreshTickMsg{}
		}),
	)
}

// refreshCmd loads the open record and the goals report off the Update loop
func (m DashModel) refreshCmd() tea.Cmd {
	userID, deadline := m.userID, m.deadline
	return func() tea.Msg {
		var data dashDataMsg

		record, err := db.GetLastRecord(userID, 1)
		if err != nil {
			data.err = err
			return data
		}
		if record != nil && record.Open() {
			data.record = record
			project, err := db.GetProjectByID(record.ProjectID)
			if err != nil {
				data.err = err
				return data
			}
			data.project = project
		}

		goals, err := db.GetGoalsInfo(userID, time.Now(), deadline)
		if err != nil {
			data.err = err
			return data
		}
		data.goals = goals
		return data
	}
}

// Update handles messages
func (m DashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if m.stopping || m.exiting {
			return m, nil
		}
		return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return timerTickMsg{}
		})

	case refreshTickMsg:
		if m.stopping || m.exiting {
			return m, nil
		}
		return m, tea.Batch(
			m.refreshCmd(),
			tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
				return refreshTickMsg{}
			}),
		)

	case dashDataMsg:
		m.record = msg.record
		m.project = msg.project
		m.goals = msg.goals
		m.err = msg.err
		m.goalsTable.SetRows(m.goalRows())
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			if m.record != nil {
				m.stopping = true
				return m, tea.Quit
			}
		case "r", "R":
			return m, m.refreshCmd()
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.goalsTable, cmd = m.goalsTable.Update(msg)
	return m, cmd
}

// goalRows converts the goals report into table rows
func (m DashModel) goalRows() []table.Row {
	rows := make([]table.Row, 0, len(m.goals))
	for _, status := range m.goals {
		state := "DUE"
		if status.Status == db.StatusOverworked {
			state = "OVERWORKED"
		}
		rows = append(rows, table.Row{
			status.Goal.Name,
			state,
			dates.FormatSeconds(status.SecondsDelta),
			dates.FormatSeconds(status.SecondsWorkedToday),
			dates.FormatSeconds(status.SecondsWorked),
			status.PeriodEnd.Format("Mon 15:04"),
		})
	}
	return rows
}

// View renders the dashboard
func (m DashModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	timerPanel := m.renderTimerPanel(m.width, contentHeight-m.goalsTable.Height()-3)
	goalsPanel := m.renderGoalsPanel(m.width)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		timerPanel,
		goalsPanel,
		helpBar,
	)
}

// renderTimerPanel renders the clock for the open record, or the idle banner
func (m DashModel) renderTimerPanel(width, height int) string {
	var components []string

	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.record == nil {
		idleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, idleStyle.Render("NOT TRACKING"))

		hintStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, hintStyle.Render("run 'nudge start <project>' to begin"))
	} else {
		headerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, headerStyle.Render("⏱  TRACKING TIME  ⏱"))

		projectStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, projectStyle.Render(m.project.Name))

		elapsed := time.Duration(m.record.ElapsedSeconds(time.Now().Unix())) * time.Second
		clock := renderBigClock(elapsed)
		var clockLines []string
		for _, line := range strings.Split(clock, "\n") {
			clockLines = append(clockLines, lipgloss.NewStyle().
				Align(lipgloss.Center).
				Width(width).
				Render(line))
		}
		components = append(components, strings.Join(clockLines, "\n"))

		startedStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width)
		started := time.Unix(m.record.StartedAt, 0)
		components = append(components, startedStyle.Render(
			fmt.Sprintf("Started at %s", started.Format("15:04:05"))))
	}

	content := strings.Join(components, "\n\n")
	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
	return panelStyle.Render(content)
}

// renderGoalsPanel renders the goals table, or a hint when there are none
func (m DashModel) renderGoalsPanel(width int) string {
	if len(m.goals) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Align(lipgloss.Center).
			Width(width)
		return emptyStyle.Render("No goals with committed hours")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder))
	rendered := tableStyle.Render(m.goalsTable.View())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered)
}

// renderHelpBar renders the help bar at the bottom
func (m DashModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "s stop record · r refresh · esc/q exit (keep running) · ctrl+c force quit"
	return helpStyle.Render(helpText)
}

// bigDigits is the 5-row ASCII art for the clock display
var bigDigits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders the elapsed time as ASCII art
func renderBigClock(elapsed time.Duration) string {
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	seconds := int(elapsed.Seconds()) % 60

	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if art, ok := bigDigits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(art[i])
				lines[i].WriteString(" ")
			}
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	rendered := make([]string, 5)
	for i := 0; i < 5; i++ {
		rendered[i] = clockStyle.Render(lines[i].String())
	}
	return strings.Join(rendered, "\n")
}
