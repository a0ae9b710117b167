package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/store"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be re-read from the stores.
type refreshMsg struct{}

// storeMsg is sent when a watched store reports a change.
type storeMsg store.Event

// completionWindow is the day window behind the habit progress bars.
const completionWindow = 30

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	tasks    []*model.Task
	habits   []HabitRow
	meetings []*model.Meeting
	goals    []*model.FinancialGoal

	// Stores
	taskStore    *store.TaskStore
	habitStore   *store.HabitStore
	meetingStore *store.MeetingStore
	financeStore *store.FinanceStore

	// Change feed
	events <-chan store.Event

	// UI state
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Tasks           *store.TaskStore
	Habits          *store.HabitStore
	Meetings        *store.MeetingStore
	Finance         *store.FinanceStore
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}

	m := &DashboardModel{
		taskStore:       config.Tasks,
		habitStore:      config.Habits,
		meetingStore:    config.Meetings,
		financeStore:    config.Finance,
		refreshInterval: config.RefreshInterval,
	}
	m.events = mergeWatch(
		config.Tasks.Watch(),
		config.Habits.Watch(),
		config.Meetings.Watch(),
		config.Finance.Watch(),
	)
	return m
}

// mergeWatch fans several store change feeds into one channel.
func mergeWatch(feeds ...<-chan store.Event) <-chan store.Event {
	out := make(chan store.Event, len(feeds)*4)
	for _, feed := range feeds {
		go func(ch <-chan store.Event) {
			for e := range ch {
				select {
				case out <- e:
				default:
				}
			}
		}(feed)
	}
	return out
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
		m.waitForChange(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil

	case storeMsg:
		m.loadData()
		return m, m.waitForChange()
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, NewTasksPanel(m.tasks, m.width).View())
	sections = append(sections, NewHabitsPanel(m.habits, m.width).View())
	sections = append(sections, NewMeetingsPanel(m.meetings, m.width).View())

	if goals := NewGoalsPanel(m.goals, m.width).View(); goals != "" {
		sections = append(sections, goals)
	}

	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Planner")
	now := time.Now().Format("Mon Jan 2, 15:04")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// loadData re-reads all panels from the stores.
func (m *DashboardModel) loadData() {
	now := time.Now()

	m.tasks = m.taskStore.TodayTasks()

	habits := m.habitStore.ActiveHabits()
	m.habits = m.habits[:0]
	for _, h := range habits {
		m.habits = append(m.habits, HabitRow{
			Habit:     h,
			DoneToday: m.habitStore.CompletedOn(h.ID, now),
			Streak:    m.habitStore.Streak(h.ID),
			Rate:      m.habitStore.CompletionRate(h.ID, completionWindow),
		})
	}

	m.meetings = m.meetingStore.Upcoming()
	m.goals = m.financeStore.Goals()
	m.err = nil
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// waitForChange blocks on the merged store feed and surfaces the next
// change as a message.
func (m *DashboardModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return storeMsg(<-m.events)
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
