package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/planner/internal/dateutil"
	"github.com/manav03panchal/planner/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorHigh    = lipgloss.Color("#EF4444")
	colorMedium  = lipgloss.Color("#F59E0B")
	colorLow     = lipgloss.Color("#6B7280")

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorMuted)

	stylePinned = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// priority renders a priority marker.
func (c *CLIFormatter) priority(p model.Priority) string {
	marker := map[model.Priority]string{
		model.PriorityHigh:   "!!!",
		model.PriorityMedium: " !!",
		model.PriorityLow:    "  !",
	}[p]
	if !c.IsColorEnabled() {
		return marker
	}
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(colorHigh).Render(marker)
	case model.PriorityMedium:
		return lipgloss.NewStyle().Foreground(colorMedium).Render(marker)
	default:
		return lipgloss.NewStyle().Foreground(colorLow).Render(marker)
	}
}

// PrintTask prints one task line.
func (c *CLIFormatter) PrintTask(t *model.Task) {
	box := "[ ]"
	title := t.Title
	if t.Completed {
		box = "[x]"
		if c.IsColorEnabled() {
			title = styleDone.Render(title)
		}
	}

	line := fmt.Sprintf("%s %s %s", box, c.priority(t.Priority), title)
	if t.Time != "" {
		line += " " + c.mutedText(t.Time)
	}
	if len(t.Tags) > 0 {
		line += " " + c.mutedText("#"+strings.Join(t.Tags, " #"))
	}
	line += "  " + c.mutedText(shortID(t.ID))
	c.Println(line)
}

// PrintTaskList prints a heading and a task list, or a placeholder
// when empty.
func (c *CLIFormatter) PrintTaskList(heading string, tasks []*model.Task) {
	c.Title(heading)
	if len(tasks) == 0 {
		c.Muted("  Nothing here.")
		return
	}
	for _, t := range tasks {
		c.PrintTask(t)
	}
}

// PrintHabit prints one habit line with streak and completion rate.
func (c *CLIFormatter) PrintHabit(h *model.Habit, doneToday bool, streak, rate int) {
	box := "[ ]"
	if doneToday {
		box = "[x]"
	}
	status := ""
	if !h.Active {
		status = " " + c.mutedText("(paused)")
	}
	c.Printf("%s %s%s  streak %d  last 30d %d%%  %s\n",
		box, h.Name, status, streak, rate, c.mutedText(shortID(h.ID)))
}

// PrintGoal prints one financial goal with a progress bar.
func (c *CLIFormatter) PrintGoal(g *model.FinancialGoal) {
	percent := g.Progress()
	c.Printf("%s  %s %3d%%  %s / %s  %s\n",
		g.Title,
		ProgressBar(percent, 20),
		percent,
		FormatMoney(g.CurrentAmount),
		FormatMoney(g.TargetAmount),
		c.mutedText(shortID(g.ID)))
	if g.Deadline != nil {
		c.Muted("  due " + dateutil.RelativeLabel(*g.Deadline, time.Now()))
	}
}

// PrintNote prints one note line.
func (c *CLIFormatter) PrintNote(n *model.Note) {
	pin := "  "
	if n.Pinned {
		pin = "* "
		if c.IsColorEnabled() {
			pin = stylePinned.Render("* ")
		}
	}
	line := fmt.Sprintf("%s %s", pin, n.Title)
	if len(n.Tags) > 0 {
		line += " " + c.mutedText("#"+strings.Join(n.Tags, " #"))
	}
	line += "  " + c.mutedText(shortID(n.ID))
	c.Println(line)
}

// PrintMeeting prints one meeting line.
func (c *CLIFormatter) PrintMeeting(m *model.Meeting) {
	when := fmt.Sprintf("%s %s–%s",
		dateutil.RelativeLabel(m.StartTime, time.Now()),
		m.StartTime.Format("15:04"),
		m.EndTime.Format("15:04"))
	line := fmt.Sprintf("%s  %s", when, m.Title)
	if m.Location != "" {
		line += " " + c.mutedText("@"+m.Location)
	}
	line += "  " + c.mutedText(shortID(m.ID))
	c.Println(line)
}

func (c *CLIFormatter) mutedText(text string) string {
	if c.IsColorEnabled() {
		return styleMuted.Render(text)
	}
	return text
}

// shortID abbreviates a record id for display. Imported ids may be
// shorter than the eight characters shown.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
