package tui

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/planner/internal/model"
)

// TasksPanel displays today's tasks.
type TasksPanel struct {
	Tasks []*model.Task
	Width int
}

// NewTasksPanel creates a panel over today's task list.
func NewTasksPanel(tasks []*model.Task, width int) *TasksPanel {
	return &TasksPanel{Tasks: tasks, Width: width}
}

// View renders the tasks panel.
func (p *TasksPanel) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Today's Tasks"))
	content.WriteString("\n\n")

	if len(p.Tasks) == 0 {
		content.WriteString(StyleSubtitle.Render("Nothing planned"))
	} else {
		allDone := true
		for i, t := range p.Tasks {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(renderTaskLine(t))
			if !t.Completed {
				allDone = false
			}
		}
		if allDone {
			box := StylePanelDone.Width(p.Width - 4)
			return box.Render(content.String())
		}
	}

	box := StylePanel.Width(p.Width - 4)
	return box.Render(content.String())
}

func renderTaskLine(t *model.Task) string {
	mark := "[ ]"
	title := t.Title
	if t.Completed {
		mark = "[x]"
		title = StyleDone.Render(title)
	}

	line := mark + " " + title
	if t.Time != "" {
		line += "  " + StyleSubtitle.Render(t.Time)
	}
	if t.Priority == model.PriorityHigh {
		line += "  " + StyleWarning.Render("!")
	}
	return line
}

// HabitsPanel displays active habits with streaks.
type HabitsPanel struct {
	Habits []HabitRow
	Width  int
}

// HabitRow is a habit with its derived stats for display.
type HabitRow struct {
	Habit     *model.Habit
	DoneToday bool
	Streak    int
	Rate      int
}

// NewHabitsPanel creates a panel over the habit rows.
func NewHabitsPanel(rows []HabitRow, width int) *HabitsPanel {
	return &HabitsPanel{Habits: rows, Width: width}
}

// View renders the habits panel.
func (p *HabitsPanel) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Habits"))
	content.WriteString("\n\n")

	if len(p.Habits) == 0 {
		content.WriteString(StyleSubtitle.Render("No habits yet"))
	} else {
		allDone := true
		for i, row := range p.Habits {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(renderHabitLine(row, p.Width))
			if !row.DoneToday {
				allDone = false
			}
		}
		if allDone {
			box := StylePanelDone.Width(p.Width - 4)
			return box.Render(content.String())
		}
	}

	box := StylePanel.Width(p.Width - 4)
	return box.Render(content.String())
}

func renderHabitLine(row HabitRow, width int) string {
	mark := "[ ]"
	if row.DoneToday {
		mark = StyleSuccess.Render("[x]")
	}

	var sb strings.Builder
	sb.WriteString(mark)
	sb.WriteString(" ")
	sb.WriteString(row.Habit.Name)
	if row.Streak > 0 {
		sb.WriteString("  ")
		sb.WriteString(StyleStreak.Render(fmt.Sprintf("%d day streak", row.Streak)))
	}

	barWidth := width - 40
	if barWidth >= 10 {
		sb.WriteString("\n    ")
		sb.WriteString(ProgressBar(float64(row.Rate), barWidth))
		sb.WriteString(" ")
		sb.WriteString(StyleSubtitle.Render(fmt.Sprintf("%d%%", row.Rate)))
	}
	return sb.String()
}

// MeetingsPanel displays the next few meetings.
type MeetingsPanel struct {
	Meetings []*model.Meeting
	Width    int
}

// NewMeetingsPanel creates a panel over the upcoming meetings.
func NewMeetingsPanel(meetings []*model.Meeting, width int) *MeetingsPanel {
	return &MeetingsPanel{Meetings: meetings, Width: width}
}

// View renders the meetings panel.
func (p *MeetingsPanel) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Upcoming Meetings"))
	content.WriteString("\n\n")

	if len(p.Meetings) == 0 {
		content.WriteString(StyleSubtitle.Render("Nothing on the horizon"))
	} else {
		for i, m := range p.Meetings {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(StyleTime.Render(m.StartTime.Format("Mon 15:04")))
			content.WriteString("  ")
			content.WriteString(m.Title)
			if m.Location != "" {
				content.WriteString("  ")
				content.WriteString(StyleSubtitle.Render(m.Location))
			}
		}
	}

	box := StylePanel.Width(p.Width - 4)
	return box.Render(content.String())
}

// GoalsPanel displays savings goals with progress bars.
type GoalsPanel struct {
	Goals []*model.FinancialGoal
	Width int
}

// NewGoalsPanel creates a panel over the goal list.
func NewGoalsPanel(goals []*model.FinancialGoal, width int) *GoalsPanel {
	return &GoalsPanel{Goals: goals, Width: width}
}

// View renders the goals panel, or nothing when no goals exist.
func (p *GoalsPanel) View() string {
	if len(p.Goals) == 0 {
		return ""
	}

	var content strings.Builder
	content.WriteString(StyleTitle.Render("Savings Goals"))
	content.WriteString("\n\n")

	barWidth := p.Width - 40
	if barWidth < 10 {
		barWidth = 10
	}

	for i, g := range p.Goals {
		if i > 0 {
			content.WriteString("\n")
		}
		percent := g.Progress()
		content.WriteString(g.Title)
		content.WriteString("\n    ")
		content.WriteString(ProgressBar(float64(percent), barWidth))
		content.WriteString(" ")
		label := fmt.Sprintf("%.0f / %.0f (%d%%)", g.CurrentAmount, g.TargetAmount, percent)
		if percent >= 100 {
			content.WriteString(StyleSuccess.Render(label + " ✓"))
		} else {
			content.WriteString(StyleSubtitle.Render(label))
		}
	}

	box := StylePanel.Width(p.Width - 4)
	return box.Render(content.String())
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"r", "refresh"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
