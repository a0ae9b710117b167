package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/dateutil"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/output"
)

// todayCmd represents the today command, also the default view.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's tasks, habits, and meetings",
	RunE:    runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	now := time.Now()
	tasks := ctx.Tasks.TodayTasks()
	habits := ctx.Habits.ActiveHabits()
	meetings := ctx.Meetings.TodayMeetings()

	if ctx.IsJSON() {
		if tasks == nil {
			tasks = []*model.Task{}
		}
		if meetings == nil {
			meetings = []*model.Meeting{}
		}
		habitOut := []*output.HabitOutput{}
		for _, h := range habits {
			habitOut = append(habitOut, &output.HabitOutput{
				Habit:          h,
				CompletedToday: ctx.Habits.CompletedOn(h.ID, now),
				Streak:         ctx.Habits.Streak(h.ID),
				CompletionRate: ctx.Habits.CompletionRate(h.ID, completionWindow),
			})
		}
		return ctx.Formatter.JSON(map[string]any{
			"date":     now.Format(model.LogDateFormat),
			"tasks":    tasks,
			"habits":   habitOut,
			"meetings": meetings,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(dateutil.RelativeLabel(now, now) + ", " + now.Format("Mon 2 Jan"))

	cli.PrintTaskList("Tasks", tasks)

	ctx.Formatter.Println()
	cli.Title("Habits")
	if len(habits) == 0 {
		cli.Muted("  No habits yet.")
	}
	for _, h := range habits {
		cli.PrintHabit(h,
			ctx.Habits.CompletedOn(h.ID, now),
			ctx.Habits.Streak(h.ID),
			ctx.Habits.CompletionRate(h.ID, completionWindow))
	}

	ctx.Formatter.Println()
	cli.Title("Meetings")
	if len(meetings) == 0 {
		cli.Muted("  Nothing scheduled.")
	}
	for _, m := range meetings {
		cli.PrintMeeting(m)
	}
	return nil
}
