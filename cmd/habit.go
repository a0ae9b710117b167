package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/dateutil"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/output"
	"github.com/manav03panchal/planner/internal/parser"
	"github.com/manav03panchal/planner/internal/validate"
)

// completionWindow is the day window shown in habit stats.
const completionWindow = 30

// Habit command flags.
var (
	habitAddFlagFrequency string
	habitAddFlagDesc      string
	habitAddFlagColor     string
	habitDoneFlagDate     string
	habitListFlagAll      bool
)

// habitCmd represents the habit command.
var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"habits", "h"},
	Short:   "Track habits",
	Long: `Create habits and mark them done day by day.

'done' toggles the day's log: marking a completed day again clears it.

Examples:
  planner habit add 'morning run'
  planner habit add 'read' --frequency daily --desc '20 pages'
  planner habit done run
  planner habit done run --date yesterday
  planner habit list
  planner habit stats run
  planner habit rm run`,
	RunE: runHabitList,
}

var habitAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitAdd,
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits with streaks",
	RunE:    runHabitList,
}

var habitDoneCmd = &cobra.Command{
	Use:   "done NAME_OR_ID",
	Short: "Toggle a habit's log for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitDone,
}

var habitStatsCmd = &cobra.Command{
	Use:   "stats NAME_OR_ID",
	Short: "Show streak and completion stats for a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitStats,
}

var habitPauseCmd = &cobra.Command{
	Use:   "pause NAME_OR_ID",
	Short: "Toggle a habit between active and paused",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitPause,
}

var habitDeleteCmd = &cobra.Command{
	Use:     "rm NAME_OR_ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a habit and its history",
	Args:    cobra.ExactArgs(1),
	RunE:    runHabitDelete,
}

func init() {
	habitAddCmd.Flags().StringVar(&habitAddFlagFrequency, "frequency", "daily", "Frequency: daily, weekly, monthly")
	habitAddCmd.Flags().StringVar(&habitAddFlagDesc, "desc", "", "Description")
	habitAddCmd.Flags().StringVar(&habitAddFlagColor, "color", "", "Hex color, e.g. #10B981")

	habitDoneCmd.Flags().StringVarP(&habitDoneFlagDate, "date", "d", "today", "Day to toggle")

	habitListCmd.Flags().BoolVarP(&habitListFlagAll, "all", "a", false, "Include paused habits")

	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitDoneCmd)
	habitCmd.AddCommand(habitStatsCmd)
	habitCmd.AddCommand(habitPauseCmd)
	habitCmd.AddCommand(habitDeleteCmd)
	rootCmd.AddCommand(habitCmd)
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if err := validate.Title(name); err != nil {
		return err
	}
	if err := validate.HexColor(habitAddFlagColor); err != nil {
		return err
	}

	habit, err := ctx.Habits.Add(model.Habit{
		Name:        name,
		Description: habitAddFlagDesc,
		Frequency:   model.Frequency(habitAddFlagFrequency),
		Active:      true,
		Color:       habitAddFlagColor,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(habit)
	}
	ctx.CLIFormatter().Success("Added habit " + habit.Name)
	return nil
}

func runHabitList(cmd *cobra.Command, args []string) error {
	habits := ctx.Habits.ActiveHabits()
	if habitListFlagAll {
		habits = ctx.Habits.Habits()
	}

	today := time.Now()
	if ctx.IsJSON() {
		resp := output.HabitsResponse{Habits: []*output.HabitOutput{}}
		for _, h := range habits {
			resp.Habits = append(resp.Habits, &output.HabitOutput{
				Habit:          h,
				CompletedToday: ctx.Habits.CompletedOn(h.ID, today),
				Streak:         ctx.Habits.Streak(h.ID),
				CompletionRate: ctx.Habits.CompletionRate(h.ID, completionWindow),
			})
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Habits")
	if len(habits) == 0 {
		cli.Muted("  No habits yet. Use 'planner habit add <name>'.")
		return nil
	}
	for _, h := range habits {
		cli.PrintHabit(h,
			ctx.Habits.CompletedOn(h.ID, today),
			ctx.Habits.Streak(h.ID),
			ctx.Habits.CompletionRate(h.ID, completionWindow))
	}
	return nil
}

func runHabitDone(cmd *cobra.Command, args []string) error {
	id, err := resolveHabit(args[0])
	if err != nil {
		return err
	}

	day, err := parser.ParseDate(habitDoneFlagDate, ctx.Settings.WeekStart())
	if err != nil {
		return err
	}

	if err := ctx.Habits.ToggleLog(id, day); err != nil {
		return err
	}

	habit := ctx.Habits.Get(id)
	completed := ctx.Habits.CompletedOn(id, day)
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"habit":     habit,
			"date":      day.Format(model.LogDateFormat),
			"completed": completed,
		})
	}

	cli := ctx.CLIFormatter()
	if completed {
		cli.Success(habit.Name + " done, streak " + strconv.Itoa(ctx.Habits.Streak(id)))
	} else {
		cli.Success(habit.Name + " cleared for " + day.Format(model.LogDateFormat))
	}
	return nil
}

func runHabitStats(cmd *cobra.Command, args []string) error {
	id, err := resolveHabit(args[0])
	if err != nil {
		return err
	}
	habit := ctx.Habits.Get(id)

	today := time.Now()
	streak := ctx.Habits.Streak(id)
	rate := ctx.Habits.CompletionRate(id, completionWindow)

	// Last seven days, oldest first.
	history := make([]bool, 0, 7)
	for i := 6; i >= 0; i-- {
		history = append(history, ctx.Habits.CompletedOn(id, dateutil.AddDays(today, -i)))
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"habit":           habit,
			"streak":          streak,
			"completion_rate": rate,
			"window_days":     completionWindow,
			"last_week":       history,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(habit.Name)
	cli.Muted("  Streak:       " + strconv.Itoa(streak) + " days")
	cli.Muted("  Last " + strconv.Itoa(completionWindow) + " days: " +
		output.ProgressBar(rate, 20) + " " + strconv.Itoa(rate) + "%")
	week := "  Last week:    "
	for _, done := range history {
		if done {
			week += "■ "
		} else {
			week += "· "
		}
	}
	cli.Muted(week)
	return nil
}

func runHabitPause(cmd *cobra.Command, args []string) error {
	id, err := resolveHabit(args[0])
	if err != nil {
		return err
	}

	habit := ctx.Habits.Get(id)
	active := !habit.Active
	if err := ctx.Habits.Update(id, model.HabitPatch{Active: &active}); err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	if active {
		cli.Success("Resumed " + habit.Name)
	} else {
		cli.Success("Paused " + habit.Name)
	}
	return nil
}

func runHabitDelete(cmd *cobra.Command, args []string) error {
	id, err := resolveHabit(args[0])
	if err != nil {
		return err
	}
	habit := ctx.Habits.Get(id)
	if err := ctx.Habits.Delete(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": id})
	}
	ctx.CLIFormatter().Success("Deleted " + habit.Name + " and its history")
	return nil
}
