package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/output"
	"github.com/manav03panchal/planner/internal/parser"
	"github.com/manav03panchal/planner/internal/validate"
)

// Task command flags.
var (
	taskAddFlagDate     string
	taskAddFlagTime     string
	taskAddFlagPriority string
	taskAddFlagCategory string
	taskAddFlagTags     []string
	taskAddFlagDesc     string

	taskListFlagRange     string
	taskListFlagCategory  string
	taskListFlagImportant bool
)

// taskCmd represents the task command.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "t"},
	Short:   "Manage tasks",
	Long: `Create, list, complete and delete tasks.

Examples:
  planner task add 'buy groceries' --date tomorrow
  planner task add 'quarterly review' --date 'next monday' --priority high
  planner task list
  planner task list --range week
  planner task list --important
  planner task done a3f
  planner task rm a3f`,
	RunE: runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runTaskList,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskDeleteCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddFlagDate, "date", "d", "today", "Task date (natural language works)")
	taskAddCmd.Flags().StringVarP(&taskAddFlagTime, "time", "t", "", "Time of day, 24-hour HH:MM")
	taskAddCmd.Flags().StringVarP(&taskAddFlagPriority, "priority", "p", "medium", "Priority: low, medium, high")
	taskAddCmd.Flags().StringVarP(&taskAddFlagCategory, "category", "c", "day", "Category: day, week, month, year, important")
	taskAddCmd.Flags().StringSliceVar(&taskAddFlagTags, "tags", nil, "Comma-separated tags")
	taskAddCmd.Flags().StringVar(&taskAddFlagDesc, "desc", "", "Description")

	taskListCmd.Flags().StringVarP(&taskListFlagRange, "range", "r", "day", "Range: day, week, month, year, all")
	taskListCmd.Flags().StringVarP(&taskListFlagCategory, "category", "c", "", "Filter by category")
	taskListCmd.Flags().BoolVar(&taskListFlagImportant, "important", false, "Important tasks only")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(args[0])
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.TimeOfDay(taskAddFlagTime); err != nil {
		return err
	}
	if err := validate.Tags(taskAddFlagTags); err != nil {
		return err
	}

	date, err := parser.ParseDate(taskAddFlagDate, ctx.Settings.WeekStart())
	if err != nil {
		return err
	}

	task, err := ctx.Tasks.Add(model.Task{
		Title:       title,
		Description: taskAddFlagDesc,
		Date:        date,
		Time:        taskAddFlagTime,
		Priority:    model.Priority(taskAddFlagPriority),
		Category:    model.Category(taskAddFlagCategory),
		Tags:        taskAddFlagTags,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(task)
	}
	cli := ctx.CLIFormatter()
	cli.Success("Added task " + task.Title)
	cli.PrintTask(task)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	now := time.Now()
	weekStart := ctx.Settings.WeekStart()

	var tasks []*model.Task
	var heading string

	switch {
	case taskListFlagImportant:
		tasks = ctx.Tasks.ImportantTasks()
		heading = "Important"
	case taskListFlagCategory != "":
		tasks = ctx.Tasks.TasksByCategory(model.Category(taskListFlagCategory))
		heading = "Category: " + taskListFlagCategory
	default:
		switch taskListFlagRange {
		case "week":
			tasks = ctx.Tasks.WeekTasks(now, weekStart)
			heading = "This week"
		case "month":
			tasks = ctx.Tasks.MonthTasks(now)
			heading = "This month"
		case "year":
			tasks = ctx.Tasks.YearTasks(now)
			heading = "This year"
		case "all":
			tasks = ctx.Tasks.Tasks()
			heading = "All tasks"
		default:
			tasks = ctx.Tasks.TodayTasks()
			heading = "Today"
		}
	}

	if ctx.IsJSON() {
		if tasks == nil {
			tasks = []*model.Task{}
		}
		return ctx.Formatter.JSON(output.TasksResponse{Tasks: tasks, TotalCount: len(tasks)})
	}

	ctx.CLIFormatter().PrintTaskList(heading, tasks)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	id, err := resolveTask(args[0])
	if err != nil {
		return err
	}
	if err := ctx.Tasks.Toggle(id); err != nil {
		return err
	}

	task := ctx.Tasks.Get(id)
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(task)
	}
	cli := ctx.CLIFormatter()
	if task.Completed {
		cli.Success("Completed " + task.Title)
	} else {
		cli.Success("Reopened " + task.Title)
	}
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	id, err := resolveTask(args[0])
	if err != nil {
		return err
	}
	task := ctx.Tasks.Get(id)
	if err := ctx.Tasks.Delete(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": id})
	}
	ctx.CLIFormatter().Success("Deleted " + task.Title)
	return nil
}
