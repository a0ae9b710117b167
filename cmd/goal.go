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

// Goal command flags.
var (
	goalAddFlagCurrent  string
	goalAddFlagDeadline string
	goalAddFlagCategory string
	goalAddFlagColor    string
)

// goalCmd represents the goal command.
var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"goals", "g"},
	Short:   "Track savings goals",
	Long: `Set savings targets and record contributions toward them.

Funding never overshoots: contributions are clamped at the target.

Examples:
  planner goal add 'new laptop' 1800
  planner goal add 'vacation' 2500 --deadline 'next year' --category travel
  planner goal fund laptop 250
  planner goal list
  planner goal rm laptop`,
	RunE: runGoalList,
}

var goalAddCmd = &cobra.Command{
	Use:   "add TITLE TARGET",
	Short: "Add a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals with progress",
	RunE:    runGoalList,
}

var goalFundCmd = &cobra.Command{
	Use:   "fund TITLE_OR_ID AMOUNT",
	Short: "Add funds toward a goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalFund,
}

var goalDeleteCmd = &cobra.Command{
	Use:     "rm TITLE_OR_ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE:    runGoalDelete,
}

func init() {
	goalAddCmd.Flags().StringVar(&goalAddFlagCurrent, "current", "", "Amount already saved")
	goalAddCmd.Flags().StringVar(&goalAddFlagDeadline, "deadline", "", "Target date")
	goalAddCmd.Flags().StringVar(&goalAddFlagCategory, "category", "", "Category label")
	goalAddCmd.Flags().StringVar(&goalAddFlagColor, "color", "", "Hex color, e.g. #3B82F6")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalFundCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(args[0])
	if err := validate.Title(title); err != nil {
		return err
	}
	target, err := validate.Amount(args[1])
	if err != nil {
		return err
	}
	if err := validate.HexColor(goalAddFlagColor); err != nil {
		return err
	}

	var current float64
	if goalAddFlagCurrent != "" {
		current, err = validate.Amount(goalAddFlagCurrent)
		if err != nil {
			return err
		}
	}

	var deadline *time.Time
	if goalAddFlagDeadline != "" {
		day, err := parser.ParseDate(goalAddFlagDeadline, ctx.Settings.WeekStart())
		if err != nil {
			return err
		}
		deadline = &day
	}

	goal, err := ctx.Finance.Add(model.FinancialGoal{
		Title:         title,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Category:      goalAddFlagCategory,
		Color:         goalAddFlagColor,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(goal)
	}
	cli := ctx.CLIFormatter()
	cli.Success("Added goal " + goal.Title + " (" + output.FormatMoney(goal.TargetAmount) + ")")
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	goals := ctx.Finance.Goals()

	if ctx.IsJSON() {
		if goals == nil {
			goals = []*model.FinancialGoal{}
		}
		return ctx.Formatter.JSON(output.GoalsResponse{
			Goals:       goals,
			TotalSaved:  ctx.Finance.TotalSaved(),
			TotalTarget: ctx.Finance.TotalTarget(),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Savings goals")
	if len(goals) == 0 {
		cli.Muted("  No goals yet. Use 'planner goal add <title> <target>'.")
		return nil
	}
	for _, g := range goals {
		cli.PrintGoal(g)
	}
	cli.Muted("  Total " + output.FormatMoney(ctx.Finance.TotalSaved()) +
		" of " + output.FormatMoney(ctx.Finance.TotalTarget()))
	return nil
}

func runGoalFund(cmd *cobra.Command, args []string) error {
	id, err := resolveGoal(args[0])
	if err != nil {
		return err
	}
	amount, err := validate.Amount(args[1])
	if err != nil {
		return err
	}

	if err := ctx.Finance.AddFunds(id, amount); err != nil {
		return err
	}

	goal := ctx.Finance.Get(id)
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(goal)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Added " + output.FormatMoney(amount) + " to " + goal.Title)
	cli.PrintGoal(goal)
	return nil
}

func runGoalDelete(cmd *cobra.Command, args []string) error {
	id, err := resolveGoal(args[0])
	if err != nil {
		return err
	}
	goal := ctx.Finance.Get(id)
	if err := ctx.Finance.Delete(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": id})
	}
	ctx.CLIFormatter().Success("Deleted " + goal.Title)
	return nil
}
