package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open a live terminal dashboard with today's tasks, habit
streaks, upcoming meetings, and savings goals. Press q to quit.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{
		Tasks:    ctx.Tasks,
		Habits:   ctx.Habits,
		Meetings: ctx.Meetings,
		Finance:  ctx.Finance,
	})
}
