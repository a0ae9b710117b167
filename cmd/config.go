package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/validate"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Show and change preferences",
	Long: `Show and change application preferences.

Examples:
  planner config
  planner config set theme dark
  planner config set week-start 0
  planner config set language ru
  planner config set notifications off`,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a preference",
	Long: `Set a preference. Keys:

  theme          light, dark, system
  week-start     0 (Sunday) or 1 (Monday)
  language       en, ru
  notifications  on or off`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Cycle the theme",
	RunE:  runConfigTheme,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configThemeCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings := ctx.Settings.Settings()
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Preferences")
	ctx.Formatter.Printf("  theme          %s\n", settings.Theme)
	ctx.Formatter.Printf("  week-start     %s\n", settings.WeekStartDay)
	ctx.Formatter.Printf("  language       %s\n", settings.Language)
	notifications := "off"
	if settings.NotificationsEnabled {
		notifications = "on"
	}
	ctx.Formatter.Printf("  notifications  %s\n", notifications)
	ctx.Formatter.Printf("  database       %s\n", ctx.DB.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	value := strings.ToLower(strings.TrimSpace(args[1]))

	var patch model.SettingsPatch
	switch key {
	case "theme":
		switch model.Theme(value) {
		case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
		default:
			return errors.NewUserErrorWithField("theme", value,
				"Unknown theme",
				"Use light, dark, or system")
		}
		theme := model.Theme(value)
		patch.Theme = &theme

	case "week-start":
		day, err := validate.WeekStart(value)
		if err != nil {
			return err
		}
		weekday := time.Weekday(day)
		patch.WeekStartDay = &weekday

	case "language":
		if value != "en" && value != "ru" {
			return errors.NewUserErrorWithField("language", value,
				"Unsupported language",
				"Use en or ru")
		}
		patch.Language = &value

	case "notifications":
		var enabled bool
		switch value {
		case "on", "true", "yes":
			enabled = true
		case "off", "false", "no":
			enabled = false
		default:
			return errors.NewUserErrorWithField("notifications", value,
				"Invalid value",
				"Use on or off")
		}
		patch.NotificationsEnabled = &enabled

	default:
		return errors.NewUserErrorWithField("key", key,
			"Unknown preference",
			"Keys: theme, week-start, language, notifications")
	}

	if err := ctx.Settings.Update(patch); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(ctx.Settings.Settings())
	}
	ctx.CLIFormatter().Success("Set " + key + " to " + value)
	return nil
}

func runConfigTheme(cmd *cobra.Command, args []string) error {
	if err := ctx.Settings.ToggleTheme(); err != nil {
		return err
	}

	settings := ctx.Settings.Settings()
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}
	ctx.CLIFormatter().Success("Theme is now " + string(settings.Theme))
	return nil
}
