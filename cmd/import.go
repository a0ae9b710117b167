package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/backup"
	"github.com/manav03panchal/planner/internal/errors"
)

// Import command flags.
var importFlagForce bool

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace all data from a JSON export",
	Long: `Replace every collection with the contents of a JSON export.

This wipes the current data first. The swap is atomic: if the file
cannot be read or parsed, nothing changes. Pass '-' to read from
stdin.

Examples:
  planner import planner-backup-2026-09-01.json
  cat backup.json | planner import - --force`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlagForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	r := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.NewUserErrorWithField("file", path,
				"Cannot open import file",
				"Check the path and try again")
		}
		defer f.Close()
		r = f
	}

	if !importFlagForce && path != "-" {
		ctx.CLIFormatter().Warning("This replaces ALL current data. Re-run with --force to proceed.")
		return nil
	}

	if err := backup.Import(ctx.DB, r); err != nil {
		return err
	}

	// Refresh the mirrors from the restored database.
	if err := ctx.Load(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "imported", "file": path})
	}
	ctx.CLIFormatter().Success("Imported from " + path)
	return nil
}
