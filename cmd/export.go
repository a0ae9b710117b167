package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/backup"
	"github.com/manav03panchal/planner/internal/errors"
)

// Export command flags.
var exportFlagOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export all data to a JSON file",
	Long: `Export every collection to a single JSON document.

Without arguments the file is written to the current directory as
planner-backup-YYYY-MM-DD.json. Pass '-' to write to stdout.

Examples:
  planner export
  planner export ~/backups/planner.json
  planner export - | gzip > planner.json.gz`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := exportFlagOutput
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = backup.FileName(time.Now())
	}

	if path == "-" {
		return backup.Export(ctx.DB, os.Stdout)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewSystemErrorWithOp("export", "failed to create output directory", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.NewSystemErrorWithOp("export", "failed to create output file", err)
	}
	defer f.Close()

	if err := backup.Export(ctx.DB, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.NewSystemErrorWithOp("export", "failed to write output file", err)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "exported", "file": path})
	}
	ctx.CLIFormatter().Success("Exported to " + path)
	return nil
}
