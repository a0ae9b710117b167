// Package backup implements the JSON export/import boundary: a single
// document carrying all six record collections, restored wholesale.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

// Version is the backup document format version.
const Version = "1.0"

// Document is the on-disk backup format.
type Document struct {
	Tasks          []*model.Task          `json:"tasks"`
	Habits         []*model.Habit         `json:"habits"`
	HabitLogs      []*model.HabitLog      `json:"habitLogs"`
	FinancialGoals []*model.FinancialGoal `json:"financialGoals"`
	Notes          []*model.Note          `json:"notes"`
	Meetings       []*model.Meeting       `json:"meetings"`
	ExportDate     time.Time              `json:"exportDate"`
	Version        string                 `json:"version"`
}

// FileName returns the conventional backup file name for a day.
func FileName(now time.Time) string {
	return fmt.Sprintf("planner-backup-%s.json", now.Format("2006-01-02"))
}

// Export writes all six collections as an indented JSON document.
func Export(db *storage.DB, w io.Writer) error {
	snapshot, err := db.TakeSnapshot()
	if err != nil {
		return apperrors.NewSystemErrorWithOp("export", "failed to read database", err)
	}

	doc := Document{
		Tasks:          snapshot.Tasks,
		Habits:         snapshot.Habits,
		HabitLogs:      snapshot.Logs,
		FinancialGoals: snapshot.Goals,
		Notes:          snapshot.Notes,
		Meetings:       snapshot.Meetings,
		ExportDate:     time.Now(),
		Version:        Version,
	}

	// Empty collections serialize as [] rather than null.
	if doc.Tasks == nil {
		doc.Tasks = []*model.Task{}
	}
	if doc.Habits == nil {
		doc.Habits = []*model.Habit{}
	}
	if doc.HabitLogs == nil {
		doc.HabitLogs = []*model.HabitLog{}
	}
	if doc.FinancialGoals == nil {
		doc.FinancialGoals = []*model.FinancialGoal{}
	}
	if doc.Notes == nil {
		doc.Notes = []*model.Note{}
	}
	if doc.Meetings == nil {
		doc.Meetings = []*model.Meeting{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Import parses a backup document and replaces all six collections in
// one transaction. Ids and field values survive a round trip intact.
func Import(db *storage.DB, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return apperrors.NewSystemErrorWithOp("import", "failed to read backup", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return apperrors.NewUserError("backup file is not valid JSON", "Check that the file is a planner backup")
	}
	if doc.Version == "" {
		return apperrors.NewUserError("backup file has no version field", "Check that the file is a planner backup")
	}

	return db.Restore(&storage.Snapshot{
		Tasks:    doc.Tasks,
		Habits:   doc.Habits,
		Logs:     doc.HabitLogs,
		Goals:    doc.FinancialGoals,
		Notes:    doc.Notes,
		Meetings: doc.Meetings,
	})
}
