// Package runtime provides application runtime context for Planner.
package runtime

import (
	"os"

	"github.com/manav03panchal/planner/internal/output"
	"github.com/manav03panchal/planner/internal/storage"
	"github.com/manav03panchal/planner/internal/store"
)

// Context holds the application runtime context: the database, the
// domain stores over it, and the output formatter.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Domain stores
	Tasks    *store.TaskStore
	Habits   *store.HabitStore
	Notes    *store.NoteStore
	Meetings *store.MeetingStore
	Finance  *store.FinanceStore
	Settings *store.SettingsStore

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context and loads every store.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("PLANNER_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	// Create stores over their repositories
	c := &Context{
		DB:       db,
		Tasks:    store.NewTaskStore(storage.NewTaskRepo(db)),
		Habits:   store.NewHabitStore(storage.NewHabitRepo(db)),
		Notes:    store.NewNoteStore(storage.NewNoteRepo(db)),
		Meetings: store.NewMeetingStore(storage.NewMeetingRepo(db)),
		Finance:  store.NewFinanceStore(storage.NewGoalRepo(db)),
		Settings: store.NewSettingsStore(storage.NewSettingsRepo(db)),
		Debug:    opts.Debug,
	}

	if err := c.Load(); err != nil {
		db.Close()
		return nil, err
	}

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	c.Formatter = formatter

	return c, nil
}

// Load fills every store mirror from the database.
func (c *Context) Load() error {
	if err := c.Settings.Load(); err != nil {
		return err
	}
	if err := c.Tasks.Load(); err != nil {
		return err
	}
	if err := c.Habits.Load(); err != nil {
		return err
	}
	if err := c.Notes.Load(); err != nil {
		return err
	}
	if err := c.Meetings.Load(); err != nil {
		return err
	}
	return c.Finance.Load()
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
