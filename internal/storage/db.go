// Package storage provides the database layer for Planner.
package storage

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
)

const (
	// AppName is the application name used for data directories.
	AppName = "planner"

	// SchemaVersion is the current storage schema version. Adding a
	// collection or changing a key layout requires a new version and a
	// migration entry.
	SchemaVersion = 1
)

// migrations[i] migrates a database from schema version i+1 to i+2.
// Today no migration exists beyond version 1, so the list is empty.
var migrations []func(*DB) error

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path following XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database at the given path and migrates its
// schema forward if it was written by an older version.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options

	if opts.InMemory || opts.Path == "" {
		// In-memory mode for testing
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		if err := os.MkdirAll(opts.Path, 0755); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	bdb, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}

	db := &DB{db: bdb, path: opts.Path}
	if err := db.migrate(); err != nil {
		bdb.Close()
		return nil, err
	}

	return db, nil
}

// migrate brings the stored schema version up to SchemaVersion.
func (d *DB) migrate() error {
	stored, err := d.schemaVersion()
	if err != nil {
		return err
	}

	if stored > SchemaVersion {
		return apperrors.ErrSchemaTooNew
	}

	for v := stored; v < SchemaVersion; v++ {
		if v > 0 {
			if err := migrations[v-1](d); err != nil {
				return err
			}
		}
	}

	if stored != SchemaVersion {
		return d.SetBytes(model.KeySchema, []byte(strconv.Itoa(SchemaVersion)))
	}
	return nil
}

// schemaVersion reads the stored schema version. A fresh database
// reports zero.
func (d *DB) schemaVersion() (int, error) {
	raw, err := d.GetBytes(model.KeySchema)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.Atoi(string(raw))
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory path. Empty for in-memory mode.
func (d *DB) Path() string {
	return d.path
}

// Badger returns the underlying Badger database for advanced operations.
func (d *DB) Badger() *badger.DB {
	return d.db
}
