// Package storage persists timex history in a Badger key-value store.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/logging"
)

// AppName names the data directory.
const AppName = "timex"

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory. Empty selects in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the database directory under the XDG data home.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database.
func Open(opts Options) (*DB, error) {
	bopts, path, err := badgerOptions(opts)
	if err != nil {
		return nil, err
	}

	db, err := badger.Open(bopts.WithLogger(badgerLogger{}))
	if err != nil {
		if strings.Contains(err.Error(), "directory lock") {
			err = fmt.Errorf("%w: %v", errors.ErrLockHeld, err)
		}
		return nil, errors.NewSystemErrorWithOp("open", "cannot open database at "+path, err)
	}
	return &DB{db: db, path: path}, nil
}

func badgerOptions(opts Options) (badger.Options, string, error) {
	if opts.InMemory || opts.Path == "" {
		return badger.DefaultOptions("").WithInMemory(true), "", nil
	}
	if err := os.MkdirAll(opts.Path, 0o755); err != nil {
		return badger.Options{}, "", errors.NewSystemErrorWithOp("open", "cannot create database directory", err)
	}
	return badger.DefaultOptions(opts.Path), opts.Path, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory, or "" when in memory.
func (d *DB) Path() string {
	return d.path
}

// Badger returns the underlying Badger database.
func (d *DB) Badger() *badger.DB {
	return d.db
}

// badgerLogger sends badger's messages to the timex logger. Badger is chatty
// at info level, so info becomes debug.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...any) {
	logging.Error(strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "badger")
}

func (badgerLogger) Warningf(format string, args ...any) {
	logging.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "badger")
}

func (badgerLogger) Infof(format string, args ...any) {
	logging.DebugLog(strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "badger")
}

func (badgerLogger) Debugf(format string, args ...any) {
	logging.DebugLog(strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "badger")
}
