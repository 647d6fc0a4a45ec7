// Package runtime wires the pieces a timex command needs: configuration,
// output formatting, the history store and a request-scoped logger.
package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/manav03panchal/timex/civil"
	"github.com/manav03panchal/timex/internal/config"
	"github.com/manav03panchal/timex/internal/logging"
	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
	"github.com/manav03panchal/timex/internal/storage"
)

// Context holds the state shared by one command invocation.
type Context struct {
	Ctx       context.Context
	Config    *config.RuntimeConfig
	Formatter *output.Formatter

	// DB and HistoryRepo are nil until OpenHistory is called.
	DB          *storage.DB
	HistoryRepo *storage.HistoryRepo

	Debug bool

	// Now returns the current time; tests replace it.
	Now func() time.Time

	dbOpts storage.Options
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// Config defaults to config.Global.
	Config *config.RuntimeConfig
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a runtime context. The database is not opened here, so
// commands that never touch history never take the badger directory lock.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Global
	}

	dbOpts := storage.Options{Path: opts.DBPath, InMemory: opts.InMemory}
	if cfg.Storage.InMemory {
		dbOpts.InMemory = true
	} else if cfg.Storage.Path != "" {
		dbOpts.Path = cfg.Storage.Path
	}

	formatter := output.NewFormatter()
	if opts.Format != "" {
		formatter.Format = opts.Format
	}
	if opts.ColorMode != "" {
		formatter.ColorMode = opts.ColorMode
	}

	return &Context{
		Ctx:       logging.NewRequestContext(),
		Config:    cfg,
		Formatter: formatter,
		Debug:     opts.Debug,
		Now:       time.Now,
		dbOpts:    dbOpts,
	}, nil
}

// OpenHistory opens the database on first use and returns the history
// repository.
func (c *Context) OpenHistory() (*storage.HistoryRepo, error) {
	if c.HistoryRepo != nil {
		return c.HistoryRepo, nil
	}
	start := time.Now()
	db, err := storage.Open(c.dbOpts)
	if err != nil {
		return nil, err
	}
	logging.LogOperation(c.Ctx, "open_db", start, logging.KeyPath, db.Path())

	c.DB = db
	c.HistoryRepo = storage.NewHistoryRepo(db)
	return c.HistoryRepo, nil
}

// Close closes the database if it was opened.
func (c *Context) Close() error {
	if c.DB != nil {
		err := c.DB.Close()
		c.DB, c.HistoryRepo = nil, nil
		return err
	}
	return nil
}

// Reference parses a --ref value. Empty input falls back to the configured
// default and then to the current time.
func (c *Context) Reference(input string) (civil.DateTime, error) {
	if input == "" {
		input = c.Config.Reference.Default
	}
	ref, err := parser.ParseReference(input, c.Now(), c.Config.Reference.Languages)
	if err != nil {
		if pe, ok := err.(*parser.TimeParseError); ok {
			return civil.DateTime{}, pe.ToUserError()
		}
		return civil.DateTime{}, err
	}
	return ref, nil
}

// Record stores a history entry and prunes old ones. It is a no-op when
// history is disabled.
func (c *Context) Record(entry *model.HistoryEntry) error {
	if c.Config.History.Disabled {
		return nil
	}
	repo, err := c.OpenHistory()
	if err != nil {
		return err
	}
	if err := repo.Create(entry); err != nil {
		return WrapStorageError(err, "write history")
	}
	removed, err := repo.Prune(c.Config.History.Limit)
	if err != nil {
		return WrapStorageError(err, "prune history")
	}
	logging.FromContext(c.Ctx).Debug("recorded history", logging.KeyCount, removed)
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

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf logs a debug line tagged with the request id.
func (c *Context) Debugf(format string, args ...any) {
	if c.Debug {
		logging.FromContext(c.Ctx).Debug(fmt.Sprintf(format, args...))
	}
}
