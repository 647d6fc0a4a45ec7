package runtime

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/timex/civil"
	"github.com/manav03panchal/timex/internal/config"
	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/logging"
	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
)

func memoryConfig() *config.RuntimeConfig {
	cfg := config.DefaultRuntimeConfig()
	cfg.Storage.InMemory = true
	return cfg
}

func newTestContext(t *testing.T, cfg *config.RuntimeConfig) (*Context, *bytes.Buffer) {
	t.Helper()
	ctx, err := New(Options{Config: cfg, Format: output.FormatCLI, ColorMode: output.ColorNever})
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	var buf bytes.Buffer
	ctx.Formatter.Writer = &buf
	ctx.Now = func() time.Time { return time.Date(2017, 9, 26, 15, 30, 0, 0, time.UTC) }
	return ctx, &buf
}

// =============================================================================
// Context Tests
// =============================================================================

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.NotEmpty(t, opts.DBPath)
	assert.False(t, opts.InMemory)
	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
	assert.False(t, opts.Debug)
}

func TestNew(t *testing.T) {
	ctx, err := New(Options{InMemory: true, Format: output.FormatJSON, Debug: true})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.Formatter)
	assert.Equal(t, output.FormatJSON, ctx.Formatter.Format)
	assert.Equal(t, output.ColorAuto, ctx.Formatter.ColorMode)
	assert.Same(t, config.Global, ctx.Config)
	assert.True(t, ctx.Debug)
	assert.NotEmpty(t, logging.RequestIDFromContext(ctx.Ctx))
	assert.Nil(t, ctx.DB, "database opens lazily")
}

func TestNewWithConfiguredPath(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	cfg.Storage.Path = t.TempDir() + "/timex-test.db"

	ctx, err := New(Options{Config: cfg})
	require.NoError(t, err)
	defer ctx.Close()

	_, err = ctx.OpenHistory()
	require.NoError(t, err)
	assert.Equal(t, cfg.Storage.Path, ctx.DB.Path())
}

func TestOpenHistory(t *testing.T) {
	ctx, _ := newTestContext(t, memoryConfig())

	repo, err := ctx.OpenHistory()
	require.NoError(t, err)
	again, err := ctx.OpenHistory()
	require.NoError(t, err)
	assert.Same(t, repo, again)

	require.NoError(t, ctx.Close())
	assert.Nil(t, ctx.DB)
	assert.NoError(t, (&Context{}).Close())
}

func TestContextFormatCheck(t *testing.T) {
	ctx, _ := newTestContext(t, memoryConfig())
	assert.True(t, ctx.IsCLI())
	assert.False(t, ctx.IsJSON())
	assert.NotNil(t, ctx.CLIFormatter())
	assert.NotNil(t, ctx.JSONFormatter())
}

func TestReference(t *testing.T) {
	t.Run("empty_is_now", func(t *testing.T) {
		ctx, _ := newTestContext(t, memoryConfig())
		ref, err := ctx.Reference("")
		require.NoError(t, err)
		assert.Equal(t, civil.NewDateTime(2017, 9, 26, 15, 30, 0), ref)
	})

	t.Run("configured_default", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Reference.Default = "2017-10-05T08:00:00"
		ctx, _ := newTestContext(t, cfg)

		ref, err := ctx.Reference("")
		require.NoError(t, err)
		assert.Equal(t, civil.NewDateTime(2017, 10, 5, 8, 0, 0), ref)

		ref, err = ctx.Reference("2017-01-01")
		require.NoError(t, err)
		assert.Equal(t, civil.NewDate(2017, 1, 1), ref.Date)
	})

	t.Run("invalid_is_user_error", func(t *testing.T) {
		ctx, _ := newTestContext(t, memoryConfig())
		_, err := ctx.Reference("the twelfth of never")
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
		assert.True(t, stderrors.Is(err, errors.ErrInvalidReference))
	})
}

func TestRecord(t *testing.T) {
	t.Run("stores_and_prunes", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.History.Limit = 2
		ctx, _ := newTestContext(t, cfg)

		for _, in := range []string{"T01", "T02", "T03"} {
			require.NoError(t, ctx.Record(model.NewHistoryEntry(model.CommandResolve, []string{in}, nil, "", nil)))
		}

		entries, err := ctx.HistoryRepo.List(0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, []string{"T03"}, entries[0].Inputs)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.History.Disabled = true
		ctx, _ := newTestContext(t, cfg)

		require.NoError(t, ctx.Record(model.NewHistoryEntry(model.CommandResolve, nil, nil, "", nil)))
		assert.Nil(t, ctx.DB)
	})
}

func TestDebugf(t *testing.T) {
	var logs bytes.Buffer
	logging.Init(logging.Config{Level: slog.LevelDebug, JSON: true, Output: &logs})
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	ctx, out := newTestContext(t, memoryConfig())
	ctx.Debugf("quiet %d", 1)
	assert.Empty(t, logs.String())

	ctx.Debug = true
	ctx.Debugf("loud %d", 2)
	assert.Contains(t, logs.String(), "loud 2")
	assert.Contains(t, logs.String(), logging.RequestIDFromContext(ctx.Ctx))
	assert.Empty(t, out.String())
}

// =============================================================================
// Error Tests
// =============================================================================

func TestFormatError(t *testing.T) {
	t.Run("parse_error_lists_examples", func(t *testing.T) {
		msg := FormatError(parser.NewReferenceError("someday"))
		assert.Contains(t, msg, "Valid examples:")
		assert.Contains(t, msg, "For example:\n  timex resolve XXXX-WXX-3 --ref")
	})

	t.Run("user_error", func(t *testing.T) {
		msg := FormatError(errors.NewUserError("bad flag", "use --help"))
		assert.Equal(t, "bad flag\n\nTry: use --help", msg)
	})

	t.Run("system_error", func(t *testing.T) {
		msg := FormatError(errors.NewSystemError("disk", errors.ErrDiskFull))
		assert.Contains(t, msg, "System error:")
	})
}

func TestGetSuggestion(t *testing.T) {
	assert.Equal(t, errors.Suggestions[errors.ErrLockHeld], GetSuggestion(errors.ErrLockHeld))
	assert.Contains(t, GetSuggestion(errors.NewSystemError("history store failed", stderrors.New("io"))), "system error")
	assert.Empty(t, GetSuggestion(stderrors.New("plain")))
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, "user_error", ErrorStatus(errors.NewUserError("x", "")))
	assert.Equal(t, "system_error", ErrorStatus(errors.NewSystemError("x", nil)))
	assert.Equal(t, "retry", ErrorStatus(errors.ErrLockHeld))
	assert.Equal(t, "error", ErrorStatus(stderrors.New("plain")))
	assert.Equal(t, "user_error", ErrorStatus(parser.NewExpressionError("garbage")))
}

func TestWrapStorageError(t *testing.T) {
	assert.NoError(t, WrapStorageError(nil, "op"))

	wrapped := WrapStorageError(stderrors.New("boom"), "write history")
	se, ok := errors.AsSystemError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "write history", se.Op)

	ue := errors.NewUserError("x", "")
	assert.Same(t, ue, WrapStorageError(ue, "op"))
}

func TestPrintError(t *testing.T) {
	t.Run("cli", func(t *testing.T) {
		ctx, out := newTestContext(t, memoryConfig())
		ctx.PrintError(errors.NewUserError("bad input", ""))
		assert.Equal(t, "✗ bad input\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		ctx, out := newTestContext(t, memoryConfig())
		ctx.Formatter.Format = output.FormatJSON
		ctx.PrintError(parser.NewExpressionError("banana").ToUserError())
		assert.Contains(t, out.String(), `"status": "user_error"`)
		assert.Contains(t, out.String(), `"message": "banana"`)
	})

	t.Run("json_system_error_names_op", func(t *testing.T) {
		ctx, out := newTestContext(t, memoryConfig())
		ctx.Formatter.Format = output.FormatJSON
		ctx.PrintError(WrapStorageError(stderrors.New("io"), "list history"))
		assert.Contains(t, out.String(), `"status": "system_error"`)
		assert.Contains(t, out.String(), `"message": "list history"`)
	})
}

func TestPrintOK(t *testing.T) {
	ctx, out := newTestContext(t, memoryConfig())
	require.NoError(t, ctx.PrintOK("done"))
	assert.Equal(t, "✓ done\n", out.String())

	out.Reset()
	ctx.Formatter.Format = output.FormatPlain
	require.NoError(t, ctx.PrintOK("done"))
	assert.Equal(t, "done\n", out.String())
}
