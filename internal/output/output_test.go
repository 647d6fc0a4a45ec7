package output

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/timex/civil"
	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/timex"
)

func newTestCLI(format Format) (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf, Format: format, ColorMode: ColorNever}
	return NewCLIFormatter(f), &buf
}

func newTestJSON() (*JSONFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewJSONFormatter(&Formatter{Writer: &buf, Format: FormatJSON}), &buf
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
	assert.False(t, f.NoNewline)
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_is_never_colored", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways, Format: FormatPlain}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{Writer: &buf, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterWidth(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}
	assert.Equal(t, 80, f.Width())
}

func TestFormatterPrint(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("a")
	f.Println("b")
	f.Printf("%s-%d", "c", 1)
	assert.Equal(t, "ab\nc-1", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	require.NoError(t, f.JSON(map[string]string{"key": "value"}))
	assert.Contains(t, buf.String(), `"key": "value"`)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"cli", "json", "plain"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.True(t, stderrors.Is(err, errors.ErrInvalidFormat))
}

func TestParseColorMode(t *testing.T) {
	m, err := ParseColorMode("never")
	require.NoError(t, err)
	assert.Equal(t, ColorNever, m)

	_, err = ParseColorMode("sometimes")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidColorMode))
}

// =============================================================================
// View Model Tests
// =============================================================================

func TestNewParseOutput(t *testing.T) {
	t.Run("weekday", func(t *testing.T) {
		p := NewParseOutput("XXXX-WXX-3", timex.Parse("XXXX-WXX-3"))
		assert.True(t, p.Valid)
		assert.Equal(t, "XXXX-WXX-3", p.Canonical)
		assert.Equal(t, []string{"date"}, p.Types)
		assert.Equal(t, []Field{{"dayOfWeek", "3 (Wednesday)"}}, p.Fields)
	})

	t.Run("datetime", func(t *testing.T) {
		p := NewParseOutput("2017-09-27T19:30", timex.Parse("2017-09-27T19:30"))
		assert.Contains(t, p.Types, "definite")
		assert.Contains(t, p.Types, "datetime")
		assert.Contains(t, p.Fields, Field{"year", "2017"})
		assert.Contains(t, p.Fields, Field{"minute", "30"})
		assert.Contains(t, p.Fields, Field{"second", "0"})
	})

	t.Run("duration_amount", func(t *testing.T) {
		p := NewParseOutput("PT1.5H", timex.Parse("PT1.5H"))
		assert.Equal(t, []Field{{"hours", "1.5"}}, p.Fields)
	})

	t.Run("invalid", func(t *testing.T) {
		p := NewParseOutput("banana", timex.Parse("banana"))
		assert.False(t, p.Valid)
		assert.Empty(t, p.Canonical)
		assert.Equal(t, []string{}, p.Types)
	})
}

func TestNewFormatOutput(t *testing.T) {
	assert.Equal(t, FormatOutput{Input: "T17:00", Canonical: "T17", Changed: true}, NewFormatOutput("T17:00"))
	assert.Equal(t, FormatOutput{Input: "P2D", Canonical: "P2D"}, NewFormatOutput("P2D"))
}

func TestNewExpandOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ExpandOutput
	}{
		{"composite", "(2017-09-27,2017-09-29,P2D)", ExpandOutput{"(2017-09-27,2017-09-29,P2D)", "2017-09-27", "2017-09-29", "P2D"}},
		{"part_of_day", "TMO", ExpandOutput{"TMO", "T08", "T12", "PT4H"}},
		{"month", "2017-09", ExpandOutput{"2017-09", "2017-09-01", "2017-10-01", "P30D"}},
		{"point", "2017-09-27", ExpandOutput{"2017-09-27", "2017-09-27", "2017-09-27", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.want, NewExpandOutput(tt.input))
		})
	}
}

func TestNewEvaluateResponse(t *testing.T) {
	resp := NewEvaluateResponse([]string{"XXXX-WXX-3"}, nil, []timex.Timex{timex.Parse("2017-09-27")})
	assert.Equal(t, []string{}, resp.Constraints)
	assert.Equal(t, []string{"2017-09-27"}, resp.Results)
}

// =============================================================================
// CLIFormatter Tests
// =============================================================================

func TestCLIFormatterMessages(t *testing.T) {
	c, buf := newTestCLI(FormatCLI)

	c.Title("Title")
	c.Success("ok")
	c.Warning("careful")
	c.Error("bad")
	c.Muted("quiet")

	assert.Equal(t, "Title\n✓ ok\n⚠ careful\n✗ bad\nquiet\n", buf.String())
}

func TestCLIFormatterPrintParse(t *testing.T) {
	items := []*ParseOutput{
		NewParseOutput("T17:30", timex.Parse("T17:30")),
		NewParseOutput("nope", timex.Parse("nope")),
	}

	t.Run("cli", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		c.PrintParse(items)
		out := buf.String()
		assert.Contains(t, out, "Canonical: T17:30")
		assert.Contains(t, out, "Types:     time")
		assert.Contains(t, out, "hour:        17")
		assert.Contains(t, out, "✗ nope is not a TIMEX expression")
	})

	t.Run("plain", func(t *testing.T) {
		c, buf := newTestCLI(FormatPlain)
		c.PrintParse(items[:1])
		assert.Equal(t, "T17:30\ttime\n", buf.String())
	})
}

func TestCLIFormatterPrintResolution(t *testing.T) {
	res := timex.Resolve([]string{"XXXX-WXX-3"}, civil.NewDateTime(2017, 9, 26, 15, 30, 0))

	t.Run("table", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		c.PrintResolution("2017-09-26 15:30:00", res)
		out := buf.String()
		assert.Contains(t, out, "Resolved against 2017-09-26 15:30:00")
		assert.Contains(t, out, "TIMEX")
		assert.Contains(t, out, "2017-09-20")
		assert.Contains(t, out, "2017-09-27")
	})

	t.Run("plain", func(t *testing.T) {
		c, buf := newTestCLI(FormatPlain)
		c.PrintResolution("", res)
		assert.Equal(t, "2017-09-20\n2017-09-27\n", buf.String())
	})

	t.Run("empty", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		c.PrintResolution("now", timex.Resolution{})
		assert.Contains(t, buf.String(), "No resolutions.")
	})
}

func TestCLIFormatterPrintEvaluate(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		results := timex.Evaluate([]string{"XXXX-WXX-3"}, []string{"2017-W39"})
		c.PrintEvaluate(NewEvaluateResponse([]string{"XXXX-WXX-3"}, []string{"2017-W39"}, results))
		assert.Contains(t, buf.String(), "XXXX-WXX-3 within 2017-W39")
		assert.Contains(t, buf.String(), "2017-09-27")
	})

	t.Run("none", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		c.PrintEvaluate(NewEvaluateResponse([]string{"T17"}, []string{"TMO"}, nil))
		assert.Contains(t, buf.String(), "No value satisfies the constraints.")
	})
}

func TestCLIFormatterPrintSay(t *testing.T) {
	c, buf := newTestCLI(FormatCLI)
	c.PrintSay(SayResponse{Phrases: []SayOutput{{"T17", "5PM"}, {"P2D", "2 days"}}})
	assert.Equal(t, "T17  5PM\nP2D  2 days\n", buf.String())

	c, buf = newTestCLI(FormatCLI)
	c.PrintSay(SayResponse{Phrases: []SayOutput{{"P2D", "2 days"}}})
	assert.Equal(t, "2 days\n", buf.String())
}

func TestCLIFormatterPrintHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		c.PrintHistory(nil)
		assert.Contains(t, buf.String(), "No history yet.")
	})

	t.Run("entries", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		entry := model.NewHistoryEntry(model.CommandResolve, []string{"T17"}, nil, "2017-09-26 15:30:00", []string{"17:00:00"})
		c.PrintHistory([]*model.HistoryEntry{entry})
		out := buf.String()
		assert.Contains(t, out, "INVOCATION")
		assert.Contains(t, out, "resolve [T17] @ 2017-09-26 15:30:00")
		assert.Contains(t, out, "17:00:00")
	})
}

func TestPrintTable(t *testing.T) {
	t.Run("aligned", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		c.PrintTable([]string{"A", "BB"}, []TableRow{{Columns: []string{"xxx", "y"}}})
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "A    BB", lines[0])
		assert.Equal(t, "xxx  y", lines[2])
	})

	t.Run("truncates_last_column", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		long := strings.Repeat("z", 200)
		c.PrintTable([]string{"K", "V"}, []TableRow{{Columns: []string{"k", long}}})
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			assert.LessOrEqual(t, len([]rune(line)), 80)
		}
		assert.Contains(t, buf.String(), "…")
	})

	t.Run("no_rows", func(t *testing.T) {
		c, buf := newTestCLI(FormatCLI)
		c.PrintTable([]string{"A"}, nil)
		assert.Empty(t, buf.String())
	})
}

// =============================================================================
// JSONFormatter Tests
// =============================================================================

func TestJSONFormatterPrintResolution(t *testing.T) {
	j, buf := newTestJSON()
	res := timex.Resolve([]string{"P2D"}, civil.NewDateTime(2017, 9, 26, 15, 30, 0))
	require.NoError(t, j.PrintResolution("2017-09-26 15:30:00", res))

	var got ResolveResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2017-09-26 15:30:00", got.Reference)
	require.Len(t, got.Values, 1)
	assert.Equal(t, "172800", got.Values[0].Value)
}

func TestJSONFormatterPrintHistory(t *testing.T) {
	j, buf := newTestJSON()
	entry := &model.HistoryEntry{Key: "history:1", Command: "evaluate", CreatedAt: time.Date(2017, 9, 26, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, j.PrintHistory([]*model.HistoryEntry{entry}))

	var got HistoryResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "2017-09-26T00:00:00Z", got.Entries[0].CreatedAt)
	assert.Equal(t, []string{}, got.Entries[0].Inputs)
}

func TestJSONFormatterPrintError(t *testing.T) {
	j, buf := newTestJSON()
	require.NoError(t, j.PrintError("error", "invalid reference time", "could not parse", "Try 'now'."))
	assert.Contains(t, buf.String(), `"status": "error"`)
	assert.Contains(t, buf.String(), `"suggestion": "Try 'now'."`)
}

func TestJSONFormatterPrintCleared(t *testing.T) {
	j, buf := newTestJSON()
	require.NoError(t, j.PrintCleared(3))
	assert.Contains(t, buf.String(), `"removed": 3`)
}

func TestCLIFormatterPrintNext(t *testing.T) {
	n := &NextOutput{
		Input:     "XXXX-WXX-3",
		Every:     "every Wednesday",
		Cron:      "0 0 0 * * 3",
		Reference: "2017-09-26 15:30:00",
		Occurrences: []Occurrence{
			{At: "2017-09-27 00:00:00", Text: "tomorrow"},
			{At: "2017-10-04 00:00:00", Text: "next Wednesday"},
		},
	}

	c, buf := newTestCLI(FormatCLI)
	c.PrintNext(n)
	assert.Contains(t, buf.String(), "every Wednesday")
	assert.Contains(t, buf.String(), "cron 0 0 0 * * 3, after 2017-09-26 15:30:00")
	assert.Contains(t, buf.String(), "2017-10-04 00:00:00  next Wednesday")

	c, buf = newTestCLI(FormatPlain)
	c.PrintNext(n)
	assert.Equal(t, "2017-09-27 00:00:00\n2017-10-04 00:00:00\n", buf.String())
}
