package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/timex"
)

// Styles for CLI output.
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleExpr = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleType = lipgloss.NewStyle().
			Foreground(colorSecondary)

	stylePhrase = lipgloss.NewStyle().
			Italic(true)
)

// CLIFormatter provides human-readable output. With FormatPlain it writes
// bare values, one per line, and skips headings.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) plain() bool {
	return c.Format == FormatPlain
}

func (c *CLIFormatter) render(s lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return s.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Expr formats a TIMEX expression.
func (c *CLIFormatter) Expr(s string) string {
	return c.render(styleExpr, s)
}

// TypeList formats a list of type names.
func (c *CLIFormatter) TypeList(names []string) string {
	if len(names) == 0 {
		return c.render(styleMuted, "(none)")
	}
	return c.render(styleType, strings.Join(names, ", "))
}

// Phrase formats a natural-language rendering.
func (c *CLIFormatter) Phrase(s string) string {
	return c.render(stylePhrase, s)
}

// PrintParse prints each parsed expression with its fields.
func (c *CLIFormatter) PrintParse(items []*ParseOutput) {
	for i, p := range items {
		if c.plain() {
			c.Printf("%s\t%s\n", p.Canonical, strings.Join(p.Types, ","))
			continue
		}
		if i > 0 {
			c.Println()
		}
		if !p.Valid {
			c.Error(fmt.Sprintf("%s is not a TIMEX expression", p.Input))
			continue
		}
		c.Printf("%s\n", c.Expr(p.Input))
		c.Printf("  Canonical: %s\n", p.Canonical)
		c.Printf("  Types:     %s\n", c.TypeList(p.Types))
		for _, f := range p.Fields {
			c.Printf("  %-12s %s\n", f.Name+":", f.Value)
		}
	}
}

// PrintFormat prints canonical forms.
func (c *CLIFormatter) PrintFormat(items []FormatOutput) {
	for _, f := range items {
		switch {
		case c.plain():
			c.Println(f.Canonical)
		case f.Changed:
			c.Printf("%s → %s\n", f.Input, c.Expr(f.Canonical))
		default:
			c.Printf("%s\n", c.Expr(f.Canonical))
		}
	}
}

// PrintResolution prints resolved values as a table.
func (c *CLIFormatter) PrintResolution(ref string, res timex.Resolution) {
	if c.plain() {
		for _, v := range res.Values {
			if v.Value != "" {
				c.Println(v.Value)
			} else {
				c.Printf("%s\t%s\n", v.Start, v.End)
			}
		}
		return
	}

	c.Title("Resolved against " + ref)
	if len(res.Values) == 0 {
		c.Muted("No resolutions.")
		return
	}
	rows := make([]TableRow, len(res.Values))
	for i, v := range res.Values {
		rows[i] = TableRow{Columns: []string{v.Timex, v.Type, v.Value, v.Start, v.End}}
	}
	c.PrintTable([]string{"TIMEX", "TYPE", "VALUE", "START", "END"}, rows)
}

// PrintEvaluate prints values that satisfy the constraints.
func (c *CLIFormatter) PrintEvaluate(resp *EvaluateResponse) {
	if c.plain() {
		for _, r := range resp.Results {
			c.Println(r)
		}
		return
	}
	c.Title(fmt.Sprintf("%s within %s", strings.Join(resp.Candidates, ", "), strings.Join(resp.Constraints, ", ")))
	if len(resp.Results) == 0 {
		c.Warning("No value satisfies the constraints.")
		return
	}
	for _, r := range resp.Results {
		c.Printf("  %s  %s\n", c.Expr(r), c.Phrase(timex.Convert(timex.Parse(r))))
	}
}

// PrintExpansion prints the ends of a range.
func (c *CLIFormatter) PrintExpansion(e *ExpandOutput) {
	if c.plain() {
		c.Printf("%s\t%s\n", e.Start, e.End)
		return
	}
	c.Printf("%s\n", c.Expr(e.Input))
	c.Printf("  Start:    %s\n", e.Start)
	c.Printf("  End:      %s\n", e.End)
	if e.Duration != "" {
		c.Printf("  Duration: %s\n", e.Duration)
	}
}

// PrintSay prints natural-language renderings.
func (c *CLIFormatter) PrintSay(resp SayResponse) {
	for _, p := range resp.Phrases {
		if c.plain() || len(resp.Phrases) == 1 {
			c.Println(c.Phrase(p.Text))
			continue
		}
		c.Printf("%s  %s\n", c.Expr(p.Input), c.Phrase(p.Text))
	}
}

// PrintNext prints upcoming occurrences of a recurrence.
func (c *CLIFormatter) PrintNext(n *NextOutput) {
	if c.plain() {
		for _, o := range n.Occurrences {
			c.Println(o.At)
		}
		return
	}
	c.Title(n.Every)
	c.Muted(fmt.Sprintf("cron %s, after %s", n.Cron, n.Reference))
	for _, o := range n.Occurrences {
		c.Printf("  %s  %s\n", o.At, c.Phrase(o.Text))
	}
}

// PrintHistory prints stored invocations, newest first.
func (c *CLIFormatter) PrintHistory(entries []*model.HistoryEntry) {
	if len(entries) == 0 {
		if !c.plain() {
			c.Muted("No history yet.")
			c.Muted("Run 'timex resolve <expr>' to record one.")
		}
		return
	}
	rows := make([]TableRow, len(entries))
	for i, e := range entries {
		rows[i] = TableRow{Columns: []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Summary(),
			strings.Join(e.Results, " "),
		}}
	}
	if c.plain() {
		for _, r := range rows {
			c.Println(strings.Join(r.Columns, "\t"))
		}
		return
	}
	c.PrintTable([]string{"WHEN", "INVOCATION", "RESULTS"}, rows)
}

// TableRow is one row of PrintTable.
type TableRow struct {
	Columns []string
}

// PrintTable prints an aligned table. The last column is truncated to fit
// the terminal.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	last := len(widths) - 1
	used := 0
	for _, w := range widths[:last] {
		used += w + 2
	}
	if room := c.Width() - used; room >= len(headers[last]) && widths[last] > room {
		widths[last] = room
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], truncate(col, widths[i])))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}

func truncate(s string, width int) string {
	if len(s) <= width || width < 1 {
		return s
	}
	return s[:width-1] + "…"
}
