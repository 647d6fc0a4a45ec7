package output

import (
	"strconv"
	"time"

	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/timex"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// Field is one populated component of a parsed expression.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ParseOutput describes one parsed expression.
type ParseOutput struct {
	Input     string   `json:"input"`
	Valid     bool     `json:"valid"`
	Canonical string   `json:"canonical,omitempty"`
	Types     []string `json:"types"`
	Fields    []Field  `json:"fields,omitempty"`
}

// NewParseOutput describes t, parsed from input.
func NewParseOutput(input string, t timex.Timex) *ParseOutput {
	out := &ParseOutput{Input: input, Types: t.Types().Names()}
	if out.Types == nil {
		out.Types = []string{}
	}
	if t.IsEmpty() {
		return out
	}
	out.Valid = true
	out.Canonical = t.String()
	out.Fields = fieldsOf(t)
	return out
}

func fieldsOf(t timex.Timex) []Field {
	var fields []Field
	addInt := func(name string, v int, ok bool) {
		if ok {
			fields = append(fields, Field{name, strconv.Itoa(v)})
		}
	}
	addFloat := func(name string, v float64, ok bool) {
		if ok {
			fields = append(fields, Field{name, strconv.FormatFloat(v, 'f', -1, 64)})
		}
	}

	if t.Now() {
		fields = append(fields, Field{"now", "true"})
	}
	v, ok := t.Year()
	addInt("year", v, ok)
	v, ok = t.Month()
	addInt("month", v, ok)
	v, ok = t.DayOfMonth()
	addInt("dayOfMonth", v, ok)
	if w, ok := t.DayOfWeek(); ok {
		fields = append(fields, Field{"dayOfWeek", strconv.Itoa(int(w)) + " (" + w.String() + ")"})
	}
	v, ok = t.WeekOfYear()
	addInt("weekOfYear", v, ok)
	v, ok = t.WeekOfMonth()
	addInt("weekOfMonth", v, ok)
	if s := t.Season(); s != "" {
		fields = append(fields, Field{"season", string(s)})
	}
	if t.Weekend() {
		fields = append(fields, Field{"weekend", "true"})
	}
	v, ok = t.Hour()
	addInt("hour", v, ok)
	v, ok = t.Minute()
	addInt("minute", v, ok)
	v, ok = t.Second()
	addInt("second", v, ok)
	if p := t.PartOfDay(); p != "" {
		fields = append(fields, Field{"partOfDay", string(p)})
	}

	f, ok := t.Years()
	addFloat("years", f, ok)
	f, ok = t.Months()
	addFloat("months", f, ok)
	f, ok = t.Weeks()
	addFloat("weeks", f, ok)
	f, ok = t.Days()
	addFloat("days", f, ok)
	f, ok = t.Hours()
	addFloat("hours", f, ok)
	f, ok = t.Minutes()
	addFloat("minutes", f, ok)
	f, ok = t.Seconds()
	addFloat("seconds", f, ok)
	return fields
}

// ParseResponse is the parse command output.
type ParseResponse struct {
	Expressions []*ParseOutput `json:"expressions"`
}

// FormatOutput pairs an input with its canonical form.
type FormatOutput struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Changed   bool   `json:"changed"`
}

// NewFormatOutput canonicalises input.
func NewFormatOutput(input string) FormatOutput {
	canonical := timex.Parse(input).String()
	return FormatOutput{Input: input, Canonical: canonical, Changed: canonical != input}
}

// ResolveResponse is the resolve command output.
type ResolveResponse struct {
	Reference string                  `json:"reference"`
	Values    []timex.ResolutionValue `json:"values"`
}

// EvaluateResponse is the evaluate command output.
type EvaluateResponse struct {
	Candidates  []string `json:"candidates"`
	Constraints []string `json:"constraints"`
	Results     []string `json:"results"`
}

// NewEvaluateResponse builds the response for results.
func NewEvaluateResponse(candidates, constraints []string, results []timex.Timex) *EvaluateResponse {
	return &EvaluateResponse{
		Candidates:  nonNil(candidates),
		Constraints: nonNil(constraints),
		Results:     Canonical(results),
	}
}

// ExpandOutput is the expand command output.
type ExpandOutput struct {
	Input    string `json:"input"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration,omitempty"`
}

// NewExpandOutput expands input as a time range when it is one and as a
// date-time range otherwise.
func NewExpandOutput(input string) *ExpandOutput {
	t := timex.Parse(input)
	var e timex.Expansion
	if t.Types().Has(timex.TimeRange) && !t.Types().Has(timex.DateTimeRange) {
		e = timex.ExpandTimeRange(t)
	} else {
		e = timex.ExpandDateTimeRange(t)
	}
	return &ExpandOutput{
		Input:    input,
		Start:    e.Start.String(),
		End:      e.End.String(),
		Duration: e.Duration.String(),
	}
}

// SayOutput is one rendered expression.
type SayOutput struct {
	Input string `json:"input"`
	Text  string `json:"text"`
}

// SayResponse is the say command output.
type SayResponse struct {
	Reference string      `json:"reference,omitempty"`
	Phrases   []SayOutput `json:"phrases"`
}

// Occurrence is one firing of a recurrence.
type Occurrence struct {
	At   string `json:"at"`
	Text string `json:"text"`
}

// NextOutput is the next command output.
type NextOutput struct {
	Input       string       `json:"input"`
	Every       string       `json:"every"`
	Cron        string       `json:"cron"`
	Reference   string       `json:"reference"`
	Occurrences []Occurrence `json:"occurrences"`
}

// HistoryOutput is one history entry.
type HistoryOutput struct {
	Key         string   `json:"key"`
	Command     string   `json:"command"`
	Inputs      []string `json:"inputs"`
	Constraints []string `json:"constraints,omitempty"`
	Reference   string   `json:"reference,omitempty"`
	Results     []string `json:"results"`
	CreatedAt   string   `json:"created_at"`
}

// NewHistoryOutput converts a stored entry.
func NewHistoryOutput(h *model.HistoryEntry) *HistoryOutput {
	return &HistoryOutput{
		Key:         h.Key,
		Command:     h.Command,
		Inputs:      nonNil(h.Inputs),
		Constraints: h.Constraints,
		Reference:   h.Reference,
		Results:     nonNil(h.Results),
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
	}
}

// HistoryResponse is the history command output.
type HistoryResponse struct {
	Entries []*HistoryOutput `json:"entries"`
	Count   int              `json:"count"`
}

// ClearResponse reports a history clear.
type ClearResponse struct {
	Status  string `json:"status"`
	Removed int    `json:"removed"`
}

// VersionResponse is the version command output.
type VersionResponse struct {
	Version string `json:"version"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Canonical returns the canonical strings of ts.
func Canonical(ts []timex.Timex) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// PrintParse writes parse results.
func (j *JSONFormatter) PrintParse(items []*ParseOutput) error {
	return j.JSON(ParseResponse{Expressions: items})
}

// PrintFormat writes canonical forms.
func (j *JSONFormatter) PrintFormat(items []FormatOutput) error {
	return j.JSON(struct {
		Expressions []FormatOutput `json:"expressions"`
	}{items})
}

// PrintResolution writes a batch resolution.
func (j *JSONFormatter) PrintResolution(ref string, res timex.Resolution) error {
	return j.JSON(ResolveResponse{Reference: ref, Values: res.Values})
}

// PrintEvaluate writes range resolver results.
func (j *JSONFormatter) PrintEvaluate(resp *EvaluateResponse) error {
	return j.JSON(resp)
}

// PrintExpansion writes an expansion.
func (j *JSONFormatter) PrintExpansion(e *ExpandOutput) error {
	return j.JSON(e)
}

// PrintSay writes rendered phrases.
func (j *JSONFormatter) PrintSay(resp SayResponse) error {
	return j.JSON(resp)
}

// PrintNext writes upcoming occurrences.
func (j *JSONFormatter) PrintNext(n *NextOutput) error {
	return j.JSON(n)
}

// PrintHistory writes history entries.
func (j *JSONFormatter) PrintHistory(entries []*model.HistoryEntry) error {
	out := make([]*HistoryOutput, len(entries))
	for i, e := range entries {
		out[i] = NewHistoryOutput(e)
	}
	return j.JSON(HistoryResponse{Entries: out, Count: len(out)})
}

// PrintCleared reports a history clear.
func (j *JSONFormatter) PrintCleared(removed int) error {
	return j.JSON(ClearResponse{Status: "cleared", Removed: removed})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      errMsg,
		Message:    message,
		Suggestion: suggestion,
	})
}
