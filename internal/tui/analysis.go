package tui

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/timex/civil"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/timex"
)

// Analysis is everything the explorer shows for one input.
type Analysis struct {
	Input      string
	Parsed     *output.ParseOutput
	Absolute   string
	Relative   string
	Resolution timex.Resolution
}

// Analyze parses input and resolves it against ref.
func Analyze(input string, ref civil.DateTime) Analysis {
	t := timex.Parse(input)
	a := Analysis{Input: input, Parsed: output.NewParseOutput(input, t)}
	if !a.Parsed.Valid {
		return a
	}
	a.Absolute = timex.Convert(t)
	a.Relative = timex.ConvertRelative(t, ref.Date)
	a.Resolution = timex.Resolve([]string{input}, ref)
	return a
}

// AnalysisComponent renders an Analysis in a box.
type AnalysisComponent struct {
	Analysis Analysis
	Width    int
	Relative bool
}

// View renders the component.
func (ac *AnalysisComponent) View() string {
	a := ac.Analysis
	width := ac.Width - 4
	if width < 20 {
		width = 20
	}

	if strings.TrimSpace(a.Input) == "" {
		return StyleResultBox.Width(width).Render(StyleSubtitle.Render("Type a TIMEX expression, e.g. XXXX-WXX-3 or (T14,T18,PT4H)"))
	}
	if !a.Parsed.Valid {
		return StyleInvalidBox.Width(width).Render(StyleError.Render(fmt.Sprintf("%q is not a TIMEX expression", a.Input)))
	}

	var sb strings.Builder
	row := func(label, value string) {
		sb.WriteString(StyleLabel.Render(label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	row("Canonical", StyleExpr.Render(a.Parsed.Canonical))
	row("Types", StyleType.Render(strings.Join(a.Parsed.Types, ", ")))
	if ac.Relative {
		row("Says", StylePhrase.Render(a.Relative))
	} else {
		row("Says", StylePhrase.Render(a.Absolute))
	}

	var fields []string
	for _, f := range a.Parsed.Fields {
		fields = append(fields, f.Name+"="+f.Value)
	}
	row("Fields", StyleSubtitle.Render(strings.Join(fields, " ")))

	sb.WriteString("\n")
	sb.WriteString(StyleLabel.Render("Resolves"))
	if len(a.Resolution.Values) == 0 {
		sb.WriteString(StyleSubtitle.Render("nothing"))
	}
	for i, v := range a.Resolution.Values {
		if i > 0 {
			sb.WriteString("\n" + StyleLabel.Render(""))
		}
		if v.Value != "" {
			sb.WriteString(fmt.Sprintf("%s  %s", v.Type, v.Value))
		} else {
			sb.WriteString(fmt.Sprintf("%s  %s → %s", v.Type, v.Start, v.End))
		}
	}

	return StyleResultBox.Width(width).Render(sb.String())
}
