package runtime

import (
	stderrors "errors"
	"strings"

	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
)

// GetSuggestion returns the suggestion for err, falling back to the generic
// advice for its category.
func GetSuggestion(err error) string {
	if s := errors.GetSuggestion(err); s != "" {
		return s
	}
	return errors.GetCategorySuggestion(err)
}

// FormatError renders err for the terminal. Parse errors list valid
// expressions and example commands.
func FormatError(err error) string {
	var pe *parser.TimeParseError
	if !stderrors.As(err, &pe) {
		return errors.FormatByCategory(err)
	}
	msg := pe.FormatWithExamples()
	if cmds := errors.GetExamples(err); len(cmds) > 0 {
		msg = strings.TrimRight(msg, "\n") + "\n\nFor example:\n  " + strings.Join(cmds, "\n  ")
	}
	return msg
}

// ErrorStatus names the category of err for the JSON envelope.
func ErrorStatus(err error) string {
	var pe *parser.TimeParseError
	if stderrors.As(err, &pe) {
		return "user_error"
	}
	switch errors.Classify(err) {
	case errors.CategoryUser:
		return "user_error"
	case errors.CategorySystem:
		return "system_error"
	case errors.CategoryRecoverable:
		return "retry"
	}
	return "error"
}

// WrapStorageError turns a storage failure into a SystemError unless it is
// already categorised.
func WrapStorageError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Classify(err) != errors.CategoryUnknown {
		return err
	}
	return errors.NewSystemErrorWithOp(op, "history store failed", err)
}

// PrintError writes err in the active format.
func (c *Context) PrintError(err error) {
	if c.IsJSON() {
		msg := ""
		if ue, ok := errors.AsUserError(err); ok && ue.Value != "" {
			msg = ue.Value
		} else if se, ok := errors.AsSystemError(err); ok {
			msg = se.Op
		}
		_ = c.JSONFormatter().PrintError(ErrorStatus(err), err.Error(), msg, GetSuggestion(err))
		return
	}
	if c.Debug {
		c.Formatter.Print(errors.FormatDebugError(err))
		c.Debugf("root cause: %v", errors.RootCause(err))
	}
	c.CLIFormatter().Error(FormatError(err))
}

// PrintOK reports a successful plain operation in the active format.
func (c *Context) PrintOK(message string) error {
	if c.IsJSON() {
		return c.Formatter.JSON(map[string]string{"status": "ok", "message": message})
	}
	if c.Formatter.Format == output.FormatPlain {
		c.Formatter.Println(message)
		return nil
	}
	c.CLIFormatter().Success(message)
	return nil
}
