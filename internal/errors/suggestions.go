package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrInvalidTimex:     "Expressions look like '2017-09-27', 'XXXX-WXX-3', 'T19:30', 'P2D' or '(T14,T18,PT4H)'.",
	ErrInvalidReference: "Try '2017-09-26T15:30:00', '2017/09/26 3pm', 'next friday 9am' or 'now'.",
	ErrInvalidFormat:    "Use --format cli, json or plain.",
	ErrInvalidColorMode: "Use --color auto, always or never.",
	ErrMissingArgument:  "Use --help for usage information.",
	ErrHistoryDisabled:  "Unset TIMEX_HISTORY_DISABLED to record resolutions.",

	// System errors
	ErrDatabaseCorrupted: "Remove the history database (see TIMEX_DATABASE) and run the command again.",
	ErrLockHeld:          "Another timex process is using the history database. Try again when it exits.",
	ErrPermissionDenied:  "Check file permissions in your data directory (~/.local/share/timex/).",
	ErrDiskFull:          "Free up disk space and try again, or set TIMEX_HISTORY_DISABLED=1.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// A UserError carries the most specific suggestion.
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	switch Classify(err) {
	case CategoryUser:
		return "Check your input and try again. Use --help for usage information."
	case CategorySystem:
		return "This is a system error. Check system resources and try again."
	case CategoryRecoverable:
		return "This error may resolve itself. Try the command again."
	}
	return ""
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrInvalidTimex: {
		"timex parse 2017-09-27T19:30",
		"timex resolve XXXX-WXX-3 --ref 2017-09-26",
		"timex evaluate --candidate T16 --constraint '(T14,T18,PT4H)'",
	},
	ErrInvalidReference: {
		"timex resolve XXXX-WXX-3 --ref 2017-09-26T15:30:00",
		"timex say 2017-09-28 --ref 'next friday'",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
