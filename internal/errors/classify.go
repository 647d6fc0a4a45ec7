package errors

import (
	"errors"
	"slices"
	"syscall"

	badger "github.com/dgraph-io/badger/v4"
)

// Category groups errors by who can act on them.
type Category int

const (
	CategoryUnknown     Category = iota
	CategoryUser                 // bad input, missing arguments
	CategorySystem               // disk full, corrupt database, permissions
	CategoryRecoverable          // lock held, transaction conflict; retry helps
)

var categoryNames = map[Category]string{
	CategoryUser:        "user",
	CategorySystem:      "system",
	CategoryRecoverable: "recoverable",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// rule assigns a category to errors it matches. Rules are tried in order.
type rule struct {
	category Category
	match    func(error) bool
}

var rules = []rule{
	// A held lock is reported through a SystemError but still goes away.
	{CategoryRecoverable, func(err error) bool {
		return errors.Is(err, ErrLockHeld) || errors.Is(err, badger.ErrConflict) ||
			hasErrno(err, syscall.EAGAIN, syscall.EINTR)
	}},
	{CategoryUser, IsUserError},
	{CategorySystem, func(err error) bool {
		return IsSystemError(err) ||
			errors.Is(err, ErrDiskFull) ||
			errors.Is(err, ErrDatabaseCorrupted) ||
			errors.Is(err, ErrPermissionDenied) ||
			hasErrno(err, syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EIO, syscall.EROFS)
	}},
}

func hasErrno(err error, want ...syscall.Errno) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && slices.Contains(want, errno)
}

// Classify determines the category of an error from its chain.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}
	for _, r := range rules {
		if r.match(err) {
			return r.category
		}
	}
	return CategoryUnknown
}

// FormatByCategory renders err for the terminal, followed by its
// suggestion when one is known.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}
	msg, suggestion := err.Error(), GetSuggestion(err)

	switch Classify(err) {
	case CategoryUser:
		if suggestion != "" {
			return msg + "\n\nTry: " + suggestion
		}
	case CategorySystem:
		msg = "System error: " + msg
		if suggestion != "" {
			return msg + "\n\n" + suggestion
		}
	case CategoryRecoverable:
		if suggestion == "" {
			return msg + " (try again)"
		}
		return msg + "\n\n" + suggestion
	}
	return msg
}
