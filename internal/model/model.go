// Package model defines the records timex persists.
package model

// Model is implemented by every record stored in the database.
type Model interface {
	SetKey(key string)
	GetKey() string
}

// Key prefixes.
const (
	PrefixHistory = "history"
)
