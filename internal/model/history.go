package model

import (
	"fmt"
	"time"
)

// Commands recorded in history.
const (
	CommandResolve  = "resolve"
	CommandEvaluate = "evaluate"
)

// HistoryEntry records one resolve or evaluate invocation and what it produced.
type HistoryEntry struct {
	Key         string    `json:"key"`
	Command     string    `json:"command"`
	Inputs      []string  `json:"inputs"`
	Constraints []string  `json:"constraints,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	Results     []string  `json:"results"`
	CreatedAt   time.Time `json:"created_at"`
}

// SetKey sets the database key for this entry.
func (h *HistoryEntry) SetKey(key string) {
	h.Key = key
}

// GetKey returns the database key for this entry.
func (h *HistoryEntry) GetKey() string {
	return h.Key
}

// Summary is a one-line description used in listings.
func (h *HistoryEntry) Summary() string {
	s := fmt.Sprintf("%s %v", h.Command, h.Inputs)
	if len(h.Constraints) > 0 {
		s += fmt.Sprintf(" within %v", h.Constraints)
	}
	if h.Reference != "" {
		s += " @ " + h.Reference
	}
	return s
}

// GenerateHistoryKey builds the key for an entry id, normally a UUIDv7.
func GenerateHistoryKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixHistory, id)
}

// NewHistoryEntry creates an entry stamped with the current time.
// Nil slices are replaced with empty ones so entries encode as [].
func NewHistoryEntry(command string, inputs, constraints []string, reference string, results []string) *HistoryEntry {
	if inputs == nil {
		inputs = []string{}
	}
	if results == nil {
		results = []string{}
	}
	return &HistoryEntry{
		Command:     command,
		Inputs:      inputs,
		Constraints: constraints,
		Reference:   reference,
		Results:     results,
		CreatedAt:   time.Now(),
	}
}
