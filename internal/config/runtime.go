// Package config provides runtime configuration for the timex CLI.
package config

import (
	"os"
	"strconv"
	"strings"
)

// MemoryDatabase selects an in-memory store when used as TIMEX_DATABASE.
const MemoryDatabase = ":memory:"

// RuntimeConfig holds values the CLI reads at startup.
type RuntimeConfig struct {
	Storage   StorageConfig
	History   HistoryConfig
	Reference ReferenceConfig
}

// StorageConfig controls where history is persisted.
type StorageConfig struct {
	// Path overrides the XDG data directory. Empty means the default.
	Path string

	// InMemory keeps the database in memory for the life of the process.
	InMemory bool
}

// HistoryConfig controls the history of resolve and evaluate invocations.
type HistoryConfig struct {
	// Limit is the number of entries kept after each write.
	// Default: 50
	Limit int

	// Disabled turns off recording entirely.
	Disabled bool
}

// ReferenceConfig controls how --ref is interpreted.
type ReferenceConfig struct {
	// Default is used when --ref is empty. Empty means the current time.
	Default string

	// Languages are passed to the natural language date parser.
	// Default: [en]
	Languages []string
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		History: HistoryConfig{
			Limit: 50,
		},
		Reference: ReferenceConfig{
			Languages: []string{"en"},
		},
	}
}

// Global holds the process-wide configuration, seeded from the environment.
var Global = initGlobal()

func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("TIMEX_DATABASE"); v != "" {
		if v == MemoryDatabase {
			c.Storage.InMemory = true
			c.Storage.Path = ""
		} else {
			c.Storage.InMemory = false
			c.Storage.Path = v
		}
	}

	if v := os.Getenv("TIMEX_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.History.Limit = n
		}
	}
	if v := os.Getenv("TIMEX_HISTORY_DISABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History.Disabled = b
		}
	}

	if v := os.Getenv("TIMEX_DEFAULT_REF"); v != "" {
		c.Reference.Default = v
	}
	if v := os.Getenv("TIMEX_LANGUAGES"); v != "" {
		if langs := splitList(v); len(langs) > 0 {
			c.Reference.Languages = langs
		}
	}
}

// splitList splits a comma separated list, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ReloadFromEnv applies environment overrides on top of the current values.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset restores the defaults. Environment overrides are not reapplied.
func (c *RuntimeConfig) Reset() {
	*c = *DefaultRuntimeConfig()
}
