package config

import (
	"reflect"
	"testing"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if cfg.History.Limit != 50 {
		t.Errorf("expected History.Limit = 50, got %d", cfg.History.Limit)
	}
	if cfg.History.Disabled {
		t.Error("expected History.Disabled = false")
	}
	if cfg.Storage.InMemory || cfg.Storage.Path != "" {
		t.Errorf("expected default storage, got %+v", cfg.Storage)
	}
	if cfg.Reference.Default != "" {
		t.Errorf("expected empty Reference.Default, got %q", cfg.Reference.Default)
	}
	if !reflect.DeepEqual(cfg.Reference.Languages, []string{"en"}) {
		t.Errorf("expected Reference.Languages = [en], got %v", cfg.Reference.Languages)
	}
}

func TestGlobalConfigExists(t *testing.T) {
	if Global == nil {
		t.Fatal("Global config should not be nil")
	}
}

func TestConfigReset(t *testing.T) {
	original := *Global
	defer func() { *Global = original }()

	Global.History.Limit = 3
	Global.Reset()

	if Global.History.Limit != 50 {
		t.Errorf("expected History.Limit = 50 after reset, got %d", Global.History.Limit)
	}
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Run("memory_database", func(t *testing.T) {
		t.Setenv("TIMEX_DATABASE", ":memory:")
		cfg := DefaultRuntimeConfig()
		cfg.ReloadFromEnv()

		if !cfg.Storage.InMemory {
			t.Error("expected Storage.InMemory = true")
		}
	})

	t.Run("database_path", func(t *testing.T) {
		t.Setenv("TIMEX_DATABASE", "/tmp/timex-db")
		cfg := DefaultRuntimeConfig()
		cfg.ReloadFromEnv()

		if cfg.Storage.InMemory || cfg.Storage.Path != "/tmp/timex-db" {
			t.Errorf("unexpected storage config %+v", cfg.Storage)
		}
	})

	t.Run("history", func(t *testing.T) {
		t.Setenv("TIMEX_HISTORY_LIMIT", "10")
		t.Setenv("TIMEX_HISTORY_DISABLED", "true")
		cfg := DefaultRuntimeConfig()
		cfg.ReloadFromEnv()

		if cfg.History.Limit != 10 {
			t.Errorf("expected History.Limit = 10, got %d", cfg.History.Limit)
		}
		if !cfg.History.Disabled {
			t.Error("expected History.Disabled = true")
		}
	})

	t.Run("reference", func(t *testing.T) {
		t.Setenv("TIMEX_DEFAULT_REF", "2017-09-26T15:30:00")
		t.Setenv("TIMEX_LANGUAGES", "en, de,,fr")
		cfg := DefaultRuntimeConfig()
		cfg.ReloadFromEnv()

		if cfg.Reference.Default != "2017-09-26T15:30:00" {
			t.Errorf("unexpected Reference.Default %q", cfg.Reference.Default)
		}
		if !reflect.DeepEqual(cfg.Reference.Languages, []string{"en", "de", "fr"}) {
			t.Errorf("unexpected Reference.Languages %v", cfg.Reference.Languages)
		}
	})
}

func TestConfigInvalidEnvValues(t *testing.T) {
	t.Setenv("TIMEX_HISTORY_LIMIT", "-4")
	t.Setenv("TIMEX_HISTORY_DISABLED", "maybe")
	t.Setenv("TIMEX_LANGUAGES", " , ")
	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	if cfg.History.Limit != 50 {
		t.Errorf("invalid limit should keep default, got %d", cfg.History.Limit)
	}
	if cfg.History.Disabled {
		t.Error("invalid bool should keep default")
	}
	if !reflect.DeepEqual(cfg.Reference.Languages, []string{"en"}) {
		t.Errorf("blank list should keep default, got %v", cfg.Reference.Languages)
	}
}
