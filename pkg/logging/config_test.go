package logging_test

import (
	"testing"

	"github.com/JaimeStill/discvault/pkg/logging"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := &logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatText {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug || cfg.Format != logging.FormatJSON {
		t.Errorf("env overrides = %+v", cfg)
	}
}

func TestConfig_Invalid(t *testing.T) {
	tests := []logging.Config{
		{Level: "verbose"},
		{Format: "xml"},
	}

	for _, cfg := range tests {
		if err := cfg.Finalize(nil); err == nil {
			t.Errorf("Finalize(%+v) succeeded, want error", cfg)
		}
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	cfg.Merge(&logging.Config{Format: logging.FormatJSON})

	if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatJSON {
		t.Errorf("Merge() = %+v", cfg)
	}
}
