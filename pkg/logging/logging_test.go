package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/JaimeStill/discvault/pkg/logging"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Debug("hidden")
	logger.Info("album created", "id", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "album created" || entry["app"] != "discvault" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelDebug, Format: logging.FormatText}, &buf)

	logger.Debug("lookup", "barcode", "0724385941828")

	if !strings.Contains(buf.String(), "barcode=0724385941828") {
		t.Errorf("text output missing attribute: %q", buf.String())
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	if logging.Level("bogus").ToSlogLevel().String() != "INFO" {
		t.Error("unknown level should map to INFO")
	}
	if logging.LevelWarn.ToSlogLevel().String() != "WARN" {
		t.Error("warn should map to WARN")
	}
}
