package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"minigrep/internal/settings"

	"go.uber.org/zap/zapcore"
)

func TestProvideLoggerLocalLevel(t *testing.T) {
	cfg := settings.Default()
	cfg.LogLevel = "warn"
	l, err := ProvideLogger(cfg)
	if err != nil {
		t.Fatalf("ProvideLogger: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info must be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("error must be enabled at warn level")
	}
}

func TestProvideLoggerBadLevel(t *testing.T) {
	cfg := settings.Default()
	cfg.LogLevel = "loud"
	if _, err := ProvideLogger(cfg); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestProvideLoggerProdWritesJSON(t *testing.T) {
	cfg := settings.Default()
	cfg.Env = settings.EnvProd
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := ProvideLogger(cfg)
	if err != nil {
		t.Fatalf("ProvideLogger: %v", err)
	}
	l.Info("scan finished")
	_ = l.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := bytes.TrimSpace(data)
	var entry map[string]any
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if entry["msg"] != "scan finished" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
