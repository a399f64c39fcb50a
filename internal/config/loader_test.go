package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("Expected addr ':8080', got '%s'", cfg.HTTP.Addr)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected log level 'info', got '%s'", cfg.Log.Level)
	}
	if cfg.Save.Timeout != 10*time.Second {
		t.Errorf("Expected save timeout 10s, got %v", cfg.Save.Timeout)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
db:
  path: /tmp/boards.db
redis:
  url: redis://localhost:6379/0
  ttl: 90s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DB.Path != "/tmp/boards.db" {
		t.Errorf("unexpected db path %q", cfg.DB.Path)
	}
	if cfg.Redis.TTL != 90*time.Second {
		t.Errorf("unexpected redis ttl %v", cfg.Redis.TTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("unexpected log level %q", cfg.Log.Level)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("defaults should survive, got addr %q", cfg.HTTP.Addr)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TASKFLOW_HTTP_ADDR", ":9999")
	t.Setenv("TASKFLOW_AUTH_JWT_SECRET", "s3cret")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("explicit missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  addr: \":7000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HTTP.Addr != ":9999" {
		t.Errorf("env should win over file, got %q", cfg.HTTP.Addr)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("env should fill unset keys, got %q", cfg.Auth.JWTSecret)
	}
}

func TestWriteThenLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.User.ID = "ana"
	cfg.Redis.TTL = 2 * time.Minute
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.User.ID != "ana" || loaded.Redis.TTL != 2*time.Minute {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	logger, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if logger.GetLevel() != logrus.WarnLevel {
		t.Errorf("unexpected level %v", logger.GetLevel())
	}
	logger.WithField("board", "b1").Warn("hello")
	if !strings.Contains(buf.String(), `"board":"b1"`) {
		t.Errorf("expected json output, got %s", buf.String())
	}

	if _, err := NewLogger(LogConfig{Level: "loud"}, &buf); err == nil {
		t.Error("expected error for bad level")
	}
	if _, err := NewLogger(LogConfig{Level: "info", Format: "xml"}, &buf); err == nil {
		t.Error("expected error for bad format")
	}
}
