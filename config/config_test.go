package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TENCENT_SECRET_ID", "")
	t.Setenv("TENCENT_SECRET_KEY", "")
	t.Setenv("TENCENT_REGION", "")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HasCredentials() {
		t.Error("expected no credentials")
	}
	if cfg.Credentials.Region != DefaultRegion {
		t.Errorf("expected region %q, got %q", DefaultRegion, cfg.Credentials.Region)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected endpoint %q, got %q", DefaultEndpoint, cfg.Endpoint)
	}
	if cfg.DetailPageSize != DefaultDetailPageSize {
		t.Errorf("expected page size %d, got %d", DefaultDetailPageSize, cfg.DetailPageSize)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("expected addr %q, got %q", DefaultAddr, cfg.Addr)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected shutdown timeout 30s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.DefaultLanguage != DefaultLanguage {
		t.Errorf("expected language %q, got %q", DefaultLanguage, cfg.DefaultLanguage)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TENCENT_SECRET_ID", " AKIDexample ")
	t.Setenv("TENCENT_SECRET_KEY", "secret")
	t.Setenv("TENCENT_REGION", "ap-shanghai")
	t.Setenv("FINANCE_DETAIL_PAGE_SIZE", "50")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.HasCredentials() {
		t.Fatal("expected credentials to be configured")
	}
	if cfg.Credentials.SecretID != "AKIDexample" {
		t.Errorf("expected trimmed secret id, got %q", cfg.Credentials.SecretID)
	}
	if cfg.Credentials.Region != "ap-shanghai" {
		t.Errorf("expected region ap-shanghai, got %q", cfg.Credentials.Region)
	}
	if cfg.DetailPageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.DetailPageSize)
	}
}

func TestLoadConfigFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finance.yaml")
	content := `
tencent:
  secret_id: file-id
  secret_key: file-key
  region: ap-beijing
server:
  addr: ":9090"
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("TENCENT_SECRET_ID", "")
	t.Setenv("TENCENT_SECRET_KEY", "")
	t.Setenv("TENCENT_REGION", "ap-chengdu")

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Credentials.SecretID != "file-id" || cfg.Credentials.SecretKey != "file-key" {
		t.Errorf("expected credentials from file, got %+v", cfg.Credentials)
	}
	if cfg.Credentials.Region != "ap-chengdu" {
		t.Errorf("expected env region to win, got %q", cfg.Credentials.Region)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("expected warn level, got %s", logger.GetLevel())
	}

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, `"message":"kept"`) {
		t.Errorf("expected JSON warn message, got %q", out)
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	logger := NewLogger(&Config{LogLevel: "loud"}, &bytes.Buffer{})
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info fallback, got %s", logger.GetLevel())
	}
}
