package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kbukum/itkit/errors"
	"github.com/kbukum/itkit/logger"
)

type testLogging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type testMetrics struct {
	Enabled   bool   `mapstructure:"enabled"`
	MeterName string `mapstructure:"meter_name"`
}

type testSettings struct {
	Trace   bool        `mapstructure:"trace"`
	Logging testLogging `mapstructure:"logging"`
	Metrics testMetrics `mapstructure:"metrics"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigWithYAML(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "peekable.yml", `
trace: true
logging:
  level: debug
  format: json
metrics:
  enabled: true
  meter_name: itkit.test
`)

	var cfg testSettings
	if err := LoadConfig("peekable", &cfg, WithConfigFile(configPath), WithEnvPrefix("ITKIT_NONE")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.Trace {
		t.Error("expected trace=true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %q", cfg.Logging.Level)
	}
	if cfg.Metrics.MeterName != "itkit.test" {
		t.Errorf("expected meter name 'itkit.test', got %q", cfg.Metrics.MeterName)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "peekable.yml", `
logging:
  level: info
`)
	t.Setenv("ITKITTEST_LOGGING_LEVEL", "warn")
	t.Setenv("ITKITTEST_METRICS_METER_NAME", "from.env")
	t.Setenv("ITKITTEST_TRACE", "true")

	var cfg testSettings
	if err := LoadConfig("peekable", &cfg, WithConfigFile(configPath), WithEnvPrefix("itkittest")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env to override level, got %q", cfg.Logging.Level)
	}
	if cfg.Metrics.MeterName != "from.env" {
		t.Errorf("expected meter name from env, got %q", cfg.Metrics.MeterName)
	}
	if !cfg.Trace {
		t.Error("expected trace=true from env")
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "ITKITDOTENV_LOGGING_FORMAT=json\n")
	t.Cleanup(func() { os.Unsetenv("ITKITDOTENV_LOGGING_FORMAT") })

	var cfg testSettings
	err := LoadConfig("peekable", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefix("ITKITDOTENV"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format from .env, got %q", cfg.Logging.Format)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg testSettings
	err := LoadConfig("nonexistent", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvPrefix("ITKIT_NONE"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
	if cfg.Trace {
		t.Error("expected zero settings")
	}
}

func TestLoadConfigMalformedFileWarns(t *testing.T) {
	var buf bytes.Buffer
	logger.SetGlobalLogger(logger.NewWithWriter(&logger.Config{Level: "info", Format: "json"}, &buf, "config-test"))
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	configPath := writeFile(t, t.TempDir(), "broken.yml", "logging: [unclosed\n")
	var cfg testSettings
	if err := LoadConfig("broken", &cfg, WithConfigFile(configPath), WithEnvPrefix("ITKIT_NONE")); err != nil {
		t.Fatalf("a malformed file is skipped, got %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one warning line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" {
		t.Errorf("expected warn level, got %v", entry["level"])
	}
	if entry[logger.FieldFile] != configPath {
		t.Errorf("expected file %q, got %v", configPath, entry[logger.FieldFile])
	}
	if entry[logger.FieldOperation] != "load config file" {
		t.Errorf("expected operation field, got %v", entry[logger.FieldOperation])
	}
	if entry[logger.FieldError] == nil {
		t.Error("expected error field")
	}
}

func TestLoadConfigUnmarshalError(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "bad.yml", `
metrics: "not-a-map"
`)
	var cfg testSettings
	err := LoadConfig("bad", &cfg, WithConfigFile(configPath), WithEnvPrefix("ITKIT_NONE"))
	if err == nil {
		t.Fatal("expected unmarshal error")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/peekable.yml": true,
		"./.env":                true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("peekable", LoaderConfig{})
	if files.ConfigFile != "./config/peekable.yml" {
		t.Errorf("expected config file at ./config/peekable.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected env file at ./.env, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPathsWin(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{files: map[string]bool{"./peekable.yml": true}}}
	files := resolver.ResolveFiles("peekable", LoaderConfig{ConfigFile: "/etc/p.yml", EnvFile: "/etc/p.env"})
	if files.ConfigFile != "/etc/p.yml" || files.EnvFile != "/etc/p.env" {
		t.Errorf("expected explicit paths, got %+v", files)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("peekable_")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
	if lc.EnvPrefix != "PEEKABLE" {
		t.Errorf("expected normalized prefix PEEKABLE, got %q", lc.EnvPrefix)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("METRICS_METER_NAME")
	for _, want := range []string{"metrics_meter_name", "metrics.meter.name", "metrics.meter_name"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if single := generateEnvKeyVariants("TRACE"); len(single) != 1 || single[0] != "trace" {
		t.Errorf("expected [trace], got %v", single)
	}
}
