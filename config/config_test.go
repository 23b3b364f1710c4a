package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillsenselab/ytcaptions/logger"
)

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Extra         string `yaml:"extra" mapstructure:"extra"`
}

// mockFS is an in-memory FileSystem for loader tests.
type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(string) error    { return nil }

func TestLoad_FromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "name: ytcaptions\nenvironment: production\nextra: hello\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var cfg testConfig
	if err := Load("ytcaptions", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "ytcaptions" {
		t.Errorf("expected name 'ytcaptions', got %q", cfg.Name)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected environment 'production', got %q", cfg.Environment)
	}
	if cfg.Extra != "hello" {
		t.Errorf("expected extra 'hello', got %q", cfg.Extra)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("name: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("NAME", "from-env")

	var cfg testConfig
	if err := Load("ytcaptions", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("expected env to win, got %q", cfg.Name)
	}
}

func TestLoad_MissingFilesIsNotAnError(t *testing.T) {
	var cfg testConfig
	err := Load("no-such-service", &cfg, WithFileSystem(&mockFS{files: map[string]bool{}}))
	if err != nil {
		t.Fatalf("expected nil error for missing files, got %v", err)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"LOGGING_LEVEL", "logging.level"},
		{"NAME", "name"},
	}
	for _, tt := range tests {
		variants := envKeyVariants(tt.key)
		found := false
		for _, v := range variants {
			if v == tt.want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("envKeyVariants(%q) = %v, missing %q", tt.key, variants, tt.want)
		}
	}
}

func TestServiceConfig_ApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "ytcaptions"}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("expected default environment 'development', got %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("expected debug to default to true in development")
	}
	if cfg.Logging.ServiceName != "ytcaptions" {
		t.Errorf("expected service name to propagate to logging, got %q", cfg.Logging.ServiceName)
	}
}

func TestServiceConfig_Validate(t *testing.T) {
	cfg := ServiceConfig{Name: "ytcaptions", Environment: "production", Logging: logger.Config{Level: "info", Format: "json"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.Name = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing name")
	}

	cfg.Name = "ytcaptions"
	cfg.Environment = "qa"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid environment")
	}
	if !strings.Contains(err.Error(), "environment: must be one of") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
