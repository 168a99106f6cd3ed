package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

// clearEnv isolates a test from the caller's environment
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvConfigFile, EnvCatalogURL, EnvCacheDir, EnvListenAddr,
		EnvArtworkWorkers, EnvArtworkSize, EnvRefreshInterval, EnvHTTPTimeout,
	} {
		t.Setenv(k, "")
	}
}

func TestNewAppConfig_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := NewAppConfig(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetCatalogURL() != defaultCatalogURL {
		t.Errorf("catalog url: expected %s, got %s", defaultCatalogURL, cfg.GetCatalogURL())
	}
	if want := filepath.Join(home, ".cache/radiod"); cfg.GetCacheDir() != want {
		t.Errorf("cache dir: expected %s, got %s", want, cfg.GetCacheDir())
	}
	if cfg.GetArtworkWorkers() != defaultArtworkWorkers {
		t.Errorf("workers: expected %d, got %d", defaultArtworkWorkers, cfg.GetArtworkWorkers())
	}
	if cfg.GetArtworkSize() != 144 {
		t.Errorf("size: expected 144, got %d", cfg.GetArtworkSize())
	}
	if cfg.GetRefreshInterval() != 0 {
		t.Errorf("refresh should be disabled by default, got %s", cfg.GetRefreshInterval())
	}
	if cfg.GetHTTPTimeout() != defaultHTTPTimeout {
		t.Errorf("timeout: expected %s, got %s", defaultHTTPTimeout, cfg.GetHTTPTimeout())
	}
}

func TestNewAppConfig_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "radiod.yaml")
	content := `
catalog_url: https://example.com/json/radio.json
cache_dir: /var/cache/radiod
listen: ":9000"
artwork:
  workers: 2
  size: 96
refresh_interval: 15m
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvArtworkWorkers, "8")

	cfg, err := NewAppConfig(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetCatalogURL() != "https://example.com/json/radio.json" {
		t.Errorf("catalog url from file not applied: %s", cfg.GetCatalogURL())
	}
	if cfg.GetCacheDir() != "/var/cache/radiod" {
		t.Errorf("cache dir from file not applied: %s", cfg.GetCacheDir())
	}
	if cfg.GetListenAddr() != ":9000" {
		t.Errorf("listen from file not applied: %s", cfg.GetListenAddr())
	}
	if cfg.GetArtworkWorkers() != 8 {
		t.Errorf("env should override file workers, got %d", cfg.GetArtworkWorkers())
	}
	if cfg.GetArtworkSize() != 96 {
		t.Errorf("size from file not applied: %d", cfg.GetArtworkSize())
	}
	if cfg.GetRefreshInterval() != 15*time.Minute {
		t.Errorf("refresh from file not applied: %s", cfg.GetRefreshInterval())
	}
}

func TestNewAppConfig_Errors(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError string
	}{
		{
			name:          "Missing Config File",
			env:           map[string]string{EnvConfigFile: "/nonexistent/radiod.yaml"},
			expectedError: "read config",
		},
		{
			name:          "Unsupported Catalog Scheme",
			env:           map[string]string{EnvCatalogURL: "ftp://example.com/radio.json"},
			expectedError: "scheme must be http or https",
		},
		{
			name:          "Non-numeric Workers",
			env:           map[string]string{EnvArtworkWorkers: "many"},
			expectedError: "invalid RADIOD_ARTWORK_WORKERS",
		},
		{
			name:          "Zero Workers",
			env:           map[string]string{EnvArtworkWorkers: "0"},
			expectedError: "artwork workers must be positive",
		},
		{
			name:          "Bad Duration",
			env:           map[string]string{EnvRefreshInterval: "soon"},
			expectedError: "invalid RADIOD_REFRESH_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewAppConfig(zap.NewNop())
			if err == nil {
				t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
			}
			if !strings.Contains(err.Error(), tt.expectedError) {
				t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
			}
		})
	}
}
