package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/genricoloni/radiod/internal/api"
	"github.com/genricoloni/radiod/internal/bus"
	"github.com/genricoloni/radiod/internal/config"
	"github.com/genricoloni/radiod/internal/source"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// TestAppGraphValidity fails when a constructor's dependency is not provided
func TestAppGraphValidity(t *testing.T) {
	if err := fx.ValidateApp(AppOptions); err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level string
		debug bool
	}{
		{"Production", "", false},
		{"Debug", "debug", true},
		{"Debug Upper Case", "DEBUG", true},
		{"Unknown Level Stays Production", "trace", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvLogLevel, tt.level)

			logger, err := newLogger()
			if err != nil {
				t.Fatalf("Failed to create logger: %v", err)
			}
			if got := logger.Core().Enabled(zap.DebugLevel); got != tt.debug {
				t.Errorf("debug enabled: expected %v, got %v", tt.debug, got)
			}
		})
	}
}

// TestEndToEndStartup runs the daemon against a local catalog with no
// session bus and reads the catalog state back through the HTTP API
func TestEndToEndStartup(t *testing.T) {
	catalogSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"radio":[{"id":"radio_01","title":"Night Drive","genre":"Synthwave","source":"https://stream.example.com/1.mp3"}]}`))
	}))
	defer catalogSrv.Close()

	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvCatalogURL, catalogSrv.URL+"/radio.json")
	t.Setenv(config.EnvCacheDir, t.TempDir())
	t.Setenv(config.EnvListenAddr, "127.0.0.1:0")

	var (
		src *source.JSONRadioSource
		srv *api.Server
	)
	app := fx.New(
		AppOptions,
		fx.NopLogger,
		fx.Decorate(func() bus.Dialer {
			return func() (bus.DBusClient, error) { return nil, errors.New("no session bus in tests") }
		}),
		fx.Populate(&src, &srv),
	)
	if err := app.Err(); err != nil {
		t.Fatalf("App failed to build: %v", err)
	}

	if err := app.Start(t.Context()); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			t.Errorf("App failed to stop: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	if ok, err := src.WhenReady(ctx); err != nil || !ok {
		t.Fatalf("catalog not loaded: %v, %v", ok, err)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/api/v1/status")
	if err != nil {
		t.Fatalf("status request: %v", err)
	}
	defer resp.Body.Close()

	var status struct {
		State    string `json:"state"`
		Stations int    `json:"stations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.State != "initialized" || status.Stations != 1 {
		t.Errorf("unexpected status %+v", status)
	}
}
