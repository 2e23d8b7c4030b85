package config

import (
	"strings"
	"testing"
	"time"

	"github.com/Adda-Baaj/swapi-client/pkg/swapi"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != swapi.DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, swapi.DefaultBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.SinksFile != "" {
		t.Fatalf("expected sinks disabled by default, got %q", cfg.SinksFile)
	}
	if cfg.StorageType != "none" {
		t.Fatalf("StorageType = %q", cfg.StorageType)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SWAPI_BASE_URL", "http://localhost:8080/api/")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("SWAPI_BASE_URL", "swapi.info/api")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "swapi_base_url") {
		t.Fatalf("expected base url validation error, got %v", err)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
