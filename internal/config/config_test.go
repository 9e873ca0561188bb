package config

import (
	"context"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Port != "8980" {
		t.Errorf("Port = %q, want 8980", cfg.Port)
	}
	if cfg.StorageMode != "local" {
		t.Errorf("StorageMode = %q, want local", cfg.StorageMode)
	}
	if cfg.LocalExportsDir != "./exports" {
		t.Errorf("LocalExportsDir = %q, want ./exports", cfg.LocalExportsDir)
	}
	if cfg.EChartsScriptURL == "" {
		t.Error("EChartsScriptURL default missing")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_MODE", "gcs")
	t.Setenv("GCS_BUCKET", "my-exports")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.StorageMode != "gcs" || cfg.GCSBucket != "my-exports" {
		t.Errorf("storage = %q/%q, want gcs/my-exports", cfg.StorageMode, cfg.GCSBucket)
	}
}

func TestGetVersionFromEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "9.9.9")
	if got := GetVersion(); got != "9.9.9" {
		t.Errorf("GetVersion() = %q, want 9.9.9", got)
	}
}
