package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("expected default addr %q, got %q", DefaultAddr, cfg.Server.Addr)
	}
	if cfg.Mongo.URI != DefaultMongoURI {
		t.Errorf("expected default uri %q, got %q", DefaultMongoURI, cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != DefaultDatabase {
		t.Errorf("expected default database %q, got %q", DefaultDatabase, cfg.Mongo.Database)
	}
	if cfg.Mode != "release" {
		t.Errorf("expected release mode, got %q", cfg.Mode)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, `
mode: dev
server:
  addr: ":9000"
mongo:
  uri: "mongodb://db:27017"
  database: "hrms_test"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != "dev" {
		t.Errorf("expected dev mode, got %q", cfg.Mode)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected addr :9000, got %q", cfg.Server.Addr)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" {
		t.Errorf("unexpected uri %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "hrms_test" {
		t.Errorf("unexpected database %q", cfg.Mongo.Database)
	}
}

func TestLoad_EnvOverridesURI(t *testing.T) {
	path := writeYAML(t, `
mongo:
  uri: "mongodb://from-file:27017"
`)
	t.Setenv(EnvMongoURL, "mongodb://from-env:27017")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.URI != "mongodb://from-env:27017" {
		t.Errorf("expected env override, got %q", cfg.Mongo.URI)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeYAML(t, "mode: [broken")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
