package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ADDR", "PORT", "UPLOADS_DIR", "PUBLIC_URL", "LOG_FILE", "NO_SEED"} {
		t.Setenv(key, "")
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("expected addr %s, got %s", DefaultAddr, cfg.Addr)
	}
	if cfg.UploadsDir != DefaultUploadsDir {
		t.Errorf("expected uploads dir %s, got %s", DefaultUploadsDir, cfg.UploadsDir)
	}
	if cfg.PublicURL != "" || cfg.LogPath != "" || cfg.NoSeed {
		t.Errorf("unexpected settings: %+v", cfg)
	}
}

func TestParseEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("UPLOADS_DIR", "/var/najdeno")
	t.Setenv("PUBLIC_URL", "https://board.example")
	t.Setenv("NO_SEED", "1")

	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("expected :9000, got %s", cfg.Addr)
	}
	if cfg.UploadsDir != "/var/najdeno" {
		t.Errorf("expected /var/najdeno, got %s", cfg.UploadsDir)
	}
	if cfg.PublicURL != "https://board.example" {
		t.Errorf("expected public url from env, got %s", cfg.PublicURL)
	}
	if !cfg.NoSeed {
		t.Error("expected NO_SEED=1 to disable seeding")
	}

	t.Setenv("ADDR", "127.0.0.1:4000")
	cfg, err = Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != "127.0.0.1:4000" {
		t.Errorf("ADDR should win over PORT, got %s", cfg.Addr)
	}
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("UPLOADS_DIR", "/var/najdeno")

	cfg, err := Parse([]string{"-a", ":8080", "-uploads", "photos", "-l", "board.log", "-no-seed"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("flag should override env: expected :8080, got %s", cfg.Addr)
	}
	if cfg.UploadsDir != "photos" {
		t.Errorf("expected photos, got %s", cfg.UploadsDir)
	}
	if cfg.LogPath != "board.log" {
		t.Errorf("expected board.log, got %s", cfg.LogPath)
	}
	if !cfg.NoSeed {
		t.Error("expected -no-seed to disable seeding")
	}
}

func TestParseErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Parse([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
	if _, err := Parse([]string{"extra"}, io.Discard); err == nil {
		t.Error("expected error for positional argument")
	}

	t.Setenv("PORT", "eighty")
	if _, err := Parse(nil, io.Discard); err == nil {
		t.Error("expected error for invalid PORT")
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPLOADS_DIR", "from-shell")
	os.Unsetenv("ADDR")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ADDR=:7070\nUPLOADS_DIR=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("ADDR") })

	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("expected addr from .env, got %s", cfg.Addr)
	}
	if cfg.UploadsDir != "from-shell" {
		t.Errorf("existing environment should win, got %s", cfg.UploadsDir)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
