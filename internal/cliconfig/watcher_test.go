package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestWatcher_ReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("default_fps = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, DefaultConfig(), map[string]bool{}, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("default_fps = 24\ndefault_type = \"bounce\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.DefaultFPS != 24 {
			t.Errorf("DefaultFPS = %v, want 24", cfg.DefaultFPS)
		}
		if cfg.DefaultType != "bounce" {
			t.Errorf("DefaultType = %v, want bounce", cfg.DefaultType)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcher_RejectsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("default_fps = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, DefaultConfig(), map[string]bool{}, func(cfg Config) {
		reloaded <- cfg
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	// Malformed TOML must not produce a callback.
	if err := os.WriteFile(path, []byte("port = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		t.Fatalf("unexpected reload delivered: %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}
