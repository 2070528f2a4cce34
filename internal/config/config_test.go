package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.History.MaxActions != 200 {
		t.Errorf("MaxActions = %d, want default 200", cfg.History.MaxActions)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[history]
max_actions = 50

[log]
level = "debug"

[editor]
autosave = true
scene = "drawing.yaml"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.History.MaxActions != 50 {
		t.Errorf("MaxActions = %d, want 50", cfg.History.MaxActions)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
	if !cfg.Editor.Autosave || cfg.Editor.ScenePath != "drawing.yaml" {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[editor]\nautosave = true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.History.MaxActions != 200 {
		t.Errorf("MaxActions = %d, want default 200", cfg.History.MaxActions)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want error
	}{
		{"zero max actions", "[history]\nmax_actions = 0\n", ErrMaxActions},
		{"negative max actions", "[history]\nmax_actions = -5\n", ErrMaxActions},
		{"bad log level", "[log]\nlevel = \"loud\"\n", ErrLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.toml)); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	if _, err := Load(writeConfig(t, "history = [unclosed")); err == nil {
		t.Error("Load() accepted malformed TOML")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "easel.toml")
	if err := os.WriteFile(path, []byte("[history]\nmax_actions = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[history]\nmax_actions = 77\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.History.MaxActions != 77 {
			t.Errorf("reloaded MaxActions = %d, want 77", cfg.History.MaxActions)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := writeConfig(t, "")
	w, err := NewWatcher(path, func(Config) {}, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "easel.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
