package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewWithDefaults(t *testing.T) {
	a, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer a.Shutdown()

	if a.Engine() == nil {
		t.Fatal("engine not constructed")
	}
	if a.Engine().MaxActions() != 200 {
		t.Errorf("MaxActions = %d, want default 200", a.Engine().MaxActions())
	}
}

func TestNewLoadsConfigAndScene(t *testing.T) {
	dir := t.TempDir()

	scenePath := filepath.Join(dir, "drawing.yaml")
	sceneDoc := "shapes:\n  - id: s1\n    kind: rect\n    x: 1\n    y: 2\n"
	if err := os.WriteFile(scenePath, []byte(sceneDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "easel.toml")
	cfgDoc := "[history]\nmax_actions = 42\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfgDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := New(Options{ConfigPath: cfgPath, ScenePath: scenePath})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer a.Shutdown()

	if a.Engine().MaxActions() != 42 {
		t.Errorf("MaxActions = %d, want 42", a.Engine().MaxActions())
	}
	if _, ok := a.Engine().Shape("s1"); !ok {
		t.Error("scene shape not loaded")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "easel.toml")
	if err := os.WriteFile(cfgPath, []byte("[history]\nmax_actions = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(Options{ConfigPath: cfgPath}); err == nil {
		t.Error("New() accepted max_actions = 0")
	}
}

func TestSaveScene(t *testing.T) {
	scenePath := filepath.Join(t.TempDir(), "drawing.yaml")

	a, err := New(Options{ScenePath: scenePath})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer a.Shutdown()

	if _, err := a.Engine().NewShape("rect"); err != nil {
		t.Fatalf("NewShape() error: %v", err)
	}
	if err := a.SaveScene(); err != nil {
		t.Fatalf("SaveScene() error: %v", err)
	}

	if _, err := os.Stat(scenePath); err != nil {
		t.Errorf("scene file not written: %v", err)
	}
}

func TestShutdownIdempotent(t *testing.T) {
	a, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	a.Shutdown()
	a.Shutdown()
}
