package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	sc := New()
	shapes := []*Shape{
		{ID: "r1", Kind: ShapeRect, X: 1, Y: 2, W: 10, H: 5, Fill: "blue"},
		{ID: "l1", Kind: ShapeLine, Points: []Point{{X: 0, Y: 0}, {X: 4, Y: 4}}},
		{ID: "t1", Kind: ShapeLabel, Label: "hello", Attrs: map[string]string{"size": "12"}},
	}
	for _, s := range shapes {
		if err := sc.Add(s); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "drawing.yaml")
	if err := sc.Save(path, "test drawing"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", loaded.Len())
	}

	r, ok := loaded.Get("r1")
	if !ok || r.Fill != "blue" || r.W != 10 {
		t.Errorf("r1 = %+v", r)
	}
	l, ok := loaded.Get("l1")
	if !ok || len(l.Points) != 2 || l.Points[1].X != 4 {
		t.Errorf("l1 = %+v", l)
	}
	tl, ok := loaded.Get("t1")
	if !ok || tl.Label != "hello" || tl.Attrs["size"] != "12" {
		t.Errorf("t1 = %+v", tl)
	}

	// Z-order survives the round trip.
	order := loaded.Shapes()
	if order[0].ID != "r1" || order[2].ID != "t1" {
		t.Errorf("z-order lost: %v", order)
	}
}

func TestLoadMissingFile(t *testing.T) {
	sc, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if sc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sc.Len())
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("shapes: [not a shape"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}

func TestLoadDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	doc := "shapes:\n  - id: s1\n    kind: rect\n  - id: s1\n    kind: rect\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted duplicate shape ids")
	}
}
