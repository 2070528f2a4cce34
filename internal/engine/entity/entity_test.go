package entity

import "testing"

type widget struct {
	ID    string
	Tags  []string
	Attrs map[string]string
}

func (w *widget) EntityID() string { return w.ID }

func TestSnapshotIsDeep(t *testing.T) {
	w := widget{
		ID:    "w1",
		Tags:  []string{"a", "b"},
		Attrs: map[string]string{"fill": "red"},
	}

	snap, err := Snapshot(w)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	// Mutating the original must not leak into the snapshot.
	w.Tags[0] = "z"
	w.Attrs["fill"] = "blue"

	if snap.Tags[0] != "a" {
		t.Errorf("snapshot slice aliased: got %q", snap.Tags[0])
	}
	if snap.Attrs["fill"] != "red" {
		t.Errorf("snapshot map aliased: got %q", snap.Attrs["fill"])
	}
}

func TestSnapshotUncopyable(t *testing.T) {
	type bad struct {
		C chan int
	}
	if _, err := Snapshot(bad{C: make(chan int)}); err == nil {
		t.Error("expected error snapshotting a channel field")
	}
}

func TestEqualIsStructural(t *testing.T) {
	a := widget{ID: "w1", Tags: []string{"a"}, Attrs: map[string]string{"k": "v"}}

	snapA, err := Snapshot(a)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	snapB, err := Snapshot(a)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	// Independently captured copies share no memory but must compare equal.
	if !Equal(snapA, snapB) {
		t.Error("independent snapshots of the same state should be Equal")
	}

	snapB.Tags[0] = "b"
	if Equal(snapA, snapB) {
		t.Error("snapshots with different field values should not be Equal")
	}
}

func TestMustSnapshot(t *testing.T) {
	w := widget{ID: "w1", Attrs: map[string]string{"k": "v"}}
	snap := MustSnapshot(w)
	w.Attrs["k"] = "changed"
	if snap.Attrs["k"] != "v" {
		t.Errorf("MustSnapshot aliased: got %q", snap.Attrs["k"])
	}
}
