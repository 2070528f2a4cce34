// Package entity defines the contract scene entities must satisfy to be
// tracked by the action log, plus the snapshot semantics shared by the
// engine: deep copies with loud failure, by-value comparison.
package entity

import (
	"fmt"
	"reflect"

	"github.com/brunoga/deep"
)

// Identifiable is implemented by anything with a stable, unique identifier.
type Identifiable interface {
	// EntityID returns the entity's identifier. It must not change over
	// the entity's lifetime.
	EntityID() string
}

// Ptr constrains P to a pointer to T that can identify itself. Action
// records hold the live pointer for in-place write-back; snapshots are
// plain T values with no shared substructure.
type Ptr[T any] interface {
	*T
	Identifiable
}

// Snapshot returns an independent deep copy of src. Nested maps, slices,
// and pointers are copied recursively. Values that cannot be copied
// (channels, functions) yield an error rather than a silently shallow
// snapshot.
func Snapshot[T any](src T) (T, error) {
	snap, err := deep.Copy(src)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("snapshot entity: %w", err)
	}
	return snap, nil
}

// MustSnapshot is Snapshot for values already proven copyable, such as
// snapshots held by a record. It panics on failure.
func MustSnapshot[T any](src T) T {
	return deep.MustCopy(src)
}

// Equal reports whether two snapshots hold the same field values.
// Comparison is structural; two independently captured snapshots of the
// same state are Equal even though they share no memory.
func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
