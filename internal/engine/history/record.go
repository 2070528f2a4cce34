package history

import (
	"time"

	"github.com/easelhq/easel/internal/engine/entity"
)

// Kind classifies the tracked modification.
type Kind int

const (
	// KindUpdate tracks an in-place field edit.
	KindUpdate Kind = iota
	// KindCreate tracks the insertion of a new entity.
	KindCreate
	// KindDelete tracks the removal of an entity.
	KindDelete
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUpdate:
		return "update"
	case KindCreate:
		return "create"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a record.
type Status int

const (
	// StatusPending means the record has captured only the prior state.
	StatusPending Status = iota
	// StatusApplied means the modification is in effect.
	StatusApplied
	// StatusReverted means the modification has been undone.
	StatusReverted
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApplied:
		return "applied"
	case StatusReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// Record tracks one entity's state transition. It holds the live entity
// pointer for in-place write-back, and two independent deep snapshots of
// the entity's fields: prior (before the modification) and later (after).
//
// For KindCreate the prior snapshot is empty (the entity did not exist
// before the action); for KindDelete the later snapshot is empty.
type Record[T any, P entity.Ptr[T]] struct {
	target P
	id     string
	prior  T
	later  T
	kind   Kind
	status Status
	stamp  time.Time
}

// NewRecord starts tracking a modification of target. The entity's current
// fields are deep-snapshotted as the prior state, except for KindCreate,
// where no prior state exists.
func NewRecord[T any, P entity.Ptr[T]](target P, kind Kind) (*Record[T, P], error) {
	r := &Record[T, P]{
		target: target,
		id:     target.EntityID(),
		kind:   kind,
		status: StatusPending,
		stamp:  time.Now(),
	}
	if kind != KindCreate {
		prior, err := entity.Snapshot(*target)
		if err != nil {
			return nil, err
		}
		r.prior = prior
	}
	return r, nil
}

// Capture deep-snapshots the entity's current fields as the later state and
// marks the record applied. It reports whether the later snapshot differs
// from the prior one by value; false means the tracked edit was a no-op and
// the record is not worth keeping.
//
// For KindDelete the later snapshot stays empty: the entity ceases to exist
// after the action.
func (r *Record[T, P]) Capture() (bool, error) {
	if r.kind != KindDelete {
		later, err := entity.Snapshot(*r.target)
		if err != nil {
			return false, err
		}
		r.later = later
	}
	r.status = StatusApplied
	return !entity.Equal(r.prior, r.later), nil
}

// Undo writes the prior snapshot's fields back onto the live entity, then
// exchanges the two snapshots so the next Redo swaps the other way, and
// marks the record reverted.
func (r *Record[T, P]) Undo() error {
	return r.swap(StatusReverted)
}

// Redo performs the same state swap as Undo and marks the record applied.
func (r *Record[T, P]) Redo() error {
	return r.swap(StatusApplied)
}

// swap is the shared undo/redo step. The write-back is a full field
// replacement from a fresh copy: handing the stored snapshot itself to the
// live entity would alias log-owned state, and later edits would corrupt
// the timeline silently.
//
// Create/delete records skip the write-back. Physical existence is the
// host's job; the snapshots are still exchanged so the state-bearing
// snapshot is always prior.
func (r *Record[T, P]) swap(to Status) error {
	if r.kind == KindUpdate {
		snap, err := entity.Snapshot(r.prior)
		if err != nil {
			return err
		}
		*r.target = snap
	}
	r.prior, r.later = r.later, r.prior
	r.status = to
	return nil
}

// ID returns the tracked entity's identifier, captured at construction.
func (r *Record[T, P]) ID() string { return r.id }

// Kind returns the operation kind.
func (r *Record[T, P]) Kind() Kind { return r.kind }

// Status returns the record's lifecycle status.
func (r *Record[T, P]) Status() Status { return r.status }

// Time returns when tracking began.
func (r *Record[T, P]) Time() time.Time { return r.stamp }

// Prior returns a copy of the prior snapshot.
func (r *Record[T, P]) Prior() T { return entity.MustSnapshot(r.prior) }

// Later returns a copy of the later snapshot.
func (r *Record[T, P]) Later() T { return entity.MustSnapshot(r.later) }
