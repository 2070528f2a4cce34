package history

import (
	"sync"
	"time"

	"github.com/easelhq/easel/internal/engine/entity"
)

// Host is the capability the log needs from the owning drawing to undo a
// creation or redo a deletion: physically adding an entity back from a
// snapshot, and physically removing one by id. Both are invoked
// synchronously within UndoLast/RedoLast and must not call back into the
// same log.
type Host[T any] interface {
	// RestoreEntity makes the entity exist again in the host's
	// collection, keyed by the id embedded in the snapshot.
	RestoreEntity(snapshot T)

	// RemoveEntity removes the entity with the given id from the host's
	// collection.
	RemoveEntity(id string)
}

// Log is the history manager: a bounded, chronologically ordered timeline
// of committed records plus a staging area for in-flight edits.
//
// Absent entities and ids are no-ops throughout: Commit skips entities with
// no staged record, UndoLast/RedoLast report false when nothing matches.
// Errors are reserved for misconfiguration and snapshot failure.
type Log[T any, P entity.Ptr[T]] struct {
	mu sync.Mutex

	committed *ring[*Record[T, P]]
	staging   map[string]*Record[T, P]

	maxActions int
	host       Host[T]
}

// NewLog creates a history manager bounded to maxActions committed records.
// The host may be nil, in which case undo/redo of create/delete records
// still flip status but nothing is physically added or removed.
func NewLog[T any, P entity.Ptr[T]](maxActions int, host Host[T]) (*Log[T, P], error) {
	if maxActions < 1 {
		return nil, ErrMaxActions
	}
	return &Log[T, P]{
		committed:  newRing[*Record[T, P]](maxActions),
		staging:    make(map[string]*Record[T, P]),
		maxActions: maxActions,
		host:       host,
	}, nil
}

// Begin starts tracking a modification of each entity.
//
// Update records wait in staging for a later Commit. Create and delete are
// atomic single-step operations with no mid-edit phase, so their records
// are captured and committed immediately.
func (l *Log[T, P]) Begin(kind Kind, entities ...P) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range entities {
		rec, err := NewRecord(e, kind)
		if err != nil {
			return err
		}
		if kind == KindUpdate {
			l.staging[rec.ID()] = rec
			continue
		}
		if _, err := rec.Capture(); err != nil {
			return err
		}
		l.committed.push(rec)
	}
	return nil
}

// Commit finalizes the staged records for the given entities, capturing
// their later state. Records whose entities did not actually change are
// discarded; no-op edits never enter the timeline. Staging is cleared
// unconditionally afterward, including records for entities not passed in.
func (l *Log[T, P]) Commit(entities ...P) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer l.clearStagingLocked()

	for _, e := range entities {
		rec, ok := l.staging[e.EntityID()]
		if !ok {
			continue
		}
		changed, err := rec.Capture()
		if err != nil {
			return err
		}
		if changed {
			l.committed.push(rec)
		}
	}
	return nil
}

// Abort discards all staged records without capturing or mutating any
// entity. Used when an in-progress edit is cancelled.
func (l *Log[T, P]) Abort() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearStagingLocked()
}

// Reset wipes both staging and the committed timeline.
func (l *Log[T, P]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearStagingLocked()
	l.committed.clear()
}

func (l *Log[T, P]) clearStagingLocked() {
	clear(l.staging)
}

// UndoLast reverts the chronologically last applied record, restricted to
// the given entity ids when any are supplied. It reports whether a record
// was reverted.
//
// Undoing a creation asks the host to remove the entity; undoing a
// deletion asks the host to re-insert it from the stored snapshot.
func (l *Log[T, P]) UndoLast(ids ...string) (bool, error) {
	l.mu.Lock()
	filter := idSet(ids)
	var rec *Record[T, P]
	for i := l.committed.len() - 1; i >= 0; i-- {
		c := l.committed.at(i)
		if c.Status() == StatusApplied && (filter == nil || filter[c.ID()]) {
			rec = c
			break
		}
	}
	l.mu.Unlock()
	if rec == nil {
		return false, nil
	}

	// The callback and write-back run outside the lock, mirroring the
	// bookkeeping/execution split: selection is log state, the swap is
	// entity state serialized by the host.
	switch rec.Kind() {
	case KindCreate:
		if l.host != nil {
			l.host.RemoveEntity(rec.ID())
		}
	case KindDelete:
		if l.host != nil {
			l.host.RestoreEntity(rec.Prior())
		}
	}
	if err := rec.Undo(); err != nil {
		return false, err
	}
	return true, nil
}

// RedoLast re-applies the chronologically first reverted record, restricted
// to the given entity ids when any are supplied. It reports whether a
// record was re-applied.
//
// Callback polarity is swapped relative to UndoLast: redoing a creation
// re-inserts the entity, redoing a deletion removes it again.
func (l *Log[T, P]) RedoLast(ids ...string) (bool, error) {
	l.mu.Lock()
	filter := idSet(ids)
	var rec *Record[T, P]
	for i := 0; i < l.committed.len(); i++ {
		c := l.committed.at(i)
		if c.Status() == StatusReverted && (filter == nil || filter[c.ID()]) {
			rec = c
			break
		}
	}
	l.mu.Unlock()
	if rec == nil {
		return false, nil
	}

	switch rec.Kind() {
	case KindCreate:
		if l.host != nil {
			// After the undo swap the prior snapshot holds the
			// entity's state at creation.
			l.host.RestoreEntity(rec.Prior())
		}
	case KindDelete:
		if l.host != nil {
			l.host.RemoveEntity(rec.ID())
		}
	}
	if err := rec.Redo(); err != nil {
		return false, err
	}
	return true, nil
}

// CanUndo reports whether UndoLast with the same ids would revert a record.
func (l *Log[T, P]) CanUndo(ids ...string) bool {
	return l.hasStatus(StatusApplied, ids)
}

// CanRedo reports whether RedoLast with the same ids would re-apply a record.
func (l *Log[T, P]) CanRedo(ids ...string) bool {
	return l.hasStatus(StatusReverted, ids)
}

func (l *Log[T, P]) hasStatus(status Status, ids []string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	filter := idSet(ids)
	for i := 0; i < l.committed.len(); i++ {
		c := l.committed.at(i)
		if c.Status() == status && (filter == nil || filter[c.ID()]) {
			return true
		}
	}
	return false
}

// Len returns the number of committed records.
func (l *Log[T, P]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.committed.len()
}

// StagedLen returns the number of in-flight records.
func (l *Log[T, P]) StagedLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.staging)
}

// MaxActions returns the configured timeline bound.
func (l *Log[T, P]) MaxActions() int {
	return l.maxActions
}

// RecordInfo describes one committed record, for history UIs.
type RecordInfo struct {
	ID     string
	Kind   Kind
	Status Status
	Time   time.Time
}

// Timeline returns the committed records in chronological order.
func (l *Log[T, P]) Timeline() []RecordInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	infos := make([]RecordInfo, l.committed.len())
	for i := range infos {
		c := l.committed.at(i)
		infos[i] = RecordInfo{
			ID:     c.ID(),
			Kind:   c.Kind(),
			Status: c.Status(),
			Time:   c.Time(),
		}
	}
	return infos
}

// idSet builds a membership set from the filter ids. A nil result means no
// filtering: consider the whole timeline.
func idSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
