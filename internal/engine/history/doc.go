// Package history provides selective undo/redo for mutable scene entities.
//
// The history system tracks, per edited entity, the state before and after
// each modification. Key concepts:
//
// # Records
//
// A Record represents one entity's state transition:
//   - prior and later deep snapshots of the entity's fields
//   - the operation kind (update, create, delete)
//   - a lifecycle status (pending, applied, reverted)
//
// Undo and redo are a state swap, not a recompute: the prior snapshot is
// written back onto the live entity and the two snapshots are exchanged,
// so undo/redo pairs toggle indefinitely in O(1) per step.
//
// # The log
//
// The Log type manages a bounded, chronologically ordered timeline of
// committed records plus a staging area for in-flight edits:
//
//	log, err := history.NewLog[Shape](200, drawing)
//
//	// Two-phase edit
//	log.Begin(history.KindUpdate, shape)
//	// ... host mutates shape in place ...
//	log.Commit(shape)
//
//	// Undo/redo
//	log.UndoLast()
//	log.RedoLast()
//
// Create and delete are atomic: Begin commits them directly, bypassing
// staging. When the log undoes a creation or redoes a deletion it asks the
// host, via the Host interface, to physically remove the entity from the
// drawing; the reverse directions ask the host to re-insert it from a
// snapshot.
//
// # Selective undo/redo
//
// UndoLast and RedoLast accept an optional set of entity ids:
//
//	log.UndoLast(a.ID, b.ID) // revert the newest applied edit of a or b
//
// Records outside the subset keep their status, so each entity's undo
// position advances independently of the rest of the timeline.
//
// # Bounding
//
// The timeline holds at most maxActions records; committing beyond that
// drops the oldest record, silently retiring its undo capability.
package history
