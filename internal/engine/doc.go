// Package engine provides the core scene-editing engine for Easel.
//
// The engine package serves as the main facade, combining the shape table
// (the drawing) with the selective undo/redo action log into a unified,
// thread-safe API suitable for building graphical editors.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - entity: entity contract and deep-snapshot semantics
//   - history: action records and the bounded, selectively traversable log
//   - scene: the shape table with z-order and YAML documents
//
// # Basic usage
//
// Create an engine and edit shapes under two-phase tracking:
//
//	e, _ := engine.New()
//
//	s, _ := e.NewShape(engine.ShapeRect)
//
//	e.BeginEdit(s.ID)
//	s.MoveBy(10, 0)
//	e.CommitEdit(s.ID)
//
//	e.Undo()     // back to the original position
//	e.Redo()     // forward again
//	e.Undo(s.ID) // scoped to a subset of shapes
//
// # Thread safety
//
// The facade serializes access with a read-write mutex. The underlying
// components are cooperative and rely on this serialization; hosts must not
// re-enter the engine from within an undo/redo cycle.
package engine
