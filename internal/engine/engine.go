package engine

import (
	"sync"

	"github.com/easelhq/easel/internal/engine/history"
	"github.com/easelhq/easel/internal/engine/scene"
)

// Re-export commonly used types for convenience.
type (
	// Shape is a mutable drawing entity.
	Shape = scene.Shape

	// ShapeKind identifies the geometric type of a shape.
	ShapeKind = scene.ShapeKind

	// Point is a 2D coordinate.
	Point = scene.Point

	// Kind classifies a tracked modification.
	Kind = history.Kind

	// Status is the lifecycle state of an action record.
	Status = history.Status

	// RecordInfo describes one committed action record.
	RecordInfo = history.RecordInfo
)

// Re-export constants.
const (
	ShapeRect    = scene.ShapeRect
	ShapeEllipse = scene.ShapeEllipse
	ShapeLine    = scene.ShapeLine
	ShapeLabel   = scene.ShapeLabel

	KindUpdate = history.KindUpdate
	KindCreate = history.KindCreate
	KindDelete = history.KindDelete

	StatusPending  = history.StatusPending
	StatusApplied  = history.StatusApplied
	StatusReverted = history.StatusReverted
)

// Engine combines the drawing with its action log.
type Engine struct {
	mu    sync.RWMutex
	scene *scene.Scene
	log   *history.Log[scene.Shape, *scene.Shape]
}

// New creates an engine, by default with an empty scene and a timeline
// bounded to DefaultMaxActions.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := o.scene
	if sc == nil {
		sc = scene.New()
	}
	log, err := history.NewLog[scene.Shape](o.maxActions, sc)
	if err != nil {
		return nil, err
	}
	return &Engine{scene: sc, log: log}, nil
}

// NewShape creates a shape of the given kind with a fresh id, inserts it
// into the scene, and records the creation.
func (e *Engine) NewShape(kind ShapeKind) (*Shape, error) {
	s := scene.NewShape(kind)
	if err := e.AddShape(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddShape inserts an existing shape into the scene and records the
// creation, so it can be undone.
func (e *Engine) AddShape(s *Shape) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.scene.Add(s); err != nil {
		return err
	}
	return e.log.Begin(KindCreate, s)
}

// DeleteShape records the deletion of the shape with the given id and
// removes it from the scene. It reports whether the shape existed.
func (e *Engine) DeleteShape(id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.scene.Get(id)
	if !ok {
		return false, nil
	}
	// Snapshot while the shape still exists, then remove it.
	if err := e.log.Begin(KindDelete, s); err != nil {
		return false, err
	}
	e.scene.Remove(id)
	return true, nil
}

// BeginEdit starts tracking an in-place modification of the given shapes.
// Unknown ids are skipped.
func (e *Engine) BeginEdit(ids ...string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Begin(KindUpdate, e.resolve(ids)...)
}

// CommitEdit finalizes the staged edits for the given shapes. Edits that
// changed nothing never enter the timeline; staging is cleared either way.
func (e *Engine) CommitEdit(ids ...string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Commit(e.resolve(ids)...)
}

// AbortEdit discards all staged edits without touching any shape.
func (e *Engine) AbortEdit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log.Abort()
}

// Undo reverts the most recent applied action, optionally scoped to the
// given shape ids. It reports whether anything was reverted.
func (e *Engine) Undo(ids ...string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.UndoLast(ids...)
}

// Redo re-applies the earliest reverted action, optionally scoped to the
// given shape ids. It reports whether anything was re-applied.
func (e *Engine) Redo(ids ...string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.RedoLast(ids...)
}

// ResetHistory wipes the timeline and staging, e.g. after a document reload.
func (e *Engine) ResetHistory() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log.Reset()
}

// CanUndo reports whether Undo with the same scope would revert an action.
func (e *Engine) CanUndo(ids ...string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.CanUndo(ids...)
}

// CanRedo reports whether Redo with the same scope would re-apply an action.
func (e *Engine) CanRedo(ids ...string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.CanRedo(ids...)
}

// Timeline returns the committed actions in chronological order.
func (e *Engine) Timeline() []RecordInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Timeline()
}

// Shape returns the shape with the given id.
func (e *Engine) Shape(id string) (*Shape, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scene.Get(id)
}

// Shapes returns the shapes in z-order, bottom first.
func (e *Engine) Shapes() []*Shape {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scene.Shapes()
}

// Len returns the number of shapes in the scene.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scene.Len()
}

// MaxActions returns the configured timeline bound.
func (e *Engine) MaxActions() int {
	return e.log.MaxActions()
}

// SaveScene writes the drawing to path as a YAML document.
func (e *Engine) SaveScene(path, name string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scene.Save(path, name)
}

// resolve maps ids to live shapes, silently dropping unknown ids.
func (e *Engine) resolve(ids []string) []*scene.Shape {
	shapes := make([]*scene.Shape, 0, len(ids))
	for _, id := range ids {
		if s, ok := e.scene.Get(id); ok {
			shapes = append(shapes, s)
		}
	}
	return shapes
}
