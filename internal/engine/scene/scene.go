package scene

import "errors"

// Errors returned by scene operations.
var (
	// ErrEmptyID indicates a shape with no identifier.
	ErrEmptyID = errors.New("shape id is empty")

	// ErrDuplicateID indicates the scene already holds a shape with that id.
	ErrDuplicateID = errors.New("duplicate shape id")
)

// Scene is the drawing: shapes keyed by id, painted in z-order. The scene
// itself is not synchronized; the engine facade serializes access.
type Scene struct {
	shapes map[string]*Shape
	order  []string
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{shapes: make(map[string]*Shape)}
}

// Add inserts a shape at the top of the z-order.
func (sc *Scene) Add(s *Shape) error {
	if s.ID == "" {
		return ErrEmptyID
	}
	if _, exists := sc.shapes[s.ID]; exists {
		return ErrDuplicateID
	}
	sc.shapes[s.ID] = s
	sc.order = append(sc.order, s.ID)
	return nil
}

// Remove deletes the shape with the given id, reporting whether it existed.
func (sc *Scene) Remove(id string) bool {
	if _, ok := sc.shapes[id]; !ok {
		return false
	}
	delete(sc.shapes, id)
	for i, oid := range sc.order {
		if oid == id {
			sc.order = append(sc.order[:i], sc.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the shape with the given id.
func (sc *Scene) Get(id string) (*Shape, bool) {
	s, ok := sc.shapes[id]
	return s, ok
}

// Shapes returns the shapes in z-order, bottom first.
func (sc *Scene) Shapes() []*Shape {
	out := make([]*Shape, 0, len(sc.order))
	for _, id := range sc.order {
		out = append(out, sc.shapes[id])
	}
	return out
}

// Len returns the number of shapes.
func (sc *Scene) Len() int { return len(sc.shapes) }

// Clear removes every shape.
func (sc *Scene) Clear() {
	clear(sc.shapes)
	sc.order = sc.order[:0]
}

// RestoreEntity re-inserts a shape from a history snapshot, at the top of
// the z-order. Invoked by the action log when a deletion is undone or a
// creation redone.
func (sc *Scene) RestoreEntity(snapshot Shape) {
	s := snapshot
	if s.ID == "" {
		return
	}
	if _, exists := sc.shapes[s.ID]; exists {
		return
	}
	sc.shapes[s.ID] = &s
	sc.order = append(sc.order, s.ID)
}

// RemoveEntity removes a shape by id. Invoked by the action log when a
// creation is undone or a deletion redone.
func (sc *Scene) RemoveEntity(id string) {
	sc.Remove(id)
}
