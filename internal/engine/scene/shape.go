// Package scene implements the host drawing: a table of mutable shape
// entities keyed by stable id, with z-order, YAML document load/save, and
// the physical add/remove callbacks the action log needs for undoing
// creations and redoing deletions.
package scene

import "github.com/google/uuid"

// ShapeKind identifies the geometric type of a shape.
type ShapeKind string

const (
	ShapeRect    ShapeKind = "rect"
	ShapeEllipse ShapeKind = "ellipse"
	ShapeLine    ShapeKind = "line"
	ShapeLabel   ShapeKind = "label"
)

// Point is a 2D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Shape is a mutable drawing entity. All fields are plain data so the
// history engine can snapshot a shape structurally; Points and Attrs force
// those snapshots to be genuinely deep.
type Shape struct {
	ID   string    `yaml:"id"`
	Kind ShapeKind `yaml:"kind"`

	// Bounding box; lines interpret (X,Y)-(X+W,Y+H) as endpoints.
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`

	Stroke string `yaml:"stroke,omitempty"`
	Fill   string `yaml:"fill,omitempty"`
	Label  string `yaml:"label,omitempty"`

	// Points holds the vertices of multi-segment shapes.
	Points []Point `yaml:"points,omitempty"`

	// Attrs carries host-defined metadata.
	Attrs map[string]string `yaml:"attrs,omitempty"`
}

// EntityID returns the shape's stable identifier.
func (s *Shape) EntityID() string { return s.ID }

// MoveBy translates the shape.
func (s *Shape) MoveBy(dx, dy float64) {
	s.X += dx
	s.Y += dy
	for i := range s.Points {
		s.Points[i].X += dx
		s.Points[i].Y += dy
	}
}

// NewShape creates a shape of the given kind with a fresh unique id.
func NewShape(kind ShapeKind) *Shape {
	return &Shape{
		ID:   uuid.NewString(),
		Kind: kind,
	}
}
