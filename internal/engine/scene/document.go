package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a scene.
type Document struct {
	Name   string   `yaml:"name,omitempty"`
	Shapes []*Shape `yaml:"shapes"`
}

// Load reads a scene document from path. A missing file yields an empty
// scene, matching an editor opening a new drawing.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}

	sc := New()
	for _, s := range doc.Shapes {
		if err := sc.Add(s); err != nil {
			return nil, fmt.Errorf("scene %s, shape %q: %w", path, s.ID, err)
		}
	}
	return sc, nil
}

// Save writes the scene to path as a YAML document, shapes in z-order.
func (sc *Scene) Save(path, name string) error {
	doc := Document{Name: name, Shapes: sc.Shapes()}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scene %s: %w", path, err)
	}
	return nil
}
