package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layer is one prioritized partial source of configuration. Values are
// textual; Resolve coerces them per the field schema so that a bad value is
// reported against the layer that supplied it. Layers are read-only at
// resolution time.
type Layer interface {
	Name() string
	Lookup(field string) (string, bool)
}

// MapLayer is a Layer backed by a plain map. The zero value is an empty layer.
type MapLayer struct {
	name   string
	values map[string]string
}

// NewMapLayer builds a layer from the given values. The map is copied so the
// caller cannot mutate the layer afterwards.
func NewMapLayer(name string, values map[string]string) MapLayer {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return MapLayer{name: name, values: cp}
}

func (l MapLayer) Name() string { return l.name }

func (l MapLayer) Lookup(field string) (string, bool) {
	v, ok := l.values[field]
	return v, ok
}

// LoadFileLayer reads a YAML defaults table (flat mapping of field name to
// scalar) and returns it as a layer named after the file.
func LoadFileLayer(path string) (Layer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load defaults file: %w", err)
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse defaults file %s: %w", path, err)
	}
	return NewMapLayer(path, values), nil
}
