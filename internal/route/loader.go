package route

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File permission for written route files.
const filePerm = 0o644

// LoadFile loads and parses a route file from the given path.
func LoadFile(path string) ([]*Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read routes file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a YAML (or JSON) sequence of routes.
func Parse(data []byte) ([]*Route, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse routes YAML: %w", err)
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	routes, err := decodeRoutes(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse routes YAML: %w", err)
	}

	return routes, nil
}

// Marshal serializes routes to YAML.
func Marshal(routes []*Route) ([]byte, error) {
	if routes == nil {
		routes = []*Route{}
	}

	return yaml.Marshal(routes)
}

// WriteFile writes routes as YAML to the given path.
func WriteFile(routes []*Route, path string) error {
	data, err := Marshal(routes)
	if err != nil {
		return fmt.Errorf("failed to marshal routes: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write routes file %s: %w", path, err)
	}

	return nil
}
