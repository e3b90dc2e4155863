package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"getter-generator/internal/synth"
)

// LoadFile loads and parses a YAML model file from the given path.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Model.
func Parse(data []byte) (*Model, error) {
	var m Model

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model YAML: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Model) {
	if m.Version == "" {
		m.Version = "1"
	}

	if m.Marker == "" {
		m.Marker = synth.DefaultMarker
	}
}

// Marshal serializes a Model to YAML.
func Marshal(m *Model) ([]byte, error) {
	return yaml.Marshal(m)
}

// WriteFile writes a Model to the given path.
func WriteFile(m *Model, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write model file %s: %w", path, err)
	}

	return nil
}
