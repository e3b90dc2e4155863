package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Model represents the root of a YAML class-model file.
type Model struct {
	// Version of the model schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Marker overrides the privacy marker for all classes in this file.
	// Empty means the tool default.
	Marker string `yaml:"marker,omitempty"`

	// Classes is the list of class declarations.
	Classes []Class `yaml:"classes"`
}

// Class declares one class and its fields.
type Class struct {
	// Name is the class identifier.
	Name string `yaml:"name"`

	// Fields is the list of field declarations.
	Fields []Field `yaml:"fields"`
}

// Field declares one class field.
type Field struct {
	// Name is the field identifier, including the privacy marker.
	Name string `yaml:"name"`

	// Type is the declared type expression (e.g., "String?", "List<int>").
	Type string `yaml:"type"`

	// Static marks class-level fields.
	Static bool `yaml:"static,omitempty"`

	// Getter requests accessor synthesis for this field.
	// Fields without a getter annotation are left alone.
	Getter *GetterDef `yaml:"getter,omitempty"`
}

// HasGetter reports whether this field is annotated for synthesis.
func (f *Field) HasGetter() bool {
	return f.Getter != nil && !f.Getter.disabled
}

// GetterDef is the per-field getter annotation.
// YAML formats supported:
//   - Empty mapping: defaults
//   - Mapping: {forceNonNull: true}
//   - Bool shorthand: true (defaults) or false (explicitly disabled)
//
// A bare "getter:" key with a null value decodes to an absent
// annotation, same as omitting the key.
type GetterDef struct {
	// ForceNonNull requests the non-nullable projection of a nullable
	// field type, with a non-null assertion on the returned value.
	ForceNonNull bool

	disabled bool
}

// UnmarshalYAML implements custom unmarshaling for the supported shapes.
func (g *GetterDef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return fmt.Errorf("getter: expected bool or mapping, got %q", value.Value)
		}

		g.disabled = !enabled

		return nil

	case yaml.MappingNode:
		var raw struct {
			ForceNonNull bool `yaml:"forceNonNull"`
		}

		if err := value.Decode(&raw); err != nil {
			return fmt.Errorf("getter: %w", err)
		}

		g.ForceNonNull = raw.ForceNonNull

		return nil

	default:
		return fmt.Errorf("getter: unsupported YAML node kind %d", value.Kind)
	}
}

// MarshalYAML serializes the annotation back to its mapping form.
func (g GetterDef) MarshalYAML() (any, error) {
	if g.disabled {
		return false, nil
	}

	return struct {
		ForceNonNull bool `yaml:"forceNonNull,omitempty"`
	}{ForceNonNull: g.ForceNonNull}, nil
}
