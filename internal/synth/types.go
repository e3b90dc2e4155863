package synth

import (
	"strings"

	"getter-generator/internal/typeexpr"
)

// DefaultMarker is the conventional privacy marker prefix.
const DefaultMarker = "_"

// FieldDescriptor is a read-only view of one source field.
type FieldDescriptor struct {
	// Class is the enclosing class name, used for diagnostic targeting.
	Class string
	// Name is the declared field name, expected to begin with the
	// privacy marker.
	Name string
	// Type is the declared field type. Nullability is queried from it.
	Type typeexpr.Type
	// IsStatic marks class-level fields.
	IsStatic bool
}

// Config controls a single synthesis call.
type Config struct {
	// ForceNonNull requests the non-nullable projection of nullable
	// field types, with a non-null assertion on the returned value.
	ForceNonNull bool
	// Marker is the privacy marker prefix. Empty means DefaultMarker.
	Marker string
}

// marker returns the effective privacy marker.
func (c Config) marker() string {
	if c.Marker == "" {
		return DefaultMarker
	}

	return c.Marker
}

// FragmentKind classifies a code fragment within a declaration.
type FragmentKind int

const (
	FragmentKeyword FragmentKind = iota // qualifier keywords ("static ")
	FragmentType                        // a type reference
	FragmentIdent                       // an identifier
	FragmentLiteral                     // fixed syntax (" get ", " => ", ";")
	FragmentAssertion                   // the non-null assertion token
)

// String returns a human-readable fragment kind name.
func (k FragmentKind) String() string {
	switch k {
	case FragmentKeyword:
		return "keyword"
	case FragmentType:
		return "type"
	case FragmentIdent:
		return "ident"
	case FragmentLiteral:
		return "literal"
	case FragmentAssertion:
		return "assertion"
	default:
		return "unknown"
	}
}

// Fragment is one unit of generated declaration content.
type Fragment struct {
	Kind FragmentKind
	Text string
}

// Declaration is a synthesized getter as an ordered fragment list,
// plus the resolved facts renderers need without re-parsing fragments.
type Declaration struct {
	// Fragments is the declaration in emission order.
	Fragments []Fragment
	// PublicName is the derived accessor identifier.
	PublicName string
	// FieldName is the backing field identifier.
	FieldName string
	// Type is the effective accessor type (projected when forcing applied).
	Type typeexpr.Type
	// Static is true when the accessor carries the static qualifier.
	Static bool
	// Forced is true when the non-nullable projection was applied.
	Forced bool
}

// Code joins the fragments into the declaration's source form.
func (d Declaration) Code() string {
	var sb strings.Builder
	for _, f := range d.Fragments {
		sb.WriteString(f.Text)
	}

	return sb.String()
}
