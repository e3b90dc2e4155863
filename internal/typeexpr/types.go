package typeexpr

import "strings"

// Type is a reference to a declared type. It exposes only the
// capabilities accessor synthesis needs, so the synthesizer never
// depends on a concrete type-system representation.
type Type interface {
	// Nullable reports whether the type admits an absent value.
	Nullable() bool
	// NonNullable returns the non-nullable projection of the type.
	// For already non-nullable types it returns the type unchanged.
	NonNullable() Type
	// Code returns the source representation of the type.
	Code() string
}

// Ref is a parsed type expression: a name, optional generic arguments,
// and an optional nullability marker.
type Ref struct {
	// Name is the type identifier (e.g., "String", "List").
	Name string
	// Args are the generic arguments, if any.
	Args []Ref
	// Null is true when the expression carries a trailing "?".
	Null bool
}

// Nullable reports whether the expression carries a trailing "?".
func (r Ref) Nullable() bool {
	return r.Null
}

// NonNullable returns the expression with the top-level "?" removed.
// Nullability of generic arguments is untouched.
func (r Ref) NonNullable() Type {
	r.Null = false
	return r
}

// Code returns the source form of the expression.
func (r Ref) Code() string {
	var sb strings.Builder

	sb.WriteString(r.Name)

	if len(r.Args) > 0 {
		sb.WriteString("<")

		for i, arg := range r.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(arg.Code())
		}

		sb.WriteString(">")
	}

	if r.Null {
		sb.WriteString("?")
	}

	return sb.String()
}

// String returns the same representation as Code.
func (r Ref) String() string {
	return r.Code()
}
