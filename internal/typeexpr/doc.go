// Package typeexpr models the type expressions that appear in class
// declarations: named types with optional generic arguments and an
// optional nullability suffix.
//
// Key types:
//   - Type: the abstract capability set (Nullable, NonNullable, Code)
//   - Ref: a concrete parsed type expression
//
// Examples of accepted expressions: "String", "String?", "List<int>",
// "Map<String, int?>?".
package typeexpr
