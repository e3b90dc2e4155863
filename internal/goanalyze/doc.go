// Package goanalyze is the Go-package frontend: it loads packages with
// golang.org/x/tools/go/packages and extracts accessor field
// descriptors from struct fields carrying a `getter:"..."` tag.
//
// Tag forms:
//
//	_username string `getter:""`             // getter with defaults
//	_email    *string `getter:"forcenonnull"` // force non-nullable accessor
//
// Pointer fields map to nullable type expressions; forcing projects the
// pointee type and the generated method dereferences the field.
package goanalyze
