package goanalyze

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"

	"getter-generator/internal/synth"
	"getter-generator/internal/typeexpr"
)

// TagKey is the struct tag key that marks a field for accessor synthesis.
const TagKey = "getter"

// tagOptionForceNonNull requests the non-nullable projection.
const tagOptionForceNonNull = "forcenonnull"

// StructInfo describes one struct with getter-tagged fields.
type StructInfo struct {
	// PkgPath is the import path of the defining package.
	PkgPath string
	// PkgName is the package name.
	PkgName string
	// Dir is the package source directory, used for output placement.
	Dir string
	// Name is the struct type name.
	Name string
	// Fields are the getter-tagged fields in declaration order.
	Fields []AccessorField
}

// AccessorField is one tagged field ready for synthesis.
type AccessorField struct {
	// Descriptor is the synthesis input built from the field.
	Descriptor synth.FieldDescriptor
	// GoType is the field's Go type.
	GoType types.Type
	// ForceNonNull is set by the forcenonnull tag option.
	ForceNonNull bool
}

// parseTag extracts accessor options from a struct tag.
// Returns ok=false when the field carries no getter tag.
func parseTag(tag string) (force bool, ok bool, err error) {
	value, ok := reflect.StructTag(tag).Lookup(TagKey)
	if !ok {
		return false, false, nil
	}

	for _, opt := range strings.Split(value, ",") {
		switch strings.TrimSpace(opt) {
		case "":
		case tagOptionForceNonNull:
			force = true
		default:
			return false, true, fmt.Errorf("unknown getter tag option %q", opt)
		}
	}

	return force, true, nil
}

// fieldType maps a Go field type onto a type expression.
// Pointers become nullable references to the pointee's rendering;
// everything else is a non-nullable reference. The rendering qualifies
// types from other packages by package name.
func fieldType(t types.Type, ownPkg string) typeexpr.Ref {
	qual := func(p *types.Package) string {
		if p.Path() == ownPkg {
			return ""
		}

		return p.Name()
	}

	if ptr, isPtr := t.(*types.Pointer); isPtr {
		return typeexpr.Ref{Name: types.TypeString(ptr.Elem(), qual), Null: true}
	}

	return typeexpr.Ref{Name: types.TypeString(t, qual)}
}
