package synth

import (
	"getter-generator/internal/diagnostic"
)

// invalidTargetMessage matches the wording surfaced at the annotation
// call site when the target field is not privacy-marked.
const invalidTargetMessage = "PublicGetter should only be used on private declarations"

// Synthesize produces a public getter declaration for the given field.
//
// When the field name does not begin with the privacy marker, an
// Error-severity diagnostic is returned alongside the declaration.
// Synthesis still proceeds: the public name is derived by stripping
// marker-length bytes from the front regardless, so an unmarked field
// yields a mangled public name. The diagnostic is the guard rail.
func Synthesize(field FieldDescriptor, cfg Config) (Declaration, *diagnostic.Diagnostic) {
	marker := cfg.marker()

	var diag *diagnostic.Diagnostic
	if !hasMarker(field.Name, marker) {
		diag = &diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     "invalid_target",
			Message:  invalidTargetMessage,
			Class:    field.Class,
			Field:    field.Name,
		}
	}

	publicName := stripMarker(field.Name, marker)

	effectiveType := field.Type
	forced := cfg.ForceNonNull && field.Type != nil && field.Type.Nullable()

	if forced {
		effectiveType = field.Type.NonNullable()
	}

	decl := Declaration{
		PublicName: publicName,
		FieldName:  field.Name,
		Type:       effectiveType,
		Static:     field.IsStatic,
		Forced:     forced,
	}

	if field.IsStatic {
		decl.Fragments = append(decl.Fragments, Fragment{FragmentKeyword, "static "})
	}

	typeCode := ""
	if effectiveType != nil {
		typeCode = effectiveType.Code()
	}

	decl.Fragments = append(decl.Fragments,
		Fragment{FragmentType, typeCode},
		Fragment{FragmentLiteral, " get "},
		Fragment{FragmentIdent, publicName},
		Fragment{FragmentLiteral, " => "},
		Fragment{FragmentIdent, field.Name},
	)

	if forced {
		decl.Fragments = append(decl.Fragments, Fragment{FragmentAssertion, "!"})
	}

	decl.Fragments = append(decl.Fragments, Fragment{FragmentLiteral, ";"})

	return decl, diag
}

// hasMarker reports whether name begins with the privacy marker.
func hasMarker(name, marker string) bool {
	return len(name) >= len(marker) && name[:len(marker)] == marker
}

// stripMarker removes marker-length bytes from the front of name,
// whether or not the marker is actually present. Names shorter than
// the marker strip to the empty string.
func stripMarker(name, marker string) string {
	if len(name) < len(marker) {
		return ""
	}

	return name[len(marker):]
}
