package schema

import (
	"fmt"

	"getter-generator/internal/diagnostic"
	"getter-generator/internal/typeexpr"
)

// Validate performs structural validation of a model.
// This checks the declarations themselves, not synthesis preconditions:
// a field name without the privacy marker is legal here and is flagged
// later, during synthesis, per the report-and-continue contract.
func Validate(m *Model) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if m == nil {
		res.AddError("model_is_nil", "model is nil", "", "")
		return res
	}

	seenClasses := map[string]struct{}{}

	for i := range m.Classes {
		c := &m.Classes[i]

		if c.Name == "" {
			res.AddError("empty_class_name", fmt.Sprintf("class #%d has no name", i), "", "")
			continue
		}

		if _, ok := seenClasses[c.Name]; ok {
			res.AddError("duplicate_class", fmt.Sprintf("duplicate class %q", c.Name), c.Name, "")
			continue
		}

		seenClasses[c.Name] = struct{}{}

		validateClass(res, c)
	}

	return res
}

func validateClass(res *diagnostic.Diagnostics, c *Class) {
	seenFields := map[string]struct{}{}
	getters := 0

	for i := range c.Fields {
		f := &c.Fields[i]

		if f.Name == "" {
			res.AddError("empty_field_name",
				fmt.Sprintf("field #%d in class %q has no name", i, c.Name), c.Name, "")
			continue
		}

		if _, ok := seenFields[f.Name]; ok {
			res.AddError("duplicate_field",
				fmt.Sprintf("duplicate field %q", f.Name), c.Name, f.Name)
			continue
		}

		seenFields[f.Name] = struct{}{}

		if f.Type == "" {
			res.AddError("missing_type",
				fmt.Sprintf("field %q has no type", f.Name), c.Name, f.Name)
			continue
		}

		if _, err := typeexpr.Parse(f.Type); err != nil {
			res.AddError("bad_type", err.Error(), c.Name, f.Name)
			continue
		}

		if f.HasGetter() {
			getters++
		}
	}

	if getters == 0 {
		res.AddWarning("no_getters",
			fmt.Sprintf("class %q has no getter-annotated fields", c.Name), c.Name, "")
	}
}
