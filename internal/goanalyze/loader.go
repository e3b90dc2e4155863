package goanalyze

import (
	"fmt"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"getter-generator/internal/common"
	"getter-generator/internal/diagnostic"
	"getter-generator/internal/synth"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts getter-tagged structs.
type Analyzer struct {
	diags diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Diagnostics returns tag-level problems found during the last load.
func (a *Analyzer) Diagnostics() *diagnostic.Diagnostics {
	return &a.diags
}

// Load loads the given package patterns and returns every struct with
// at least one getter-tagged field, in deterministic order.
func (a *Analyzer) Load(patterns ...string) ([]StructInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var result []StructInfo

	for _, pkg := range pkgs {
		structs, err := a.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		result = append(result, structs...)
	}

	return result, nil
}

// processPackage walks a package's named types looking for structs with
// getter-tagged fields.
func (a *Analyzer) processPackage(pkg *packages.Package) ([]StructInfo, error) {
	if pkg.Types == nil {
		return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
	}

	dir := ""
	if first, ok := common.First(pkg.GoFiles); ok {
		dir = filepath.Dir(first)
	}

	var result []StructInfo

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, valid := scope.Lookup(name).(*types.TypeName)
		if !valid {
			continue
		}

		st, isStruct := obj.Type().Underlying().(*types.Struct)
		if !isStruct {
			continue
		}

		info := StructInfo{
			PkgPath: pkg.PkgPath,
			PkgName: pkg.Name,
			Dir:     dir,
			Name:    obj.Name(),
		}

		a.collectFields(st, &info)

		if len(info.Fields) > 0 {
			result = append(result, info)
		}
	}

	return result, nil
}

// collectFields extracts getter-tagged fields from a struct type.
func (a *Analyzer) collectFields(st *types.Struct, info *StructInfo) {
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)

		force, tagged, err := parseTag(st.Tag(i))
		if err != nil {
			a.diags.AddError("bad_tag", err.Error(), info.Name, f.Name())
			continue
		}

		if !tagged || f.Embedded() {
			continue
		}

		info.Fields = append(info.Fields, AccessorField{
			Descriptor: synth.FieldDescriptor{
				Class: info.Name,
				Name:  f.Name(),
				Type:  fieldType(f.Type(), info.PkgPath),
			},
			GoType:       f.Type(),
			ForceNonNull: force,
		})
	}
}
