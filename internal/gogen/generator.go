package gogen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"getter-generator/internal/diagnostic"
	"getter-generator/internal/goanalyze"
	"getter-generator/internal/synth"
)

// Config holds configuration for Go method generation.
type Config struct {
	// Marker is the privacy marker prefix. Empty means the tool default.
	Marker string
	// Header is the first comment line of every generated file.
	Header string
}

// DefaultConfig returns the default gogen configuration.
func DefaultConfig() Config {
	return Config{
		Header: "Code generated by getter-generator. DO NOT EDIT.",
	}
}

// File is one generated Go source file, placed next to its package.
type File struct {
	// Dir is the package source directory.
	Dir string
	// Filename is the generated file name (e.g., "webapp_getters.gen.go").
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

// Result is the outcome of one generation run.
type Result struct {
	Files       []File
	Diagnostics diagnostic.Diagnostics
	Accessors   int
}

// Generate renders getter methods for every tagged struct, grouped into
// one file per source package.
func Generate(structs []goanalyze.StructInfo, cfg Config) (*Result, error) {
	res := &Result{}

	type pkgGroup struct {
		pkgPath string
		pkgName string
		dir     string
		methods []methodData
		imports map[string]struct{}
	}

	var order []string

	groups := map[string]*pkgGroup{}

	for _, s := range structs {
		grp := groups[s.PkgPath]
		if grp == nil {
			grp = &pkgGroup{
				pkgPath: s.PkgPath,
				pkgName: s.PkgName,
				dir:     s.Dir,
				imports: map[string]struct{}{},
			}
			groups[s.PkgPath] = grp
			order = append(order, s.PkgPath)
		}

		for _, f := range s.Fields {
			method, diag := buildMethod(&s, &f, cfg, grp.imports)
			if diag != nil {
				res.Diagnostics.Add(*diag)
			}

			if method != nil {
				grp.methods = append(grp.methods, *method)
				res.Accessors++
			}
		}
	}

	for _, pkgPath := range order {
		grp := groups[pkgPath]
		if len(grp.methods) == 0 {
			continue
		}

		file, err := renderFile(grp.pkgName, grp.dir, grp.methods, grp.imports, cfg)
		if err != nil {
			return nil, fmt.Errorf("generating package %s: %w", pkgPath, err)
		}

		res.Files = append(res.Files, *file)
	}

	return res, nil
}

// methodData is one getter method for the template.
type methodData struct {
	Receiver   string
	Struct     string
	Name       string
	Field      string
	ReturnType string
	Expr       string
}

// buildMethod synthesizes one field and maps the declaration onto a Go
// method. A nil method with a nil diagnostic never occurs; an invalid
// target yields both unless the derived name cannot form an identifier.
func buildMethod(s *goanalyze.StructInfo, f *goanalyze.AccessorField, cfg Config, imports map[string]struct{}) (*methodData, *diagnostic.Diagnostic) {
	decl, diag := synth.Synthesize(f.Descriptor, synth.Config{
		ForceNonNull: f.ForceNonNull,
		Marker:       cfg.Marker,
	})

	if decl.PublicName == "" {
		// Nothing renderable; the invalid-target diagnostic already fired.
		return nil, diag
	}

	qual := func(p *types.Package) string {
		if p.Path() == s.PkgPath {
			return ""
		}

		imports[p.Path()] = struct{}{}

		return p.Name()
	}

	receiver := strings.ToLower(s.Name[:1])

	goType := f.GoType
	expr := receiver + "." + decl.FieldName

	if decl.Forced {
		expr = "*" + expr

		if ptr, isPtr := goType.(*types.Pointer); isPtr {
			goType = ptr.Elem()
		}
	}

	returnType := ""
	if goType != nil {
		returnType = types.TypeString(goType, qual)
	} else if decl.Type != nil {
		// No go/types information (hand-built descriptor); fall back to
		// the effective type expression.
		returnType = decl.Type.Code()
	}

	return &methodData{
		Receiver:   receiver,
		Struct:     s.Name,
		Name:       exportName(decl.PublicName),
		Field:      decl.FieldName,
		ReturnType: returnType,
		Expr:       expr,
	}, diag
}

// exportName capitalizes the first rune so the method is exported.
func exportName(name string) string {
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// renderFile renders and formats one package's getter file.
func renderFile(pkgName, dir string, methods []methodData, imports map[string]struct{}, cfg Config) (*File, error) {
	paths := make([]string, 0, len(imports))
	for p := range imports {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	var buf bytes.Buffer

	err := getterTemplate.Execute(&buf, fileData{
		Header:      cfg.Header,
		PackageName: pkgName,
		Imports:     paths,
		Methods:     methods,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return &File{
		Dir:      dir,
		Filename: pkgName + "_getters.gen.go",
		Content:  formatted,
	}, nil
}

// fileData holds all data needed for the getter file template.
type fileData struct {
	Header      string
	PackageName string
	Imports     []string
	Methods     []methodData
}

var getterTemplate = template.Must(template.New("getters").Parse(`// {{.Header}}

package {{.PackageName}}

{{if .Imports}}import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{range .Methods}}// {{.Name}} returns the {{.Field}} field.
func ({{.Receiver}} *{{.Struct}}) {{.Name}}() {{.ReturnType}} {
	return {{.Expr}}
}

{{end}}`))
