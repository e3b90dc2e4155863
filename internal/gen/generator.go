package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"getter-generator/internal/common"
	"getter-generator/internal/diagnostic"
	"getter-generator/internal/schema"
	"getter-generator/internal/synth"
	"getter-generator/internal/typeexpr"
)

// Config holds configuration for accessor generation.
type Config struct {
	// Marker overrides the privacy marker. Empty means the model's
	// marker (or the tool default).
	Marker string
	// ForceNonNull forces non-nullable accessors for every nullable
	// field, in addition to per-field annotations.
	ForceNonNull bool
	// Header is the first comment line of every generated file.
	Header string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Extension is the generated file extension.
	Extension string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Header:    "Code generated by getter-generator. DO NOT EDIT.",
		OutputDir: "./generated",
		Extension: ".accessors",
	}
}

// Generator renders accessor files from a class model.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents one generated output file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "user_accessors.accessors").
	Filename string
	// Content is the rendered file content.
	Content []byte
}

// Result is the outcome of one generation run.
type Result struct {
	// Files are the rendered per-class output files.
	Files []GeneratedFile
	// Diagnostics accumulates every synthesis and model diagnostic.
	Diagnostics diagnostic.Diagnostics
	// Accessors is the total number of synthesized declarations.
	Accessors int
}

// Generate synthesizes accessors for every getter-annotated field in
// the model and renders one file per class that has any.
func (g *Generator) Generate(m *schema.Model) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("generate: model is nil")
	}

	res := &Result{}

	for i := range m.Classes {
		c := &m.Classes[i]

		file, err := g.generateClass(c, g.markerFor(m), res)
		if err != nil {
			return nil, fmt.Errorf("generating class %s: %w", c.Name, err)
		}

		if file != nil {
			res.Files = append(res.Files, *file)
		}
	}

	return res, nil
}

// generateClass synthesizes one class's accessors. Returns nil when the
// class has no getter-annotated fields.
func (g *Generator) generateClass(c *schema.Class, marker string, res *Result) (*GeneratedFile, error) {
	var decls []string

	for i := range c.Fields {
		f := &c.Fields[i]
		if !f.HasGetter() {
			continue
		}

		typ, err := typeexpr.Parse(f.Type)
		if err != nil {
			res.Diagnostics.AddError("bad_type", err.Error(), c.Name, f.Name)
			continue
		}

		decl, diag := synth.Synthesize(
			synth.FieldDescriptor{
				Class:    c.Name,
				Name:     f.Name,
				Type:     typ,
				IsStatic: f.Static,
			},
			synth.Config{
				ForceNonNull: f.Getter.ForceNonNull || g.config.ForceNonNull,
				Marker:       marker,
			},
		)

		// Report-and-continue: the declaration is kept even when the
		// target was flagged as non-private.
		if diag != nil {
			res.Diagnostics.Add(*diag)
		}

		decls = append(decls, decl.Code())
		res.Accessors++
	}

	if common.IsEmpty(decls) {
		return nil, nil
	}

	var buf bytes.Buffer

	err := accessorTemplate.Execute(&buf, templateData{
		Header:       g.config.Header,
		Class:        c.Name,
		Declarations: decls,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	return &GeneratedFile{
		Filename: g.filename(c.Name),
		Content:  buf.Bytes(),
	}, nil
}

// markerFor resolves the effective privacy marker for a model.
func (g *Generator) markerFor(m *schema.Model) string {
	if g.config.Marker != "" {
		return g.config.Marker
	}

	return m.Marker
}

// filename builds the per-class output file name.
func (g *Generator) filename(class string) string {
	ext := g.config.Extension
	if ext == "" {
		ext = DefaultConfig().Extension
	}

	return toSnake(class) + "_accessors" + ext
}

// toSnake converts a CamelCase class name to snake_case.
func toSnake(name string) string {
	var sb strings.Builder

	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}

			sb.WriteRune(r - 'A' + 'a')

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// templateData holds all data needed for the accessor file template.
type templateData struct {
	Header       string
	Class        string
	Declarations []string
}

var accessorTemplate = template.Must(template.New("accessors").Parse(`// {{.Header}}

// Accessors for class {{.Class}}.
{{range .Declarations}}
{{.}}{{end}}
`))
