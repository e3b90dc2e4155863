package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"getter-generator/internal/diagnostic"
	"getter-generator/internal/gen"
	"getter-generator/internal/schema"
)

var genForceNonNull bool

var genCmd = &cobra.Command{
	Use:   "gen <model.yaml>",
	Short: "Generate accessor files from a class model",
	Args:  cobra.ExactArgs(1),
	RunE:  runGen,
}

func init() {
	genCmd.Flags().BoolVar(&genForceNonNull, "force-non-null", false,
		"force non-nullable accessors for all nullable fields")
}

func runGen(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}

	model, err := schema.LoadFile(args[0])
	if err != nil {
		return err
	}

	reporter := diagnostic.NewReporter(os.Stderr, colorMode())

	ds := schema.Validate(model)
	reporter.ReportAll(ds)

	if ds.HasErrors() {
		return errors.New("model validation failed")
	}

	g := gen.NewGenerator(gen.Config{
		Marker:       s.Marker,
		ForceNonNull: s.ForceNonNull || genForceNonNull,
		Header:       s.Header,
		OutputDir:    s.Output,
	})

	res, err := g.Generate(model)
	if err != nil {
		return err
	}

	// Synthesis diagnostics are report-and-continue: flagged fields
	// still produced declarations, and those declarations are written.
	reporter.ReportAll(&res.Diagnostics)

	if err := gen.WriteFiles(res.Files, s.Output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d accessors in %d files (%s)\n",
		res.Accessors, len(res.Files), s.Output)

	return nil
}
