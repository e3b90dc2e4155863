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

var checkCmd = &cobra.Command{
	Use:   "check <model.yaml>",
	Short: "Validate a class model and dry-run synthesis",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	// Dry-run synthesis surfaces invalid targets without writing files.
	g := gen.NewGenerator(gen.Config{
		Marker:       s.Marker,
		ForceNonNull: s.ForceNonNull,
		Header:       s.Header,
	})

	res, err := g.Generate(model)
	if err != nil {
		return err
	}

	ds.Merge(res.Diagnostics)
	reporter.ReportAll(ds)

	if ds.HasErrors() {
		return errors.New("check failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d accessors from %d classes\n",
		res.Accessors, len(model.Classes))

	return nil
}
