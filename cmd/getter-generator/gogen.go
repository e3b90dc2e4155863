package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"getter-generator/internal/diagnostic"
	"getter-generator/internal/goanalyze"
	"getter-generator/internal/gogen"
)

var goGenCmd = &cobra.Command{
	Use:   "gogen <packages...>",
	Short: "Generate Go getter methods for getter-tagged struct fields",
	Long: `gogen loads Go packages, finds struct fields carrying a getter tag,
and writes a <pkg>_getters.gen.go file with public accessor methods
next to each package.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGoGen,
}

func runGoGen(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}

	analyzer := goanalyze.NewAnalyzer()

	structs, err := analyzer.Load(args...)
	if err != nil {
		return err
	}

	reporter := diagnostic.NewReporter(os.Stderr, colorMode())
	reporter.ReportAll(analyzer.Diagnostics())

	res, err := gogen.Generate(structs, gogen.Config{
		Marker: s.Marker,
		Header: s.Header,
	})
	if err != nil {
		return err
	}

	reporter.ReportAll(&res.Diagnostics)

	if err := gogen.WriteFiles(res.Files); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d getter methods in %d files\n",
		res.Accessors, len(res.Files))

	return nil
}
