// Package main provides the CLI entrypoint for getter-generator.
//
// getter-generator synthesizes public getter accessors for
// privacy-marked fields:
//   - From YAML class-model files (gen, check)
//   - From Go packages with getter-tagged struct fields (gogen)
package main

import (
	"os"

	"github.com/spf13/cobra"

	"getter-generator/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "getter-generator",
	Short:         "Accessor synthesis for privacy-marked fields",
	Long:          `getter-generator turns private field declarations into public getter accessors, optionally forcing non-nullability.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagMarker   string
	flagColor    string
	flagOutput   string
	flagManifest string
)

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(goGenCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&flagMarker, "marker", "", "privacy marker prefix (default from manifest or \"_\")")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "output directory for generated files")
	rootCmd.PersistentFlags().StringVar(&flagManifest, "manifest", "", "explicit manifest path (default: nearest getter-gen.toml)")

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("error:", err)
		os.Exit(1)
	}
}
