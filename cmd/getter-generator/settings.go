package main

import (
	"getter-generator/internal/diagnostic"
	"getter-generator/internal/gen"
	"getter-generator/internal/manifest"
)

// settings are the effective generation options after merging the
// manifest with command-line flags. Flags win.
type settings struct {
	Marker       string
	Output       string
	Header       string
	ForceNonNull bool
}

// resolveSettings loads the manifest (explicit path or nearest) and
// applies flag overrides.
func resolveSettings() (settings, error) {
	var (
		m   *manifest.Manifest
		err error
	)

	if flagManifest != "" {
		m, err = manifest.Load(flagManifest)
	} else {
		m, _, err = manifest.LoadNearest(".")
	}

	if err != nil {
		return settings{}, err
	}

	s := settings{
		Marker:       m.Marker,
		Output:       m.Output,
		Header:       m.Header,
		ForceNonNull: m.ForceNonNull,
	}

	if flagMarker != "" {
		s.Marker = flagMarker
	}

	if flagOutput != "" {
		s.Output = flagOutput
	}

	defaults := gen.DefaultConfig()

	if s.Output == "" {
		s.Output = defaults.OutputDir
	}

	if s.Header == "" {
		s.Header = defaults.Header
	}

	return s, nil
}

// colorMode maps the --color flag onto the reporter's mode.
func colorMode() diagnostic.ColorMode {
	switch flagColor {
	case "on":
		return diagnostic.ColorOn
	case "off":
		return diagnostic.ColorOff
	default:
		return diagnostic.ColorAuto
	}
}
