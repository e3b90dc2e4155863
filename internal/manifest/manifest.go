// Package manifest loads the optional getter-gen.toml tool manifest.
// The manifest carries project-wide defaults; command-line flags
// override whatever it sets.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Filename is the manifest file name looked up from the working directory.
const Filename = "getter-gen.toml"

// Manifest holds project-wide generation defaults.
type Manifest struct {
	// Marker is the privacy marker prefix.
	Marker string `toml:"marker"`
	// Output is the generated-files directory.
	Output string `toml:"output"`
	// Header overrides the generated-file header comment.
	Header string `toml:"header"`
	// ForceNonNull forces non-nullable accessors for all nullable fields.
	ForceNonNull bool `toml:"force_non_null"`
}

// Load reads a manifest from the given path.
func Load(path string) (*Manifest, error) {
	var m Manifest

	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("manifest %s: unknown key %q", path, undecoded[0].String())
	}

	return &m, nil
}

// Find walks up from startDir looking for a manifest file.
// Returns the path and true when found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, Filename)

		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, true, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// LoadNearest finds and loads the nearest manifest above startDir.
// A missing manifest is not an error: the zero Manifest is returned
// with found=false.
func LoadNearest(startDir string) (*Manifest, bool, error) {
	path, found, err := Find(startDir)
	if err != nil || !found {
		return &Manifest{}, found, err
	}

	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}

	return m, true, nil
}
