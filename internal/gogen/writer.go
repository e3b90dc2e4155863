package gogen

import (
	"fmt"
	"os"
	"path/filepath"
)

const filePerm = 0o644

// WriteFiles writes each generated file into its package directory.
func WriteFiles(files []File) error {
	for _, file := range files {
		outputPath := filepath.Join(file.Dir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}
	}

	return nil
}
