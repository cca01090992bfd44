package gen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Destination returns where file is written: its package directory, or
// outputDir when one is given.
func Destination(file GeneratedFile, outputDir string) string {
	if outputDir == "" {
		return file.Path()
	}

	return filepath.Join(outputDir, file.Filename)
}

// WriteFiles writes all generated files and returns the paths that changed.
// Files whose content is already up to date are left untouched.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	var written []string

	for _, file := range files {
		outputPath := Destination(file, outputDir)

		existing, err := os.ReadFile(outputPath)
		if err == nil && bytes.Equal(existing, file.Content) {
			continue
		}

		// Create output directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return written, errors.Wrap(err, "creating output directory")
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, errors.Wrapf(err, "writing file %s", file.Filename)
		}

		written = append(written, outputPath)
	}

	return written, nil
}
