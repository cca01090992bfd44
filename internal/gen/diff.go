package gen

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff compares a generated file with what is on disk and returns a unified
// diff, or "" when the file is up to date. A missing file diffs against empty
// content.
func Diff(file GeneratedFile, outputDir string) (string, error) {
	path := Destination(file, outputDir)

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	if bytes.Equal(existing, file.Content) {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(file.Content)),
		FromFile: path + " (on disk)",
		ToFile:   path + " (generated)",
		Context:  3,
	})
}
