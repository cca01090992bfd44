package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	file := GeneratedFile{Dir: dir, Filename: "cents_implementation.go", Content: []byte("package money\n")}

	written, err := WriteFiles([]GeneratedFile{file}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "cents_implementation.go")}, written)

	content, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Equal(t, "package money\n", string(content))

	// unchanged content is not rewritten
	written, err = WriteFiles([]GeneratedFile{file}, "")
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestWriteFiles_OutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "out")
	file := GeneratedFile{Dir: "/does/not/matter", Filename: "point_implementation.go", Content: []byte("package geo\n")}

	written, err := WriteFiles([]GeneratedFile{file}, out)
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.FileExists(t, filepath.Join(out, "point_implementation.go"))
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	file := GeneratedFile{Dir: dir, Filename: "label_implementation.go", Content: []byte("package text\n\nvar a = 1\n")}

	diff, err := Diff(file, "")
	require.NoError(t, err)
	assert.Contains(t, diff, "+var a = 1")
	assert.Contains(t, diff, "(generated)")

	require.NoError(t, os.WriteFile(file.Path(), []byte("package text\n\nvar a = 2\n"), 0o644))

	diff, err = Diff(file, "")
	require.NoError(t, err)
	assert.Contains(t, diff, "-var a = 2")
	assert.Contains(t, diff, "+var a = 1")

	require.NoError(t, os.WriteFile(file.Path(), file.Content, 0o644))

	diff, err = Diff(file, "")
	require.NoError(t, err)
	assert.Empty(t, diff)
}
