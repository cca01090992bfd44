package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// DebugSuffix ends the name of an unformatted sidecar file.
const DebugSuffix = ".unformatted.go"

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}
	// Keep it a .go file so editors can syntax highlight, but avoid colliding with
	// real output.
	debugName := DebugName(filename)
	p := filepath.Join(outDir, debugName)

	return os.WriteFile(p, content, filePerm)
}

// DebugName returns the sidecar name for an artifact file name.
func DebugName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + DebugSuffix
}
