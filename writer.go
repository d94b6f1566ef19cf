package cssunify

import (
	"os"
	"path/filepath"
	"strings"
)

// normalizeDestination forces the configured destination into
// root-relative form, applying the default when unset. The result always
// begins with exactly one "/" regardless of how the config value was
// spelled.
func normalizeDestination(dest string) string {
	if dest == "" {
		dest = DefaultDestination
	}
	return "/" + strings.TrimLeft(dest, "/")
}

// writeConsolidated writes the consolidated CSS verbatim to the
// destination under the output root, creating parent directories as
// needed. The CSS is opaque bytes here: no re-encoding, no newline
// normalization. Returns the on-disk target path.
func writeConsolidated(root, dest string, css []byte) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(dest, "/")))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", &IOError{Op: "mkdir", Path: filepath.Dir(target), Err: err}
	}
	if err := os.WriteFile(target, css, 0o644); err != nil {
		return "", &IOError{Op: "write", Path: target, Err: err}
	}
	return target, nil
}
