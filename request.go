package cssunify

import (
	"os"
	"path/filepath"
	"strings"
)

// analysisConfig is the configuration object handed to the external
// analysis tool. Optional keys must be omitted entirely when unset so
// the tool's own defaulting applies.
type analysisConfig struct {
	HTMLRoot    string   `json:"htmlroot"`
	Stylesheets []string `json:"stylesheets"`
	Media       []string `json:"media,omitempty"`
	Timeout     int      `json:"timeout,omitempty"`
}

// normalizeRefs rewrites every ref that resolves to a regular file under
// root into root-relative absolute form ("/path"). Refs with no
// corresponding on-disk file pass through untouched; the analysis tool
// resolves those itself (external or protocol-relative URLs).
func normalizeRefs(root string, refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		trimmed := strings.TrimLeft(ref, "/")
		target := filepath.Join(root, filepath.FromSlash(trimmed))
		if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
			out[i] = "/" + trimmed
		} else {
			out[i] = ref
		}
	}
	return out
}

// buildAnalysisConfig assembles the analyzer configuration for one run.
func buildAnalysisConfig(cfg Config, refs []string) analysisConfig {
	return analysisConfig{
		HTMLRoot:    cfg.OutputRoot,
		Stylesheets: normalizeRefs(cfg.OutputRoot, refs),
		Media:       cfg.Media,
		Timeout:     cfg.Timeout,
	}
}
