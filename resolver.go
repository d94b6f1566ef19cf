package cssunify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ResolvePages expands the configured glob patterns against the output
// root into a concrete page set: absolute paths, deduplicated, in
// first-match order. Optional exclude patterns (gitignore syntax) remove
// matched pages before anything downstream sees them.
//
// Matched non-HTML files are passed through; they simply yield no
// stylesheet links later.
func ResolvePages(root string, patterns, exclude []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, &ConfigError{Reason: "no file patterns configured"}
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("output root %q: %v", root, err)}
	}
	if info, err := os.Stat(rootAbs); err != nil || !info.IsDir() {
		return nil, &ConfigError{Reason: fmt.Sprintf("output root %q is not a directory", root)}
	}

	var ign *ignore.GitIgnore
	if len(exclude) > 0 {
		ign = ignore.CompileIgnoreLines(exclude...)
	}

	var pages []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(rootAbs, pattern))
		if err != nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("glob pattern %q: %v", pattern, err)}
		}

		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, &IOError{Op: "resolve", Path: match, Err: err}
			}
			if seen[abs] {
				continue
			}
			info, err := os.Stat(abs)
			if err != nil || info.IsDir() {
				continue
			}
			if ign != nil {
				if rel, err := filepath.Rel(rootAbs, abs); err == nil && ign.MatchesPath(rel) {
					continue
				}
			}
			pages = append(pages, abs)
			seen[abs] = true
		}
	}

	if len(pages) == 0 {
		return nil, &ConfigError{Reason: "no files matched the configured patterns"}
	}

	return pages, nil
}
