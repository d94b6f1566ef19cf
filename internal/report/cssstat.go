package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StylesheetStat describes one source stylesheet that fed a run.
type StylesheetStat struct {
	Path  string // root-relative ref, as handed to the analyzer
	Bytes int
	Rules int // top-level rule count (at-rules count as one)
}

// Savings compares the site's original stylesheets with the consolidated
// output. Only the original on-disk stylesheets are inspected; the
// consolidated CSS stays opaque.
type Savings struct {
	Stylesheets   []StylesheetStat
	OriginalBytes int
	OriginalRules int
}

// CollectSavings gathers size and rule counts for the root-relative
// stylesheet refs that resolve to files under root. Opaque refs
// (external URLs) and unreadable files are skipped; stats are a
// best-effort report, never a reason to fail.
func CollectSavings(root string, refs []string) *Savings {
	s := &Savings{}
	for _, ref := range refs {
		if !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(ref, "/"))))
		if err != nil {
			continue
		}
		stat := StylesheetStat{Path: ref, Bytes: len(content), Rules: countRules(content)}
		s.Stylesheets = append(s.Stylesheets, stat)
		s.OriginalBytes += stat.Bytes
		s.OriginalRules += stat.Rules
	}
	return s
}

// countRules counts top-level rules by tracking brace depth in the CSS
// token stream.
func countRules(content []byte) int {
	lexer := css.NewLexer(parse.NewInputBytes(content))
	depth := 0
	rules := 0
	for {
		tt, _ := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}
		switch tt {
		case css.LeftBraceToken:
			if depth == 0 {
				rules++
			}
			depth++
		case css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		}
	}
	return rules
}
