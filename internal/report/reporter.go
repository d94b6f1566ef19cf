package report

import (
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/cssunify"
)

// Options controls summary rendering.
type Options struct {
	UseColors bool // render with lipgloss styles
	Verbose   bool // include per-stylesheet rows
}

// ShouldUseColors determines if colors should be enabled.
func ShouldUseColors(forced bool) bool {
	// Explicit flag wins
	if forced {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintSummary writes the run summary, with a size comparison against
// the original stylesheets when savings data is available.
func PrintSummary(w io.Writer, result *cssunify.Result, savings *Savings, opts Options) {
	fmt.Fprintf(w, "%s %s\n",
		Render(StyleGreen, fmt.Sprintf("Consolidated %s into", pluralizeCount(len(result.Stylesheets), "stylesheet", "stylesheets")), opts.UseColors),
		Render(StyleCyan, result.Destination, opts.UseColors))
	fmt.Fprintf(w, "  Pages scanned: %d\n", result.PagesScanned)
	fmt.Fprintf(w, "  Pages rewritten: %d\n", result.PagesRewritten)
	fmt.Fprintf(w, "  Consolidated size: %d bytes\n", result.CSSBytes)

	if savings == nil || savings.OriginalBytes == 0 {
		return
	}

	pct := float64(savings.OriginalBytes-result.CSSBytes) / float64(savings.OriginalBytes) * 100
	fmt.Fprintf(w, "  Original size: %d bytes across %s (%.1f%% saved)\n",
		savings.OriginalBytes,
		pluralizeCount(savings.OriginalRules, "rule", "rules"),
		pct)

	if opts.Verbose {
		for _, stat := range savings.Stylesheets {
			fmt.Fprintf(w, "%s\n", Render(StyleGray,
				fmt.Sprintf("    %s: %d bytes, %s", stat.Path, stat.Bytes, pluralizeCount(stat.Rules, "rule", "rules")),
				opts.UseColors))
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
