package cssunify

// Defaults applied by Run when the corresponding Config field is unset.
const (
	// DefaultDestination is the root-relative path of the consolidated
	// stylesheet when no destination is configured.
	DefaultDestination = "/assets/styles.css"
	// DefaultTool is the CSS usage analyzer invoked when none is configured.
	DefaultTool = "uncss"
	// DefaultConcurrency bounds the parallel page workers used during
	// extraction and rewriting.
	DefaultConcurrency = 4
)

// Config holds pipeline configuration for a single consolidation run.
type Config struct {
	OutputRoot  string   // Directory containing the fully generated site
	Files       []string // Glob patterns relative to OutputRoot (required)
	Exclude     []string // Optional gitignore-style patterns removing matched pages
	Destination string   // Root-relative consolidated stylesheet path (default: DefaultDestination)
	Media       []string // Optional CSS media types passed through to the analyzer
	Timeout     int      // Optional analyzer timeout in milliseconds (0 = analyzer default)
	Tool        string   // Analyzer executable (default: DefaultTool)
	Concurrency int      // Parallel page workers (default: DefaultConcurrency)
	Verbose     bool     // Enable per-stage progress logging
}

// Result contains consolidation stats for one run.
type Result struct {
	PagesScanned   int      // Pages matched by the configured globs
	StylesheetRefs []string // Distinct hrefs as found in pages, first-seen order
	Stylesheets    []string // Normalized refs handed to the analyzer
	PagesRewritten int      // Pages that contained at least one stylesheet link
	CSSBytes       int      // Size of the consolidated stylesheet
	Destination    string   // Normalized root-relative destination
}
