package cssunify

import "fmt"

// Run executes the full consolidation pipeline once: resolve the page
// set, extract stylesheet references, run the analysis tool, write the
// consolidated stylesheet, then rewrite the pages to reference it.
//
// Every failure is fatal to the run; no partial CSS is written after an
// analysis failure and no page is rewritten after a parse failure.
func Run(cfg Config) (*Result, error) {
	tool := cfg.Tool
	if tool == "" {
		tool = DefaultTool
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// 1. Resolve the page set
	pages, err := ResolvePages(cfg.OutputRoot, cfg.Files, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	result := &Result{PagesScanned: len(pages)}

	if cfg.Verbose {
		fmt.Printf("Found %d pages\n", len(pages))
	}

	// 2. Extract stylesheet references
	refs, err := ExtractStylesheetRefs(pages, concurrency)
	if err != nil {
		return nil, err
	}
	result.StylesheetRefs = refs

	if cfg.Verbose {
		fmt.Printf("Found %d distinct stylesheet references\n", len(refs))
	}

	// 3. Build the analysis request
	analysis := buildAnalysisConfig(cfg, refs)
	result.Stylesheets = analysis.Stylesheets

	// 4. Invoke the analysis tool
	css, err := invokeAnalysis(tool, analysis, pages)
	if err != nil {
		return nil, err
	}
	result.CSSBytes = len(css)

	// 5. Write the consolidated stylesheet
	dest := normalizeDestination(cfg.Destination)
	result.Destination = dest

	target, err := writeConsolidated(cfg.OutputRoot, dest, css)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		fmt.Printf("Wrote %d bytes to %s\n", len(css), target)
	}

	// 6. Rewrite the pages
	count, err := RewritePages(pages, dest, concurrency)
	if err != nil {
		return nil, err
	}
	result.PagesRewritten = count

	if cfg.Verbose {
		fmt.Printf("Rewrote %d pages\n", count)
	}

	return result, nil
}
