// Package cssunify consolidates the stylesheets of a generated static site
// into a single file containing only the CSS rules the site actually uses.
//
// cssunify runs as a post-build step: after a site generator has written
// its HTML output, the pipeline scans the pages for stylesheet links,
// hands the page set and stylesheet list to an external CSS usage
// analyzer (uncss by default), writes the analyzer's output as one
// consolidated stylesheet, and rewrites every page to reference that
// stylesheet in place of its original links.
//
// # Library
//
//	result, err := cssunify.Run(cssunify.Config{
//		OutputRoot:  "public",
//		Files:       []string{"**/*.html"},
//		Destination: "/assets/styles.css",
//	})
//
// # CLI Tool
//
// cssunify also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssunify/cmd/cssunify@latest
//
// Wire it into the generator's post-write hook, e.g.:
//
//	hugo && cssunify run --root public --files "**/*.html"
package cssunify
