package cssunify

import (
	"os"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewrittenPage buffers the re-serialized document of a page whose
// stylesheet links were swapped.
type rewrittenPage struct {
	path string
	html string
}

// newStylesheetLink builds the replacement link element pointing at the
// consolidated stylesheet.
func newStylesheetLink(href string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "link",
		DataAtom: atom.Link,
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: href},
		},
	}
}

// rewritePage swaps one page's stylesheet links for a single link to
// dest. Returns nil when the page has no stylesheet links: such pages
// must stay byte-for-byte untouched.
func rewritePage(path, dest string) (*rewrittenPage, error) {
	doc, err := parsePage(path)
	if err != nil {
		return nil, err
	}

	links := stylesheetLinks(doc)
	if links.Length() == 0 {
		return nil, nil
	}

	// The new node must anchor at the last link's document position
	// before any of the originals are removed.
	links.Last().AfterNodes(newStylesheetLink(dest))
	links.Remove()

	out, err := doc.Html()
	if err != nil {
		return nil, &PageParseError{Path: path, Err: err}
	}
	return &rewrittenPage{path: path, html: out}, nil
}

// RewritePages replaces every page's stylesheet links with a single link
// to the consolidated stylesheet at dest, positioned where the last
// original link was. All pages are parsed and re-serialized in memory
// before any file is written, so a parse failure leaves the whole page
// set untouched. A write failure mid-commit aborts without rollback.
// Returns the number of pages rewritten.
func RewritePages(pages []string, dest string, concurrency int) (int, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	rewritten := make([]*rewrittenPage, len(pages))
	errs := make([]error, len(pages))

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	for i, page := range pages {
		wg.Add(1)
		go func(i int, page string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			rewritten[i], errs[i] = rewritePage(page, dest)
		}(i, page)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}

	count := 0
	for _, rw := range rewritten {
		if rw == nil {
			continue
		}
		if err := os.WriteFile(rw.path, []byte(rw.html), 0o644); err != nil {
			return count, &IOError{Op: "write", Path: rw.path, Err: err}
		}
		count++
	}

	return count, nil
}
