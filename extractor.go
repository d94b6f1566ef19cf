package cssunify

import (
	"os"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// stylesheetLinks selects a page's stylesheet link elements in document
// order. The rel value must equal "stylesheet" exactly, so the selection
// filters on the literal attribute value rather than using an attribute
// selector (selector matching on rel is case-insensitive in HTML).
func stylesheetLinks(doc *goquery.Document) *goquery.Selection {
	return doc.Find("link").FilterFunction(func(_ int, s *goquery.Selection) bool {
		rel, ok := s.Attr("rel")
		return ok && rel == "stylesheet"
	})
}

// parsePage opens and parses one page of the page set.
func parsePage(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, &PageParseError{Path: path, Err: err}
	}
	return doc, nil
}

// ExtractStylesheetRefs collects the distinct stylesheet hrefs referenced
// anywhere in the page set, preserving first-seen order across pages.
// Pages are parsed concurrently; per-page results are merged in page-set
// order, so the returned ordering is deterministic regardless of
// scheduling. Link elements without an href are skipped.
func ExtractStylesheetRefs(pages []string, concurrency int) ([]string, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	perPage := make([][]string, len(pages))
	errs := make([]error, len(pages))

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	for i, page := range pages {
		wg.Add(1)
		go func(i int, page string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			doc, err := parsePage(page)
			if err != nil {
				errs[i] = err
				return
			}
			stylesheetLinks(doc).Each(func(_ int, s *goquery.Selection) {
				if href, ok := s.Attr("href"); ok {
					perPage[i] = append(perPage[i], href)
				}
			})
		}(i, page)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var refs []string
	seen := make(map[string]bool)
	for _, pageRefs := range perPage {
		for _, ref := range pageRefs {
			if !seen[ref] {
				refs = append(refs, ref)
				seen[ref] = true
			}
		}
	}

	return refs, nil
}
