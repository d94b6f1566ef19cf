package cssunify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadLinks parses a page and returns its stylesheet link selection.
func loadLinks(t *testing.T, path string) *goquery.Selection {
	t.Helper()
	doc, err := parsePage(path)
	require.NoError(t, err)
	return stylesheetLinks(doc)
}

func TestRewritePages_SwapsLinksAtLastPosition(t *testing.T) {
	root := t.TempDir()
	page := writeTestFile(t, root, "a.html", `<!DOCTYPE html>
<html>
<head>
  <link rel="stylesheet" href="/css/a.css">
  <meta name="marker" content="x">
  <link rel="stylesheet" href="/css/b.css">
  <link rel="icon" href="/favicon.ico">
</head>
<body></body>
</html>`)

	count, err := RewritePages([]string{page}, "/assets/styles.css", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	links := loadLinks(t, page)
	require.Equal(t, 1, links.Length())
	href, _ := links.Attr("href")
	assert.Equal(t, "/assets/styles.css", href)

	out, err := os.ReadFile(page)
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, "/css/a.css")
	assert.NotContains(t, html, "/css/b.css")

	// The replacement occupies the last original link's position:
	// after the marker meta, before the icon link.
	marker := strings.Index(html, "marker")
	newLink := strings.Index(html, "/assets/styles.css")
	icon := strings.Index(html, "favicon")
	require.True(t, marker >= 0 && newLink >= 0 && icon >= 0)
	assert.Less(t, marker, newLink)
	assert.Less(t, newLink, icon)
}

func TestRewritePages_SingleLink(t *testing.T) {
	root := t.TempDir()
	page := writeTestFile(t, root, "b.html",
		`<html><head><link rel="stylesheet" href="/css/a.css"></head><body></body></html>`)

	count, err := RewritePages([]string{page}, "/assets/styles.css", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	links := loadLinks(t, page)
	require.Equal(t, 1, links.Length())
	href, _ := links.Attr("href")
	assert.Equal(t, "/assets/styles.css", href)
}

func TestRewritePages_PageWithoutLinksUntouched(t *testing.T) {
	root := t.TempDir()
	content := "<html><head><title>plain</title></head><body><p>no styles</p></body></html>"
	page := writeTestFile(t, root, "c.html", content)

	before, err := os.Stat(page)
	require.NoError(t, err)

	count, err := RewritePages([]string{page}, "/assets/styles.css", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	got, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, content, string(got), "page must stay byte-identical")

	after, err := os.Stat(page)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(), "page must not be rewritten at all")
}

func TestRewritePages_FailureLeavesPagesUntouched(t *testing.T) {
	root := t.TempDir()
	content := `<html><head><link rel="stylesheet" href="/css/a.css"></head></html>`
	good := writeTestFile(t, root, "good.html", content)
	missing := filepath.Join(root, "missing.html")

	// All pages are buffered before any write, so a failing page keeps
	// the readable ones untouched regardless of page order.
	_, err := RewritePages([]string{good, missing}, "/assets/styles.css", 1)
	require.Error(t, err)

	got, err := os.ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}
