package crawl

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is a fetched, parsed document handed to adapter handlers.
type Page struct {
	URL        *url.URL
	StatusCode int
	Doc        *goquery.Document
}

// Resolve turns a possibly-relative href into an absolute URL string.
// Returns "" for unparseable or non-HTTP hrefs.
func (p *Page) Resolve(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	abs := p.URL.ResolveReference(ref)
	abs.Fragment = ""
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	return abs.String()
}

// Text returns the trimmed text of the first node matching the selector.
func (p *Page) Text(selector string) string {
	return strings.TrimSpace(p.Doc.Find(selector).First().Text())
}
