package crawl

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// PageFetcher retrieves and parses one page. Satisfied by Fetcher; tests
// substitute their own.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Page, error)
}

// Fetcher is the production fetcher backed by a shared resty client.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher builds a fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	client := resty.New().SetTimeout(timeout)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &Fetcher{client: client}
}

// Fetch downloads the URL and parses the body into a goquery document.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}

	final, err := url.Parse(resp.Request.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url %s: %w", rawURL, err)
	}

	return &Page{URL: final, StatusCode: resp.StatusCode(), Doc: doc}, nil
}
