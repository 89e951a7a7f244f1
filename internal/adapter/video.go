package adapter

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

const videoSearchURL = "https://www.youtube.com/results?search_query="

// VideoSearchAdapter turns video-platform search results into video resource
// rows. It is subject-agnostic in the sense that it needs no registry entry:
// without a seed it searches for "<subject name> lectures".
type VideoSearchAdapter struct {
	deps Deps
}

// NewVideoSearchAdapter builds the adapter.
func NewVideoSearchAdapter(deps Deps) *VideoSearchAdapter {
	return &VideoSearchAdapter{deps: deps}
}

func (a *VideoSearchAdapter) Name() string { return "videosearch" }

func (a *VideoSearchAdapter) Run(ctx context.Context, p Params) error {
	if p.SubjectCode == "" {
		return ErrMissingSubject
	}
	a.deps.ensureSubject(ctx, p)

	seed := p.SeedURL
	if seed == "" {
		query := strings.TrimSpace(p.SubjectName + " lectures")
		seed = videoSearchURL + url.QueryEscape(query)
	}

	// Search-result pages are processed singly; no follow-ups.
	c := a.deps.newCrawler(a.Name(), nil, func(ctx context.Context, page *crawl.Page) error {
		for _, rec := range ExtractVideoCards(page, p.SubjectCode) {
			a.deps.Store.InsertVideo(ctx, rec)
		}
		return nil
	})
	return c.Run(ctx, seed)
}

// ExtractVideoCards parses search-result cards into video metadata. The
// platform is derived from the result host.
func ExtractVideoCards(page *crawl.Page, subjectCode string) []models.VideoResource {
	var out []models.VideoResource
	platform := platformName(page.URL.Host)

	page.Doc.Find("div.video-card, div.video-result, ytd-video-renderer").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a[href]").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		abs := page.Resolve(href)
		if abs == "" {
			return
		}

		title := strings.TrimSpace(card.Find(".title, #video-title, h3").First().Text())
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if title == "" {
			return
		}

		out = append(out, models.VideoResource{
			SubjectCode: subjectCode,
			Title:       title,
			Description: strings.TrimSpace(card.Find(".description, .snippet").First().Text()),
			VideoURL:    abs,
			Duration:    strings.TrimSpace(card.Find(".duration, .length").First().Text()),
			Platform:    platform,
			ChannelName: strings.TrimSpace(card.Find(".channel, .channel-name, .byline").First().Text()),
			ViewCount:   ParseViewCount(card.Find(".views, .view-count").First().Text()),
		})
	})

	return out
}

var viewCountRe = regexp.MustCompile(`([\d.,]+)\s*([KkMm]?)`)

// ParseViewCount reads strings like "1.2M views", "87K views" or "12,345"
// into a count. Unparseable input yields 0.
func ParseViewCount(raw string) int64 {
	m := viewCountRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	switch strings.ToUpper(m[2]) {
	case "K":
		n *= 1_000
	case "M":
		n *= 1_000_000
	}
	return int64(n)
}

func platformName(host string) string {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	switch {
	case strings.Contains(host, "youtube"):
		return "YouTube"
	case strings.Contains(host, "vimeo"):
		return "Vimeo"
	default:
		if idx := strings.Index(host, "."); idx > 0 {
			host = host[:idx]
		}
		if host == "" {
			return host
		}
		return strings.ToUpper(host[:1]) + host[1:]
	}
}
