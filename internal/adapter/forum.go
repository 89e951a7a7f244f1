package adapter

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

const forumSearchURL = "https://www.reddit.com/search/?q="

// ForumAdapter turns community-forum search results into discussion records,
// stored in the circulars table under the reserved category. Discussions are
// subject-agnostic rows, so this adapter works without a subject code too.
type ForumAdapter struct {
	deps Deps
}

// NewForumAdapter builds the adapter.
func NewForumAdapter(deps Deps) *ForumAdapter {
	return &ForumAdapter{deps: deps}
}

func (a *ForumAdapter) Name() string { return "forum" }

func (a *ForumAdapter) Run(ctx context.Context, p Params) error {
	seed := p.SeedURL
	if seed == "" {
		query := strings.TrimSpace(p.SubjectName + " study discussion")
		seed = forumSearchURL + url.QueryEscape(query)
	}

	c := a.deps.newCrawler(a.Name(), nil, func(ctx context.Context, page *crawl.Page) error {
		for _, rec := range ExtractDiscussions(page) {
			a.deps.Store.InsertCircular(ctx, rec)
		}
		return nil
	})
	return c.Run(ctx, seed)
}

// ExtractDiscussions parses search-result posts into community-discussion
// circulars.
func ExtractDiscussions(page *crawl.Page) []models.Circular {
	var out []models.Circular

	page.Doc.Find("div.search-result, article.post, div.thread").Each(func(_ int, post *goquery.Selection) {
		titleNode := post.Find(".title a, h2 a, h3 a").First()
		title := strings.TrimSpace(titleNode.Text())
		if title == "" {
			title = strings.TrimSpace(post.Find(".title, h2, h3").First().Text())
		}
		if title == "" {
			return
		}

		external := page.URL.String()
		if href, ok := titleNode.Attr("href"); ok {
			if abs := page.Resolve(href); abs != "" {
				external = abs
			}
		}

		out = append(out, models.Circular{
			Title:       title,
			Content:     strings.TrimSpace(post.Find(".snippet, .excerpt, p").First().Text()),
			Category:    models.CategoryCommunityDiscussion,
			PublishedAt: parseLooseDate(post.Find(".date, time").First().Text()),
			ExternalURL: external,
		})
	})

	return out
}

var looseDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// parseLooseDate tries the date formats seen across sources; the zero time
// means unknown and the store substitutes "now".
func parseLooseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range looseDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
