package adapter

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// CoursePlatformAdapter harvests course listings from advanced-course
// platforms (NPTEL-style catalogues). Courses are stored as video resources
// pointing at the course page.
type CoursePlatformAdapter struct {
	deps Deps
}

// NewCoursePlatformAdapter builds the adapter.
func NewCoursePlatformAdapter(deps Deps) *CoursePlatformAdapter {
	return &CoursePlatformAdapter{deps: deps}
}

func (a *CoursePlatformAdapter) Name() string { return "courseplatform" }

func (a *CoursePlatformAdapter) Run(ctx context.Context, p Params) error {
	if p.SubjectCode == "" {
		return ErrMissingSubject
	}
	if p.SeedURL == "" {
		return nil
	}
	a.deps.ensureSubject(ctx, p)

	c := a.deps.newCrawler(a.Name(), nil, func(ctx context.Context, page *crawl.Page) error {
		for _, rec := range ExtractCourseCards(page, p.SubjectCode) {
			a.deps.Store.InsertVideo(ctx, rec)
		}
		return nil
	})
	return c.Run(ctx, p.SeedURL)
}

// ExtractCourseCards parses course catalogue cards into video resources.
func ExtractCourseCards(page *crawl.Page, subjectCode string) []models.VideoResource {
	var out []models.VideoResource
	platform := platformName(page.URL.Host)

	page.Doc.Find("div.course-card, div.course, li.course-item").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a[href]").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		abs := page.Resolve(href)
		if abs == "" {
			return
		}

		title := strings.TrimSpace(card.Find(".course-title, .title, h3").First().Text())
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if title == "" {
			return
		}

		out = append(out, models.VideoResource{
			SubjectCode: subjectCode,
			Title:       title,
			Description: strings.TrimSpace(card.Find(".description, .summary").First().Text()),
			VideoURL:    abs,
			Duration:    strings.TrimSpace(card.Find(".duration, .weeks").First().Text()),
			Platform:    platform,
			ChannelName: strings.TrimSpace(card.Find(".instructor, .institute").First().Text()),
		})
	})

	return out
}
