package adapter

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

var portalScope = []string{"**/circulars/**", "**/notices/**", "**/exams/**", "**/schedule/**"}

// PortalAdapter crawls the official university portal for circulars and exam
// schedules. It runs once per run, not per subject: everything it writes is
// subject-agnostic, which is also why it never touches note or syllabus
// tables.
type PortalAdapter struct {
	deps Deps
}

// NewPortalAdapter builds the adapter.
func NewPortalAdapter(deps Deps) *PortalAdapter {
	return &PortalAdapter{deps: deps}
}

func (a *PortalAdapter) Name() string { return "portal" }

func (a *PortalAdapter) Run(ctx context.Context, p Params) error {
	if p.SeedURL == "" {
		return nil
	}

	var c *crawl.Crawler
	c = a.deps.newCrawler(a.Name(), portalScope, func(ctx context.Context, page *crawl.Page) error {
		for _, rec := range ExtractCirculars(page) {
			a.deps.Store.InsertCircular(ctx, rec)
		}
		for _, rec := range ExtractExamSchedules(page) {
			a.deps.Store.InsertExamSchedule(ctx, rec)
		}
		page.Doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			if href, ok := s.Attr("href"); ok {
				c.Enqueue(page.Resolve(href))
			}
		})
		return nil
	})
	return c.Run(ctx, p.SeedURL)
}

// ExtractCirculars parses circular listings: table rows or list items with a
// date and a linked title. Linked circular PDFs become the external URL.
func ExtractCirculars(page *crawl.Page) []models.Circular {
	var out []models.Circular

	page.Doc.Find("table.circulars tr, ul.circulars li, div.circular").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a[href]").First()
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return
		}

		external := page.URL.String()
		if href, ok := link.Attr("href"); ok {
			if abs := page.Resolve(href); abs != "" {
				external = abs
			}
		}

		var published string
		row.Find("td, .date, time").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			text := strings.TrimSpace(cell.Text())
			if !parseLooseDate(text).IsZero() {
				published = text
				return false
			}
			return true
		})

		out = append(out, models.Circular{
			Title:       title,
			Content:     strings.TrimSpace(row.Find(".summary, .description").First().Text()),
			Category:    "Official",
			PublishedAt: parseLooseDate(published),
			ExternalURL: external,
		})
	})

	return out
}

// ExtractExamSchedules parses exam timetable rows: exam name, branch,
// semester and date cells.
func ExtractExamSchedules(page *crawl.Page) []models.ExamSchedule {
	var out []models.ExamSchedule

	page.Doc.Find("table.exam-schedule tr, table.timetable tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		cell := func(i int) string { return strings.TrimSpace(cells.Eq(i).Text()) }

		name := cell(0)
		if name == "" {
			return
		}

		rec := models.ExamSchedule{
			ExamName:  name,
			Branch:    cell(1),
			SourceURL: page.URL.String(),
		}
		if sem, err := strconv.Atoi(strings.TrimPrefix(cell(2), "Sem ")); err == nil {
			rec.Semester = sem
		}
		if cells.Length() > 3 {
			rec.ExamDate = parseLooseDate(cell(3))
		}
		out = append(out, rec)
	})

	return out
}
