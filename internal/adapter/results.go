package adapter

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

var resultsScope = []string{"**/results/**", "**/statistics/**"}

// ResultsAdapter crawls the results site for published pass statistics. Runs
// once per run; rows are branch/semester scoped, not subject scoped.
type ResultsAdapter struct {
	deps Deps
}

// NewResultsAdapter builds the adapter.
func NewResultsAdapter(deps Deps) *ResultsAdapter {
	return &ResultsAdapter{deps: deps}
}

func (a *ResultsAdapter) Name() string { return "results" }

func (a *ResultsAdapter) Run(ctx context.Context, p Params) error {
	if p.SeedURL == "" {
		return nil
	}

	var c *crawl.Crawler
	c = a.deps.newCrawler(a.Name(), resultsScope, func(ctx context.Context, page *crawl.Page) error {
		for _, rec := range ExtractResultStats(page) {
			a.deps.Store.InsertResultStat(ctx, rec)
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

// ExtractResultStats parses result tables with exam name, branch, semester,
// appeared count and pass percentage columns.
func ExtractResultStats(page *crawl.Page) []models.ResultStatistic {
	var out []models.ResultStatistic

	page.Doc.Find("table.results tr, table.statistics tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return
		}
		cell := func(i int) string { return strings.TrimSpace(cells.Eq(i).Text()) }

		name := cell(0)
		if name == "" {
			return
		}

		rec := models.ResultStatistic{
			ExamName:  name,
			Branch:    cell(1),
			SourceURL: page.URL.String(),
		}
		if sem, err := strconv.Atoi(cell(2)); err == nil {
			rec.Semester = sem
		}
		if total, err := strconv.Atoi(strings.ReplaceAll(cell(3), ",", "")); err == nil {
			rec.TotalStudents = total
		}
		if pct, err := strconv.ParseFloat(strings.TrimSuffix(cell(4), "%"), 64); err == nil {
			rec.PassPercentage = pct
		}
		out = append(out, rec)
	})

	return out
}
