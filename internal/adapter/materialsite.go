package adapter

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

var materialSiteScope = []string{"**/materials/**", "**/downloads/**", "**/subjects/**"}

// MaterialSiteAdapter harvests unit-wise study material listings from sites
// that publish tabular download pages (college material portals).
type MaterialSiteAdapter struct {
	deps Deps
}

// NewMaterialSiteAdapter builds the adapter.
func NewMaterialSiteAdapter(deps Deps) *MaterialSiteAdapter {
	return &MaterialSiteAdapter{deps: deps}
}

func (a *MaterialSiteAdapter) Name() string { return "materialsite" }

func (a *MaterialSiteAdapter) Run(ctx context.Context, p Params) error {
	if p.SubjectCode == "" {
		return ErrMissingSubject
	}
	if p.SeedURL == "" {
		return nil
	}
	a.deps.ensureSubject(ctx, p)

	var c *crawl.Crawler
	c = a.deps.newCrawler(a.Name(), materialSiteScope, func(ctx context.Context, page *crawl.Page) error {
		for _, rec := range ExtractMaterialRows(page, p.SubjectCode, a.Name()) {
			a.deps.Store.InsertNote(ctx, rec)
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

// ExtractMaterialRows reads download tables: one row per material with a
// description cell and a download link. Falls back to plain document links
// when the page has no table.
func ExtractMaterialRows(page *crawl.Page, subjectCode, sourceName string) []models.NoteRecord {
	var out []models.NoteRecord

	rows := page.Doc.Find("table tr")
	rows.Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a[href]").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		abs := page.Resolve(href)
		if abs == "" || !isDocumentURL(abs) {
			return
		}

		title := strings.TrimSpace(link.Text())
		var description string
		row.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			text := strings.TrimSpace(cell.Text())
			if text != "" && text != title && cell.Find("a").Length() == 0 {
				description = text
				return false
			}
			return true
		})
		if title == "" {
			title = description
		}
		if title == "" {
			title = abs
		}

		out = append(out, models.NoteRecord{
			SubjectCode: subjectCode,
			Unit:        InferUnit(title+" "+description, DefaultUnit),
			Title:       title,
			Description: description,
			FileURL:     abs,
			SourceURL:   page.URL.String(),
			SourceName:  sourceName,
		})
	})

	if len(out) > 0 {
		return out
	}
	return ExtractNoteLinks(page, subjectCode, sourceName)
}
