package adapter

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

var studySiteScope = []string{"**/syllabus/**", "**/unit/**", "**/subjects/**"}

// StudySiteAdapter harvests syllabus units and note links from study-blog
// aggregator sites that publish unit-wise subject pages.
type StudySiteAdapter struct {
	deps Deps
}

// NewStudySiteAdapter builds the adapter.
func NewStudySiteAdapter(deps Deps) *StudySiteAdapter {
	return &StudySiteAdapter{deps: deps}
}

func (a *StudySiteAdapter) Name() string { return "studysite" }

// Run crawls the seed and every in-scope follow-up, writing syllabus topics
// and note links attributed to the subject.
func (a *StudySiteAdapter) Run(ctx context.Context, p Params) error {
	if p.SubjectCode == "" {
		return ErrMissingSubject
	}
	if p.SeedURL == "" {
		return nil
	}
	a.deps.ensureSubject(ctx, p)

	var c *crawl.Crawler
	c = a.deps.newCrawler(a.Name(), studySiteScope, func(ctx context.Context, page *crawl.Page) error {
		for _, rec := range ExtractSyllabusSections(page, p.SubjectCode) {
			a.deps.Store.UpsertSyllabus(ctx, rec)
		}
		for _, rec := range ExtractNoteLinks(page, p.SubjectCode, a.Name()) {
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

// ExtractSyllabusSections parses unit headings ("Unit 3: Trees") and their
// topic lists out of a study page. Topics come from list items under the
// heading; when a section has no list, its paragraphs become one topic named
// after the unit title.
func ExtractSyllabusSections(page *crawl.Page, subjectCode string) []models.SyllabusContent {
	var out []models.SyllabusContent

	page.Doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		text := strings.TrimSpace(heading.Text())
		unit := InferUnit(text, 0)
		if unit == 0 {
			return
		}
		title := unitTitle(text)

		section := heading.NextUntil("h2, h3")
		items := section.Find("li")
		if items.Length() > 0 {
			items.Each(func(_ int, li *goquery.Selection) {
				body := strings.TrimSpace(li.Text())
				if body == "" {
					return
				}
				out = append(out, models.SyllabusContent{
					SubjectCode: subjectCode,
					Unit:        unit,
					UnitTitle:   title,
					Topic:       topicName(body),
					Body:        body,
					SourceURL:   page.URL.String(),
				})
			})
			return
		}

		var body strings.Builder
		section.Filter("p").Each(func(_ int, para *goquery.Selection) {
			if t := strings.TrimSpace(para.Text()); t != "" {
				if body.Len() > 0 {
					body.WriteString("\n")
				}
				body.WriteString(t)
			}
		})
		if body.Len() == 0 {
			return
		}
		topic := title
		if topic == "" {
			topic = text
		}
		out = append(out, models.SyllabusContent{
			SubjectCode: subjectCode,
			Unit:        unit,
			UnitTitle:   title,
			Topic:       topic,
			Body:        body.String(),
			SourceURL:   page.URL.String(),
		})
	})

	return out
}

// ExtractNoteLinks collects document links (PDF, DOC, PPT) as note records,
// inferring the unit from the link text.
func ExtractNoteLinks(page *crawl.Page, subjectCode, sourceName string) []models.NoteRecord {
	var out []models.NoteRecord

	page.Doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		abs := page.Resolve(href)
		if abs == "" || !isDocumentURL(abs) {
			return
		}
		title := strings.TrimSpace(s.Text())
		if title == "" {
			title = abs
		}
		out = append(out, models.NoteRecord{
			SubjectCode: subjectCode,
			Unit:        InferUnit(title, DefaultUnit),
			Title:       title,
			FileURL:     abs,
			SourceURL:   page.URL.String(),
			SourceName:  sourceName,
		})
	})

	return out
}

func isDocumentURL(raw string) bool {
	lower := strings.ToLower(raw)
	for _, ext := range []string{".pdf", ".doc", ".docx", ".ppt", ".pptx"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// unitTitle strips the "Unit <n>" prefix from a heading, leaving the title.
func unitTitle(heading string) string {
	if idx := strings.IndexAny(heading, ":-–"); idx >= 0 && idx+1 < len(heading) {
		return strings.TrimSpace(heading[idx+1:])
	}
	return strings.TrimSpace(unitPattern.ReplaceAllString(heading, ""))
}

// topicName shortens a topic body to its leading clause.
func topicName(body string) string {
	for _, sep := range []string{":", " - ", "–", ".", ","} {
		if idx := strings.Index(body, sep); idx > 0 && idx < 80 {
			return strings.TrimSpace(body[:idx])
		}
	}
	if len(body) > 80 {
		return strings.TrimSpace(body[:80])
	}
	return body
}
