package adapter

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
)

var tutorialScope = []string{"**/tutorial/**", "**/tutorials/**", "**/lessons/**", "**/*.htm", "**/*.html"}

// TutorialAdapter crawls long-form tutorial prose, accumulates the text per
// inferred unit, and hands each unit's corpus to the study-guide pipeline
// after the crawl finishes.
type TutorialAdapter struct {
	deps Deps
}

// NewTutorialAdapter builds the adapter.
func NewTutorialAdapter(deps Deps) *TutorialAdapter {
	return &TutorialAdapter{deps: deps}
}

func (a *TutorialAdapter) Name() string { return "tutorial" }

func (a *TutorialAdapter) Run(ctx context.Context, p Params) error {
	if p.SubjectCode == "" {
		return ErrMissingSubject
	}
	if p.SeedURL == "" {
		return nil
	}
	a.deps.ensureSubject(ctx, p)

	// Crawl workers append concurrently; the builder map is guarded.
	var mu sync.Mutex
	byUnit := map[int]*strings.Builder{}

	var c *crawl.Crawler
	c = a.deps.newCrawler(a.Name(), tutorialScope, func(ctx context.Context, page *crawl.Page) error {
		unit, text := ExtractTutorialText(page)
		if text != "" {
			mu.Lock()
			b, ok := byUnit[unit]
			if !ok {
				b = &strings.Builder{}
				byUnit[unit] = b
			}
			b.WriteString(text)
			b.WriteString("\n\n")
			mu.Unlock()
		}
		page.Doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			if href, ok := s.Attr("href"); ok {
				c.Enqueue(page.Resolve(href))
			}
		})
		return nil
	})
	if err := c.Run(ctx, p.SeedURL); err != nil {
		return err
	}

	if a.deps.Guides == nil {
		a.deps.logger().Warn("guide pipeline not configured, tutorial text discarded",
			zap.String("subject", p.SubjectCode))
		return nil
	}

	units := make([]int, 0, len(byUnit))
	for u := range byUnit {
		units = append(units, u)
	}
	sort.Ints(units)

	for _, unit := range units {
		if err := a.deps.Guides.GenerateGuide(ctx, p.SubjectCode, unit, a.Name(), byUnit[unit].String()); err != nil {
			a.deps.logger().Error("guide generation failed",
				zap.String("subject", p.SubjectCode),
				zap.Int("unit", unit),
				zap.Error(err))
		}
	}
	return nil
}

// ExtractTutorialText pulls the instructional prose from a tutorial page and
// infers which unit it belongs to from the URL path and headings.
func ExtractTutorialText(page *crawl.Page) (int, string) {
	doc := page.Doc

	heading := strings.TrimSpace(doc.Find("h1").First().Text())
	if heading == "" {
		heading = strings.TrimSpace(doc.Find("title").First().Text())
	}
	unit := InferUnit(page.URL.Path, UnitAgnostic)
	if unit == UnitAgnostic {
		unit = InferUnit(heading, DefaultUnit)
	}

	var b strings.Builder
	if heading != "" {
		b.WriteString(heading)
		b.WriteString("\n")
	}
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) < 40 {
			return
		}
		b.WriteString(text)
		b.WriteString("\n")
	})

	text := strings.TrimSpace(b.String())
	if text == heading {
		// Headings alone carry no instructional content.
		return unit, ""
	}
	return unit, text
}
