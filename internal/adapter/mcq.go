package adapter

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

var mcqScope = []string{"**/mcq/**", "**/quiz/**", "**/questions/**"}

// MCQBankAdapter harvests multiple-choice questions from question-bank sites
// that publish question/options/answer blocks, either as structured DOM
// groups or as semi-structured text.
type MCQBankAdapter struct {
	deps Deps
}

// NewMCQBankAdapter builds the adapter.
func NewMCQBankAdapter(deps Deps) *MCQBankAdapter {
	return &MCQBankAdapter{deps: deps}
}

func (a *MCQBankAdapter) Name() string { return "mcqbank" }

func (a *MCQBankAdapter) Run(ctx context.Context, p Params) error {
	if p.SubjectCode == "" {
		return ErrMissingSubject
	}
	if p.SeedURL == "" {
		return nil
	}
	a.deps.ensureSubject(ctx, p)

	var c *crawl.Crawler
	c = a.deps.newCrawler(a.Name(), mcqScope, func(ctx context.Context, page *crawl.Page) error {
		for _, rec := range ExtractQuestions(page, p.SubjectCode, a.Name()) {
			a.deps.Store.InsertQuestion(ctx, rec)
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

// ExtractQuestions parses question blocks from the page. DOM groups
// (div.question with option lists) are tried first; pages that publish
// questions as flat text fall back to the text parser.
func ExtractQuestions(page *crawl.Page, subjectCode, sourceName string) []models.QuestionBankItem {
	var out []models.QuestionBankItem

	page.Doc.Find("div.question, li.question, div.mcq").Each(func(_ int, block *goquery.Selection) {
		if item, ok := parseQuestionBlock(block); ok {
			item.SubjectCode = subjectCode
			item.SourceName = sourceName
			item.SourceURL = page.URL.String()
			out = append(out, item)
		}
	})
	if len(out) > 0 {
		return out
	}

	for _, item := range ParseQuestionText(page.Doc.Find("body").Text()) {
		item.SubjectCode = subjectCode
		item.SourceName = sourceName
		item.SourceURL = page.URL.String()
		out = append(out, item)
	}
	return out
}

func parseQuestionBlock(block *goquery.Selection) (models.QuestionBankItem, bool) {
	question := strings.TrimSpace(block.Find(".question-text, .q-text, p").First().Text())
	if question == "" {
		return models.QuestionBankItem{}, false
	}

	options := map[string]string{}
	letters := []string{"A", "B", "C", "D", "E", "F"}
	block.Find("ol li, ul li").Each(func(i int, li *goquery.Selection) {
		if i < len(letters) {
			options[letters[i]] = strings.TrimSpace(li.Text())
		}
	})

	item := models.QuestionBankItem{
		Question:    question,
		Options:     models.OptionsJSON(options),
		Answer:      strings.TrimSpace(block.Find(".answer, .correct-answer").First().Text()),
		Explanation: strings.TrimSpace(block.Find(".explanation").First().Text()),
		Difficulty:  strings.TrimSpace(block.Find(".difficulty").First().Text()),
		Topic:       strings.TrimSpace(block.Find(".topic").First().Text()),
	}
	return item, true
}

var (
	questionLineRe = regexp.MustCompile(`^(?:Q\.?\s*\d*[.)]?|\d+[.)])\s*(.+)`)
	optionLineRe   = regexp.MustCompile(`^\(?([a-dA-D])[.)]\s*(.+)`)
	answerLineRe   = regexp.MustCompile(`(?i)^answer\s*[:.-]\s*\(?([a-dA-D])\)?`)
)

// ParseQuestionText parses semi-structured MCQ text of the form
//
//	Q1. What is ...?
//	(a) first (b)-style option lines
//	Answer: b
//
// into question items. Lines that fit none of the patterns extend the
// question or the last option.
func ParseQuestionText(raw string) []models.QuestionBankItem {
	var out []models.QuestionBankItem

	var question string
	options := map[string]string{}
	var lastOption string

	flush := func(answer string) {
		if question == "" {
			return
		}
		item := models.QuestionBankItem{
			Question: question,
			Options:  models.OptionsJSON(options),
		}
		if answer != "" {
			item.Answer = strings.ToUpper(answer)
		}
		out = append(out, item)
		question = ""
		options = map[string]string{}
		lastOption = ""
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := answerLineRe.FindStringSubmatch(line); m != nil {
			flush(m[1])
			continue
		}
		if m := optionLineRe.FindStringSubmatch(line); m != nil && question != "" {
			lastOption = strings.ToUpper(m[1])
			options[lastOption] = strings.TrimSpace(m[2])
			continue
		}
		if m := questionLineRe.FindStringSubmatch(line); m != nil {
			// A new question without an answer line closes the previous one.
			flush("")
			question = strings.TrimSpace(m[1])
			continue
		}

		switch {
		case lastOption != "":
			options[lastOption] += " " + line
		case question != "":
			question += " " + line
		}
	}
	flush("")

	return out
}
