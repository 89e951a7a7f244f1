package studyguide

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/glboysagar1-prog/study-tracker-sub000/pkg/config"
)

// ErrNoCredentials signals that no API keys are configured. Callers degrade
// to the raw source text instead of failing the guide.
var ErrNoCredentials = errors.New("no generative api keys configured")

const requestDeadline = 45 * time.Second

var retryBackoff = []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}

const guidePrompt = `You are preparing concise exam study material for engineering students.
Rewrite the following course text as a structured study guide.
Use short section headings in capital letters, followed by plain paragraphs
and key points. Keep definitions exact and omit filler.

Course text:
%s`

// Summarizer condenses accumulated tutorial text into study-guide prose via
// the Gemini API, rotating keys and backing off between attempts.
type Summarizer struct {
	keys   *keyRing
	model  string
	budget int
	logger *zap.Logger
}

// NewSummarizer builds a summarizer from the AI configuration.
func NewSummarizer(cfg config.AIConfig, logger *zap.Logger) *Summarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	budget := cfg.CharBudget
	if budget <= 0 {
		budget = 12000
	}
	return &Summarizer{
		keys:   newKeyRing(cfg.APIKeys),
		model:  model,
		budget: budget,
		logger: logger,
	}
}

// Summarize returns the generated guide text. The source is truncated to the
// configured character budget before prompting.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.keys.Len() == 0 {
		return "", ErrNoCredentials
	}
	if len(text) > s.budget {
		text = text[:s.budget]
	}
	prompt := fmt.Sprintf(guidePrompt, text)

	var lastErr error
	for attempt := 0; attempt <= len(retryBackoff); attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff[attempt-1]):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		key, _ := s.keys.Next()
		out, err := s.generate(ctx, key, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
		s.logger.Warn("summarization attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	return "", fmt.Errorf("summarize text: %w", lastErr)
}

func (s *Summarizer) generate(ctx context.Context, key, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestDeadline)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.model)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty model response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("model returned no text parts")
	}
	return out, nil
}
