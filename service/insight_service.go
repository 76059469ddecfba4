package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

var ErrInsightUnavailable = errors.New("insight generation is not configured")

const insightModel = "gemini-1.5-flash"

// InsightService turns a weekly report into a short coaching note using
// Gemini. Optional: when no client is configured the endpoint is disabled
// and the rest of the system is unaffected.
type InsightService struct {
	geminiClient *genai.Client
	model        string
}

// InsightServiceOption is a functional option for InsightService
type InsightServiceOption func(*InsightService)

// InsightWithGeminiClient sets the Gemini client
func InsightWithGeminiClient(client *genai.Client) InsightServiceOption {
	return func(s *InsightService) {
		s.geminiClient = client
	}
}

// InsightWithModel overrides the generation model
func InsightWithModel(model string) InsightServiceOption {
	return func(s *InsightService) {
		s.model = model
	}
}

// NewInsightService creates a new insight service
func NewInsightService(opts ...InsightServiceOption) *InsightService {
	s := &InsightService{
		model: insightModel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether a Gemini client is configured
func (s *InsightService) Enabled() bool {
	return s.geminiClient != nil
}

// WeeklyInsight asks the model for a three-sentence coaching note over the
// given weekly report.
func (s *InsightService) WeeklyInsight(ctx context.Context, report *WeeklyReport) (string, error) {
	if s.geminiClient == nil {
		return "", ErrInsightUnavailable
	}

	prompt := buildInsightPrompt(report)

	model := s.geminiClient.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate insight: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("generate insight: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("generate insight: no text in response")
	}

	return strings.TrimSpace(sb.String()), nil
}

func buildInsightPrompt(report *WeeklyReport) string {
	return fmt.Sprintf(`You are a pragmatic productivity coach for a software engineer in job-search mode.
Week of %s:
- DSA problems solved: %d
- Project hours: %.1f
- Commits pushed: %d
- Applications sent: %d
- Mock interviews: %d
- Average energy rating: %.1f / 5
- Days tracked: %d of 7

Write exactly three sentences: one acknowledging what went well, one naming
the biggest gap, and one concrete suggestion for next week. No preamble.`,
		report.WeekStart.Format("2006-01-02"),
		report.TotalDsaProblems,
		report.TotalProjectHours,
		report.TotalCommitsPushed,
		report.TotalApplicationsSent,
		report.TotalMockInterviews,
		report.AvgEnergyRating,
		report.DaysTracked,
	)
}
