package studygen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/llm"
)

// Service generates study material through an LLM provider. All
// provider output passes through llm.Normalize: scheduling code never
// sees raw provider responses.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a study material generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateQuiz produces a multiple-choice quiz for the concept.
func (s *Service) GenerateQuiz(ctx context.Context, input QuizInput) (*Quiz, error) {
	n := input.NumQuestions
	if n <= 0 {
		n = DefaultNumQuestions
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")
	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(input, n)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	var out struct {
		Title     string     `json:"title"`
		Questions []Question `json:"questions"`
	}
	if err := s.generateInto(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	quiz := &Quiz{
		ConceptID: input.Concept.ID,
		Title:     out.Title,
		Questions: out.Questions,
	}
	if err := validateQuiz(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// GenerateSummary produces a pre-review refresher for the concept.
func (s *Service) GenerateSummary(ctx context.Context, input SummaryInput) (*Summary, error) {
	ctx = llm.WithPurpose(ctx, "summary")
	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(input)},
		},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.SummaryMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	var out struct {
		Text      string   `json:"text"`
		KeyPoints []string `json:"key_points"`
	}
	if err := s.generateInto(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("summary generation: %w", err)
	}

	return &Summary{
		ConceptID: input.Concept.ID,
		Text:      out.Text,
		KeyPoints: out.KeyPoints,
	}, nil
}

// GenerateFurtherReading produces follow-up study suggestions.
func (s *Service) GenerateFurtherReading(ctx context.Context, input SummaryInput) (*ReadingList, error) {
	ctx = llm.WithPurpose(ctx, "further-reading")
	req := llm.Request{
		System: readingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReadingUserMessage(input)},
		},
		Schema:      ReadingSchema,
		MaxTokens:   s.cfg.ReadingMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	var out struct {
		Items []ReadingItem `json:"items"`
	}
	if err := s.generateInto(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("further reading generation: %w", err)
	}

	return &ReadingList{
		ConceptID: input.Concept.ID,
		Items:     out.Items,
	}, nil
}

// generateInto runs the request and decodes the normalized structured
// output into v. A freeform response is an invalid result here: every
// request in this package carries a schema.
func (s *Service) generateInto(ctx context.Context, req llm.Request, v any) error {
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return err
	}

	norm := llm.Normalize(resp)
	if norm.Kind != llm.KindStructured {
		return errs.Invalid("expected structured output, got freeform text")
	}
	if err := json.Unmarshal(norm.Structured, v); err != nil {
		return fmt.Errorf("decode structured output: %w", err)
	}
	return nil
}

// validateQuiz applies the structural checks the JSON schema cannot
// express.
func validateQuiz(q *Quiz) error {
	if len(q.Questions) == 0 {
		return errs.Invalid("quiz has no questions")
	}
	for i, question := range q.Questions {
		if len(question.Options) != 4 {
			return errs.Invalid("question %d has %d options, want 4", i, len(question.Options))
		}
		if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
			return errs.Invalid("question %d correct index %d out of range", i, question.CorrectIndex)
		}
	}
	return nil
}
