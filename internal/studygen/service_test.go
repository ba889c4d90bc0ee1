package studygen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/avalder/pathwise/internal/concept"
	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/llm"
)

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Linear Equations Check",
		"questions": [
			{
				"text": "What is the slope of y = 2x + 3?",
				"options": ["2", "3", "x", "y"],
				"correct_index": 0,
				"explanation": "In y = mx + b form, m is the slope."
			},
			{
				"text": "Which point lies on y = 2x + 3?",
				"options": ["(0, 2)", "(1, 5)", "(2, 5)", "(3, 2)"],
				"correct_index": 1,
				"explanation": "2*1 + 3 = 5."
			}
		]
	}`)
}

func testConcept() concept.Concept {
	return concept.Concept{
		ID:            "linear-equations",
		Name:          "Linear Equations",
		Description:   "Equations of the form y = mx + b",
		Prerequisites: []string{"algebra-basics"},
	}
}

func TestGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	svc := NewService(mock, DefaultConfig())

	quiz, err := svc.GenerateQuiz(context.Background(), QuizInput{
		Concept:      testConcept(),
		MasteryLevel: 55,
	})
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if quiz.ConceptID != "linear-equations" {
		t.Errorf("concept id = %q", quiz.ConceptID)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(quiz.Questions))
	}
	if quiz.Questions[1].CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1", quiz.Questions[1].CorrectIndex)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request did not carry the quiz schema")
	}
	if !strings.Contains(req.Messages[0].Content, "mastery level: 55") {
		t.Errorf("prompt missing mastery level: %s", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "Write 5 multiple-choice questions") {
		t.Errorf("prompt missing default question count: %s", req.Messages[0].Content)
	}
}

func TestGenerateQuiz_RejectsBadShape(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no questions", `{"title": "Empty", "questions": []}`},
		{"three options", `{"title": "Bad", "questions": [{"text": "q", "options": ["a","b","c"], "correct_index": 0, "explanation": "e"}]}`},
		{"index out of range", `{"title": "Bad", "questions": [{"text": "q", "options": ["a","b","c","d"], "correct_index": 4, "explanation": "e"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tc.content)})
			svc := NewService(mock, DefaultConfig())

			_, err := svc.GenerateQuiz(context.Background(), QuizInput{Concept: testConcept()})
			if !errs.Is(err, errs.CodeInvalidArgument) {
				t.Fatalf("err = %v, want CodeInvalidArgument", err)
			}
		})
	}
}

func TestGenerateQuiz_FreeformRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"here is a quiz about equations..."`),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateQuiz(context.Background(), QuizInput{Concept: testConcept()})
	if !errs.Is(err, errs.CodeInvalidArgument) {
		t.Fatalf("err = %v, want CodeInvalidArgument", err)
	}
}

func TestGenerateSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text": "A line has a slope and an intercept.", "key_points": ["m is the slope", "b is the intercept"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	sum, err := svc.GenerateSummary(context.Background(), SummaryInput{
		Concept:      testConcept(),
		MasteryLevel: 30,
		LastRating:   "hard",
	})
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if len(sum.KeyPoints) != 2 {
		t.Errorf("key points = %d, want 2", len(sum.KeyPoints))
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "rating: hard") {
		t.Errorf("prompt missing last rating: %s", mock.Calls[0].Messages[0].Content)
	}
}

func TestGenerateFurtherReading(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items": [{"title": "Systems of equations", "reason": "Natural next step after single equations."}]}`),
	})
	svc := NewService(mock, DefaultConfig())

	list, err := svc.GenerateFurtherReading(context.Background(), SummaryInput{
		Concept:      testConcept(),
		MasteryLevel: 70,
	})
	if err != nil {
		t.Fatalf("GenerateFurtherReading: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Title != "Systems of equations" {
		t.Errorf("items = %+v", list.Items)
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> unavailable
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateQuiz(context.Background(), QuizInput{Concept: testConcept()})
	if err == nil {
		t.Fatal("expected provider error")
	}
}
