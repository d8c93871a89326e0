package advice

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/physiz/internal/analytics"
	"github.com/abhisek/physiz/internal/llm"
	"github.com/abhisek/physiz/internal/spec"
)

func validAdviceJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "You have audited under half the specification and mechanics needs the most work.",
		"priorities": [
			{
				"topic_title": "Momentum and Impulse",
				"section_title": "Newton's Laws and Momentum",
				"reason": "Rated 1 out of 5 and fundamental for Paper 1.",
				"suggestion": "Work through collision problems with explicit momentum tables."
			}
		],
		"weekly_plan": [
			"Two sessions on momentum problems",
			"One quick pass over strong wave topics"
		]
	}`)
}

func testInput() Input {
	return Input{
		Snapshot: analytics.Snapshot{
			Overview: analytics.Overview{TotalTopics: 10, AssessedTopics: 4, Progress: 40, AverageConfidence: 3},
			CriticalTopics: []analytics.TopicInsight{
				{Topic: spec.Topic{ID: "3.4.1.6a", Title: "Momentum and Impulse"}, SectionTitle: "Newton's Laws and Momentum", Level: 1},
			},
		},
		ExamDate: "June 2026",
	}
}

func TestService_GeneratesAdvice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAdviceJSON()})
	svc := NewService(mock, DefaultConfig())

	advice, err := svc.Generate(t.Context(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if advice.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(advice.Priorities) != 1 || advice.Priorities[0].TopicTitle != "Momentum and Impulse" {
		t.Errorf("priorities = %+v", advice.Priorities)
	}
	if len(advice.WeeklyPlan) != 2 {
		t.Errorf("weekly plan len = %d, want 2", len(advice.WeeklyPlan))
	}
}

func TestService_LLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), testInput()); err == nil {
		t.Error("expected error from provider failure")
	}
}

func TestService_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), testInput()); err == nil {
		t.Error("expected parse error")
	}
}

func TestService_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAdviceJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), testInput()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "study-advice" {
		t.Error("expected schema name 'study-advice'")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Momentum and Impulse", "4 of 10", "June 2026"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
