package advice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/physiz/internal/llm"
)

// Service generates study advice from an analytics snapshot. Calls are
// synchronous; the TUI wraps Generate in a command to stay responsive.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an advice generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces structured study advice for the given audit state.
func (s *Service) Generate(ctx context.Context, input Input) (*Advice, error) {
	return s.generate(ctx, input)
}

type adviceOutput struct {
	Summary    string           `json:"summary"`
	Priorities []priorityOutput `json:"priorities"`
	WeeklyPlan []string         `json:"weekly_plan"`
}

type priorityOutput struct {
	TopicTitle   string `json:"topic_title"`
	SectionTitle string `json:"section_title"`
	Reason       string `json:"reason"`
	Suggestion   string `json:"suggestion"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Advice, error) {
	ctx = llm.WithPurpose(ctx, "study-advice")

	req := llm.Request{
		System: adviceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdviceUserMessage(input)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}

	advice := &Advice{
		Summary:    out.Summary,
		WeeklyPlan: out.WeeklyPlan,
	}
	for _, p := range out.Priorities {
		advice.Priorities = append(advice.Priorities, Priority(p))
	}
	return advice, nil
}
