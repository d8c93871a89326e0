// Package advice turns the analytics snapshot into personalised study
// recommendations via an LLM. Generation is best-effort: without a
// provider the insights screen simply shows the raw numbers.
package advice

import "github.com/abhisek/physiz/internal/analytics"

// Input carries everything the prompt needs.
type Input struct {
	Snapshot analytics.Snapshot
	// ExamDate is free text like "June 2026"; empty when unknown.
	ExamDate string
}

// Priority is one recommended focus area.
type Priority struct {
	TopicTitle   string
	SectionTitle string
	Reason       string
	Suggestion   string
}

// Advice is the generated study recommendation set.
type Advice struct {
	Summary    string
	Priorities []Priority
	WeeklyPlan []string
}

// Config holds advice generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for advice generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.5,
	}
}
