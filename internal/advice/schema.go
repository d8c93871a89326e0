package advice

import "github.com/abhisek/physiz/internal/llm"

// AdviceSchema defines the JSON schema for study recommendations.
var AdviceSchema = &llm.Schema{
	Name:        "study-advice",
	Description: "Personalised revision recommendations from a confidence audit",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence overview of where the student stands",
			},
			"priorities": map[string]any{
				"type":        "array",
				"description": "2-4 focus areas ordered by urgency",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic_title": map[string]any{
							"type":        "string",
							"description": "Topic to focus on, taken from the audit data",
						},
						"section_title": map[string]any{
							"type":        "string",
							"description": "Specification section the topic belongs to",
						},
						"reason": map[string]any{
							"type":        "string",
							"description": "Why this is a priority (one sentence)",
						},
						"suggestion": map[string]any{
							"type":        "string",
							"description": "Concrete next step, e.g. a practice method (one sentence)",
						},
					},
					"required":             []any{"topic_title", "section_title", "reason", "suggestion"},
					"additionalProperties": false,
				},
			},
			"weekly_plan": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 bullet points for the coming week of revision",
			},
		},
		"required":             []any{"summary", "priorities", "weekly_plan"},
		"additionalProperties": false,
	},
}
