package grading

import "github.com/abhisek/grammiz/internal/llm"

// VerdictSchema defines the JSON schema for grading responses.
var VerdictSchema = &llm.Schema{
	Name:        "grade-verdict",
	Description: "A pass/fail verdict on one stage of grammar analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the analysis is completely accurate",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Hype or helpful feedback in Gen Alpha slang. Use lots of 'skibidi', 'sigma', 'rizz', 'no cap', 'aura'.",
			},
			"correct_data": map[string]any{
				"type":        "string",
				"description": "The expected answer, when worth showing. Empty string otherwise.",
			},
		},
		"required":             []any{"is_correct", "feedback"},
		"additionalProperties": false,
	},
}
