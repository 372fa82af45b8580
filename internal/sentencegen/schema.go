package sentencegen

import "github.com/abhisek/grammiz/internal/llm"

// BatchSchema defines the JSON schema for sentence batch responses.
var BatchSchema = &llm.Schema{
	Name:        "sentence-batch",
	Description: "A batch of practice sentences for grammar analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentences": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":        "string",
					"description": "One sentence: lowercase words, space separated, no punctuation",
				},
				"description": "The requested number of practice sentences",
			},
		},
		"required":             []any{"sentences"},
		"additionalProperties": false,
	},
}
