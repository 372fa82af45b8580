package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // direct ID
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	// Same shape as the grading verdict schema plus an array field.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{"type": "boolean"},
			"feedback":   map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
			"sentences": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"is_correct", "feedback"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["is_correct"].Type != "BOOLEAN" {
		t.Fatalf("expected BOOLEAN for is_correct, got %s", schema.Properties["is_correct"].Type)
	}
	if schema.Properties["feedback"].Type != "STRING" {
		t.Fatalf("expected STRING for feedback, got %s", schema.Properties["feedback"].Type)
	}
	if len(schema.Properties["confidence"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["confidence"].Enum))
	}
	if schema.Properties["sentences"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for sentences, got %s", schema.Properties["sentences"].Type)
	}
	if schema.Properties["sentences"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for sentences items, got %s", schema.Properties["sentences"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
