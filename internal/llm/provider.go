package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts one LLM backend. Sentence generation and grading
// both program against it; which backend is live comes from config.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema the returned Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is one prompt to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages holds the conversation turns. Both generation and
	// grading are single-turn, so this is usually one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validate the reply. When nil, Content is the
	// raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON shape the model must produce.
type Schema struct {
	// Name identifies the schema to the provider API. Kebab-case, like
	// "grade-verdict" or "sentence-batch".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output, schema-validated when the
	// request carried a Schema.
	Content json.RawMessage

	// Usage is the token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage is token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
