package sentencegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/llm"
)

// LLMSource implements Source using the LLM provider.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMSource with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before normalization.
type batchOutput struct {
	Sentences []string `json:"sentences"`
}

// GenerateBatch requests count sentences at the given difficulty.
// Model output is normalized and length-filtered; an empty usable batch
// is an error so the caller can fall back.
func (s *LLMSource) GenerateBatch(ctx context.Context, difficulty drill.Difficulty, count int) ([]string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSentenceGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(difficulty, count, s.config)},
		},
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sentence generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse sentence batch: %w", err)
	}

	out := make([]string, 0, len(raw.Sentences))
	for _, sent := range raw.Sentences {
		norm, ok := s.normalize(sent)
		if !ok {
			continue
		}
		out = append(out, norm)
		if len(out) == count {
			break
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("sentence batch contained nothing usable")
	}
	return out, nil
}

// normalize lowercases, strips punctuation, and collapses whitespace.
// It reports false when the result falls outside the word-count bounds.
func (s *LLMSource) normalize(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case unicode.IsLetter(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '\'' || r == '-':
			// Apostrophes and hyphens would split words oddly; drop them
			// and let the surrounding letters join.
		}
	}

	words := strings.Fields(b.String())
	if len(words) < s.config.MinWords || len(words) > s.config.MaxWords {
		return "", false
	}
	return strings.Join(words, " "), true
}
