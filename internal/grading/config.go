package grading

// Config holds grading request parameters.
type Config struct {
	// MaxTokens is the response budget for a verdict.
	MaxTokens int

	// Temperature stays at zero: grading wants determinism, not flair.
	// The flair lives in the feedback wording the prompt asks for.
	Temperature float64
}

// DefaultConfig returns the standard grading parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0,
	}
}
