package sentencegen

// Config holds sentence generation parameters.
type Config struct {
	// BatchSize is the number of sentences requested per refill.
	BatchSize int

	// LowWater is the queue length at which a refill is triggered.
	LowWater int

	// MinWords/MaxWords bound accepted sentence length. Out-of-range
	// sentences from the model are dropped during normalization.
	MinWords int
	MaxWords int

	// MaxTokens is the response budget for a batch request.
	MaxTokens int

	// Temperature controls generation variety. Sentences want variety,
	// so this runs hot compared to grading.
	Temperature float64
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		BatchSize:   5,
		LowWater:    2,
		MinWords:    6,
		MaxWords:    12,
		MaxTokens:   512,
		Temperature: 1.0,
	}
}
