package sentencegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/grammiz/internal/drill"
)

const systemPrompt = `You are a grammar teacher preparing sentences for daily grammar practice.

Rules:
- Every sentence is entirely lowercase with no punctuation of any kind.
- Words are separated by single spaces. No contractions, no numerals, no proper-noun capitalization.
- Each sentence must be a complete grammatical sentence suitable for parts-of-speech tagging, subject/predicate analysis, clause classification, error correction, and diagramming.
- Sentences should be interesting but standard; avoid fragments and avoid poetry.
- Do not repeat sentence structures within a batch.`

// difficultyBrief describes what each difficulty asks the model for.
var difficultyBrief = map[drill.Difficulty]string{
	drill.DifficultyEasy:   "one subject and one verb, simple declarative structure, everyday vocabulary",
	drill.DifficultyMedium: "a prepositional phrase or compound element, some modifiers, varied vocabulary",
	drill.DifficultyHard:   "a dependent clause or compound-complex structure, richer vocabulary, trickier modifiers",
}

// buildUserMessage constructs the batch request for the given difficulty.
func buildUserMessage(difficulty drill.Difficulty, count int, cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d sentences of %d-%d words each.\n", count, cfg.MinWords, cfg.MaxWords)
	fmt.Fprintf(&b, "Difficulty: %s (%s)\n", difficulty.Label(), difficultyBrief[difficulty])
	return b.String()
}
