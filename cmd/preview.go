package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/llm"
	"github.com/abhisek/grammiz/internal/sentencegen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated practice sentences (no database)",
	Long: `Generate practice sentences at a given difficulty and print them.

This is a stateless developer tool — no database, no progress tracking, no
events. Useful for evaluating sentence quality and tuning the generation
prompt.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium, or hard")
	previewCmd.Flags().Int("count", 5, "Number of sentences to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	var difficulty drill.Difficulty
	switch drill.Difficulty(diffVal) {
	case drill.DifficultyEasy, drill.DifficultyMedium, drill.DifficultyHard:
		difficulty = drill.Difficulty(diffVal)
	default:
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", diffVal)
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	source := sentencegen.New(provider, sentencegen.DefaultConfig())

	fmt.Printf("Generating %d %s sentences...\n\n", count, difficulty)

	generated := 0
	for generated < count {
		batch, err := source.GenerateBatch(ctx, difficulty, count-generated)
		if err != nil {
			return fmt.Errorf("generate batch: %w", err)
		}
		for _, raw := range batch {
			generated++
			sentence := drill.NewSentence(raw)
			fmt.Printf("%2d. %s  (%d words)\n", generated, sentence.Raw, len(sentence.Words))
			if generated == count {
				break
			}
		}
	}

	return nil
}
