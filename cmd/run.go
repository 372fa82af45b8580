package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/grammiz/internal/app"
	"github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/grading"
	"github.com/abhisek/grammiz/internal/hype"
	"github.com/abhisek/grammiz/internal/llm"
	"github.com/abhisek/grammiz/internal/sentencegen"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}
	opts := app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Sentence generation and grading will be unavailable.")
	} else {
		opts.Pool = sentencegen.NewPool(
			sentencegen.New(provider, sentencegen.DefaultConfig()),
			drill.DifficultyMedium,
			sentencegen.DefaultConfig(),
		)
		opts.Grader = grading.New(provider, grading.DefaultConfig())
	}

	// Phonk tracks need Gemini TTS specifically; every other feature
	// works with whichever provider was configured.
	key := os.Getenv("GRAMMIZ_GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key != "" {
		if src, err := hype.NewGeminiSource(ctx, key); err == nil {
			opts.HypeService = hype.NewService(src)
		}
	}

	return app.Run(opts)
}
