package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/grammiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show drill statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		snap, err := s.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			fmt.Printf("Difficulty:           %s\n", snap.Data.Difficulty)
			fmt.Printf("Sentences completed:  %d\n", snap.Data.SentencesCompleted)
			fmt.Println()
		}

		repo, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		stats, err := repo.StageAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query stage accuracy: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No drills recorded yet.")
			return nil
		}

		fmt.Printf("%-12s  %8s  %8s  %9s\n", "Stage", "Attempts", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 44))
		for _, st := range stats {
			fmt.Printf("%-12s  %8d  %8d  %8.0f%%\n",
				st.Stage, st.Attempts, st.Correct, st.Accuracy()*100)
		}
		return nil
	},
}
