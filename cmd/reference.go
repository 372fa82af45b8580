package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/grammiz/internal/drill"
	"github.com/spf13/cobra"
)

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Show the drill reference tables",
}

var referenceStagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the five drill stages",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-12s  %s\n", "Stage", "Focus")
		fmt.Println(strings.Repeat("─", 44))
		for _, stage := range drill.StageOrder {
			fmt.Printf("%-12s  %s\n", stage, stage.Focus())
		}
	},
}

var referencePosCmd = &cobra.Command{
	Use:   "pos",
	Short: "List the parts of speech and their sub-types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, pos := range drill.PartsOfSpeech {
			fmt.Printf("%s (%s)\n", pos, pos.Abbrev())
			subs := drill.SubTypesFor(pos)
			if len(subs) == 0 {
				fmt.Println("  (no sub-types)")
				continue
			}
			for _, sub := range subs {
				fmt.Printf("  %s\n", sub)
			}
		}
	},
}

func init() {
	referenceCmd.AddCommand(referenceStagesCmd)
	referenceCmd.AddCommand(referencePosCmd)
}
