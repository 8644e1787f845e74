package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/report"
)

var playerCmd = &cobra.Command{
	Use:   "player <mlbam-id>",
	Short: "Show a player's stored stats across all batches",
	Long: `Roll every stored batch for the player up into one arsenal view
(counts summed, means weighted by pitch count) and list any stored
swing-decision scores.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	playerID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid player id %q", args[0])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	types, err := db.GetPlayerPitchTypes(playerID)
	if err != nil {
		return fmt.Errorf("get pitch types: %w", err)
	}
	scores, err := db.GetDecisionScores(playerID)
	if err != nil {
		return fmt.Errorf("get scores: %w", err)
	}

	if len(types) == 0 && len(scores) == 0 {
		fmt.Fprintf(os.Stdout, "Nothing stored for player %d.\n", playerID)
		return nil
	}

	if len(types) > 0 {
		total := 0
		for _, ts := range types {
			total += ts.Count
		}
		fmt.Fprintf(os.Stdout, "\n--- Arsenal (all stored batches, %d pitches) ---\n\n", total)
		report.PrintPitchTypeTable(os.Stdout, types)
	}
	if len(scores) > 0 {
		fmt.Fprintf(os.Stdout, "\n--- Decision scores ---\n\n")
		report.PrintDecisionScores(os.Stdout, scores)
	}
	return nil
}
