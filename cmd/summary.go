package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// summaryCmd displays a high-level database overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the database",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.TotalBatches == 0 && ov.ScoredPlayers == 0 {
		fmt.Fprintln(os.Stdout, "Database is empty. Run 'pitchmetrics fetch' or 'pitchmetrics decisions' to add data.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Database Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Batches stored : %d\n", ov.TotalBatches)
	fmt.Fprintf(os.Stdout, "  Unique players : %d\n", ov.UniquePlayers)
	fmt.Fprintf(os.Stdout, "  Total pitches  : %d\n", ov.TotalPitches)
	if ov.EarliestDate != "" {
		fmt.Fprintf(os.Stdout, "  Date range     : %s .. %s\n", ov.EarliestDate, ov.LatestDate)
	}
	fmt.Fprintf(os.Stdout, "  Scored batters : %d\n", ov.ScoredPlayers)
	return nil
}
