package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/aggregate"
	"github.com/pable/go-pitch-metrics/internal/feed"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/report"
)

var (
	analyzeSource string
	analyzePlayer int
	analyzeName   string
	analyzeGame   int
	analyzeDate   string
	analyzeStore  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <pitches-file>",
	Short: "Aggregate a local pitch data file",
	Long: `Parse a local pitch data file (bulk CSV export or game feed JSON),
compute the per-pitch-type arsenal, and print it. With --store the result
is also written to the database.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSource, "source", "batch-csv", "input dialect: batch-csv or game-feed")
	analyzeCmd.Flags().IntVar(&analyzePlayer, "pitcher", 0, "pitcher MLBAM id (required for game-feed input)")
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "player display name stored with the batch")
	analyzeCmd.Flags().IntVar(&analyzeGame, "game", 0, "game pk (game-feed input)")
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "date label stored with the batch (YYYY-MM-DD)")
	analyzeCmd.Flags().BoolVar(&analyzeStore, "store", false, "store the aggregate in the database")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	body, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	source := model.ParseSource(analyzeSource)
	var pitches []model.RawPitch
	if source == model.SourceGameFeed {
		if analyzePlayer == 0 {
			return fmt.Errorf("game-feed input requires --pitcher")
		}
		pitches, err = feed.FromGameFeed(body, analyzeGame, analyzePlayer)
		if err != nil {
			return err
		}
	} else {
		pitches = feed.FromStatcastCSV(string(body))
	}

	arsenal := aggregate.Build(pitches)

	summary := model.BatchSummary{
		PlayerID:   pitcherIDOf(pitches, analyzePlayer),
		PlayerName: analyzeName,
		Role:       "pitcher",
		Source:     source.String(),
		GamePK:     analyzeGame,
		StartDate:  analyzeDate,
		EndDate:    analyzeDate,
	}
	summary.TotalPitches = arsenal.TotalPitches
	summary.StrikePct = arsenal.StrikePct
	summary.SwingMissPct = arsenal.SwingMissPct
	summary.TotalWhiffs = arsenal.TotalWhiffs
	summary.ID = batchID(summary)

	if analyzeStore {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		if _, err := storeArsenal(db, summary, arsenal); err != nil {
			return err
		}
	}

	report.PrintBatchHeader(os.Stdout, summary)
	report.PrintArsenal(os.Stdout, summary, arsenal.PitchTypes)
	return nil
}

// pitcherIDOf prefers the explicit flag and falls back to the first id seen
// in the data.
func pitcherIDOf(pitches []model.RawPitch, flagID int) int {
	if flagID != 0 {
		return flagID
	}
	for _, p := range pitches {
		if p.PitcherID != 0 {
			return p.PitcherID
		}
	}
	return 0
}
