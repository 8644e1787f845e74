package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/aggregate"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/report"
	"github.com/pable/go-pitch-metrics/internal/scoring"
	"github.com/pable/go-pitch-metrics/internal/statsapi"
	"github.com/pable/go-pitch-metrics/internal/storage"
)

var (
	decisionsBatter int
	decisionsName   string
	decisionsSeason int
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Compute swing-decision scores for a batter season",
	Long: `Download a batter's full-season pitch population from the bulk export
and compute both decision models: Trout+ (all zoned pitches, count- and
zone-weighted) and ZoneDecision+ (rule-book zone only). Scores below the
minimum sample size are stored as null with their sample count.`,
	RunE: runDecisions,
}

func init() {
	decisionsCmd.Flags().IntVar(&decisionsBatter, "batter", 0, "batter MLBAM id (required)")
	decisionsCmd.Flags().StringVar(&decisionsName, "name", "", "player display name stored with the scores")
	decisionsCmd.Flags().IntVar(&decisionsSeason, "season", 0, "season year (required)")
	_ = decisionsCmd.MarkFlagRequired("batter")
	_ = decisionsCmd.MarkFlagRequired("season")
}

func runDecisions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	fmt.Fprintf(os.Stdout, "Fetching season %d for batter %d...\n", decisionsSeason, decisionsBatter)
	pitches, err := client.SearchCSV(context.Background(), statsapi.SearchQuery{
		PlayerID: decisionsBatter,
		Role:     "batter",
		Season:   decisionsSeason,
	})
	if err != nil {
		return fmt.Errorf("fetch bulk export: %w", err)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := computeAndStoreScores(db, pitches, decisionsBatter, decisionsName, decisionsSeason); err != nil {
		return err
	}

	scores, err := db.GetDecisionScores(decisionsBatter)
	if err != nil {
		return fmt.Errorf("get scores: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\nPlayer: %s (%d)\n\n", decisionsName, decisionsBatter)
	report.PrintDecisionScores(os.Stdout, scores)
	return nil
}

// computeAndStoreScores runs both decision models over a batter population
// and upserts the results.
func computeAndStoreScores(db *storage.DB, pitches []model.RawPitch, batterID int, name string, season int) error {
	baseline := aggregate.BuildZoneBaseline(pitches)

	for _, score := range []model.DecisionScore{
		scoring.TroutPlus(pitches, baseline),
		scoring.ZoneDecisionPlus(pitches),
	} {
		d := model.StoredDecision{
			PlayerID:   batterID,
			PlayerName: name,
			Season:     season,
			Model:      score.Model,
			Score:      score.Score,
			Raw:        score.Raw,
			Pitches:    score.Pitches,
		}
		if err := db.UpsertDecisionScore(d); err != nil {
			return fmt.Errorf("store %s: %w", score.Model, err)
		}
	}
	return nil
}
