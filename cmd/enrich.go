package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/feed"
	"github.com/pable/go-pitch-metrics/internal/statsapi"
)

var enrichSeason int

var enrichCmd = &cobra.Command{
	Use:   "enrich <players.csv>",
	Short: "Bulk-compute decision scores for a list of batters",
	Long: `Read a CSV with player_id and player_name columns and compute both
decision scores for every listed batter. Requests are serialized with a
fixed delay between players to stay under upstream rate limits; a failed
player is reported and skipped, not fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().IntVar(&enrichSeason, "season", 0, "season year (required)")
	_ = enrichCmd.MarkFlagRequired("season")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	body, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read player list: %w", err)
	}
	rows := feed.ParseRows(string(body), feed.DetectDelimiter(string(body)))
	if len(rows) == 0 {
		return fmt.Errorf("no players in %s", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	delay := time.Duration(cfg.EnrichDelayMS) * time.Millisecond

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	done, failed := 0, 0
	for i, row := range rows {
		playerID, err := strconv.Atoi(row["player_id"])
		if err != nil {
			fmt.Fprintf(os.Stderr, "row %d: bad player_id %q, skipping\n", i+1, row["player_id"])
			failed++
			continue
		}
		name := row["player_name"]

		fmt.Fprintf(os.Stdout, "[%d/%d] %s (%d)...", i+1, len(rows), name, playerID)
		pitches, err := client.SearchCSV(ctx, statsapi.SearchQuery{
			PlayerID: playerID,
			Role:     "batter",
			Season:   enrichSeason,
		})
		if err != nil {
			fmt.Fprintf(os.Stdout, " fetch failed: %v\n", err)
			failed++
		} else if err := computeAndStoreScores(db, pitches, playerID, name, enrichSeason); err != nil {
			fmt.Fprintf(os.Stdout, " store failed: %v\n", err)
			failed++
		} else {
			fmt.Fprintf(os.Stdout, " ok (%d pitches)\n", len(pitches))
			done++
		}

		// Fixed pause between players; the upstream rate limits are
		// undocumented and unforgiving.
		if i < len(rows)-1 {
			time.Sleep(delay)
		}
	}

	fmt.Fprintf(os.Stdout, "\nDone: %d scored, %d failed (season %d)\n", done, failed, enrichSeason)
	return nil
}
