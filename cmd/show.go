package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-pitch-metrics/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <id-prefix>",
	Short: "Show a stored batch by id prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	batch, err := db.GetBatchByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query batch: %w", err)
	}
	if batch == nil {
		fmt.Fprintf(os.Stderr, "No batch found with id prefix %q\n", prefix)
		return nil
	}

	types, err := db.GetPitchTypeStats(batch.ID)
	if err != nil {
		return fmt.Errorf("get pitch types: %w", err)
	}

	report.PrintBatchHeader(os.Stdout, *batch)
	report.PrintArsenal(os.Stdout, *batch, types)
	return nil
}
