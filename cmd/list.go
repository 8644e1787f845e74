package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored batches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	batches, err := db.ListBatches()
	if err != nil {
		return fmt.Errorf("list batches: %w", err)
	}
	if len(batches) == 0 {
		fmt.Fprintln(os.Stdout, "No batches stored yet. Run 'pitchmetrics fetch' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %-8s  %-10s  %-10s  %7s\n",
		"ID", "PLAYER", "ROLE", "SOURCE", "DATE", "PITCHES")
	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %-8s  %-10s  %-10s  %7s\n",
		"--------------", "--------------------", "--------", "----------", "----------", "-------")
	for _, b := range batches {
		name := b.PlayerName
		if name == "" {
			name = fmt.Sprintf("#%d", b.PlayerID)
		}
		fmt.Fprintf(os.Stdout, "%-14s  %-20s  %-8s  %-10s  %-10s  %7d\n",
			b.ID[:12], name, b.Role, b.Source, b.StartDate, b.TotalPitches)
	}
	return nil
}
