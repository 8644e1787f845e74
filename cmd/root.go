package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "pitchmetrics",
	Short: "Statcast pitch metrics tool",
	Long:  "Ingest per-pitch Statcast data and compute pitch arsenal aggregates and swing-decision scores.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".pitchmetrics", "metrics.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", os.Getenv("PITCHMETRICS_CONFIG"), "path to YAML config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(decisionsCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
