// Package report renders aggregates and scores as terminal tables.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// PrintBatchHeader prints a one-line summary for a stored batch.
func PrintBatchHeader(w io.Writer, s model.BatchSummary) {
	label := s.StartDate
	if s.EndDate != "" && s.EndDate != s.StartDate {
		label = s.StartDate + ".." + s.EndDate
	}
	if label == "" && s.Season != 0 {
		label = fmt.Sprintf("season %d", s.Season)
	}
	fmt.Fprintf(w, "\nPlayer: %s (%d)  |  %s  |  Source: %s  |  %s  |  ID: %s\n\n",
		s.PlayerName, s.PlayerID, s.Role, s.Source, label, shortID(s.ID))
}

// PrintArsenal prints the per-pitch-type table plus the global line.
func PrintArsenal(w io.Writer, summary model.BatchSummary, types []model.PitchTypeStats) {
	PrintPitchTypeTable(w, types)
	fmt.Fprintf(w, "\nTotal pitches: %d  |  Strike%%: %s  |  SwStr%%: %s  |  Whiffs: %d\n",
		summary.TotalPitches, fmtOpt(summary.StrikePct, 1),
		fmtOpt(summary.SwingMissPct, 1), summary.TotalWhiffs)
}

// PrintPitchTypeTable prints just the per-pitch-type table.
func PrintPitchTypeTable(w io.Writer, types []model.PitchTypeStats) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header(
		"PITCH", "N", "USE%", "VELO", "SPIN", "HB", "IVB", "VAA",
		"REL_X", "REL_Z", "EXT", "STRIKE%", "WHIFF%",
	)
	for _, ts := range types {
		table.Append(
			ts.Name,
			fmt.Sprintf("%d", ts.Count),
			fmt.Sprintf("%.1f", ts.UsagePct),
			fmtOpt(ts.Velocity, 1),
			fmtOpt(ts.Spin, 0),
			fmtOpt(ts.HBreak, 1),
			fmtOpt(ts.VBreak, 1),
			fmtOpt(ts.VAA, 2),
			fmtOpt(ts.ReleaseX, 1),
			fmtOpt(ts.ReleaseZ, 1),
			fmtOpt(ts.Extension, 1),
			fmtOpt(ts.StrikePct, 1),
			fmtOpt(ts.WhiffPct, 1),
		)
	}
	table.Render()
}

// PrintDecisionScores prints one row per stored score.
func PrintDecisionScores(w io.Writer, scores []model.StoredDecision) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("SEASON", "MODEL", "SCORE", "RAW", "PITCHES")
	for _, d := range scores {
		scoreStr := "-"
		if d.Score != nil {
			scoreStr = fmt.Sprintf("%d", *d.Score)
		}
		table.Append(
			fmt.Sprintf("%d", d.Season),
			d.Model,
			scoreStr,
			fmtOpt(d.Raw, 1),
			fmt.Sprintf("%d", d.Pitches),
		)
	}
	table.Render()
}

// fmtOpt renders an optional stat, "-" when absent.
func fmtOpt(p *float64, decimals int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, *p)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
