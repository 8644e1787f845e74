// Package main is the entry point for the pitchmetrics CLI tool, which
// ingests per-pitch Statcast data and computes arsenal aggregates and
// swing-decision scores.
package main

import "github.com/pable/go-pitch-metrics/cmd"

func main() {
	cmd.Execute()
}
