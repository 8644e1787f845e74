// Package scoring implements the two composite swing-decision ratings.
// Both scorers are pure functions of their input population: no clock, no
// randomness, no mutation of the pitches passed in.
package scoring

import (
	"math"

	"github.com/pable/go-pitch-metrics/internal/aggregate"
	"github.com/pable/go-pitch-metrics/internal/classify"
	"github.com/pable/go-pitch-metrics/internal/model"
)

// Trout+ calibration. The mean and scale are fixed population constants from
// the original calibration run, not something to re-derive per request.
const (
	troutMinPitches = 10
	troutCalibMean  = 66.8
	troutCalibScale = 2.0

	// Hot-zone bonus gate: the batter's mean batted-ball value in the zone
	// must beat their overall mean by this margin, with minimum samples.
	hotZoneMargin     = 0.030
	hotZoneMinSamples = 5
	hotZoneMinOverall = 10
	hotZoneSwingBonus = 5.0
)

// TroutPlus scores a batter's swing decisions over every zoned pitch in the
// population. The baseline is the same batter's per-zone expected-value
// aggregate (see aggregate.BuildZoneBaseline); it drives the in-zone
// hot-zone bonus only.
//
// Fewer than 10 zoned pitches yields a nil score with the sample count
// still reported.
func TroutPlus(pitches []model.RawPitch, baseline aggregate.ZoneBaseline) model.DecisionScore {
	sum := 0.0
	n := 0
	for _, p := range pitches {
		if p.Zone == nil || *p.Zone < 1 || p.Balls == nil || p.Strikes == nil {
			continue
		}
		zt := classifyZone(*p.Zone)
		cs := classifyCount(*p.Balls, *p.Strikes)
		swung := classify.ForSource(p.Source).Classify(p.Outcome).IsSwing

		pts := decisionPoints(zt, swung, cs)
		if swung && zt == zoneStrike && isHotZone(*p.Zone, baseline) {
			pts += hotZoneSwingBonus
		}
		sum += pts
		n++
	}

	score := model.DecisionScore{Model: model.ModelTroutPlus, Pitches: n}
	if n < troutMinPitches {
		return score
	}
	mean := sum / float64(n)
	raw := math.Round(mean*10) / 10
	std := int(math.Round(100 + (mean-troutCalibMean)/troutCalibScale*10))
	score.Raw = &raw
	score.Score = &std
	return score
}

func isHotZone(zone int, b aggregate.ZoneBaseline) bool {
	if b.OverallCount < hotZoneMinOverall || b.ZoneCount[zone] < hotZoneMinSamples {
		return false
	}
	return b.ZoneMean[zone] >= b.OverallMean+hotZoneMargin
}
