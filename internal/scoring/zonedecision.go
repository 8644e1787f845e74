package scoring

import (
	"math"

	"github.com/pable/go-pitch-metrics/internal/classify"
	"github.com/pable/go-pitch-metrics/internal/model"
)

// ZoneDecision+ calibration. The league-average expected value and the
// standardization constants below are placeholders pending a re-derivation
// from a full season of data; they are kept as-is for behavioral parity
// with the historical scores already published.
// TODO: re-derive zdCalibMean/zdCalibScale from a full-season population.
const (
	zdMinPitches  = 50
	zdLeagueValue = 0.250
	zdPointScale  = 1000.0
	zdCalibMean   = 0.0
	zdCalibScale  = 10.0
)

// ZoneDecisionPlus scores a batter's swing/take choices inside the rule-book
// zone only (zones 1-9). Each zone with at least 5 batted-ball samples
// contributes its value differential times swings, minus the same
// differential times takes: swinging where you do damage is rewarded, taking
// there is penalized, and vice versa for cold zones.
//
// Fewer than 50 in-zone pitches yields a nil score with the sample count
// still reported.
func ZoneDecisionPlus(pitches []model.RawPitch) model.DecisionScore {
	type zoneAccum struct {
		pitches  int
		swings   int
		valueSum float64
		valueN   int
	}
	var zones [10]zoneAccum // index 1..9

	total := 0
	for _, p := range pitches {
		if p.Zone == nil || *p.Zone < 1 || *p.Zone > 9 {
			continue
		}
		z := &zones[*p.Zone]
		z.pitches++
		total++
		if classify.ForSource(p.Source).Classify(p.Outcome).IsSwing {
			z.swings++
		}
		if p.BattedBallValue != nil {
			z.valueSum += *p.BattedBallValue
			z.valueN++
		}
	}

	score := model.DecisionScore{Model: model.ModelZoneDecisionPlus, Pitches: total}
	if total < zdMinPitches {
		return score
	}

	rawTotal := 0.0
	for i := 1; i <= 9; i++ {
		z := zones[i]
		if z.valueN < hotZoneMinSamples {
			continue
		}
		diffPts := (z.valueSum/float64(z.valueN) - zdLeagueValue) * zdPointScale
		takes := z.pitches - z.swings
		rawTotal += diffPts*float64(z.swings) - diffPts*float64(takes)
	}

	std := int(math.Round(100 + (rawTotal-zdCalibMean)/zdCalibScale))
	score.Raw = &rawTotal
	score.Score = &std
	return score
}
