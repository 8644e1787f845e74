package aggregate

import "github.com/pable/go-pitch-metrics/internal/model"

// ZoneBaseline holds per-zone expected-value means for one batter's
// population. It is the empirical "where does this batter do damage" signal
// used by the hot-zone bonus and the in-zone decision score.
type ZoneBaseline struct {
	ZoneMean  map[int]float64 // zone id → mean batted-ball value
	ZoneCount map[int]int     // zone id → batted-ball sample count

	OverallMean  float64 // mean over every zoned batted ball
	OverallCount int
}

// BuildZoneBaseline accumulates batted-ball values per zone. Pitches with no
// zone or no batted-ball value contribute nothing.
func BuildZoneBaseline(pitches []model.RawPitch) ZoneBaseline {
	b := ZoneBaseline{
		ZoneMean:  make(map[int]float64),
		ZoneCount: make(map[int]int),
	}
	sums := make(map[int]float64)
	overallSum := 0.0
	for _, p := range pitches {
		if p.Zone == nil || p.BattedBallValue == nil || *p.Zone < 1 {
			continue
		}
		sums[*p.Zone] += *p.BattedBallValue
		b.ZoneCount[*p.Zone]++
		overallSum += *p.BattedBallValue
		b.OverallCount++
	}
	for z, sum := range sums {
		b.ZoneMean[z] = sum / float64(b.ZoneCount[z])
	}
	if b.OverallCount > 0 {
		b.OverallMean = overallSum / float64(b.OverallCount)
	}
	return b
}
