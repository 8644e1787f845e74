package scoring

import (
	"reflect"
	"testing"

	"github.com/pable/go-pitch-metrics/internal/aggregate"
	"github.com/pable/go-pitch-metrics/internal/model"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func zonedPitch(zone, balls, strikes int, outcome string) model.RawPitch {
	return model.RawPitch{
		Source:  model.SourceBatchCSV,
		Outcome: outcome,
		Zone:    ip(zone),
		Balls:   ip(balls),
		Strikes: ip(strikes),
	}
}

func TestClassifyCount(t *testing.T) {
	cases := []struct {
		balls, strikes int
		want           countSituation
	}{
		{3, 0, count30},
		{3, 2, count32}, // full count must not fall into the two-strike bucket
		{3, 1, count31},
		{0, 2, countTwoStrike},
		{1, 2, countTwoStrike},
		{2, 2, countTwoStrike},
		{0, 0, countRegular},
		{2, 1, countRegular},
	}
	for _, c := range cases {
		if got := classifyCount(c.balls, c.strikes); got != c.want {
			t.Errorf("classifyCount(%d, %d) = %d, want %d", c.balls, c.strikes, got, c.want)
		}
	}
}

func TestClassifyZone(t *testing.T) {
	cases := []struct {
		zone int
		want zoneType
	}{
		{1, zoneStrike}, {5, zoneStrike}, {9, zoneStrike},
		{11, zoneShadow}, {19, zoneShadow},
		{10, zoneChase}, {21, zoneChase}, {99, zoneChase},
	}
	for _, c := range cases {
		if got := classifyZone(c.zone); got != c.want {
			t.Errorf("classifyZone(%d) = %d, want %d", c.zone, got, c.want)
		}
	}
}

func TestTroutPlus_SampleGate(t *testing.T) {
	var pitches []model.RawPitch
	for i := 0; i < 9; i++ {
		pitches = append(pitches, zonedPitch(5, 0, 0, "called_strike"))
	}
	got := TroutPlus(pitches, aggregate.ZoneBaseline{})
	if got.Score != nil || got.Raw != nil {
		t.Errorf("9 zoned pitches must not score: %+v", got)
	}
	if got.Pitches != 9 {
		t.Errorf("Pitches = %d, want 9", got.Pitches)
	}

	pitches = append(pitches, zonedPitch(5, 0, 0, "called_strike"))
	got = TroutPlus(pitches, aggregate.ZoneBaseline{})
	if got.Score == nil {
		t.Fatal("10 zoned pitches must produce a score")
	}
}

// TestTroutPlus_ScoreValue: 10 in-zone swings in regular counts are worth 75
// points each, so the standardized score is 100 + (75 - 66.8) / 2 * 10 = 141.
func TestTroutPlus_ScoreValue(t *testing.T) {
	var pitches []model.RawPitch
	for i := 0; i < 10; i++ {
		pitches = append(pitches, zonedPitch(5, 1, 1, "swinging_strike"))
	}
	// Unzoned and count-less pitches are skipped, not scored as zeros.
	pitches = append(pitches, model.RawPitch{Source: model.SourceBatchCSV, Outcome: "ball"})

	got := TroutPlus(pitches, aggregate.ZoneBaseline{})
	if got.Pitches != 10 {
		t.Fatalf("Pitches = %d, want 10", got.Pitches)
	}
	if *got.Raw != 75.0 {
		t.Errorf("Raw = %v, want 75.0", *got.Raw)
	}
	if *got.Score != 141 {
		t.Errorf("Score = %d, want 141", *got.Score)
	}
}

func hotBaseline(zone int) aggregate.ZoneBaseline {
	return aggregate.ZoneBaseline{
		ZoneMean:     map[int]float64{zone: 0.330},
		ZoneCount:    map[int]int{zone: 5},
		OverallMean:  0.250,
		OverallCount: 10,
	}
}

// TestTroutPlus_HotZoneBonus: an in-zone swing in a hot zone gets +5, and
// the bonus never applies to takes or to shadow-zone swings.
func TestTroutPlus_HotZoneBonus(t *testing.T) {
	swings := make([]model.RawPitch, 10)
	for i := range swings {
		swings[i] = zonedPitch(5, 1, 1, "swinging_strike")
	}

	plain := TroutPlus(swings, aggregate.ZoneBaseline{})
	hot := TroutPlus(swings, hotBaseline(5))
	if *hot.Raw-*plain.Raw != 5.0 {
		t.Errorf("hot-zone raw delta = %v, want 5.0", *hot.Raw-*plain.Raw)
	}

	takes := make([]model.RawPitch, 10)
	for i := range takes {
		takes[i] = zonedPitch(5, 1, 1, "called_strike")
	}
	if got := TroutPlus(takes, hotBaseline(5)); *got.Raw != strikeTakePts[countRegular] {
		t.Errorf("takes must not earn the bonus: raw = %v", *got.Raw)
	}

	// Insufficient zone samples disables the bonus.
	thin := hotBaseline(5)
	thin.ZoneCount[5] = 4
	if got := TroutPlus(swings, thin); *got.Raw != *plain.Raw {
		t.Errorf("thin zone sample must not earn the bonus: raw = %v", *got.Raw)
	}
}

func TestTroutPlus_Deterministic(t *testing.T) {
	var pitches []model.RawPitch
	outcomes := []string{"swinging_strike", "called_strike", "foul", "ball", "hit_into_play"}
	for i := 0; i < 20; i++ {
		pitches = append(pitches, zonedPitch(1+i%9, i%4, i%3, outcomes[i%len(outcomes)]))
	}
	first := TroutPlus(pitches, hotBaseline(3))
	second := TroutPlus(pitches, hotBaseline(3))
	if *first.Raw != *second.Raw || *first.Score != *second.Score {
		t.Errorf("scores differ across runs: %+v vs %+v", first, second)
	}
}

func TestZoneDecisionPlus_SampleGate(t *testing.T) {
	var pitches []model.RawPitch
	for i := 0; i < 49; i++ {
		pitches = append(pitches, zonedPitch(5, 0, 0, "swinging_strike"))
	}
	// Shadow-zone pitches do not count toward the in-zone gate.
	pitches = append(pitches, zonedPitch(11, 0, 0, "swinging_strike"))

	got := ZoneDecisionPlus(pitches)
	if got.Score != nil {
		t.Errorf("49 in-zone pitches must not score: %+v", got)
	}
	if got.Pitches != 49 {
		t.Errorf("Pitches = %d, want 49", got.Pitches)
	}
}

// TestZoneDecisionPlus_ScoreValue: 50 swings in one zone averaging .350
// batted-ball value. The zone is worth (.350 - .250) * 1000 = 100 points per
// decision, all 50 decisions are swings, so raw = 5000 and the standardized
// score is 100 + 5000 / 10 = 600.
func TestZoneDecisionPlus_ScoreValue(t *testing.T) {
	var pitches []model.RawPitch
	for i := 0; i < 50; i++ {
		p := zonedPitch(5, 0, 0, "swinging_strike")
		p.BattedBallValue = fp(0.350)
		pitches = append(pitches, p)
	}

	got := ZoneDecisionPlus(pitches)
	if got.Pitches != 50 {
		t.Fatalf("Pitches = %d, want 50", got.Pitches)
	}
	if *got.Raw != 5000.0 {
		t.Errorf("Raw = %v, want 5000", *got.Raw)
	}
	if *got.Score != 600 {
		t.Errorf("Score = %d, want 600", *got.Score)
	}
}

// TestZoneDecisionPlus_TakesInColdZone: taking in a below-average zone scores
// positive, because the differential is negative and takes subtract it.
func TestZoneDecisionPlus_TakesInColdZone(t *testing.T) {
	var pitches []model.RawPitch
	for i := 0; i < 50; i++ {
		p := zonedPitch(9, 0, 0, "ball") // take
		p.BattedBallValue = fp(0.150)
		pitches = append(pitches, p)
	}

	got := ZoneDecisionPlus(pitches)
	// diff = (.150 - .250) * 1000 = -100 per decision; 50 takes → +5000.
	if *got.Raw != 5000.0 {
		t.Errorf("Raw = %v, want 5000", *got.Raw)
	}
}

// TestZoneDecisionPlus_ThinValueZoneSkipped: a zone with fewer than 5
// batted-ball samples contributes nothing even when its pitches count
// toward the gate.
func TestZoneDecisionPlus_ThinValueZoneSkipped(t *testing.T) {
	var pitches []model.RawPitch
	for i := 0; i < 50; i++ {
		p := zonedPitch(5, 0, 0, "swinging_strike")
		if i < 4 {
			p.BattedBallValue = fp(0.500)
		}
		pitches = append(pitches, p)
	}

	got := ZoneDecisionPlus(pitches)
	if *got.Raw != 0.0 {
		t.Errorf("Raw = %v, want 0 with only 4 valued samples", *got.Raw)
	}
	if *got.Score != 100 {
		t.Errorf("Score = %d, want 100", *got.Score)
	}
}

func TestScorersDoNotMutateInput(t *testing.T) {
	p := zonedPitch(5, 1, 1, "swinging_strike")
	p.BattedBallValue = fp(0.400)
	pitches := []model.RawPitch{p}
	snapshot := make([]model.RawPitch, len(pitches))
	copy(snapshot, pitches)

	TroutPlus(pitches, hotBaseline(5))
	ZoneDecisionPlus(pitches)

	if !reflect.DeepEqual(pitches, snapshot) {
		t.Error("scoring mutated its input pitches")
	}
}
