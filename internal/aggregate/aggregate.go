// Package aggregate rolls classified pitches up into per-pitch-type
// statistics and builds the per-zone expected-value baselines the scoring
// package consumes. Everything here is pure: no I/O, no mutation of inputs.
package aggregate

import (
	"math"
	"sort"

	"github.com/pable/go-pitch-metrics/internal/classify"
	"github.com/pable/go-pitch-metrics/internal/kinematics"
	"github.com/pable/go-pitch-metrics/internal/model"
)

// minUsagePct is the display threshold: a pitch type below 1% usage is
// omitted from the output list. Its pitches still count in every
// denominator, so dropping a rare type never shifts the other types' usage.
const minUsagePct = 1.0

// Build computes the full arsenal rollup for a pitch population.
//
// Suppressed and unknown pitch type codes are excluded from TotalPitches and
// every per-type pool before anything else is counted. That also shrinks the
// strike%/whiff% denominators; this mirrors how the rest of the system has
// always reported those numbers and is pinned by tests, so leave it alone.
func Build(pitches []model.RawPitch) model.Arsenal {
	type typeAccum struct {
		name    string
		count   int
		swings  int
		whiffs  int
		strikes int

		velo, spin          []float64
		hBreak, vBreak, vaa []float64
		relX, relZ, ext     []float64
	}

	accums := make(map[string]*typeAccum)
	var order []string

	total := 0
	globalStrikes, globalSwings, globalWhiffs := 0, 0, 0

	for _, p := range pitches {
		name, class := classify.PitchType(p.TypeCode)
		if class != classify.TypeKnown {
			continue
		}
		total++

		outcome := classify.ForSource(p.Source).Classify(p.Outcome)
		if outcome.IsStrike {
			globalStrikes++
		}
		if outcome.IsSwing {
			globalSwings++
		}
		if outcome.IsWhiff {
			globalWhiffs++
		}

		acc := accums[name]
		if acc == nil {
			acc = &typeAccum{name: name}
			accums[name] = acc
			order = append(order, name)
		}
		acc.count++
		if outcome.IsSwing {
			acc.swings++
		}
		if outcome.IsWhiff {
			acc.whiffs++
		}
		if outcome.IsStrike {
			acc.strikes++
		}

		// Each sample list fills independently; a pitch missing one field
		// still contributes the fields it does have.
		appendSample(&acc.velo, p.ReleaseSpeed)
		appendSample(&acc.spin, p.SpinRate)

		hIn, vIn := kinematics.ConventionFor(p.Source).Breaks(p.HBreakRaw, p.VBreakRaw)
		appendSample(&acc.hBreak, hIn)
		appendSample(&acc.vBreak, vIn)
		appendSample(&acc.vaa, kinematics.ApproachAngle(p))

		appendSample(&acc.relX, p.ReleaseX)
		appendSample(&acc.relZ, p.ReleaseZ)
		appendSample(&acc.ext, p.Extension)
	}

	arsenal := model.Arsenal{
		TotalPitches: total,
		TotalWhiffs:  globalWhiffs,
	}
	if total == 0 {
		return arsenal
	}

	for _, name := range order {
		acc := accums[name]
		usage := float64(acc.count) / float64(total) * 100
		if usage < minUsagePct {
			continue // display filter only; acc.count stayed in total
		}

		ts := model.PitchTypeStats{
			Name:     name,
			Count:    acc.count,
			UsagePct: round1(usage),
			Swings:   acc.swings,
			Whiffs:   acc.whiffs,

			Velocity:  meanRounded(acc.velo, 1),
			Spin:      meanRounded(acc.spin, 0),
			HBreak:    meanRounded(acc.hBreak, 1),
			VBreak:    meanRounded(acc.vBreak, 1),
			VAA:       meanRounded(acc.vaa, 2),
			ReleaseX:  meanRounded(acc.relX, 1),
			ReleaseZ:  meanRounded(acc.relZ, 1),
			Extension: meanRounded(acc.ext, 1),
		}
		strikePct := round1(float64(acc.strikes) / float64(acc.count) * 100)
		ts.StrikePct = &strikePct
		if acc.swings > 0 {
			whiffPct := round1(float64(acc.whiffs) / float64(acc.swings) * 100)
			ts.WhiffPct = &whiffPct
		}
		arsenal.PitchTypes = append(arsenal.PitchTypes, ts)
	}

	sort.Slice(arsenal.PitchTypes, func(i, j int) bool {
		if arsenal.PitchTypes[i].UsagePct != arsenal.PitchTypes[j].UsagePct {
			return arsenal.PitchTypes[i].UsagePct > arsenal.PitchTypes[j].UsagePct
		}
		return arsenal.PitchTypes[i].Name < arsenal.PitchTypes[j].Name
	})

	strikePct := round1(float64(globalStrikes) / float64(total) * 100)
	swingMiss := round1(float64(globalWhiffs) / float64(total) * 100)
	arsenal.StrikePct = &strikePct
	arsenal.SwingMissPct = &swingMiss
	return arsenal
}

// Merge backfills a primary arsenal from a fallback one, used when the
// real-time feed and the batch export both covered the same game.
//
// The merge is directional: primary's scalars and type list are
// authoritative. Per pitch type matched by name, only fields that are nil in
// primary are filled from fallback. Types present only in fallback are
// dropped, not appended.
func Merge(primary, fallback model.Arsenal) model.Arsenal {
	fallbackByName := make(map[string]model.PitchTypeStats, len(fallback.PitchTypes))
	for _, ts := range fallback.PitchTypes {
		fallbackByName[ts.Name] = ts
	}

	merged := primary
	merged.PitchTypes = make([]model.PitchTypeStats, len(primary.PitchTypes))
	copy(merged.PitchTypes, primary.PitchTypes)

	for i := range merged.PitchTypes {
		fb, ok := fallbackByName[merged.PitchTypes[i].Name]
		if !ok {
			continue
		}
		backfill(&merged.PitchTypes[i].Velocity, fb.Velocity)
		backfill(&merged.PitchTypes[i].Spin, fb.Spin)
		backfill(&merged.PitchTypes[i].HBreak, fb.HBreak)
		backfill(&merged.PitchTypes[i].VBreak, fb.VBreak)
		backfill(&merged.PitchTypes[i].VAA, fb.VAA)
		backfill(&merged.PitchTypes[i].ReleaseX, fb.ReleaseX)
		backfill(&merged.PitchTypes[i].ReleaseZ, fb.ReleaseZ)
		backfill(&merged.PitchTypes[i].Extension, fb.Extension)
		backfill(&merged.PitchTypes[i].WhiffPct, fb.WhiffPct)
		backfill(&merged.PitchTypes[i].StrikePct, fb.StrikePct)
	}
	return merged
}

func backfill(dst **float64, src *float64) {
	if *dst == nil && src != nil {
		v := *src
		*dst = &v
	}
}

func appendSample(dst *[]float64, v *float64) {
	if v != nil {
		*dst = append(*dst, *v)
	}
}

// meanRounded returns the mean of samples rounded to the given number of
// decimals, or nil for an empty list. Missing data stays nil all the way to
// the caller; zero is a real observed mean, not a placeholder.
func meanRounded(samples []float64, decimals int) *float64 {
	if len(samples) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	m := roundTo(sum/float64(len(samples)), decimals)
	return &m
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func round1(v float64) float64 { return roundTo(v, 1) }
