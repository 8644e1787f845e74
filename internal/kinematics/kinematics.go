// Package kinematics derives physical quantities not present directly in the
// upstream feeds: induced break in inches, vertical approach angle at the
// front of the plate, and the arm-side sign convention.
package kinematics

import (
	"math"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// BreakConvention covers the unit/sign asymmetry between the two feeds.
//
// The batch CSV export reports horizontal break in feet in catcher's-eye
// convention (positive toward first base); the game feed reports pitcher's-eye
// feet. Canonical output is inches with positive meaning arm side, which
// requires a negation for the batch dialect and none for the game feed. The
// two cases are kept as distinct variants resolved once per batch.
type BreakConvention int

const (
	ConventionBatchCSV BreakConvention = iota
	ConventionGameFeed
)

// ConventionFor resolves the break convention for a feed source.
func ConventionFor(src model.FeedSource) BreakConvention {
	if src == model.SourceGameFeed {
		return ConventionGameFeed
	}
	return ConventionBatchCSV
}

// Breaks converts raw break components (feet, source convention) to inches
// in canonical orientation. Either input may be nil and passes through as nil.
func (c BreakConvention) Breaks(hRaw, vRaw *float64) (hIn, vIn *float64) {
	if hRaw != nil {
		h := *hRaw * 12
		if c == ConventionBatchCSV {
			h = -h
		}
		hIn = &h
	}
	if vRaw != nil {
		v := *vRaw * 12
		vIn = &v
	}
	return hIn, vIn
}

// plateFrontY is the distance in feet from the plate origin to the front
// edge of home plate, where approach angle is evaluated.
const plateFrontY = 1.417

// PlateApproachAngle solves the kinematic equations of motion for the
// vertical approach angle in degrees at the front of the plate.
//
// Time to the plate is the smaller root of
// releaseY + vy0*t + 0.5*ay*t² = plateFrontY. Returns nil when any required
// field is missing, when ay is zero, or when the discriminant is negative.
func PlateApproachAngle(p model.RawPitch) *float64 {
	if p.VZ0 == nil || p.VY0 == nil || p.AY == nil || p.AZ == nil || p.ReleaseY == nil {
		return nil
	}
	vy0, vz0, ay, az := *p.VY0, *p.VZ0, *p.AY, *p.AZ
	if ay == 0 {
		return nil
	}
	disc := vy0*vy0 + 2*ay*(plateFrontY-*p.ReleaseY)
	if disc < 0 {
		return nil
	}
	t := (-vy0 - math.Sqrt(disc)) / ay
	vyPlate := vy0 + ay*t
	vzPlate := vz0 + az*t
	deg := math.Atan2(vzPlate, math.Abs(vyPlate)) * 180 / math.Pi
	return &deg
}

// ReleaseApproachAngle is the coarse fallback used when the feed lacks
// acceleration components: the angle of the release velocity vector itself.
func ReleaseApproachAngle(p model.RawPitch) *float64 {
	if p.VZ0 == nil || p.VY0 == nil {
		return nil
	}
	deg := math.Atan2(*p.VZ0, math.Abs(*p.VY0)) * 180 / math.Pi
	return &deg
}

// ApproachAngle prefers the full plate-crossing solution and falls back to
// the release-vector approximation when acceleration data is unavailable.
func ApproachAngle(p model.RawPitch) *float64 {
	if vaa := PlateApproachAngle(p); vaa != nil {
		return vaa
	}
	if p.AY == nil || p.AZ == nil || p.ReleaseY == nil {
		return ReleaseApproachAngle(p)
	}
	return nil
}

// ArmSideSign maps pitcher handedness to the sign that makes positive
// horizontal break mean "arm side" when rendered directionally.
func ArmSideSign(throws string) float64 {
	if throws == "L" {
		return -1
	}
	return 1
}
