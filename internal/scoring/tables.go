package scoring

// Count situations, in strict classification priority order: a 3-0 count is
// never "two_strike", and 3-2 outranks the generic two-strike bucket.
type countSituation int

const (
	count30 countSituation = iota
	count32
	count31
	countTwoStrike
	countRegular
)

// zoneType buckets the provider's zone numbering: 1-9 is the rule-book
// strike zone, 11-19 the shadow border, 21+ the chase region.
type zoneType int

const (
	zoneStrike zoneType = iota
	zoneShadow
	zoneChase
)

func classifyZone(zone int) zoneType {
	switch {
	case zone >= 1 && zone <= 9:
		return zoneStrike
	case zone >= 11 && zone <= 19:
		return zoneShadow
	default:
		return zoneChase
	}
}

func classifyCount(balls, strikes int) countSituation {
	switch {
	case balls == 3 && strikes == 0:
		return count30
	case balls == 3 && strikes == 2:
		return count32
	case balls == 3 && strikes == 1:
		return count31
	case strikes == 2:
		return countTwoStrike
	default:
		return countRegular
	}
}

// Decision point tables, indexed by countSituation. These are calibration
// artifacts carried over verbatim; they are not derivable from first
// principles and must not be recomputed.
var (
	strikeSwingPts = [5]float64{40, 85, 70, 85, 75}
	strikeTakePts  = [5]float64{90, 20, 55, 15, 45}

	shadowSwingPts = [5]float64{20, 70, 45, 70, 50}
	shadowTakePts  = [5]float64{95, 45, 70, 40, 65}

	chaseSwingPts = [5]float64{5, 35, 15, 35, 20}
	chaseTakePts  = [5]float64{100, 75, 90, 75, 85}
)

func decisionPoints(zt zoneType, swung bool, cs countSituation) float64 {
	switch zt {
	case zoneStrike:
		if swung {
			return strikeSwingPts[cs]
		}
		return strikeTakePts[cs]
	case zoneShadow:
		if swung {
			return shadowSwingPts[cs]
		}
		return shadowTakePts[cs]
	default:
		if swung {
			return chaseSwingPts[cs]
		}
		return chaseTakePts[cs]
	}
}
