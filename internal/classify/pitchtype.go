// Package classify maps raw pitch type codes and outcome labels to the
// canonical names and boolean facets the aggregator works with.
package classify

// TypeClass says what a two-letter pitch type code resolved to.
type TypeClass int

const (
	TypeKnown      TypeClass = iota
	TypeSuppressed           // recognized but excluded from all aggregates
	TypeUnknown
)

// pitchNames maps the two-letter Statcast codes to display names.
var pitchNames = map[string]string{
	"FF": "4-Seam Fastball",
	"SI": "Sinker",
	"FC": "Cutter",
	"SL": "Slider",
	"ST": "Sweeper",
	"SV": "Slurve",
	"CU": "Curveball",
	"KC": "Knuckle Curve",
	"CS": "Slow Curve",
	"CH": "Changeup",
	"FS": "Splitter",
	"FO": "Forkball",
	"SC": "Screwball",
	"FA": "Fastball",
}

// suppressedCodes are recognized codes that are dropped from every rollup,
// including the totals denominator. Kept separate from the unknown case so a
// caller can tell "we chose to hide this" from "we have never seen this".
var suppressedCodes = map[string]struct{}{
	"KN": {}, // knuckleball
	"EP": {}, // eephus
}

// PitchType resolves a raw two-letter code. For TypeKnown the display name
// is returned; otherwise the name is empty.
func PitchType(code string) (string, TypeClass) {
	if _, ok := suppressedCodes[code]; ok {
		return "", TypeSuppressed
	}
	if name, ok := pitchNames[code]; ok {
		return name, TypeKnown
	}
	return "", TypeUnknown
}
