package classify

import (
	"strings"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// Outcome is the boolean breakdown of a single pitch result.
type Outcome struct {
	IsStrike  bool
	IsSwing   bool
	IsWhiff   bool
	IsContact bool
}

// OutcomeClassifier turns a feed's free-text outcome label into an Outcome.
//
// The two feeds describe the same events with different vocabularies (the
// batch export uses lowercase_underscore, the game feed uses Title Case with
// spaces), so each gets its own classifier. Callers resolve the classifier
// once per batch from the FeedSource tag; outcome strings are never sniffed
// at call sites.
type OutcomeClassifier interface {
	Classify(description string) Outcome
}

// ForSource returns the classifier for a feed.
func ForSource(src model.FeedSource) OutcomeClassifier {
	if src == model.SourceGameFeed {
		return GameFeedOutcomes{}
	}
	return BatchOutcomes{}
}

// BatchOutcomes classifies the bulk CSV export vocabulary:
// "called_strike", "swinging_strike", "swinging_strike_blocked", "foul",
// "foul_tip", "foul_bunt", "bunt_foul_tip", "hit_into_play", "ball", ...
type BatchOutcomes struct{}

// Whiffs are matched exactly: substring matching on "swinging" would also
// catch compound labels like "swinging_pitchout".
var batchWhiffs = map[string]struct{}{
	"swinging_strike":         {},
	"swinging_strike_blocked": {},
}

var batchContact = map[string]struct{}{
	"foul":          {},
	"foul_tip":      {},
	"bunt_foul_tip": {},
	"hit_into_play": {},
}

func (BatchOutcomes) Classify(description string) Outcome {
	d := strings.ToLower(strings.TrimSpace(description))
	var o Outcome
	_, o.IsWhiff = batchWhiffs[d]
	o.IsSwing = o.IsWhiff || strings.Contains(d, "foul") || strings.Contains(d, "hit_into_play")
	o.IsStrike = strings.Contains(d, "strike") || strings.Contains(d, "foul") || strings.Contains(d, "hit_into_play")
	if !o.IsWhiff {
		_, o.IsContact = batchContact[d]
	}
	return o
}

// GameFeedOutcomes classifies the real-time game feed vocabulary:
// "Called Strike", "Swinging Strike", "Swinging Strike (Blocked)", "Foul",
// "Foul Tip", "In play, out(s)", "In play, no out", "In play, run(s)", ...
type GameFeedOutcomes struct{}

var feedWhiffs = map[string]struct{}{
	"swinging strike":           {},
	"swinging strike (blocked)": {},
}

var feedContactExact = map[string]struct{}{
	"foul":          {},
	"foul tip":      {},
	"bunt foul tip": {},
}

func (GameFeedOutcomes) Classify(description string) Outcome {
	d := strings.ToLower(strings.TrimSpace(description))
	var o Outcome
	_, o.IsWhiff = feedWhiffs[d]
	o.IsSwing = o.IsWhiff || strings.Contains(d, "foul") || strings.Contains(d, "in play")
	o.IsStrike = strings.Contains(d, "strike") || strings.Contains(d, "foul") || strings.Contains(d, "in play")
	if !o.IsWhiff {
		if _, ok := feedContactExact[d]; ok {
			o.IsContact = true
		} else if strings.Contains(d, "in play") {
			o.IsContact = true
		}
	}
	return o
}
