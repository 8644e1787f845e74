package classify

import "testing"

func TestPitchType_Known(t *testing.T) {
	name, class := PitchType("FF")
	if class != TypeKnown || name != "4-Seam Fastball" {
		t.Errorf("FF -> %q/%v", name, class)
	}
}

func TestPitchType_SuppressedVsUnknown(t *testing.T) {
	// Knuckleball and eephus are recognized but hidden; that is a different
	// answer than a code we have never seen.
	for _, code := range []string{"KN", "EP"} {
		if _, class := PitchType(code); class != TypeSuppressed {
			t.Errorf("%s: expected suppressed, got %v", code, class)
		}
	}
	if _, class := PitchType("ZZ"); class != TypeUnknown {
		t.Errorf("ZZ: expected unknown, got %v", class)
	}
	if _, class := PitchType(""); class != TypeUnknown {
		t.Errorf("empty code: expected unknown, got %v", class)
	}
}

func TestBatchOutcomes(t *testing.T) {
	tests := []struct {
		desc    string
		outcome Outcome
	}{
		{"called_strike", Outcome{IsStrike: true}},
		{"swinging_strike", Outcome{IsStrike: true, IsSwing: true, IsWhiff: true}},
		{"swinging_strike_blocked", Outcome{IsStrike: true, IsSwing: true, IsWhiff: true}},
		{"foul", Outcome{IsStrike: true, IsSwing: true, IsContact: true}},
		{"foul_tip", Outcome{IsStrike: true, IsSwing: true, IsContact: true}},
		{"bunt_foul_tip", Outcome{IsStrike: true, IsSwing: true, IsContact: true}},
		{"hit_into_play", Outcome{IsStrike: true, IsSwing: true, IsContact: true}},
		{"ball", Outcome{}},
		{"blocked_ball", Outcome{}},
		{"hit_by_pitch", Outcome{}},
	}
	c := BatchOutcomes{}
	for _, tt := range tests {
		if got := c.Classify(tt.desc); got != tt.outcome {
			t.Errorf("Classify(%q) = %+v, want %+v", tt.desc, got, tt.outcome)
		}
	}
}

func TestGameFeedOutcomes(t *testing.T) {
	tests := []struct {
		desc    string
		outcome Outcome
	}{
		{"Called Strike", Outcome{IsStrike: true}},
		{"Swinging Strike", Outcome{IsStrike: true, IsSwing: true, IsWhiff: true}},
		{"Swinging Strike (Blocked)", Outcome{IsStrike: true, IsSwing: true, IsWhiff: true}},
		{"Foul", Outcome{IsStrike: true, IsSwing: true, IsContact: true}},
		{"Foul Tip", Outcome{IsStrike: true, IsSwing: true, IsContact: true}},
		{"In play, out(s)", Outcome{IsStrike: true, IsSwing: true, IsContact: true}},
		{"In play, run(s)", Outcome{IsStrike: true, IsSwing: true, IsContact: true}},
		{"Ball", Outcome{}},
		{"Ball In Dirt", Outcome{}},
	}
	c := GameFeedOutcomes{}
	for _, tt := range tests {
		if got := c.Classify(tt.desc); got != tt.outcome {
			t.Errorf("Classify(%q) = %+v, want %+v", tt.desc, got, tt.outcome)
		}
	}
}

// TestWhiffMatchingIsExact: substring matching on the whiff family would
// misclassify compound labels; only the exact variants count.
func TestWhiffMatchingIsExact(t *testing.T) {
	if got := (BatchOutcomes{}).Classify("swinging_pitchout"); got.IsWhiff {
		t.Error("swinging_pitchout must not be a whiff")
	}
	if got := (GameFeedOutcomes{}).Classify("Swinging Strike Stuff"); got.IsWhiff {
		t.Error("non-exact swinging strike variant must not be a whiff")
	}
}

// TestVocabularyParity: the same physical events through either classifier
// produce identical facets.
func TestVocabularyParity(t *testing.T) {
	pairs := []struct {
		batch, gameFeed string
	}{
		{"called_strike", "Called Strike"},
		{"swinging_strike", "Swinging Strike"},
		{"swinging_strike_blocked", "Swinging Strike (Blocked)"},
		{"foul", "Foul"},
		{"foul_tip", "Foul Tip"},
		{"hit_into_play", "In play, out(s)"},
		{"ball", "Ball"},
	}
	b, g := BatchOutcomes{}, GameFeedOutcomes{}
	for _, pair := range pairs {
		if bo, fo := b.Classify(pair.batch), g.Classify(pair.gameFeed); bo != fo {
			t.Errorf("parity broken: %q -> %+v vs %q -> %+v", pair.batch, bo, pair.gameFeed, fo)
		}
	}
}
