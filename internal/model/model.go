package model

// FeedSource identifies which upstream feed a batch of pitches came from.
// The two feeds use different outcome vocabularies and different break
// conventions, so the tag is carried on every record and resolved once per
// batch by the classify and kinematics packages.
type FeedSource int

const (
	SourceBatchCSV FeedSource = iota // bulk search CSV export
	SourceGameFeed                   // compact per-pitch game feed JSON
)

func (s FeedSource) String() string {
	switch s {
	case SourceBatchCSV:
		return "batch-csv"
	case SourceGameFeed:
		return "game-feed"
	default:
		return "?"
	}
}

// ParseSource maps a source label (as stored or passed on the CLI) back to a
// FeedSource. Unknown labels default to the batch CSV dialect.
func ParseSource(label string) FeedSource {
	if label == SourceGameFeed.String() || label == "gamefeed" {
		return SourceGameFeed
	}
	return SourceBatchCSV
}

// ---- Raw records emitted by the feed adapters ----

// RawPitch is one observed pitch. Every numeric field is optional: a nil
// pointer means the upstream row lacked the field or it failed to parse.
// Missing fields are simply omitted from whatever they would contribute to;
// they never fail a batch.
type RawPitch struct {
	Source FeedSource

	TypeCode string // 2-letter pitch type code, e.g. "FF", "SL"
	Outcome  string // free-text outcome label, vocabulary differs per Source

	ReleaseSpeed *float64 // mph at release
	SpinRate     *float64 // rpm at release

	// Raw break components in feet, in the reporting convention of Source.
	HBreakRaw *float64
	VBreakRaw *float64

	// Release velocity (ft/s) and acceleration (ft/s²) components.
	VX0, VY0, VZ0 *float64
	AX, AY, AZ    *float64

	ReleaseY *float64 // release_pos_y: feet from the plate at release

	PlateX, PlateZ     *float64 // crossing location at the front of the plate, feet
	ReleaseX, ReleaseZ *float64 // release point, feet
	Extension          *float64 // feet forward of the rubber
	ArmAngle           *float64 // degrees

	Zone           *int // 1-9 in zone, 11-19 shadow, >=21 chase
	Balls, Strikes *int

	// Estimated weighted outcome value; present only on batted-ball events.
	BattedBallValue *float64

	GamePK    int
	PitcherID int
	BatterID  int
	Stand     string // batter side, "L" or "R"
	Throws    string // pitcher hand, "L" or "R"
}

// ---- Aggregated output ----

// PitchTypeStats is the rollup for one canonical pitch name over a
// population of pitches. A nil field means zero contributing samples.
type PitchTypeStats struct {
	Name     string
	Count    int
	UsagePct float64

	Velocity  *float64 // mph, 1 decimal
	Spin      *float64 // rpm, nearest integer
	HBreak    *float64 // inches, arm-side positive, 1 decimal
	VBreak    *float64 // inches, 1 decimal
	VAA       *float64 // degrees, 2 decimals
	ReleaseX  *float64 // feet, 1 decimal
	ReleaseZ  *float64 // feet, 1 decimal
	Extension *float64 // feet, 1 decimal

	Swings    int
	Whiffs    int
	StrikePct *float64 // 1 decimal
	WhiffPct  *float64 // whiffs/swings, nil when no swings, 1 decimal
}

// Arsenal is the full per-pitch-type aggregate for one population
// (a game, a day, a season). Computed fresh per request, never mutated
// after being returned.
type Arsenal struct {
	TotalPitches int
	PitchTypes   []PitchTypeStats
	StrikePct    *float64 // nil when TotalPitches == 0
	SwingMissPct *float64
	TotalWhiffs  int
}

// Decision score model names as stored.
const (
	ModelTroutPlus        = "trout_plus"
	ModelZoneDecisionPlus = "zone_decision_plus"
)

// DecisionScore is one standardized swing-decision rating for a batter
// season. Score and Raw are nil when the population is below the model's
// minimum sample size; Pitches always reports the scored sample count so a
// caller can tell "no signal" from "not enough data".
type DecisionScore struct {
	Model   string // ModelTroutPlus or ModelZoneDecisionPlus
	Score   *int
	Raw     *float64 // trout_plus: mean points (1 decimal); zone_decision_plus: raw total
	Pitches int
}

// ---- Stored records ----

// BatchSummary is the lightweight record for one ingested pitch population.
type BatchSummary struct {
	ID         string // content hash, used as the storage key
	PlayerID   int
	PlayerName string
	Role       string // "pitcher" or "batter"
	Source     string
	GamePK     int
	StartDate  string
	EndDate    string
	Season     int

	TotalPitches int
	StrikePct    *float64
	SwingMissPct *float64
	TotalWhiffs  int
}

// StoredDecision is a decision score as persisted per player and season.
type StoredDecision struct {
	PlayerID   int
	PlayerName string
	Season     int
	Model      string
	Score      *int
	Raw        *float64
	Pitches    int
}
