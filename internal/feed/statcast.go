package feed

import (
	"strconv"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// FromStatcastCSV converts a bulk search CSV export into raw pitches. Field
// names follow the export's column vocabulary; any missing or unparseable
// numeric cell is carried as nil, never as an error.
func FromStatcastCSV(text string) []model.RawPitch {
	rows := ParseRows(text, DetectDelimiter(text))
	pitches := make([]model.RawPitch, 0, len(rows))
	for _, row := range rows {
		p := model.RawPitch{
			Source:   model.SourceBatchCSV,
			TypeCode: row["pitch_type"],
			Outcome:  row["description"],

			ReleaseSpeed: optFloat(row["release_speed"]),
			SpinRate:     optFloat(row["release_spin_rate"]),
			HBreakRaw:    optFloat(row["pfx_x"]),
			VBreakRaw:    optFloat(row["pfx_z"]),

			VX0: optFloat(row["vx0"]),
			VY0: optFloat(row["vy0"]),
			VZ0: optFloat(row["vz0"]),
			AX:  optFloat(row["ax"]),
			AY:  optFloat(row["ay"]),
			AZ:  optFloat(row["az"]),

			ReleaseY: optFloat(row["release_pos_y"]),
			PlateX:   optFloat(row["plate_x"]),
			PlateZ:   optFloat(row["plate_z"]),
			ReleaseX: optFloat(row["release_pos_x"]),
			ReleaseZ: optFloat(row["release_pos_z"]),

			Extension: optFloat(row["release_extension"]),
			ArmAngle:  optFloat(row["arm_angle"]),

			Zone:    optInt(row["zone"]),
			Balls:   optInt(row["balls"]),
			Strikes: optInt(row["strikes"]),

			BattedBallValue: optFloat(row["estimated_woba_using_speedangle"]),

			GamePK:    intOr(row["game_pk"], 0),
			PitcherID: intOr(row["pitcher"], 0),
			BatterID:  intOr(row["batter"], 0),
			Stand:     row["stand"],
			Throws:    row["p_throws"],
		}
		pitches = append(pitches, p)
	}
	return pitches
}

// optFloat parses a cell into an optional float. Empty, "null", and "NA"
// cells (all seen in real exports) come back nil.
func optFloat(s string) *float64 {
	if s == "" || s == "null" || s == "NA" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optInt(s string) *int {
	f := optFloat(s)
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

func intOr(s string, fallback int) int {
	if v := optInt(s); v != nil {
		return *v
	}
	return fallback
}
