package feed

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// gameFeedPitch mirrors the compact per-pitch objects in the game feed
// response. Pointer fields stay nil when the feed omits them, which it does
// freely (acceleration components in particular).
type gameFeedPitch struct {
	PitchType string `json:"pitch_type"`
	Result    string `json:"result"`

	StartSpeed *float64 `json:"start_speed"`
	SpinRate   *float64 `json:"spin_rate"`

	PfxX *float64 `json:"pfx_x"` // pitcher's-eye feet
	PfxZ *float64 `json:"pfx_z"`

	VX0 *float64 `json:"vx0"`
	VY0 *float64 `json:"vy0"`
	VZ0 *float64 `json:"vz0"`
	AX  *float64 `json:"ax"`
	AY  *float64 `json:"ay"`
	AZ  *float64 `json:"az"`

	Y0 *float64 `json:"y0"` // release distance from plate

	PX *float64 `json:"px"`
	PZ *float64 `json:"pz"`
	X0 *float64 `json:"x0"`
	Z0 *float64 `json:"z0"`

	Extension *float64 `json:"extension"`

	Zone    *int `json:"zone"`
	Balls   *int `json:"balls"`
	Strikes *int `json:"strikes"`

	XWOBA *float64 `json:"xwoba"`

	Stand  string `json:"stand"`
	Throws string `json:"p_throws"`
}

// gameFeedBody is the wire shape of the game feed endpoint: a map keyed by
// player id, each holding that player's pitch list for the game.
type gameFeedBody map[string][]gameFeedPitch

// FromGameFeed converts a game feed JSON body into raw pitches for one
// pitcher. An unknown pitcher id yields an empty slice, not an error, so a
// partially-populated live feed degrades to "no pitches yet".
func FromGameFeed(body []byte, gamePK, pitcherID int) ([]model.RawPitch, error) {
	var feed gameFeedBody
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode game feed: %w", err)
	}
	raw := feed[strconv.Itoa(pitcherID)]
	pitches := make([]model.RawPitch, 0, len(raw))
	for _, gp := range raw {
		pitches = append(pitches, model.RawPitch{
			Source:   model.SourceGameFeed,
			TypeCode: gp.PitchType,
			Outcome:  gp.Result,

			ReleaseSpeed: gp.StartSpeed,
			SpinRate:     gp.SpinRate,
			HBreakRaw:    gp.PfxX,
			VBreakRaw:    gp.PfxZ,

			VX0: gp.VX0,
			VY0: gp.VY0,
			VZ0: gp.VZ0,
			AX:  gp.AX,
			AY:  gp.AY,
			AZ:  gp.AZ,

			ReleaseY: gp.Y0,
			PlateX:   gp.PX,
			PlateZ:   gp.PZ,
			ReleaseX: gp.X0,
			ReleaseZ: gp.Z0,

			Extension: gp.Extension,

			Zone:    gp.Zone,
			Balls:   gp.Balls,
			Strikes: gp.Strikes,

			BattedBallValue: gp.XWOBA,

			GamePK:    gamePK,
			PitcherID: pitcherID,
			Stand:     gp.Stand,
			Throws:    gp.Throws,
		})
	}
	return pitches, nil
}
