package storage

import (
	"database/sql"
	"fmt"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// BatchExists returns true if a batch with the given id is already stored.
func (db *DB) BatchExists(id string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM batches WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertBatch stores a batch summary and its per-pitch-type rows in one
// transaction. INSERT OR REPLACE keeps re-ingests idempotent.
func (db *DB) InsertBatch(summary model.BatchSummary, types []model.PitchTypeStats) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO batches(
			id, player_id, player_name, role, source, game_pk,
			start_date, end_date, season,
			total_pitches, strike_pct, swing_miss_pct, total_whiffs
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		summary.ID, summary.PlayerID, summary.PlayerName, summary.Role,
		summary.Source, summary.GamePK,
		summary.StartDate, summary.EndDate, summary.Season,
		summary.TotalPitches, nullF(summary.StrikePct), nullF(summary.SwingMissPct),
		summary.TotalWhiffs,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO pitch_type_stats(
			batch_id, pitch_name, count, usage_pct,
			velocity, spin, h_break, v_break, vaa,
			release_x, release_z, extension,
			swings, whiffs, strike_pct, whiff_pct
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, ts := range types {
		_, err = stmt.Exec(
			summary.ID, ts.Name, ts.Count, ts.UsagePct,
			nullF(ts.Velocity), nullF(ts.Spin), nullF(ts.HBreak), nullF(ts.VBreak), nullF(ts.VAA),
			nullF(ts.ReleaseX), nullF(ts.ReleaseZ), nullF(ts.Extension),
			ts.Swings, ts.Whiffs, nullF(ts.StrikePct), nullF(ts.WhiffPct),
		)
		if err != nil {
			return fmt.Errorf("insert pitch_type_stats %q: %w", ts.Name, err)
		}
	}
	return tx.Commit()
}

const batchCols = `id, player_id, player_name, role, source, game_pk,
	start_date, end_date, season, total_pitches, strike_pct, swing_miss_pct, total_whiffs`

// GetBatchByPrefix finds a batch whose id starts with the given prefix.
// Returns nil when no batch matches.
func (db *DB) GetBatchByPrefix(prefix string) (*model.BatchSummary, error) {
	row := db.conn.QueryRow(
		"SELECT "+batchCols+" FROM batches WHERE id LIKE ? || '%' LIMIT 1", prefix)
	summary, err := scanBatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ListBatches returns all stored batches, newest first.
func (db *DB) ListBatches() ([]model.BatchSummary, error) {
	rows, err := db.conn.Query(
		"SELECT " + batchCols + " FROM batches ORDER BY created_at DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BatchSummary
	for rows.Next() {
		s, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// DeleteBatch removes a batch and (via cascade) its pitch type rows.
func (db *DB) DeleteBatch(id string) error {
	_, err := db.conn.Exec("DELETE FROM batches WHERE id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(r rowScanner) (*model.BatchSummary, error) {
	var s model.BatchSummary
	var strikePct, swingMiss sql.NullFloat64
	err := r.Scan(
		&s.ID, &s.PlayerID, &s.PlayerName, &s.Role, &s.Source, &s.GamePK,
		&s.StartDate, &s.EndDate, &s.Season,
		&s.TotalPitches, &strikePct, &swingMiss, &s.TotalWhiffs,
	)
	if err != nil {
		return nil, err
	}
	s.StrikePct = fromNullF(strikePct)
	s.SwingMissPct = fromNullF(swingMiss)
	return &s, nil
}

// GetPitchTypeStats returns a batch's per-pitch-type rows, usage descending.
func (db *DB) GetPitchTypeStats(batchID string) ([]model.PitchTypeStats, error) {
	rows, err := db.conn.Query(`
		SELECT pitch_name, count, usage_pct,
			velocity, spin, h_break, v_break, vaa,
			release_x, release_z, extension,
			swings, whiffs, strike_pct, whiff_pct
		FROM pitch_type_stats WHERE batch_id = ?
		ORDER BY usage_pct DESC, pitch_name`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPitchTypes(rows)
}

func scanPitchTypes(rows *sql.Rows) ([]model.PitchTypeStats, error) {
	var out []model.PitchTypeStats
	for rows.Next() {
		var ts model.PitchTypeStats
		var velo, spin, hb, vb, vaa, rx, rz, ext, strike, whiff sql.NullFloat64
		err := rows.Scan(
			&ts.Name, &ts.Count, &ts.UsagePct,
			&velo, &spin, &hb, &vb, &vaa,
			&rx, &rz, &ext,
			&ts.Swings, &ts.Whiffs, &strike, &whiff,
		)
		if err != nil {
			return nil, err
		}
		ts.Velocity = fromNullF(velo)
		ts.Spin = fromNullF(spin)
		ts.HBreak = fromNullF(hb)
		ts.VBreak = fromNullF(vb)
		ts.VAA = fromNullF(vaa)
		ts.ReleaseX = fromNullF(rx)
		ts.ReleaseZ = fromNullF(rz)
		ts.Extension = fromNullF(ext)
		ts.StrikePct = fromNullF(strike)
		ts.WhiffPct = fromNullF(whiff)
		out = append(out, ts)
	}
	return out, rows.Err()
}

// GetPlayerPitchTypes rolls a pitcher's stored batches up into one
// per-pitch-type view: counts summed, means weighted by the count of the
// rows that actually carried the field (NULLs excluded per field).
func (db *DB) GetPlayerPitchTypes(playerID int) ([]model.PitchTypeStats, error) {
	rows, err := db.conn.Query(`
		SELECT s.pitch_name,
			SUM(s.count),
			100.0 * SUM(s.count) / (
				SELECT SUM(s2.count) FROM pitch_type_stats s2
				JOIN batches b2 ON b2.id = s2.batch_id
				WHERE b2.player_id = b.player_id
			),
			SUM(s.velocity * s.count) / SUM(CASE WHEN s.velocity IS NOT NULL THEN s.count END),
			SUM(s.spin * s.count) / SUM(CASE WHEN s.spin IS NOT NULL THEN s.count END),
			SUM(s.h_break * s.count) / SUM(CASE WHEN s.h_break IS NOT NULL THEN s.count END),
			SUM(s.v_break * s.count) / SUM(CASE WHEN s.v_break IS NOT NULL THEN s.count END),
			SUM(s.vaa * s.count) / SUM(CASE WHEN s.vaa IS NOT NULL THEN s.count END),
			SUM(s.release_x * s.count) / SUM(CASE WHEN s.release_x IS NOT NULL THEN s.count END),
			SUM(s.release_z * s.count) / SUM(CASE WHEN s.release_z IS NOT NULL THEN s.count END),
			SUM(s.extension * s.count) / SUM(CASE WHEN s.extension IS NOT NULL THEN s.count END),
			SUM(s.swings), SUM(s.whiffs),
			SUM(s.strike_pct * s.count) / SUM(CASE WHEN s.strike_pct IS NOT NULL THEN s.count END),
			CASE WHEN SUM(s.swings) > 0
				THEN 100.0 * SUM(s.whiffs) / SUM(s.swings) END
		FROM pitch_type_stats s
		JOIN batches b ON b.id = s.batch_id
		WHERE b.player_id = ?
		GROUP BY s.pitch_name
		ORDER BY 2 DESC`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPitchTypes(rows)
}

// UpsertDecisionScore stores one computed score, replacing any prior value
// for the same player/season/model.
func (db *DB) UpsertDecisionScore(d model.StoredDecision) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO decision_scores(
			player_id, player_name, season, model, score, raw_value, sample_size
		) VALUES (?,?,?,?,?,?,?)`,
		d.PlayerID, d.PlayerName, d.Season, d.Model,
		nullI(d.Score), nullF(d.Raw), d.Pitches,
	)
	return err
}

// GetDecisionScores returns every stored score for a player, newest season
// first.
func (db *DB) GetDecisionScores(playerID int) ([]model.StoredDecision, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, player_name, season, model, score, raw_value, sample_size
		FROM decision_scores WHERE player_id = ?
		ORDER BY season DESC, model`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StoredDecision
	for rows.Next() {
		var d model.StoredDecision
		var score sql.NullInt64
		var raw sql.NullFloat64
		if err := rows.Scan(&d.PlayerID, &d.PlayerName, &d.Season, &d.Model, &score, &raw, &d.Pitches); err != nil {
			return nil, err
		}
		if score.Valid {
			v := int(score.Int64)
			d.Score = &v
		}
		d.Raw = fromNullF(raw)
		out = append(out, d)
	}
	return out, rows.Err()
}

// Overview summarizes the whole database for the summary command.
type Overview struct {
	TotalBatches  int
	UniquePlayers int
	TotalPitches  int
	EarliestDate  string
	LatestDate    string
	ScoredPlayers int
}

// GetOverview computes the database overview.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT COUNT(1), COUNT(DISTINCT player_id), COALESCE(SUM(total_pitches), 0),
			COALESCE(MIN(NULLIF(start_date, '')), ''), COALESCE(MAX(NULLIF(end_date, '')), '')
		FROM batches`).Scan(
		&ov.TotalBatches, &ov.UniquePlayers, &ov.TotalPitches,
		&ov.EarliestDate, &ov.LatestDate)
	if err != nil {
		return ov, err
	}
	err = db.conn.QueryRow(
		"SELECT COUNT(DISTINCT player_id) FROM decision_scores").Scan(&ov.ScoredPlayers)
	return ov, err
}

func nullF(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func fromNullF(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nullI(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}
