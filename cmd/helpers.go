package cmd

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pable/go-pitch-metrics/internal/config"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/statsapi"
	"github.com/pable/go-pitch-metrics/internal/storage"
)

// openDB creates the database directory if needed and opens the store.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *statsapi.Client {
	return statsapi.New(cfg.SearchURL, cfg.FeedURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
}

// batchID derives the idempotency key for a stored batch from everything
// that identifies its population.
func batchID(s model.BatchSummary) string {
	descriptor := fmt.Sprintf("%s|%d|%s|%s|%s|%d|%d",
		s.Source, s.PlayerID, s.Role, s.StartDate, s.EndDate, s.Season, s.GamePK)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(descriptor)))
}

// storeArsenal fills in the batch id, stores summary plus pitch types, and
// returns the completed summary.
func storeArsenal(db *storage.DB, summary model.BatchSummary, arsenal model.Arsenal) (model.BatchSummary, error) {
	summary.TotalPitches = arsenal.TotalPitches
	summary.StrikePct = arsenal.StrikePct
	summary.SwingMissPct = arsenal.SwingMissPct
	summary.TotalWhiffs = arsenal.TotalWhiffs
	summary.ID = batchID(summary)
	if err := db.InsertBatch(summary, arsenal.PitchTypes); err != nil {
		return summary, fmt.Errorf("insert batch: %w", err)
	}
	return summary, nil
}
