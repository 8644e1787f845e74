package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pable/go-pitch-metrics/internal/config"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.DB) {
	t.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, config.Defaults()), db
}

func seedBatch(t *testing.T, db *storage.DB) model.BatchSummary {
	t.Helper()
	strike := 60.0
	summary := model.BatchSummary{
		ID: "deadbeefcafe", PlayerID: 660271, PlayerName: "Test Pitcher",
		Role: "pitcher", Source: "batch-csv", Season: 2025,
		TotalPitches: 80, StrikePct: &strike,
	}
	velo := 95.5
	types := []model.PitchTypeStats{
		{Name: "4-Seam Fastball", Count: 80, UsagePct: 100, Velocity: &velo},
	}
	if err := db.InsertBatch(summary, types); err != nil {
		t.Fatalf("seed batch: %v", err)
	}
	return summary
}

func doGET(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	rr := doGET(t, s.Handler(), "/api/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestListBatches(t *testing.T) {
	s, db := newTestServer(t)

	rr := doGET(t, s.Handler(), "/api/batches")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body := rr.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("empty db must serve [], got %s", body)
	}

	seedBatch(t, db)
	rr = doGET(t, s.Handler(), "/api/batches")
	var batches []model.BatchSummary
	if err := json.Unmarshal(rr.Body.Bytes(), &batches); err != nil {
		t.Fatal(err)
	}
	if len(batches) != 1 || batches[0].PlayerID != 660271 {
		t.Errorf("batches = %+v", batches)
	}
}

func TestGetBatchByPrefix(t *testing.T) {
	s, db := newTestServer(t)
	seedBatch(t, db)

	rr := doGET(t, s.Handler(), "/api/batches/deadbeef")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body struct {
		Batch      model.BatchSummary     `json:"batch"`
		PitchTypes []model.PitchTypeStats `json:"pitch_types"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Batch.ID != "deadbeefcafe" || len(body.PitchTypes) != 1 {
		t.Errorf("batch response = %+v", body)
	}

	rr = doGET(t, s.Handler(), "/api/batches/nosuch")
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown batch status = %d, want 404", rr.Code)
	}
}

func TestPlayerEndpoints(t *testing.T) {
	s, db := newTestServer(t)
	seedBatch(t, db)
	score := 112
	if err := db.UpsertDecisionScore(model.StoredDecision{
		PlayerID: 660271, Season: 2025, Model: model.ModelTroutPlus, Score: &score, Pitches: 900,
	}); err != nil {
		t.Fatal(err)
	}

	rr := doGET(t, s.Handler(), "/api/players/660271/arsenal")
	if rr.Code != http.StatusOK {
		t.Fatalf("arsenal status = %d", rr.Code)
	}
	var types []model.PitchTypeStats
	if err := json.Unmarshal(rr.Body.Bytes(), &types); err != nil {
		t.Fatal(err)
	}
	if len(types) != 1 || types[0].Name != "4-Seam Fastball" {
		t.Errorf("arsenal = %+v", types)
	}

	rr = doGET(t, s.Handler(), "/api/players/660271/decisions")
	var scores []model.StoredDecision
	if err := json.Unmarshal(rr.Body.Bytes(), &scores); err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || *scores[0].Score != 112 {
		t.Errorf("decisions = %+v", scores)
	}

	rr = doGET(t, s.Handler(), "/api/players/notanumber/arsenal")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad player id status = %d, want 400", rr.Code)
	}
}

// TestResponseCaching: after the first hit, the cached body is served even
// when the underlying data changes; a new cache misses after expiry.
func TestResponseCaching(t *testing.T) {
	s, db := newTestServer(t)
	h := s.Handler()

	doGET(t, h, "/api/batches") // primes the cache with []
	seedBatch(t, db)

	rr := doGET(t, h, "/api/batches")
	var batches []model.BatchSummary
	if err := json.Unmarshal(rr.Body.Bytes(), &batches); err != nil {
		t.Fatal(err)
	}
	if len(batches) != 0 {
		t.Errorf("expected cached empty list, got %d batches", len(batches))
	}
}

func TestCacheExpiry(t *testing.T) {
	c := newResponseCache(10 * time.Millisecond)
	c.Set("k", []byte("v"))
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry must hit")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expired entry must miss")
	}
}

func TestCORSHeaders(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
