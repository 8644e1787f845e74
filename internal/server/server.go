// Package server exposes the stored aggregates and scores as a small
// read-only JSON API for dashboard frontends.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/pable/go-pitch-metrics/internal/config"
	"github.com/pable/go-pitch-metrics/internal/model"
	"github.com/pable/go-pitch-metrics/internal/storage"
)

// Server serves the read-only API over a storage.DB.
type Server struct {
	db         *storage.DB
	router     *mux.Router
	cache      *responseCache
	httpServer *http.Server
	cfg        *config.Config
}

// New builds a Server and wires its routes.
func New(db *storage.DB, cfg *config.Config) *Server {
	s := &Server{
		db:     db,
		router: mux.NewRouter(),
		cache:  newResponseCache(time.Duration(cfg.CacheTTLSec) * time.Second),
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.healthHandler).Methods("GET")
	api.HandleFunc("/batches", s.listBatchesHandler).Methods("GET")
	api.HandleFunc("/batches/{id}", s.getBatchHandler).Methods("GET")
	api.HandleFunc("/players/{id}/arsenal", s.playerArsenalHandler).Methods("GET")
	api.HandleFunc("/players/{id}/decisions", s.playerDecisionsHandler).Methods("GET")

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)
}

// Handler returns the fully wrapped HTTP handler, CORS included.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         86400,
	})
	return c.Handler(s.router)
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.ServeAddr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("serving API on %s", s.cfg.ServeAddr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ---- Handlers ----

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) listBatchesHandler(w http.ResponseWriter, r *http.Request) {
	if s.serveCached(w, r) {
		return
	}
	batches, err := s.db.ListBatches()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if batches == nil {
		batches = []model.BatchSummary{}
	}
	s.writeAndCache(w, r, batches)
}

func (s *Server) getBatchHandler(w http.ResponseWriter, r *http.Request) {
	if s.serveCached(w, r) {
		return
	}
	prefix := mux.Vars(r)["id"]
	batch, err := s.db.GetBatchByPrefix(prefix)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if batch == nil {
		http.Error(w, `{"error":"batch not found"}`, http.StatusNotFound)
		return
	}
	types, err := s.db.GetPitchTypeStats(batch.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeAndCache(w, r, struct {
		Batch      model.BatchSummary     `json:"batch"`
		PitchTypes []model.PitchTypeStats `json:"pitch_types"`
	}{*batch, types})
}

func (s *Server) playerArsenalHandler(w http.ResponseWriter, r *http.Request) {
	if s.serveCached(w, r) {
		return
	}
	playerID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"error":"invalid player id"}`, http.StatusBadRequest)
		return
	}
	types, err := s.db.GetPlayerPitchTypes(playerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if types == nil {
		types = []model.PitchTypeStats{}
	}
	s.writeAndCache(w, r, types)
}

func (s *Server) playerDecisionsHandler(w http.ResponseWriter, r *http.Request) {
	if s.serveCached(w, r) {
		return
	}
	playerID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"error":"invalid player id"}`, http.StatusBadRequest)
		return
	}
	scores, err := s.db.GetDecisionScores(playerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if scores == nil {
		scores = []model.StoredDecision{}
	}
	s.writeAndCache(w, r, scores)
}

// ---- Middleware and helpers ----

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s: %v", r.URL.Path, rec)
				http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serveCached(w http.ResponseWriter, r *http.Request) bool {
	body, ok := s.cache.Get(r.URL.RequestURI())
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
	return true
}

func (s *Server) writeAndCache(w http.ResponseWriter, r *http.Request, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.cache.Set(r.URL.RequestURI(), body)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
