package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dotcommander/kiroscore/internal/analyzer"
	"github.com/dotcommander/kiroscore/internal/config"
	"github.com/dotcommander/kiroscore/internal/engine"
	"github.com/dotcommander/kiroscore/internal/report"
	"github.com/dotcommander/kiroscore/internal/store"
)

// Server exposes the scoring engine over HTTP for the web backend.
type Server struct {
	cfg      config.ServerConfig
	analyzer analyzer.Analyzer
	pathway  string
	store    *store.Store
	metrics  *metrics
}

// New creates a Server. store may be nil, in which case analyses are scored
// but not persisted.
func New(cfg config.ServerConfig, a analyzer.Analyzer, pathway string, st *store.Store) *Server {
	return &Server{
		cfg:      cfg,
		analyzer: a,
		pathway:  pathway,
		store:    st,
		metrics:  newMetrics(),
	}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	r.Route("/api/v1", func(r chi.Router) {
		if s.cfg.JWTSecret != "" {
			r.Use(jwtAuth(s.cfg.JWTSecret))
		}
		r.Get("/categories", s.handleCategories)
		r.Post("/analyses", s.handleCreateAnalysis)
		r.Get("/analyses", s.handleListAnalyses)
		r.Get("/analyses/{id}", s.handleGetAnalysis)
	})

	return r
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// categoryInfo is the public shape of one taxonomy entry.
type categoryInfo struct {
	Tag         engine.Category `json:"tag"`
	DisplayName string          `json:"display_name"`
	Description string          `json:"description"`
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	categories := make([]categoryInfo, 0, len(engine.AllCategories))
	for _, cat := range engine.AllCategories {
		categories = append(categories, categoryInfo{
			Tag:         cat,
			DisplayName: cat.DisplayName(),
			Description: cat.Description(),
		})
	}
	writeJSON(w, http.StatusOK, categories)
}

// createAnalysisRequest is the scoring request body.
type createAnalysisRequest struct {
	Title string `json:"title"`
	engine.Submission
}

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req createAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	// The engine degrades gracefully on short text, but a missing
	// description is a malformed request, not a low-scoring submission.
	if strings.TrimSpace(req.Description) == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req.Submission)
	if err != nil {
		http.Error(w, "analysis failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.analysesScored.WithLabelValues(s.pathway).Inc()

	rep := report.New("", req.Title, req.Submission, result)
	rep.Pathway = s.pathway

	if s.store != nil {
		id, err := s.store.Save(r.Context(), rep)
		if err != nil {
			http.Error(w, "persist analysis: "+err.Error(), http.StatusInternalServerError)
			return
		}
		rep.ID = id
	}

	writeJSON(w, http.StatusCreated, rep)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "persistence disabled", http.StatusNotFound)
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	rep, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "load analysis: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusOK, []store.Record{})
		return
	}
	records, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, "list analyses: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []store.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
