package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dotcommander/kiroscore/internal/analyzer"
	"github.com/dotcommander/kiroscore/internal/config"
	"github.com/dotcommander/kiroscore/internal/report"
	"github.com/dotcommander/kiroscore/internal/store"
)

func testServer(t *testing.T, cfg config.ServerConfig, st *store.Store) *httptest.Server {
	t.Helper()
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	srv := httptest.NewServer(New(cfg, analyzer.NewRuleBased(), "rules", st).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := testServer(t, config.ServerConfig{}, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", resp.StatusCode)
	}
}

func TestCategories(t *testing.T) {
	srv := testServer(t, config.ServerConfig{}, nil)

	resp, err := http.Get(srv.URL + "/api/v1/categories")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var categories []categoryInfo
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		t.Fatalf("decoding categories: %v", err)
	}
	if len(categories) != 4 {
		t.Fatalf("got %d categories, want 4", len(categories))
	}
	if categories[0].Tag != "resurrection" {
		t.Errorf("first category = %s, want resurrection", categories[0].Tag)
	}
}

func TestCreateAnalysis(t *testing.T) {
	srv := testServer(t, config.ServerConfig{}, nil)

	resp := postJSON(t, srv.URL+"/api/v1/analyses", map[string]any{
		"title":       "Revival",
		"description": "Reviving legacy systems with a useful modern refresh",
		"kiro_usage":  "agent hooks because of a systematic strategy",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var rep report.Report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if len(rep.Categories.Evaluations) != 4 {
		t.Errorf("got %d evaluations, want 4", len(rep.Categories.Evaluations))
	}
	if len(rep.Criteria.Scores) != 3 {
		t.Errorf("got %d criteria scores, want 3", len(rep.Criteria.Scores))
	}
	if rep.Viability < 0 || rep.Viability > 5 {
		t.Errorf("viability %v out of [0,5]", rep.Viability)
	}
	if rep.Pathway != "rules" {
		t.Errorf("pathway = %q, want rules", rep.Pathway)
	}
}

func TestCreateAnalysisRequiresDescription(t *testing.T) {
	srv := testServer(t, config.ServerConfig{}, nil)

	resp := postJSON(t, srv.URL+"/api/v1/analyses", map[string]any{"title": "No description"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateAnalysisBadJSON(t *testing.T) {
	srv := testServer(t, config.ServerConfig{}, nil)

	resp, err := http.Post(srv.URL+"/api/v1/analyses", "application/json", strings.NewReader("{broken"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAnalysisPersistence(t *testing.T) {
	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer st.Close()

	srv := testServer(t, config.ServerConfig{}, st)

	resp := postJSON(t, srv.URL+"/api/v1/analyses", map[string]any{
		"title":       "Spooky",
		"description": "A spooky halloween interface with vintage design",
	})
	defer resp.Body.Close()

	var created report.Report
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created report has no id")
	}

	getResp, err := http.Get(srv.URL + "/api/v1/analyses/" + created.ID)
	if err != nil {
		t.Fatal(err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", getResp.StatusCode)
	}

	var loaded report.Report
	if err := json.NewDecoder(getResp.Body).Decode(&loaded); err != nil {
		t.Fatalf("decoding loaded report: %v", err)
	}
	if loaded.ID != created.ID {
		t.Errorf("loaded id = %q, want %q", loaded.ID, created.ID)
	}
	if loaded.Viability != created.Viability {
		t.Errorf("loaded viability = %v, want %v", loaded.Viability, created.Viability)
	}

	listResp, err := http.Get(srv.URL + "/api/v1/analyses")
	if err != nil {
		t.Fatal(err)
	}
	defer listResp.Body.Close()

	var records []store.Record
	if err := json.NewDecoder(listResp.Body).Decode(&records); err != nil {
		t.Fatalf("decoding records: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("listed %d records, want 1", len(records))
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer st.Close()

	srv := testServer(t, config.ServerConfig{}, st)

	resp, err := http.Get(srv.URL + "/api/v1/analyses/missing")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestJWTAuth(t *testing.T) {
	secret := "test-secret"
	srv := testServer(t, config.ServerConfig{JWTSecret: secret}, nil)

	// No token.
	resp, err := http.Get(srv.URL + "/api/v1/categories")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", resp.StatusCode)
	}

	// Valid token.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "judge",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/categories", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer authResp.Body.Close()
	if authResp.StatusCode != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", authResp.StatusCode)
	}

	// Health stays open.
	healthResp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	healthResp.Body.Close()
	if healthResp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", healthResp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t, config.ServerConfig{}, nil)

	resp := postJSON(t, srv.URL+"/api/v1/analyses", map[string]any{
		"description": "A spooky halloween interface",
	})
	resp.Body.Close()

	metricsResp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer metricsResp.Body.Close()
	if metricsResp.StatusCode != http.StatusOK {
		t.Errorf("metrics status = %d, want 200", metricsResp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(metricsResp.Body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "kiroscore_analyses_scored_total") {
		t.Error("metrics output missing kiroscore_analyses_scored_total")
	}
}
