package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dotcommander/kiroscore/internal/analyzer"
	"github.com/dotcommander/kiroscore/internal/engine"
	"github.com/dotcommander/kiroscore/internal/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleReport(t *testing.T) report.Report {
	t.Helper()
	sub := engine.Submission{
		Description: "A spooky halloween interface with vintage design",
		KiroUsage:   "agent hooks because of a systematic strategy",
	}
	result, err := analyzer.NewRuleBased().Analyze(context.Background(), sub)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	return report.New("entries/spooky.yaml", "Spooky", sub, result)
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	original := sampleReport(t)

	id, err := s.Save(ctx, original)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if id == "" {
		t.Fatal("Save() returned empty id")
	}

	loaded, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if loaded.ID != id {
		t.Errorf("loaded ID = %q, want %q", loaded.ID, id)
	}
	if loaded.Title != original.Title {
		t.Errorf("loaded Title = %q, want %q", loaded.Title, original.Title)
	}
	if loaded.Viability != original.Viability {
		t.Errorf("loaded Viability = %v, want %v", loaded.Viability, original.Viability)
	}
	if loaded.Categories.BestMatch != original.Categories.BestMatch {
		t.Errorf("loaded BestMatch = %v, want %v", loaded.Categories.BestMatch, original.Categories.BestMatch)
	}
	if len(loaded.Categories.Evaluations) != 4 {
		t.Errorf("loaded %d evaluations, want 4", len(loaded.Categories.Evaluations))
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("fresh store lists %d records, want 0", len(records))
	}

	rep := sampleReport(t)
	first, err := s.Save(ctx, rep)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, err := s.Save(ctx, rep)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if first == second {
		t.Error("Save() produced duplicate ids")
	}

	records, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(records))
	}
	for _, rec := range records {
		if rec.BestMatch == "" {
			t.Error("record missing best match")
		}
		if rec.CreatedAt.IsZero() {
			t.Error("record missing created_at")
		}
	}
}
