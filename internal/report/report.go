package report

import (
	"fmt"
	"time"

	"github.com/dotcommander/kiroscore/internal/analyzer"
	"github.com/dotcommander/kiroscore/internal/engine"
)

// Report is one scored submission ready for rendering.
type Report struct {
	ID         string                  `json:"id,omitempty"`
	Source     string                  `json:"source,omitempty"`
	Title      string                  `json:"title,omitempty"`
	Submission engine.Submission       `json:"submission"`
	Categories engine.CategoryAnalysis `json:"category_analysis"`
	Criteria   engine.CriteriaAnalysis `json:"criteria_analysis"`
	Viability  float64                 `json:"combined_viability"`
	Pathway    string                  `json:"pathway,omitempty"`
}

// New builds a Report from an analysis result.
func New(source, title string, sub engine.Submission, result analyzer.Result) Report {
	return Report{
		Source:     source,
		Title:      title,
		Submission: sub,
		Categories: result.Categories,
		Criteria:   result.Criteria,
		Viability:  result.Viability,
	}
}

// Summary collects the reports from one scoring run.
type Summary struct {
	Reports   []Report  `json:"reports"`
	StartTime time.Time `json:"start_time"`
}

// Formatter renders a scoring summary in one output format.
type Formatter interface {
	Format(summary *Summary) error
}

// NewFormatter creates the formatter for the given format name.
func NewFormatter(format, outputFile string, quiet, verbose bool) (Formatter, error) {
	switch format {
	case "console":
		return NewConsoleFormatter(quiet, verbose), nil
	case "json":
		return NewJSONFormatter(outputFile), nil
	case "markdown":
		return NewMarkdownFormatter(outputFile, verbose), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// displayName prefers the submission title, then the source file.
func displayName(r Report) string {
	if r.Title != "" {
		return r.Title
	}
	if r.Source != "" {
		return r.Source
	}
	return "(untitled submission)"
}
