package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/kiroscore/internal/engine"
)

// MarkdownFormatter formats scoring results as Markdown.
type MarkdownFormatter struct {
	outputFile string
	verbose    bool
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(outputFile string, verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{
		outputFile: outputFile,
		verbose:    verbose,
	}
}

// Format renders the summary as a Markdown report.
func (f *MarkdownFormatter) Format(summary *Summary) error {
	var builder strings.Builder

	builder.WriteString("# Kiroween Scoring Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Submissions:** %d\n\n", len(summary.Reports)))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	if len(summary.Reports) == 0 {
		builder.WriteString("*No submissions found to score.*\n")
	}

	for i := range summary.Reports {
		f.writeReport(&builder, &summary.Reports[i])
	}

	return f.write(builder.String())
}

func (f *MarkdownFormatter) writeReport(builder *strings.Builder, r *Report) {
	builder.WriteString(fmt.Sprintf("## %s\n\n", displayName(*r)))

	best := r.Categories.Evaluation(r.Categories.BestMatch)
	if best != nil {
		builder.WriteString(fmt.Sprintf("**Best category:** %s (%.1f/10)\n\n",
			best.Category.DisplayName(), best.FitScore))
		builder.WriteString(fmt.Sprintf("Because %s\n\n", r.Categories.BestMatchReason))
	}

	builder.WriteString("### Category Fit\n\n")
	builder.WriteString("| Category | Fit Score |\n")
	builder.WriteString("|----------|-----------|\n")
	for _, ev := range r.Categories.Evaluations {
		builder.WriteString(fmt.Sprintf("| %s | %.1f/10 |\n", ev.Category.DisplayName(), ev.FitScore))
	}
	builder.WriteString("\n")

	builder.WriteString("### Judged Criteria\n\n")
	builder.WriteString("| Criterion | Score |\n")
	builder.WriteString("|-----------|-------|\n")
	for _, score := range r.Criteria.Scores {
		builder.WriteString(fmt.Sprintf("| %s | %.1f/5 |\n", score.Name, score.Score))
	}
	builder.WriteString(fmt.Sprintf("| **Final** | **%.1f/5** |\n", r.Criteria.FinalScore))
	builder.WriteString(fmt.Sprintf("| **Viability** | **%.1f/5** |\n\n", r.Viability))

	if f.verbose {
		for _, score := range r.Criteria.Scores {
			builder.WriteString(fmt.Sprintf("#### %s\n\n", score.Name))
			builder.WriteString(score.Justification + "\n\n")
			for _, name := range engine.SubCriterionOrder[score.Name] {
				sub := score.SubScores[name]
				builder.WriteString(fmt.Sprintf("- %s: %.1f/5 — %s\n", name, sub.Score, sub.Explanation))
			}
			builder.WriteString("\n")
		}
	}

	if best != nil && len(best.ImprovementSuggestions) > 0 {
		builder.WriteString("### Suggestions\n\n")
		for _, s := range best.ImprovementSuggestions {
			builder.WriteString(fmt.Sprintf("- %s\n", s))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("---\n\n")
}

func (f *MarkdownFormatter) write(content string) error {
	if f.outputFile == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing markdown report: %w", err)
	}
	return nil
}
